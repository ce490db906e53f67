package services

import (
	"context"
	"errors"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/middleware"
	"github.com/campus-reslife/reslife_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// PackageService implements the custody operations over the package store.
type PackageService struct {
	packageRepo portsrepo.PackageRepositoryFacade
	directory   portssvc.DirectoryResolverSvc
}

// NewPackageService creates a new PackageService.
func NewPackageService(packageRepo portsrepo.PackageRepositoryFacade, directory portssvc.DirectoryResolverSvc) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		directory:   directory,
	}
}

// Ensure PackageService implements the portssvc.PackageSvcFacade interface
var _ portssvc.PackageSvcFacade = (*PackageService)(nil)

// IntakePackage registers a newly received package. The recipient and
// building are resolved against the directory before anything is written, so
// a package can never reference an unknown identity.
func (s *PackageService) IntakePackage(ctx context.Context, req dto.CreatePackageRequest, staffID string) (*domain.Package, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parcelType := domain.ParcelType(req.ParcelType)
	if !parcelType.IsValid() {
		return nil, apperrors.NewValidationError("invalid parcel type: " + req.ParcelType)
	}
	shippingType := domain.ShippingType(req.ShippingType)
	if !shippingType.IsValid() {
		return nil, apperrors.NewValidationError("invalid shipping type: " + req.ShippingType)
	}

	if _, err := s.directory.ResolveStudent(ctx, req.RecipientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("unknown recipient: " + req.RecipientID)
		}
		return nil, err
	}
	if _, err := s.directory.ResolveBuilding(ctx, req.BuildingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("unknown building: " + req.BuildingID)
		}
		return nil, err
	}

	now := time.Now()
	receivedAt := now
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	pkg := domain.Package{
		PackageID:        uuid.NewString(),
		TrackingNumber:   req.TrackingNumber,
		RecipientID:      req.RecipientID,
		BuildingID:       req.BuildingID,
		StaffID:          staffID,
		ParcelType:       parcelType,
		ShippingType:     shippingType,
		MailRoom:         req.MailRoom,
		StorageLocation:  req.StorageLocation,
		EmailReceiptFrom: req.EmailReceiptFrom,
		Description:      req.Description,
		Comments:         req.Comments,
		ReceivedAt:       receivedAt,
		Status:           domain.LoggedIn,
		Version:          0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}

	if err := s.packageRepo.SavePackage(ctx, pkg); err != nil {
		logger.Error("failed to save package", "error", err, "packageID", pkg.PackageID)
		return nil, err
	}

	logger.Info("package logged in", "packageID", pkg.PackageID, "recipientID", pkg.RecipientID, "buildingID", pkg.BuildingID)
	return &pkg, nil
}

// GetPackageByID retrieves a single package.
func (s *PackageService) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	return s.packageRepo.FindPackageByID(ctx, packageID)
}

// ListPackages retrieves a filtered page of packages.
func (s *PackageService) ListPackages(ctx context.Context, params dto.ListPackagesParams) (*dto.ListPackagesResponse, error) {
	packages, total, err := s.listPage(ctx, params)
	if err != nil {
		return nil, err
	}

	_, limit := pagination.Normalize(params.Page, params.Limit)
	return &dto.ListPackagesResponse{
		Packages:   dto.ToPackageResponses(packages),
		TotalPages: pagination.TotalPages(total, limit),
	}, nil
}

// ListPackagesGroupedByRecipient retrieves the same page as ListPackages and
// groups it by recipient. Grouping is pure post-processing over the page:
// group order follows first appearance, order inside a group is preserved.
func (s *PackageService) ListPackagesGroupedByRecipient(ctx context.Context, params dto.ListPackagesParams) (*dto.GroupedPackagesResponse, error) {
	packages, total, err := s.listPage(ctx, params)
	if err != nil {
		return nil, err
	}

	recipientIDs := make([]string, 0, len(packages))
	seen := make(map[string]bool, len(packages))
	for _, p := range packages {
		if !seen[p.RecipientID] {
			seen[p.RecipientID] = true
			recipientIDs = append(recipientIDs, p.RecipientID)
		}
	}

	students, err := s.directory.ResolveStudents(ctx, recipientIDs)
	if err != nil {
		return nil, err
	}

	groupIndex := make(map[string]int, len(recipientIDs))
	groups := make([]dto.RecipientPackagesGroup, 0, len(recipientIDs))
	for _, p := range packages {
		idx, ok := groupIndex[p.RecipientID]
		if !ok {
			recipient := dto.StudentResponse{StudentID: p.RecipientID}
			if student, found := students[p.RecipientID]; found {
				recipient = dto.ToStudentResponse(&student)
			}
			idx = len(groups)
			groupIndex[p.RecipientID] = idx
			groups = append(groups, dto.RecipientPackagesGroup{Recipient: recipient})
		}
		groups[idx].Packages = append(groups[idx].Packages, dto.ToPackageResponse(&p))
	}

	_, limit := pagination.Normalize(params.Page, params.Limit)
	return &dto.GroupedPackagesResponse{
		Groups:     groups,
		TotalPages: pagination.TotalPages(total, limit),
	}, nil
}

func (s *PackageService) listPage(ctx context.Context, params dto.ListPackagesParams) ([]domain.Package, int64, error) {
	if params.Status != "" && !domain.PackageStatus(params.Status).IsValid() {
		return nil, 0, apperrors.NewValidationError("invalid status filter: " + params.Status)
	}

	page, limit := pagination.Normalize(params.Page, params.Limit)
	filters := portsrepo.PackageListFilters{
		Search:      params.Search,
		BuildingIDs: params.BuildingIDs,
		Status:      domain.PackageStatus(params.Status),
		StudentID:   params.StudentID,
	}
	return s.packageRepo.ListPackages(ctx, filters, limit, pagination.Offset(page, limit))
}

// BulkTransition moves the named packages out of LoggedIn, one compare-and-set
// per package. The result accounts for every requested id exactly once:
// either in Updated or in Conflicts. Committed transitions stay committed
// even when later ids conflict.
func (s *PackageService) BulkTransition(ctx context.Context, packageIDs []string, target domain.PackageStatus, staffID string) (*dto.BulkTransitionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !target.IsValidTarget() {
		return nil, apperrors.NewValidationError("invalid transition target: " + string(target))
	}
	if len(packageIDs) == 0 {
		return nil, apperrors.NewValidationError("no package IDs provided")
	}

	// Duplicate ids collapse to one attempt each.
	uniqueIDs := make([]string, 0, len(packageIDs))
	seen := make(map[string]bool, len(packageIDs))
	for _, id := range packageIDs {
		if !seen[id] {
			seen[id] = true
			uniqueIDs = append(uniqueIDs, id)
		}
	}

	found, err := s.packageRepo.FindPackagesByIDs(ctx, uniqueIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := &dto.BulkTransitionResult{
		Updated:   []string{},
		Conflicts: []dto.TransitionConflict{},
	}

	for _, id := range uniqueIDs {
		pkg, ok := found[id]
		if !ok {
			result.Conflicts = append(result.Conflicts, dto.TransitionConflict{PackageID: id, Reason: "not_found"})
			continue
		}
		if pkg.Status != domain.LoggedIn {
			result.Conflicts = append(result.Conflicts, dto.TransitionConflict{PackageID: id, Reason: conflictReason(pkg.Status)})
			continue
		}

		err := s.packageRepo.TransitionPackageStatus(ctx, id, pkg.Version, target, staffID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				// Raced with a concurrent transition since the read above.
				result.Conflicts = append(result.Conflicts, dto.TransitionConflict{PackageID: id, Reason: "version_conflict"})
				continue
			}
			return nil, err
		}
		result.Updated = append(result.Updated, id)
	}

	logger.Info("bulk transition completed",
		"target", string(target),
		"requested", len(uniqueIDs),
		"updated", len(result.Updated),
		"conflicts", len(result.Conflicts))
	return result, nil
}

// conflictReason names why a package in a terminal state cannot transition.
func conflictReason(status domain.PackageStatus) string {
	switch status {
	case domain.LoggedOut:
		return "already_logged_out"
	case domain.Lost:
		return "already_lost"
	default:
		return "version_conflict"
	}
}
