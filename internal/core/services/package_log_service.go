package services

import (
	"context"
	"errors"
	"sort"
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

// PackageLogService implements reconciliation audits. A log is an immutable
// snapshot: once written it never changes, even when the packages it
// references transition afterwards.
type PackageLogService struct {
	packageLogRepo portsrepo.PackageLogRepositoryFacade
	packageRepo    portsrepo.PackageRepositoryFacade
	directory      portssvc.DirectoryResolverSvc
}

// NewPackageLogService creates a new PackageLogService.
func NewPackageLogService(
	packageLogRepo portsrepo.PackageLogRepositoryFacade,
	packageRepo portsrepo.PackageRepositoryFacade,
	directory portssvc.DirectoryResolverSvc,
) *PackageLogService {
	return &PackageLogService{
		packageLogRepo: packageLogRepo,
		packageRepo:    packageRepo,
		directory:      directory,
	}
}

// Ensure PackageLogService implements the portssvc.PackageLogSvcFacade interface
var _ portssvc.PackageLogSvcFacade = (*PackageLogService)(nil)

// CreateLog runs a reconciliation audit. The audit population is every
// LoggedIn package in the requested buildings, read once; overrides outside
// that population are rejected before anything is written. After the log is
// persisted, packages marked missing are transitioned to Lost through the
// same compare-and-set path as a bulk transition. A package that raced out
// of LoggedIn in the meantime is reported as a conflict, never a failure:
// the log itself already committed.
func (s *PackageLogService) CreateLog(ctx context.Context, req dto.CreatePackageLogRequest, staffID string) (*dto.CreatePackageLogResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.BuildingIDs) == 0 {
		return nil, apperrors.NewValidationError("audit scope must name at least one building")
	}

	buildings, err := s.directory.ResolveBuildings(ctx, req.BuildingIDs)
	if err != nil {
		return nil, err
	}
	for _, buildingID := range req.BuildingIDs {
		if _, ok := buildings[buildingID]; !ok {
			return nil, apperrors.NewValidationError("unknown building: " + buildingID)
		}
	}

	// Single consistent read of the audit population.
	population, err := s.packageRepo.FindLoggedInPackagesByBuildings(ctx, req.BuildingIDs)
	if err != nil {
		return nil, err
	}

	inPopulation := make(map[string]bool, len(population))
	for _, p := range population {
		inPopulation[p.PackageID] = true
	}
	for packageID := range req.PresenceOverrides {
		if !inPopulation[packageID] {
			return nil, apperrors.NewValidationError("presence override references package outside the audit scope: " + packageID)
		}
	}

	entries := make([]domain.PackageLogEntry, len(population))
	missingIDs := []string{}
	for i, p := range population {
		present := true
		if v, ok := req.PresenceOverrides[p.PackageID]; ok {
			present = v
		}
		entries[i] = domain.PackageLogEntry{PackageID: p.PackageID, Present: present}
		if !present {
			missingIDs = append(missingIDs, p.PackageID)
		}
	}

	log := domain.PackageLog{
		PackageLogID: uuid.NewString(),
		CreatedBy:    staffID,
		CreatedAt:    time.Now(),
		BuildingIDs:  req.BuildingIDs,
		Entries:      entries,
	}

	if err := s.packageLogRepo.SaveLog(ctx, log); err != nil {
		logger.Error("failed to save package log", "error", err, "packageLogID", log.PackageLogID)
		return nil, err
	}

	conflicts := s.markMissingLost(ctx, population, missingIDs, staffID)

	logger.Info("package log created",
		"packageLogID", log.PackageLogID,
		"buildings", len(req.BuildingIDs),
		"totalPackages", len(entries),
		"missing", len(missingIDs),
		"transitionConflicts", len(conflicts))

	staff, err := s.directory.ResolveStaff(ctx, staffID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return &dto.CreatePackageLogResponse{
		Log:                 toPackageLogResponse(log, staff, buildings),
		TransitionConflicts: conflicts,
	}, nil
}

// markMissingLost moves each missing package LoggedIn -> Lost. Conflicts are
// collected, not propagated: the audit record is the source of truth and a
// lost race only means someone else moved the package first.
func (s *PackageLogService) markMissingLost(ctx context.Context, population []domain.Package, missingIDs []string, staffID string) []dto.TransitionConflict {
	logger := middleware.GetLoggerFromCtx(ctx)

	versions := make(map[string]int64, len(population))
	for _, p := range population {
		versions[p.PackageID] = p.Version
	}

	now := time.Now()
	conflicts := []dto.TransitionConflict{}
	for _, id := range missingIDs {
		err := s.packageRepo.TransitionPackageStatus(ctx, id, versions[id], domain.Lost, staffID, now)
		if err == nil {
			continue
		}
		if errors.Is(err, apperrors.ErrConflict) {
			conflicts = append(conflicts, dto.TransitionConflict{PackageID: id, Reason: "version_conflict"})
			continue
		}
		logger.Error("failed to mark package lost", "error", err, "packageID", id)
		conflicts = append(conflicts, dto.TransitionConflict{PackageID: id, Reason: "version_conflict"})
	}
	return conflicts
}

// ListLogs retrieves a filtered page of logs. Present/missing counters are
// derived from the stored entries at read time.
func (s *PackageLogService) ListLogs(ctx context.Context, params dto.ListPackageLogsParams) (*dto.ListPackageLogsResponse, error) {
	page, limit := pagination.Normalize(params.Page, params.Limit)
	filters := portsrepo.PackageLogListFilters{
		StaffName:   params.StaffName,
		BuildingIDs: params.BuildingIDs,
	}

	logs, total, err := s.packageLogRepo.ListLogs(ctx, filters, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	staffIDs := make([]string, 0, len(logs))
	seenStaff := make(map[string]bool, len(logs))
	buildingIDs := []string{}
	seenBuilding := map[string]bool{}
	for _, log := range logs {
		if !seenStaff[log.CreatedBy] {
			seenStaff[log.CreatedBy] = true
			staffIDs = append(staffIDs, log.CreatedBy)
		}
		for _, b := range log.BuildingIDs {
			if !seenBuilding[b] {
				seenBuilding[b] = true
				buildingIDs = append(buildingIDs, b)
			}
		}
	}

	staffByID, err := s.directory.ResolveStaffMembers(ctx, staffIDs)
	if err != nil {
		return nil, err
	}
	buildingsByID, err := s.directory.ResolveBuildings(ctx, buildingIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PackageLogResponse, len(logs))
	for i, log := range logs {
		var staff *domain.Staff
		if st, ok := staffByID[log.CreatedBy]; ok {
			staff = &st
		}
		responses[i] = toPackageLogResponse(log, staff, buildingsByID)
	}

	return &dto.ListPackageLogsResponse{
		Logs:       responses,
		TotalPages: pagination.TotalPages(total, limit),
	}, nil
}

// GetLogDetail retrieves one log with its entries grouped by recipient.
// Groups are ordered by recipient surname, then first name. The package data
// shown is the current store state; presence flags are the log's snapshot.
func (s *PackageLogService) GetLogDetail(ctx context.Context, packageLogID string) (*dto.PackageLogDetailResponse, error) {
	log, err := s.packageLogRepo.FindLogByID(ctx, packageLogID)
	if err != nil {
		return nil, err
	}

	packageIDs := make([]string, len(log.Entries))
	for i, e := range log.Entries {
		packageIDs[i] = e.PackageID
	}
	packages, err := s.packageRepo.FindPackagesByIDs(ctx, packageIDs)
	if err != nil {
		return nil, err
	}

	recipientIDs := []string{}
	seen := map[string]bool{}
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

	staff, err := s.directory.ResolveStaff(ctx, log.CreatedBy)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	buildings, err := s.directory.ResolveBuildings(ctx, log.BuildingIDs)
	if err != nil {
		return nil, err
	}

	groupIndex := map[string]int{}
	groups := []dto.PackageLogRecipientGroup{}
	for _, entry := range log.Entries {
		pkg, ok := packages[entry.PackageID]
		if !ok {
			// Entry references a package that has since disappeared from the
			// store. The snapshot stands; skip the detail row.
			continue
		}
		idx, ok := groupIndex[pkg.RecipientID]
		if !ok {
			recipient := dto.StudentResponse{StudentID: pkg.RecipientID}
			if student, found := students[pkg.RecipientID]; found {
				recipient = dto.ToStudentResponse(&student)
			}
			idx = len(groups)
			groupIndex[pkg.RecipientID] = idx
			groups = append(groups, dto.PackageLogRecipientGroup{Recipient: recipient})
		}
		groups[idx].Entries = append(groups[idx].Entries, dto.PackageLogEntryDetail{
			Package: dto.ToPackageResponse(&pkg),
			Present: entry.Present,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Recipient.LastName != groups[j].Recipient.LastName {
			return groups[i].Recipient.LastName < groups[j].Recipient.LastName
		}
		return groups[i].Recipient.FirstName < groups[j].Recipient.FirstName
	})

	return &dto.PackageLogDetailResponse{
		PackageLogID:  log.PackageLogID,
		CreatedBy:     toStaffResponseOrPlaceholder(log.CreatedBy, staff),
		CreatedAt:     log.CreatedAt,
		Buildings:     buildingResponsesFor(log.BuildingIDs, buildings),
		Groups:        groups,
		TotalPackages: len(log.Entries),
		PresentCount:  log.PresentCount(),
		MissingCount:  log.MissingCount(),
	}, nil
}

func toPackageLogResponse(log domain.PackageLog, staff *domain.Staff, buildings map[string]domain.Building) dto.PackageLogResponse {
	entries := make([]dto.PackageLogEntryResponse, len(log.Entries))
	for i, e := range log.Entries {
		entries[i] = dto.PackageLogEntryResponse{PackageID: e.PackageID, Present: e.Present}
	}

	return dto.PackageLogResponse{
		PackageLogID:  log.PackageLogID,
		CreatedBy:     toStaffResponseOrPlaceholder(log.CreatedBy, staff),
		CreatedAt:     log.CreatedAt,
		Buildings:     buildingResponsesFor(log.BuildingIDs, buildings),
		Entries:       entries,
		TotalPackages: len(log.Entries),
		PresentCount:  log.PresentCount(),
		MissingCount:  log.MissingCount(),
	}
}

// toStaffResponseOrPlaceholder keeps log views renderable when the staff
// record has left the directory.
func toStaffResponseOrPlaceholder(staffID string, staff *domain.Staff) dto.StaffResponse {
	if staff == nil {
		return dto.StaffResponse{StaffID: staffID}
	}
	return dto.ToStaffResponse(staff)
}

func buildingResponsesFor(buildingIDs []string, buildings map[string]domain.Building) []dto.BuildingResponse {
	responses := make([]dto.BuildingResponse, 0, len(buildingIDs))
	for _, id := range buildingIDs {
		if b, ok := buildings[id]; ok {
			responses = append(responses, dto.ToBuildingResponse(&b))
			continue
		}
		responses = append(responses, dto.BuildingResponse{BuildingID: id})
	}
	return responses
}
