package services

import (
	"context"
	"errors"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/utils/pagination"
)

// DirectoryService adapts the housing directory to the custody core. Not
// found propagates as such; any other directory failure surfaces as an
// adapter error so callers can tell "bad input" from "directory down".
type DirectoryService struct {
	directoryRepo portsrepo.DirectoryRepositoryFacade
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(directoryRepo portsrepo.DirectoryRepositoryFacade) *DirectoryService {
	return &DirectoryService{directoryRepo: directoryRepo}
}

// Ensure DirectoryService implements the portssvc.DirectorySvcFacade interface
var _ portssvc.DirectorySvcFacade = (*DirectoryService)(nil)

// adapterErr classifies a directory repository failure. Not found and caller
// cancellation pass through untouched.
func adapterErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return apperrors.NewAppError(502, "directory lookup failed", errors.Join(apperrors.ErrAdapter, err))
}

// ResolveStudent resolves a student by id.
func (s *DirectoryService) ResolveStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	student, err := s.directoryRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, adapterErr(err)
	}
	return student, nil
}

// ResolveStudents resolves several students at once, keyed by id.
func (s *DirectoryService) ResolveStudents(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	students, err := s.directoryRepo.FindStudentsByIDs(ctx, studentIDs)
	if err != nil {
		return nil, adapterErr(err)
	}
	return students, nil
}

// ResolveStaff resolves a staff member by id.
func (s *DirectoryService) ResolveStaff(ctx context.Context, staffID string) (*domain.Staff, error) {
	staff, err := s.directoryRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, adapterErr(err)
	}
	return staff, nil
}

// ResolveStaffMembers resolves several staff members at once, keyed by id.
func (s *DirectoryService) ResolveStaffMembers(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	staff, err := s.directoryRepo.FindStaffByIDs(ctx, staffIDs)
	if err != nil {
		return nil, adapterErr(err)
	}
	return staff, nil
}

// ResolveBuilding resolves a building by id.
func (s *DirectoryService) ResolveBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	building, err := s.directoryRepo.FindBuildingByID(ctx, buildingID)
	if err != nil {
		return nil, adapterErr(err)
	}
	return building, nil
}

// ResolveBuildings resolves several buildings at once, keyed by id.
func (s *DirectoryService) ResolveBuildings(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error) {
	buildings, err := s.directoryRepo.FindBuildingsByIDs(ctx, buildingIDs)
	if err != nil {
		return nil, adapterErr(err)
	}
	return buildings, nil
}

// SearchStudents retrieves a page of students matching the query. An empty
// query returns an empty page rather than the whole directory. The search is
// read-only, so a caller abandoning it (context cancellation) has no effect
// on anything.
func (s *DirectoryService) SearchStudents(ctx context.Context, params dto.SearchStudentsParams) (*dto.SearchStudentsResponse, error) {
	if params.Search == "" {
		return &dto.SearchStudentsResponse{Students: []dto.StudentResponse{}, TotalPages: 0}, nil
	}

	page, limit := pagination.Normalize(params.Page, params.Limit)
	students, total, err := s.directoryRepo.SearchStudents(ctx, params.Search, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, adapterErr(err)
	}

	responses := make([]dto.StudentResponse, len(students))
	for i := range students {
		responses[i] = dto.ToStudentResponse(&students[i])
	}

	return &dto.SearchStudentsResponse{
		Students:   responses,
		TotalPages: pagination.TotalPages(total, limit),
	}, nil
}

// ListBuildings retrieves all buildings for scope pickers.
func (s *DirectoryService) ListBuildings(ctx context.Context) (*dto.ListBuildingsResponse, error) {
	buildings, err := s.directoryRepo.ListBuildings(ctx)
	if err != nil {
		return nil, adapterErr(err)
	}
	return &dto.ListBuildingsResponse{Buildings: dto.ToBuildingResponses(buildings)}, nil
}
