package services

import (
	"context"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/campus-reslife/reslife_backend/internal/dto"
)

// DirectoryResolverSvc resolves identities referenced by custody operations.
// Lookups are pure reads scoped to a single operation; the core does not
// cache identity data across operations.
type DirectoryResolverSvc interface {
	// ResolveStudent resolves a student by id.
	ResolveStudent(ctx context.Context, studentID string) (*domain.Student, error)

	// ResolveStudents resolves several students at once, keyed by id.
	ResolveStudents(ctx context.Context, studentIDs []string) (map[string]domain.Student, error)

	// ResolveStaff resolves a staff member by id.
	ResolveStaff(ctx context.Context, staffID string) (*domain.Staff, error)

	// ResolveStaffMembers resolves several staff members at once, keyed by id.
	ResolveStaffMembers(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error)

	// ResolveBuilding resolves a building by id.
	ResolveBuilding(ctx context.Context, buildingID string) (*domain.Building, error)

	// ResolveBuildings resolves several buildings at once, keyed by id.
	ResolveBuildings(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error)
}

// DirectorySearchSvc is the cancellable, paginated search contract. A search
// may be superseded by a newer one from the same caller; abandoned searches
// are side-effect free.
type DirectorySearchSvc interface {
	// SearchStudents retrieves a page of students matching the query.
	SearchStudents(ctx context.Context, params dto.SearchStudentsParams) (*dto.SearchStudentsResponse, error)

	// ListBuildings retrieves all buildings for scope pickers.
	ListBuildings(ctx context.Context) (*dto.ListBuildingsResponse, error)
}

// DirectorySvcFacade combines the directory service interfaces
type DirectorySvcFacade interface {
	DirectoryResolverSvc
	DirectorySearchSvc
}
