package repositories

import (
	"context"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
)

// DirectoryReader defines the lookup contract the custody core consumes from
// the housing directory. All operations are pure reads: a caller may abandon
// them (context cancellation) without affecting store state.
type DirectoryReader interface {
	// FindStudentByID resolves a student identity.
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)

	// FindStudentsByIDs resolves several students at once, keyed by id.
	// Unknown ids are absent from the map.
	FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error)

	// FindStaffByID resolves a staff identity.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// FindStaffByIDs resolves several staff members at once, keyed by id.
	FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error)

	// FindBuildingByID resolves a building.
	FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error)

	// FindBuildingsByIDs resolves several buildings at once, keyed by id.
	FindBuildingsByIDs(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error)

	// SearchStudents retrieves a page of students matching query
	// case-insensitively on name or student number, plus the total count.
	SearchStudents(ctx context.Context, query string, limit, offset int) ([]domain.Student, int64, error)

	// ListBuildings retrieves every building, ordered by name.
	ListBuildings(ctx context.Context) ([]domain.Building, error)
}

// DirectoryRepositoryFacade is the full directory contract.
type DirectoryRepositoryFacade interface {
	DirectoryReader
}
