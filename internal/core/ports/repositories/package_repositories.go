package repositories

import (
	"context"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
)

// PackageListFilters narrows a package list query. Zero values mean
// "no filter" for every field.
type PackageListFilters struct {
	// Search matches case-insensitively against recipient first/last name,
	// student number and tracking number.
	Search      string
	BuildingIDs []string
	Status      domain.PackageStatus
	StudentID   string
}

// PackageReader defines read operations for package data
type PackageReader interface {
	// FindPackageByID retrieves a specific package by its id.
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)

	// FindPackagesByIDs retrieves the packages for the given ids, keyed by id.
	// Ids with no row are simply absent from the map.
	FindPackagesByIDs(ctx context.Context, packageIDs []string) (map[string]domain.Package, error)

	// ListPackages retrieves a filtered page of packages ordered by
	// received_at descending (package_id descending as tie-breaker), along
	// with the total row count for the filter.
	ListPackages(ctx context.Context, filters PackageListFilters, limit, offset int) ([]domain.Package, int64, error)

	// FindLoggedInPackagesByBuildings retrieves, in a single consistent
	// query, every package with status LOGGED_IN whose building is in
	// buildingIDs. This is the reconciliation audit population.
	FindLoggedInPackagesByBuildings(ctx context.Context, buildingIDs []string) ([]domain.Package, error)
}

// PackageWriter defines write operations for package data
type PackageWriter interface {
	// SavePackage persists a newly received package.
	SavePackage(ctx context.Context, pkg domain.Package) error

	// TransitionPackageStatus performs a compare-and-set status transition:
	// the row is updated only if it still has status LOGGED_IN and the given
	// version. Returns apperrors.ErrConflict when no row matched.
	TransitionPackageStatus(ctx context.Context, packageID string, expectedVersion int64, target domain.PackageStatus, updatedBy string, updatedAt time.Time) error
}

// PackageRepositoryFacade combines all package repository interfaces
type PackageRepositoryFacade interface {
	PackageReader
	PackageWriter
}
