package services

import (
	"context"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	"github.com/campus-reslife/reslife_backend/internal/dto"
)

// PackageReaderSvc defines read operations for package data
type PackageReaderSvc interface {
	// GetPackageByID retrieves a single package.
	GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error)

	// ListPackages retrieves a filtered, paginated list of packages.
	ListPackages(ctx context.Context, params dto.ListPackagesParams) (*dto.ListPackagesResponse, error)

	// ListPackagesGroupedByRecipient retrieves the same page as ListPackages
	// and groups it by recipient as a pure post-processing step.
	ListPackagesGroupedByRecipient(ctx context.Context, params dto.ListPackagesParams) (*dto.GroupedPackagesResponse, error)
}

// PackageWriterSvc defines write operations for package data
type PackageWriterSvc interface {
	// IntakePackage registers a newly received package with status LoggedIn.
	IntakePackage(ctx context.Context, req dto.CreatePackageRequest, staffID string) (*domain.Package, error)

	// BulkTransition moves packages out of LoggedIn, one compare-and-set per
	// package. Ineligible packages are reported as conflicts; committed
	// transitions are never rolled back.
	BulkTransition(ctx context.Context, packageIDs []string, target domain.PackageStatus, staffID string) (*dto.BulkTransitionResult, error)
}

// PackageSvcFacade combines all package-related service interfaces
type PackageSvcFacade interface {
	PackageReaderSvc
	PackageWriterSvc
}
