package pgsql

import (
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	packageRepo := NewPgxPackageRepository(dbPool)
	packageLogRepo := NewPgxPackageLogRepository(dbPool)
	directoryRepo := NewPgxDirectoryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PackageRepo:    packageRepo,
		PackageLogRepo: packageLogRepo,
		DirectoryRepo:  directoryRepo,
	}
}
