package services

import (
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Directory service first since the custody services resolve identities
	// through it.
	container.Directory = NewDirectoryService(repos.DirectoryRepo)

	container.Package = NewPackageService(repos.PackageRepo, container.Directory)
	container.PackageLog = NewPackageLogService(repos.PackageLogRepo, repos.PackageRepo, container.Directory)

	return container
}
