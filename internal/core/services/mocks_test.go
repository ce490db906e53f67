package services_test

import (
	"context"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

var _ portsrepo.PackageRepositoryFacade = (*MockPackageRepository)(nil)

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageRepository) FindPackagesByIDs(ctx context.Context, packageIDs []string) (map[string]domain.Package, error) {
	args := m.Called(ctx, packageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context, filters portsrepo.PackageListFilters, limit, offset int) ([]domain.Package, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Package), args.Get(1).(int64), args.Error(2)
}

func (m *MockPackageRepository) FindLoggedInPackagesByBuildings(ctx context.Context, buildingIDs []string) ([]domain.Package, error) {
	args := m.Called(ctx, buildingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) TransitionPackageStatus(ctx context.Context, packageID string, expectedVersion int64, target domain.PackageStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, packageID, expectedVersion, target, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock PackageLogRepository ---
type MockPackageLogRepository struct {
	mock.Mock
}

var _ portsrepo.PackageLogRepositoryFacade = (*MockPackageLogRepository)(nil)

func (m *MockPackageLogRepository) SaveLog(ctx context.Context, log domain.PackageLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockPackageLogRepository) FindLogByID(ctx context.Context, packageLogID string) (*domain.PackageLog, error) {
	args := m.Called(ctx, packageLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageLog), args.Error(1)
}

func (m *MockPackageLogRepository) ListLogs(ctx context.Context, filters portsrepo.PackageLogListFilters, limit, offset int) ([]domain.PackageLog, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.PackageLog), args.Get(1).(int64), args.Error(2)
}

// --- Mock DirectoryRepository ---
type MockDirectoryRepository struct {
	mock.Mock
}

var _ portsrepo.DirectoryRepositoryFacade = (*MockDirectoryRepository)(nil)

func (m *MockDirectoryRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockDirectoryRepository) FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	args := m.Called(ctx, studentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Student), args.Error(1)
}

func (m *MockDirectoryRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockDirectoryRepository) FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	args := m.Called(ctx, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Staff), args.Error(1)
}

func (m *MockDirectoryRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockDirectoryRepository) FindBuildingsByIDs(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error) {
	args := m.Called(ctx, buildingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Building), args.Error(1)
}

func (m *MockDirectoryRepository) SearchStudents(ctx context.Context, query string, limit, offset int) ([]domain.Student, int64, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockDirectoryRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

// --- Mock DirectoryResolverSvc ---
type MockDirectoryResolver struct {
	mock.Mock
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryResolver)(nil)

func (m *MockDirectoryResolver) ResolveStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockDirectoryResolver) ResolveStudents(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	args := m.Called(ctx, studentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Student), args.Error(1)
}

func (m *MockDirectoryResolver) ResolveStaff(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockDirectoryResolver) ResolveStaffMembers(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	args := m.Called(ctx, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Staff), args.Error(1)
}

func (m *MockDirectoryResolver) ResolveBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockDirectoryResolver) ResolveBuildings(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error) {
	args := m.Called(ctx, buildingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Building), args.Error(1)
}

func (m *MockDirectoryResolver) SearchStudents(ctx context.Context, params dto.SearchStudentsParams) (*dto.SearchStudentsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchStudentsResponse), args.Error(1)
}

func (m *MockDirectoryResolver) ListBuildings(ctx context.Context) (*dto.ListBuildingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBuildingsResponse), args.Error(1)
}
