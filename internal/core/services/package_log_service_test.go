package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portsrepo "github.com/campus-reslife/reslife_backend/internal/core/ports/repositories"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/core/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type PackageLogServiceTestSuite struct {
	suite.Suite
	mockLogRepo     *MockPackageLogRepository
	mockPackageRepo *MockPackageRepository
	mockDirectory   *MockDirectoryResolver
	service         portssvc.PackageLogSvcFacade
}

func (suite *PackageLogServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockPackageLogRepository)
	suite.mockPackageRepo = new(MockPackageRepository)
	suite.mockDirectory = new(MockDirectoryResolver)
	suite.service = services.NewPackageLogService(suite.mockLogRepo, suite.mockPackageRepo, suite.mockDirectory)
}

func (suite *PackageLogServiceTestSuite) expectScope(ctx context.Context, buildingIDs []string) {
	buildings := make(map[string]domain.Building, len(buildingIDs))
	for _, id := range buildingIDs {
		buildings[id] = domain.Building{BuildingID: id, Name: "Hall " + id}
	}
	suite.mockDirectory.On("ResolveBuildings", ctx, buildingIDs).Return(buildings, nil)
}

// --- CreateLog ---

func (suite *PackageLogServiceTestSuite) TestCreateLog_SnapshotDefaultsPresent() {
	ctx := context.Background()
	staffID := uuid.NewString()
	population := []domain.Package{
		loggedInPackage("p1", "stu-1", 1),
		loggedInPackage("p2", "stu-2", 1),
		loggedInPackage("p3", "stu-3", 1),
	}

	suite.expectScope(ctx, []string{"bld-1"})
	suite.mockPackageRepo.On("FindLoggedInPackagesByBuildings", ctx, []string{"bld-1"}).Return(population, nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(log domain.PackageLog) bool {
		if len(log.Entries) != 3 || log.CreatedBy != staffID {
			return false
		}
		for i, p := range population {
			if log.Entries[i].PackageID != p.PackageID || !log.Entries[i].Present {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	suite.mockDirectory.On("ResolveStaff", ctx, staffID).Return(&domain.Staff{StaffID: staffID, FirstName: "Rae"}, nil).Once()

	resp, err := suite.service.CreateLog(ctx, dto.CreatePackageLogRequest{BuildingIDs: []string{"bld-1"}}, staffID)

	suite.Require().NoError(err)
	suite.Equal(3, resp.Log.TotalPackages)
	suite.Equal(3, resp.Log.PresentCount)
	suite.Equal(0, resp.Log.MissingCount)
	suite.Empty(resp.TransitionConflicts)
	// No packages were missing, so nothing transitions.
	suite.mockPackageRepo.AssertNotCalled(suite.T(), "TransitionPackageStatus")
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_MissingPackagesMarkedLost() {
	ctx := context.Background()
	staffID := uuid.NewString()
	population := []domain.Package{
		loggedInPackage("p1", "stu-1", 4),
		loggedInPackage("p2", "stu-2", 1),
	}

	suite.expectScope(ctx, []string{"bld-1", "bld-2"})
	suite.mockPackageRepo.On("FindLoggedInPackagesByBuildings", ctx, []string{"bld-1", "bld-2"}).Return(population, nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(log domain.PackageLog) bool {
		return len(log.Entries) == 2 && log.Entries[0].Present && !log.Entries[1].Present
	})).Return(nil).Once()
	suite.mockPackageRepo.On("TransitionPackageStatus", ctx, "p2", int64(1), domain.Lost, staffID, mock.Anything).Return(nil).Once()
	suite.mockDirectory.On("ResolveStaff", ctx, staffID).Return(&domain.Staff{StaffID: staffID}, nil).Once()

	req := dto.CreatePackageLogRequest{
		BuildingIDs:       []string{"bld-1", "bld-2"},
		PresenceOverrides: map[string]bool{"p2": false},
	}
	resp, err := suite.service.CreateLog(ctx, req, staffID)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Log.PresentCount)
	suite.Equal(1, resp.Log.MissingCount)
	suite.Empty(resp.TransitionConflicts)
	suite.mockPackageRepo.AssertExpectations(suite.T())
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_TransitionRaceIsTolerated() {
	// The log committed; a package racing out of custody is reported as a
	// conflict, not an error.
	ctx := context.Background()
	staffID := uuid.NewString()
	population := []domain.Package{loggedInPackage("p1", "stu-1", 1)}

	suite.expectScope(ctx, []string{"bld-1"})
	suite.mockPackageRepo.On("FindLoggedInPackagesByBuildings", ctx, []string{"bld-1"}).Return(population, nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.PackageLog")).Return(nil).Once()
	suite.mockPackageRepo.On("TransitionPackageStatus", ctx, "p1", int64(1), domain.Lost, staffID, mock.Anything).Return(apperrors.ErrConflict).Once()
	suite.mockDirectory.On("ResolveStaff", ctx, staffID).Return(&domain.Staff{StaffID: staffID}, nil).Once()

	req := dto.CreatePackageLogRequest{
		BuildingIDs:       []string{"bld-1"},
		PresenceOverrides: map[string]bool{"p1": false},
	}
	resp, err := suite.service.CreateLog(ctx, req, staffID)

	suite.Require().NoError(err)
	suite.Equal([]dto.TransitionConflict{{PackageID: "p1", Reason: "version_conflict"}}, resp.TransitionConflicts)
	// The log itself still records the package as missing.
	suite.Equal(1, resp.Log.MissingCount)
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_OverrideOutsidePopulation() {
	ctx := context.Background()
	staffID := uuid.NewString()
	population := []domain.Package{loggedInPackage("p1", "stu-1", 1)}

	suite.expectScope(ctx, []string{"bld-1"})
	suite.mockPackageRepo.On("FindLoggedInPackagesByBuildings", ctx, []string{"bld-1"}).Return(population, nil).Once()

	req := dto.CreatePackageLogRequest{
		BuildingIDs:       []string{"bld-1"},
		PresenceOverrides: map[string]bool{"p-elsewhere": false},
	}
	resp, err := suite.service.CreateLog(ctx, req, staffID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveLog")
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_EmptyScope() {
	ctx := context.Background()

	resp, err := suite.service.CreateLog(ctx, dto.CreatePackageLogRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveLog")
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_UnknownBuilding() {
	ctx := context.Background()

	suite.mockDirectory.On("ResolveBuildings", ctx, []string{"bld-missing"}).Return(map[string]domain.Building{}, nil).Once()

	resp, err := suite.service.CreateLog(ctx, dto.CreatePackageLogRequest{BuildingIDs: []string{"bld-missing"}}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPackageRepo.AssertNotCalled(suite.T(), "FindLoggedInPackagesByBuildings")
}

func (suite *PackageLogServiceTestSuite) TestCreateLog_EmptyPopulationStillLogs() {
	ctx := context.Background()
	staffID := uuid.NewString()

	suite.expectScope(ctx, []string{"bld-1"})
	suite.mockPackageRepo.On("FindLoggedInPackagesByBuildings", ctx, []string{"bld-1"}).Return([]domain.Package{}, nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(log domain.PackageLog) bool {
		return len(log.Entries) == 0
	})).Return(nil).Once()
	suite.mockDirectory.On("ResolveStaff", ctx, staffID).Return(&domain.Staff{StaffID: staffID}, nil).Once()

	resp, err := suite.service.CreateLog(ctx, dto.CreatePackageLogRequest{BuildingIDs: []string{"bld-1"}}, staffID)

	suite.Require().NoError(err)
	suite.Equal(0, resp.Log.TotalPackages)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

// --- ListLogs ---

func (suite *PackageLogServiceTestSuite) TestListLogs_CountersDerivedFromEntries() {
	ctx := context.Background()
	staffID := uuid.NewString()
	logs := []domain.PackageLog{
		{
			PackageLogID: "log-1",
			CreatedBy:    staffID,
			CreatedAt:    time.Now(),
			BuildingIDs:  []string{"bld-1"},
			Entries: []domain.PackageLogEntry{
				{PackageID: "p1", Present: true},
				{PackageID: "p2", Present: false},
				{PackageID: "p3", Present: true},
			},
		},
	}

	suite.mockLogRepo.On("ListLogs", ctx, portsrepo.PackageLogListFilters{}, 20, 0).Return(logs, int64(1), nil).Once()
	suite.mockDirectory.On("ResolveStaffMembers", ctx, []string{staffID}).Return(map[string]domain.Staff{
		staffID: {StaffID: staffID, FirstName: "Rae", LastName: "Ng"},
	}, nil).Once()
	suite.mockDirectory.On("ResolveBuildings", ctx, []string{"bld-1"}).Return(map[string]domain.Building{
		"bld-1": {BuildingID: "bld-1", Name: "North Hall"},
	}, nil).Once()

	resp, err := suite.service.ListLogs(ctx, dto.ListPackageLogsParams{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Logs, 1)
	suite.Equal(3, resp.Logs[0].TotalPackages)
	suite.Equal(2, resp.Logs[0].PresentCount)
	suite.Equal(1, resp.Logs[0].MissingCount)
	suite.Equal("Rae", resp.Logs[0].CreatedBy.FirstName)
	suite.Equal("North Hall", resp.Logs[0].Buildings[0].Name)
	suite.Equal(int64(1), resp.TotalPages)
}

// --- GetLogDetail ---

func (suite *PackageLogServiceTestSuite) TestGetLogDetail_GroupsSortedBySurname() {
	ctx := context.Background()
	staffID := uuid.NewString()
	log := &domain.PackageLog{
		PackageLogID: "log-1",
		CreatedBy:    staffID,
		CreatedAt:    time.Now(),
		BuildingIDs:  []string{"bld-1"},
		Entries: []domain.PackageLogEntry{
			{PackageID: "p1", Present: true},
			{PackageID: "p2", Present: false},
			{PackageID: "p3", Present: true},
		},
	}
	packages := map[string]domain.Package{
		"p1": loggedInPackage("p1", "stu-z", 1),
		"p2": loggedInPackage("p2", "stu-a", 1),
		"p3": loggedInPackage("p3", "stu-z", 1),
	}
	students := map[string]domain.Student{
		"stu-z": {StudentID: "stu-z", FirstName: "Zoe", LastName: "Abbot"},
		"stu-a": {StudentID: "stu-a", FirstName: "Ana", LastName: "Zheng"},
	}

	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(log, nil).Once()
	suite.mockPackageRepo.On("FindPackagesByIDs", ctx, []string{"p1", "p2", "p3"}).Return(packages, nil).Once()
	suite.mockDirectory.On("ResolveStudents", ctx, mock.Anything).Return(students, nil).Once()
	suite.mockDirectory.On("ResolveStaff", ctx, staffID).Return(&domain.Staff{StaffID: staffID}, nil).Once()
	suite.mockDirectory.On("ResolveBuildings", ctx, []string{"bld-1"}).Return(map[string]domain.Building{
		"bld-1": {BuildingID: "bld-1", Name: "North Hall"},
	}, nil).Once()

	resp, err := suite.service.GetLogDetail(ctx, "log-1")

	suite.Require().NoError(err)
	suite.Require().Len(resp.Groups, 2)
	// Abbot before Zheng regardless of entry order.
	suite.Equal("Abbot", resp.Groups[0].Recipient.LastName)
	suite.Len(resp.Groups[0].Entries, 2)
	suite.Equal("Zheng", resp.Groups[1].Recipient.LastName)
	suite.Require().Len(resp.Groups[1].Entries, 1)
	suite.False(resp.Groups[1].Entries[0].Present)
	suite.Equal(3, resp.TotalPackages)
	suite.Equal(2, resp.PresentCount)
	suite.Equal(1, resp.MissingCount)
}

func (suite *PackageLogServiceTestSuite) TestGetLogDetail_NotFound() {
	ctx := context.Background()

	suite.mockLogRepo.On("FindLogByID", ctx, "log-missing").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetLogDetail(ctx, "log-missing")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPackageLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PackageLogServiceTestSuite))
}
