package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/core/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DirectoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDirectoryRepository
	service  portssvc.DirectorySvcFacade
}

func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDirectoryRepository)
	suite.service = services.NewDirectoryService(suite.mockRepo)
}

func (suite *DirectoryServiceTestSuite) TestResolveStudent_Success() {
	ctx := context.Background()
	expected := &domain.Student{StudentID: "stu-1", FirstName: "Ada"}

	suite.mockRepo.On("FindStudentByID", ctx, "stu-1").Return(expected, nil).Once()

	student, err := suite.service.ResolveStudent(ctx, "stu-1")

	suite.Require().NoError(err)
	suite.Equal(expected, student)
}

func (suite *DirectoryServiceTestSuite) TestResolveStudent_NotFoundPassesThrough() {
	ctx := context.Background()

	suite.mockRepo.On("FindStudentByID", ctx, "stu-missing").Return(nil, apperrors.ErrNotFound).Once()

	student, err := suite.service.ResolveStudent(ctx, "stu-missing")

	suite.Require().Error(err)
	suite.Nil(student)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrAdapter)
}

func (suite *DirectoryServiceTestSuite) TestResolveStudent_FailureBecomesAdapterError() {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	suite.mockRepo.On("FindStudentByID", ctx, "stu-1").Return(nil, dbErr).Once()

	student, err := suite.service.ResolveStudent(ctx, "stu-1")

	suite.Require().Error(err)
	suite.Nil(student)
	suite.ErrorIs(err, apperrors.ErrAdapter)
	suite.ErrorIs(err, dbErr)
}

func (suite *DirectoryServiceTestSuite) TestResolveStudent_CancellationPassesThrough() {
	ctx := context.Background()

	suite.mockRepo.On("FindStudentByID", ctx, "stu-1").Return(nil, context.Canceled).Once()

	_, err := suite.service.ResolveStudent(ctx, "stu-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.NotErrorIs(err, apperrors.ErrAdapter)
}

func (suite *DirectoryServiceTestSuite) TestSearchStudents_EmptyQueryShortCircuits() {
	ctx := context.Background()

	resp, err := suite.service.SearchStudents(ctx, dto.SearchStudentsParams{Search: ""})

	suite.Require().NoError(err)
	suite.Empty(resp.Students)
	suite.Equal(int64(0), resp.TotalPages)
	suite.mockRepo.AssertNotCalled(suite.T(), "SearchStudents")
}

func (suite *DirectoryServiceTestSuite) TestSearchStudents_Pagination() {
	ctx := context.Background()
	students := []domain.Student{
		{StudentID: "stu-1", FirstName: "Ada", LastName: "Alvarez"},
		{StudentID: "stu-2", FirstName: "Ben", LastName: "Burke"},
	}

	suite.mockRepo.On("SearchStudents", ctx, "al", 20, 20).Return(students, int64(45), nil).Once()

	resp, err := suite.service.SearchStudents(ctx, dto.SearchStudentsParams{Search: "al", Page: 2, Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Students, 2)
	suite.Equal(int64(3), resp.TotalPages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DirectoryServiceTestSuite) TestListBuildings_Success() {
	ctx := context.Background()
	buildings := []domain.Building{
		{BuildingID: "bld-1", Name: "North Hall", Code: "NH"},
		{BuildingID: "bld-2", Name: "South Hall", Code: "SH"},
	}

	suite.mockRepo.On("ListBuildings", ctx).Return(buildings, nil).Once()

	resp, err := suite.service.ListBuildings(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Buildings, 2)
	suite.Equal("North Hall", resp.Buildings[0].Name)
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
