package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campus-reslife/reslife_backend/internal/apperrors"
	"github.com/campus-reslife/reslife_backend/internal/core/domain"
	portssvc "github.com/campus-reslife/reslife_backend/internal/core/ports/services"
	"github.com/campus-reslife/reslife_backend/internal/dto"
	"github.com/campus-reslife/reslife_backend/internal/handlers"
	"github.com/campus-reslife/reslife_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PackageService ---
type MockPackageService struct {
	mock.Mock
}

func (m *MockPackageService) IntakePackage(ctx context.Context, req dto.CreatePackageRequest, staffID string) (*domain.Package, error) {
	args := m.Called(ctx, req, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}
func (m *MockPackageService) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}
func (m *MockPackageService) ListPackages(ctx context.Context, params dto.ListPackagesParams) (*dto.ListPackagesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPackagesResponse), args.Error(1)
}
func (m *MockPackageService) ListPackagesGroupedByRecipient(ctx context.Context, params dto.ListPackagesParams) (*dto.GroupedPackagesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GroupedPackagesResponse), args.Error(1)
}
func (m *MockPackageService) BulkTransition(ctx context.Context, packageIDs []string, target domain.PackageStatus, staffID string) (*dto.BulkTransitionResult, error) {
	args := m.Called(ctx, packageIDs, target, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkTransitionResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PackageSvcFacade = (*MockPackageService)(nil)

// --- Mock PackageLogService ---
type MockPackageLogService struct {
	mock.Mock
}

func (m *MockPackageLogService) CreateLog(ctx context.Context, req dto.CreatePackageLogRequest, staffID string) (*dto.CreatePackageLogResponse, error) {
	args := m.Called(ctx, req, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatePackageLogResponse), args.Error(1)
}
func (m *MockPackageLogService) ListLogs(ctx context.Context, params dto.ListPackageLogsParams) (*dto.ListPackageLogsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPackageLogsResponse), args.Error(1)
}
func (m *MockPackageLogService) GetLogDetail(ctx context.Context, packageLogID string) (*dto.PackageLogDetailResponse, error) {
	args := m.Called(ctx, packageLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PackageLogDetailResponse), args.Error(1)
}

var _ portssvc.PackageLogSvcFacade = (*MockPackageLogService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ResolveStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockDirectoryService) ResolveStudents(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	args := m.Called(ctx, studentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Student), args.Error(1)
}
func (m *MockDirectoryService) ResolveStaff(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
func (m *MockDirectoryService) ResolveStaffMembers(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	args := m.Called(ctx, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Staff), args.Error(1)
}
func (m *MockDirectoryService) ResolveBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}
func (m *MockDirectoryService) ResolveBuildings(ctx context.Context, buildingIDs []string) (map[string]domain.Building, error) {
	args := m.Called(ctx, buildingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Building), args.Error(1)
}
func (m *MockDirectoryService) SearchStudents(ctx context.Context, params dto.SearchStudentsParams) (*dto.SearchStudentsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchStudentsResponse), args.Error(1)
}
func (m *MockDirectoryService) ListBuildings(ctx context.Context) (*dto.ListBuildingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBuildingsResponse), args.Error(1)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// --- Test Suite ---
type PackageHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPackageService *MockPackageService
	mockLogService     *MockPackageLogService
	mockDirectory      *MockDirectoryService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PackageHandlerTestSuite) generateTestToken(staffID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "reslife-test",
		Subject:   staffID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *PackageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPackageService = new(MockPackageService)
	suite.mockLogService = new(MockPackageLogService)
	suite.mockDirectory = new(MockDirectoryService)

	cfg := &config.Config{
		JWTSecret:       suite.jwtSecret,
		SearchRateLimit: "100-S",
		IsProduction:    true, // skip swagger routes
	}
	container := &portssvc.ServiceContainer{
		Package:    suite.mockPackageService,
		PackageLog: suite.mockLogService,
		Directory:  suite.mockDirectory,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *PackageHandlerTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PackageHandlerTestSuite) TestIntakePackage_Success() {
	staffID := uuid.NewString()
	reqBody := dto.CreatePackageRequest{
		TrackingNumber: "1Z999AA10123456784",
		RecipientID:    "stu-1",
		BuildingID:     "bld-1",
		ParcelType:     "BOX",
		ShippingType:   "UPS",
	}
	created := &domain.Package{
		PackageID:   uuid.NewString(),
		RecipientID: "stu-1",
		BuildingID:  "bld-1",
		StaffID:     staffID,
		Status:      domain.LoggedIn,
		Version:     1,
		ReceivedAt:  time.Now(),
	}

	suite.mockPackageService.On("IntakePackage", mock.Anything, mock.AnythingOfType("dto.CreatePackageRequest"), staffID).Return(created, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/packages", suite.generateTestToken(staffID), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PackageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PackageID, resp.PackageID)
	suite.Equal("LOGGED_IN", resp.Status)
	suite.mockPackageService.AssertExpectations(suite.T())
}

func (suite *PackageHandlerTestSuite) TestIntakePackage_Unauthorized() {
	w := suite.request(http.MethodPost, "/api/v1/packages", "", dto.CreatePackageRequest{})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPackageService.AssertNotCalled(suite.T(), "IntakePackage")
}

func (suite *PackageHandlerTestSuite) TestIntakePackage_MissingRecipient() {
	staffID := uuid.NewString()
	// recipientID is required; binding rejects before the service is called
	reqBody := map[string]interface{}{
		"buildingID":   "bld-1",
		"parcelType":   "BOX",
		"shippingType": "UPS",
	}

	w := suite.request(http.MethodPost, "/api/v1/packages", suite.generateTestToken(staffID), reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPackageService.AssertNotCalled(suite.T(), "IntakePackage")
}

func (suite *PackageHandlerTestSuite) TestLogoutPackages_PartialConflicts() {
	staffID := uuid.NewString()
	result := &dto.BulkTransitionResult{
		Updated: []string{"p1"},
		Conflicts: []dto.TransitionConflict{
			{PackageID: "p2", Reason: "already_logged_out"},
		},
	}

	suite.mockPackageService.On("BulkTransition", mock.Anything, []string{"p1", "p2"}, domain.LoggedOut, staffID).Return(result, nil).Once()

	w := suite.request(http.MethodPatch, "/api/v1/packages/logout", suite.generateTestToken(staffID), dto.BulkTransitionRequest{PackageIDs: []string{"p1", "p2"}})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BulkTransitionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"p1"}, resp.Updated)
	suite.Require().Len(resp.Conflicts, 1)
	suite.Equal("already_logged_out", resp.Conflicts[0].Reason)
	suite.mockPackageService.AssertExpectations(suite.T())
}

func (suite *PackageHandlerTestSuite) TestMarkPackagesLost_RoutesToLostTarget() {
	staffID := uuid.NewString()
	result := &dto.BulkTransitionResult{Updated: []string{"p1"}, Conflicts: []dto.TransitionConflict{}}

	suite.mockPackageService.On("BulkTransition", mock.Anything, []string{"p1"}, domain.Lost, staffID).Return(result, nil).Once()

	w := suite.request(http.MethodPatch, "/api/v1/packages/lost", suite.generateTestToken(staffID), dto.BulkTransitionRequest{PackageIDs: []string{"p1"}})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPackageService.AssertExpectations(suite.T())
}

func (suite *PackageHandlerTestSuite) TestGetPackageByID_NotFound() {
	staffID := uuid.NewString()

	suite.mockPackageService.On("GetPackageByID", mock.Anything, "p-missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/v1/packages/p-missing", suite.generateTestToken(staffID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PackageHandlerTestSuite) TestCreateLog_Success() {
	staffID := uuid.NewString()
	reqBody := dto.CreatePackageLogRequest{
		BuildingIDs:       []string{"bld-1"},
		PresenceOverrides: map[string]bool{"p2": false},
	}
	resp := &dto.CreatePackageLogResponse{
		Log: dto.PackageLogResponse{
			PackageLogID:  uuid.NewString(),
			TotalPackages: 2,
			PresentCount:  1,
			MissingCount:  1,
		},
		TransitionConflicts: []dto.TransitionConflict{},
	}

	suite.mockLogService.On("CreateLog", mock.Anything, mock.AnythingOfType("dto.CreatePackageLogRequest"), staffID).Return(resp, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/packagelogs", suite.generateTestToken(staffID), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var decoded dto.CreatePackageLogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	suite.Equal(1, decoded.Log.MissingCount)
	suite.mockLogService.AssertExpectations(suite.T())
}

func (suite *PackageHandlerTestSuite) TestCreateLog_EmptyScopeRejectedByBinding() {
	staffID := uuid.NewString()

	w := suite.request(http.MethodPost, "/api/v1/packagelogs", suite.generateTestToken(staffID), map[string]interface{}{"buildingIDs": []string{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLogService.AssertNotCalled(suite.T(), "CreateLog")
}

func (suite *PackageHandlerTestSuite) TestSearchStudents_Success() {
	staffID := uuid.NewString()
	resp := &dto.SearchStudentsResponse{
		Students: []dto.StudentResponse{
			{StudentID: "stu-1", FirstName: "Ada", LastName: "Alvarez"},
		},
		TotalPages: 1,
	}

	suite.mockDirectory.On("SearchStudents", mock.Anything, mock.MatchedBy(func(p dto.SearchStudentsParams) bool {
		return p.Search == "alv" && p.Page == 1 && p.Limit == 20
	})).Return(resp, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/students?search=alv", suite.generateTestToken(staffID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var decoded dto.SearchStudentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	suite.Require().Len(decoded.Students, 1)
	suite.Equal("Alvarez", decoded.Students[0].LastName)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *PackageHandlerTestSuite) TestHealth_NoAuthRequired() {
	w := suite.request(http.MethodGet, "/health", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestPackageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}
