package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/dto"
	"github.com/printenterprise/pe_backend/internal/handlers"
	"github.com/printenterprise/pe_backend/internal/platform/config"
)

// --- Mock PrintJobService ---
type MockPrintJobService struct {
	mock.Mock
}

func (m *MockPrintJobService) GetPrintJobs(ctx context.Context) ([]domain.PrintJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) GetPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) GetTodayJobs(ctx context.Context) ([]domain.PrintJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) GetUnpaidJobs(ctx context.Context) ([]domain.PrintJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) GetJobsByClass(ctx context.Context, className string) ([]domain.PrintJob, error) {
	args := m.Called(ctx, className)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) CreatePrintJob(ctx context.Context, req dto.CreatePrintJobRequest) (*domain.PrintJob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) UpdatePrintJob(ctx context.Context, jobID string, req dto.UpdatePrintJobRequest) (*domain.PrintJob, error) {
	args := m.Called(ctx, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobService) DeletePrintJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockPrintJobService) CheckDuplicate(ctx context.Context, req dto.CheckDuplicateRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PrintJobSvcFacade = (*MockPrintJobService)(nil)

// --- Test Suite Setup ---

type PrintJobHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockPrintJobService
}

func (suite *PrintJobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSvc = new(MockPrintJobService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		PrintJob: suite.mockSvc,
	})
}

func (suite *PrintJobHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func storedJob() *domain.PrintJob {
	return &domain.PrintJob{
		ID:           "j1",
		SerialNumber: "PE-250307-001",
		Timestamp:    time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC),
		ClassName:    "5A",
		PrintType:    domain.Recto,
		Pages:        10,
		Copies:       5,
		TotalPrice:   decimal.NewFromFloat(5),
	}
}

// --- Test Cases ---

func (suite *PrintJobHandlerTestSuite) TestCreatePrintJob_Success() {
	suite.mockSvc.On("CreatePrintJob", mock.Anything, mock.AnythingOfType("dto.CreatePrintJobRequest")).
		Return(storedJob(), nil).Once()

	rec := suite.perform(http.MethodPost, "/api/v1/print-jobs", dto.CreatePrintJobRequest{
		ClassName: "5A",
		PrintType: domain.Recto,
		Pages:     10,
		Copies:    5,
	})

	suite.Equal(http.StatusCreated, rec.Code)
	var resp dto.PrintJobResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("PE-250307-001", resp.SerialNumber)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PrintJobHandlerTestSuite) TestCreatePrintJob_BindingRejectsUnknownPrintType() {
	rec := suite.perform(http.MethodPost, "/api/v1/print-jobs", map[string]any{
		"className": "5A",
		"printType": "Duplex",
		"pages":     10,
		"copies":    5,
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreatePrintJob", mock.Anything, mock.Anything)
}

func (suite *PrintJobHandlerTestSuite) TestCreatePrintJob_ValidationErrorMapsTo400() {
	suite.mockSvc.On("CreatePrintJob", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: pages must equal rectoPages + rectoVersoPages", apperrors.ErrValidation)).Once()

	rec := suite.perform(http.MethodPost, "/api/v1/print-jobs", dto.CreatePrintJobRequest{
		ClassName: "5A", PrintType: domain.Both, Pages: 10, RectoPages: 4, RectoVersoPages: 4, Copies: 1,
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *PrintJobHandlerTestSuite) TestCreatePrintJob_PersistenceErrorMapsTo503() {
	suite.mockSvc.On("CreatePrintJob", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("write failed: %w", apperrors.ErrPersistence)).Once()

	rec := suite.perform(http.MethodPost, "/api/v1/print-jobs", dto.CreatePrintJobRequest{
		ClassName: "5A", PrintType: domain.Recto, Pages: 10, Copies: 5,
	})

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (suite *PrintJobHandlerTestSuite) TestListPrintJobs_Plain() {
	suite.mockSvc.On("GetPrintJobs", mock.Anything).Return([]domain.PrintJob{*storedJob()}, nil).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/print-jobs", nil)

	suite.Equal(http.StatusOK, rec.Code)
	var resp []dto.PrintJobResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *PrintJobHandlerTestSuite) TestListPrintJobs_FilterRouting() {
	suite.mockSvc.On("GetTodayJobs", mock.Anything).Return([]domain.PrintJob{}, nil).Once()
	suite.mockSvc.On("GetUnpaidJobs", mock.Anything).Return([]domain.PrintJob{}, nil).Once()
	suite.mockSvc.On("GetJobsByClass", mock.Anything, "5A").Return([]domain.PrintJob{}, nil).Once()

	suite.Equal(http.StatusOK, suite.perform(http.MethodGet, "/api/v1/print-jobs?filter=today", nil).Code)
	suite.Equal(http.StatusOK, suite.perform(http.MethodGet, "/api/v1/print-jobs?filter=unpaid", nil).Code)
	suite.Equal(http.StatusOK, suite.perform(http.MethodGet, "/api/v1/print-jobs?class=5A", nil).Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *PrintJobHandlerTestSuite) TestListPrintJobs_StorageFailureDegradesToEmptyList() {
	suite.mockSvc.On("GetPrintJobs", mock.Anything).
		Return([]domain.PrintJob{}, fmt.Errorf("read failed: %w", apperrors.ErrStorageUnavailable)).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/print-jobs", nil)

	suite.Equal(http.StatusOK, rec.Code)
	var resp []dto.PrintJobResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Empty(resp)
}

func (suite *PrintJobHandlerTestSuite) TestGetPrintJob_NotFound() {
	suite.mockSvc.On("GetPrintJobByID", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("print job ghost: %w", apperrors.ErrNotFound)).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/print-jobs/ghost", nil)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *PrintJobHandlerTestSuite) TestUpdatePrintJob_Success() {
	updated := storedJob()
	updated.Paid = true
	suite.mockSvc.On("UpdatePrintJob", mock.Anything, "j1", dto.UpdatePrintJobRequest{Paid: true}).
		Return(updated, nil).Once()

	rec := suite.perform(http.MethodPut, "/api/v1/print-jobs/j1", dto.UpdatePrintJobRequest{Paid: true})

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.PrintJobResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.True(resp.Paid)
}

func (suite *PrintJobHandlerTestSuite) TestDeletePrintJob_Success() {
	suite.mockSvc.On("DeletePrintJob", mock.Anything, "j1").Return(nil).Once()

	rec := suite.perform(http.MethodDelete, "/api/v1/print-jobs/j1", nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *PrintJobHandlerTestSuite) TestCheckDuplicate() {
	suite.mockSvc.On("CheckDuplicate", mock.Anything, mock.AnythingOfType("dto.CheckDuplicateRequest")).
		Return(true, nil).Once()

	rec := suite.perform(http.MethodPost, "/api/v1/print-jobs/check-duplicate", dto.CheckDuplicateRequest{
		ClassName: "5A", PrintType: domain.Recto, Pages: 10, Copies: 5,
	})

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.CheckDuplicateResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.True(resp.Duplicate)
}

func (suite *PrintJobHandlerTestSuite) TestHealthCheck() {
	rec := suite.perform(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("OK", rec.Body.String())
}

func TestPrintJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PrintJobHandlerTestSuite))
}
