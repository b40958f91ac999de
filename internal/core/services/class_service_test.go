package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/core/services"
)

// MockClassRepository is a mock type for the ClassRepositoryFacade interface
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) ListClasses(ctx context.Context) ([]domain.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Class), args.Error(1)
}

func (m *MockClassRepository) FindClassByID(ctx context.Context, classID string) (*domain.Class, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockClassRepository) SaveClass(ctx context.Context, class domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) UpdateClass(ctx context.Context, class domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) DeleteClass(ctx context.Context, classID string) error {
	args := m.Called(ctx, classID)
	return args.Error(0)
}

func (m *MockClassRepository) ReplaceClasses(ctx context.Context, classes []domain.Class) error {
	args := m.Called(ctx, classes)
	return args.Error(0)
}

// MockPrintJobReader is a mock type for the PrintJobReader interface
type MockPrintJobReader struct {
	mock.Mock
}

func (m *MockPrintJobReader) ListPrintJobs(ctx context.Context) ([]domain.PrintJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrintJob), args.Error(1)
}

func (m *MockPrintJobReader) FindPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintJob), args.Error(1)
}

// --- Test Suite Setup ---

type ClassServiceTestSuite struct {
	suite.Suite
	mockClassRepo *MockClassRepository
	mockJobReader *MockPrintJobReader
	service       portssvc.ClassSvcFacade
	ctx           context.Context
}

func (suite *ClassServiceTestSuite) SetupTest() {
	suite.mockClassRepo = new(MockClassRepository)
	suite.mockJobReader = new(MockPrintJobReader)
	suite.service = services.NewClassService(suite.mockClassRepo, suite.mockJobReader)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *ClassServiceTestSuite) TestCreateClass_Success() {
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return([]domain.Class{}, nil).Once()
	suite.mockClassRepo.On("SaveClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.Name == "5A" && c.TotalUnpaid.IsZero() && c.ID != ""
	})).Return(nil).Once()

	class, err := suite.service.CreateClass(suite.ctx, "5A")

	suite.Require().NoError(err)
	suite.Equal("5A", class.Name)
	suite.True(class.TotalUnpaid.IsZero())
	suite.mockClassRepo.AssertExpectations(suite.T())
}

func (suite *ClassServiceTestSuite) TestCreateClass_TrimsName() {
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return([]domain.Class{}, nil).Once()
	suite.mockClassRepo.On("SaveClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.Name == "5A"
	})).Return(nil).Once()

	class, err := suite.service.CreateClass(suite.ctx, "  5A  ")

	suite.Require().NoError(err)
	suite.Equal("5A", class.Name)
}

func (suite *ClassServiceTestSuite) TestCreateClass_DuplicateNameCaseInsensitive() {
	existing := []domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.Zero}}
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return(existing, nil).Once()

	_, err := suite.service.CreateClass(suite.ctx, "5a")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockClassRepo.AssertNotCalled(suite.T(), "SaveClass", mock.Anything, mock.Anything)
}

func (suite *ClassServiceTestSuite) TestCreateClass_EmptyName() {
	_, err := suite.service.CreateClass(suite.ctx, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClassServiceTestSuite) TestUpdateClass_NotFound() {
	suite.mockClassRepo.On("FindClassByID", suite.ctx, "missing").
		Return(nil, fmt.Errorf("class missing: %w", apperrors.ErrNotFound)).Once()

	_, err := suite.service.UpdateClass(suite.ctx, "missing", "6B")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClassServiceTestSuite) TestUpdateClass_PreservesBalance() {
	stored := &domain.Class{ID: "c1", Name: "5A", TotalUnpaid: decimal.NewFromFloat(12.5)}
	suite.mockClassRepo.On("FindClassByID", suite.ctx, "c1").Return(stored, nil).Once()
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return([]domain.Class{*stored}, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.ID == "c1" && c.Name == "6B" && c.TotalUnpaid.Equal(decimal.NewFromFloat(12.5))
	})).Return(nil).Once()

	class, err := suite.service.UpdateClass(suite.ctx, "c1", "6B")

	suite.Require().NoError(err)
	suite.Equal("6B", class.Name)
	suite.True(class.TotalUnpaid.Equal(decimal.NewFromFloat(12.5)))
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_AddsToExistingClass() {
	existing := []domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.NewFromFloat(2)}}
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return(existing, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.ID == "c1" && c.TotalUnpaid.Equal(decimal.NewFromFloat(7))
	})).Return(nil).Once()

	class, err := suite.service.AdjustBalance(suite.ctx, "5A", decimal.NewFromFloat(5))

	suite.Require().NoError(err)
	suite.True(class.TotalUnpaid.Equal(decimal.NewFromFloat(7)))
	suite.mockClassRepo.AssertExpectations(suite.T())
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_MatchesNameCaseInsensitively() {
	existing := []domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.Zero}}
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return(existing, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.ID == "c1" && c.TotalUnpaid.Equal(decimal.NewFromFloat(3))
	})).Return(nil).Once()

	_, err := suite.service.AdjustBalance(suite.ctx, "5a", decimal.NewFromFloat(3))

	suite.Require().NoError(err)
	suite.mockClassRepo.AssertNotCalled(suite.T(), "SaveClass", mock.Anything, mock.Anything)
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_ClampsAtZero() {
	existing := []domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.NewFromFloat(3)}}
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return(existing, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.TotalUnpaid.IsZero()
	})).Return(nil).Once()

	class, err := suite.service.AdjustBalance(suite.ctx, "5A", decimal.NewFromFloat(-5))

	suite.Require().NoError(err)
	suite.True(class.TotalUnpaid.IsZero())
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_LazilyCreatesUnknownClass() {
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return([]domain.Class{}, nil).Once()
	suite.mockClassRepo.On("SaveClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.Name == "9Z" && c.TotalUnpaid.Equal(decimal.NewFromFloat(4))
	})).Return(nil).Once()

	class, err := suite.service.AdjustBalance(suite.ctx, "9Z", decimal.NewFromFloat(4))

	suite.Require().NoError(err)
	suite.Equal("9Z", class.Name)
	suite.NotEmpty(class.ID)
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_LazyCreateClampsNegativeDelta() {
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return([]domain.Class{}, nil).Once()
	suite.mockClassRepo.On("SaveClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.Name == "9Z" && c.TotalUnpaid.IsZero()
	})).Return(nil).Once()

	class, err := suite.service.AdjustBalance(suite.ctx, "9Z", decimal.NewFromFloat(-4))

	suite.Require().NoError(err)
	suite.True(class.TotalUnpaid.IsZero())
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_ClampAbsorptionIsNotReversible() {
	// A subtraction that hits the zero floor loses the absorbed excess, so
	// replaying the inverse delta afterwards overshoots: 3 -5 +5 ends at 5,
	// not at the 3 the same deltas would produce in order of booking.
	suite.mockClassRepo.On("ListClasses", suite.ctx).
		Return([]domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.NewFromFloat(3)}}, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.ID == "c1" && c.TotalUnpaid.IsZero()
	})).Return(nil).Once()

	class, err := suite.service.AdjustBalance(suite.ctx, "5A", decimal.NewFromFloat(-5))
	suite.Require().NoError(err)
	suite.True(class.TotalUnpaid.IsZero())

	suite.mockClassRepo.On("ListClasses", suite.ctx).
		Return([]domain.Class{{ID: "c1", Name: "5A", TotalUnpaid: decimal.Zero}}, nil).Once()
	suite.mockClassRepo.On("UpdateClass", suite.ctx, mock.MatchedBy(func(c domain.Class) bool {
		return c.ID == "c1" && c.TotalUnpaid.Equal(decimal.NewFromFloat(5))
	})).Return(nil).Once()

	class, err = suite.service.AdjustBalance(suite.ctx, "5A", decimal.NewFromFloat(5))
	suite.Require().NoError(err)
	suite.True(class.TotalUnpaid.Equal(decimal.NewFromFloat(5)), "got %s", class.TotalUnpaid)
	suite.mockClassRepo.AssertExpectations(suite.T())
}

func (suite *ClassServiceTestSuite) TestAdjustBalance_EmptyName() {
	_, err := suite.service.AdjustBalance(suite.ctx, "  ", decimal.NewFromFloat(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClassServiceTestSuite) TestRecomputeBalances_RebuildsFromUnpaidJobs() {
	now := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	jobs := []domain.PrintJob{
		{ID: "j1", ClassName: "5A", TotalPrice: decimal.NewFromFloat(2), Paid: false, Timestamp: now},
		{ID: "j2", ClassName: "5a", TotalPrice: decimal.NewFromFloat(3), Paid: false, Timestamp: now},
		{ID: "j3", ClassName: "5A", TotalPrice: decimal.NewFromFloat(10), Paid: true, Timestamp: now},
		{ID: "j4", ClassName: "9Z", TotalPrice: decimal.NewFromFloat(1.5), Paid: false, Timestamp: now},
	}
	classes := []domain.Class{
		{ID: "c1", Name: "5A", TotalUnpaid: decimal.NewFromFloat(99)}, // drifted
		{ID: "c2", Name: "6B", TotalUnpaid: decimal.NewFromFloat(7)},  // no unpaid jobs left
	}
	suite.mockJobReader.On("ListPrintJobs", suite.ctx).Return(jobs, nil).Once()
	suite.mockClassRepo.On("ListClasses", suite.ctx).Return(classes, nil).Once()
	suite.mockClassRepo.On("ReplaceClasses", suite.ctx, mock.MatchedBy(func(out []domain.Class) bool {
		if len(out) != 3 {
			return false
		}
		byName := make(map[string]decimal.Decimal, len(out))
		for _, c := range out {
			byName[c.Name] = c.TotalUnpaid
		}
		return byName["5A"].Equal(decimal.NewFromFloat(5)) &&
			byName["6B"].IsZero() &&
			byName["9Z"].Equal(decimal.NewFromFloat(1.5))
	})).Return(nil).Once()

	result, err := suite.service.RecomputeBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(result, 3)
	suite.mockClassRepo.AssertExpectations(suite.T())
}

func (suite *ClassServiceTestSuite) TestGetClasses_DegradesToEmptyOnStorageFailure() {
	suite.mockClassRepo.On("ListClasses", suite.ctx).
		Return(nil, fmt.Errorf("read failed: %w", apperrors.ErrStorageUnavailable)).Once()

	classes, err := suite.service.GetClasses(suite.ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
	suite.NotNil(classes)
	suite.Empty(classes)
}

func TestClassServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClassServiceTestSuite))
}

func TestNewClassService_ImplementsFacade(t *testing.T) {
	svc := services.NewClassService(new(MockClassRepository), new(MockPrintJobReader))
	assert.NotNil(t, svc)
}
