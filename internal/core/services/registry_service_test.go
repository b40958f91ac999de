package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/core/services"
)

// MockTeacherRepository is a mock type for the TeacherRepositoryFacade interface
type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) SaveTeacher(ctx context.Context, teacher domain.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) UpdateTeacher(ctx context.Context, teacher domain.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) DeleteTeacher(ctx context.Context, teacherID string) error {
	args := m.Called(ctx, teacherID)
	return args.Error(0)
}

// MockDocumentTypeRepository is a mock type for the DocumentTypeRepositoryFacade interface
type MockDocumentTypeRepository struct {
	mock.Mock
}

func (m *MockDocumentTypeRepository) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) SaveDocumentType(ctx context.Context, docType domain.DocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockDocumentTypeRepository) UpdateDocumentType(ctx context.Context, docType domain.DocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockDocumentTypeRepository) DeleteDocumentType(ctx context.Context, docTypeID string) error {
	args := m.Called(ctx, docTypeID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type RegistryServiceTestSuite struct {
	suite.Suite
	mockTeacherRepo *MockTeacherRepository
	mockDocRepo     *MockDocumentTypeRepository
	teacherSvc      portssvc.TeacherSvcFacade
	docTypeSvc      portssvc.DocumentTypeSvcFacade
	ctx             context.Context
}

func (suite *RegistryServiceTestSuite) SetupTest() {
	suite.mockTeacherRepo = new(MockTeacherRepository)
	suite.mockDocRepo = new(MockDocumentTypeRepository)
	suite.teacherSvc = services.NewTeacherService(suite.mockTeacherRepo)
	suite.docTypeSvc = services.NewDocumentTypeService(suite.mockDocRepo)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *RegistryServiceTestSuite) TestCreateTeacher_Success() {
	suite.mockTeacherRepo.On("ListTeachers", suite.ctx).Return([]domain.Teacher{}, nil).Once()
	suite.mockTeacherRepo.On("SaveTeacher", suite.ctx, mock.MatchedBy(func(t domain.Teacher) bool {
		return t.Name == "Mme Alaoui" && t.ID != ""
	})).Return(nil).Once()

	teacher, err := suite.teacherSvc.CreateTeacher(suite.ctx, "Mme Alaoui")

	suite.Require().NoError(err)
	suite.Equal("Mme Alaoui", teacher.Name)
	suite.mockTeacherRepo.AssertExpectations(suite.T())
}

func (suite *RegistryServiceTestSuite) TestCreateTeacher_DuplicateCaseInsensitive() {
	existing := []domain.Teacher{{ID: "t1", Name: "Mme Alaoui"}}
	suite.mockTeacherRepo.On("ListTeachers", suite.ctx).Return(existing, nil).Once()

	_, err := suite.teacherSvc.CreateTeacher(suite.ctx, "mme alaoui")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RegistryServiceTestSuite) TestCreateTeacher_EmptyName() {
	_, err := suite.teacherSvc.CreateTeacher(suite.ctx, "  ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RegistryServiceTestSuite) TestUpdateTeacher_AllowsKeepingOwnName() {
	existing := []domain.Teacher{{ID: "t1", Name: "Mme Alaoui"}}
	suite.mockTeacherRepo.On("ListTeachers", suite.ctx).Return(existing, nil).Once()
	suite.mockTeacherRepo.On("UpdateTeacher", suite.ctx, domain.Teacher{ID: "t1", Name: "Mme Alaoui"}).Return(nil).Once()

	teacher, err := suite.teacherSvc.UpdateTeacher(suite.ctx, "t1", "Mme Alaoui")

	suite.Require().NoError(err)
	suite.Equal("t1", teacher.ID)
}

func (suite *RegistryServiceTestSuite) TestCreateDocumentType_Success() {
	suite.mockDocRepo.On("ListDocumentTypes", suite.ctx).Return([]domain.DocumentType{}, nil).Once()
	suite.mockDocRepo.On("SaveDocumentType", suite.ctx, mock.MatchedBy(func(d domain.DocumentType) bool {
		return d.Name == "Exam" && d.ID != ""
	})).Return(nil).Once()

	docType, err := suite.docTypeSvc.CreateDocumentType(suite.ctx, "Exam")

	suite.Require().NoError(err)
	suite.Equal("Exam", docType.Name)
}

func (suite *RegistryServiceTestSuite) TestCreateDocumentType_Duplicate() {
	existing := []domain.DocumentType{{ID: "d1", Name: "Exam"}}
	suite.mockDocRepo.On("ListDocumentTypes", suite.ctx).Return(existing, nil).Once()

	_, err := suite.docTypeSvc.CreateDocumentType(suite.ctx, "exam")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RegistryServiceTestSuite) TestDeleteDocumentType_Success() {
	suite.mockDocRepo.On("DeleteDocumentType", suite.ctx, "d1").Return(nil).Once()

	err := suite.docTypeSvc.DeleteDocumentType(suite.ctx, "d1")

	suite.NoError(err)
}

func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}
