package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
)

// teacherService maintains the teacher name registry: a flat list of names,
// unique case-insensitively.
type teacherService struct {
	repo portsrepo.TeacherRepositoryFacade
	mu   sync.Mutex
}

// NewTeacherService creates the teacher registry service.
func NewTeacherService(repo portsrepo.TeacherRepositoryFacade) portssvc.TeacherSvcFacade {
	return &teacherService{repo: repo}
}

var _ portssvc.TeacherSvcFacade = (*teacherService)(nil)

func (s *teacherService) GetTeachers(ctx context.Context) ([]domain.Teacher, error) {
	teachers, err := s.repo.ListTeachers(ctx)
	if err != nil {
		return []domain.Teacher{}, fmt.Errorf("failed to list teachers: %w", err)
	}
	if teachers == nil {
		teachers = []domain.Teacher{}
	}
	return teachers, nil
}

func (s *teacherService) CreateTeacher(ctx context.Context, name string) (*domain.Teacher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: teacher name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.repo.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers for uniqueness check: %w", err)
	}
	for _, t := range teachers {
		if strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("%w: teacher %q", apperrors.ErrDuplicate, name)
		}
	}

	teacher := domain.Teacher{ID: uuid.NewString(), Name: name}
	if err := s.repo.SaveTeacher(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to save teacher %q: %w", name, err)
	}
	return &teacher, nil
}

func (s *teacherService) UpdateTeacher(ctx context.Context, teacherID string, name string) (*domain.Teacher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: teacher name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teachers, err := s.repo.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	for _, t := range teachers {
		if t.ID != teacherID && strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("%w: teacher %q", apperrors.ErrDuplicate, name)
		}
	}

	teacher := domain.Teacher{ID: teacherID, Name: name}
	if err := s.repo.UpdateTeacher(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to update teacher %s: %w", teacherID, err)
	}
	return &teacher, nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, teacherID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteTeacher(ctx, teacherID); err != nil {
		return fmt.Errorf("failed to delete teacher %s: %w", teacherID, err)
	}
	return nil
}

// documentTypeService maintains the document-type registry under the same
// rules as the teacher registry.
type documentTypeService struct {
	repo portsrepo.DocumentTypeRepositoryFacade
	mu   sync.Mutex
}

// NewDocumentTypeService creates the document-type registry service.
func NewDocumentTypeService(repo portsrepo.DocumentTypeRepositoryFacade) portssvc.DocumentTypeSvcFacade {
	return &documentTypeService{repo: repo}
}

var _ portssvc.DocumentTypeSvcFacade = (*documentTypeService)(nil)

func (s *documentTypeService) GetDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	types, err := s.repo.ListDocumentTypes(ctx)
	if err != nil {
		return []domain.DocumentType{}, fmt.Errorf("failed to list document types: %w", err)
	}
	if types == nil {
		types = []domain.DocumentType{}
	}
	return types, nil
}

func (s *documentTypeService) CreateDocumentType(ctx context.Context, name string) (*domain.DocumentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document type name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	types, err := s.repo.ListDocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types for uniqueness check: %w", err)
	}
	for _, t := range types {
		if strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("%w: document type %q", apperrors.ErrDuplicate, name)
		}
	}

	docType := domain.DocumentType{ID: uuid.NewString(), Name: name}
	if err := s.repo.SaveDocumentType(ctx, docType); err != nil {
		return nil, fmt.Errorf("failed to save document type %q: %w", name, err)
	}
	return &docType, nil
}

func (s *documentTypeService) UpdateDocumentType(ctx context.Context, docTypeID string, name string) (*domain.DocumentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document type name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	types, err := s.repo.ListDocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	for _, t := range types {
		if t.ID != docTypeID && strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("%w: document type %q", apperrors.ErrDuplicate, name)
		}
	}

	docType := domain.DocumentType{ID: docTypeID, Name: name}
	if err := s.repo.UpdateDocumentType(ctx, docType); err != nil {
		return nil, fmt.Errorf("failed to update document type %s: %w", docTypeID, err)
	}
	return &docType, nil
}

func (s *documentTypeService) DeleteDocumentType(ctx context.Context, docTypeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteDocumentType(ctx, docTypeID); err != nil {
		return fmt.Errorf("failed to delete document type %s: %w", docTypeID, err)
	}
	return nil
}
