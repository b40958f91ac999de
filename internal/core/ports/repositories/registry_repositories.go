package repositories

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// TeacherRepositoryFacade covers the teacher name registry.
type TeacherRepositoryFacade interface {
	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
	SaveTeacher(ctx context.Context, teacher domain.Teacher) error
	UpdateTeacher(ctx context.Context, teacher domain.Teacher) error
	DeleteTeacher(ctx context.Context, teacherID string) error
}

// DocumentTypeRepositoryFacade covers the document-type name registry.
type DocumentTypeRepositoryFacade interface {
	ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)
	SaveDocumentType(ctx context.Context, docType domain.DocumentType) error
	UpdateDocumentType(ctx context.Context, docType domain.DocumentType) error
	DeleteDocumentType(ctx context.Context, docTypeID string) error
}
