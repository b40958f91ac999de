package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// TeacherSvcFacade exposes the teacher name registry.
type TeacherSvcFacade interface {
	GetTeachers(ctx context.Context) ([]domain.Teacher, error)
	CreateTeacher(ctx context.Context, name string) (*domain.Teacher, error)
	UpdateTeacher(ctx context.Context, teacherID string, name string) (*domain.Teacher, error)
	DeleteTeacher(ctx context.Context, teacherID string) error
}

// DocumentTypeSvcFacade exposes the document-type name registry.
type DocumentTypeSvcFacade interface {
	GetDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)
	CreateDocumentType(ctx context.Context, name string) (*domain.DocumentType, error)
	UpdateDocumentType(ctx context.Context, docTypeID string, name string) (*domain.DocumentType, error)
	DeleteDocumentType(ctx context.Context, docTypeID string) error
}
