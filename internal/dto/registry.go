package dto

import "github.com/printenterprise/pe_backend/internal/core/domain"

// CreateTeacherRequest registers a teacher name.
type CreateTeacherRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTeacherRequest renames a registered teacher.
type UpdateTeacherRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeacherResponse is the wire shape of a teacher registry entry.
type TeacherResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToTeacherResponse converts a domain.Teacher to its wire shape.
func ToTeacherResponse(t *domain.Teacher) TeacherResponse {
	return TeacherResponse{ID: t.ID, Name: t.Name}
}

// ToListTeacherResponse converts a slice of teachers to their wire shape.
func ToListTeacherResponse(teachers []domain.Teacher) []TeacherResponse {
	res := make([]TeacherResponse, len(teachers))
	for i := range teachers {
		res[i] = ToTeacherResponse(&teachers[i])
	}
	return res
}

// CreateDocumentTypeRequest registers a document-type name.
type CreateDocumentTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateDocumentTypeRequest renames a registered document type.
type UpdateDocumentTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// DocumentTypeResponse is the wire shape of a document-type registry entry.
type DocumentTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToDocumentTypeResponse converts a domain.DocumentType to its wire shape.
func ToDocumentTypeResponse(d *domain.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{ID: d.ID, Name: d.Name}
}

// ToListDocumentTypeResponse converts a slice of document types to their wire shape.
func ToListDocumentTypeResponse(types []domain.DocumentType) []DocumentTypeResponse {
	res := make([]DocumentTypeResponse, len(types))
	for i := range types {
		res[i] = ToDocumentTypeResponse(&types[i])
	}
	return res
}
