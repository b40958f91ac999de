package dto

import (
	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClassRequest registers a new billing bucket.
type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateClassRequest renames an existing class.
type UpdateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// AdjustBalanceRequest applies a signed delta to a class balance by name.
// A class that does not exist yet is created on the fly.
type AdjustBalanceRequest struct {
	ClassName string          `json:"className" binding:"required"`
	Delta     decimal.Decimal `json:"delta" binding:"required"`
}

// ClassResponse is the wire shape of a class record.
type ClassResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalUnpaid decimal.Decimal `json:"totalUnpaid"`
}

// ToClassResponse converts a domain.Class to its wire shape.
func ToClassResponse(class *domain.Class) ClassResponse {
	return ClassResponse{
		ID:          class.ID,
		Name:        class.Name,
		TotalUnpaid: class.TotalUnpaid,
	}
}

// ToListClassResponse converts a slice of classes to their wire shape.
func ToListClassResponse(classes []domain.Class) []ClassResponse {
	res := make([]ClassResponse, len(classes))
	for i := range classes {
		res[i] = ToClassResponse(&classes[i])
	}
	return res
}
