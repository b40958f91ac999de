package dto

import (
	"time"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePrintJobRequest is the draft for a new job ticket. ID, serial number,
// timestamp and total price are assigned by the ledger, never supplied here.
// For the "Both" print type, RectoPages and RectoVersoPages are authoritative
// and Pages must equal their sum.
type CreatePrintJobRequest struct {
	ClassName       string           `json:"className" binding:"required"`
	TeacherName     string           `json:"teacherName"`
	DocumentType    string           `json:"documentType"`
	PrintType       domain.PrintType `json:"printType" binding:"required,oneof=Recto Recto-verso Both"`
	Pages           int              `json:"pages" binding:"required,gt=0"`
	RectoPages      int              `json:"rectoPages" binding:"gte=0"`
	RectoVersoPages int              `json:"rectoVersoPages" binding:"gte=0"`
	Copies          int              `json:"copies" binding:"required,gt=0"`
	Paid            bool             `json:"paid"`
	Notes           string           `json:"notes"`
}

// UpdatePrintJobRequest carries the mutable fields of a stored job. Identity,
// pricing inputs and class attribution are fixed at creation and cannot be
// changed through an update.
type UpdatePrintJobRequest struct {
	Paid         bool   `json:"paid"`
	TeacherName  string `json:"teacherName"`
	DocumentType string `json:"documentType"`
	Notes        string `json:"notes"`
}

// CheckDuplicateRequest describes a draft to test against recent ledger
// entries for accidental resubmission.
type CheckDuplicateRequest struct {
	ClassName string           `json:"className" binding:"required"`
	PrintType domain.PrintType `json:"printType" binding:"required,oneof=Recto Recto-verso Both"`
	Pages     int              `json:"pages" binding:"required,gt=0"`
	Copies    int              `json:"copies" binding:"required,gt=0"`
}

// CheckDuplicateResponse reports the classification outcome.
type CheckDuplicateResponse struct {
	Duplicate bool `json:"duplicate"`
}

// PrintJobResponse is the wire shape of a job ticket.
type PrintJobResponse struct {
	ID           string           `json:"id"`
	SerialNumber string           `json:"serialNumber"`
	Timestamp    time.Time        `json:"timestamp"`
	ClassName    string           `json:"className"`
	TeacherName  string           `json:"teacherName,omitempty"`
	DocumentType string           `json:"documentType,omitempty"`
	PrintType    domain.PrintType `json:"printType"`
	Pages        int              `json:"pages"`
	Copies       int              `json:"copies"`
	TotalPrice   decimal.Decimal  `json:"totalPrice"`
	Paid         bool             `json:"paid"`
	Notes        string           `json:"notes,omitempty"`
}

// ToPrintJobResponse converts a domain.PrintJob to its wire shape.
func ToPrintJobResponse(job *domain.PrintJob) PrintJobResponse {
	return PrintJobResponse{
		ID:           job.ID,
		SerialNumber: job.SerialNumber,
		Timestamp:    job.Timestamp,
		ClassName:    job.ClassName,
		TeacherName:  job.TeacherName,
		DocumentType: job.DocumentType,
		PrintType:    job.PrintType,
		Pages:        job.Pages,
		Copies:       job.Copies,
		TotalPrice:   job.TotalPrice,
		Paid:         job.Paid,
		Notes:        job.Notes,
	}
}

// ToListPrintJobResponse converts a slice of jobs to their wire shape.
func ToListPrintJobResponse(jobs []domain.PrintJob) []PrintJobResponse {
	res := make([]PrintJobResponse, len(jobs))
	for i := range jobs {
		res[i] = ToPrintJobResponse(&jobs[i])
	}
	return res
}
