package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrintType enumerates the supported ways a document can be printed.
type PrintType string

const (
	// Recto prints on one side of each sheet.
	Recto PrintType = "Recto"
	// RectoVerso prints on both sides of each sheet.
	RectoVerso PrintType = "Recto-verso"
	// Both mixes single-sided and double-sided pages within one job.
	Both PrintType = "Both"
)

// PrintJob is one job ticket in the ledger. ID, SerialNumber and Timestamp are
// assigned at creation and never change afterwards. TotalPrice is computed once
// from the price table in force at creation time and is stored as-is; it is
// never recomputed from Pages/Copies/PrintType on read, so later price-table
// edits do not silently rewrite history.
type PrintJob struct {
	ID           string          `json:"id"`
	SerialNumber string          `json:"serialNumber"`
	Timestamp    time.Time       `json:"timestamp"`
	ClassName    string          `json:"className"`
	TeacherName  string          `json:"teacherName,omitempty"`
	DocumentType string          `json:"documentType,omitempty"`
	PrintType    PrintType       `json:"printType"`
	Pages        int             `json:"pages"`
	Copies       int             `json:"copies"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Paid         bool            `json:"paid"`
	Notes        string          `json:"notes,omitempty"`
}

// IsSameCalendarDay reports whether the job was created on the same calendar
// date as t, in t's location.
func (j PrintJob) IsSameCalendarDay(t time.Time) bool {
	jy, jm, jd := j.Timestamp.In(t.Location()).Date()
	ty, tm, td := t.Date()
	return jy == ty && jm == tm && jd == td
}
