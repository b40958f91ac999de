package services

import (
	"fmt"
	"time"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// serialPrefix is the shop tag that opens every receipt number.
const serialPrefix = "PE"

// NextSerialNumber derives the human-facing receipt code for a job created at
// now, given the current persisted job collection: PE-YYMMDD-NNN, where NNN is
// the count of jobs already recorded on that calendar date plus one.
//
// The suffix is derived from a count, not a monotonic counter, so the caller
// must invoke this against the collection state at the moment of commit and
// persist within the same critical section; the print-job ledger holds its
// mutation lock across both steps.
func NextSerialNumber(existing []domain.PrintJob, now time.Time) string {
	sameDay := 0
	for _, job := range existing {
		if job.IsSameCalendarDay(now) {
			sameDay++
		}
	}
	return fmt.Sprintf("%s-%s-%03d", serialPrefix, now.Format("060102"), sameDay+1)
}
