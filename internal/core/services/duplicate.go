package services

import (
	"time"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/printenterprise/pe_backend/internal/dto"
)

// DuplicateWindow is how far back the detector looks for a near-identical
// submission before flagging a draft as a probable accidental resubmission.
const DuplicateWindow = 5 * time.Minute

// IsDuplicateJob reports whether the candidate draft matches a job recorded
// within the window before now: same class name, page count, copy count and
// print type. This is a heuristic classification, not a uniqueness constraint;
// a confirmed duplicate may still be created by the caller.
func IsDuplicateJob(candidate dto.CheckDuplicateRequest, existing []domain.PrintJob, now time.Time, window time.Duration) bool {
	cutoff := now.Add(-window)
	for _, job := range existing {
		if job.Timestamp.Before(cutoff) || job.Timestamp.After(now) {
			continue
		}
		if job.ClassName == candidate.ClassName &&
			job.Pages == candidate.Pages &&
			job.Copies == candidate.Copies &&
			job.PrintType == candidate.PrintType {
			return true
		}
	}
	return false
}
