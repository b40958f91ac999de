package boltdb

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
)

// printJobsKey names the print-job collection blob.
const printJobsKey = "printjobs"

// BoltPrintJobRepository stores the print-job collection as one JSON blob.
type BoltPrintJobRepository struct {
	BaseRepository
}

func newBoltPrintJobRepository(db *bolt.DB) portsrepo.PrintJobRepositoryFacade {
	return &BoltPrintJobRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PrintJobRepositoryFacade = (*BoltPrintJobRepository)(nil)

// ListPrintJobs retrieves the whole print-job collection.
func (r *BoltPrintJobRepository) ListPrintJobs(ctx context.Context) ([]domain.PrintJob, error) {
	var jobs []domain.PrintJob
	if err := r.loadCollection(ctx, printJobsKey, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindPrintJobByID scans the collection for the given ID.
func (r *BoltPrintJobRepository) FindPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error) {
	jobs, err := r.ListPrintJobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: print job %s", apperrors.ErrNotFound, jobID)
}

// SavePrintJob appends a fully-formed job and rewrites the collection.
func (r *BoltPrintJobRepository) SavePrintJob(ctx context.Context, job domain.PrintJob) error {
	jobs, err := r.ListPrintJobs(ctx)
	if err != nil {
		return err
	}
	return r.saveCollection(ctx, printJobsKey, append(jobs, job))
}

// UpdatePrintJob replaces the stored record with the same ID.
func (r *BoltPrintJobRepository) UpdatePrintJob(ctx context.Context, job domain.PrintJob) error {
	jobs, err := r.ListPrintJobs(ctx)
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = job
			return r.saveCollection(ctx, printJobsKey, jobs)
		}
	}
	return fmt.Errorf("%w: print job %s", apperrors.ErrNotFound, job.ID)
}

// DeletePrintJob removes the record with the given ID.
func (r *BoltPrintJobRepository) DeletePrintJob(ctx context.Context, jobID string) error {
	jobs, err := r.ListPrintJobs(ctx)
	if err != nil {
		return err
	}
	remaining := jobs[:0]
	found := false
	for _, job := range jobs {
		if job.ID == jobID {
			found = true
			continue
		}
		remaining = append(remaining, job)
	}
	if !found {
		return fmt.Errorf("%w: print job %s", apperrors.ErrNotFound, jobID)
	}
	return r.saveCollection(ctx, printJobsKey, remaining)
}
