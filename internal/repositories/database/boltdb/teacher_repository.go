package boltdb

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
)

// teachersKey names the teacher registry blob.
const teachersKey = "teachers"

// BoltTeacherRepository stores the teacher registry as one JSON blob.
type BoltTeacherRepository struct {
	BaseRepository
}

func newBoltTeacherRepository(db *bolt.DB) portsrepo.TeacherRepositoryFacade {
	return &BoltTeacherRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TeacherRepositoryFacade = (*BoltTeacherRepository)(nil)

func (r *BoltTeacherRepository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	if err := r.loadCollection(ctx, teachersKey, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *BoltTeacherRepository) SaveTeacher(ctx context.Context, teacher domain.Teacher) error {
	teachers, err := r.ListTeachers(ctx)
	if err != nil {
		return err
	}
	return r.saveCollection(ctx, teachersKey, append(teachers, teacher))
}

func (r *BoltTeacherRepository) UpdateTeacher(ctx context.Context, teacher domain.Teacher) error {
	teachers, err := r.ListTeachers(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = teacher
			return r.saveCollection(ctx, teachersKey, teachers)
		}
	}
	return fmt.Errorf("%w: teacher %s", apperrors.ErrNotFound, teacher.ID)
}

func (r *BoltTeacherRepository) DeleteTeacher(ctx context.Context, teacherID string) error {
	teachers, err := r.ListTeachers(ctx)
	if err != nil {
		return err
	}
	remaining := teachers[:0]
	found := false
	for _, teacher := range teachers {
		if teacher.ID == teacherID {
			found = true
			continue
		}
		remaining = append(remaining, teacher)
	}
	if !found {
		return fmt.Errorf("%w: teacher %s", apperrors.ErrNotFound, teacherID)
	}
	return r.saveCollection(ctx, teachersKey, remaining)
}
