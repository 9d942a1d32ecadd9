package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Preload("Lead").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

// List returns tasks filtered by lead, status and scheduled day. A nil
// dueOn means any day; the agenda view passes the day it displays.
func (r *TaskRepository) List(ctx context.Context, leadID *uuid.UUID, status domain.TaskStatus, dueOn *time.Time) ([]domain.Task, error) {
	var tasks []domain.Task
	query := r.db.WithContext(ctx).Preload("Lead")

	if leadID != nil {
		query = query.Where("lead_id = ?", *leadID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if dueOn != nil {
		start := time.Date(dueOn.Year(), dueOn.Month(), dueOn.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("data_programada >= ? AND data_programada < ?", start, start.AddDate(0, 0, 1))
	}

	err := query.Order("data_programada ASC").Find(&tasks).Error
	return tasks, err
}

// MarkOverdue flips pending tasks scheduled before the cutoff to overdue and
// returns how many rows changed
func (r *TaskRepository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("status = ?", domain.TaskPendente).
		Where("data_programada < ?", cutoff).
		Update("status", domain.TaskAtrasada)
	return result.RowsAffected, result.Error
}

// UpdatePendingMatching rewrites future pending tasks generated from a
// template step. Matching is by the step's previous tipo and descricao, so
// template edits reach tasks already scheduled but not yet due.
func (r *TaskRepository) UpdatePendingMatching(ctx context.Context, tipo, descricao string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("status = ?", domain.TaskPendente).
		Where("tipo = ? AND descricao = ?", tipo, descricao).
		Where("data_programada >= ?", time.Now().UTC().Truncate(24*time.Hour)).
		Updates(updates)
	return result.RowsAffected, result.Error
}
