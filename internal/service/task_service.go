package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo *repository.TaskRepository
	logger   *zap.Logger
}

func NewTaskService(taskRepo *repository.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{taskRepo: taskRepo, logger: logger}
}

// List returns tasks ordered by scheduled date. All filters are optional;
// dueOn narrows the listing to a single day for the agenda.
func (s *TaskService) List(ctx context.Context, leadID *uuid.UUID, status domain.TaskStatus, dueOn *time.Time) ([]domain.TaskDTO, error) {
	tasks, err := s.taskRepo.List(ctx, leadID, status, dueOn)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	dtos := make([]domain.TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = mapper.ToTaskDTO(&tasks[i])
	}
	return dtos, nil
}

// Complete marks a task as done, recording the completion time
func (s *TaskService) Complete(ctx context.Context, id uuid.UUID) (*domain.TaskDTO, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task.Status = domain.TaskConcluida
	task.DataConclusao = &now

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	dto := mapper.ToTaskDTO(task)
	return &dto, nil
}

// Reschedule moves a task to a new date and reopens it if it was overdue
func (s *TaskService) Reschedule(ctx context.Context, id uuid.UUID, req *domain.RescheduleTaskRequest) (*domain.TaskDTO, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	newDate, err := time.ParseInLocation("2006-01-02", req.DataProgramada, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: dataProgramada", ErrInvalidInput)
	}

	task.DataProgramada = newDate
	if task.Status == domain.TaskAtrasada {
		task.Status = domain.TaskPendente
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to reschedule task: %w", err)
	}

	dto := mapper.ToTaskDTO(task)
	return &dto, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getTask(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// MarkOverdue flips pending tasks scheduled before today to overdue. Invoked
// by the scheduled job and available for manual triggering.
func (s *TaskService) MarkOverdue(ctx context.Context) (int64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	changed, err := s.taskRepo.MarkOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue tasks: %w", err)
	}
	if changed > 0 {
		s.logger.Info("tasks marked overdue", zap.Int64("count", changed))
	}
	return changed, nil
}

func (s *TaskService) getTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
