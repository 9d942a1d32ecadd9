package jobs

import (
	"context"
	"time"

	"github.com/rodolog/brokerage-api/internal/service"
	"go.uber.org/zap"
)

// OverdueTasksJob flips pending follow-up tasks past their scheduled date to
// overdue so they surface in the daily work queue.
type OverdueTasksJob struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

// NewOverdueTasksJob creates the overdue task sweep job
func NewOverdueTasksJob(taskService *service.TaskService, logger *zap.Logger) *OverdueTasksJob {
	return &OverdueTasksJob{
		taskService: taskService,
		logger:      logger,
	}
}

// Run executes one sweep
func (j *OverdueTasksJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	changed, err := j.taskService.MarkOverdue(ctx)
	if err != nil {
		j.logger.Error("overdue task sweep failed", zap.Error(err))
		return
	}

	j.logger.Info("overdue task sweep finished", zap.Int64("tasks_flagged", changed))
}
