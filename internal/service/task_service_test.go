package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTaskService(db *gorm.DB) *service.TaskService {
	return service.NewTaskService(repository.NewTaskRepository(db), zap.NewNop())
}

func createTask(t *testing.T, db *gorm.DB, leadID uuid.UUID, scheduled time.Time, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task := &domain.Task{
		LeadID:         leadID,
		Tipo:           "ligacao",
		Descricao:      "Ligar para o lead",
		DataProgramada: scheduled,
		Status:         status,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestTaskService_Complete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	task := createTask(t, db, lead.ID, today, domain.TaskPendente)

	dto, err := svc.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskConcluida, dto.Status)
	assert.NotEmpty(t, dto.DataConclusao)
}

func TestTaskService_List_ByDay(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	createTask(t, db, lead.ID, today, domain.TaskPendente)
	createTask(t, db, lead.ID, today, domain.TaskConcluida)
	createTask(t, db, lead.ID, today.AddDate(0, 0, 1), domain.TaskPendente)

	// The agenda view asks for a single day
	tasks, err := svc.List(ctx, nil, "", &today)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	pending, err := svc.List(ctx, nil, domain.TaskPendente, &today)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	all, err := svc.List(ctx, nil, "", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTaskService_Reschedule_ReopensOverdue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	task := createTask(t, db, lead.ID, today.AddDate(0, 0, -3), domain.TaskAtrasada)

	dto, err := svc.Reschedule(ctx, task.ID, &domain.RescheduleTaskRequest{
		DataProgramada: today.AddDate(0, 0, 7).Format("2006-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPendente, dto.Status)
	assert.Equal(t, today.AddDate(0, 0, 7).Format("2006-01-02"), dto.DataProgramada)
}

func TestTaskService_Reschedule_InvalidDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	task := createTask(t, db, lead.ID, time.Now().UTC(), domain.TaskPendente)

	_, err := svc.Reschedule(ctx, task.ID, &domain.RescheduleTaskRequest{DataProgramada: "20/04/2026"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTaskService_MarkOverdue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	createTask(t, db, lead.ID, today.AddDate(0, 0, -1), domain.TaskPendente)
	createTask(t, db, lead.ID, today.AddDate(0, 0, 1), domain.TaskPendente)

	changed, err := svc.MarkOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
}

func TestTaskService_GetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newTaskService(db)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
