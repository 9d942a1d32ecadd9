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

func newWorkflowService(db *gorm.DB) *service.WorkflowService {
	return service.NewWorkflowService(
		repository.NewWorkflowTemplateRepository(db),
		repository.NewTaskRepository(db),
		zap.NewNop(),
	)
}

func TestWorkflowService_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkflowService(db)

	dto, err := svc.Create(context.Background(), &domain.WorkflowTemplateRequest{
		DiaOffset: 2,
		Tipo:      "ligacao",
		Descricao: "Ligar para o lead",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.WorkflowComWhatsapp, dto.Categoria)
	assert.True(t, dto.Ativo)
}

func TestWorkflowService_Create_Inactive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkflowService(db)

	inactive := false
	dto, err := svc.Create(context.Background(), &domain.WorkflowTemplateRequest{
		DiaOffset: 1,
		Tipo:      "ligacao",
		Descricao: "Ligar para o lead",
		Ativo:     &inactive,
	})
	require.NoError(t, err)
	assert.False(t, dto.Ativo)

	// The stored row must be inactive too, so new leads skip this step
	var stored domain.WorkflowTemplate
	require.NoError(t, db.First(&stored, "id = ?", dto.ID).Error)
	assert.False(t, stored.Ativo)
}

func TestWorkflowService_Update_PropagatesToPendingTasks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkflowService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.WorkflowTemplateRequest{
		DiaOffset: 2,
		Tipo:      "ligacao",
		Descricao: "Ligar para o lead",
	})
	require.NoError(t, err)

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	taskRepo := repository.NewTaskRepository(db)
	today := time.Now().UTC().Truncate(24 * time.Hour)

	require.NoError(t, taskRepo.CreateBatch(ctx, []domain.Task{
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar para o lead", DataProgramada: today.AddDate(0, 0, 2), Status: domain.TaskPendente},
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar para o lead", DataProgramada: today.AddDate(0, 0, -1), Status: domain.TaskConcluida},
	}))

	_, err = svc.Update(ctx, dto.ID, &domain.WorkflowTemplateRequest{
		DiaOffset: 2,
		Tipo:      "whatsapp",
		Descricao: "Chamar no WhatsApp",
	})
	require.NoError(t, err)

	tasks, err := taskRepo.List(ctx, &lead.ID, "", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Completed tasks keep their wording; the pending future task follows the
	// template edit.
	byStatus := map[domain.TaskStatus]domain.Task{}
	for _, task := range tasks {
		byStatus[task.Status] = task
	}
	assert.Equal(t, "whatsapp", byStatus[domain.TaskPendente].Tipo)
	assert.Equal(t, "Chamar no WhatsApp", byStatus[domain.TaskPendente].Descricao)
	assert.Equal(t, "ligacao", byStatus[domain.TaskConcluida].Tipo)
}

func TestWorkflowService_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkflowService(db)

	_, err := svc.Update(context.Background(), uuid.New(), &domain.WorkflowTemplateRequest{
		Tipo:      "ligacao",
		Descricao: "Ligar",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
