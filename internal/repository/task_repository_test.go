package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_MarkOverdue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)

	tasks := []domain.Task{
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar", DataProgramada: today.AddDate(0, 0, -2), Status: domain.TaskPendente},
		{LeadID: lead.ID, Tipo: "email", Descricao: "Enviar email", DataProgramada: today, Status: domain.TaskPendente},
		{LeadID: lead.ID, Tipo: "visita", Descricao: "Visitar", DataProgramada: today.AddDate(0, 0, -5), Status: domain.TaskConcluida},
	}
	require.NoError(t, repo.CreateBatch(ctx, tasks))

	changed, err := repo.MarkOverdue(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	overdue, err := repo.List(ctx, nil, domain.TaskAtrasada, nil)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "ligacao", overdue[0].Tipo)

	// Tasks due today stay pending
	pending, err := repo.List(ctx, nil, domain.TaskPendente, nil)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "email", pending[0].Tipo)
}

func TestTaskRepository_UpdatePendingMatching(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	today := time.Now().UTC().Truncate(24 * time.Hour)

	tasks := []domain.Task{
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar para o lead", DataProgramada: today.AddDate(0, 0, 3), Status: domain.TaskPendente},
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar para o lead", DataProgramada: today.AddDate(0, 0, -3), Status: domain.TaskPendente},
		{LeadID: lead.ID, Tipo: "ligacao", Descricao: "Ligar para o lead", DataProgramada: today.AddDate(0, 0, 5), Status: domain.TaskConcluida},
		{LeadID: lead.ID, Tipo: "email", Descricao: "Outro passo", DataProgramada: today.AddDate(0, 0, 5), Status: domain.TaskPendente},
	}
	require.NoError(t, repo.CreateBatch(ctx, tasks))

	changed, err := repo.UpdatePendingMatching(ctx, "ligacao", "Ligar para o lead", map[string]interface{}{
		"tipo":      "whatsapp",
		"descricao": "Chamar no WhatsApp",
	})
	require.NoError(t, err)
	// Only the pending task scheduled from today onward changes
	assert.Equal(t, int64(1), changed)

	updated, err := repo.List(ctx, nil, "", nil)
	require.NoError(t, err)

	var whatsapp int
	for _, task := range updated {
		if task.Tipo == "whatsapp" {
			whatsapp++
			assert.Equal(t, "Chamar no WhatsApp", task.Descricao)
		}
	}
	assert.Equal(t, 1, whatsapp)
}
