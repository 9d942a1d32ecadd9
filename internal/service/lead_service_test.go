package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newLeadService(db *gorm.DB) *service.LeadService {
	return service.NewLeadService(
		repository.NewLeadRepository(db),
		repository.NewWorkflowTemplateRepository(db),
		repository.NewTaskRepository(db),
		zap.NewNop(),
	)
}

func createTemplate(t *testing.T, db *gorm.DB, diaOffset int, tipo string, categoria domain.WorkflowCategory, ativo bool) {
	t.Helper()
	template := &domain.WorkflowTemplate{
		DiaOffset: diaOffset,
		Tipo:      tipo,
		Descricao: "Passo " + tipo,
		Categoria: categoria,
		Ativo:     ativo,
	}
	require.NoError(t, db.Create(template).Error)
}

func TestLeadService_Create_GeneratesWorkflowTasks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	createTemplate(t, db, 0, "whatsapp", domain.WorkflowComWhatsapp, true)
	createTemplate(t, db, 3, "ligacao", domain.WorkflowComWhatsapp, true)
	createTemplate(t, db, 1, "email", domain.WorkflowSemWhatsapp, true)
	createTemplate(t, db, 5, "visita", domain.WorkflowComWhatsapp, false)

	lead, err := svc.Create(ctx, &domain.CreateLeadRequest{
		Empresa: "Transportes Alfa",
		Contatos: []domain.LeadContactRequest{
			{Nome: "Contato Teste"},
		},
	})
	require.NoError(t, err)

	// Only active templates of the default com_whatsapp flow generate tasks
	tasks, err := repository.NewTaskRepository(db).List(ctx, &lead.ID, "", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	assert.Equal(t, "whatsapp", tasks[0].Tipo)
	assert.Equal(t, today, tasks[0].DataProgramada.UTC())
	assert.Equal(t, "ligacao", tasks[1].Tipo)
	assert.Equal(t, today.AddDate(0, 0, 3), tasks[1].DataProgramada.UTC())
	assert.Equal(t, domain.TaskPendente, tasks[0].Status)
}

func TestLeadService_Create_SemWhatsappFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	createTemplate(t, db, 0, "whatsapp", domain.WorkflowComWhatsapp, true)
	createTemplate(t, db, 1, "email", domain.WorkflowSemWhatsapp, true)

	lead, err := svc.Create(ctx, &domain.CreateLeadRequest{
		Empresa:   "Transportes Beta",
		Categoria: domain.WorkflowSemWhatsapp,
		Contatos: []domain.LeadContactRequest{
			{Nome: "Contato Teste"},
		},
	})
	require.NoError(t, err)

	tasks, err := repository.NewTaskRepository(db).List(ctx, &lead.ID, "", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "email", tasks[0].Tipo)
}

func TestLeadService_Update_ReplacesContacts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newLeadService(db)
	ctx := context.Background()

	lead, err := svc.Create(ctx, &domain.CreateLeadRequest{
		Empresa: "Transportes Alfa",
		Contatos: []domain.LeadContactRequest{
			{Nome: "Contato Antigo"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, lead.ID, &domain.UpdateLeadRequest{
		Empresa: "Transportes Alfa Ltda",
		Status:  domain.LeadStatusQualificado,
		Contatos: []domain.LeadContactRequest{
			{Nome: "Contato Novo", Email: "novo@example.com"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Transportes Alfa Ltda", updated.Empresa)
	assert.Equal(t, domain.LeadStatusQualificado, updated.Status)
	require.Len(t, updated.Contatos, 1)
	assert.Equal(t, "Contato Novo", updated.Contatos[0].Nome)
}
