package mapper

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/commission"
	"github.com/rodolog/brokerage-api/internal/domain"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatMonth(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func ToUserDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:                  user.ID,
		FullName:            user.FullName,
		Email:               user.Email,
		Roles:               append([]string{}, user.Roles...),
		MetaFinanceira:      user.MetaFinanceira,
		PorcentagemComissao: user.PorcentagemComissao,
		IsActive:            user.IsActive,
		CreatedAt:           formatTime(user.CreatedAt),
		UpdatedAt:           formatTime(user.UpdatedAt),
	}
}

func ToLeadContactDTO(contact *domain.LeadContact) domain.LeadContactDTO {
	return domain.LeadContactDTO{
		ID:      contact.ID,
		Nome:    contact.Nome,
		Email:   contact.Email,
		Celular: contact.Celular,
	}
}

func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	contatos := make([]domain.LeadContactDTO, len(lead.Contatos))
	for i := range lead.Contatos {
		contatos[i] = ToLeadContactDTO(&lead.Contatos[i])
	}
	return domain.LeadDTO{
		ID:          lead.ID,
		Empresa:     lead.Empresa,
		CNPJ:        lead.CNPJ,
		Site:        lead.Site,
		Segmento:    lead.Segmento,
		Status:      lead.Status,
		Responsavel: lead.Responsavel,
		Contatos:    contatos,
		CreatedAt:   formatTime(lead.CreatedAt),
		UpdatedAt:   formatTime(lead.UpdatedAt),
	}
}

func toProposalCostDTOs(costs []domain.ProposalCost) []domain.ProposalCostDTO {
	if len(costs) == 0 {
		return nil
	}
	out := make([]domain.ProposalCostDTO, len(costs))
	for i, c := range costs {
		out[i] = domain.ProposalCostDTO{CostID: c.CostID, Nome: c.Nome, Valor: c.Valor}
	}
	return out
}

func toVariableExpenseDTOs(expenses []domain.VariableExpense) []domain.VariableExpenseDTO {
	if len(expenses) == 0 {
		return nil
	}
	out := make([]domain.VariableExpenseDTO, len(expenses))
	for i, e := range expenses {
		out[i] = domain.VariableExpenseDTO{Nome: e.Nome, Valor: e.Valor}
	}
	return out
}

func ToProposalDTO(p *domain.Proposal) domain.ProposalDTO {
	dto := domain.ProposalDTO{
		ID:         p.ID,
		Tipo:       p.Tipo,
		LeadID:     p.LeadID,
		VendedorID: p.VendedorID,

		Origem:          p.Origem,
		Destino:         p.Destino,
		KmNacional:      p.KmNacional,
		KmInternacional: p.KmInternacional,

		FreteDolar:       p.FreteDolar,
		PtaxAplicada:     p.PtaxAplicada,
		ValorMercadoria:  p.ValorMercadoria,
		SeguroPercentual: p.SeguroPercentual,
		PrazoPagamentoID: p.PrazoPagamentoID,
		TipoCaminhao:     p.TipoCaminhao,
		Toneladas:        p.Toneladas,
		FreteiroReais:    p.FreteiroReais,

		FreteReais:       p.FreteReais,
		SeguroFinal:      p.SeguroFinal,
		TotalGastos:      p.TotalGastos,
		LucroBruto:       p.LucroBruto,
		ImpostoIRCS:      p.ImpostoIRCS,
		ImpostoPisCofins: p.ImpostoPisCofins,
		TotalImpostos:    p.TotalImpostos,
		LucroEstimado:    p.LucroEstimado,
		LucroReal:        p.LucroReal,

		Status:          p.Status,
		ProcessoInterno: p.ProcessoInterno,
		CrtIdentifier:   p.CrtIdentifier,
		DataAceite:      formatTimePtr(p.DataAceite),
		DataFinalizacao: formatTimePtr(p.DataFinalizacao),
		DataRecusa:      formatTimePtr(p.DataRecusa),

		Faturado:     p.Faturado,
		DataFaturado: formatTimePtr(p.DataFaturado),

		CustosSelecionados: toProposalCostDTOs(p.CustosEstimados()),
		CustosFixosReais:   toProposalCostDTOs(p.CustosRealizados()),
		DespesasVariaveis:  toVariableExpenseDTOs(p.DespesasVariaveis),

		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}

	if p.Lead != nil {
		dto.LeadName = p.Lead.Empresa
	}
	if p.Vendedor != nil {
		dto.Vendedor = p.Vendedor.FullName
	}

	return dto
}

// ToCommissionStatementDTO flattens a statement into its transport shape.
// leadNames resolves lead IDs to company names for the item rows.
func ToCommissionStatementDTO(st *commission.Statement, leadNames map[uuid.UUID]string) domain.CommissionStatementDTO {
	itens := make([]domain.CommissionItemDTO, len(st.Itens))
	for i, item := range st.Itens {
		itens[i] = domain.CommissionItemDTO{
			ProposalID:      item.Proposal.ID,
			LeadName:        leadNames[item.Proposal.LeadID],
			ProcessoInterno: item.Proposal.ProcessoInterno,
			CrtIdentifier:   item.Proposal.CrtIdentifier,
			FreteDolar:      item.Proposal.FreteDolar,
			FreteReais:      item.Proposal.FreteReais,
			Lucro:           item.Lucro,
			Comissao:        item.Comissao,
			Faturado:        item.Proposal.Faturado,
			DataAceite:      formatTimePtr(item.Proposal.DataAceite),
		}
	}

	return domain.CommissionStatementDTO{
		VendedorID:            st.Vendedor.ID,
		Vendedor:              st.Vendedor.FullName,
		Email:                 st.Vendedor.Email,
		Mes:                   formatMonth(st.Mes),
		MetaFinanceira:        st.MetaFinanceira,
		MetaOperacional:       commission.VolumeGoal,
		LucroTotal:            st.LucroTotal,
		TotalEmbarques:        st.TotalEmbarques,
		PercentualFinanceiro:  st.PercentualFinanceiro,
		PercentualOperacional: st.PercentualOperacional,
		RestanteFinanceiro:    st.RestanteFinanceiro,
		RestanteOperacional:   st.RestanteOperacional,
		Comissao:              st.Comissao,
		Propostas:             itens,
	}
}

func ToTaskDTO(task *domain.Task) domain.TaskDTO {
	dto := domain.TaskDTO{
		ID:             task.ID,
		LeadID:         task.LeadID,
		Tipo:           task.Tipo,
		Descricao:      task.Descricao,
		ModeloMensagem: task.ModeloMensagem,
		DataProgramada: formatDate(task.DataProgramada),
		Status:         task.Status,
		DataConclusao:  formatTimePtr(task.DataConclusao),
		CreatedAt:      formatTime(task.CreatedAt),
	}
	if task.Lead != nil {
		dto.LeadName = task.Lead.Empresa
	}
	return dto
}

func ToWorkflowTemplateDTO(t *domain.WorkflowTemplate) domain.WorkflowTemplateDTO {
	return domain.WorkflowTemplateDTO{
		ID:             t.ID,
		DiaOffset:      t.DiaOffset,
		Rotulo:         t.Rotulo,
		Tipo:           t.Tipo,
		Descricao:      t.Descricao,
		ModeloMensagem: t.ModeloMensagem,
		Categoria:      t.Categoria,
		Ordem:          t.Ordem,
		Ativo:          t.Ativo,
	}
}

func ToOperationalCostDTO(c *domain.OperationalCost) domain.OperationalCostDTO {
	return domain.OperationalCostDTO{ID: c.ID, Nome: c.Nome, Valor: c.Valor}
}

func ToPaymentTermDTO(t *domain.PaymentTerm) domain.PaymentTermDTO {
	return domain.PaymentTermDTO{ID: t.ID, Descricao: t.Descricao, Dias: t.Dias}
}

func ToLocationDTO(l *domain.Location) domain.LocationDTO {
	return domain.LocationDTO{ID: l.ID, Nome: l.Nome, UF: l.UF}
}

func ToOccurrenceDTO(o *domain.Occurrence) domain.OccurrenceDTO {
	dto := domain.OccurrenceDTO{
		ID:             o.ID,
		LeadID:         o.LeadID,
		Tipo:           o.Tipo,
		Titulo:         o.Titulo,
		Descricao:      o.Descricao,
		DataOcorrencia: formatDate(o.DataOcorrencia),
		CreatedAt:      formatTime(o.CreatedAt),
	}
	if o.Lead != nil {
		dto.LeadName = o.Lead.Empresa
	}
	return dto
}
