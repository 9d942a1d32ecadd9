package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when the caller has not set one
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// UserRole represents a role assigned to a user
type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleGestor   UserRole = "Gestor"
	RoleVendedor UserRole = "Vendedor"
)

// User represents a system user. Users carrying the Vendedor or Gestor role
// are sellers and participate in monthly commission statements.
type User struct {
	BaseModel
	FullName     string         `gorm:"type:varchar(200);not null;column:full_name"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(255);not null;column:password_hash"`
	Roles        pq.StringArray `gorm:"type:text[]"`
	// MetaFinanceira is the monthly financial goal in BRL. Zero means no
	// financial goal; only the volume goal applies.
	MetaFinanceira float64 `gorm:"type:decimal(15,2);not null;default:0;column:meta_financeira"`
	// PorcentagemComissao is the commission percentage (0-100) applied to
	// profit above the monthly goal.
	PorcentagemComissao float64 `gorm:"type:decimal(5,2);not null;default:0;column:porcentagem_comissao"`
	// IsActive has no column default on purpose: gorm omits zero-value
	// fields that carry one, which would silently reactivate a user
	// created as inactive. The service layer always sets it.
	IsActive bool `gorm:"not null;column:is_active"`
}

// HasRole reports whether the user carries the given role
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

// IsSeller reports whether the user participates in commission statements
func (u *User) IsSeller() bool {
	return u.HasRole(RoleVendedor) || u.HasRole(RoleGestor)
}

// LeadStatus represents the qualification status of a lead
type LeadStatus string

const (
	LeadStatusNovo        LeadStatus = "Novo"
	LeadStatusEmContato   LeadStatus = "Em Contato"
	LeadStatusQualificado LeadStatus = "Qualificado"
	LeadStatusCliente     LeadStatus = "Cliente"
	LeadStatusPerdido     LeadStatus = "Perdido"
)

// Lead represents a prospect or client company
type Lead struct {
	BaseModel
	Empresa     string        `gorm:"type:varchar(200);not null;index"`
	CNPJ        string        `gorm:"type:varchar(20);column:cnpj"`
	Site        string        `gorm:"type:varchar(255)"`
	Segmento    string        `gorm:"type:varchar(100)"`
	Status      LeadStatus    `gorm:"type:varchar(50);not null;default:'Novo';index"`
	Responsavel string        `gorm:"type:varchar(255)"`
	Contatos    []LeadContact `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// LeadContact represents a named contact person at a lead company
type LeadContact struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	LeadID  uuid.UUID `gorm:"type:uuid;not null;index;column:lead_id"`
	Nome    string    `gorm:"type:varchar(200);not null"`
	Email   string    `gorm:"type:varchar(255)"`
	Celular string    `gorm:"type:varchar(50)"`
}

// BeforeCreate assigns an ID when the caller has not set one
func (c *LeadContact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ProposalType classifies the route of a freight proposal
type ProposalType string

const (
	ProposalNacional      ProposalType = "NACIONAL"
	ProposalInternacional ProposalType = "INTERNACIONAL"
)

// ProposalStatus represents the lifecycle status of a proposal
type ProposalStatus string

const (
	ProposalPendente   ProposalStatus = "Pendente"
	ProposalAceita     ProposalStatus = "Aceita"
	ProposalFinalizada ProposalStatus = "Finalizada"
	ProposalRecusada   ProposalStatus = "Recusada"
)

// Proposal represents a freight brokerage deal.
//
// The financial snapshot (FreteReais through LucroEstimado) is computed once
// at creation and never recomputed: taxes are defined against the contracted
// freight, not against realized costs. Finalization combines the same revenue
// and taxes with realized costs to produce LucroReal.
type Proposal struct {
	BaseModel
	Tipo       ProposalType `gorm:"type:varchar(20);not null;index"`
	LeadID     uuid.UUID    `gorm:"type:uuid;not null;index;column:lead_id"`
	Lead       *Lead        `gorm:"foreignKey:LeadID"`
	VendedorID uuid.UUID    `gorm:"type:uuid;not null;index;column:vendedor_id"`
	Vendedor   *User        `gorm:"foreignKey:VendedorID"`

	Origem          string  `gorm:"type:varchar(200)"`
	Destino         string  `gorm:"type:varchar(200)"`
	KmNacional      float64 `gorm:"type:decimal(10,2);not null;default:0;column:km_nacional"`
	KmInternacional float64 `gorm:"type:decimal(10,2);not null;default:0;column:km_internacional"`

	FreteDolar       float64    `gorm:"type:decimal(15,2);not null;default:0;column:frete_dolar"`
	PtaxAplicada     float64    `gorm:"type:decimal(10,4);not null;default:0;column:ptax_aplicada"`
	ValorMercadoria  float64    `gorm:"type:decimal(15,2);not null;default:0;column:valor_mercadoria"`
	SeguroPercentual float64    `gorm:"type:decimal(5,2);not null;default:0;column:seguro_percentual"`
	PrazoPagamentoID *uuid.UUID `gorm:"type:uuid;column:prazo_pagamento_id"`
	TipoCaminhao     string     `gorm:"type:varchar(100);column:tipo_caminhao"`
	Toneladas        float64    `gorm:"type:decimal(10,2);not null;default:0"`
	FreteiroReais    float64    `gorm:"type:decimal(15,2);not null;default:0;column:freteiro_reais"`

	// Financial snapshot, immutable after creation
	FreteReais       float64 `gorm:"type:decimal(15,2);not null;default:0;column:frete_reais"`
	SeguroFinal      float64 `gorm:"type:decimal(15,2);not null;default:0;column:seguro_final"`
	TotalGastos      float64 `gorm:"type:decimal(15,2);not null;default:0;column:total_gastos"`
	LucroBruto       float64 `gorm:"type:decimal(15,2);not null;default:0;column:lucro_bruto"`
	ImpostoIRCS      float64 `gorm:"type:decimal(15,2);not null;default:0;column:imposto_ircs"`
	ImpostoPisCofins float64 `gorm:"type:decimal(15,2);not null;default:0;column:imposto_pis_cofins"`
	TotalImpostos    float64 `gorm:"type:decimal(15,2);not null;default:0;column:total_impostos"`
	LucroEstimado    float64 `gorm:"type:decimal(15,2);not null;default:0;column:lucro_estimado"`

	Status          ProposalStatus `gorm:"type:varchar(50);not null;default:'Pendente';index"`
	ProcessoInterno string         `gorm:"type:varchar(100);column:processo_interno"`
	CrtIdentifier   string         `gorm:"type:varchar(100);column:crt_identifier;index"`
	DataAceite      *time.Time     `gorm:"column:data_aceite"`
	DataFinalizacao *time.Time     `gorm:"column:data_finalizacao"`
	DataRecusa      *time.Time     `gorm:"column:data_recusa"`

	// Realized profit, set at finalization
	LucroReal *float64 `gorm:"type:decimal(15,2);column:lucro_real"`

	// Billing flag, independent of the lifecycle status
	Faturado     bool       `gorm:"not null;default:false"`
	DataFaturado *time.Time `gorm:"column:data_faturado"`

	Custos            []ProposalCost    `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
	DespesasVariaveis []VariableExpense `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// Profit returns the realized profit for finalized proposals and the estimate
// otherwise.
func (p *Proposal) Profit() float64 {
	if p.Status == ProposalFinalizada && p.LucroReal != nil {
		return *p.LucroReal
	}
	return p.LucroEstimado
}

// MatchesCrt reports whether the proposal carries the given transport document
// identifier, compared case-insensitively.
func (p *Proposal) MatchesCrt(crt string) bool {
	return p.CrtIdentifier != "" && strings.EqualFold(p.CrtIdentifier, crt)
}

// CustosEstimados returns the cost snapshots taken at creation
func (p *Proposal) CustosEstimados() []ProposalCost {
	return p.custosByPhase(CostPhaseEstimada)
}

// CustosRealizados returns the realized cost copies recorded at finalization
func (p *Proposal) CustosRealizados() []ProposalCost {
	return p.custosByPhase(CostPhaseRealizada)
}

func (p *Proposal) custosByPhase(fase CostPhase) []ProposalCost {
	var out []ProposalCost
	for _, c := range p.Custos {
		if c.Fase == fase {
			out = append(out, c)
		}
	}
	return out
}

// CostPhase distinguishes cost snapshots taken at creation from the realized
// copies recorded at finalization.
type CostPhase string

const (
	CostPhaseEstimada  CostPhase = "estimada"
	CostPhaseRealizada CostPhase = "realizada"
)

// ProposalCost is a value snapshot of an operational cost attached to a
// proposal. Nome and Valor are copied at the moment of selection; later edits
// to the catalog entry never alter past proposals.
type ProposalCost struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProposalID uuid.UUID  `gorm:"type:uuid;not null;index;column:proposal_id"`
	CostID     *uuid.UUID `gorm:"type:uuid;column:cost_id"`
	Nome       string     `gorm:"type:varchar(200);not null"`
	Valor      float64    `gorm:"type:decimal(15,2);not null;default:0"`
	Fase       CostPhase  `gorm:"type:varchar(20);not null;default:'estimada';index"`
}

// BeforeCreate assigns an ID when the caller has not set one
func (c *ProposalCost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// VariableExpense is an ad hoc expense recorded at finalization
type VariableExpense struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProposalID uuid.UUID `gorm:"type:uuid;not null;index;column:proposal_id"`
	Nome       string    `gorm:"type:varchar(200);not null"`
	Valor      float64   `gorm:"type:decimal(15,2);not null;default:0"`
}

// BeforeCreate assigns an ID when the caller has not set one
func (e *VariableExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// OperationalCost is a reusable named fixed-cost catalog entry
type OperationalCost struct {
	BaseModel
	Nome  string  `gorm:"type:varchar(200);not null"`
	Valor float64 `gorm:"type:decimal(15,2);not null;default:0"`
}

// PaymentTerm is a payment-term catalog entry
type PaymentTerm struct {
	BaseModel
	Descricao string `gorm:"type:varchar(200);not null"`
	Dias      int    `gorm:"not null;default:0"`
}

// Location is an origin/destination catalog entry
type Location struct {
	BaseModel
	Nome string `gorm:"type:varchar(200);not null;index"`
	UF   string `gorm:"type:varchar(5);column:uf"`
}

// WorkflowCategory separates template flows for leads with and without WhatsApp
type WorkflowCategory string

const (
	WorkflowComWhatsapp WorkflowCategory = "com_whatsapp"
	WorkflowSemWhatsapp WorkflowCategory = "sem_whatsapp"
)

// WorkflowTemplate describes one step of the automatic follow-up flow applied
// to newly created leads.
type WorkflowTemplate struct {
	BaseModel
	DiaOffset      int              `gorm:"not null;default:0;column:dia_offset"`
	Rotulo         string           `gorm:"type:varchar(100)"`
	Tipo           string           `gorm:"type:varchar(50);not null"`
	Descricao      string           `gorm:"type:varchar(500);not null"`
	ModeloMensagem string           `gorm:"type:text;column:modelo_mensagem"`
	Categoria      WorkflowCategory `gorm:"type:varchar(50);not null;default:'com_whatsapp';index"`
	Ordem          int              `gorm:"not null;default:0"`
	// Ativo carries no column default so a template created as inactive
	// round-trips as inactive (see User.IsActive).
	Ativo bool `gorm:"not null;index"`
}

// TaskStatus represents the completion status of a follow-up task
type TaskStatus string

const (
	TaskPendente  TaskStatus = "Pendente"
	TaskConcluida TaskStatus = "Concluída"
	TaskAtrasada  TaskStatus = "Atrasada"
)

// Task is a scheduled follow-up action against a lead
type Task struct {
	BaseModel
	LeadID         uuid.UUID  `gorm:"type:uuid;not null;index;column:lead_id"`
	Lead           *Lead      `gorm:"foreignKey:LeadID"`
	Tipo           string     `gorm:"type:varchar(50);not null"`
	Descricao      string     `gorm:"type:varchar(500);not null"`
	ModeloMensagem string     `gorm:"type:text;column:modelo_mensagem"`
	DataProgramada time.Time  `gorm:"type:date;not null;index;column:data_programada"`
	Status         TaskStatus `gorm:"type:varchar(50);not null;default:'Pendente';index"`
	DataConclusao  *time.Time `gorm:"column:data_conclusao"`
}

// OccurrenceType classifies a registered client occurrence
type OccurrenceType string

const (
	OccurrenceReclamacao OccurrenceType = "Reclamação"
	OccurrenceElogio     OccurrenceType = "Elogio"
	OccurrenceObservacao OccurrenceType = "Observação"
)

// Occurrence is a client-related event registered against a lead
type Occurrence struct {
	BaseModel
	LeadID         uuid.UUID      `gorm:"type:uuid;not null;index;column:lead_id"`
	Lead           *Lead          `gorm:"foreignKey:LeadID"`
	Tipo           OccurrenceType `gorm:"type:varchar(50);not null;index"`
	Titulo         string         `gorm:"type:varchar(200);not null"`
	Descricao      string         `gorm:"type:text"`
	DataOcorrencia time.Time      `gorm:"type:date;not null;column:data_ocorrencia"`
}
