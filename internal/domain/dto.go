package domain

import (
	"github.com/google/uuid"
)

// --- Auth / users ---

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	Roles               []string  `json:"roles"`
	MetaFinanceira      float64   `json:"metaFinanceira"`
	PorcentagemComissao float64   `json:"porcentagemComissao"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           string    `json:"createdAt"` // ISO 8601
	UpdatedAt           string    `json:"updatedAt"` // ISO 8601
}

type CreateUserRequest struct {
	FullName            string   `json:"fullName" validate:"required,max=200"`
	Email               string   `json:"email" validate:"required,email,max=255"`
	Password            string   `json:"password" validate:"required,min=8"`
	Roles               []string `json:"roles" validate:"required,min=1,dive,oneof=Admin Gestor Vendedor"`
	MetaFinanceira      float64  `json:"metaFinanceira,omitempty" validate:"gte=0"`
	PorcentagemComissao float64  `json:"porcentagemComissao,omitempty" validate:"gte=0,lte=100"`
}

type UpdateUserRequest struct {
	FullName            string   `json:"fullName" validate:"required,max=200"`
	Roles               []string `json:"roles" validate:"required,min=1,dive,oneof=Admin Gestor Vendedor"`
	MetaFinanceira      float64  `json:"metaFinanceira,omitempty" validate:"gte=0"`
	PorcentagemComissao float64  `json:"porcentagemComissao,omitempty" validate:"gte=0,lte=100"`
	IsActive            *bool    `json:"isActive,omitempty"`
}

// --- Leads ---

type LeadContactDTO struct {
	ID      uuid.UUID `json:"id"`
	Nome    string    `json:"nome"`
	Email   string    `json:"email,omitempty"`
	Celular string    `json:"celular,omitempty"`
}

type LeadDTO struct {
	ID          uuid.UUID        `json:"id"`
	Empresa     string           `json:"empresa"`
	CNPJ        string           `json:"cnpj,omitempty"`
	Site        string           `json:"site,omitempty"`
	Segmento    string           `json:"segmento,omitempty"`
	Status      LeadStatus       `json:"status"`
	Responsavel string           `json:"responsavel,omitempty"`
	Contatos    []LeadContactDTO `json:"contatos,omitempty"`
	CreatedAt   string           `json:"createdAt"` // ISO 8601
	UpdatedAt   string           `json:"updatedAt"` // ISO 8601
}

type LeadContactRequest struct {
	Nome    string `json:"nome" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Celular string `json:"celular,omitempty" validate:"max=50"`
}

type CreateLeadRequest struct {
	Empresa     string               `json:"empresa" validate:"required,max=200"`
	CNPJ        string               `json:"cnpj,omitempty" validate:"max=20"`
	Site        string               `json:"site,omitempty" validate:"max=255"`
	Segmento    string               `json:"segmento,omitempty" validate:"max=100"`
	Status      LeadStatus           `json:"status,omitempty"`
	Responsavel string               `json:"responsavel,omitempty" validate:"omitempty,email"`
	Contatos    []LeadContactRequest `json:"contatos" validate:"required,min=1,dive"`
	// Categoria selects the workflow template flow used to generate the
	// lead's follow-up tasks.
	Categoria WorkflowCategory `json:"categoria,omitempty" validate:"omitempty,oneof=com_whatsapp sem_whatsapp"`
}

type UpdateLeadRequest struct {
	Empresa     string               `json:"empresa" validate:"required,max=200"`
	CNPJ        string               `json:"cnpj,omitempty" validate:"max=20"`
	Site        string               `json:"site,omitempty" validate:"max=255"`
	Segmento    string               `json:"segmento,omitempty" validate:"max=100"`
	Status      LeadStatus           `json:"status,omitempty"`
	Responsavel string               `json:"responsavel,omitempty" validate:"omitempty,email"`
	Contatos    []LeadContactRequest `json:"contatos,omitempty" validate:"omitempty,dive"`
}

// --- Proposals ---

type ProposalCostDTO struct {
	CostID *uuid.UUID `json:"costId,omitempty"`
	Nome   string     `json:"nome"`
	Valor  float64    `json:"valor"`
}

type VariableExpenseDTO struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type ProposalDTO struct {
	ID         uuid.UUID    `json:"id"`
	Tipo       ProposalType `json:"tipo"`
	LeadID     uuid.UUID    `json:"leadId"`
	LeadName   string       `json:"leadName,omitempty"`
	VendedorID uuid.UUID    `json:"vendedorId"`
	Vendedor   string       `json:"vendedor,omitempty"`

	Origem          string  `json:"origem,omitempty"`
	Destino         string  `json:"destino,omitempty"`
	KmNacional      float64 `json:"kmNacional"`
	KmInternacional float64 `json:"kmInternacional"`

	FreteDolar       float64    `json:"freteDolar"`
	PtaxAplicada     float64    `json:"ptaxAplicada"`
	ValorMercadoria  float64    `json:"valorMercadoria"`
	SeguroPercentual float64    `json:"seguroPercentual"`
	PrazoPagamentoID *uuid.UUID `json:"prazoPagamentoId,omitempty"`
	TipoCaminhao     string     `json:"tipoCaminhao,omitempty"`
	Toneladas        float64    `json:"toneladas"`
	FreteiroReais    float64    `json:"freteiroReais"`

	FreteReais       float64 `json:"freteReais"`
	SeguroFinal      float64 `json:"seguroFinal"`
	TotalGastos      float64 `json:"totalGastos"`
	LucroBruto       float64 `json:"lucroBruto"`
	ImpostoIRCS      float64 `json:"impostoIrcs"`
	ImpostoPisCofins float64 `json:"impostoPisCofins"`
	TotalImpostos    float64 `json:"totalImpostos"`
	LucroEstimado    float64 `json:"lucroEstimado"`
	LucroReal        *float64 `json:"lucroReal,omitempty"`

	Status          ProposalStatus `json:"status"`
	ProcessoInterno string         `json:"processoInterno,omitempty"`
	CrtIdentifier   string         `json:"crtIdentifier,omitempty"`
	DataAceite      string         `json:"dataAceite,omitempty"`      // ISO 8601
	DataFinalizacao string         `json:"dataFinalizacao,omitempty"` // ISO 8601
	DataRecusa      string         `json:"dataRecusa,omitempty"`      // ISO 8601

	Faturado     bool   `json:"faturado"`
	DataFaturado string `json:"dataFaturado,omitempty"` // ISO 8601

	CustosSelecionados []ProposalCostDTO    `json:"custosSelecionados,omitempty"`
	CustosFixosReais   []ProposalCostDTO    `json:"custosFixosReais,omitempty"`
	DespesasVariaveis  []VariableExpenseDTO `json:"despesasVariaveis,omitempty"`

	CreatedAt string `json:"createdAt"` // ISO 8601
	UpdatedAt string `json:"updatedAt"` // ISO 8601
}

type CreateProposalRequest struct {
	Tipo       ProposalType `json:"tipo" validate:"required,oneof=NACIONAL INTERNACIONAL"`
	LeadID     uuid.UUID    `json:"leadId" validate:"required"`
	VendedorID uuid.UUID    `json:"vendedorId" validate:"required"`

	Origem          string  `json:"origem,omitempty" validate:"max=200"`
	Destino         string  `json:"destino,omitempty" validate:"max=200"`
	KmNacional      float64 `json:"kmNacional,omitempty" validate:"gte=0"`
	KmInternacional float64 `json:"kmInternacional,omitempty" validate:"gte=0"`

	FreteDolar       float64     `json:"freteDolar,omitempty" validate:"gte=0"`
	Ptax             float64     `json:"ptax" validate:"gt=0"`
	ValorMercadoria  float64     `json:"valorMercadoria,omitempty" validate:"gte=0"`
	SeguroPercentual float64     `json:"seguroPercentual,omitempty" validate:"gte=0"`
	PrazoPagamentoID *uuid.UUID  `json:"prazoPagamentoId,omitempty"`
	TipoCaminhao     string      `json:"tipoCaminhao,omitempty" validate:"max=100"`
	Toneladas        float64     `json:"toneladas,omitempty" validate:"gte=0"`
	FreteiroReais    float64     `json:"freteiroReais,omitempty" validate:"gte=0"`
	CustosIDs        []uuid.UUID `json:"custosSelecionados,omitempty"`
}

type AcceptProposalRequest struct {
	ProcessoInterno string `json:"processoInterno" validate:"required,max=100"`
	CrtIdentifier   string `json:"crtIdentifier,omitempty" validate:"max=100"`
}

type ProposalCostRequest struct {
	CostID *uuid.UUID `json:"costId,omitempty"`
	Nome   string     `json:"nome" validate:"required,max=200"`
	Valor  float64    `json:"valor" validate:"gte=0"`
}

type VariableExpenseRequest struct {
	Nome  string  `json:"nome" validate:"required,max=200"`
	Valor float64 `json:"valor" validate:"gte=0"`
}

type FinalizeProposalRequest struct {
	CustosFixosReais  []ProposalCostRequest    `json:"custosFixosReais,omitempty" validate:"omitempty,dive"`
	DespesasVariaveis []VariableExpenseRequest `json:"despesasVariaveis,omitempty" validate:"omitempty,dive"`
}

type SetFaturadoRequest struct {
	Faturado bool `json:"faturado"`
}

// --- Commission statements ---

type CommissionItemDTO struct {
	ProposalID      uuid.UUID `json:"proposalId"`
	LeadName        string    `json:"leadName,omitempty"`
	ProcessoInterno string    `json:"processoInterno,omitempty"`
	CrtIdentifier   string    `json:"crtIdentifier,omitempty"`
	FreteDolar      float64   `json:"freteDolar"`
	FreteReais      float64   `json:"freteReais"`
	Lucro           float64   `json:"lucro"`
	Comissao        float64   `json:"comissao"`
	Faturado        bool      `json:"faturado"`
	DataAceite      string    `json:"dataAceite,omitempty"` // ISO 8601
}

type CommissionStatementDTO struct {
	VendedorID            uuid.UUID           `json:"vendedorId"`
	Vendedor              string              `json:"vendedor"`
	Email                 string              `json:"email,omitempty"`
	Mes                   string              `json:"mes"` // YYYY-MM
	MetaFinanceira        float64             `json:"metaFinanceira"`
	MetaOperacional       int                 `json:"metaOperacional"`
	LucroTotal            float64             `json:"lucroTotal"`
	TotalEmbarques        int                 `json:"totalEmbarques"`
	PercentualFinanceiro  float64             `json:"percentualFinanceiro"`
	PercentualOperacional float64             `json:"percentualOperacional"`
	RestanteFinanceiro    float64             `json:"restanteFinanceiro"`
	RestanteOperacional   int                 `json:"restanteOperacional"`
	Comissao              float64             `json:"comissao"`
	Propostas             []CommissionItemDTO `json:"propostas"`
}

// --- Reports ---

type MonthlyReportDTO struct {
	Mes                 string  `json:"mes"` // YYYY-MM
	TotalPropostas      int     `json:"totalPropostas"`
	TotalNacional       int     `json:"totalNacional"`
	TotalInternacional  int     `json:"totalInternacional"`
	FaturamentoTotal    float64 `json:"faturamentoTotal"`
	LucroTotal          float64 `json:"lucroTotal"`
	ImpostosTotais      float64 `json:"impostosTotais"`
	PropostasComPrejuizo int    `json:"propostasComPrejuizo"`
}

type ABCEntryDTO struct {
	LeadID        uuid.UUID `json:"leadId"`
	Empresa       string    `json:"empresa"`
	LucroAcumulado float64  `json:"lucroAcumulado"`
	Classificacao string    `json:"classificacao"` // A, B or C
}

type LossProcessDTO struct {
	ProposalID      uuid.UUID `json:"proposalId"`
	LeadName        string    `json:"leadName,omitempty"`
	ProcessoInterno string    `json:"processoInterno,omitempty"`
	CrtIdentifier   string    `json:"crtIdentifier,omitempty"`
	Lucro           float64   `json:"lucro"`
	Status          ProposalStatus `json:"status"`
}

// --- Tasks / workflow ---

type TaskDTO struct {
	ID             uuid.UUID  `json:"id"`
	LeadID         uuid.UUID  `json:"leadId"`
	LeadName       string     `json:"leadName,omitempty"`
	Tipo           string     `json:"tipo"`
	Descricao      string     `json:"descricao"`
	ModeloMensagem string     `json:"modeloMensagem,omitempty"`
	DataProgramada string     `json:"dataProgramada"` // YYYY-MM-DD
	Status         TaskStatus `json:"status"`
	DataConclusao  string     `json:"dataConclusao,omitempty"` // ISO 8601
	CreatedAt      string     `json:"createdAt"`               // ISO 8601
}

type RescheduleTaskRequest struct {
	DataProgramada string `json:"dataProgramada" validate:"required,datetime=2006-01-02"`
}

type WorkflowTemplateDTO struct {
	ID             uuid.UUID        `json:"id"`
	DiaOffset      int              `json:"diaOffset"`
	Rotulo         string           `json:"rotulo,omitempty"`
	Tipo           string           `json:"tipo"`
	Descricao      string           `json:"descricao"`
	ModeloMensagem string           `json:"modeloMensagem,omitempty"`
	Categoria      WorkflowCategory `json:"categoria"`
	Ordem          int              `json:"ordem"`
	Ativo          bool             `json:"ativo"`
}

type WorkflowTemplateRequest struct {
	DiaOffset      int              `json:"diaOffset" validate:"gte=0"`
	Tipo           string           `json:"tipo" validate:"required,max=50"`
	Descricao      string           `json:"descricao" validate:"required,max=500"`
	ModeloMensagem string           `json:"modeloMensagem,omitempty"`
	Categoria      WorkflowCategory `json:"categoria,omitempty" validate:"omitempty,oneof=com_whatsapp sem_whatsapp"`
	Ordem          int              `json:"ordem,omitempty" validate:"gte=0"`
	Ativo          *bool            `json:"ativo,omitempty"`
}

// --- Catalogs ---

type OperationalCostDTO struct {
	ID    uuid.UUID `json:"id"`
	Nome  string    `json:"nome"`
	Valor float64   `json:"valor"`
}

type OperationalCostRequest struct {
	Nome  string  `json:"nome" validate:"required,max=200"`
	Valor float64 `json:"valor" validate:"gte=0"`
}

type PaymentTermDTO struct {
	ID        uuid.UUID `json:"id"`
	Descricao string    `json:"descricao"`
	Dias      int       `json:"dias"`
}

type PaymentTermRequest struct {
	Descricao string `json:"descricao" validate:"required,max=200"`
	Dias      int    `json:"dias" validate:"gte=0"`
}

type LocationDTO struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
	UF   string    `json:"uf,omitempty"`
}

type LocationRequest struct {
	Nome string `json:"nome" validate:"required,max=200"`
	UF   string `json:"uf,omitempty" validate:"max=5"`
}

// --- Occurrences ---

type OccurrenceDTO struct {
	ID             uuid.UUID      `json:"id"`
	LeadID         uuid.UUID      `json:"leadId"`
	LeadName       string         `json:"leadName,omitempty"`
	Tipo           OccurrenceType `json:"tipo"`
	Titulo         string         `json:"titulo"`
	Descricao      string         `json:"descricao,omitempty"`
	DataOcorrencia string         `json:"dataOcorrencia"` // YYYY-MM-DD
	CreatedAt      string         `json:"createdAt"`      // ISO 8601
}

type OccurrenceRequest struct {
	LeadID         uuid.UUID      `json:"leadId" validate:"required"`
	Tipo           OccurrenceType `json:"tipo" validate:"required,oneof=Reclamação Elogio Observação"`
	Titulo         string         `json:"titulo" validate:"required,max=200"`
	Descricao      string         `json:"descricao,omitempty"`
	DataOcorrencia string         `json:"dataOcorrencia" validate:"required,datetime=2006-01-02"`
}

// --- Shared ---

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
