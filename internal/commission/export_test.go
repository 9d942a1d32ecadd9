package commission_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/commission"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCSV(t *testing.T) {
	v := seller(1000, 10)
	leadID := uuid.New()

	p := acceptedProposal(v.ID, day(2025, time.March, 5), 2500)
	p.LeadID = leadID
	p.CrtIdentifier = "CRT-00123"
	p.FreteDolar = 1800

	st := commission.MonthlyStatement(v, []domain.Proposal{p}, day(2025, time.March, 1))
	out := string(commission.StatementCSV(st, map[uuid.UUID]string{leadID: "Transportes Ltda"}))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Vendedor;Lead;Documento;Valor USD;Lucro Estimado;Comissao", lines[0])
	assert.Equal(t, "Vendedor Teste;Transportes Ltda;CRT-00123;1800.00;2500.00;150.00", lines[1])
}

func TestStatementCSV_MissingLeadAndDocument(t *testing.T) {
	v := seller(0, 0)

	p := acceptedProposal(v.ID, day(2025, time.March, 5), 100)

	st := commission.MonthlyStatement(v, []domain.Proposal{p}, day(2025, time.March, 1))
	out := string(commission.StatementCSV(st, nil))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], ";N/A;N/A;")
}
