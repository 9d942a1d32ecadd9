// Package commission implements the monthly commission statement for sellers:
// which proposals count toward a calendar month (including rollover of
// accepted-but-unbilled proposals from earlier months) and how much commission
// each one yields once the seller's monthly goal is crossed.
//
// Everything here is pure computation over caller-supplied records. The
// allocator keeps no state between calls; running it twice over the same
// inputs yields identical output.
package commission

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
)

// VolumeGoal is the monthly shipment-count goal. It is a global constant for
// all sellers; only the financial goal is configured per seller.
const VolumeGoal = 34

// Item is one proposal of the statement enriched with its individual
// commission share.
type Item struct {
	Proposal *domain.Proposal
	Lucro    float64
	Comissao float64
}

// Statement is the per-seller, per-month commission summary
type Statement struct {
	Vendedor              domain.User
	Mes                   time.Time // first day of the target month
	MetaFinanceira        float64
	LucroTotal            float64
	TotalEmbarques        int
	PercentualFinanceiro  float64
	PercentualOperacional float64
	RestanteFinanceiro    float64
	RestanteOperacional   int
	Comissao              float64
	Itens                 []Item
}

// VisibleInMonth selects the proposals that count toward the given month for
// the given seller and returns them sorted ascending by acceptance date
// (stable, so insertion order breaks ties).
//
// A proposal counts when it is Aceita or Finalizada with a recorded
// acceptance date, and either the acceptance falls inside the month, or it
// was accepted earlier and is still unbilled (rollover), or it was billed
// inside the target month. Records without a usable acceptance date are
// skipped; the store enforces no schema.
func VisibleInMonth(proposals []domain.Proposal, vendedorID uuid.UUID, month time.Time) []*domain.Proposal {
	target := startOfMonth(month)

	var visible []*domain.Proposal
	for i := range proposals {
		p := &proposals[i]
		if p.VendedorID != vendedorID {
			continue
		}
		if p.Status != domain.ProposalAceita && p.Status != domain.ProposalFinalizada {
			continue
		}
		if p.DataAceite == nil || p.DataAceite.IsZero() {
			continue
		}

		aceite := startOfMonth(*p.DataAceite)
		switch {
		case aceite.Equal(target):
			visible = append(visible, p)
		case aceite.Before(target):
			if !p.Faturado {
				// Unbilled rollover: keeps appearing until billed.
				visible = append(visible, p)
			} else if p.DataFaturado != nil && startOfMonth(*p.DataFaturado).Equal(target) {
				// Billed proposals appear exactly once, in the billing month.
				visible = append(visible, p)
			}
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].DataAceite.Before(*visible[j].DataAceite)
	})
	return visible
}

// MonthlyStatement computes the commission statement for one seller and one
// target month (any day inside the month).
//
// The allocation is a single left-to-right pass over the visible proposals.
// Before a goal (financial OR volume) is met, proposals yield no commission.
// The proposal whose inclusion first crosses either goal earns commission on
// the entire profit overflow above the financial goal accumulated so far; once
// the goal is met, each following proposal earns only its marginal slice of
// profit above the goal. Commission is never negative.
func MonthlyStatement(vendedor domain.User, proposals []domain.Proposal, month time.Time) Statement {
	visible := VisibleInMonth(proposals, vendedor.ID, month)

	meta := vendedor.MetaFinanceira
	percent := vendedor.PorcentagemComissao

	var (
		runningProfit float64
		runningCount  int
		totalComissao float64
	)

	itens := make([]Item, 0, len(visible))
	for _, p := range visible {
		lucro := p.Profit()

		financialMet := meta > 0 && runningProfit >= meta
		volumeMet := runningCount >= VolumeGoal

		var base float64
		if financialMet || volumeMet {
			// Marginal slice: how much this proposal alone raises the
			// profit-above-goal total.
			after := positive(runningProfit + lucro - meta)
			before := positive(runningProfit - meta)
			base = positive(after - before)
		} else {
			crossesFinancial := meta > 0 && runningProfit+lucro >= meta
			crossesVolume := runningCount+1 >= VolumeGoal
			if crossesFinancial || crossesVolume {
				// The crossing proposal takes the whole overflow above the
				// goal, including profit accumulated by earlier proposals.
				base = positive(runningProfit + lucro - meta)
			}
		}

		comissao := positive(base) * percent / 100

		runningProfit += lucro
		runningCount++
		totalComissao += comissao

		itens = append(itens, Item{Proposal: p, Lucro: lucro, Comissao: comissao})
	}

	percentFinanceiro := 100.0
	if meta > 0 {
		percentFinanceiro = capPercent(runningProfit / meta * 100)
	}

	return Statement{
		Vendedor:              vendedor,
		Mes:                   startOfMonth(month),
		MetaFinanceira:        meta,
		LucroTotal:            runningProfit,
		TotalEmbarques:        runningCount,
		PercentualFinanceiro:  percentFinanceiro,
		PercentualOperacional: capPercent(float64(runningCount) / VolumeGoal * 100),
		RestanteFinanceiro:    positive(meta - runningProfit),
		RestanteOperacional:   positiveInt(VolumeGoal - runningCount),
		Comissao:              totalComissao,
		Itens:                 itens,
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func positiveInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func capPercent(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
