package pricing_test

import (
	"testing"

	"github.com/rodolog/brokerage-api/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_RevenueConversion(t *testing.T) {
	tests := []struct {
		name       string
		freteDolar float64
		ptax       float64
		want       float64
	}{
		{"typical rate", 1000, 5, 5000},
		{"fractional rate", 2500, 5.1234, 2500 * 5.1234},
		{"zero freight", 0, 5, 0},
		{"zero ptax falls back to 1", 1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := pricing.Calculate(pricing.Input{FreteDolar: tt.freteDolar, Ptax: tt.ptax})
			assert.Equal(t, tt.want, snap.FreteReais)
		})
	}
}

func TestCalculate_TaxBases(t *testing.T) {
	snap := pricing.Calculate(pricing.Input{
		FreteDolar: 1000,
		Ptax:       5,
		KmNacional: 100,
	})

	assert.Equal(t, 5000.0, snap.FreteReais)
	assert.Equal(t, 1.0, snap.PorcentagemNacional)
	assert.InDelta(t, 182.50, snap.ImpostoPisCofins, 1e-9)
	assert.InDelta(t, 144.00, snap.ImpostoIRCS, 1e-9)
	assert.InDelta(t, 326.50, snap.TotalImpostos, 1e-9)
}

func TestCalculate_DomesticShareWeightsPisCofins(t *testing.T) {
	// Half the route is international, so only half the revenue enters the
	// PIS/COFINS base.
	snap := pricing.Calculate(pricing.Input{
		FreteDolar:      1000,
		Ptax:            5,
		KmNacional:      500,
		KmInternacional: 500,
	})

	assert.Equal(t, 0.5, snap.PorcentagemNacional)
	assert.InDelta(t, 5000*0.5*0.0365, snap.ImpostoPisCofins, 1e-9)
}

func TestCalculate_ZeroKmGuard(t *testing.T) {
	snap := pricing.Calculate(pricing.Input{
		FreteDolar: 1000,
		Ptax:       5,
	})

	assert.Equal(t, 1.0, snap.KmTotal)
	assert.Equal(t, 0.0, snap.PorcentagemNacional)
	assert.Equal(t, 0.0, snap.ImpostoPisCofins)
}

func TestCalculate_InsuranceIsInformational(t *testing.T) {
	with := pricing.Calculate(pricing.Input{
		FreteDolar:       2000,
		Ptax:             5,
		ValorMercadoria:  100000,
		SeguroPercentual: 0.3,
	})
	without := pricing.Calculate(pricing.Input{
		FreteDolar: 2000,
		Ptax:       5,
	})

	assert.Equal(t, 300.0, with.SeguroFinal)
	// Insurance never enters the expense or profit totals.
	assert.Equal(t, without.TotalGastos, with.TotalGastos)
	assert.Equal(t, without.LucroLiquido, with.LucroLiquido)
}

func TestCalculate_FullEstimate(t *testing.T) {
	snap := pricing.Calculate(pricing.Input{
		FreteDolar:    2000,
		Ptax:          5,
		FreteiroReais: 3000,
		KmNacional:    200,
	})

	assert.Equal(t, 10000.0, snap.FreteReais)
	assert.Equal(t, 3000.0, snap.TotalGastos)
	assert.InDelta(t, 288.0, snap.ImpostoIRCS, 1e-9)
	assert.InDelta(t, 365.0, snap.ImpostoPisCofins, 1e-9)
	assert.InDelta(t, 653.0, snap.TotalImpostos, 1e-9)
	assert.Equal(t, 7000.0, snap.LucroBruto)
	assert.InDelta(t, 6347.0, snap.LucroLiquido, 1e-9)
}

func TestCalculate_OperationalCostsSum(t *testing.T) {
	snap := pricing.Calculate(pricing.Input{
		FreteDolar:    1000,
		Ptax:          5,
		FreteiroReais: 1200,
		CustosFixos:   []float64{150, 80.5, 19.5},
	})

	assert.Equal(t, 250.0, snap.TotalCustosOperacionais)
	assert.Equal(t, 1450.0, snap.TotalGastos)
}

func TestNetProfitActual(t *testing.T) {
	// Creation snapshot: revenue 10000, taxes 653.
	got := pricing.NetProfitActual(10000, 653, 3000, []float64{200, 100}, []float64{50})
	assert.InDelta(t, (10000-3350.0)-653.0, got, 1e-9)
}

func TestNetProfitActual_TaxesCarriedUnchanged(t *testing.T) {
	snap := pricing.Calculate(pricing.Input{
		FreteDolar:    2000,
		Ptax:          5,
		FreteiroReais: 3000,
		KmNacional:    200,
	})

	// Realized costs identical to estimates reproduce the estimate exactly.
	same := pricing.NetProfitActual(snap.FreteReais, snap.TotalImpostos, 3000, nil, nil)
	assert.InDelta(t, snap.LucroLiquido, same, 1e-9)

	// Cost overruns reduce realized profit but never touch the tax figure.
	worse := pricing.NetProfitActual(snap.FreteReais, snap.TotalImpostos, 3000, []float64{500}, []float64{250})
	assert.InDelta(t, snap.LucroLiquido-750, worse, 1e-9)
}
