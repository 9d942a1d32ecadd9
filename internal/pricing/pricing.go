// Package pricing derives the financial snapshot of a freight proposal from
// its raw commercial inputs. All functions are pure: they take every value as
// an explicit parameter, perform no I/O and raise no errors. Callers are
// responsible for normalizing absent numeric fields to zero before invoking.
package pricing

// Tax rates applied to every proposal. IRCS is levied on the USD freight value
// converted to BRL; PIS/COFINS only on the share of revenue attributable to
// domestic distance.
const (
	TaxRateIRCS      = 0.0288
	TaxRatePisCofins = 0.0365
)

// Input holds the raw commercial terms of a proposal
type Input struct {
	FreteDolar       float64
	Ptax             float64
	ValorMercadoria  float64
	SeguroPercentual float64
	FreteiroReais    float64
	CustosFixos      []float64
	KmNacional       float64
	KmInternacional  float64
}

// Snapshot is the derived financial picture persisted on the proposal at
// creation time. TotalImpostos is treated as constant from then on: it is not
// recomputed at finalization because taxes follow the contracted freight, not
// realized costs.
type Snapshot struct {
	FreteReais              float64
	SeguroFinal             float64
	TotalCustosOperacionais float64
	TotalGastos             float64
	LucroBruto              float64
	ImpostoIRCS             float64
	ImpostoPisCofins        float64
	TotalImpostos           float64
	LucroLiquido            float64
	KmTotal                 float64
	PorcentagemNacional     float64
}

// Calculate derives the full financial snapshot for the given inputs.
//
// A non-positive PTAX falls back to 1, and the total distance floors at 1 km
// so the domestic share never divides by zero. SeguroFinal is informational:
// it is reported but never deducted from profit.
func Calculate(in Input) Snapshot {
	ptax := in.Ptax
	if ptax <= 0 {
		ptax = 1
	}

	freteReais := in.FreteDolar * ptax
	seguroFinal := in.ValorMercadoria * in.SeguroPercentual / 100

	var totalCustos float64
	for _, v := range in.CustosFixos {
		totalCustos += v
	}
	totalGastos := in.FreteiroReais + totalCustos

	kmTotal := in.KmNacional + in.KmInternacional
	if kmTotal < 1 {
		kmTotal = 1
	}
	porcentagemNacional := in.KmNacional / kmTotal

	ircs := in.FreteDolar * TaxRateIRCS * ptax
	pisCofins := freteReais * porcentagemNacional * TaxRatePisCofins
	totalImpostos := ircs + pisCofins

	lucroBruto := freteReais - totalGastos

	return Snapshot{
		FreteReais:              freteReais,
		SeguroFinal:             seguroFinal,
		TotalCustosOperacionais: totalCustos,
		TotalGastos:             totalGastos,
		LucroBruto:              lucroBruto,
		ImpostoIRCS:             ircs,
		ImpostoPisCofins:        pisCofins,
		TotalImpostos:           totalImpostos,
		LucroLiquido:            lucroBruto - totalImpostos,
		KmTotal:                 kmTotal,
		PorcentagemNacional:     porcentagemNacional,
	}
}

// NetProfitActual computes the realized net profit at finalization. Revenue
// and total taxes come unchanged from the creation snapshot; only the cost
// side is replaced with realized figures.
func NetProfitActual(freteReais, totalImpostos, freteiroReais float64, custosFixosReais, despesasVariaveis []float64) float64 {
	var fixos, variaveis float64
	for _, v := range custosFixosReais {
		fixos += v
	}
	for _, v := range despesasVariaveis {
		variaveis += v
	}
	totalGastosReais := freteiroReais + fixos + variaveis
	return (freteReais - totalGastosReais) - totalImpostos
}
