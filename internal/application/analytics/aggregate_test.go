package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reventa-api/internal/domain/entity"
)

var tasaGeneral = TaxRate(false) // 0.22

// assertDecimal compara decimales por valor con mensaje legible.
func assertDecimal(t *testing.T, expected string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(expected)),
		"esperado %s, obtenido %s — %v", expected, got.String(), msgAndArgs)
}

func escenarioTresVentas() []*entity.Item {
	d1 := time.Date(2025, 9, 10, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	return []*entity.Item{
		venta("camisa", "Vinted", "85", "45", d1),
		venta("pantalon", "Leboncoin", "45", "20", d1),
		venta("abrigo", "", "380", "280", d2), // sin marketplace → "Other"
	}
}

func TestCompute_FormulasBasicas(t *testing.T) {
	agg := Compute(escenarioTresVentas(), tasaGeneral)

	assertDecimal(t, "510", agg.Revenue)
	assertDecimal(t, "345", agg.Cost)
	assertDecimal(t, "112.2", agg.Tax) // 510 × 0.22
	assertDecimal(t, "52.8", agg.Profit)
	assert.Equal(t, 3, agg.SalesCount)

	// Invariante: profit = revenue − cost − tax, exacto.
	assert.True(t, agg.Profit.Equal(agg.Revenue.Sub(agg.Cost).Sub(agg.Tax)))
}

func TestCompute_SinVentas_TodoCeroSinDivision(t *testing.T) {
	agg := Compute(nil, tasaGeneral)
	assertDecimal(t, "0", agg.Revenue)
	assertDecimal(t, "0", agg.Margin, "margen definido como 0 cuando revenue es 0")
	assert.Equal(t, 0, agg.SalesCount)
}

func TestCompute_CostoExplicitoPrevalece(t *testing.T) {
	it := venta("lote", "Vinted", "100", "10", time.Now())
	it.Quantity = 4 // 4 × 10 = 40 derivado...
	it.TotalCost = decimal.NullDecimal{Decimal: decimal.NewFromInt(55), Valid: true}

	agg := Compute([]*entity.Item{it}, tasaGeneral)
	assertDecimal(t, "55", agg.Cost, "...pero el TotalCost almacenado gana")
}

func TestPerBucket_UnResultadoPorBucketIncluidosVacios(t *testing.T) {
	buckets := MonthBuckets(escenarioTresVentas(), 12, ahora)
	results := PerBucket(buckets, tasaGeneral)
	require.Len(t, results, 12)

	vacios := 0
	for _, r := range results {
		if r.SalesCount == 0 {
			vacios++
			assertDecimal(t, "0", r.Revenue)
			assertDecimal(t, "0", r.Margin)
		}
		assert.True(t, r.Profit.Equal(r.Revenue.Sub(r.Cost).Sub(r.Tax)))
	}
	assert.Equal(t, 11, vacios, "las tres ventas caen en el mismo mes")
}

func TestTopByProfit_OrdenYLimite(t *testing.T) {
	ranked := TopByProfit(escenarioTresVentas(), tasaGeneral, 5)
	require.Len(t, ranked, 3, "devuelve min(N, total)")

	// Vinted 21.3 > Other 16.4 > Leboncoin 15.1
	assert.Equal(t, "camisa", ranked[0].Item.Name)
	assertDecimal(t, "21.3", ranked[0].Profit)
	assert.Equal(t, "abrigo", ranked[1].Item.Name)
	assertDecimal(t, "16.4", ranked[1].Profit)
	assert.Equal(t, "pantalon", ranked[2].Item.Name)
	assertDecimal(t, "15.1", ranked[2].Profit)

	top1 := TopByProfit(escenarioTresVentas(), tasaGeneral, 1)
	require.Len(t, top1, 1)
	assert.Equal(t, "camisa", top1[0].Item.Name)
}

func TestTopByProfit_EmpatesConservanOrdenDeEntrada(t *testing.T) {
	d := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Item{
		venta("primero", "Vinted", "100", "50", d),
		venta("segundo", "Wallapop", "100", "50", d), // beneficio idéntico
		venta("tercero", "Vinted", "100", "50", d),
	}
	ranked := TopByProfit(items, tasaGeneral, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "primero", ranked[0].Item.Name)
	assert.Equal(t, "segundo", ranked[1].Item.Name)
	assert.Equal(t, "tercero", ranked[2].Item.Name, "empates: orden estable, sin fusionar")
}

func TestByPlatform_ParticionCompletaYOther(t *testing.T) {
	groups := ByPlatform(escenarioTresVentas(), tasaGeneral)
	require.Len(t, groups, 3)

	// Orden por ingresos descendentes: Other(380) > Vinted(85) > Leboncoin(45)
	assert.Equal(t, OtherPlatform, groups[0].Platform)
	assertDecimal(t, "380", groups[0].Revenue)
	assert.Equal(t, 1, groups[0].SalesCount)
	assert.Equal(t, "Vinted", groups[1].Platform)
	assert.Equal(t, "Leboncoin", groups[2].Platform)

	// La partición cubre cada venta exactamente una vez.
	total := 0
	for _, g := range groups {
		total += g.SalesCount
	}
	assert.Equal(t, 3, total)
}

func TestByPlatform_PrecioMedio(t *testing.T) {
	d := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	items := []*entity.Item{
		venta("a", "Vinted", "30", "10", d),
		venta("b", "Vinted", "50", "10", d),
	}
	groups := ByPlatform(items, tasaGeneral)
	require.Len(t, groups, 1)
	assertDecimal(t, "40", groups[0].AveragePrice)
}

func TestCumulativeByDay_AcumuladosMonotonicos(t *testing.T) {
	items := []*entity.Item{
		venta("d1a", "Vinted", "85", "45", ahora.AddDate(0, 0, -5)),
		venta("d1b", "Leboncoin", "45", "20", ahora.AddDate(0, 0, -5)),
		venta("d2", "", "380", "280", ahora.AddDate(0, 0, -3)),
		venta("viejo", "Vinted", "999", "1", ahora.AddDate(0, 0, -40)), // fuera de la ventana de 30 días
	}
	points := CumulativeByDay(items, tasaGeneral, 30, ahora)
	require.Len(t, points, 2, "solo los días con ventas emiten fila")

	assert.True(t, points[0].Date < points[1].Date, "orden ascendente por día")
	assertDecimal(t, "130", points[0].Revenue)
	assertDecimal(t, "510", points[1].Revenue)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Revenue.GreaterThanOrEqual(points[i-1].Revenue),
			"ingresos acumulados nunca decrecen")
		assert.True(t, points[i].Cost.GreaterThanOrEqual(points[i-1].Cost),
			"costo+impuesto acumulado nunca decrece")
	}

	// Última fila: acumulado total de la ventana.
	last := points[len(points)-1]
	assert.True(t, last.Profit.Equal(last.Revenue.Sub(last.Cost)),
		"profit acumulado = revenue − (cost+tax) acumulados")
}

func TestCumulativeByDay_VentanaNoPositiva(t *testing.T) {
	assert.Empty(t, CumulativeByDay(escenarioTresVentas(), tasaGeneral, 0, ahora))
}
