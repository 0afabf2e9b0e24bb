package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
)

// OtherPlatform agrupa las ventas sin marketplace informado.
const OtherPlatform = "Other"

var hundred = decimal.NewFromInt(100)

// Aggregate métricas financieras de un conjunto de ventas. Siempre cumple
// Profit = Revenue − Cost − Tax; Margin es 0 cuando Revenue es 0.
type Aggregate struct {
	Revenue    decimal.Decimal // Σ precio de venta
	Cost       decimal.Decimal // Σ costo total (CostTotal)
	Tax        decimal.Decimal // Σ precio de venta × tasa
	Profit     decimal.Decimal
	Margin     decimal.Decimal // Profit / Revenue × 100
	SalesCount int
}

// Compute calcula el agregado de un conjunto de ventas con la tasa dada.
// Campos numéricos ausentes valen 0: una venta malformada suma cero, no falla.
func Compute(items []*entity.Item, rate decimal.Decimal) Aggregate {
	var revenue, cost, tax decimal.Decimal
	for _, it := range items {
		revenue = revenue.Add(it.SoldPrice)
		cost = cost.Add(it.CostTotal())
		tax = tax.Add(it.SoldPrice.Mul(rate))
	}
	profit := revenue.Sub(cost).Sub(tax)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}
	return Aggregate{
		Revenue:    revenue,
		Cost:       cost,
		Tax:        tax,
		Profit:     profit,
		Margin:     margin,
		SalesCount: len(items),
	}
}

// BucketAggregate agregado de un PeriodBucket.
type BucketAggregate struct {
	Label string
	Start time.Time
	End   time.Time
	Aggregate
}

// PerBucket calcula un agregado por bucket. Devuelve exactamente un resultado
// por bucket de entrada, incluidos los vacíos (todo en cero).
func PerBucket(buckets []PeriodBucket, rate decimal.Decimal) []BucketAggregate {
	out := make([]BucketAggregate, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, BucketAggregate{
			Label:     b.Label,
			Start:     b.Start,
			End:       b.End,
			Aggregate: Compute(b.Items, rate),
		})
	}
	return out
}

// ItemProfit beneficio individual de una venta:
// profit = precio − costo − precio × tasa.
type ItemProfit struct {
	Item   *entity.Item
	Cost   decimal.Decimal
	Tax    decimal.Decimal
	Profit decimal.Decimal
}

// TopByProfit ordena las ventas por beneficio descendente y devuelve las
// primeras min(n, total). Empates conservan el orden relativo de entrada
// (orden estable); ventas con beneficio idéntico no se fusionan.
func TopByProfit(items []*entity.Item, rate decimal.Decimal, n int) []ItemProfit {
	ranked := make([]ItemProfit, 0, len(items))
	for _, it := range items {
		cost := it.CostTotal()
		tax := it.SoldPrice.Mul(rate)
		ranked = append(ranked, ItemProfit{
			Item:   it,
			Cost:   cost,
			Tax:    tax,
			Profit: it.SoldPrice.Sub(cost).Sub(tax),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit.GreaterThan(ranked[j].Profit)
	})
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// PlatformAggregate agregado por marketplace, con precio medio de venta.
type PlatformAggregate struct {
	Platform string
	Aggregate
	AveragePrice decimal.Decimal // Revenue / SalesCount; 0 si no hay ventas
}

// ByPlatform particiona las ventas por marketplace (vacío → "Other") y agrega
// cada partición. Cada venta cae exactamente en un grupo. Salida ordenada por
// ingresos descendentes.
func ByPlatform(items []*entity.Item, rate decimal.Decimal) []PlatformAggregate {
	groups := make(map[string][]*entity.Item)
	order := make([]string, 0)
	for _, it := range items {
		platform := it.Platform
		if platform == "" {
			platform = OtherPlatform
		}
		if _, seen := groups[platform]; !seen {
			order = append(order, platform)
		}
		groups[platform] = append(groups[platform], it)
	}

	out := make([]PlatformAggregate, 0, len(order))
	for _, platform := range order {
		agg := Compute(groups[platform], rate)
		avg := decimal.Zero
		if agg.SalesCount > 0 {
			avg = agg.Revenue.Div(decimal.NewFromInt(int64(agg.SalesCount)))
		}
		out = append(out, PlatformAggregate{
			Platform:     platform,
			Aggregate:    agg,
			AveragePrice: avg,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// CumulativePoint acumulados hasta un día concreto (inclusive).
type CumulativePoint struct {
	Date    string          // "2006-01-02"
	Revenue decimal.Decimal // ingresos acumulados
	Cost    decimal.Decimal // costo + impuesto acumulados
	Profit  decimal.Decimal
	Margin  decimal.Decimal // Profit / Revenue × 100 acumulado; 0 si Revenue es 0
}

// CumulativeByDay agrupa las ventas de los últimos `days` días por día
// calendario y acumula ingresos, costo+impuesto y beneficio a lo largo de los
// días, en orden ascendente. A diferencia de PerBucket, los días sin ventas no
// emiten fila.
func CumulativeByDay(items []*entity.Item, rate decimal.Decimal, days int, now time.Time) []CumulativePoint {
	out := make([]CumulativePoint, 0)
	if days <= 0 {
		return out
	}
	windowStart := startOfDay(now).AddDate(0, 0, -(days - 1))

	byDay := make(map[string][]*entity.Item)
	for _, it := range items {
		if it.SoldDate == nil {
			continue
		}
		if it.SoldDate.Before(windowStart) || it.SoldDate.After(now) {
			continue
		}
		key := it.SoldDate.Format("2006-01-02")
		byDay[key] = append(byDay[key], it)
	}

	dayKeys := make([]string, 0, len(byDay))
	for k := range byDay {
		dayKeys = append(dayKeys, k)
	}
	sort.Strings(dayKeys)

	var revenue, spent, profit decimal.Decimal
	for _, key := range dayKeys {
		day := Compute(byDay[key], rate)
		revenue = revenue.Add(day.Revenue)
		spent = spent.Add(day.Cost).Add(day.Tax)
		profit = profit.Add(day.Profit)

		margin := decimal.Zero
		if revenue.IsPositive() {
			margin = profit.Div(revenue).Mul(hundred)
		}
		out = append(out, CumulativePoint{
			Date:    key,
			Revenue: revenue,
			Cost:    spent,
			Profit:  profit,
			Margin:  margin,
		})
	}
	return out
}
