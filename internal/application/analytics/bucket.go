package analytics

import (
	"time"

	"github.com/jhoicas/Reventa-api/internal/domain/entity"
)

// PeriodBucket es un período calendario con las ventas cuya fecha de venta cae
// en [Start, End]. Los buckets de una misma serie son contiguos y disjuntos.
type PeriodBucket struct {
	Label string    // "2025-09" (mes) o "2025-09-14" (semana/día)
	Start time.Time // inclusive
	End   time.Time // inclusive
	Items []*entity.Item
}

// MonthBuckets produce n buckets de meses calendario terminando en el mes de
// now, del más antiguo al más reciente. El mes en curso (parcial) se incluye.
// Los buckets sin ventas se conservan para que las gráficas tengan eje continuo.
func MonthBuckets(items []*entity.Item, n int, now time.Time) []PeriodBucket {
	buckets := make([]PeriodBucket, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		buckets = append(buckets, PeriodBucket{
			Label: start.Format("2006-01"),
			Start: start,
			End:   end,
		})
	}
	assign(buckets, items)
	return buckets
}

// WeekBuckets produce n ventanas móviles de 7 días terminando en now, now−7d,
// now−14d, ... No están alineadas a semanas calendario; la etiqueta es la fecha
// de inicio de la ventana.
func WeekBuckets(items []*entity.Item, n int, now time.Time) []PeriodBucket {
	buckets := make([]PeriodBucket, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -7*i)
		// Start un instante después del End de la ventana anterior: sin solapes.
		start := end.AddDate(0, 0, -7).Add(time.Nanosecond)
		buckets = append(buckets, PeriodBucket{
			Label: start.Format("2006-01-02"),
			Start: start,
			End:   end,
		})
	}
	assign(buckets, items)
	return buckets
}

// DayBuckets produce n días calendario terminando en el día de now.
func DayBuckets(items []*entity.Item, n int, now time.Time) []PeriodBucket {
	today := startOfDay(now)
	buckets := make([]PeriodBucket, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
		buckets = append(buckets, PeriodBucket{
			Label: start.Format("2006-01-02"),
			Start: start,
			End:   end,
		})
	}
	assign(buckets, items)
	return buckets
}

// assign reparte cada venta en como máximo un bucket según su fecha de venta.
// Artículos sin SoldDate (registro malformado) no suman a ningún bucket.
func assign(buckets []PeriodBucket, items []*entity.Item) {
	for _, it := range items {
		if it.SoldDate == nil {
			continue
		}
		sold := *it.SoldDate
		for b := range buckets {
			if !sold.Before(buckets[b].Start) && !sold.After(buckets[b].End) {
				buckets[b].Items = append(buckets[b].Items, it)
				break
			}
		}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
