// Package analytics implementa el núcleo de agregación financiera: política de
// impuestos, bucketing por períodos, agregados (ingresos, costo, impuesto,
// beneficio, margen) y la fachada del dashboard.
//
// Todo el paquete es recomputación pura en memoria: las ventas se leen UNA vez
// por petición y se agrupan aquí; no hay estado incremental ni caché.
package analytics

import "github.com/shopspring/decimal"

// Tasas de cotización sobre el precio de venta. El flag ReducedTax del usuario
// (régimen ACRE) selecciona entre las dos; no hay más casos.
var (
	rateReduced  = decimal.New(11, -2) // 0.11
	rateStandard = decimal.New(22, -2) // 0.22
)

// TaxRate devuelve la tasa de impuesto aplicable al precio de venta.
func TaxRate(reduced bool) decimal.Decimal {
	if reduced {
		return rateReduced
	}
	return rateStandard
}
