package dto

import "github.com/shopspring/decimal"

// Los DTOs del dashboard usan claves camelCase: es el contrato que consume el
// frontend de gráficas. Todos los importes y porcentajes van redondeados a 2
// decimales para evitar ruido de representación.

// DashboardPointDTO agregado de un período (mes o semana) de la serie temporal.
type DashboardPointDTO struct {
	Period     string          `json:"period"` // "2025-09" (mes) o "2025-09-14" (semana)
	Revenue    decimal.Decimal `json:"revenue"`
	Cost       decimal.Decimal `json:"cost"`
	Tax        decimal.Decimal `json:"tax"`
	Profit     decimal.Decimal `json:"profit"`
	Margin     decimal.Decimal `json:"margin"`
	SalesCount int             `json:"salesCount"`
}

// TopProductDTO una venta del ranking por beneficio.
type TopProductDTO struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Platform  string          `json:"platform"`
	SoldDate  string          `json:"soldDate"` // YYYY-MM-DD; vacío si el registro no la tiene
	SoldPrice decimal.Decimal `json:"soldPrice"`
	Cost      decimal.Decimal `json:"cost"`
	Tax       decimal.Decimal `json:"tax"`
	Profit    decimal.Decimal `json:"profit"`
}

// PlatformStatsDTO agregado por marketplace.
type PlatformStatsDTO struct {
	Platform     string          `json:"platform"` // nombre del marketplace u "Other"
	SalesCount   int             `json:"salesCount"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Tax          decimal.Decimal `json:"tax"`
	Profit       decimal.Decimal `json:"profit"`
	Margin       decimal.Decimal `json:"margin"`
	AveragePrice decimal.Decimal `json:"averagePrice"` // revenue / salesCount
}

// ProfitPointDTO acumulados hasta un día con al menos una venta.
type ProfitPointDTO struct {
	Date    string          `json:"date"`    // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"` // ingresos acumulados
	Cost    decimal.Decimal `json:"cost"`    // costo + impuesto acumulados
	Profit  decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"`
}

// DashboardDTO respuesta completa de GET /api/dashboard.
type DashboardDTO struct {
	RevenueByMonth        []DashboardPointDTO `json:"revenueByMonth"` // 12 meses calendario
	RevenueByWeek         []DashboardPointDTO `json:"revenueByWeek"`  // 12 ventanas de 7 días
	TopProducts           []TopProductDTO     `json:"topProducts"`    // top 5 por beneficio
	SalesByPlatform       []PlatformStatsDTO  `json:"salesByPlatform"`
	ProfitabilityOverTime []ProfitPointDTO    `json:"profitabilityOverTime"` // 30 días

	// Totales planos sobre TODAS las ventas finalizadas, sin ventana.
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalSales    int             `json:"totalSales"`
	AverageMargin decimal.Decimal `json:"averageMargin"`
}
