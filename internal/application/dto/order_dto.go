package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para registrar una orden de compra a proveedor.
type CreateOrderRequest struct {
	Supplier    string          `json:"supplier"`
	Reference   string          `json:"reference"`
	OrderDate   string          `json:"order_date"` // YYYY-MM-DD; por defecto hoy
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
}

// UpdateOrderRequest campos editables de una orden.
type UpdateOrderRequest struct {
	Supplier    *string          `json:"supplier"`
	Reference   *string          `json:"reference"`
	OrderDate   *string          `json:"order_date"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Notes       *string          `json:"notes"`
}

// OrderResponse salida de una orden de compra.
type OrderResponse struct {
	ID          string          `json:"id"`
	Supplier    string          `json:"supplier"`
	Reference   string          `json:"reference"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderDetailResponse orden enriquecida con sus artículos y el punto de
// equilibrio del lote: ingresos acumulados de las ventas del lote como % del
// total pagado al proveedor (métrica solo de presentación).
type OrderDetailResponse struct {
	OrderResponse
	Items        []ItemResponse  `json:"items"`
	ItemsCount   int             `json:"items_count"`
	SoldCount    int             `json:"sold_count"`
	SoldRevenue  decimal.Decimal `json:"sold_revenue"`
	BreakEvenPct decimal.Decimal `json:"break_even_pct"` // SoldRevenue / TotalAmount × 100; 0 si TotalAmount es 0
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
