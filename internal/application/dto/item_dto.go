package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para catalogar un artículo. Si OrderID está vacío
// es un alta manual; si UnitCost y TotalCost vienen ambos vacíos y el artículo
// pertenece a una orden, el costo unitario se deriva del lote.
type CreateItemRequest struct {
	OrderID   string           `json:"order_id"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand"`
	Size      string           `json:"size"`
	Quantity  int              `json:"quantity"` // por defecto 1
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	TotalCost *decimal.Decimal `json:"total_cost"` // si se informa, prevalece sobre unit_cost × quantity
}

// BatchCreateItemsRequest alta de varios artículos de una misma orden.
type BatchCreateItemsRequest struct {
	Items []CreateItemRequest `json:"items"`
}

// UpdateItemRequest campos editables de un artículo (no toca el ciclo de venta).
type UpdateItemRequest struct {
	Name      *string          `json:"name"`
	Brand     *string          `json:"brand"`
	Size      *string          `json:"size"`
	Quantity  *int             `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	TotalCost *decimal.Decimal `json:"total_cost"`
}

// ListItemRequest entrada para marcar un artículo como publicado.
type ListItemRequest struct {
	Platform    string           `json:"platform"`
	ListedPrice *decimal.Decimal `json:"listed_price"`
	ListedDate  string           `json:"listed_date"` // YYYY-MM-DD; por defecto hoy
}

// SellItemRequest entrada para finalizar la venta de un artículo.
type SellItemRequest struct {
	SoldPrice decimal.Decimal `json:"sold_price"`
	SoldDate  string          `json:"sold_date"` // YYYY-MM-DD; por defecto hoy
	Platform  string          `json:"platform"`  // por defecto el de la publicación
}

// ListItemsQuery filtros de listado de artículos.
type ListItemsQuery struct {
	Status   string `query:"status"`
	Platform string `query:"platform"`
	PageRequest
}

// ItemResponse salida de un artículo del catálogo.
type ItemResponse struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"order_id,omitempty"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	Size        string           `json:"size"`
	Quantity    int              `json:"quantity"`
	UnitCost    decimal.Decimal  `json:"unit_cost"`
	TotalCost   decimal.Decimal  `json:"total_cost"` // costo efectivo (almacenado o derivado)
	ListedPrice *decimal.Decimal `json:"listed_price,omitempty"`
	ListedDate  *time.Time       `json:"listed_date,omitempty"`
	Platform    string           `json:"platform,omitempty"`
	SoldPrice   *decimal.Decimal `json:"sold_price,omitempty"`
	SoldDate    *time.Time       `json:"sold_date,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
