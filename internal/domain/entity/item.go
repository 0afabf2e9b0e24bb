package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un artículo.
const (
	ItemStatusInStock = "in_stock" // en stock, sin publicar
	ItemStatusListed  = "listed"   // publicado en un marketplace
	ItemStatusSold    = "sold"     // venta finalizada (única relevante para analítica)
	ItemStatusProblem = "problem"  // devolución, pérdida, artículo defectuoso
)

// ValidItemStatus indica si s es un estado de artículo conocido.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusInStock, ItemStatusListed, ItemStatusSold, ItemStatusProblem:
		return true
	}
	return false
}

// Item representa un artículo del catálogo del revendedor, normalmente derivado
// de una orden de compra (OrderID vacío si fue alta manual).
//
// Invariantes que asume la analítica (los hace cumplir la capa de casos de uso):
//   - SoldPrice y SoldDate se fijan juntos al marcar la venta.
//   - CostTotal() nunca es negativo.
type Item struct {
	ID          string
	UserID      string
	OrderID     string
	Name        string
	Brand       string
	Size        string
	Quantity    int             // unidades que agrupa el artículo (bundle); mínimo 1
	UnitCost    decimal.Decimal // costo unitario derivado del lote
	TotalCost   decimal.NullDecimal // si está presente prevalece sobre UnitCost × Quantity
	ListedPrice decimal.NullDecimal
	ListedDate  *time.Time
	Platform    string // marketplace donde se publicó/vendió; vacío hasta publicar
	SoldPrice   decimal.Decimal
	SoldDate    *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CostTotal devuelve el costo total del artículo: el TotalCost almacenado
// siempre gana si está presente; si no, se deriva como UnitCost × Quantity.
func (i *Item) CostTotal() decimal.Decimal {
	if i.TotalCost.Valid {
		return i.TotalCost.Decimal
	}
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return i.UnitCost.Mul(decimal.NewFromInt(int64(qty)))
}

// IsSold indica si el artículo es una venta finalizada.
func (i *Item) IsSold() bool {
	return i.Status == ItemStatusSold
}
