package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra a proveedor (lote). Los artículos del
// catálogo se derivan de estas órdenes; TotalAmount es lo pagado al proveedor
// por el lote completo.
type Order struct {
	ID          string
	UserID      string
	Supplier    string
	Reference   string // etiqueta libre del lote, ej: "Lote septiembre ropa"
	OrderDate   time.Time
	TotalAmount decimal.Decimal // total pagado al proveedor
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
