package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Regla de precedencia del costo: el TotalCost almacenado siempre gana si está
// presente, aunque diverja de UnitCost × Quantity tras una actualización parcial.
func TestItem_CostTotal_TotalAlmacenadoPrevalece(t *testing.T) {
	item := Item{
		Quantity:  3,
		UnitCost:  decimal.NewFromInt(10),
		TotalCost: decimal.NullDecimal{Decimal: decimal.NewFromInt(25), Valid: true},
	}
	assert.True(t, item.CostTotal().Equal(decimal.NewFromInt(25)),
		"TotalCost explícito debe prevalecer sobre UnitCost × Quantity")
}

func TestItem_CostTotal_DerivadoDeUnitario(t *testing.T) {
	item := Item{
		Quantity: 3,
		UnitCost: decimal.NewFromInt(10),
	}
	assert.True(t, item.CostTotal().Equal(decimal.NewFromInt(30)))
}

// Un artículo sin cantidad (registro legado) se trata como una unidad.
func TestItem_CostTotal_CantidadCeroCuentaComoUna(t *testing.T) {
	item := Item{
		UnitCost: decimal.NewFromInt(12),
	}
	assert.True(t, item.CostTotal().Equal(decimal.NewFromInt(12)))
}

func TestValidItemStatus(t *testing.T) {
	for _, s := range []string{ItemStatusInStock, ItemStatusListed, ItemStatusSold, ItemStatusProblem} {
		assert.True(t, ValidItemStatus(s), s)
	}
	assert.False(t, ValidItemStatus("archived"))
	assert.False(t, ValidItemStatus(""))
}
