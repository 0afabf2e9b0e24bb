package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reventa-api/internal/application/dto"
	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
)

// entorno arma un usuario con una orden de 200 ya registrada.
func entorno(t *testing.T) (*ItemUseCase, *OrderUseCase, string) {
	t.Helper()
	orders, items := newMemOrderRepo(), newMemItemRepo()
	orderUC := NewOrderUseCase(orders, items)
	itemUC := NewItemUseCase(items, orders)
	order, err := orderUC.Create("u1", dto.CreateOrderRequest{Supplier: "Lote", TotalAmount: dec("200")})
	require.NoError(t, err)
	return itemUC, orderUC, order.ID
}

func TestItemCreateBatch_DerivaCostoUnitarioDelLote(t *testing.T) {
	uc, _, orderID := entorno(t)

	// 200 del lote repartidos entre 5 unidades ⇒ 40 por unidad.
	out, err := uc.CreateBatch("u1", orderID, dto.BatchCreateItemsRequest{
		Items: []dto.CreateItemRequest{
			{Name: "camisa", Quantity: 2},
			{Name: "pantalon", Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].UnitCost.Equal(dec("40")))
	assert.True(t, out[0].TotalCost.Equal(dec("80")), "2 unidades × 40")
	assert.True(t, out[1].TotalCost.Equal(dec("120")), "3 unidades × 40")
	assert.Equal(t, entity.ItemStatusInStock, out[0].Status)
}

func TestItemCreateBatch_CostoExplicitoNoSeDeriva(t *testing.T) {
	uc, _, orderID := entorno(t)

	out, err := uc.CreateBatch("u1", orderID, dto.BatchCreateItemsRequest{
		Items: []dto.CreateItemRequest{
			{Name: "abrigo", TotalCost: decPtr("55")},
			{Name: "gorra", UnitCost: decPtr("3"), Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, out[0].TotalCost.Equal(dec("55")), "el costo explícito del artículo gana")
	assert.True(t, out[1].TotalCost.Equal(dec("6")))
}

func TestItemCreate_AltaManualSinOrden(t *testing.T) {
	uc, _, _ := entorno(t)

	resp, err := uc.Create("u1", dto.CreateItemRequest{Name: "suelto", UnitCost: decPtr("7")})
	require.NoError(t, err)
	assert.Empty(t, resp.OrderID)
	assert.True(t, resp.TotalCost.Equal(dec("7")))

	_, err = uc.Create("u1", dto.CreateItemRequest{UnitCost: decPtr("7")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")
}

func TestItemCreate_OrdenAjena(t *testing.T) {
	uc, _, orderID := entorno(t)
	_, err := uc.Create("u2", dto.CreateItemRequest{OrderID: orderID, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestItemCicloDeVenta(t *testing.T) {
	uc, _, orderID := entorno(t)
	created, err := uc.Create("u1", dto.CreateItemRequest{OrderID: orderID, Name: "camisa", Quantity: 1})
	require.NoError(t, err)

	// Publicar.
	listed, err := uc.MarkListed("u1", created.ID, dto.ListItemRequest{
		Platform:    "Vinted",
		ListedPrice: decPtr("90"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusListed, listed.Status)
	assert.Equal(t, "Vinted", listed.Platform)
	require.NotNil(t, listed.ListedPrice)
	assert.True(t, listed.ListedPrice.Equal(dec("90")))
	require.NotNil(t, listed.ListedDate)

	// Vender; la plataforma por defecto es la de la publicación.
	sold, err := uc.MarkSold("u1", created.ID, dto.SellItemRequest{
		SoldPrice: dec("85"),
		SoldDate:  "2025-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusSold, sold.Status)
	assert.Equal(t, "Vinted", sold.Platform)
	require.NotNil(t, sold.SoldPrice)
	assert.True(t, sold.SoldPrice.Equal(dec("85")))
	require.NotNil(t, sold.SoldDate)
	assert.Equal(t, "2025-09-10", sold.SoldDate.Format("2006-01-02"))

	// Doble venta y republicación son conflictos.
	_, err = uc.MarkSold("u1", created.ID, dto.SellItemRequest{SoldPrice: dec("85")})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = uc.MarkListed("u1", created.ID, dto.ListItemRequest{Platform: "Wallapop"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestItemMarkSold_DirectoDesdeStock(t *testing.T) {
	uc, _, _ := entorno(t)
	created, err := uc.Create("u1", dto.CreateItemRequest{Name: "venta rápida", UnitCost: decPtr("5")})
	require.NoError(t, err)

	sold, err := uc.MarkSold("u1", created.ID, dto.SellItemRequest{
		SoldPrice: dec("20"),
		Platform:  "Leboncoin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Leboncoin", sold.Platform, "venta sin publicación previa fija la plataforma")
}

func TestItemMarkSold_PrecioNegativo(t *testing.T) {
	uc, _, _ := entorno(t)
	created, err := uc.Create("u1", dto.CreateItemRequest{Name: "x"})
	require.NoError(t, err)
	_, err = uc.MarkSold("u1", created.ID, dto.SellItemRequest{SoldPrice: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemMarkProblem_DeshaceLaVenta(t *testing.T) {
	uc, _, _ := entorno(t)
	created, err := uc.Create("u1", dto.CreateItemRequest{Name: "devuelto", UnitCost: decPtr("5")})
	require.NoError(t, err)
	_, err = uc.MarkSold("u1", created.ID, dto.SellItemRequest{SoldPrice: dec("30")})
	require.NoError(t, err)

	prob, err := uc.MarkProblem("u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusProblem, prob.Status)
	assert.Nil(t, prob.SoldDate, "la devolución saca la venta de la analítica")
	assert.Nil(t, prob.SoldPrice)
}

func TestItemList_FiltroDeEstadoInvalido(t *testing.T) {
	uc, _, _ := entorno(t)
	_, err := uc.List("u1", dto.ListItemsQuery{Status: "vendido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemList_FiltraPorEstadoYPlataforma(t *testing.T) {
	uc, _, _ := entorno(t)
	a, _ := uc.Create("u1", dto.CreateItemRequest{Name: "a"})
	b, _ := uc.Create("u1", dto.CreateItemRequest{Name: "b"})
	_, err := uc.MarkListed("u1", a.ID, dto.ListItemRequest{Platform: "Vinted"})
	require.NoError(t, err)
	_, err = uc.MarkListed("u1", b.ID, dto.ListItemRequest{Platform: "Wallapop"})
	require.NoError(t, err)

	out, err := uc.List("u1", dto.ListItemsQuery{Status: entity.ItemStatusListed, Platform: "Vinted"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "a", out.Items[0].Name)
	assert.Equal(t, 20, out.Page.Limit, "paginación por defecto")
}

func TestItemUpdate_NoTocaElCicloDeVenta(t *testing.T) {
	uc, _, _ := entorno(t)
	created, err := uc.Create("u1", dto.CreateItemRequest{Name: "x", UnitCost: decPtr("5")})
	require.NoError(t, err)
	_, err = uc.MarkSold("u1", created.ID, dto.SellItemRequest{SoldPrice: dec("9"), Platform: "Vinted"})
	require.NoError(t, err)

	brand := "Nike"
	updated, err := uc.Update("u1", created.ID, dto.UpdateItemRequest{Brand: &brand})
	require.NoError(t, err)
	assert.Equal(t, "Nike", updated.Brand)
	assert.Equal(t, entity.ItemStatusSold, updated.Status)
	require.NotNil(t, updated.SoldPrice)
	assert.True(t, updated.SoldPrice.Equal(dec("9")))
}
