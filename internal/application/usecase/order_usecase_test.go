package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reventa-api/internal/application/dto"
	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (m *memOrderRepo) Create(o *entity.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) Update(o *entity.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memOrderRepo) Delete(id string) error {
	delete(m.orders, id)
	return nil
}

type memItemRepo struct {
	items map[string]*entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*entity.Item)}
}

func (m *memItemRepo) Create(it *entity.Item) error {
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memItemRepo) CreateBatch(items []*entity.Item) error {
	for _, it := range items {
		if err := m.Create(it); err != nil {
			return err
		}
	}
	return nil
}

func (m *memItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) Update(it *entity.Item) error {
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memItemRepo) ListByUser(userID string, f repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range m.items {
		if it.UserID != userID {
			continue
		}
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.Platform != "" && it.Platform != f.Platform {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memItemRepo) ListByOrder(orderID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range m.items {
		if it.OrderID == orderID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memItemRepo) Delete(id string) error {
	delete(m.items, id)
	return nil
}

func (m *memItemRepo) ListSoldByUser(_ context.Context, userID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range m.items {
		if it.UserID == userID && it.IsSold() {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

var _ repository.OrderRepository = (*memOrderRepo)(nil)
var _ repository.ItemRepository = (*memItemRepo)(nil)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_FechaExplicitaYPorDefecto(t *testing.T) {
	uc := NewOrderUseCase(newMemOrderRepo(), newMemItemRepo())

	resp, err := uc.Create("u1", dto.CreateOrderRequest{
		Supplier:    "Mayorista Norte",
		OrderDate:   "2025-08-01",
		TotalAmount: dec("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), resp.OrderDate)

	resp, err = uc.Create("u1", dto.CreateOrderRequest{Supplier: "Mayorista Norte"})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.OrderDate.Format("2006-01-02"),
		"sin fecha explícita se asume hoy")
}

func TestOrderCreate_EntradasInvalidas(t *testing.T) {
	uc := NewOrderUseCase(newMemOrderRepo(), newMemItemRepo())

	_, err := uc.Create("u1", dto.CreateOrderRequest{TotalAmount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "proveedor obligatorio")

	_, err = uc.Create("u1", dto.CreateOrderRequest{Supplier: "X", TotalAmount: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "total negativo rechazado")

	_, err = uc.Create("u1", dto.CreateOrderRequest{Supplier: "X", OrderDate: "01/08/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha inválido")
}

func TestOrderGetDetail_PuntoDeEquilibrio(t *testing.T) {
	orders, items := newMemOrderRepo(), newMemItemRepo()
	uc := NewOrderUseCase(orders, items)

	order, err := uc.Create("u1", dto.CreateOrderRequest{Supplier: "Lote", TotalAmount: dec("200")})
	require.NoError(t, err)

	sold := time.Now()
	items.Create(&entity.Item{ID: "i1", UserID: "u1", OrderID: order.ID, Name: "a",
		SoldPrice: dec("85"), SoldDate: &sold, Status: entity.ItemStatusSold})
	items.Create(&entity.Item{ID: "i2", UserID: "u1", OrderID: order.ID, Name: "b",
		SoldPrice: dec("45"), SoldDate: &sold, Status: entity.ItemStatusSold})
	items.Create(&entity.Item{ID: "i3", UserID: "u1", OrderID: order.ID, Name: "c",
		Status: entity.ItemStatusListed})

	detail, err := uc.GetDetail("u1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.ItemsCount)
	assert.Equal(t, 2, detail.SoldCount)
	assert.True(t, detail.SoldRevenue.Equal(dec("130")))
	assert.True(t, detail.BreakEvenPct.Equal(dec("65")), "130 / 200 × 100")
}

func TestOrderGetDetail_TotalCeroSinDivision(t *testing.T) {
	orders := newMemOrderRepo()
	uc := NewOrderUseCase(orders, newMemItemRepo())
	order, err := uc.Create("u1", dto.CreateOrderRequest{Supplier: "Regalo"})
	require.NoError(t, err)

	detail, err := uc.GetDetail("u1", order.ID)
	require.NoError(t, err)
	assert.True(t, detail.BreakEvenPct.IsZero(), "equilibrio 0 cuando no se pagó nada")
}

func TestOrder_PropiedadYNoExistencia(t *testing.T) {
	orders := newMemOrderRepo()
	uc := NewOrderUseCase(orders, newMemItemRepo())
	order, err := uc.Create("u1", dto.CreateOrderRequest{Supplier: "X", TotalAmount: dec("10")})
	require.NoError(t, err)

	_, err = uc.GetDetail("u2", order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "la orden de otro usuario es inaccesible")

	_, err = uc.GetDetail("u1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("u2", order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderUpdate_CamposParciales(t *testing.T) {
	orders := newMemOrderRepo()
	uc := NewOrderUseCase(orders, newMemItemRepo())
	order, err := uc.Create("u1", dto.CreateOrderRequest{Supplier: "X", TotalAmount: dec("10")})
	require.NoError(t, err)

	notes := "llegó incompleto"
	updated, err := uc.Update("u1", order.ID, dto.UpdateOrderRequest{
		Notes:       &notes,
		TotalAmount: decPtr("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Supplier, "los campos no informados se conservan")
	assert.Equal(t, notes, updated.Notes)
	assert.True(t, updated.TotalAmount.Equal(dec("12.50")))
}
