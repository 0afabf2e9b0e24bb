package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reventa-api/internal/application/dto"
	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

// dateLayout formato de fechas en las peticiones.
const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// OrderUseCase casos de uso de órdenes de compra a proveedor.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, itemRepo: itemRepo}
}

// Create registra una orden de compra. OrderDate vacío equivale a hoy.
func (uc *OrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Supplier == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := parseDateOrToday(in.OrderDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Supplier:    in.Supplier,
		Reference:   in.Reference,
		OrderDate:   orderDate,
		TotalAmount: in.TotalAmount,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetDetail devuelve la orden con sus artículos y el punto de equilibrio del
// lote: cuánto de lo pagado al proveedor se ha recuperado ya con las ventas.
func (uc *OrderUseCase) GetDetail(userID, orderID string) (*dto.OrderDetailResponse, error) {
	order, err := uc.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.OrderDetailResponse{
		OrderResponse: *toOrderResponse(order),
		Items:         make([]dto.ItemResponse, 0, len(items)),
		ItemsCount:    len(items),
		SoldRevenue:   decimal.Zero,
	}
	for _, it := range items {
		detail.Items = append(detail.Items, toItemResponse(it))
		if it.IsSold() {
			detail.SoldCount++
			detail.SoldRevenue = detail.SoldRevenue.Add(it.SoldPrice)
		}
	}
	if order.TotalAmount.IsPositive() {
		detail.BreakEvenPct = detail.SoldRevenue.Div(order.TotalAmount).Mul(hundred).Round(2)
	}
	detail.SoldRevenue = detail.SoldRevenue.Round(2)
	return detail, nil
}

// List devuelve las órdenes del usuario, más recientes primero.
func (uc *OrderUseCase) List(userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out, nil
}

// Update modifica los campos informados de una orden del usuario.
func (uc *OrderUseCase) Update(userID, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if in.Supplier != nil {
		if *in.Supplier == "" {
			return nil, domain.ErrInvalidInput
		}
		order.Supplier = *in.Supplier
	}
	if in.Reference != nil {
		order.Reference = *in.Reference
	}
	if in.OrderDate != nil {
		d, err := time.Parse(dateLayout, *in.OrderDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.OrderDate = d
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.TotalAmount = *in.TotalAmount
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina una orden del usuario. Los artículos del lote conservan su
// costo ya derivado y quedan desvinculados (lo resuelve la FK con SET NULL).
func (uc *OrderUseCase) Delete(userID, orderID string) error {
	if _, err := uc.ownedOrder(userID, orderID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(orderID)
}

// ownedOrder carga la orden y verifica propiedad.
func (uc *OrderUseCase) ownedOrder(userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		Supplier:    o.Supplier,
		Reference:   o.Reference,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
