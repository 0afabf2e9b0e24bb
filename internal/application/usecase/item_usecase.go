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

// ItemUseCase casos de uso del catálogo y del ciclo de venta de artículos.
type ItemUseCase struct {
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
}

// NewItemUseCase construye el caso de uso de artículos.
func NewItemUseCase(itemRepo repository.ItemRepository, orderRepo repository.OrderRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, orderRepo: orderRepo}
}

// Create cataloga un artículo. Si pertenece a una orden y no trae costo, el
// costo unitario se deriva repartiendo el total del lote entre sus unidades.
func (uc *ItemUseCase) Create(userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	items, err := uc.buildItems(userID, in.OrderID, []dto.CreateItemRequest{in})
	if err != nil {
		return nil, err
	}
	if err := uc.itemRepo.Create(items[0]); err != nil {
		return nil, err
	}
	resp := toItemResponse(items[0])
	return &resp, nil
}

// CreateBatch cataloga de una vez los artículos de un lote. El costo unitario
// de los artículos sin costo explícito se deriva del total de la orden.
func (uc *ItemUseCase) CreateBatch(userID, orderID string, in dto.BatchCreateItemsRequest) ([]dto.ItemResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.buildItems(userID, orderID, in.Items)
	if err != nil {
		return nil, err
	}
	if err := uc.itemRepo.CreateBatch(items); err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// buildItems valida las entradas y materializa las entidades. Todas las
// peticiones comparten orden (posiblemente vacía = alta manual).
func (uc *ItemUseCase) buildItems(userID, orderID string, reqs []dto.CreateItemRequest) ([]*entity.Item, error) {
	var order *entity.Order
	if orderID != "" {
		var err error
		order, err = uc.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
		if order.UserID != userID {
			return nil, domain.ErrForbidden
		}
	}

	// Unidades totales del lote, para repartir el costo entre los artículos
	// que no traen costo propio.
	totalQty := 0
	for _, r := range reqs {
		if r.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		if r.UnitCost != nil && r.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if r.TotalCost != nil && r.TotalCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		totalQty += quantityOrOne(r.Quantity)
	}

	var derivedUnit decimal.Decimal
	if order != nil && totalQty > 0 {
		derivedUnit = order.TotalAmount.Div(decimal.NewFromInt(int64(totalQty))).Round(2)
	}

	now := time.Now()
	items := make([]*entity.Item, 0, len(reqs))
	for _, r := range reqs {
		it := &entity.Item{
			ID:        uuid.New().String(),
			UserID:    userID,
			OrderID:   orderID,
			Name:      r.Name,
			Brand:     r.Brand,
			Size:      r.Size,
			Quantity:  quantityOrOne(r.Quantity),
			Status:    entity.ItemStatusInStock,
			CreatedAt: now,
			UpdatedAt: now,
		}
		switch {
		case r.TotalCost != nil:
			it.TotalCost = decimal.NullDecimal{Decimal: *r.TotalCost, Valid: true}
		case r.UnitCost != nil:
			it.UnitCost = *r.UnitCost
		case order != nil:
			it.UnitCost = derivedUnit
		}
		items = append(items, it)
	}
	return items, nil
}

// Get devuelve un artículo del usuario.
func (uc *ItemUseCase) Get(userID, itemID string) (*dto.ItemResponse, error) {
	it, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// List devuelve los artículos del usuario con filtros opcionales por estado
// y marketplace.
func (uc *ItemUseCase) List(userID string, q dto.ListItemsQuery) (*dto.ItemListResponse, error) {
	if q.Status != "" && !entity.ValidItemStatus(q.Status) {
		return nil, domain.ErrInvalidInput
	}
	q.DefaultPage()
	items, err := uc.itemRepo.ListByUser(userID, repository.ItemFilter{
		Status:   q.Status,
		Platform: q.Platform,
	}, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}
	for _, it := range items {
		out.Items = append(out.Items, toItemResponse(it))
	}
	return out, nil
}

// Update modifica los campos descriptivos de un artículo. El ciclo de venta
// se maneja solo con MarkListed / MarkSold / MarkProblem.
func (uc *ItemUseCase) Update(userID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	it, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		it.Name = *in.Name
	}
	if in.Brand != nil {
		it.Brand = *in.Brand
	}
	if in.Size != nil {
		it.Size = *in.Size
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		it.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		it.UnitCost = *in.UnitCost
	}
	if in.TotalCost != nil {
		if in.TotalCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		it.TotalCost = decimal.NullDecimal{Decimal: *in.TotalCost, Valid: true}
	}
	it.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(it); err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// MarkListed marca el artículo como publicado en un marketplace. Republicar
// un artículo ya publicado actualiza plataforma y precio; un artículo vendido
// no puede volver a publicarse.
func (uc *ItemUseCase) MarkListed(userID, itemID string, in dto.ListItemRequest) (*dto.ItemResponse, error) {
	it, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if it.IsSold() {
		return nil, domain.ErrConflict
	}
	if in.Platform == "" {
		return nil, domain.ErrInvalidInput
	}
	listedDate, err := parseDateOrToday(in.ListedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	it.Platform = in.Platform
	if in.ListedPrice != nil {
		if in.ListedPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		it.ListedPrice = decimal.NullDecimal{Decimal: *in.ListedPrice, Valid: true}
	}
	it.ListedDate = &listedDate
	it.Status = entity.ItemStatusListed
	it.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(it); err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// MarkSold finaliza la venta: fija precio y fecha de venta juntos y pasa el
// artículo a sold, con lo que entra en la analítica. Vender dos veces el mismo
// artículo es un conflicto.
func (uc *ItemUseCase) MarkSold(userID, itemID string, in dto.SellItemRequest) (*dto.ItemResponse, error) {
	it, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if it.IsSold() {
		return nil, domain.ErrConflict
	}
	if in.SoldPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	soldDate, err := parseDateOrToday(in.SoldDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Platform != "" {
		it.Platform = in.Platform
	}
	it.SoldPrice = in.SoldPrice
	it.SoldDate = &soldDate
	it.Status = entity.ItemStatusSold
	it.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(it); err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// MarkProblem marca el artículo como problemático (devolución, pérdida).
// Si estaba vendido, la venta se deshace y sale de la analítica.
func (uc *ItemUseCase) MarkProblem(userID, itemID string) (*dto.ItemResponse, error) {
	it, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if it.IsSold() {
		it.SoldPrice = decimal.Zero
		it.SoldDate = nil
	}
	it.Status = entity.ItemStatusProblem
	it.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(it); err != nil {
		return nil, err
	}
	resp := toItemResponse(it)
	return &resp, nil
}

// Delete elimina un artículo del usuario.
func (uc *ItemUseCase) Delete(userID, itemID string) error {
	if _, err := uc.ownedItem(userID, itemID); err != nil {
		return err
	}
	return uc.itemRepo.Delete(itemID)
}

// ownedItem carga el artículo y verifica propiedad.
func (uc *ItemUseCase) ownedItem(userID, itemID string) (*entity.Item, error) {
	it, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if it.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return it, nil
}

func quantityOrOne(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	resp := dto.ItemResponse{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Name:       it.Name,
		Brand:      it.Brand,
		Size:       it.Size,
		Quantity:   it.Quantity,
		UnitCost:   it.UnitCost,
		TotalCost:  it.CostTotal(),
		ListedDate: it.ListedDate,
		Platform:   it.Platform,
		SoldDate:   it.SoldDate,
		Status:     it.Status,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
	if it.ListedPrice.Valid {
		p := it.ListedPrice.Decimal
		resp.ListedPrice = &p
	}
	if it.IsSold() {
		p := it.SoldPrice
		resp.SoldPrice = &p
	}
	return resp
}
