package repository

import (
	"context"

	"github.com/jhoicas/Reventa-api/internal/domain/entity"
)

// ItemFilter filtros opcionales para listados de artículos.
type ItemFilter struct {
	Status   string // vacío = todos
	Platform string // vacío = todas
}

// ItemRepository define el puerto de persistencia para artículos del catálogo.
type ItemRepository interface {
	Create(item *entity.Item) error
	CreateBatch(items []*entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	ListByUser(userID string, filter ItemFilter, limit, offset int) ([]*entity.Item, error)
	ListByOrder(orderID string) ([]*entity.Item, error)
	Delete(id string) error

	// ListSoldByUser devuelve TODAS las ventas finalizadas del usuario en una
	// sola consulta. La analítica agrupa en memoria; no se consulta por bucket.
	ListSoldByUser(ctx context.Context, userID string) ([]*entity.Item, error)
}
