package repository

import "github.com/jhoicas/Reventa-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de compra.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	Delete(id string) error
}
