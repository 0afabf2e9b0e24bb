package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para artículos.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, user_id, order_id, name, brand, size, quantity, unit_cost, total_cost,
	listed_price, listed_date, platform, sold_price, sold_date, status, created_at, updated_at`

const insertItemQuery = `
	INSERT INTO items (` + itemColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	_, err := r.pool.Exec(context.Background(), insertItemQuery, insertItemArgs(item)...)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// CreateBatch persiste varios artículos en un solo round-trip usando pgx.Batch.
func (r *ItemRepo) CreateBatch(items []*entity.Item) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(insertItemQuery, insertItemArgs(it)...)
	}
	br := r.pool.SendBatch(context.Background(), batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert item batch: %w", err)
		}
	}
	return nil
}

func insertItemArgs(it *entity.Item) []any {
	return []any{
		it.ID, it.UserID, nullIfEmpty(it.OrderID), it.Name, it.Brand, it.Size,
		it.Quantity, it.UnitCost, it.TotalCost,
		it.ListedPrice, it.ListedDate, it.Platform, it.SoldPrice, it.SoldDate,
		it.Status, it.CreatedAt, it.UpdatedAt,
	}
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return it, nil
}

// Update actualiza un artículo (campos descriptivos y ciclo de venta).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, brand = $3, size = $4, quantity = $5, unit_cost = $6, total_cost = $7,
			listed_price = $8, listed_date = $9, platform = $10, sold_price = $11, sold_date = $12,
			status = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Brand, item.Size, item.Quantity, item.UnitCost, item.TotalCost,
		item.ListedPrice, item.ListedDate, item.Platform, item.SoldPrice, item.SoldDate,
		item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// ListByUser lista los artículos del usuario con filtros opcionales por estado
// y marketplace, más recientes primero.
func (r *ItemRepo) ListByUser(userID string, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE user_id = $1`
	args := []any{userID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Platform != "" {
		args = append(args, filter.Platform)
		query += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.list(context.Background(), query, args...)
}

// ListByOrder lista los artículos de un lote.
func (r *ItemRepo) ListByOrder(orderID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE order_id = $1 ORDER BY created_at ASC`
	return r.list(context.Background(), query, orderID)
}

// ListSoldByUser devuelve todas las ventas finalizadas del usuario en una sola
// consulta; la agregación de la analítica ocurre en memoria.
func (r *ItemRepo) ListSoldByUser(ctx context.Context, userID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE user_id = $1 AND status = $2 ORDER BY sold_date ASC`
	return r.list(ctx, query, userID, entity.ItemStatusSold)
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var orderID *string
	err := row.Scan(
		&it.ID, &it.UserID, &orderID, &it.Name, &it.Brand, &it.Size,
		&it.Quantity, &it.UnitCost, &it.TotalCost,
		&it.ListedPrice, &it.ListedDate, &it.Platform, &it.SoldPrice, &it.SoldDate,
		&it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if orderID != nil {
		it.OrderID = *orderID
	}
	return &it, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
