package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, name, unit, safety_stock, current_stock, current_cost, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Unit, item.SafetyStock,
		item.CurrentStock, item.CurrentCost, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCode obtiene un artículo por SKU.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE code = $1`, code)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Serializa los movimientos concurrentes sobre el mismo artículo.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) getOne(query string, arg any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Code, &i.Name, &i.Unit, &i.SafetyStock,
		&i.CurrentStock, &i.CurrentCost, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza los datos maestros de un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, unit = $3, safety_stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.SafetyStock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateProjection reescribe los campos materializados stock/costo.
func (r *ItemRepo) UpdateProjection(id string, stock, cost decimal.Decimal) error {
	query := `
		UPDATE items
		SET current_stock = $2, current_cost = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, stock, cost)
	if err != nil {
		return fmt.Errorf("update item projection: %w", err)
	}
	return nil
}

// List lista todos los artículos ordenados por código.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	return r.list(`SELECT ` + itemColumns + ` FROM items ORDER BY code`)
}

// ListBelowSafetyStock lista artículos con stock bajo el mínimo de seguridad.
func (r *ItemRepo) ListBelowSafetyStock() ([]*entity.Item, error) {
	return r.list(`SELECT ` + itemColumns + ` FROM items WHERE current_stock < safety_stock ORDER BY code`)
}

func (r *ItemRepo) list(query string) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Unit, &i.SafetyStock,
			&i.CurrentStock, &i.CurrentCost, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un artículo.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
