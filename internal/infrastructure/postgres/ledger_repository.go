package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de inventario sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla no admite UPDATE ni DELETE desde la app.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta un asiento en el libro.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO inventory_ledger
			(id, item_id, action_type, reference_id, change_quantity, new_stock, timestamp, transaction_price, moving_average_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemID, entry.ActionType, entry.ReferenceID,
		entry.ChangeQuantity, entry.NewStock, entry.Timestamp,
		entry.TransactionPrice, entry.MovingAverageCost,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByItem devuelve los asientos de un artículo en orden cronológico,
// opcionalmente acotados por rango de fechas.
func (r *LedgerRepo) ListByItem(itemID string, from, to *time.Time) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, item_id, action_type, reference_id, change_quantity, new_stock, timestamp, transaction_price, moving_average_cost
		FROM inventory_ledger WHERE item_id = $1`
	args := []any{itemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY timestamp, id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.ActionType, &e.ReferenceID,
			&e.ChangeQuantity, &e.NewStock, &e.Timestamp,
			&e.TransactionPrice, &e.MovingAverageCost); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
