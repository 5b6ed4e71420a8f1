package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL.
// Cabecera y líneas se insertan/eliminan juntas; la atomicidad la da la
// transacción del caller (TxRunner).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// CreateInbound persiste una recepción con sus líneas.
func (r *ReceiptRepo) CreateInbound(receipt *entity.InboundReceipt) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO inbound_receipts (id, created_date, supplier_id, user_id, notes)
		VALUES ($1, $2, $3, $4, $5)`,
		receipt.ID, receipt.CreatedDate, receipt.SupplierID, receipt.UserID, receipt.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert inbound receipt: %w", err)
	}
	for _, line := range receipt.Details {
		_, err := r.q.Exec(ctx, `
			INSERT INTO inbound_receipt_lines (id, receipt_id, item_id, location_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, receipt.ID, line.ItemID, line.LocationID, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert inbound line: %w", err)
		}
	}
	return nil
}

// GetInbound obtiene una recepción con sus líneas en orden de inserción.
func (r *ReceiptRepo) GetInbound(id string) (*entity.InboundReceipt, error) {
	ctx := context.Background()
	var rec entity.InboundReceipt
	err := r.q.QueryRow(ctx, `
		SELECT id, created_date, supplier_id, user_id, notes
		FROM inbound_receipts WHERE id = $1`, id).
		Scan(&rec.ID, &rec.CreatedDate, &rec.SupplierID, &rec.UserID, &rec.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inbound receipt: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, receipt_id, item_id, location_id, quantity, unit_price
		FROM inbound_receipt_lines WHERE receipt_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list inbound lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.InboundLine
		if err := rows.Scan(&line.ID, &line.ReceiptID, &line.ItemID, &line.LocationID,
			&line.Quantity, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan inbound line: %w", err)
		}
		rec.Details = append(rec.Details, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteInbound elimina la recepción y sus líneas.
func (r *ReceiptRepo) DeleteInbound(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM inbound_receipt_lines WHERE receipt_id = $1`, id); err != nil {
		return fmt.Errorf("delete inbound lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM inbound_receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inbound receipt: %w", err)
	}
	return nil
}

// CreateOutbound persiste un despacho con sus líneas.
func (r *ReceiptRepo) CreateOutbound(receipt *entity.OutboundReceipt) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO outbound_receipts (id, created_date, customer_id, user_id, notes)
		VALUES ($1, $2, $3, $4, $5)`,
		receipt.ID, receipt.CreatedDate, receipt.CustomerID, receipt.UserID, receipt.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert outbound receipt: %w", err)
	}
	for _, line := range receipt.Details {
		_, err := r.q.Exec(ctx, `
			INSERT INTO outbound_receipt_lines (id, receipt_id, item_id, location_id, quantity, sales_price, cost_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, receipt.ID, line.ItemID, line.LocationID, line.Quantity, line.SalesPrice, line.CostPrice,
		)
		if err != nil {
			return fmt.Errorf("insert outbound line: %w", err)
		}
	}
	return nil
}

// GetOutbound obtiene un despacho con sus líneas en orden de inserción.
func (r *ReceiptRepo) GetOutbound(id string) (*entity.OutboundReceipt, error) {
	ctx := context.Background()
	var rec entity.OutboundReceipt
	err := r.q.QueryRow(ctx, `
		SELECT id, created_date, customer_id, user_id, notes
		FROM outbound_receipts WHERE id = $1`, id).
		Scan(&rec.ID, &rec.CreatedDate, &rec.CustomerID, &rec.UserID, &rec.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outbound receipt: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, receipt_id, item_id, location_id, quantity, sales_price, cost_price
		FROM outbound_receipt_lines WHERE receipt_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list outbound lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.OutboundLine
		if err := rows.Scan(&line.ID, &line.ReceiptID, &line.ItemID, &line.LocationID,
			&line.Quantity, &line.SalesPrice, &line.CostPrice); err != nil {
			return nil, fmt.Errorf("scan outbound line: %w", err)
		}
		rec.Details = append(rec.Details, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteOutbound elimina el despacho y sus líneas.
func (r *ReceiptRepo) DeleteOutbound(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM outbound_receipt_lines WHERE receipt_id = $1`, id); err != nil {
		return fmt.Errorf("delete outbound lines: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM outbound_receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete outbound receipt: %w", err)
	}
	return nil
}

// LocationStock deriva el stock de un artículo en una ubicación agregando las
// líneas de entrada y salida de ese par. No hay contador materializado.
func (r *ReceiptRepo) LocationStock(itemID, locationID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE((
			SELECT SUM(quantity) FROM inbound_receipt_lines
			WHERE item_id = $1 AND location_id = $2), 0)
		 - COALESCE((
			SELECT SUM(quantity) FROM outbound_receipt_lines
			WHERE item_id = $1 AND location_id = $2), 0)`
	var stock decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, itemID, locationID).Scan(&stock); err != nil {
		return decimal.Zero, fmt.Errorf("location stock: %w", err)
	}
	return stock, nil
}
