package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/costing"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// ReversalUseCase deshace recepciones y despachos mediante asientos de
// compensación: el libro nunca se reescribe, la recepción y sus líneas sí se
// eliminan una vez compensadas.
type ReversalUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewReversalUseCase construye el caso de uso.
func NewReversalUseCase(txRunner TxRunner, log *logger.Logger) *ReversalUseCase {
	return &ReversalUseCase{txRunner: txRunner, log: log}
}

// RevertInbound deshace una recepción completa en dos pasadas dentro de una
// transacción: primero valida que ninguna línea haya sido ya consumida por
// salidas posteriores (el stock actual del artículo debe cubrir la cantidad
// original, acumulada por artículo si la recepción lo repite), y solo entonces
// revierte el costo promedio, registra asientos INBOUND_REVERT y elimina la
// recepción. Si alguna línea no pasa, nada se revierte (ErrIrreversible).
// La validación es solo global por artículo: si las unidades ya salieron de la
// ubicación de la recepción pero el stock global alcanza, la reversión procede
// y el stock derivado de esa ubicación puede quedar negativo.
func (uc *ReversalUseCase) RevertInbound(ctx context.Context, receiptID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		receipt, err := receiptRepo.GetInbound(receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}

		// Pasada 1: bloquear artículos y validar reversibilidad acumulada.
		items := map[string]*entity.Item{}
		required := map[string]decimal.Decimal{}
		for _, line := range receipt.Details {
			if _, ok := items[line.ItemID]; !ok {
				item, err := itemRepo.GetForUpdate(line.ItemID)
				if err != nil {
					return err
				}
				if item == nil {
					return domain.ErrNotFound
				}
				items[line.ItemID] = item
			}
			required[line.ItemID] = required[line.ItemID].Add(line.Quantity)
		}
		for itemID, qty := range required {
			if items[itemID].CurrentStock.LessThan(qty) {
				return domain.ErrIrreversible
			}
		}

		// Pasada 2: revertir costo y stock, asiento de compensación por línea.
		now := time.Now()
		for _, line := range receipt.Details {
			item := items[line.ItemID]
			newStock, newCost := costing.RevertInbound(item.CurrentStock, item.CurrentCost, line.Quantity, line.UnitPrice)
			if newCost.IsNegative() {
				// Aproximación por movimientos intermedios: se acepta y se deja rastro
				uc.log.Warn().
					Str("item_id", item.ID).
					Str("receipt_id", receiptID).
					Str("cost", newCost.String()).
					Msg("costo promedio negativo tras reversión de entrada")
			}
			item.CurrentStock = newStock
			item.CurrentCost = newCost
			if err := itemRepo.UpdateProjection(item.ID, newStock, newCost); err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				ID:                uuid.New().String(),
				ItemID:            line.ItemID,
				ActionType:        entity.ActionInboundRevert,
				ReferenceID:       receiptID,
				ChangeQuantity:    line.Quantity.Neg(),
				NewStock:          newStock,
				Timestamp:         now,
				TransactionPrice:  line.UnitPrice,
				MovingAverageCost: newCost,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
		}
		return receiptRepo.DeleteInbound(receiptID)
	})
}

// RevertOutbound deshace un despacho: devuelve las cantidades al stock,
// registra asientos OUTBOUND_REVERT con el costo congelado de cada línea y
// elimina el despacho. No requiere validación previa: aumentar stock nunca
// viola la no-negatividad, y el costo promedio no se toca.
func (uc *ReversalUseCase) RevertOutbound(ctx context.Context, receiptID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		receipt, err := receiptRepo.GetOutbound(receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		for _, line := range receipt.Details {
			item, err := itemRepo.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			newStock := item.CurrentStock.Add(line.Quantity)
			if err := itemRepo.UpdateProjection(item.ID, newStock, item.CurrentCost); err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				ID:                uuid.New().String(),
				ItemID:            line.ItemID,
				ActionType:        entity.ActionOutboundRevert,
				ReferenceID:       receiptID,
				ChangeQuantity:    line.Quantity,
				NewStock:          newStock,
				Timestamp:         now,
				TransactionPrice:  line.CostPrice,
				MovingAverageCost: item.CurrentCost,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
		}
		return receiptRepo.DeleteOutbound(receiptID)
	})
}
