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

// TransactionUseCase registra recepciones (entradas) y despachos (salidas)
// de forma transaccional, con bloqueo de fila por artículo (SELECT FOR UPDATE)
// para serializar los movimientos concurrentes sobre el mismo SKU.
type TransactionUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// InboundLineInput línea de entrada: artículo, ubicación destino, cantidad y costo unitario.
type InboundLineInput struct {
	ItemID     string
	LocationID string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
}

// InboundInput entrada para registrar una recepción.
type InboundInput struct {
	SupplierID string
	UserID     string
	Notes      string
	Date       time.Time
	Lines      []InboundLineInput
}

// OutboundLineInput línea de salida: artículo, ubicación origen, cantidad y precio de venta.
type OutboundLineInput struct {
	ItemID     string
	LocationID string
	Quantity   decimal.Decimal
	SalesPrice decimal.Decimal
}

// OutboundInput entrada para registrar un despacho.
type OutboundInput struct {
	CustomerID string
	UserID     string
	Notes      string
	Date       time.Time
	Lines      []OutboundLineInput
}

// CreateInbound registra una recepción completa: cabecera, líneas,
// recálculo de costo promedio por artículo y un asiento INBOUND por línea.
// Cantidades no positivas se rechazan con ErrInvalidInput (política explícita:
// rechazar, no omitir en silencio). Cualquier artículo o ubicación inexistente
// aborta la operación completa sin estado parcial.
func (uc *TransactionUseCase) CreateInbound(ctx context.Context, in InboundInput) (string, error) {
	if len(in.Lines) == 0 {
		return "", domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if !line.Quantity.IsPositive() || line.UnitPrice.IsNegative() {
			return "", domain.ErrInvalidInput
		}
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return "", err
	}
	if supplier == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.checkLocations(locationIDsOfInbound(in.Lines)); err != nil {
		return "", err
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	receipt := &entity.InboundReceipt{
		ID:          uuid.New().String(),
		CreatedDate: date,
		SupplierID:  in.SupplierID,
		UserID:      in.UserID,
		Notes:       in.Notes,
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		for _, line := range in.Lines {
			// Bloquea la fila del artículo para serializar movimientos concurrentes
			item, err := itemRepo.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			newStock, newCost := costing.ApplyInbound(item.CurrentStock, item.CurrentCost, line.Quantity, line.UnitPrice)
			if err := itemRepo.UpdateProjection(item.ID, newStock, newCost); err != nil {
				return err
			}
			receipt.Details = append(receipt.Details, entity.InboundLine{
				ID:         uuid.New().String(),
				ReceiptID:  receipt.ID,
				ItemID:     line.ItemID,
				LocationID: line.LocationID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
			})
			entry := &entity.LedgerEntry{
				ID:                uuid.New().String(),
				ItemID:            line.ItemID,
				ActionType:        entity.ActionInbound,
				ReferenceID:       receipt.ID,
				ChangeQuantity:    line.Quantity,
				NewStock:          newStock,
				Timestamp:         now,
				TransactionPrice:  line.UnitPrice,
				MovingAverageCost: newCost,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
		}
		return receiptRepo.CreateInbound(receipt)
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().
		Str("receipt_id", receipt.ID).
		Str("supplier_id", in.SupplierID).
		Int("lines", len(receipt.Details)).
		Msg("recepción registrada")
	return receipt.ID, nil
}

// CreateOutbound registra un despacho completo. Por línea, dentro de la
// transacción: el artículo debe existir, su stock global debe alcanzar y el
// stock derivado de la ubicación también. La doble verificación cubre el caso
// en que el total alcanza pero el estante concreto no. Cualquier faltante
// aborta el despacho completo con StockShortageError indicando el faltante.
// La salida no altera el costo promedio: lo congela en la línea y el asiento.
func (uc *TransactionUseCase) CreateOutbound(ctx context.Context, in OutboundInput) (string, error) {
	if len(in.Lines) == 0 {
		return "", domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if !line.Quantity.IsPositive() || line.SalesPrice.IsNegative() {
			return "", domain.ErrInvalidInput
		}
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.checkLocations(locationIDsOfOutbound(in.Lines)); err != nil {
		return "", err
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	receipt := &entity.OutboundReceipt{
		ID:          uuid.New().String(),
		CreatedDate: date,
		CustomerID:  in.CustomerID,
		UserID:      in.UserID,
		Notes:       in.Notes,
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Cantidades ya descontadas por par (artículo, ubicación) dentro de
		// este mismo despacho: las líneas aún no están persistidas y el
		// agregado derivado no las ve.
		drawn := map[string]decimal.Decimal{}
		for _, line := range in.Lines {
			item, err := itemRepo.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.CurrentStock.LessThan(line.Quantity) {
				return &domain.StockShortageError{
					ItemID:    item.ID,
					ItemName:  item.Name,
					Available: item.CurrentStock,
					Requested: line.Quantity,
				}
			}
			locStock, err := receiptRepo.LocationStock(line.ItemID, line.LocationID)
			if err != nil {
				return err
			}
			pair := line.ItemID + "|" + line.LocationID
			locStock = locStock.Sub(drawn[pair])
			if locStock.LessThan(line.Quantity) {
				return &domain.StockShortageError{
					ItemID:     item.ID,
					ItemName:   item.Name,
					LocationID: line.LocationID,
					Available:  locStock,
					Requested:  line.Quantity,
				}
			}
			drawn[pair] = drawn[pair].Add(line.Quantity)

			// El costo se captura antes de descontar y no cambia con la salida
			cost := item.CurrentCost
			newStock := item.CurrentStock.Sub(line.Quantity)
			if err := itemRepo.UpdateProjection(item.ID, newStock, cost); err != nil {
				return err
			}
			receipt.Details = append(receipt.Details, entity.OutboundLine{
				ID:         uuid.New().String(),
				ReceiptID:  receipt.ID,
				ItemID:     line.ItemID,
				LocationID: line.LocationID,
				Quantity:   line.Quantity,
				SalesPrice: line.SalesPrice,
				CostPrice:  cost,
			})
			entry := &entity.LedgerEntry{
				ID:                uuid.New().String(),
				ItemID:            line.ItemID,
				ActionType:        entity.ActionOutbound,
				ReferenceID:       receipt.ID,
				ChangeQuantity:    line.Quantity.Neg(),
				NewStock:          newStock,
				Timestamp:         now,
				TransactionPrice:  cost,
				MovingAverageCost: cost,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
		}
		return receiptRepo.CreateOutbound(receipt)
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().
		Str("receipt_id", receipt.ID).
		Str("customer_id", in.CustomerID).
		Int("lines", len(receipt.Details)).
		Msg("despacho registrado")
	return receipt.ID, nil
}

// checkLocations valida que todas las ubicaciones referenciadas existan.
func (uc *TransactionUseCase) checkLocations(ids []string) error {
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		loc, err := uc.locationRepo.GetByID(id)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func locationIDsOfInbound(lines []InboundLineInput) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.LocationID)
	}
	return ids
}

func locationIDsOfOutbound(lines []OutboundLineInput) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.LocationID)
	}
	return ids
}
