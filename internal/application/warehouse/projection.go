package warehouse

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// StockQueryUseCase consultas de proyección: stock/costo global O(1) sobre los
// campos materializados del artículo, stock por ubicación derivado de las
// líneas, lectura del libro y reconstrucción de la proyección desde el libro.
type StockQueryUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	receiptRepo  repository.ReceiptRepository
	ledgerRepo   repository.LedgerRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	receiptRepo repository.ReceiptRepository,
	ledgerRepo repository.LedgerRepository,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		receiptRepo:  receiptRepo,
		ledgerRepo:   ledgerRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// ItemStock stock y costo promedio actuales de un artículo.
type ItemStock struct {
	ItemID string
	Stock  decimal.Decimal
	Cost   decimal.Decimal
}

// GetItemStock devuelve el stock global y el costo promedio materializados.
// Lectura O(1); el valor puede quedar desfasado frente a escritores concurrentes.
func (uc *StockQueryUseCase) GetItemStock(ctx context.Context, itemID string) (*ItemStock, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return &ItemStock{ItemID: item.ID, Stock: item.CurrentStock, Cost: item.CurrentCost}, nil
}

// GetLocationStock deriva el stock de un artículo en una ubicación agregando
// las líneas de entrada y salida de ese par. O(n) sobre las líneas del
// artículo; decisión explícita de no materializar el contador por ubicación.
func (uc *StockQueryUseCase) GetLocationStock(ctx context.Context, itemID, locationID string) (decimal.Decimal, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if item == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return decimal.Zero, err
	}
	if loc == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return uc.receiptRepo.LocationStock(itemID, locationID)
}

// ListLedger devuelve los asientos de un artículo en orden cronológico,
// opcionalmente acotados por rango de fechas.
func (uc *StockQueryUseCase) ListLedger(ctx context.Context, itemID string, from, to *time.Time) ([]*entity.LedgerEntry, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ledgerRepo.ListByItem(itemID, from, to)
}

// RebuildResult proyección reconstruida desde el libro.
type RebuildResult struct {
	ItemID  string
	Stock   decimal.Decimal
	Cost    decimal.Decimal
	Drifted bool // true si la caché materializada no coincidía con el libro
}

// RebuildProjection reconstruye stock y costo de un artículo reproduciendo sus
// asientos en orden: el stock es la suma de los cambios con signo y el costo,
// el último snapshot de costo promedio de la familia de entradas. Si la caché
// difería, se reescribe dentro de la misma transacción con la fila bloqueada.
func (uc *StockQueryUseCase) RebuildProjection(ctx context.Context, itemID string) (*RebuildResult, error) {
	var result *RebuildResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		entries, err := ledgerRepo.ListByItem(itemID, nil, nil)
		if err != nil {
			return err
		}
		stock := decimal.Zero
		cost := decimal.Zero
		for _, e := range entries {
			stock = stock.Add(e.ChangeQuantity)
			if e.IsInboundFamily() {
				cost = e.MovingAverageCost
			}
		}
		drifted := !stock.Equal(item.CurrentStock) || !cost.Equal(item.CurrentCost)
		if drifted {
			uc.log.Warn().
				Str("item_id", itemID).
				Str("cached_stock", item.CurrentStock.String()).
				Str("ledger_stock", stock.String()).
				Str("cached_cost", item.CurrentCost.String()).
				Str("ledger_cost", cost.String()).
				Msg("proyección desfasada respecto al libro; reconstruyendo")
			if err := itemRepo.UpdateProjection(itemID, stock, cost); err != nil {
				return err
			}
		}
		result = &RebuildResult{ItemID: itemID, Stock: stock, Cost: cost, Drifted: drifted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
