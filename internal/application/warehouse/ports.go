package warehouse

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: o se persisten la
// recepción, las proyecciones y los asientos del libro, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		receiptRepo repository.ReceiptRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
