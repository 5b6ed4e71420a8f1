package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func TestGetItemStock(t *testing.T) {
	f := newFixture()

	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)

	stock, err := f.queries.GetItemStock(context.Background(), f.itemID)
	require.NoError(t, err)
	assert.True(t, stock.Stock.Equal(d("10")))
	assert.True(t, stock.Cost.Equal(d("100")))

	_, err = f.queries.GetItemStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLocationStock_DerivadoDeLineas(t *testing.T) {
	f := newFixture()

	// Entradas: 10 en A y 5 en B; salida: 3 desde A
	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)
	_, err = f.inbound(f.itemID, f.locB, "5", "100")
	require.NoError(t, err)
	_, err = f.outbound(f.itemID, f.locA, "3", "200")
	require.NoError(t, err)

	stockA, err := f.queries.GetLocationStock(context.Background(), f.itemID, f.locA)
	require.NoError(t, err)
	assert.True(t, stockA.Equal(d("7")), "A: 10 entradas - 3 salidas")

	stockB, err := f.queries.GetLocationStock(context.Background(), f.itemID, f.locB)
	require.NoError(t, err)
	assert.True(t, stockB.Equal(d("5")))

	// Par sin movimientos: cero, no error
	stock2, err := f.queries.GetLocationStock(context.Background(), f.item2ID, f.locA)
	require.NoError(t, err)
	assert.True(t, stock2.IsZero())

	_, err = f.queries.GetLocationStock(context.Background(), f.itemID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLedger(t *testing.T) {
	f := newFixture()

	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)
	_, err = f.outbound(f.itemID, f.locA, "3", "200")
	require.NoError(t, err)
	_, err = f.inbound(f.item2ID, f.locA, "1", "1")
	require.NoError(t, err)

	entries, err := f.queries.ListLedger(context.Background(), f.itemID, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2, "solo los asientos del artículo pedido")
	assert.Equal(t, entity.ActionInbound, entries[0].ActionType)
	assert.Equal(t, entity.ActionOutbound, entries[1].ActionType)

	// Rango futuro: vacío
	future := time.Now().Add(time.Hour)
	entries, err = f.queries.ListLedger(context.Background(), f.itemID, &future, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = f.queries.ListLedger(context.Background(), "no-existe", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRebuildProjection_SinDeriva(t *testing.T) {
	f := newFixture()

	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)
	_, err = f.inbound(f.itemID, f.locA, "10", "200")
	require.NoError(t, err)
	_, err = f.outbound(f.itemID, f.locA, "5", "300")
	require.NoError(t, err)

	res, err := f.queries.RebuildProjection(context.Background(), f.itemID)
	require.NoError(t, err)
	assert.False(t, res.Drifted, "la caché debe coincidir con el libro")
	assert.True(t, res.Stock.Equal(d("15")))
	assert.True(t, res.Cost.Equal(d("150")))
}

func TestRebuildProjection_CorrigeDeriva(t *testing.T) {
	f := newFixture()

	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)

	// Corromper la caché materializada a propósito
	f.store.items[f.itemID].CurrentStock = d("999")
	f.store.items[f.itemID].CurrentCost = d("1")

	res, err := f.queries.RebuildProjection(context.Background(), f.itemID)
	require.NoError(t, err)
	assert.True(t, res.Drifted)
	assert.True(t, res.Stock.Equal(d("10")))
	assert.True(t, res.Cost.Equal(d("100")))

	item := f.store.items[f.itemID]
	assert.True(t, item.CurrentStock.Equal(d("10")), "la caché queda reescrita desde el libro")
	assert.True(t, item.CurrentCost.Equal(d("100")))
}

func TestRebuildProjection_TrasReversiones(t *testing.T) {
	f := newFixture()

	_, err := f.inbound(f.itemID, f.locA, "10", "100")
	require.NoError(t, err)
	_, err = f.inbound(f.itemID, f.locA, "10", "200")
	require.NoError(t, err)
	outID, err := f.outbound(f.itemID, f.locA, "5", "300")
	require.NoError(t, err)
	require.NoError(t, f.rev.RevertOutbound(context.Background(), outID))

	res, err := f.queries.RebuildProjection(context.Background(), f.itemID)
	require.NoError(t, err)
	assert.False(t, res.Drifted, "reproducir el libro reproduce exactamente la proyección")
	assert.True(t, res.Stock.Equal(d("20")))
	assert.True(t, res.Cost.Equal(d("150")))
}
