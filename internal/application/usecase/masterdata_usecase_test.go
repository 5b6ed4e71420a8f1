package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeItemRepo repositorio de artículos en memoria para los tests de CRUD.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateProjection(id string, stock, cost decimal.Decimal) error {
	if item, ok := r.items[id]; ok {
		item.CurrentStock = stock
		item.CurrentCost = cost
	}
	return nil
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.items {
		cp := *item
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeItemRepo) ListBelowSafetyStock() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.items {
		if item.BelowSafetyStock() {
			cp := *item
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// fakeLocationRepo repositorio de ubicaciones en memoria; referenced guarda qué
// ubicaciones aparecen en alguna línea de recepción o despacho.
type fakeLocationRepo struct {
	locations  map[string]*entity.Location
	referenced map[string]bool
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{
		locations:  map[string]*entity.Location{},
		referenced: map[string]bool{},
	}
}

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) GetByCode(code string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.Code == code {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List() ([]*entity.Location, error) { return nil, nil }

func (r *fakeLocationRepo) IsReferenced(id string) (bool, error) {
	return r.referenced[id], nil
}

func (r *fakeLocationRepo) Delete(id string) error {
	delete(r.locations, id)
	return nil
}

func seedItem(repo *fakeItemRepo, id, code, stock, safety string) {
	repo.items[id] = &entity.Item{
		ID:           id,
		Code:         code,
		Name:         "Artículo " + code,
		Unit:         "unidad",
		SafetyStock:  d(safety),
		CurrentStock: d(stock),
		CurrentCost:  decimal.Zero,
	}
}

func TestItemDelete_SinStockPermitido(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(repo, "item-1", "SKU-001", "0", "0")
	uc := usecase.NewItemUseCase(repo)

	err := uc.Delete("item-1")
	require.NoError(t, err)
	assert.NotContains(t, repo.items, "item-1")
}

func TestItemDelete_ConStockRechazado(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(repo, "item-1", "SKU-001", "5", "0")
	uc := usecase.NewItemUseCase(repo)

	err := uc.Delete("item-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, repo.items, "item-1")
}

func TestItemDelete_NoExisteDevuelveNotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemListLowStock_SoloBajoMinimo(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(repo, "item-1", "SKU-001", "2", "10") // bajo mínimo
	seedItem(repo, "item-2", "SKU-002", "50", "10")
	seedItem(repo, "item-3", "SKU-003", "10", "10") // en el mínimo exacto no alerta
	uc := usecase.NewItemUseCase(repo)

	low, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "SKU-001", low[0].Code)
}

func TestLocationDelete_SinReferenciasPermitido(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.locations["loc-a"] = &entity.Location{ID: "loc-a", Code: "A-01"}
	uc := usecase.NewLocationUseCase(repo)

	err := uc.Delete("loc-a")
	require.NoError(t, err)
	assert.NotContains(t, repo.locations, "loc-a")
}

func TestLocationDelete_ReferenciadaRechazada(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.locations["loc-a"] = &entity.Location{ID: "loc-a", Code: "A-01"}
	repo.referenced["loc-a"] = true
	uc := usecase.NewLocationUseCase(repo)

	err := uc.Delete("loc-a")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, repo.locations, "loc-a")
}

func TestLocationDelete_NoExisteDevuelveNotFound(t *testing.T) {
	uc := usecase.NewLocationUseCase(newFakeLocationRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
