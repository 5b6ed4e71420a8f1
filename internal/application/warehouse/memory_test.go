package warehouse_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/warehouse"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// memStore almacén en memoria para los tests de los casos de uso.
// memTxRunner toma un snapshot antes de cada transacción y lo restaura si la
// función falla, para poder verificar la semántica todo-o-nada.
type memStore struct {
	items     map[string]*entity.Item
	suppliers map[string]*entity.Supplier
	customers map[string]*entity.Customer
	locations map[string]*entity.Location
	inbound   map[string]*entity.InboundReceipt
	outbound  map[string]*entity.OutboundReceipt
	ledger    []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		items:     map[string]*entity.Item{},
		suppliers: map[string]*entity.Supplier{},
		customers: map[string]*entity.Customer{},
		locations: map[string]*entity.Location{},
		inbound:   map[string]*entity.InboundReceipt{},
		outbound:  map[string]*entity.OutboundReceipt{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.suppliers {
		cp := *v
		c.suppliers[k] = &cp
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.locations {
		cp := *v
		c.locations[k] = &cp
	}
	for k, v := range s.inbound {
		cp := *v
		cp.Details = append([]entity.InboundLine(nil), v.Details...)
		c.inbound[k] = &cp
	}
	for k, v := range s.outbound {
		cp := *v
		cp.Details = append([]entity.OutboundLine(nil), v.Details...)
		c.outbound[k] = &cp
	}
	c.ledger = append([]*entity.LedgerEntry(nil), s.ledger...)
	return c
}

func (s *memStore) restore(from *memStore) {
	s.items = from.items
	s.suppliers = from.suppliers
	s.customers = from.customers
	s.locations = from.locations
	s.inbound = from.inbound
	s.outbound = from.outbound
	s.ledger = from.ledger
}

// --- repositorios ---

type memItems struct{ s *memStore }

func (r memItems) Create(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r memItems) GetByID(id string) (*entity.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r memItems) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.s.items {
		if item.Code == code {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memItems) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r memItems) Update(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r memItems) UpdateProjection(id string, stock, cost decimal.Decimal) error {
	item, ok := r.s.items[id]
	if !ok {
		return nil
	}
	item.CurrentStock = stock
	item.CurrentCost = cost
	item.UpdatedAt = time.Now()
	return nil
}

func (r memItems) List() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.s.items {
		cp := *item
		list = append(list, &cp)
	}
	return list, nil
}

func (r memItems) ListBelowSafetyStock() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.s.items {
		if item.BelowSafetyStock() {
			cp := *item
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r memItems) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

type memSuppliers struct{ s *memStore }

func (r memSuppliers) Create(sup *entity.Supplier) error {
	cp := *sup
	r.s.suppliers[sup.ID] = &cp
	return nil
}

func (r memSuppliers) GetByID(id string) (*entity.Supplier, error) {
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

func (r memSuppliers) List() ([]*entity.Supplier, error) { return nil, nil }
func (r memSuppliers) Delete(id string) error            { delete(r.s.suppliers, id); return nil }

type memCustomers struct{ s *memStore }

func (r memCustomers) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r memCustomers) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r memCustomers) List() ([]*entity.Customer, error) { return nil, nil }
func (r memCustomers) Delete(id string) error            { delete(r.s.customers, id); return nil }

type memLocations struct{ s *memStore }

func (r memLocations) Create(l *entity.Location) error {
	cp := *l
	r.s.locations[l.ID] = &cp
	return nil
}

func (r memLocations) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r memLocations) GetByCode(code string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.Code == code {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memLocations) List() ([]*entity.Location, error) { return nil, nil }

func (r memLocations) IsReferenced(id string) (bool, error) {
	for _, rec := range r.s.inbound {
		for _, line := range rec.Details {
			if line.LocationID == id {
				return true, nil
			}
		}
	}
	for _, rec := range r.s.outbound {
		for _, line := range rec.Details {
			if line.LocationID == id {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r memLocations) Delete(id string) error { delete(r.s.locations, id); return nil }

type memReceipts struct{ s *memStore }

func (r memReceipts) CreateInbound(receipt *entity.InboundReceipt) error {
	cp := *receipt
	cp.Details = append([]entity.InboundLine(nil), receipt.Details...)
	r.s.inbound[receipt.ID] = &cp
	return nil
}

func (r memReceipts) GetInbound(id string) (*entity.InboundReceipt, error) {
	rec, ok := r.s.inbound[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Details = append([]entity.InboundLine(nil), rec.Details...)
	return &cp, nil
}

func (r memReceipts) DeleteInbound(id string) error {
	delete(r.s.inbound, id)
	return nil
}

func (r memReceipts) CreateOutbound(receipt *entity.OutboundReceipt) error {
	cp := *receipt
	cp.Details = append([]entity.OutboundLine(nil), receipt.Details...)
	r.s.outbound[receipt.ID] = &cp
	return nil
}

func (r memReceipts) GetOutbound(id string) (*entity.OutboundReceipt, error) {
	rec, ok := r.s.outbound[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Details = append([]entity.OutboundLine(nil), rec.Details...)
	return &cp, nil
}

func (r memReceipts) DeleteOutbound(id string) error {
	delete(r.s.outbound, id)
	return nil
}

func (r memReceipts) LocationStock(itemID, locationID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.s.inbound {
		for _, line := range rec.Details {
			if line.ItemID == itemID && line.LocationID == locationID {
				total = total.Add(line.Quantity)
			}
		}
	}
	for _, rec := range r.s.outbound {
		for _, line := range rec.Details {
			if line.ItemID == itemID && line.LocationID == locationID {
				total = total.Sub(line.Quantity)
			}
		}
	}
	return total, nil
}

type memLedger struct{ s *memStore }

func (r memLedger) Append(entry *entity.LedgerEntry) error {
	cp := *entry
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}

func (r memLedger) ListByItem(itemID string, from, to *time.Time) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for _, e := range r.s.ledger {
		if e.ItemID != itemID {
			continue
		}
		if from != nil && e.Timestamp.Before(*from) {
			continue
		}
		if to != nil && e.Timestamp.After(*to) {
			continue
		}
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

type memTxRunner struct{ s *memStore }

func (t memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	receiptRepo repository.ReceiptRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	snapshot := t.s.clone()
	if err := fn(memItems{t.s}, memReceipts{t.s}, memLedger{t.s}); err != nil {
		t.s.restore(snapshot)
		return err
	}
	return nil
}

// --- fixture ---

type fixture struct {
	store   *memStore
	tx      *warehouse.TransactionUseCase
	rev     *warehouse.ReversalUseCase
	queries *warehouse.StockQueryUseCase

	supplierID string
	customerID string
	locA       string
	locB       string
	itemID     string
	item2ID    string
}

func newFixture() *fixture {
	s := newMemStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	runner := memTxRunner{s}

	f := &fixture{
		store:      s,
		supplierID: "sup-1",
		customerID: "cus-1",
		locA:       "loc-a",
		locB:       "loc-b",
		itemID:     "item-1",
		item2ID:    "item-2",
	}
	s.suppliers[f.supplierID] = &entity.Supplier{ID: f.supplierID, Name: "Proveedor Uno"}
	s.customers[f.customerID] = &entity.Customer{ID: f.customerID, Name: "Cliente Uno"}
	s.locations[f.locA] = &entity.Location{ID: f.locA, Code: "A-01"}
	s.locations[f.locB] = &entity.Location{ID: f.locB, Code: "B-01"}
	s.items[f.itemID] = &entity.Item{ID: f.itemID, Code: "SKU-001", Name: "Tornillo", Unit: "caja"}
	s.items[f.item2ID] = &entity.Item{ID: f.item2ID, Code: "SKU-002", Name: "Tuerca", Unit: "caja"}

	f.tx = warehouse.NewTransactionUseCase(runner, memSuppliers{s}, memCustomers{s}, memLocations{s}, log)
	f.rev = warehouse.NewReversalUseCase(runner, log)
	f.queries = warehouse.NewStockQueryUseCase(runner, memItems{s}, memReceipts{s}, memLedger{s}, memLocations{s}, log)
	return f
}

// inbound registra una recepción de una sola línea y devuelve su ID.
func (f *fixture) inbound(itemID, locID, qty, price string) (string, error) {
	return f.tx.CreateInbound(context.Background(), warehouse.InboundInput{
		SupplierID: f.supplierID,
		UserID:     "user-1",
		Lines: []warehouse.InboundLineInput{{
			ItemID:     itemID,
			LocationID: locID,
			Quantity:   decimal.RequireFromString(qty),
			UnitPrice:  decimal.RequireFromString(price),
		}},
	})
}

// outbound registra un despacho de una sola línea y devuelve su ID.
func (f *fixture) outbound(itemID, locID, qty, price string) (string, error) {
	return f.tx.CreateOutbound(context.Background(), warehouse.OutboundInput{
		CustomerID: f.customerID,
		UserID:     "user-1",
		Lines: []warehouse.OutboundLineInput{{
			ItemID:     itemID,
			LocationID: locID,
			Quantity:   decimal.RequireFromString(qty),
			SalesPrice: decimal.RequireFromString(price),
		}},
	})
}
