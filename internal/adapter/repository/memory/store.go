// Package memory implementa todos os repositórios em memória, com transações
// por cópia: cada unidade de trabalho opera sobre uma cópia do estado, que só
// substitui o estado confirmado se a função terminar sem erro.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/shopspring/decimal"
)

type state struct {
	nextTabNumber int64
	tabs          map[string]*tab.Tab
	subTabs       map[string]*tab.SubTab
	lineItems     []*lineitem.LineItem
	payments      []*payment.Payment
	tables        map[string]*table.Table
	stock         map[string]*stock.Stock
	availability  map[stock.Availability]int
	products      map[string]*product.Product
}

func newState() *state {
	return &state{
		tabs:         make(map[string]*tab.Tab),
		subTabs:      make(map[string]*tab.SubTab),
		tables:       make(map[string]*table.Table),
		stock:        make(map[string]*stock.Stock),
		availability: make(map[stock.Availability]int),
		products:     make(map[string]*product.Product),
	}
}

func (s *state) clone() *state {
	c := newState()
	c.nextTabNumber = s.nextTabNumber
	for id, t := range s.tabs {
		c.tabs[id] = copyTab(t)
	}
	for id, sub := range s.subTabs {
		cp := *sub
		c.subTabs[id] = &cp
	}
	c.lineItems = make([]*lineitem.LineItem, len(s.lineItems))
	for i, item := range s.lineItems {
		cp := *item
		c.lineItems[i] = &cp
	}
	c.payments = make([]*payment.Payment, len(s.payments))
	for i, p := range s.payments {
		cp := *p
		c.payments[i] = &cp
	}
	for id, t := range s.tables {
		cp := *t
		c.tables[id] = &cp
	}
	for id, st := range s.stock {
		cp := *st
		c.stock[id] = &cp
	}
	for name, id := range s.availability {
		c.availability[name] = id
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	return c
}

func (s *state) repositories() service.Repositories {
	return service.Repositories{
		Tabs:         &tabRepository{st: s},
		SubTabs:      &subTabRepository{st: s},
		LineItems:    &lineItemRepository{st: s},
		Payments:     &paymentRepository{st: s},
		Tables:       &tableRepository{st: s},
		Stock:        &stockRepository{st: s},
		Availability: &availabilityCatalog{st: s},
		Products:     &productReader{st: s},
	}
}

// Store é a unidade de trabalho em memória. As transações são serializadas.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore cria um Store com o cadastro de disponibilidades preenchido
func NewStore() *Store {
	st := newState()
	st.availability[stock.InStock] = 1
	st.availability[stock.LowStock] = 2
	st.availability[stock.OutOfStock] = 3
	return &Store{st: st}
}

// Do implementa service.UnitOfWork
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos service.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, work.repositories()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// SeedProduct cadastra um produto com seu saldo de estoque
func (s *Store) SeedProduct(name string, price decimal.Decimal, quantity, minAlert int) *product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &product.Product{ID: uuid.New().String(), Name: name, Price: price, Active: true}
	s.st.products[p.ID] = p

	availability := stock.Classify(quantity, minAlert)
	s.st.stock[p.ID] = &stock.Stock{
		ProductID:      p.ID,
		Quantity:       quantity,
		MinAlert:       minAlert,
		AvailabilityID: s.st.availability[availability],
		Availability:   availability,
		UpdatedAt:      time.Now().UTC(),
	}
	cp := *p
	return &cp
}

// SeedProductWithoutStock cadastra um produto sem registro de estoque
func (s *Store) SeedProductWithoutStock(name string, price decimal.Decimal) *product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &product.Product{ID: uuid.New().String(), Name: name, Price: price, Active: true}
	s.st.products[p.ID] = p
	cp := *p
	return &cp
}

// SeedTable cadastra uma mesa livre
func (s *Store) SeedTable(number int) *table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &table.Table{ID: uuid.New().String(), Number: number, Status: table.StatusFree, CreatedAt: time.Now().UTC()}
	s.st.tables[t.ID] = t
	cp := *t
	return &cp
}

// SetProductActive ativa ou inativa um produto
func (s *Store) SetProductActive(id string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.st.products[id]; ok {
		p.Active = active
	}
}

// RemoveAvailability apaga uma linha do cadastro de disponibilidades
func (s *Store) RemoveAvailability(name stock.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.st.availability, name)
}

// StockOf retorna uma cópia do saldo do produto
func (s *Store) StockOf(productID string) (*stock.Stock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.st.stock[productID]
	if !ok {
		return nil, false
	}
	cp := *st
	return &cp, true
}

// TableByNumber retorna uma cópia da mesa com o status persistido
func (s *Store) TableByNumber(number int) (*table.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.st.tables {
		if t.Number == number {
			cp := *t
			return &cp, true
		}
	}
	return nil, false
}

// CountLineItems retorna o número de itens confirmados
func (s *Store) CountLineItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.st.lineItems)
}

// CountPayments retorna o número de pagamentos confirmados
func (s *Store) CountPayments() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.st.payments)
}

func copyTab(t *tab.Tab) *tab.Tab {
	cp := *t
	if t.TableNumber != nil {
		n := *t.TableNumber
		cp.TableNumber = &n
	}
	if t.ClosedAt != nil {
		c := *t.ClosedAt
		cp.ClosedAt = &c
	}
	return &cp
}
