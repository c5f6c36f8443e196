package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
)

type tabRepository struct{ st *state }

func (r *tabRepository) Create(ctx context.Context, t *tab.Tab) error {
	r.st.nextTabNumber++
	t.Number = r.st.nextTabNumber
	r.st.tabs[t.ID] = copyTab(t)
	return nil
}

func (r *tabRepository) FindByID(ctx context.Context, id string) (*tab.Tab, error) {
	t, ok := r.st.tabs[id]
	if !ok {
		return nil, tab.ErrTabNotFound
	}
	return copyTab(t), nil
}

// FindByIDForUpdate: as transações do Store já são serializadas
func (r *tabRepository) FindByIDForUpdate(ctx context.Context, id string) (*tab.Tab, error) {
	return r.FindByID(ctx, id)
}

func (r *tabRepository) List(ctx context.Context, filter tab.Filter) ([]*tab.Tab, error) {
	tabs := make([]*tab.Tab, 0, len(r.st.tabs))
	for _, t := range r.st.tabs {
		if filter.Kind != "" && t.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		tabs = append(tabs, copyTab(t))
	}
	sort.Slice(tabs, func(i, j int) bool {
		return tabs[i].Number > tabs[j].Number
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(tabs) {
			return []*tab.Tab{}, nil
		}
		tabs = tabs[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(tabs) {
		tabs = tabs[:filter.Limit]
	}
	return tabs, nil
}

func (r *tabRepository) UpdateStatus(ctx context.Context, t *tab.Tab) error {
	current, ok := r.st.tabs[t.ID]
	if !ok {
		return tab.ErrTabNotFound
	}
	updated := copyTab(current)
	updated.Status = t.Status
	updated.ClosedAt = nil
	if t.ClosedAt != nil {
		c := *t.ClosedAt
		updated.ClosedAt = &c
	}
	r.st.tabs[t.ID] = updated
	return nil
}

func (r *tabRepository) ListActiveWithTable(ctx context.Context) ([]*tab.Tab, error) {
	tabs := make([]*tab.Tab, 0)
	for _, t := range r.st.tabs {
		if t.Status != tab.StatusClosed && t.TableNumber != nil {
			tabs = append(tabs, copyTab(t))
		}
	}
	return tabs, nil
}

type subTabRepository struct{ st *state }

func (r *subTabRepository) Create(ctx context.Context, s *tab.SubTab) error {
	if _, ok := r.st.tabs[s.TabID]; !ok {
		return tab.ErrTabNotFound
	}
	cp := *s
	r.st.subTabs[s.ID] = &cp
	return nil
}

func (r *subTabRepository) FindByID(ctx context.Context, id string) (*tab.SubTab, error) {
	s, ok := r.st.subTabs[id]
	if !ok {
		return nil, tab.ErrSubTabNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *subTabRepository) ListByTab(ctx context.Context, tabID string) ([]*tab.SubTab, error) {
	subs := make([]*tab.SubTab, 0)
	for _, s := range r.st.subTabs {
		if s.TabID == tabID {
			cp := *s
			subs = append(subs, &cp)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].ID < subs[j].ID
		}
		return subs[i].CreatedAt.Before(subs[j].CreatedAt)
	})
	return subs, nil
}

func (r *subTabRepository) UpdateStatus(ctx context.Context, s *tab.SubTab) error {
	current, ok := r.st.subTabs[s.ID]
	if !ok {
		return tab.ErrSubTabNotFound
	}
	current.Status = s.Status
	return nil
}

type lineItemRepository struct{ st *state }

func (r *lineItemRepository) Create(ctx context.Context, item *lineitem.LineItem) error {
	cp := *item
	r.st.lineItems = append(r.st.lineItems, &cp)
	return nil
}

func (r *lineItemRepository) ListByTab(ctx context.Context, tabID string) ([]*lineitem.LineItem, error) {
	items := make([]*lineitem.LineItem, 0)
	for _, item := range r.st.lineItems {
		if item.TabID == tabID {
			cp := *item
			items = append(items, &cp)
		}
	}
	return items, nil
}

func (r *lineItemRepository) ListBySubTab(ctx context.Context, subTabID string) ([]*lineitem.LineItem, error) {
	items := make([]*lineitem.LineItem, 0)
	for _, item := range r.st.lineItems {
		if item.BelongsToSubTab(subTabID) {
			cp := *item
			items = append(items, &cp)
		}
	}
	return items, nil
}

type paymentRepository struct{ st *state }

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	cp := *p
	r.st.payments = append(r.st.payments, &cp)
	return nil
}

func (r *paymentRepository) ListByTab(ctx context.Context, tabID string) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)
	for _, p := range r.st.payments {
		if p.TabID == tabID {
			cp := *p
			payments = append(payments, &cp)
		}
	}
	return payments, nil
}

func (r *paymentRepository) ListBySubTab(ctx context.Context, subTabID string) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)
	for _, p := range r.st.payments {
		if p.BelongsToSubTab(subTabID) {
			cp := *p
			payments = append(payments, &cp)
		}
	}
	return payments, nil
}

type tableRepository struct{ st *state }

func (r *tableRepository) FindByID(ctx context.Context, id string) (*table.Table, error) {
	t, ok := r.st.tables[id]
	if !ok {
		return nil, table.ErrTableNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *tableRepository) List(ctx context.Context) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(r.st.tables))
	for _, t := range r.st.tables {
		cp := *t
		tables = append(tables, &cp)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Number < tables[j].Number
	})
	return tables, nil
}

func (r *tableRepository) Occupy(ctx context.Context, number int) error {
	t := r.byNumber(number)
	if t == nil {
		return table.ErrTableNotFound
	}
	if t.Status != table.StatusFree {
		return table.ErrTableNotFree
	}
	t.Status = table.StatusOccupied
	return nil
}

func (r *tableRepository) ProjectStatus(ctx context.Context, number int, status table.Status) error {
	if t := r.byNumber(number); t != nil {
		t.Status = status
	}
	return nil
}

func (r *tableRepository) byNumber(number int) *table.Table {
	for _, t := range r.st.tables {
		if t.Number == number {
			return t
		}
	}
	return nil
}

type stockRepository struct{ st *state }

func (r *stockRepository) FindByProductIDs(ctx context.Context, productIDs []string) (map[string]*stock.Stock, error) {
	result := make(map[string]*stock.Stock, len(productIDs))
	for _, id := range productIDs {
		if s, ok := r.st.stock[id]; ok {
			cp := *s
			result[id] = &cp
		}
	}
	return result, nil
}

func (r *stockRepository) DecrementIfAvailable(ctx context.Context, productID string, quantity int) (*stock.Stock, bool, error) {
	s, ok := r.st.stock[productID]
	if !ok || s.Quantity < quantity {
		return nil, false, nil
	}
	s.Quantity -= quantity
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, true, nil
}

func (r *stockRepository) DecrementFloored(ctx context.Context, productID string, quantity int) (*stock.Stock, bool, error) {
	s, ok := r.st.stock[productID]
	if !ok {
		return nil, false, nil
	}
	s.Quantity -= quantity
	if s.Quantity < 0 {
		s.Quantity = 0
	}
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	return &cp, true, nil
}

func (r *stockRepository) SetAvailability(ctx context.Context, productID string, availabilityID int) error {
	s, ok := r.st.stock[productID]
	if !ok {
		return nil
	}
	s.AvailabilityID = availabilityID
	for name, id := range r.st.availability {
		if id == availabilityID {
			s.Availability = name
		}
	}
	return nil
}

func (r *stockRepository) ListCritical(ctx context.Context) ([]*stock.Stock, error) {
	result := make([]*stock.Stock, 0)
	for _, s := range r.st.stock {
		if s.Quantity <= s.MinAlert {
			cp := *s
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Quantity == result[j].Quantity {
			return result[i].ProductID < result[j].ProductID
		}
		return result[i].Quantity < result[j].Quantity
	})
	return result, nil
}

type availabilityCatalog struct{ st *state }

func (c *availabilityCatalog) FindIDByName(ctx context.Context, name stock.Availability) (int, error) {
	id, ok := c.st.availability[name]
	if !ok {
		return 0, stock.ErrAvailabilityNotFound
	}
	return id, nil
}

type productReader struct{ st *state }

func (r *productReader) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *productReader) FindByIDs(ctx context.Context, ids []string) (map[string]*product.Product, error) {
	result := make(map[string]*product.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.st.products[id]; ok {
			cp := *p
			result[id] = &cp
		}
	}
	return result, nil
}
