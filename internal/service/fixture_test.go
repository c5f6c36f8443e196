package service_test

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	cache    *service.AvailabilityCache
	tabs     *service.TabService
	items    *service.LineItemService
	payments *service.PaymentService
	tables   *service.TableService
	stock    *service.StockService
}

func newFixture() *fixture {
	store := memory.NewStore()
	cache := service.NewAvailabilityCache()
	log := logger.NewNop()
	return &fixture{
		store:    store,
		cache:    cache,
		tabs:     service.NewTabService(store, log),
		items:    service.NewLineItemService(store, cache, log),
		payments: service.NewPaymentService(store, log),
		tables:   service.NewTableService(store, log),
		stock:    service.NewStockService(store, cache, log),
	}
}

func (f *fixture) openCounterTab(t *testing.T, customer string) *tab.Tab {
	t.Helper()
	created, err := f.tabs.Create(context.Background(), service.CreateTabInput{
		Kind:         "counter",
		CustomerName: customer,
		CreatedBy:    "user-1",
	})
	require.NoError(t, err)
	return created
}

func (f *fixture) openTableTab(t *testing.T, number int) *tab.Tab {
	t.Helper()
	created, err := f.tabs.Create(context.Background(), service.CreateTabInput{
		Kind:        "table",
		TableNumber: &number,
		CreatedBy:   "user-1",
	})
	require.NoError(t, err)
	return created
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func strPtr(s string) *string { return &s }
