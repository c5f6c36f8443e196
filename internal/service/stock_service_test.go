package service_test

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockService_Check(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	beer := f.store.SeedProduct("Cerveja", money("9"), 4, 1)
	fries := f.store.SeedProduct("Fritas", money("18"), 10, 2)
	couvert := f.store.SeedProductWithoutStock("Couvert", money("12"))

	result, err := f.stock.Check(ctx, []stock.ItemRequest{
		{ProductID: beer.ID, Quantity: 2},
		{ProductID: fries.ID, Quantity: 3},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Message)

	// mesmo produto repetido é somado
	result, err = f.stock.Check(ctx, []stock.ItemRequest{
		{ProductID: beer.ID, Quantity: 3},
		{ProductID: beer.ID, Quantity: 3},
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, `Produto "Cerveja" sem estoque suficiente. Faltam 2 unidades.`, result.Message)

	result, err = f.stock.Check(ctx, []stock.ItemRequest{{ProductID: couvert.ID, Quantity: 1}})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, `Produto "Couvert" sem estoque suficiente. Faltam 1 unidade.`, result.Message)

	st, _ := f.store.StockOf(beer.ID)
	assert.Equal(t, 4, st.Quantity)
}

func TestStockService_CheckValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.stock.Check(ctx, nil)
	assert.ErrorIs(t, err, stock.ErrEmptyItems)

	_, err = f.stock.Check(ctx, []stock.ItemRequest{{ProductID: "abc", Quantity: 1}})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestStockService_Critical(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedProduct("Vinho", money("90"), 20, 5)
	low := f.store.SeedProduct("Limão", money("1"), 3, 5)
	out := f.store.SeedProduct("Gelo", money("2"), 0, 5)

	items, err := f.stock.Critical(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, out.ID, items[0].ProductID)
	assert.Equal(t, "Gelo", items[0].Name)
	assert.Equal(t, stock.OutOfStock, items[0].Availability)

	assert.Equal(t, low.ID, items[1].ProductID)
	assert.Equal(t, stock.LowStock, items[1].Availability)
	assert.Equal(t, 5, items[1].MinAlert)
}

func TestStockLedger_DecreaseStockIsFloored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Limão", money("1"), 3, 1)
	unknown := f.store.SeedProductWithoutStock("Couvert", money("12"))

	err := f.store.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		ledger := service.NewStockLedger(repos, f.cache, logger.NewNop())
		return ledger.DecreaseStock(ctx, []stock.ItemRequest{
			{ProductID: p.ID, Quantity: 5},
			{ProductID: unknown.ID, Quantity: 1},
		})
	})
	require.NoError(t, err)

	st, _ := f.store.StockOf(p.ID)
	assert.Equal(t, 0, st.Quantity)
	assert.Equal(t, stock.OutOfStock, st.Availability)

	_, ok := f.store.StockOf(unknown.ID)
	assert.False(t, ok)
}

func TestStockLedger_ReserveIsAllOrNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	plenty := f.store.SeedProduct("Água", money("4"), 10, 2)
	scarce := f.store.SeedProduct("Suco", money("8"), 1, 0)

	err := f.store.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		ledger := service.NewStockLedger(repos, f.cache, logger.NewNop())
		return ledger.Reserve(ctx, []stock.ItemRequest{
			{ProductID: plenty.ID, Quantity: 4},
			{ProductID: scarce.ID, Quantity: 2},
		})
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInsufficientStock, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "Faltam 1 unidade.")

	st, _ := f.store.StockOf(plenty.ID)
	assert.Equal(t, 10, st.Quantity)
	st, _ = f.store.StockOf(scarce.ID)
	assert.Equal(t, 1, st.Quantity)
}

func TestAvailabilityCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cache := service.NewAvailabilityCache()

	err := f.store.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		id, err := cache.Resolve(ctx, repos.Availability, stock.LowStock)
		require.NoError(t, err)
		assert.Equal(t, 2, id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// uma vez guardada, a classificação não depende mais do cadastro
	f.store.RemoveAvailability(stock.LowStock)
	f.store.RemoveAvailability(stock.OutOfStock)
	err = f.store.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		id, err := cache.Resolve(ctx, repos.Availability, stock.LowStock)
		require.NoError(t, err)
		assert.Equal(t, 2, id)

		_, err = cache.Resolve(ctx, repos.Availability, stock.OutOfStock)
		assert.ErrorIs(t, err, stock.ErrAvailabilityNotFound)
		assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())
}
