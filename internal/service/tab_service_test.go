package service_test

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabService_CreateTableTabOccupiesTable(t *testing.T) {
	f := newFixture()
	f.store.SeedTable(5)

	created := f.openTableTab(t, 5)

	assert.Equal(t, tab.StatusOpen, created.Status)
	assert.Equal(t, int64(1), created.Number)
	assert.Equal(t, "user-1", created.CreatedBy)

	tbl, ok := f.store.TableByNumber(5)
	require.True(t, ok)
	assert.Equal(t, table.StatusOccupied, tbl.Status)
}

func TestTabService_CreateRejectsBusyOrUnknownTable(t *testing.T) {
	f := newFixture()
	f.store.SeedTable(5)
	f.openTableTab(t, 5)

	number := 5
	_, err := f.tabs.Create(context.Background(), service.CreateTabInput{Kind: "table", TableNumber: &number})
	assert.ErrorIs(t, err, table.ErrTableNotFree)

	missing := 42
	_, err = f.tabs.Create(context.Background(), service.CreateTabInput{Kind: "table", TableNumber: &missing})
	assert.ErrorIs(t, err, table.ErrTableNotFound)
}

func TestTabService_CreateValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.tabs.Create(ctx, service.CreateTabInput{Kind: "counter"})
	assert.ErrorIs(t, err, tab.ErrCustomerNameRequired)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = f.tabs.Create(ctx, service.CreateTabInput{Kind: "table"})
	assert.ErrorIs(t, err, tab.ErrTableNumberRequired)

	_, err = f.tabs.Create(ctx, service.CreateTabInput{Kind: "drive-thru", CustomerName: "Ana"})
	assert.ErrorIs(t, err, tab.ErrInvalidKind)
}

func TestTabService_NumbersAreSequential(t *testing.T) {
	f := newFixture()

	first := f.openCounterTab(t, "Ana")
	second := f.openCounterTab(t, "Bruno")

	assert.Equal(t, first.Number+1, second.Number)
}

func TestTabService_List(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(1)

	f.openCounterTab(t, "Ana")
	f.openTableTab(t, 1)
	_, err := f.tabs.Create(ctx, service.CreateTabInput{Kind: "delivery", CustomerName: "Caio"})
	require.NoError(t, err)

	all, err := f.tabs.List(ctx, "", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Caio", all[0].CustomerName)

	counters, err := f.tabs.List(ctx, "counter", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, tab.KindCounter, counters[0].Kind)

	closed, err := f.tabs.List(ctx, "", "closed", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, closed)

	page, err := f.tabs.List(ctx, "", "", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, tab.KindTable, page[0].Kind)

	_, err = f.tabs.List(ctx, "bogus", "", 20, 0)
	assert.ErrorIs(t, err, tab.ErrInvalidKind)
	_, err = f.tabs.List(ctx, "", "bogus", 20, 0)
	assert.ErrorIs(t, err, tab.ErrInvalidStatus)
}

func TestTabService_Get(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Suco", money("7.50"), 10, 2)
	created := f.openCounterTab(t, "Ana")

	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	summary, err := f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, summary.Tab.ID)
	assert.Len(t, summary.Items, 1)
	assert.Empty(t, summary.Payments)
	assert.True(t, money("15").Equal(summary.Totals.Owed))
	assert.True(t, money("15").Equal(summary.Totals.Balance))

	_, err = f.tabs.Get(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, tab.ErrTabNotFound)

	_, err = f.tabs.Get(ctx, "not-a-uuid")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestTabService_OverrideStatusProjectsTable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(3)
	created := f.openTableTab(t, 3)

	updated, err := f.tabs.OverrideStatus(ctx, created.ID, "awaiting_payment")
	require.NoError(t, err)
	assert.Equal(t, tab.StatusAwaitingPayment, updated.Status)
	assert.Nil(t, updated.ClosedAt)
	tbl, _ := f.store.TableByNumber(3)
	assert.Equal(t, table.StatusAwaitingPayment, tbl.Status)

	updated, err = f.tabs.OverrideStatus(ctx, created.ID, "closed")
	require.NoError(t, err)
	assert.NotNil(t, updated.ClosedAt)
	tbl, _ = f.store.TableByNumber(3)
	assert.Equal(t, table.StatusFree, tbl.Status)

	updated, err = f.tabs.OverrideStatus(ctx, created.ID, "open")
	require.NoError(t, err)
	assert.Nil(t, updated.ClosedAt)
	tbl, _ = f.store.TableByNumber(3)
	assert.Equal(t, table.StatusOccupied, tbl.Status)

	_, err = f.tabs.OverrideStatus(ctx, created.ID, "paid")
	assert.ErrorIs(t, err, tab.ErrInvalidStatus)
}

func TestTabService_Split(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.openCounterTab(t, "Mesa grande")

	_, err := f.tabs.Split(ctx, created.ID, nil)
	assert.ErrorIs(t, err, tab.ErrNoSubTabNames)

	_, err = f.tabs.Split(ctx, created.ID, []string{"Ana", " "})
	assert.ErrorIs(t, err, service.ErrEmptySubTabName)

	subs, err := f.tabs.Split(ctx, created.ID, []string{"Ana", "Bruno"})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	for _, sub := range subs {
		assert.Equal(t, created.ID, sub.TabID)
		assert.Equal(t, tab.StatusOpen, sub.Status)
	}

	summary, err := f.tabs.GetSubTab(ctx, created.ID, subs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", summary.SubTab.CustomerName)
	assert.True(t, summary.Totals.Owed.IsZero())
}

func TestTabService_SplitRejectsDirectItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Água", money("4"), 10, 2)
	created := f.openCounterTab(t, "Ana")

	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = f.tabs.Split(ctx, created.ID, []string{"Ana", "Bruno"})
	assert.ErrorIs(t, err, tab.ErrSplitHasDirectItems)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestTabService_SplitClosedTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.openCounterTab(t, "Ana")
	_, err := f.tabs.OverrideStatus(ctx, created.ID, "closed")
	require.NoError(t, err)

	_, err = f.tabs.Split(ctx, created.ID, []string{"Ana"})
	assert.ErrorIs(t, err, tab.ErrTabClosed)
}

func TestTabService_GetSubTabOfAnotherTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := f.openCounterTab(t, "Ana")
	second := f.openCounterTab(t, "Bruno")

	subs, err := f.tabs.Split(ctx, first.ID, []string{"Ana"})
	require.NoError(t, err)

	_, err = f.tabs.GetSubTab(ctx, second.ID, subs[0].ID)
	assert.ErrorIs(t, err, tab.ErrSubTabNotFound)
}

func TestTabService_CancelledContext(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.tabs.Create(ctx, service.CreateTabInput{Kind: "counter", CustomerName: "Ana"})
	assert.ErrorIs(t, err, context.Canceled)

	all, err := f.tabs.List(context.Background(), "", "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTabService_GetIsRepeatable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Executivo", money("15"), 10, 2)
	created := f.openCounterTab(t, "Mesa grande")

	subs, err := f.tabs.Split(ctx, created.ID, []string{"Ana", "Bruno"})
	require.NoError(t, err)
	for _, sub := range subs {
		_, err := f.items.Add(ctx, service.AddLineItemInput{SubTabID: &sub.ID, ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)
	}
	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[0].ID, Amount: money("5"), Method: "PIX"})
	require.NoError(t, err)

	first, err := f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)
	second, err := f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Tab.Status, second.Tab.Status)
	assert.True(t, first.Totals.Owed.Equal(second.Totals.Owed))
	assert.True(t, first.Totals.Paid.Equal(second.Totals.Paid))
	assert.True(t, first.Totals.Balance.Equal(second.Totals.Balance))
	assert.True(t, money("25").Equal(second.Totals.Balance))

	require.Len(t, second.SubTabs, len(first.SubTabs))
	for i := range first.SubTabs {
		a, b := first.SubTabs[i], second.SubTabs[i]
		assert.Equal(t, a.SubTab.ID, b.SubTab.ID)
		assert.Equal(t, a.SubTab.Status, b.SubTab.Status)
		assert.True(t, a.Totals.Owed.Equal(b.Totals.Owed))
		assert.True(t, a.Totals.Paid.Equal(b.Totals.Paid))
		assert.True(t, a.Totals.Balance.Equal(b.Totals.Balance))
	}
	assert.Equal(t, tab.StatusAwaitingPayment, second.SubTabs[0].SubTab.Status)
	assert.Equal(t, tab.StatusOpen, second.SubTabs[1].SubTab.Status)
}

func TestTabService_ReopenRequiresFreeTable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(3)

	first := f.openTableTab(t, 3)
	_, err := f.tabs.OverrideStatus(ctx, first.ID, "closed")
	require.NoError(t, err)
	second := f.openTableTab(t, 3)

	_, err = f.tabs.OverrideStatus(ctx, first.ID, "open")
	assert.ErrorIs(t, err, table.ErrTableNotFree)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	summary, err := f.tabs.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, tab.StatusClosed, summary.Tab.Status)

	// fechar a comanda atual libera a mesa; então a antiga pode ser reaberta
	_, err = f.tabs.OverrideStatus(ctx, second.ID, "closed")
	require.NoError(t, err)
	_, err = f.tabs.OverrideStatus(ctx, first.ID, "awaiting_payment")
	require.NoError(t, err)
	tbl, _ := f.store.TableByNumber(3)
	assert.Equal(t, table.StatusAwaitingPayment, tbl.Status)
}
