package service_test

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_FullPaymentClosesTableTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(5)
	p := f.store.SeedProduct("Prato do dia", money("10.00"), 10, 2)

	created := f.openTableTab(t, 5)
	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	summary, err := f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, money("20").Equal(summary.Totals.Owed))

	result, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("20"), Method: payment.MethodCash})
	require.NoError(t, err)

	assert.Equal(t, tab.StatusClosed, result.TabStatus)
	assert.True(t, result.TabBalance.IsZero())
	assert.True(t, result.TableFreed)
	require.NotNil(t, result.TableStatus)
	assert.Equal(t, table.StatusFree, *result.TableStatus)

	tbl, _ := f.store.TableByNumber(5)
	assert.Equal(t, table.StatusFree, tbl.Status)

	summary, err = f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, summary.Tab.ClosedAt)
}

func TestPaymentService_PartialPaymentAwaitsBalance(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(2)
	p := f.store.SeedProduct("Prato do dia", money("10.00"), 10, 2)

	created := f.openTableTab(t, 2)
	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	result, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("5"), Method: payment.MethodPIX})
	require.NoError(t, err)

	assert.Equal(t, tab.StatusAwaitingPayment, result.TabStatus)
	assert.True(t, money("15").Equal(result.TabBalance))
	assert.False(t, result.TableFreed)
	require.NotNil(t, result.TableStatus)
	assert.Equal(t, table.StatusAwaitingPayment, *result.TableStatus)

	result, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("15"), Method: payment.MethodDebit})
	require.NoError(t, err)
	assert.Equal(t, tab.StatusClosed, result.TabStatus)
	assert.True(t, result.TableFreed)
}

func TestPaymentService_OverpaymentClampsBalance(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Sobremesa", money("8"), 10, 2)
	created := f.openCounterTab(t, "Ana")
	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	result, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("10"), Method: payment.MethodCash})
	require.NoError(t, err)
	assert.Equal(t, tab.StatusClosed, result.TabStatus)
	assert.True(t, result.TabBalance.IsZero())
	assert.Nil(t, result.TableStatus)
	assert.False(t, result.TableFreed)
}

func TestPaymentService_SplitTabClosesAfterEverySubTab(t *testing.T) {
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

	result, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[0].ID, Amount: money("15"), Method: payment.MethodCredit})
	require.NoError(t, err)
	require.NotNil(t, result.SubTabStatus)
	assert.Equal(t, tab.StatusClosed, *result.SubTabStatus)
	assert.True(t, result.SubTabBalance.IsZero())
	assert.NotEqual(t, tab.StatusClosed, result.TabStatus)
	assert.True(t, money("15").Equal(result.TabBalance))

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[0].ID, Amount: money("1"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, tab.ErrSubTabClosed)

	result, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[1].ID, Amount: money("15"), Method: payment.MethodCash})
	require.NoError(t, err)
	assert.Equal(t, tab.StatusClosed, *result.SubTabStatus)
	assert.Equal(t, tab.StatusClosed, result.TabStatus)
	assert.True(t, result.TabBalance.IsZero())
}

func TestPaymentService_SubTabPartialPayment(t *testing.T) {
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

	result, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[0].ID, Amount: money("5"), Method: payment.MethodCash})
	require.NoError(t, err)
	assert.Equal(t, tab.StatusAwaitingPayment, *result.SubTabStatus)
	assert.True(t, money("10").Equal(*result.SubTabBalance))
	assert.Equal(t, tab.StatusOpen, result.TabStatus)

	result, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, SubTabID: &subs[1].ID, Amount: money("5"), Method: payment.MethodCash})
	require.NoError(t, err)
	assert.Equal(t, tab.StatusAwaitingPayment, result.TabStatus)
}

func TestPaymentService_SubTabMustBelongToTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := f.openCounterTab(t, "Ana")
	second := f.openCounterTab(t, "Bruno")
	subs, err := f.tabs.Split(ctx, first.ID, []string{"Ana"})
	require.NoError(t, err)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: second.ID, SubTabID: &subs[0].ID, Amount: money("5"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, tab.ErrSubTabNotFound)
	assert.Equal(t, 0, f.store.CountPayments())
}

func TestPaymentService_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.openCounterTab(t, "Ana")

	_, err := f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("0"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("-3"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("3"), Method: " "})
	assert.ErrorIs(t, err, payment.ErrEmptyMethod)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: "00000000-0000-0000-0000-000000000001", Amount: money("3"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, tab.ErrTabNotFound)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: "x", Amount: money("3"), Method: payment.MethodCash})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	assert.Equal(t, 0, f.store.CountPayments())
}

func TestPaymentService_ClosedTabRejectsPayment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.openCounterTab(t, "Ana")
	_, err := f.tabs.OverrideStatus(ctx, created.ID, "closed")
	require.NoError(t, err)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("3"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, tab.ErrTabClosed)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestPaymentService_ListByTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.store.SeedProduct("Executivo", money("15"), 10, 2)
	created := f.openCounterTab(t, "Ana")
	_, err := f.items.Add(ctx, service.AddLineItemInput{TabID: created.ID, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("10"), Method: payment.MethodCash})
	require.NoError(t, err)
	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("5.50"), Method: payment.MethodPIX})
	require.NoError(t, err)

	payments, err := f.payments.ListByTab(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	total := payments[0].Amount.Add(payments[1].Amount)
	assert.True(t, money("15.50").Equal(total))

	_, err = f.payments.ListByTab(ctx, "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, tab.ErrTabNotFound)
}

func TestPaymentService_SplitTabRejectsDirectPayment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedTable(6)
	p := f.store.SeedProduct("Executivo", money("15"), 10, 2)
	created := f.openTableTab(t, 6)

	subs, err := f.tabs.Split(ctx, created.ID, []string{"Ana", "Bruno"})
	require.NoError(t, err)
	for _, sub := range subs {
		_, err := f.items.Add(ctx, service.AddLineItemInput{SubTabID: &sub.ID, ProductID: p.ID, Quantity: 1})
		require.NoError(t, err)
	}

	_, err = f.payments.Record(ctx, service.RecordPaymentInput{TabID: created.ID, Amount: money("30"), Method: payment.MethodCash})
	assert.ErrorIs(t, err, payment.ErrSubTabRequired)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, 0, f.store.CountPayments())

	summary, err := f.tabs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, tab.StatusOpen, summary.Tab.Status)
	assert.True(t, money("30").Equal(summary.Totals.Balance))
	for _, sub := range summary.SubTabs {
		assert.Equal(t, tab.StatusOpen, sub.SubTab.Status)
		assert.True(t, money("15").Equal(sub.Totals.Balance))
	}
	tbl, _ := f.store.TableByNumber(6)
	assert.Equal(t, table.StatusOccupied, tbl.Status)
}
