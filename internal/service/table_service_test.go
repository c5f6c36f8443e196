package service_test

import (
	"context"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableService_ListReconcilesActiveTabs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for n := 1; n <= 3; n++ {
		f.store.SeedTable(n)
	}
	open := f.openTableTab(t, 1)
	awaiting := f.openTableTab(t, 2)
	_, err := f.tabs.OverrideStatus(ctx, awaiting.ID, "awaiting_payment")
	require.NoError(t, err)

	tables, err := f.tables.List(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 3)

	byNumber := make(map[int]*table.Table)
	for _, tbl := range tables {
		byNumber[tbl.Number] = tbl
	}

	assert.Equal(t, table.StatusOccupied, byNumber[1].Status)
	require.NotNil(t, byNumber[1].CurrentTabID)
	assert.Equal(t, open.ID, *byNumber[1].CurrentTabID)

	assert.Equal(t, table.StatusAwaitingPayment, byNumber[2].Status)
	assert.Equal(t, awaiting.ID, *byNumber[2].CurrentTabID)

	assert.Equal(t, table.StatusFree, byNumber[3].Status)
	assert.Nil(t, byNumber[3].CurrentTabID)
}

func TestTableService_Get(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seeded := f.store.SeedTable(7)

	got, err := f.tables.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Number)
	assert.True(t, got.IsFree())

	_, err = f.tables.Get(ctx, "00000000-0000-0000-0000-000000000009")
	assert.ErrorIs(t, err, table.ErrTableNotFound)
}

func TestTableService_OpenTab(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seeded := f.store.SeedTable(4)

	created, err := f.tables.OpenTab(ctx, seeded.ID, "Família Souza", "user-2")
	require.NoError(t, err)
	assert.Equal(t, tab.KindTable, created.Kind)
	require.NotNil(t, created.TableNumber)
	assert.Equal(t, 4, *created.TableNumber)
	assert.Equal(t, "user-2", created.CreatedBy)

	tbl, _ := f.store.TableByNumber(4)
	assert.Equal(t, table.StatusOccupied, tbl.Status)

	_, err = f.tables.OpenTab(ctx, seeded.ID, "", "user-2")
	assert.ErrorIs(t, err, table.ErrTableNotFree)
}

func TestTableService_TableIsReusableAfterClosing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seeded := f.store.SeedTable(8)

	first, err := f.tables.OpenTab(ctx, seeded.ID, "", "user-1")
	require.NoError(t, err)
	_, err = f.tabs.OverrideStatus(ctx, first.ID, "closed")
	require.NoError(t, err)

	second, err := f.tables.OpenTab(ctx, seeded.ID, "", "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := f.tables.Get(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentTabID)
	assert.Equal(t, second.ID, *got.CurrentTabID)
}
