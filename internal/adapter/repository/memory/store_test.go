package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CommitsOnSuccess(t *testing.T) {
	s := NewStore()
	s.SeedTable(1)

	err := s.Do(context.Background(), func(ctx context.Context, repos service.Repositories) error {
		return repos.Tables.Occupy(ctx, 1)
	})
	require.NoError(t, err)

	tbl, ok := s.TableByNumber(1)
	require.True(t, ok)
	assert.Equal(t, table.StatusOccupied, tbl.Status)
}

func TestStore_RollsBackOnError(t *testing.T) {
	s := NewStore()
	s.SeedTable(1)
	p := s.SeedProduct("Água", decimal.NewFromInt(4), 10, 2)
	boom := errors.New("boom")

	err := s.Do(context.Background(), func(ctx context.Context, repos service.Repositories) error {
		if err := repos.Tables.Occupy(ctx, 1); err != nil {
			return err
		}
		if _, _, err := repos.Stock.DecrementIfAvailable(ctx, p.ID, 3); err != nil {
			return err
		}
		created, err := tab.NewTab(tab.KindCounter, "Ana", nil, "")
		if err != nil {
			return err
		}
		if err := repos.Tabs.Create(ctx, created); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tbl, _ := s.TableByNumber(1)
	assert.Equal(t, table.StatusFree, tbl.Status)
	st, _ := s.StockOf(p.ID)
	assert.Equal(t, 10, st.Quantity)

	err = s.Do(context.Background(), func(ctx context.Context, repos service.Repositories) error {
		tabs, err := repos.Tabs.List(ctx, tab.Filter{})
		require.NoError(t, err)
		assert.Empty(t, tabs)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CancelledContext(t *testing.T) {
	s := NewStore()
	s.SeedTable(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	// cancelado durante a transação: nada é confirmado
	ctx, cancel = context.WithCancel(context.Background())
	err = s.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		if err := repos.Tables.Occupy(ctx, 1); err != nil {
			return err
		}
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	tbl, _ := s.TableByNumber(1)
	assert.Equal(t, table.StatusFree, tbl.Status)
}

func TestStore_RollbackRestoresTabSequence(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	create := func(fail bool) (*tab.Tab, error) {
		created, _ := tab.NewTab(tab.KindCounter, "Ana", nil, "")
		err := s.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
			if err := repos.Tabs.Create(ctx, created); err != nil {
				return err
			}
			if fail {
				return errors.New("falha")
			}
			return nil
		})
		return created, err
	}

	first, err := create(false)
	require.NoError(t, err)
	_, err = create(true)
	require.Error(t, err)
	second, err := create(false)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, int64(2), second.Number)
}

func TestStore_OccupyIsCompareAndSet(t *testing.T) {
	s := NewStore()
	s.SeedTable(3)
	ctx := context.Background()

	occupy := func() error {
		return s.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
			return repos.Tables.Occupy(ctx, 3)
		})
	}
	require.NoError(t, occupy())
	assert.ErrorIs(t, occupy(), table.ErrTableNotFree)

	err := s.Do(ctx, func(ctx context.Context, repos service.Repositories) error {
		return repos.Tables.Occupy(ctx, 99)
	})
	assert.ErrorIs(t, err, table.ErrTableNotFound)
}
