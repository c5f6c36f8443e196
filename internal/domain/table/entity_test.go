package table

import (
	"testing"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStatus(t *testing.T) {
	assert.Equal(t, StatusOccupied, ProjectStatus(tab.StatusOpen))
	assert.Equal(t, StatusAwaitingPayment, ProjectStatus(tab.StatusAwaitingPayment))
	assert.Equal(t, StatusFree, ProjectStatus(tab.StatusClosed))
}

func TestReconcile(t *testing.T) {
	tbl := &Table{ID: "t1", Number: 4, Status: StatusFree}
	tbl.Reconcile(nil)
	assert.True(t, tbl.IsFree())
	assert.Nil(t, tbl.CurrentTabID)

	n := 4
	active, err := tab.NewTab(tab.KindTable, "", &n, "u")
	require.NoError(t, err)
	active.Status = tab.StatusAwaitingPayment

	tbl.Reconcile(active)
	assert.Equal(t, StatusAwaitingPayment, tbl.Status)
	require.NotNil(t, tbl.CurrentTabID)
	assert.Equal(t, active.ID, *tbl.CurrentTabID)
}
