package lineitem

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	_, err := NewLineItem("tab", nil, "prod", 0, price)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewLineItem("tab", nil, " ", 1, price)
	assert.ErrorIs(t, err, ErrEmptyProduct)

	_, err = NewLineItem("", nil, "prod", 1, price)
	assert.ErrorIs(t, err, ErrEmptyTab)

	sub := "sub-1"
	item, err := NewLineItem("tab", &sub, "prod", 2, price)
	require.NoError(t, err)
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("20.00")))
	assert.True(t, item.BelongsToSubTab("sub-1"))
	assert.False(t, item.BelongsToSubTab("sub-2"))
	assert.False(t, item.IsDirect())
}
