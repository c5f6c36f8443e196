package tab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNewTab(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		customer    string
		tableNumber *int
		wantErr     error
	}{
		{"mesa com número", KindTable, "", intPtr(5), nil},
		{"mesa sem número", KindTable, "", nil, ErrTableNumberRequired},
		{"balcão com cliente", KindCounter, "Ana", nil, nil},
		{"balcão sem cliente", KindCounter, "  ", nil, ErrCustomerNameRequired},
		{"entrega sem cliente", KindDelivery, "", nil, ErrCustomerNameRequired},
		{"balcão com mesa", KindCounter, "Ana", intPtr(3), ErrTableNumberNotAllowed},
		{"tipo inválido", Kind("drive"), "Ana", nil, ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTab(tt.kind, tt.customer, tt.tableNumber, "garcom-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, StatusOpen, got.Status)
			assert.Equal(t, "garcom-1", got.CreatedBy)
			assert.Nil(t, got.ClosedAt)
		})
	}
}

func TestParseKindAndStatus(t *testing.T) {
	k, err := ParseKind(" Delivery ")
	require.NoError(t, err)
	assert.Equal(t, KindDelivery, k)

	_, err = ParseKind("")
	assert.ErrorIs(t, err, ErrInvalidKind)

	s, err := ParseStatus("AWAITING_PAYMENT")
	require.NoError(t, err)
	assert.Equal(t, StatusAwaitingPayment, s)

	_, err = ParseStatus("paid")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplyStatus(t *testing.T) {
	tb, err := NewTab(KindCounter, "Ana", nil, "u")
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	tb.ApplyStatus(StatusClosed, now)
	assert.True(t, tb.IsClosed())
	require.NotNil(t, tb.ClosedAt)
	assert.Equal(t, now, *tb.ClosedAt)

	tb.ApplyStatus(StatusOpen, now.Add(time.Minute))
	assert.False(t, tb.IsClosed())
	assert.Nil(t, tb.ClosedAt)
}

func TestDisplayStatus(t *testing.T) {
	table, _ := NewTab(KindTable, "", intPtr(1), "u")
	counter, _ := NewTab(KindCounter, "Ana", nil, "u")

	assert.Equal(t, "occupied", table.DisplayStatus())
	assert.Equal(t, "open", counter.DisplayStatus())

	table.ApplyStatus(StatusAwaitingPayment, time.Now())
	assert.Equal(t, "awaiting_payment", table.DisplayStatus())
}

func TestNewSubTab(t *testing.T) {
	s := NewSubTab("tab-1", "  Bia ")
	assert.Equal(t, "tab-1", s.TabID)
	assert.Equal(t, "Bia", s.CustomerName)
	assert.Equal(t, StatusOpen, s.Status)
	assert.False(t, s.IsClosed())
}
