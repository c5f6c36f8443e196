package lineitem

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = apperror.Validation("quantidade deve ser maior que zero")
	ErrEmptyProduct    = apperror.Validation("produto não informado")
	ErrEmptyTab        = apperror.Validation("comanda ou subcomanda não informada")
)

// LineItem representa um pedido (item) lançado em uma comanda ou subcomanda
type LineItem struct {
	ID        string          `json:"id"`
	TabID     string          `json:"tab_id"`
	SubTabID  *string         `json:"sub_tab_id,omitempty"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // preço capturado no momento do pedido
	CreatedAt time.Time       `json:"created_at"`
}

// NewLineItem cria um novo item de pedido
func NewLineItem(tabID string, subTabID *string, productID string, quantity int, unitPrice decimal.Decimal) (*LineItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if strings.TrimSpace(productID) == "" {
		return nil, ErrEmptyProduct
	}
	if tabID == "" {
		return nil, ErrEmptyTab
	}

	return &LineItem{
		ID:        uuid.New().String(),
		TabID:     tabID,
		SubTabID:  subTabID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Subtotal retorna preço unitário vezes quantidade
func (i *LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// BelongsToSubTab informa se o item pertence à subcomanda informada
func (i *LineItem) BelongsToSubTab(subTabID string) bool {
	return i.SubTabID != nil && *i.SubTabID == subTabID
}

// IsDirect informa se o item foi lançado diretamente na comanda
func (i *LineItem) IsDirect() bool {
	return i.SubTabID == nil
}
