package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = apperror.Validation("valor pago deve ser maior que zero")
	ErrEmptyMethod    = apperror.Validation("forma de pagamento não informada")
	ErrEmptyTab       = apperror.Validation("comanda não informada")
	ErrSubTabRequired = apperror.Validation("comanda dividida: informe a subcomanda do pagamento")
)

// Formas de pagamento usuais; o campo é livre
const (
	MethodCash   = "Dinheiro"
	MethodPIX    = "PIX"
	MethodCredit = "CartaoCredito"
	MethodDebit  = "CartaoDebito"
)

// Payment representa um lançamento de pagamento. Nunca é alterado nem removido.
type Payment struct {
	ID       string          `json:"id"`
	TabID    string          `json:"tab_id"`
	SubTabID *string         `json:"sub_tab_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	PaidAt   time.Time       `json:"paid_at"`
}

// NewPayment cria um novo pagamento
func NewPayment(tabID string, subTabID *string, amount decimal.Decimal, method string) (*Payment, error) {
	if tabID == "" {
		return nil, ErrEmptyTab
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, ErrEmptyMethod
	}

	return &Payment{
		ID:       uuid.New().String(),
		TabID:    tabID,
		SubTabID: subTabID,
		Amount:   amount,
		Method:   method,
		PaidAt:   time.Now().UTC(),
	}, nil
}

// BelongsToSubTab informa se o pagamento foi feito para a subcomanda informada
func (p *Payment) BelongsToSubTab(subTabID string) bool {
	return p.SubTabID != nil && *p.SubTabID == subTabID
}

// IsDirect informa se o pagamento foi feito diretamente na comanda
func (p *Payment) IsDirect() bool {
	return p.SubTabID == nil
}
