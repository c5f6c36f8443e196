package dto

import (
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/shopspring/decimal"
)

// PaymentRequest representa um pagamento. amount aceita número ou texto decimal.
type PaymentRequest struct {
	TabID    string          `json:"tab_id" binding:"required"`
	SubTabID *string         `json:"sub_tab_id,omitempty"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"20.00"`
	Method   string          `json:"formapagamento" binding:"required" example:"pix"`
}

// PaymentResponse representa um pagamento registrado
type PaymentResponse struct {
	ID       string    `json:"id"`
	TabID    string    `json:"tab_id"`
	SubTabID *string   `json:"sub_tab_id,omitempty"`
	Amount   string    `json:"amount"`
	Method   string    `json:"formapagamento"`
	PaidAt   time.Time `json:"pagoem"`
}

// RecordPaymentResponse representa o pagamento e o estado resultante da comanda
type RecordPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	TabStatus     string          `json:"tab_status"`
	SubTabStatus  *string         `json:"sub_tab_status,omitempty"`
	TabBalance    string          `json:"tab_balance"`
	SubTabBalance *string         `json:"sub_tab_balance,omitempty"`
	TableStatus   *string         `json:"table_status,omitempty"`
	TableFreed    bool            `json:"table_freed"`
}

// ToPaymentResponse converte um pagamento para a resposta
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		TabID:    p.TabID,
		SubTabID: p.SubTabID,
		Amount:   money(p.Amount),
		Method:   p.Method,
		PaidAt:   p.PaidAt,
	}
}

// ToPaymentResponses converte uma lista de pagamentos
func ToPaymentResponses(payments []*payment.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, ToPaymentResponse(p))
	}
	return resp
}

// ToRecordPaymentResponse converte o resultado do registro de pagamento
func ToRecordPaymentResponse(r *service.PaymentResult) RecordPaymentResponse {
	resp := RecordPaymentResponse{
		Payment:    ToPaymentResponse(r.Payment),
		TabStatus:  string(r.TabStatus),
		TabBalance: money(r.TabBalance),
		TableFreed: r.TableFreed,
	}
	if r.SubTabStatus != nil {
		s := string(*r.SubTabStatus)
		resp.SubTabStatus = &s
	}
	if r.SubTabBalance != nil {
		b := money(*r.SubTabBalance)
		resp.SubTabBalance = &b
	}
	if r.TableStatus != nil {
		s := string(*r.TableStatus)
		resp.TableStatus = &s
	}
	return resp
}
