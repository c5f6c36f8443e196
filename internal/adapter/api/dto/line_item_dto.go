package dto

import (
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
)

// AddItemRequest representa um pedido lançado em /tabs/{id}/items
type AddItemRequest struct {
	SubTabID  *string `json:"sub_tab_id,omitempty"`
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" example:"2"`
}

// CreateLineItemRequest representa um pedido lançado direto em /line-items
type CreateLineItemRequest struct {
	TabID     string  `json:"tab_id,omitempty"`
	SubTabID  *string `json:"sub_tab_id,omitempty"`
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" example:"2"`
}

// LineItemResponse representa um item de pedido
type LineItemResponse struct {
	ID        string    `json:"id"`
	TabID     string    `json:"tab_id"`
	SubTabID  *string   `json:"sub_tab_id,omitempty"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Subtotal  string    `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLineItemResponse converte um item para a resposta
func ToLineItemResponse(i *lineitem.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:        i.ID,
		TabID:     i.TabID,
		SubTabID:  i.SubTabID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: money(i.UnitPrice),
		Subtotal:  money(i.Subtotal()),
		CreatedAt: i.CreatedAt,
	}
}

// ToLineItemResponses converte uma lista de itens
func ToLineItemResponses(items []*lineitem.LineItem) []LineItemResponse {
	resp := make([]LineItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, ToLineItemResponse(i))
	}
	return resp
}
