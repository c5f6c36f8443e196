package dto

import (
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/service"
)

// StockItemRequest representa a quantidade solicitada de um produto
type StockItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// StockCheckRequest representa a verificação de estoque de um conjunto de itens
type StockCheckRequest struct {
	Items []StockItemRequest `json:"items"`
}

// StockCheckResponse representa o resultado da verificação
type StockCheckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CriticalStockResponse representa um produto com estoque baixo ou zerado
type CriticalStockResponse struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	MinAlert     int    `json:"min_alert"`
	Availability string `json:"availability"`
}

// ToItemRequests converte a requisição para o domínio
func (r StockCheckRequest) ToItemRequests() []stock.ItemRequest {
	items := make([]stock.ItemRequest, 0, len(r.Items))
	for _, i := range r.Items {
		items = append(items, stock.ItemRequest{ProductID: i.ProductID, Quantity: i.Quantity})
	}
	return items
}

// ToCriticalStockResponses converte os itens críticos
func ToCriticalStockResponses(items []service.CriticalItem) []CriticalStockResponse {
	resp := make([]CriticalStockResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, CriticalStockResponse{
			ProductID:    i.ProductID,
			Name:         i.Name,
			Quantity:     i.Quantity,
			MinAlert:     i.MinAlert,
			Availability: string(i.Availability),
		})
	}
	return resp
}
