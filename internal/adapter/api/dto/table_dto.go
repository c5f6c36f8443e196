package dto

import (
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
)

// OpenTableTabRequest representa a abertura de comanda em uma mesa
type OpenTableTabRequest struct {
	CustomerName string `json:"customer_name"`
}

// TableResponse representa uma mesa com o status projetado
type TableResponse struct {
	ID           string  `json:"id"`
	Number       int     `json:"number"`
	Status       string  `json:"status"`
	CurrentTabID *string `json:"current_tab_id,omitempty"`
}

// ToTableResponse converte uma mesa para a resposta
func ToTableResponse(t *table.Table) TableResponse {
	return TableResponse{
		ID:           t.ID,
		Number:       t.Number,
		Status:       string(t.Status),
		CurrentTabID: t.CurrentTabID,
	}
}

// ToTableResponses converte uma lista de mesas
func ToTableResponses(tables []*table.Table) []TableResponse {
	resp := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, ToTableResponse(t))
	}
	return resp
}
