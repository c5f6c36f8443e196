package dto

import (
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/settlement"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
)

// CreateTabRequest representa os dados para abertura de comanda
type CreateTabRequest struct {
	Kind         string `json:"kind" binding:"required" example:"counter"`
	CustomerName string `json:"customer_name" example:"Ana"`
	TableNumber  *int   `json:"table_number,omitempty" example:"5"`
}

// UpdateTabStatusRequest representa a alteração administrativa de status
type UpdateTabStatusRequest struct {
	Status string `json:"status" binding:"required" example:"closed"`
}

// SplitTabRequest representa a divisão da comanda em subcomandas
type SplitTabRequest struct {
	CustomerNames []string `json:"customer_names" binding:"required"`
}

// TabResponse representa a comanda sem itens
type TabResponse struct {
	ID            string     `json:"id"`
	Number        int64      `json:"number"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	DisplayStatus string     `json:"display_status"`
	CustomerName  string     `json:"customer_name,omitempty"`
	TableNumber   *int       `json:"table_number,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	CreatedBy     string     `json:"created_by"`
}

// TabDetailResponse representa a comanda com itens, pagamentos, subcomandas e saldos.
// Items e Payments trazem apenas os lançamentos feitos direto na comanda.
type TabDetailResponse struct {
	TabResponse
	Items    []LineItemResponse `json:"items"`
	Payments []PaymentResponse  `json:"payments"`
	SubTabs  []SubTabResponse   `json:"sub_tabs"`
	Total    string             `json:"total"`
	Paid     string             `json:"paid"`
	Balance  string             `json:"balance"`
}

// TabListResponse representa uma página de comandas
type TabListResponse struct {
	Tabs     []TabResponse `json:"tabs"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// UpdateTabStatusResponse representa o resultado da alteração de status
type UpdateTabStatusResponse struct {
	Tab         TabResponse `json:"tab"`
	TableStatus *string     `json:"table_status,omitempty"`
}

// SubTabResponse representa uma subcomanda com itens, pagamentos e saldo
type SubTabResponse struct {
	ID           string             `json:"id"`
	TabID        string             `json:"tab_id"`
	CustomerName string             `json:"customer_name,omitempty"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []LineItemResponse `json:"items"`
	Payments     []PaymentResponse  `json:"payments"`
	Total        string             `json:"total"`
	Paid         string             `json:"paid"`
	Balance      string             `json:"balance"`
}

// ToTabResponse converte uma comanda para a resposta
func ToTabResponse(t *tab.Tab) TabResponse {
	return TabResponse{
		ID:            t.ID,
		Number:        t.Number,
		Kind:          string(t.Kind),
		Status:        string(t.Status),
		DisplayStatus: t.DisplayStatus(),
		CustomerName:  t.CustomerName,
		TableNumber:   t.TableNumber,
		CreatedAt:     t.CreatedAt,
		ClosedAt:      t.ClosedAt,
		CreatedBy:     t.CreatedBy,
	}
}

// ToUpdateTabStatusResponse converte a comanda alterada e o status projetado na mesa
func ToUpdateTabStatusResponse(t *tab.Tab) UpdateTabStatusResponse {
	resp := UpdateTabStatusResponse{Tab: ToTabResponse(t)}
	if t.HasTable() {
		st := string(table.ProjectStatus(t.Status))
		resp.TableStatus = &st
	}
	return resp
}

// ToTabListResponse converte uma página de comandas
func ToTabListResponse(tabs []*tab.Tab, page, pageSize int) TabListResponse {
	items := make([]TabResponse, 0, len(tabs))
	for _, t := range tabs {
		items = append(items, ToTabResponse(t))
	}
	return TabListResponse{Tabs: items, Page: page, PageSize: pageSize}
}

// ToTabDetailResponse converte o resumo da comanda
func ToTabDetailResponse(s *settlement.TabSummary) TabDetailResponse {
	resp := TabDetailResponse{
		TabResponse: ToTabResponse(s.Tab),
		Items:       ToLineItemResponses(s.Items),
		Payments:    ToPaymentResponses(s.Payments),
		SubTabs:     make([]SubTabResponse, 0, len(s.SubTabs)),
		Total:       money(s.Totals.Owed),
		Paid:        money(s.Totals.Paid),
		Balance:     money(s.Totals.Balance),
	}
	for _, sub := range s.SubTabs {
		resp.SubTabs = append(resp.SubTabs, ToSubTabResponse(sub))
	}
	return resp
}

// ToSubTabResponse converte o resumo da subcomanda
func ToSubTabResponse(s *settlement.SubTabSummary) SubTabResponse {
	return SubTabResponse{
		ID:           s.SubTab.ID,
		TabID:        s.SubTab.TabID,
		CustomerName: s.SubTab.CustomerName,
		Status:       string(s.SubTab.Status),
		CreatedAt:    s.SubTab.CreatedAt,
		Items:        ToLineItemResponses(s.Items),
		Payments:     ToPaymentResponses(s.Payments),
		Total:        money(s.Totals.Owed),
		Paid:         money(s.Totals.Paid),
		Balance:      money(s.Totals.Balance),
	}
}

// ToNewSubTabResponses converte subcomandas recém-criadas, ainda sem lançamentos
func ToNewSubTabResponses(subs []*tab.SubTab) []SubTabResponse {
	resp := make([]SubTabResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, ToSubTabResponse(settlement.SummarizeSubTab(sub, nil, nil)))
	}
	return resp
}
