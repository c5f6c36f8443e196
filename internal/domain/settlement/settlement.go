// Package settlement calcula saldos e as transições de status de comandas e subcomandas.
package settlement

import (
	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/shopspring/decimal"
)

// Totals agrupa valor devido, valor pago e saldo restante
type Totals struct {
	Owed    decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

// Balance é o devido menos o pago, nunca negativo
func Balance(owed, paid decimal.Decimal) decimal.Decimal {
	b := owed.Sub(paid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// NewTotals monta os totais a partir dos valores devido e pago
func NewTotals(owed, paid decimal.Decimal) Totals {
	return Totals{Owed: owed, Paid: paid, Balance: Balance(owed, paid)}
}

// ForTab soma todos os itens e pagamentos da comanda, inclusive os das subcomandas
func ForTab(items []*lineitem.LineItem, payments []*payment.Payment) Totals {
	owed := decimal.Zero
	for _, item := range items {
		owed = owed.Add(item.Subtotal())
	}
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return NewTotals(owed, paid)
}

// ForSubTab soma apenas os itens e pagamentos da subcomanda
func ForSubTab(subTabID string, items []*lineitem.LineItem, payments []*payment.Payment) Totals {
	owed := decimal.Zero
	for _, item := range items {
		if item.BelongsToSubTab(subTabID) {
			owed = owed.Add(item.Subtotal())
		}
	}
	paid := decimal.Zero
	for _, p := range payments {
		if p.BelongsToSubTab(subTabID) {
			paid = paid.Add(p.Amount)
		}
	}
	return NewTotals(owed, paid)
}

// NextTabStatus aplica a regra de transição da comanda após um pagamento.
// subStatuses são os status das subcomandas já recalculados.
func NextTabStatus(t Totals, subStatuses []tab.Status) tab.Status {
	hasSubs := len(subStatuses) > 0
	allClosed, anyOpen, anyAwaiting := true, false, false
	for _, s := range subStatuses {
		switch s {
		case tab.StatusClosed:
		case tab.StatusOpen:
			allClosed = false
			anyOpen = true
		case tab.StatusAwaitingPayment:
			allClosed = false
			anyAwaiting = true
		default:
			allClosed = false
		}
	}

	if t.Balance.IsZero() && (!hasSubs || allClosed) {
		return tab.StatusClosed
	}
	if (hasSubs && !allClosed && !anyOpen && anyAwaiting) ||
		(!hasSubs && t.Paid.IsPositive() && t.Balance.IsPositive()) {
		return tab.StatusAwaitingPayment
	}
	return tab.StatusOpen
}

// NextSubTabStatus aplica a regra de transição da subcomanda após um pagamento
func NextSubTabStatus(current tab.Status, t Totals) tab.Status {
	if t.Balance.IsZero() {
		return tab.StatusClosed
	}
	if t.Paid.IsPositive() {
		return tab.StatusAwaitingPayment
	}
	return current
}

// SubTabSummary é a subcomanda com seus itens, pagamentos e totais
type SubTabSummary struct {
	SubTab   *tab.SubTab
	Items    []*lineitem.LineItem
	Payments []*payment.Payment
	Totals   Totals
}

// TabSummary é a comanda completa com seus totais
type TabSummary struct {
	Tab      *tab.Tab
	Items    []*lineitem.LineItem
	Payments []*payment.Payment
	SubTabs  []*SubTabSummary
	Totals   Totals
}

// SummarizeSubTab monta o resumo de uma subcomanda
func SummarizeSubTab(sub *tab.SubTab, items []*lineitem.LineItem, payments []*payment.Payment) *SubTabSummary {
	summary := &SubTabSummary{
		SubTab:   sub,
		Items:    []*lineitem.LineItem{},
		Payments: []*payment.Payment{},
		Totals:   ForSubTab(sub.ID, items, payments),
	}
	for _, item := range items {
		if item.BelongsToSubTab(sub.ID) {
			summary.Items = append(summary.Items, item)
		}
	}
	for _, p := range payments {
		if p.BelongsToSubTab(sub.ID) {
			summary.Payments = append(summary.Payments, p)
		}
	}
	return summary
}

// Summarize monta o resumo da comanda. Items e Payments do resumo contêm
// apenas os lançamentos diretos; os das subcomandas ficam em SubTabs.
func Summarize(t *tab.Tab, subs []*tab.SubTab, items []*lineitem.LineItem, payments []*payment.Payment) *TabSummary {
	summary := &TabSummary{
		Tab:      t,
		Items:    []*lineitem.LineItem{},
		Payments: []*payment.Payment{},
		SubTabs:  make([]*SubTabSummary, 0, len(subs)),
		Totals:   ForTab(items, payments),
	}
	for _, item := range items {
		if item.IsDirect() {
			summary.Items = append(summary.Items, item)
		}
	}
	for _, p := range payments {
		if p.IsDirect() {
			summary.Payments = append(summary.Payments, p)
		}
	}
	for _, sub := range subs {
		summary.SubTabs = append(summary.SubTabs, SummarizeSubTab(sub, items, payments))
	}
	return summary
}

// SubTabStatuses extrai os status das subcomandas
func SubTabStatuses(subs []*tab.SubTab) []tab.Status {
	statuses := make([]tab.Status, 0, len(subs))
	for _, s := range subs {
		statuses = append(statuses, s.Status)
	}
	return statuses
}
