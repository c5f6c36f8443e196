package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/settlement"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// RecordPaymentInput são os dados de um pagamento
type RecordPaymentInput struct {
	TabID    string
	SubTabID *string
	Amount   decimal.Decimal
	Method   string
}

// PaymentResult é o pagamento criado e o estado resultante da comanda
type PaymentResult struct {
	Payment       *payment.Payment
	TabStatus     tab.Status
	SubTabStatus  *tab.Status
	TabBalance    decimal.Decimal
	SubTabBalance *decimal.Decimal
	TableStatus   *table.Status
	TableFreed    bool
}

// PaymentService registra pagamentos e recalcula saldos e status
type PaymentService struct {
	uow    UnitOfWork
	logger logger.Logger
}

// NewPaymentService cria uma nova instância de PaymentService
func NewPaymentService(uow UnitOfWork, log logger.Logger) *PaymentService {
	return &PaymentService{uow: uow, logger: log}
}

// Record acrescenta o pagamento e, na mesma transação, recalcula a
// subcomanda (se houver), a comanda e a mesa vinculada
func (s *PaymentService) Record(ctx context.Context, in RecordPaymentInput) (*PaymentResult, error) {
	if err := validateID(in.TabID, "id da comanda inválido"); err != nil {
		return nil, err
	}
	if in.SubTabID != nil {
		if err := validateID(*in.SubTabID, "id da subcomanda inválido"); err != nil {
			return nil, err
		}
	}
	p, err := payment.NewPayment(in.TabID, in.SubTabID, in.Amount, in.Method)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "PaymentService.Record")
	defer span.End()
	span.SetAttributes(attribute.String("tab.id", in.TabID), attribute.String("payment.amount", in.Amount.String()))

	var result *PaymentResult
	var tableNumber *int
	err = s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		t, err := repos.Tabs.FindByIDForUpdate(ctx, in.TabID)
		if err != nil {
			return err
		}
		if t.IsClosed() {
			return tab.ErrTabClosed
		}

		var sub *tab.SubTab
		if in.SubTabID != nil {
			sub, err = repos.SubTabs.FindByID(ctx, *in.SubTabID)
			if err != nil {
				return err
			}
			if sub.TabID != t.ID {
				return tab.ErrSubTabNotFound
			}
			if sub.IsClosed() {
				return tab.ErrSubTabClosed
			}
		} else {
			subs, err := repos.SubTabs.ListByTab(ctx, t.ID)
			if err != nil {
				return fmt.Errorf("erro ao listar subcomandas: %w", err)
			}
			// comanda dividida só é quitada pelas subcomandas
			if len(subs) > 0 {
				return payment.ErrSubTabRequired
			}
		}

		if err := repos.Payments.Create(ctx, p); err != nil {
			return fmt.Errorf("erro ao salvar pagamento: %w", err)
		}

		result, err = settle(ctx, repos, t, sub)
		if err != nil {
			return err
		}
		result.Payment = p
		tableNumber = t.TableNumber
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("pagamento registrado",
		"tab_id", in.TabID, "payment_id", p.ID, "amount", p.Amount.String(),
		"tab_status", result.TabStatus, "balance", result.TabBalance.String())
	if result.TableFreed && tableNumber != nil {
		s.logger.Info("mesa liberada", "tab_id", in.TabID, "table_number", *tableNumber)
	}
	return result, nil
}

// settle recalcula, nesta ordem, a subcomanda, a comanda e a mesa
func settle(ctx context.Context, repos Repositories, t *tab.Tab, sub *tab.SubTab) (*PaymentResult, error) {
	items, err := repos.LineItems.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	payments, err := repos.Payments.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pagamentos: %w", err)
	}

	result := &PaymentResult{}
	if sub != nil {
		totals := settlement.ForSubTab(sub.ID, items, payments)
		next := settlement.NextSubTabStatus(sub.Status, totals)
		if next != sub.Status {
			sub.Status = next
			if err := repos.SubTabs.UpdateStatus(ctx, sub); err != nil {
				return nil, fmt.Errorf("erro ao atualizar subcomanda: %w", err)
			}
		}
		status := sub.Status
		balance := totals.Balance
		result.SubTabStatus = &status
		result.SubTabBalance = &balance
	}

	subs, err := repos.SubTabs.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar subcomandas: %w", err)
	}
	if sub != nil {
		for i := range subs {
			if subs[i].ID == sub.ID {
				subs[i] = sub
			}
		}
	}

	totals := settlement.ForTab(items, payments)
	previous := t.Status
	t.ApplyStatus(settlement.NextTabStatus(totals, settlement.SubTabStatuses(subs)), time.Now().UTC())
	if err := repos.Tabs.UpdateStatus(ctx, t); err != nil {
		return nil, fmt.Errorf("erro ao atualizar status da comanda: %w", err)
	}

	tableStatus, err := projectTable(ctx, repos, t)
	if err != nil {
		return nil, err
	}

	result.TabStatus = t.Status
	result.TabBalance = totals.Balance
	result.TableStatus = tableStatus
	result.TableFreed = tableStatus != nil && previous != tab.StatusClosed && *tableStatus == table.StatusFree
	return result, nil
}

// ListByTab lista os pagamentos da comanda, inclusive os das subcomandas
func (s *PaymentService) ListByTab(ctx context.Context, tabID string) ([]*payment.Payment, error) {
	if err := validateID(tabID, "id da comanda inválido"); err != nil {
		return nil, err
	}

	var payments []*payment.Payment
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := repos.Tabs.FindByID(ctx, tabID); err != nil {
			return err
		}
		var err error
		payments, err = repos.Payments.ListByTab(ctx, tabID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}
