package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/settlement"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

var ErrEmptySubTabName = apperror.Validation("nome do cliente da subcomanda é obrigatório")

// CreateTabInput são os dados de abertura de uma comanda
type CreateTabInput struct {
	Kind         string
	CustomerName string
	TableNumber  *int
	CreatedBy    string
}

// TabService governa o ciclo de vida das comandas e subcomandas
type TabService struct {
	uow    UnitOfWork
	logger logger.Logger
}

// NewTabService cria uma nova instância de TabService
func NewTabService(uow UnitOfWork, log logger.Logger) *TabService {
	return &TabService{uow: uow, logger: log}
}

// Create abre uma comanda. Se houver mesa, ela precisa estar livre e passa a ocupada.
func (s *TabService) Create(ctx context.Context, in CreateTabInput) (*tab.Tab, error) {
	kind, err := tab.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	t, err := tab.NewTab(kind, in.CustomerName, in.TableNumber, in.CreatedBy)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		return openTab(ctx, repos, t)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comanda aberta", "tab_id", t.ID, "number", t.Number, "kind", t.Kind)
	return t, nil
}

func openTab(ctx context.Context, repos Repositories, t *tab.Tab) error {
	if t.HasTable() {
		if err := repos.Tables.Occupy(ctx, *t.TableNumber); err != nil {
			return err
		}
	}
	if err := repos.Tabs.Create(ctx, t); err != nil {
		return fmt.Errorf("erro ao salvar comanda: %w", err)
	}
	return nil
}

// Get retorna a comanda com itens, pagamentos, subcomandas e saldos
func (s *TabService) Get(ctx context.Context, id string) (*settlement.TabSummary, error) {
	if err := validateID(id, "id da comanda inválido"); err != nil {
		return nil, err
	}

	var summary *settlement.TabSummary
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		t, err := repos.Tabs.FindByID(ctx, id)
		if err != nil {
			return err
		}
		summary, err = loadSummary(ctx, repos, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func loadSummary(ctx context.Context, repos Repositories, t *tab.Tab) (*settlement.TabSummary, error) {
	subs, err := repos.SubTabs.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar subcomandas: %w", err)
	}
	items, err := repos.LineItems.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	payments, err := repos.Payments.ListByTab(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pagamentos: %w", err)
	}
	return settlement.Summarize(t, subs, items, payments), nil
}

// List lista as comandas com filtros opcionais de tipo e status
func (s *TabService) List(ctx context.Context, kind, status string, limit, offset int) ([]*tab.Tab, error) {
	filter := tab.Filter{Limit: limit, Offset: offset}
	if kind != "" {
		k, err := tab.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		filter.Kind = k
	}
	if status != "" {
		st, err := tab.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}

	var tabs []*tab.Tab
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		var err error
		tabs, err = repos.Tabs.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tabs, nil
}

// OverrideStatus força o status da comanda, ignorando a regra de pagamentos.
// A mesa vinculada acompanha a mudança; reabrir uma comanda fechada exige a mesa livre.
func (s *TabService) OverrideStatus(ctx context.Context, id, status string) (*tab.Tab, error) {
	if err := validateID(id, "id da comanda inválido"); err != nil {
		return nil, err
	}
	st, err := tab.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *tab.Tab
	err = s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		t, err := repos.Tabs.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		// reabrir a comanda volta a ocupar a mesa, que precisa estar livre
		if t.IsClosed() && st != tab.StatusClosed && t.HasTable() {
			if err := repos.Tables.Occupy(ctx, *t.TableNumber); err != nil {
				return err
			}
		}
		t.ApplyStatus(st, time.Now().UTC())
		if err := repos.Tabs.UpdateStatus(ctx, t); err != nil {
			return fmt.Errorf("erro ao atualizar status da comanda: %w", err)
		}
		if _, err := projectTable(ctx, repos, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("status da comanda alterado manualmente", "tab_id", updated.ID, "status", updated.Status)
	return updated, nil
}

// projectTable grava na mesa o status derivado da comanda, se houver mesa
func projectTable(ctx context.Context, repos Repositories, t *tab.Tab) (*table.Status, error) {
	if !t.HasTable() {
		return nil, nil
	}
	st := table.ProjectStatus(t.Status)
	if err := repos.Tables.ProjectStatus(ctx, *t.TableNumber, st); err != nil {
		return nil, fmt.Errorf("erro ao atualizar status da mesa: %w", err)
	}
	return &st, nil
}

// Split divide a comanda em subcomandas, uma por nome de cliente
func (s *TabService) Split(ctx context.Context, tabID string, names []string) ([]*tab.SubTab, error) {
	if err := validateID(tabID, "id da comanda inválido"); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, tab.ErrNoSubTabNames
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptySubTabName
		}
	}

	var created []*tab.SubTab
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		t, err := repos.Tabs.FindByIDForUpdate(ctx, tabID)
		if err != nil {
			return err
		}
		if t.IsClosed() {
			return tab.ErrTabClosed
		}

		items, err := repos.LineItems.ListByTab(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("erro ao listar pedidos: %w", err)
		}
		for _, item := range items {
			if item.IsDirect() {
				return tab.ErrSplitHasDirectItems
			}
		}
		payments, err := repos.Payments.ListByTab(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("erro ao listar pagamentos: %w", err)
		}
		for _, p := range payments {
			if p.IsDirect() {
				return tab.ErrSplitHasDirectItems
			}
		}

		created = make([]*tab.SubTab, 0, len(names))
		for _, name := range names {
			sub := tab.NewSubTab(t.ID, name)
			if err := repos.SubTabs.Create(ctx, sub); err != nil {
				return fmt.Errorf("erro ao salvar subcomanda: %w", err)
			}
			created = append(created, sub)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comanda dividida", "tab_id", tabID, "sub_tabs", len(created))
	return created, nil
}

// GetSubTab retorna uma subcomanda da comanda com seus itens, pagamentos e saldo
func (s *TabService) GetSubTab(ctx context.Context, tabID, subTabID string) (*settlement.SubTabSummary, error) {
	if err := validateID(tabID, "id da comanda inválido"); err != nil {
		return nil, err
	}
	if err := validateID(subTabID, "id da subcomanda inválido"); err != nil {
		return nil, err
	}

	var summary *settlement.SubTabSummary
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		sub, err := repos.SubTabs.FindByID(ctx, subTabID)
		if err != nil {
			return err
		}
		if sub.TabID != tabID {
			return tab.ErrSubTabNotFound
		}
		items, err := repos.LineItems.ListBySubTab(ctx, sub.ID)
		if err != nil {
			return fmt.Errorf("erro ao listar pedidos: %w", err)
		}
		payments, err := repos.Payments.ListBySubTab(ctx, sub.ID)
		if err != nil {
			return fmt.Errorf("erro ao listar pagamentos: %w", err)
		}
		summary = settlement.SummarizeSubTab(sub, items, payments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
