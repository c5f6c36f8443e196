package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// TableService expõe as mesas com o status projetado das comandas
type TableService struct {
	uow    UnitOfWork
	logger logger.Logger
}

// NewTableService cria uma nova instância de TableService
func NewTableService(uow UnitOfWork, log logger.Logger) *TableService {
	return &TableService{uow: uow, logger: log}
}

// List lista as mesas, conciliadas com as comandas ativas no momento da leitura
func (s *TableService) List(ctx context.Context) ([]*table.Table, error) {
	var tables []*table.Table
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		var err error
		tables, err = repos.Tables.List(ctx)
		if err != nil {
			return fmt.Errorf("erro ao listar mesas: %w", err)
		}
		active, err := activeTabsByTable(ctx, repos)
		if err != nil {
			return err
		}
		for _, t := range tables {
			t.Reconcile(active[t.Number])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// Get retorna uma mesa conciliada com sua comanda ativa
func (s *TableService) Get(ctx context.Context, id string) (*table.Table, error) {
	if err := validateID(id, "id da mesa inválido"); err != nil {
		return nil, err
	}

	var result *table.Table
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		t, err := repos.Tables.FindByID(ctx, id)
		if err != nil {
			return err
		}
		active, err := activeTabsByTable(ctx, repos)
		if err != nil {
			return err
		}
		t.Reconcile(active[t.Number])
		result = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// OpenTab abre uma comanda de mesa; a mesa precisa estar livre
func (s *TableService) OpenTab(ctx context.Context, tableID, customerName, createdBy string) (*tab.Tab, error) {
	if err := validateID(tableID, "id da mesa inválido"); err != nil {
		return nil, err
	}

	var created *tab.Tab
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		tbl, err := repos.Tables.FindByID(ctx, tableID)
		if err != nil {
			return err
		}
		if !tbl.IsFree() {
			return table.ErrTableNotFree
		}
		number := tbl.Number
		t, err := tab.NewTab(tab.KindTable, customerName, &number, createdBy)
		if err != nil {
			return err
		}
		if err := openTab(ctx, repos, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comanda aberta na mesa", "tab_id", created.ID, "table_number", *created.TableNumber)
	return created, nil
}

func activeTabsByTable(ctx context.Context, repos Repositories) (map[int]*tab.Tab, error) {
	tabs, err := repos.Tabs.ListActiveWithTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar comandas ativas: %w", err)
	}
	byNumber := make(map[int]*tab.Tab, len(tabs))
	for _, t := range tabs {
		if t.TableNumber == nil {
			continue
		}
		// a mais recente prevalece
		if current, ok := byNumber[*t.TableNumber]; !ok || t.CreatedAt.After(current.CreatedAt) {
			byNumber[*t.TableNumber] = t
		}
	}
	return byNumber, nil
}
