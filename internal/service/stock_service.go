package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// CriticalItem é um produto com estoque baixo ou esgotado
type CriticalItem struct {
	ProductID    string             `json:"product_id"`
	Name         string             `json:"name"`
	Quantity     int                `json:"quantity"`
	MinAlert     int                `json:"min_alert"`
	Availability stock.Availability `json:"availability"`
}

// StockService expõe as consultas do livro de estoque
type StockService struct {
	uow    UnitOfWork
	cache  *AvailabilityCache
	logger logger.Logger
}

// NewStockService cria uma nova instância de StockService
func NewStockService(uow UnitOfWork, cache *AvailabilityCache, log logger.Logger) *StockService {
	return &StockService{uow: uow, cache: cache, logger: log}
}

// Check verifica a disponibilidade dos itens sem alterar o estoque
func (s *StockService) Check(ctx context.Context, items []stock.ItemRequest) (stock.CheckResult, error) {
	if len(items) == 0 {
		return stock.CheckResult{}, stock.ErrEmptyItems
	}
	for _, item := range items {
		if err := validateID(item.ProductID, "id do produto inválido"); err != nil {
			return stock.CheckResult{}, err
		}
	}

	var result stock.CheckResult
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		var err error
		result, err = NewStockLedger(repos, s.cache, s.logger).CheckStock(ctx, items)
		return err
	})
	if err != nil {
		return stock.CheckResult{}, err
	}
	return result, nil
}

// Critical lista os produtos com estoque baixo ou esgotado
func (s *StockService) Critical(ctx context.Context) ([]CriticalItem, error) {
	var items []CriticalItem
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		stocks, err := repos.Stock.ListCritical(ctx)
		if err != nil {
			return fmt.Errorf("erro ao listar estoque crítico: %w", err)
		}
		ids := make([]string, 0, len(stocks))
		for _, st := range stocks {
			ids = append(ids, st.ProductID)
		}
		products, err := repos.Products.FindByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("erro ao buscar produtos: %w", err)
		}

		items = make([]CriticalItem, 0, len(stocks))
		for _, st := range stocks {
			items = append(items, CriticalItem{
				ProductID:    st.ProductID,
				Name:         productName(products, st.ProductID),
				Quantity:     st.Quantity,
				MinAlert:     st.MinAlert,
				Availability: stock.Classify(st.Quantity, st.MinAlert),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
