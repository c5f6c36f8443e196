package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// StockLedger opera o estoque dentro de uma unidade de trabalho
type StockLedger struct {
	stock    stock.Repository
	catalog  stock.AvailabilityCatalog
	products product.Reader
	cache    *AvailabilityCache
	logger   logger.Logger
}

// NewStockLedger cria um StockLedger sobre os repositórios da transação
func NewStockLedger(repos Repositories, cache *AvailabilityCache, log logger.Logger) *StockLedger {
	return &StockLedger{
		stock:    repos.Stock,
		catalog:  repos.Availability,
		products: repos.Products,
		cache:    cache,
		logger:   log,
	}
}

// CheckStock verifica, sem alterar nada, se há saldo para todos os itens.
// Produto sem registro de estoque conta como saldo zero. Só retorna erro em
// falha de persistência; falta de saldo vem no resultado.
func (l *StockLedger) CheckStock(ctx context.Context, items []stock.ItemRequest) (stock.CheckResult, error) {
	grouped := stock.Aggregate(items)
	if len(grouped) == 0 {
		return stock.CheckResult{Success: true}, nil
	}

	ids := productIDs(grouped)
	stocks, err := l.stock.FindByProductIDs(ctx, ids)
	if err != nil {
		return stock.CheckResult{}, fmt.Errorf("erro ao buscar estoque: %w", err)
	}
	products, err := l.products.FindByIDs(ctx, ids)
	if err != nil {
		return stock.CheckResult{}, fmt.Errorf("erro ao buscar produtos: %w", err)
	}

	for _, item := range grouped {
		available := 0
		if s, ok := stocks[item.ProductID]; ok {
			available = s.Quantity
		}
		if available < item.Quantity {
			return stock.CheckResult{
				Success: false,
				Message: stock.ShortageMessage(productName(products, item.ProductID), item.Quantity-available),
			}, nil
		}
	}

	return stock.CheckResult{Success: true}, nil
}

// DecreaseStock baixa o estoque sem deixar saldo negativo e reclassifica a
// disponibilidade. Produtos sem registro de estoque são ignorados.
func (l *StockLedger) DecreaseStock(ctx context.Context, items []stock.ItemRequest) error {
	for _, item := range stock.Aggregate(items) {
		s, found, err := l.stock.DecrementFloored(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("erro ao baixar estoque: %w", err)
		}
		if !found {
			continue
		}
		if err := l.reclassify(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Reserve verifica e baixa o estoque de cada produto em uma única instrução
// condicional, eliminando a janela entre verificação e baixa. Na primeira
// falta retorna erro de estoque insuficiente; a transação desfaz as baixas anteriores.
func (l *StockLedger) Reserve(ctx context.Context, items []stock.ItemRequest) error {
	for _, item := range stock.Aggregate(items) {
		s, ok, err := l.stock.DecrementIfAvailable(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("erro ao baixar estoque: %w", err)
		}
		if !ok {
			return l.shortage(ctx, item)
		}
		if err := l.reclassify(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (l *StockLedger) shortage(ctx context.Context, item stock.ItemRequest) error {
	stocks, err := l.stock.FindByProductIDs(ctx, []string{item.ProductID})
	if err != nil {
		return fmt.Errorf("erro ao buscar estoque: %w", err)
	}
	products, err := l.products.FindByIDs(ctx, []string{item.ProductID})
	if err != nil {
		return fmt.Errorf("erro ao buscar produtos: %w", err)
	}

	available := 0
	if s, ok := stocks[item.ProductID]; ok {
		available = s.Quantity
	}
	missing := item.Quantity - available
	if missing < 1 {
		missing = 1
	}
	return apperror.InsufficientStock(stock.ShortageMessage(productName(products, item.ProductID), missing))
}

func (l *StockLedger) reclassify(ctx context.Context, s *stock.Stock) error {
	availability := stock.Classify(s.Quantity, s.MinAlert)
	id, err := l.cache.Resolve(ctx, l.catalog, availability)
	if err != nil {
		return err
	}
	if err := l.stock.SetAvailability(ctx, s.ProductID, id); err != nil {
		return fmt.Errorf("erro ao atualizar disponibilidade: %w", err)
	}
	s.AvailabilityID = id
	s.Availability = availability
	s.UpdatedAt = time.Now().UTC()

	if availability != stock.InStock {
		l.logger.Warn("estoque crítico", "product_id", s.ProductID, "quantity", s.Quantity, "availability", availability)
	}
	return nil
}

func productIDs(items []stock.ItemRequest) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

func productName(products map[string]*product.Product, id string) string {
	if p, ok := products[id]; ok && p.Name != "" {
		return p.Name
	}
	return id
}
