package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUnknownProduct = apperror.Validation("produto não encontrado")

// AddLineItemInput são os dados de um novo item de pedido
type AddLineItemInput struct {
	TabID     string
	SubTabID  *string
	ProductID string
	Quantity  int
}

// LineItemService lança itens em comandas e subcomandas
type LineItemService struct {
	uow    UnitOfWork
	cache  *AvailabilityCache
	logger logger.Logger
}

// NewLineItemService cria uma nova instância de LineItemService
func NewLineItemService(uow UnitOfWork, cache *AvailabilityCache, log logger.Logger) *LineItemService {
	return &LineItemService{uow: uow, cache: cache, logger: log}
}

// Add cria o item e baixa o estoque na mesma transação. Quando a subcomanda
// é informada, a comanda do item é sempre a dona da subcomanda.
func (s *LineItemService) Add(ctx context.Context, in AddLineItemInput) (*lineitem.LineItem, error) {
	if in.Quantity <= 0 {
		return nil, lineitem.ErrInvalidQuantity
	}
	if in.ProductID == "" {
		return nil, lineitem.ErrEmptyProduct
	}
	if err := validateID(in.ProductID, "id do produto inválido"); err != nil {
		return nil, err
	}
	if in.SubTabID != nil {
		if err := validateID(*in.SubTabID, "id da subcomanda inválido"); err != nil {
			return nil, err
		}
	} else {
		if in.TabID == "" {
			return nil, lineitem.ErrEmptyTab
		}
		if err := validateID(in.TabID, "id da comanda inválido"); err != nil {
			return nil, err
		}
	}

	ctx, span := tracer.Start(ctx, "LineItemService.Add")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", in.ProductID), attribute.Int("quantity", in.Quantity))

	var created *lineitem.LineItem
	err := s.uow.Do(ctx, func(ctx context.Context, repos Repositories) error {
		tabID := in.TabID
		if in.SubTabID != nil {
			sub, err := repos.SubTabs.FindByID(ctx, *in.SubTabID)
			if err != nil {
				return err
			}
			if sub.IsClosed() {
				return tab.ErrSubTabClosed
			}
			tabID = sub.TabID
		}

		t, err := repos.Tabs.FindByIDForUpdate(ctx, tabID)
		if err != nil {
			return err
		}
		if t.IsClosed() {
			return tab.ErrTabClosed
		}

		if in.SubTabID == nil {
			subs, err := repos.SubTabs.ListByTab(ctx, t.ID)
			if err != nil {
				return fmt.Errorf("erro ao listar subcomandas: %w", err)
			}
			if len(subs) > 0 {
				return tab.ErrSubTabRequired
			}
		}

		p, err := repos.Products.FindByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return ErrUnknownProduct
			}
			return err
		}
		if !p.Active {
			return product.ErrProductInactive
		}

		item, err := lineitem.NewLineItem(t.ID, in.SubTabID, p.ID, in.Quantity, p.Price)
		if err != nil {
			return err
		}
		if err := repos.LineItems.Create(ctx, item); err != nil {
			return fmt.Errorf("erro ao salvar pedido: %w", err)
		}

		ledger := NewStockLedger(repos, s.cache, s.logger)
		if err := ledger.Reserve(ctx, []stock.ItemRequest{{ProductID: p.ID, Quantity: in.Quantity}}); err != nil {
			return err
		}

		created = item
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("pedido lançado", "tab_id", created.TabID, "line_item_id", created.ID, "product_id", created.ProductID, "quantity", created.Quantity)
	return created, nil
}
