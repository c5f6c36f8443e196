package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/hugohenrick/erp-restaurante/internal/service")

// Repositories reúne os repositórios vinculados a uma mesma transação
type Repositories struct {
	Tabs         tab.Repository
	SubTabs      tab.SubTabRepository
	LineItems    lineitem.Repository
	Payments     payment.Repository
	Tables       table.Repository
	Stock        stock.Repository
	Availability stock.AvailabilityCatalog
	Products     product.Reader
}

// UnitOfWork executa fn dentro de uma transação: tudo ou nada.
// Erro retornado por fn, ou contexto cancelado, desfaz todas as alterações.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

func validateID(id, message string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.Validation(message)
	}
	return nil
}
