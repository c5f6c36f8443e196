package product

import (
	"context"

	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = apperror.NotFound("produto não encontrado")
	ErrProductInactive = apperror.Validation("produto inativo")
)

// Product é a visão somente leitura do catálogo de produtos
type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

// Reader lê produtos do catálogo
type Reader interface {
	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByIDs busca vários produtos, indexados pelo ID; ausentes são omitidos
	FindByIDs(ctx context.Context, ids []string) (map[string]*Product, error)
}
