package stock

import (
	"context"
)

// Repository define a interface para o repositório de estoque
type Repository interface {
	// FindByProductIDs busca os saldos dos produtos, indexados pelo ID do produto
	FindByProductIDs(ctx context.Context, productIDs []string) (map[string]*Stock, error)

	// DecrementIfAvailable baixa a quantidade somente se houver saldo suficiente,
	// em uma única instrução. Retorna false se o saldo for insuficiente ou inexistente.
	DecrementIfAvailable(ctx context.Context, productID string, quantity int) (*Stock, bool, error)

	// DecrementFloored baixa a quantidade sem deixar o saldo negativo.
	// Retorna false se o produto não tiver registro de estoque.
	DecrementFloored(ctx context.Context, productID string, quantity int) (*Stock, bool, error)

	// SetAvailability grava a classificação de disponibilidade do produto
	SetAvailability(ctx context.Context, productID string, availabilityID int) error

	// ListCritical lista os saldos com quantidade menor ou igual ao mínimo de alerta
	ListCritical(ctx context.Context) ([]*Stock, error)
}

// AvailabilityCatalog lê o cadastro de classificações de disponibilidade
type AvailabilityCatalog interface {
	// FindIDByName retorna o ID da classificação ou ErrAvailabilityNotFound
	FindIDByName(ctx context.Context, name Availability) (int, error)
}
