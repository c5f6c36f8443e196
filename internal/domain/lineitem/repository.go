package lineitem

import (
	"context"
)

// Repository define a interface para o repositório de itens de pedido.
// Itens são apenas acrescentados enquanto a comanda está aberta.
type Repository interface {
	// Create persiste um novo item
	Create(ctx context.Context, item *LineItem) error

	// ListByTab lista todos os itens da comanda, inclusive os das subcomandas
	ListByTab(ctx context.Context, tabID string) ([]*LineItem, error)

	// ListBySubTab lista os itens de uma subcomanda
	ListBySubTab(ctx context.Context, subTabID string) ([]*LineItem, error)
}
