package payment

import (
	"context"
)

// Repository é o livro de pagamentos: somente inclusão e leitura
type Repository interface {
	// Create acrescenta um pagamento
	Create(ctx context.Context, p *Payment) error

	// ListByTab lista todos os pagamentos da comanda, inclusive os das subcomandas
	ListByTab(ctx context.Context, tabID string) ([]*Payment, error)

	// ListBySubTab lista os pagamentos de uma subcomanda
	ListBySubTab(ctx context.Context, subTabID string) ([]*Payment, error)
}
