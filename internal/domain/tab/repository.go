package tab

import (
	"context"
)

// Repository define a interface para operações de repositório de comandas
type Repository interface {
	// Create persiste uma nova comanda e preenche o número sequencial
	Create(ctx context.Context, t *Tab) error

	// FindByID busca uma comanda pelo ID
	FindByID(ctx context.Context, id string) (*Tab, error)

	// FindByIDForUpdate busca uma comanda bloqueando-a até o fim da transação
	FindByIDForUpdate(ctx context.Context, id string) (*Tab, error)

	// List lista as comandas mais recentes primeiro
	List(ctx context.Context, filter Filter) ([]*Tab, error)

	// UpdateStatus persiste o status e a data de fechamento da comanda
	UpdateStatus(ctx context.Context, t *Tab) error

	// ListActiveWithTable lista as comandas não fechadas vinculadas a uma mesa
	ListActiveWithTable(ctx context.Context) ([]*Tab, error)
}

// SubTabRepository define a interface para operações de repositório de subcomandas
type SubTabRepository interface {
	// Create persiste uma nova subcomanda
	Create(ctx context.Context, s *SubTab) error

	// FindByID busca uma subcomanda pelo ID
	FindByID(ctx context.Context, id string) (*SubTab, error)

	// ListByTab lista as subcomandas de uma comanda
	ListByTab(ctx context.Context, tabID string) ([]*SubTab, error)

	// UpdateStatus persiste o status da subcomanda
	UpdateStatus(ctx context.Context, s *SubTab) error
}
