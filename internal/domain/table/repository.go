package table

import (
	"context"
)

// Repository define a interface para o repositório de mesas.
// O status só é alterado pelos ganchos de projeção, nunca diretamente pelo cliente.
type Repository interface {
	// FindByID busca uma mesa pelo ID
	FindByID(ctx context.Context, id string) (*Table, error)

	// List lista as mesas ordenadas pelo número
	List(ctx context.Context) ([]*Table, error)

	// Occupy marca a mesa como ocupada somente se ela estiver livre
	Occupy(ctx context.Context, number int) error

	// ProjectStatus grava o status derivado da comanda
	ProjectStatus(ctx context.Context, number int, status Status) error
}
