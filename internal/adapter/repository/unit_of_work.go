package repository

import (
	"context"

	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/database"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/jackc/pgx/v5"
)

// PostgresUnitOfWork executa cada operação em uma transação do PostgreSQL
type PostgresUnitOfWork struct {
	db *database.PostgresDB
}

// NewPostgresUnitOfWork cria uma nova instância de PostgresUnitOfWork
func NewPostgresUnitOfWork(db *database.PostgresDB) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{db: db}
}

// Do implementa service.UnitOfWork.Do
func (u *PostgresUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos service.Repositories) error) error {
	return u.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(ctx, Bind(tx))
	})
}

// Bind cria os repositórios sobre uma conexão ou transação
func Bind(db DBTX) service.Repositories {
	return service.Repositories{
		Tabs:         NewTabRepository(db),
		SubTabs:      NewSubTabRepository(db),
		LineItems:    NewLineItemRepository(db),
		Payments:     NewPaymentRepository(db),
		Tables:       NewTableRepository(db),
		Stock:        NewStockRepository(db),
		Availability: NewAvailabilityRepository(db),
		Products:     NewProductRepository(db),
	}
}
