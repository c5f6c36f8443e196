package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/table"
	"github.com/jackc/pgx/v5"
)

// TableRepository implementa a interface table.Repository
type TableRepository struct {
	db DBTX
}

// NewTableRepository cria uma nova instância de TableRepository
func NewTableRepository(db DBTX) table.Repository {
	return &TableRepository{db: db}
}

// FindByID implementa table.Repository.FindByID
func (r *TableRepository) FindByID(ctx context.Context, id string) (*table.Table, error) {
	var t table.Table
	err := r.db.QueryRow(ctx, `SELECT id, number, status, created_at FROM tables WHERE id = $1`, id).
		Scan(&t.ID, &t.Number, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, table.ErrTableNotFound
		}
		return nil, fmt.Errorf("erro ao buscar mesa: %w", err)
	}
	return &t, nil
}

// List implementa table.Repository.List
func (r *TableRepository) List(ctx context.Context) ([]*table.Table, error) {
	rows, err := r.db.Query(ctx, `SELECT id, number, status, created_at FROM tables ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar mesas: %w", err)
	}
	defer rows.Close()

	tables := make([]*table.Table, 0)
	for rows.Next() {
		var t table.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler mesa: %w", err)
		}
		tables = append(tables, &t)
	}
	return tables, rows.Err()
}

// Occupy implementa table.Repository.Occupy com uma troca condicional:
// só uma de duas aberturas simultâneas na mesma mesa é aceita
func (r *TableRepository) Occupy(ctx context.Context, number int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tables SET status = $1 WHERE number = $2 AND status = $3`,
		table.StatusOccupied, number, table.StatusFree)
	if err != nil {
		return fmt.Errorf("erro ao ocupar mesa: %w", err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tables WHERE number = $1)`, number).Scan(&exists); err != nil {
		return fmt.Errorf("erro ao verificar mesa: %w", err)
	}
	if !exists {
		return table.ErrTableNotFound
	}
	return table.ErrTableNotFree
}

// ProjectStatus implementa table.Repository.ProjectStatus. Mesa inexistente é ignorada.
func (r *TableRepository) ProjectStatus(ctx context.Context, number int, status table.Status) error {
	if _, err := r.db.Exec(ctx, `UPDATE tables SET status = $1 WHERE number = $2`, status, number); err != nil {
		return fmt.Errorf("erro ao atualizar status da mesa: %w", err)
	}
	return nil
}
