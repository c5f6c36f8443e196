package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/jackc/pgx/v5"
)

const tabColumns = `id, number, kind, status, customer_name, table_number, created_at, closed_at, created_by`

// TabRepository implementa a interface tab.Repository
type TabRepository struct {
	db DBTX
}

// NewTabRepository cria uma nova instância de TabRepository
func NewTabRepository(db DBTX) tab.Repository {
	return &TabRepository{db: db}
}

// Create implementa tab.Repository.Create
func (r *TabRepository) Create(ctx context.Context, t *tab.Tab) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tabs (id, kind, status, customer_name, table_number, created_at, closed_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING number`,
		t.ID, t.Kind, t.Status, t.CustomerName, t.TableNumber, t.CreatedAt, t.ClosedAt, t.CreatedBy,
	).Scan(&t.Number)
	if err != nil {
		return fmt.Errorf("erro ao criar comanda: %w", err)
	}
	return nil
}

// FindByID implementa tab.Repository.FindByID
func (r *TabRepository) FindByID(ctx context.Context, id string) (*tab.Tab, error) {
	return r.findOne(ctx, `SELECT `+tabColumns+` FROM tabs WHERE id = $1`, id)
}

// FindByIDForUpdate implementa tab.Repository.FindByIDForUpdate
func (r *TabRepository) FindByIDForUpdate(ctx context.Context, id string) (*tab.Tab, error) {
	return r.findOne(ctx, `SELECT `+tabColumns+` FROM tabs WHERE id = $1 FOR UPDATE`, id)
}

func (r *TabRepository) findOne(ctx context.Context, query, id string) (*tab.Tab, error) {
	t, err := scanTab(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tab.ErrTabNotFound
		}
		return nil, fmt.Errorf("erro ao buscar comanda: %w", err)
	}
	return t, nil
}

// List implementa tab.Repository.List
func (r *TabRepository) List(ctx context.Context, filter tab.Filter) ([]*tab.Tab, error) {
	var conditions []string
	var args []any

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + tabColumns + ` FROM tabs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, number DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.queryTabs(ctx, query, args...)
}

// UpdateStatus implementa tab.Repository.UpdateStatus
func (r *TabRepository) UpdateStatus(ctx context.Context, t *tab.Tab) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tabs SET status = $1, closed_at = $2 WHERE id = $3`,
		t.Status, t.ClosedAt, t.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da comanda: %w", err)
	}
	if result.RowsAffected() == 0 {
		return tab.ErrTabNotFound
	}
	return nil
}

// ListActiveWithTable implementa tab.Repository.ListActiveWithTable
func (r *TabRepository) ListActiveWithTable(ctx context.Context) ([]*tab.Tab, error) {
	return r.queryTabs(ctx,
		`SELECT `+tabColumns+` FROM tabs
		WHERE status <> $1 AND table_number IS NOT NULL
		ORDER BY created_at DESC`,
		tab.StatusClosed)
}

func (r *TabRepository) queryTabs(ctx context.Context, query string, args ...any) ([]*tab.Tab, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar comandas: %w", err)
	}
	defer rows.Close()

	tabs := make([]*tab.Tab, 0)
	for rows.Next() {
		t, err := scanTab(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler comanda: %w", err)
		}
		tabs = append(tabs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar comandas: %w", err)
	}
	return tabs, nil
}

func scanTab(row pgx.Row) (*tab.Tab, error) {
	var t tab.Tab
	err := row.Scan(&t.ID, &t.Number, &t.Kind, &t.Status, &t.CustomerName,
		&t.TableNumber, &t.CreatedAt, &t.ClosedAt, &t.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SubTabRepository implementa a interface tab.SubTabRepository
type SubTabRepository struct {
	db DBTX
}

// NewSubTabRepository cria uma nova instância de SubTabRepository
func NewSubTabRepository(db DBTX) tab.SubTabRepository {
	return &SubTabRepository{db: db}
}

// Create implementa tab.SubTabRepository.Create
func (r *SubTabRepository) Create(ctx context.Context, s *tab.SubTab) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sub_tabs (id, tab_id, customer_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.TabID, s.CustomerName, s.Status, s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return tab.ErrTabNotFound
		}
		return fmt.Errorf("erro ao criar subcomanda: %w", err)
	}
	return nil
}

// FindByID implementa tab.SubTabRepository.FindByID
func (r *SubTabRepository) FindByID(ctx context.Context, id string) (*tab.SubTab, error) {
	var s tab.SubTab
	err := r.db.QueryRow(ctx,
		`SELECT id, tab_id, customer_name, status, created_at FROM sub_tabs WHERE id = $1`,
		id).Scan(&s.ID, &s.TabID, &s.CustomerName, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tab.ErrSubTabNotFound
		}
		return nil, fmt.Errorf("erro ao buscar subcomanda: %w", err)
	}
	return &s, nil
}

// ListByTab implementa tab.SubTabRepository.ListByTab
func (r *SubTabRepository) ListByTab(ctx context.Context, tabID string) ([]*tab.SubTab, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tab_id, customer_name, status, created_at FROM sub_tabs
		WHERE tab_id = $1 ORDER BY created_at, id`,
		tabID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar subcomandas: %w", err)
	}
	defer rows.Close()

	subs := make([]*tab.SubTab, 0)
	for rows.Next() {
		var s tab.SubTab
		if err := rows.Scan(&s.ID, &s.TabID, &s.CustomerName, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler subcomanda: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// UpdateStatus implementa tab.SubTabRepository.UpdateStatus
func (r *SubTabRepository) UpdateStatus(ctx context.Context, s *tab.SubTab) error {
	result, err := r.db.Exec(ctx, `UPDATE sub_tabs SET status = $1 WHERE id = $2`, s.Status, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da subcomanda: %w", err)
	}
	if result.RowsAffected() == 0 {
		return tab.ErrSubTabNotFound
	}
	return nil
}
