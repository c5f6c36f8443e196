package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/lineitem"
)

// LineItemRepository implementa a interface lineitem.Repository
type LineItemRepository struct {
	db DBTX
}

// NewLineItemRepository cria uma nova instância de LineItemRepository
func NewLineItemRepository(db DBTX) lineitem.Repository {
	return &LineItemRepository{db: db}
}

// Create implementa lineitem.Repository.Create
func (r *LineItemRepository) Create(ctx context.Context, item *lineitem.LineItem) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO line_items (id, tab_id, sub_tab_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.TabID, item.SubTabID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao lançar item: %w", err)
	}
	return nil
}

// ListByTab implementa lineitem.Repository.ListByTab
func (r *LineItemRepository) ListByTab(ctx context.Context, tabID string) ([]*lineitem.LineItem, error) {
	return r.list(ctx, `WHERE tab_id = $1`, tabID)
}

// ListBySubTab implementa lineitem.Repository.ListBySubTab
func (r *LineItemRepository) ListBySubTab(ctx context.Context, subTabID string) ([]*lineitem.LineItem, error) {
	return r.list(ctx, `WHERE sub_tab_id = $1`, subTabID)
}

func (r *LineItemRepository) list(ctx context.Context, where, id string) ([]*lineitem.LineItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tab_id, sub_tab_id, product_id, quantity, unit_price, created_at
		FROM line_items `+where+` ORDER BY created_at, id`,
		id)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens: %w", err)
	}
	defer rows.Close()

	items := make([]*lineitem.LineItem, 0)
	for rows.Next() {
		var item lineitem.LineItem
		if err := rows.Scan(&item.ID, &item.TabID, &item.SubTabID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
