package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/payment"
)

// PaymentRepository implementa a interface payment.Repository.
// A tabela payments recusa UPDATE e DELETE por gatilho.
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository cria uma nova instância de PaymentRepository
func NewPaymentRepository(db DBTX) payment.Repository {
	return &PaymentRepository{db: db}
}

// Create implementa payment.Repository.Create
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (id, tab_id, sub_tab_id, amount, method, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.TabID, p.SubTabID, p.Amount, p.Method, p.PaidAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar pagamento: %w", err)
	}
	return nil
}

// ListByTab implementa payment.Repository.ListByTab
func (r *PaymentRepository) ListByTab(ctx context.Context, tabID string) ([]*payment.Payment, error) {
	return r.list(ctx, `WHERE tab_id = $1`, tabID)
}

// ListBySubTab implementa payment.Repository.ListBySubTab
func (r *PaymentRepository) ListBySubTab(ctx context.Context, subTabID string) ([]*payment.Payment, error) {
	return r.list(ctx, `WHERE sub_tab_id = $1`, subTabID)
}

func (r *PaymentRepository) list(ctx context.Context, where, id string) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tab_id, sub_tab_id, amount, method, paid_at
		FROM payments `+where+` ORDER BY paid_at, id`,
		id)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pagamentos: %w", err)
	}
	defer rows.Close()

	payments := make([]*payment.Payment, 0)
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.TabID, &p.SubTabID, &p.Amount, &p.Method, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("erro ao ler pagamento: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
