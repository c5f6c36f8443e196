package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-restaurante/internal/domain/product"
	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
	"github.com/jackc/pgx/v5"
)

const stockSelect = `SELECT s.product_id, s.quantity, s.min_alert, s.availability_id, pa.name, s.updated_at
	FROM stock s
	JOIN product_availability pa ON pa.id = s.availability_id`

// StockRepository implementa a interface stock.Repository
type StockRepository struct {
	db DBTX
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db DBTX) stock.Repository {
	return &StockRepository{db: db}
}

// FindByProductIDs implementa stock.Repository.FindByProductIDs
func (r *StockRepository) FindByProductIDs(ctx context.Context, productIDs []string) (map[string]*stock.Stock, error) {
	result := make(map[string]*stock.Stock, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, stockSelect+` WHERE s.product_id = ANY($1::uuid[])`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar estoque: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler estoque: %w", err)
		}
		result[s.ProductID] = s
	}
	return result, rows.Err()
}

// DecrementIfAvailable implementa stock.Repository.DecrementIfAvailable.
// Verificação e baixa acontecem na mesma instrução; o saldo nunca fica negativo.
func (r *StockRepository) DecrementIfAvailable(ctx context.Context, productID string, quantity int) (*stock.Stock, bool, error) {
	return r.decrement(ctx,
		`UPDATE stock SET quantity = quantity - $2, updated_at = now()
		WHERE product_id = $1 AND quantity >= $2
		RETURNING product_id`,
		productID, quantity)
}

// DecrementFloored implementa stock.Repository.DecrementFloored
func (r *StockRepository) DecrementFloored(ctx context.Context, productID string, quantity int) (*stock.Stock, bool, error) {
	return r.decrement(ctx,
		`UPDATE stock SET quantity = GREATEST(quantity - $2, 0), updated_at = now()
		WHERE product_id = $1
		RETURNING product_id`,
		productID, quantity)
}

func (r *StockRepository) decrement(ctx context.Context, query, productID string, quantity int) (*stock.Stock, bool, error) {
	var id string
	if err := r.db.QueryRow(ctx, query, productID, quantity).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("erro ao baixar estoque: %w", err)
	}

	s, err := scanStock(r.db.QueryRow(ctx, stockSelect+` WHERE s.product_id = $1`, id))
	if err != nil {
		return nil, false, fmt.Errorf("erro ao ler estoque: %w", err)
	}
	return s, true, nil
}

// SetAvailability implementa stock.Repository.SetAvailability
func (r *StockRepository) SetAvailability(ctx context.Context, productID string, availabilityID int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE stock SET availability_id = $1, updated_at = now() WHERE product_id = $2`,
		availabilityID, productID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar disponibilidade: %w", err)
	}
	return nil
}

// ListCritical implementa stock.Repository.ListCritical
func (r *StockRepository) ListCritical(ctx context.Context) ([]*stock.Stock, error) {
	rows, err := r.db.Query(ctx, stockSelect+` WHERE s.quantity <= s.min_alert ORDER BY s.quantity, s.product_id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque crítico: %w", err)
	}
	defer rows.Close()

	result := make([]*stock.Stock, 0)
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler estoque: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func scanStock(row pgx.Row) (*stock.Stock, error) {
	var s stock.Stock
	if err := row.Scan(&s.ProductID, &s.Quantity, &s.MinAlert, &s.AvailabilityID, &s.Availability, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// AvailabilityRepository implementa a interface stock.AvailabilityCatalog
type AvailabilityRepository struct {
	db DBTX
}

// NewAvailabilityRepository cria uma nova instância de AvailabilityRepository
func NewAvailabilityRepository(db DBTX) stock.AvailabilityCatalog {
	return &AvailabilityRepository{db: db}
}

// FindIDByName implementa stock.AvailabilityCatalog.FindIDByName
func (r *AvailabilityRepository) FindIDByName(ctx context.Context, name stock.Availability) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT id FROM product_availability WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, stock.ErrAvailabilityNotFound
		}
		return 0, fmt.Errorf("erro ao buscar disponibilidade: %w", err)
	}
	return id, nil
}

// ProductRepository implementa a interface product.Reader
type ProductRepository struct {
	db DBTX
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db DBTX) product.Reader {
	return &ProductRepository{db: db}
}

// FindByID implementa product.Reader.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx, `SELECT id, name, price, active FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

// FindByIDs implementa product.Reader.FindByIDs
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*product.Product, error) {
	result := make(map[string]*product.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, price, active FROM products WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Active); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		result[p.ID] = &p
	}
	return result, rows.Err()
}
