package tab

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
)

var (
	ErrInvalidKind           = apperror.Validation("tipo de comanda inválido")
	ErrInvalidStatus         = apperror.Validation("status de comanda inválido")
	ErrCustomerNameRequired  = apperror.Validation("nome do cliente é obrigatório para balcão ou entrega")
	ErrTableNumberRequired   = apperror.Validation("número da mesa é obrigatório para comanda de mesa")
	ErrTableNumberNotAllowed = apperror.Validation("número da mesa só é aceito para comanda de mesa")
	ErrTabNotFound           = apperror.NotFound("comanda não encontrada")
	ErrSubTabNotFound        = apperror.NotFound("subcomanda não encontrada")
	ErrTabClosed             = apperror.Conflict("comanda já está fechada")
	ErrSubTabClosed          = apperror.Conflict("subcomanda já está fechada")
	ErrNoSubTabNames         = apperror.Validation("informe ao menos um cliente para dividir a comanda")
	ErrSplitHasDirectItems   = apperror.Conflict("comanda possui pedidos ou pagamentos fora de subcomandas e não pode ser dividida")
	ErrSubTabRequired        = apperror.Validation("comanda dividida: informe a subcomanda do pedido")
)

// Kind define o tipo da comanda
type Kind string

const (
	KindTable    Kind = "table"    // Mesa
	KindCounter  Kind = "counter"  // Balcão
	KindDelivery Kind = "delivery" // Entrega
)

// ParseKind converte o texto recebido no tipo de comanda
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindTable:
		return KindTable, nil
	case KindCounter:
		return KindCounter, nil
	case KindDelivery:
		return KindDelivery, nil
	}
	return "", ErrInvalidKind
}

// Status representa o estado de uma comanda ou subcomanda
type Status string

const (
	StatusOpen            Status = "open"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusClosed          Status = "closed"
)

// ParseStatus converte o texto recebido no status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusAwaitingPayment:
		return StatusAwaitingPayment, nil
	case StatusClosed:
		return StatusClosed, nil
	}
	return "", ErrInvalidStatus
}

// Tab representa uma comanda
type Tab struct {
	ID           string     `json:"id"`
	Number       int64      `json:"number"`
	Kind         Kind       `json:"kind"`
	Status       Status     `json:"status"`
	CustomerName string     `json:"customer_name,omitempty"`
	TableNumber  *int       `json:"table_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedBy    string     `json:"created_by"`
}

// NewTab cria uma nova comanda aberta
func NewTab(kind Kind, customerName string, tableNumber *int, createdBy string) (*Tab, error) {
	customerName = strings.TrimSpace(customerName)

	switch kind {
	case KindTable:
		if tableNumber == nil {
			return nil, ErrTableNumberRequired
		}
	case KindCounter, KindDelivery:
		if customerName == "" {
			return nil, ErrCustomerNameRequired
		}
		if tableNumber != nil {
			return nil, ErrTableNumberNotAllowed
		}
	default:
		return nil, ErrInvalidKind
	}

	return &Tab{
		ID:           uuid.New().String(),
		Kind:         kind,
		Status:       StatusOpen,
		CustomerName: customerName,
		TableNumber:  tableNumber,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    createdBy,
	}, nil
}

// HasTable informa se a comanda está vinculada a uma mesa
func (t *Tab) HasTable() bool {
	return t.TableNumber != nil
}

// IsClosed verifica se a comanda está fechada
func (t *Tab) IsClosed() bool {
	return t.Status == StatusClosed
}

// ApplyStatus aplica um novo status, carimbando ou limpando a data de fechamento
func (t *Tab) ApplyStatus(status Status, now time.Time) {
	t.Status = status
	if status == StatusClosed {
		closed := now
		t.ClosedAt = &closed
		return
	}
	t.ClosedAt = nil
}

// DisplayStatus é o status exibido: comandas de mesa abertas aparecem como ocupadas
func (t *Tab) DisplayStatus() string {
	if t.Kind == KindTable && t.Status == StatusOpen {
		return "occupied"
	}
	return string(t.Status)
}

// SubTab representa uma subcomanda (divisão da conta)
type SubTab struct {
	ID           string    `json:"id"`
	TabID        string    `json:"tab_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSubTab cria uma subcomanda aberta para a comanda informada
func NewSubTab(tabID, customerName string) *SubTab {
	return &SubTab{
		ID:           uuid.New().String(),
		TabID:        tabID,
		CustomerName: strings.TrimSpace(customerName),
		Status:       StatusOpen,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsClosed verifica se a subcomanda está fechada
func (s *SubTab) IsClosed() bool {
	return s.Status == StatusClosed
}

// Filter restringe a listagem de comandas
type Filter struct {
	Kind   Kind
	Status Status
	Limit  int
	Offset int
}
