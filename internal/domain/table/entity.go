package table

import (
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/domain/tab"
	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
)

var (
	ErrTableNotFound = apperror.NotFound("mesa não encontrada")
	ErrTableNotFree  = apperror.Conflict("mesa não está livre")
)

// Status é o status exibido da mesa. É sempre derivado da comanda vinculada.
type Status string

const (
	StatusFree            Status = "free"
	StatusOccupied        Status = "occupied"
	StatusAwaitingPayment Status = "awaiting_payment"
)

// Table representa uma mesa física
type Table struct {
	ID           string    `json:"id"`
	Number       int       `json:"number"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	CurrentTabID *string   `json:"current_tab_id,omitempty"` // não persistido
}

// ProjectStatus deriva o status da mesa a partir do status da comanda
func ProjectStatus(s tab.Status) Status {
	switch s {
	case tab.StatusClosed:
		return StatusFree
	case tab.StatusAwaitingPayment:
		return StatusAwaitingPayment
	default:
		return StatusOccupied
	}
}

// Reconcile ajusta a mesa à comanda ativa encontrada na leitura
func (t *Table) Reconcile(active *tab.Tab) {
	if active == nil {
		return
	}
	id := active.ID
	t.CurrentTabID = &id
	t.Status = ProjectStatus(active.Status)
}

// IsFree verifica se a mesa está livre
func (t *Table) IsFree() bool {
	return t.Status == StatusFree
}
