package stock

import (
	"fmt"
	"sort"
	"time"

	"github.com/hugohenrick/erp-restaurante/pkg/apperror"
)

var (
	ErrAvailabilityNotFound = apperror.Configuration("disponibilidade não encontrada no cadastro")
	ErrEmptyItems           = apperror.Validation("nenhum item informado")
)

// Availability é a classificação de disponibilidade, com os nomes do cadastro
type Availability string

const (
	InStock    Availability = "Em Estoque"
	LowStock   Availability = "Baixo Estoque"
	OutOfStock Availability = "Fora de Estoque"
)

// Classify compara a quantidade com o mínimo de alerta
func Classify(quantity, minAlert int) Availability {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= minAlert:
		return LowStock
	default:
		return InStock
	}
}

// Stock é o saldo de um produto
type Stock struct {
	ProductID      string       `json:"product_id"`
	Quantity       int          `json:"quantity"`
	MinAlert       int          `json:"min_alert"`
	AvailabilityID int          `json:"-"`
	Availability   Availability `json:"availability"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ItemRequest é uma solicitação de quantidade de um produto
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckResult é o resultado estruturado da verificação de estoque
type CheckResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Aggregate soma as quantidades por produto, descarta as não positivas e
// ordena pelo ID do produto para que os bloqueios sejam sempre na mesma ordem
func Aggregate(items []ItemRequest) []ItemRequest {
	totals := make(map[string]int)
	for _, item := range items {
		if item.Quantity <= 0 || item.ProductID == "" {
			continue
		}
		totals[item.ProductID] += item.Quantity
	}

	grouped := make([]ItemRequest, 0, len(totals))
	for productID, qty := range totals {
		grouped = append(grouped, ItemRequest{ProductID: productID, Quantity: qty})
	}
	sort.Slice(grouped, func(i, j int) bool {
		return grouped[i].ProductID < grouped[j].ProductID
	})
	return grouped
}

// ShortageMessage monta a mensagem de falta de estoque
func ShortageMessage(productName string, missing int) string {
	unit := "unidades"
	if missing == 1 {
		unit = "unidade"
	}
	return fmt.Sprintf("Produto \"%s\" sem estoque suficiente. Faltam %d %s.", productName, missing, unit)
}

// MissingAvailability cria o erro de configuração para uma classificação ausente
func MissingAvailability(name Availability) error {
	return apperror.Wrap(apperror.KindConfiguration,
		fmt.Sprintf("disponibilidade '%s' não encontrada no cadastro", name),
		ErrAvailabilityNotFound)
}
