package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hugohenrick/erp-restaurante/internal/domain/stock"
)

// AvailabilityCache guarda, durante a vida do processo, o ID de cada
// classificação de disponibilidade pelo nome. As linhas do cadastro não mudam
// em tempo de execução; Invalidate existe para recarga explícita.
type AvailabilityCache struct {
	mu  sync.RWMutex
	ids map[stock.Availability]int
}

// NewAvailabilityCache cria um cache vazio
func NewAvailabilityCache() *AvailabilityCache {
	return &AvailabilityCache{ids: make(map[stock.Availability]int)}
}

// Resolve retorna o ID da classificação, consultando o cadastro na primeira vez.
// Classificação ausente no cadastro é erro de configuração e nunca é guardada.
func (c *AvailabilityCache) Resolve(ctx context.Context, catalog stock.AvailabilityCatalog, name stock.Availability) (int, error) {
	c.mu.RLock()
	id, ok := c.ids[name]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	id, err := catalog.FindIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, stock.ErrAvailabilityNotFound) {
			return 0, stock.MissingAvailability(name)
		}
		return 0, fmt.Errorf("erro ao buscar disponibilidade %q: %w", name, err)
	}

	c.mu.Lock()
	c.ids[name] = id
	c.mu.Unlock()
	return id, nil
}

// Invalidate descarta todas as entradas
func (c *AvailabilityCache) Invalidate() {
	c.mu.Lock()
	c.ids = make(map[stock.Availability]int)
	c.mu.Unlock()
}

// Len retorna o número de entradas guardadas
func (c *AvailabilityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}
