package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/domain"
)

// MemoryStore is the default backend: one product and its ledger behind a
// single mutex. The check "quantity >= 1" and the decrement happen under the
// same critical section; no caller can slip between them. The lock is never
// held across I/O.
type MemoryStore struct {
	mu      sync.Mutex
	clk     clock.Clock
	product domain.Product
	orders  []domain.Order
	lastAt  time.Time
}

func NewMemoryStore(product domain.Product, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clk:     clk,
		product: product,
	}
}

func (s *MemoryStore) GetProduct(ctx context.Context) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.product, nil
}

func (s *MemoryStore) TryDecrement(ctx context.Context, productID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if productID != s.product.ID {
		return false, domain.ErrProductNotFound
	}
	if s.product.Quantity < 1 {
		return false, nil
	}

	s.product.Quantity--
	return true, nil
}

func (s *MemoryStore) ResetQuantity(ctx context.Context, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.product.Quantity = quantity
	return nil
}

func (s *MemoryStore) Append(ctx context.Context, productID uuid.UUID) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.clk.Now()
	if at.Before(s.lastAt) {
		// Wall clock stepped back; keep timestamps agreeing with admission order.
		at = s.lastAt
	}
	s.lastAt = at

	order := domain.Order{
		ID:        uuid.New(),
		ProductID: productID,
		CreatedAt: at,
	}
	s.orders = append(s.orders, order)

	return order, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := len(s.orders)
	s.orders = s.orders[:0]
	return deleted, nil
}
