package arbiter

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/port"
)

// StockArbiter is the single authority every admission decision flows
// through. Concurrent purchases run in parallel and rely on the store's
// atomic check-and-decrement; reset takes the write lock so it either
// happens before or after every in-flight purchase, never during.
type StockArbiter struct {
	mu       sync.RWMutex
	inv      port.InventoryRepository
	ledger   port.OrderLedger
	baseline int
}

func New(inv port.InventoryRepository, ledger port.OrderLedger, baseline int) *StockArbiter {
	return &StockArbiter{
		inv:      inv,
		ledger:   ledger,
		baseline: baseline,
	}
}

// Purchase admits or rejects one purchase attempt. On admission the order is
// appended to the ledger and returned; on depleted stock it returns
// domain.ErrOutOfStock with no side effects. An admitted decrement stands
// even if the caller goes away before seeing the order.
func (a *StockArbiter) Purchase(ctx context.Context, productID uuid.UUID) (domain.Order, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ok, err := a.inv.TryDecrement(ctx, productID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("decrement stock: %w", err)
	}
	if !ok {
		return domain.Order{}, domain.ErrOutOfStock
	}

	order, err := a.ledger.Append(ctx, productID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("append order: %w", err)
	}

	return order, nil
}

// Reset clears the ledger and restores stock to the configured baseline.
// The exclusive lock keeps the ledger and the quantity from ever disagreeing
// about "orders admitted since last reset".
func (a *StockArbiter) Reset(ctx context.Context) (domain.ResetSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	deleted, err := a.ledger.Clear(ctx)
	if err != nil {
		return domain.ResetSummary{}, fmt.Errorf("clear ledger: %w", err)
	}

	if err := a.inv.ResetQuantity(ctx, a.baseline); err != nil {
		return domain.ResetSummary{}, fmt.Errorf("reset quantity: %w", err)
	}

	return domain.ResetSummary{
		DeletedOrders:   deleted,
		QuantityResetTo: a.baseline,
	}, nil
}
