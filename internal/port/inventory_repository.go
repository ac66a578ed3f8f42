package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/core/domain"
)

type InventoryRepository interface {
	// GetProduct returns a consistent snapshot of the product on sale; it
	// never reflects a partially applied decrement.
	GetProduct(ctx context.Context) (domain.Product, error)

	// TryDecrement atomically checks and decrements stock by one. The check
	// and the mutation are a single indivisible step for every caller.
	// Returns false when stock is insufficient, domain.ErrProductNotFound
	// when the id is unknown.
	TryDecrement(ctx context.Context, productID uuid.UUID) (bool, error)

	// ResetQuantity restores stock to the given baseline.
	ResetQuantity(ctx context.Context, quantity int) error
}
