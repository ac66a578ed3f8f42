package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/core/domain"
)

type OrderLedger interface {
	// Append assigns a new id and commit timestamp, records the order and
	// returns it. Safe to call concurrently; the resulting sequence is
	// totally ordered by append completion.
	Append(ctx context.Context, productID uuid.UUID) (domain.Order, error)

	// List returns all orders in admission order. Pure read.
	List(ctx context.Context) ([]domain.Order, error)

	// Clear removes every order and returns how many were deleted. Called
	// only by reset, coordinated with InventoryRepository.ResetQuantity.
	Clear(ctx context.Context) (int, error)
}
