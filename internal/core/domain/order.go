package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order records one admitted purchase. CreatedAt is assigned at commit time
// and is non-decreasing in admission order within one arbiter instance.
type Order struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// ResetSummary reports what a reset did.
type ResetSummary struct {
	DeletedOrders   int
	QuantityResetTo int
}
