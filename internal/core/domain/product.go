package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the single item on sale. Quantity is the authoritative stock
// count; it changes only through InventoryRepository.TryDecrement and Reset.
type Product struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Year      int
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
}
