package domain

import "errors"

var (
	// ErrOutOfStock is the one expected business failure: a purchase arrived
	// after the last unit was admitted. Not a bug, a normal sale outcome.
	ErrOutOfStock = errors.New("out of stock")

	// ErrProductNotFound is returned when an order references an unknown
	// product id.
	ErrProductNotFound = errors.New("product not found")
)
