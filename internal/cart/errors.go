package cart

import (
	"errors"

	"boldserve-backend/internal/catalog"
)

var (
	ErrUnknownCategory = catalog.ErrUnknownCategory
	ErrProductNotFound = catalog.ErrProductNotFound
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
