package domain

import "errors"

// ErrDuplicate is surfaced when a unique constraint is violated: a taken
// slug, a repeated (cart, dish) or (user, dish) pair, or a reused promo code.
var ErrDuplicate = errors.New("duplicate key")
