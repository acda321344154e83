package orders

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrOrderNotFound is returned by History.Get for an unknown id.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError rejects checkout input. Key names the message shown to the
// shopper in their language.
type ValidationError struct {
	Field string
	Key   string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
