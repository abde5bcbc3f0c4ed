package checkout

import "errors"

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrBadPayment     = errors.New("unknown payment method")
	ErrMissingAddress = errors.New("shipping address is incomplete")
)
