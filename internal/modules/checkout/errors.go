package checkout

import "errors"

// Local rejections, raised before any network call.
var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingAddress = errors.New("shipping address is required")
	ErrMissingPhone   = errors.New("phone number is required")
	ErrInvalidPayment = errors.New("unsupported payment method")
	ErrEmptyCart      = errors.New("cart is empty")
)
