package cart

import "errors"

var (
	// ErrLoginRequired is returned before any network call when the session
	// has no identity.
	ErrLoginRequired = errors.New("please login to use the cart")

	// ErrAlreadyInCart is the server's duplicate-item conflict, surfaced
	// distinctly from generic failure.
	ErrAlreadyInCart = errors.New("item already in cart")

	// ErrQtyTooLow rejects quantity updates below 1 locally.
	ErrQtyTooLow = errors.New("quantity must be at least 1")
)
