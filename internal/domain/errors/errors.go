package errors

import "errors"

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidDomain     = errors.New("email outside campus domain")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("order cannot be cancelled at this stage")
)
