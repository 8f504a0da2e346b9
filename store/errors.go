package store

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrTableNotFound     = errors.New("table not found")
	ErrItemNotFound      = errors.New("kitchen item not found")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrDuplicateOrder    = errors.New("order code already in store")
)
