package dal

import (
	"errors"
)

var (
	ErrCheckoutIntentNotFound = errors.New("checkout intent not found")
)
