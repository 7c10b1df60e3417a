package service

import (
	"errors"
)

var (
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrDirectoryUnavailable = errors.New("customer directory unavailable")
	ErrCreateCustomer       = errors.New("failed to create payment customer")
)
