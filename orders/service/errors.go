package service

import (
	"errors"
)

var (
	// ErrInvalidEvent means the payload failed signature verification or could
	// not be decoded. The gateway must not redeliver these.
	ErrInvalidEvent = errors.New("invalid webhook event")

	// ErrMappingNotFound means a completed checkout referenced a gateway
	// customer with no directory mapping yet. Treated as retryable so the
	// gateway redelivers once the mapping becomes visible.
	ErrMappingNotFound = errors.New("no customer mapping for gateway customer")
)
