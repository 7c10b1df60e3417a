package service

import (
	"errors"
)

var (
	ErrInvalidIntentID = errors.New("invalid checkout intent id")
)
