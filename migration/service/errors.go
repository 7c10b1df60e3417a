package service

import (
	"errors"
)

var (
	// ErrMigrationIncomplete means at least one staged object could not be
	// relocated. A report has been persisted and published; the trigger should
	// redeliver so the remaining objects get another pass.
	ErrMigrationIncomplete = errors.New("asset migration incomplete")
)
