package service

import (
	"errors"
)

var (
	ErrUnauthenticated  = errors.New("download requires an authenticated caller")
	ErrInvalidFilePath  = errors.New("file path must not be empty")
	ErrPathNotPermitted = errors.New("file path is not owned by the caller")
	ErrSigning          = errors.New("failed to sign download url")
)
