package dal

import (
	"errors"
)

var (
	ErrCustomerMappingNotFound = errors.New("customer mapping not found")
	ErrCustomerMappingExists   = errors.New("customer mapping already exists")
)
