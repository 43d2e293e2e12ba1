package domain

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrProductNotFound = errors.New("product not found")
)
