package rvnqueryx

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrInvalidPageSize  = errors.New("invalid page size")
)
