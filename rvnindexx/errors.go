package rvnindexx

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidDefinition  = errors.New("invalid index definition")
	ErrAmbiguousMapAccess = errors.New("ambiguous map access")
	ErrInvalidEnumValue   = errors.New("invalid enum value")
)

func invalidEnumError(name string, v interface{}) error {
	return errors.Wrapf(ErrInvalidEnumValue, "%s has no wire representation for %d", name, v)
}
