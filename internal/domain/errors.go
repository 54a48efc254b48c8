package domain

import "errors"

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrSoldOut       = errors.New("sold out")
)
