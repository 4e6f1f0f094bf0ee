package types

import "errors"

var (
	ErrDatasetNotText       = errors.New("dataset file is not a text table")
	ErrMissingColumn        = errors.New("required column missing")
	ErrMalformedRecord      = errors.New("malformed launch record")
	ErrUnsupportedSource    = errors.New("unsupported dataset source")
	ErrInvalidPayloadRange  = errors.New("invalid payload range")
	ErrUnknownControlEvent  = errors.New("unknown control event")
	ErrMalformedControlData = errors.New("malformed control message")
)
