package domain

import "errors"

var (
	// Lookup errors. Adapters wrap these with context; callers match with errors.Is.
	ErrNotFound           = errors.New("not found")
	ErrTransport          = errors.New("upstream unavailable")
	ErrMalformedReference = errors.New("malformed type reference")
	ErrDeserialization    = errors.New("unexpected upstream payload")

	ErrInvalidArgument = errors.New("invalid argument")
)
