package gobloom

import "errors"

var (
	ErrInvalidItemsCount = errors.New("bloom: items count must be positive")
	ErrInvalidFPRate     = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrSizeOverflow      = errors.New("bloom: bitmap size overflows supported range")
	ErrUnknownKernel     = errors.New("bloom: unknown hash kernel")
	ErrNilEncoder        = errors.New("bloom: nil encoder")
)
