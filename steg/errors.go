package steg

import (
	"errors"
)

var (
	// ErrCapacityExceeded is returned before any pixel is touched when
	// the payload needs more pixel visits than the carrier can give.
	ErrCapacityExceeded = errors.New("not enough space in image to fit specified data")

	// ErrInvalidChannel is returned when the configured channel index
	// falls outside the carrier's color model.
	ErrInvalidChannel = errors.New("specified channel not found")

	// ErrInvalidImage wraps any codec failure while decoding carrier bytes.
	ErrInvalidImage = errors.New("could not decode image")

	// ErrInvalidUTF8 is returned by the strict text view of decoded data.
	ErrInvalidUTF8 = errors.New("decoded data is not valid utf-8")
)
