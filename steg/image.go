package steg

import (
	"fmt"

	"pixveil/codec"
)

// LoadImage decodes carrier bytes into a pixel buffer. Codec failures
// surface as a single opaque ErrInvalidImage; the caller is expected
// to supply a different carrier, not to retry.
func LoadImage( data []byte ) (*codec.PixelBuffer, error) {
	buf, err := codec.Load( data )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return buf, nil
}
