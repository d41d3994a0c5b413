package steg

import (
	"fmt"
	"io"
	"os"

	"pixveil/codec"
)

// ChangeRecord tracks one touched pixel: where it sits and its full
// color before and after the write.
type ChangeRecord struct {
	X	int
	Y	int
	Before	[3]byte
	After	[3]byte
}

// ByteChanges groups the pixel edits that carry one payload byte, in
// visit order.
type ByteChanges struct {
	Source	byte
	Pixels	[]ChangeRecord
}

/*
 * EncodedResult is the outcome of one Encode call: the altered pixel
 * buffer, the untouched original for diffing, and the per-byte change
 * log. It is immutable once built; the caller decides how and where
 * to persist it.
 */
type EncodedResult struct {
	altered		*codec.PixelBuffer
	original	*codec.PixelBuffer
	changes		[]ByteChanges
}

// Image returns the altered pixel buffer.
func (r *EncodedResult) Image() *codec.PixelBuffer {
	return r.altered
}

// Original returns the carrier as it was before encoding.
func (r *EncodedResult) Original() *codec.PixelBuffer {
	return r.original
}

// Changes returns the per-payload-byte change log, in payload order.
func (r *EncodedResult) Changes() []ByteChanges {
	return r.changes
}

// PixelsChanged counts every pixel visit recorded in the change log.
func (r *EncodedResult) PixelsChanged() int {
	count := 0
	for _, bc := range r.changes {
		count += len(bc.Pixels)
	}
	return count
}

// Write encodes the altered buffer into the requested container.
func (r *EncodedResult) Write( w io.Writer, format codec.Format ) error {
	return codec.Write( w, r.altered, format )
}

// Save writes the altered buffer to a file in the requested container.
func (r *EncodedResult) Save( path string, format codec.Format ) error {
	f, err := os.Create( path )
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Write( f, format )
}

// Encode embeds payload into a private copy of src, following the
// traversal opts describe. The carrier is never mutated; on any error
// nothing useful is produced. Each payload byte is split LSB-first
// into chunks of BitsPerPixel bits and each chunk lands in the low
// bits of the selected channel of the next visited pixel.
func Encode( payload []byte, opts Options, src *codec.PixelBuffer ) (*EncodedResult, error) {
	opts = opts.normalized()
	if opts.Channel < Red || opts.Channel > Blue {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, opts.Channel)
	}
	width, height := src.Width(), src.Height()
	required := requiredVisits( len(payload), opts.BitsPerPixel )
	available := availableVisits( opts, width, height )
	if required > available {
		return nil, fmt.Errorf("%w ( need %d pixel visits, have %d )",
			ErrCapacityExceeded, required, available)
	}

	altered := src.Clone()
	cur := newCursor( opts, width, height )
	changes := make([]ByteChanges, 0, len(payload))
	channel := int(opts.Channel)

	for _, b := range payload {
		bc := ByteChanges{ Source: b }
		for bit := 0; bit < 8; bit += opts.BitsPerPixel {
			count := opts.BitsPerPixel
			if count > 8 - bit {
				count = 8 - bit
			}
			x, y, ok := cur.advance()
			if !ok {
				// unreachable after the capacity check
				return nil, fmt.Errorf("%w ( traversal exhausted )", ErrCapacityExceeded)
			}
			before := altered.PixelAt( x, y )
			chunk := getBits( b >> bit, count )
			value := setBits( altered.ChannelAt( x, y, channel ), 0, count, chunk )
			altered.SetChannelAt( x, y, channel, value )
			bc.Pixels = append( bc.Pixels, ChangeRecord{
				X: x,
				Y: y,
				Before: before,
				After: altered.PixelAt( x, y ),
			})
		}
		changes = append( changes, bc )
	}

	return &EncodedResult{
		altered: altered,
		original: src,
		changes: changes,
	}, nil
}

// EncodeBytes is the carrier-bytes convenience: decode, embed, and
// hand back the result ready for saving.
func EncodeBytes( payload, carrier []byte, opts Options ) (*EncodedResult, error) {
	buf, err := LoadImage( carrier )
	if err != nil {
		return nil, err
	}
	return Encode( payload, opts, buf )
}
