package steg

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pixveil/codec"
)

/*
 * DecodedResult is the outcome of one Decode call. Data keeps every
 * assembled byte, marker included when one was hit; DataTrimmed is
 * the convenience view with the marker stripped.
 */
type DecodedResult struct {
	data		[]byte
	marker		[]byte
	hitMarker	bool
	elapsed		time.Duration
}

// Data returns the raw decoded bytes in assembly order.
func (r *DecodedResult) Data() []byte {
	return r.data
}

// DataTrimmed returns the decoded bytes without the trailing marker.
// When no marker was hit it is identical to Data.
func (r *DecodedResult) DataTrimmed() []byte {
	if r.hitMarker {
		return r.data[ : len(r.data) - len(r.marker) ]
	}
	return r.data
}

// HitMarker reports whether decoding stopped on the configured marker
// rather than by running out of pixels.
func (r *DecodedResult) HitMarker() bool {
	return r.hitMarker
}

// Elapsed is how long the extraction pass took.
func (r *DecodedResult) Elapsed() time.Duration {
	return r.elapsed
}

// RawText is the lossy text view: invalid UTF-8 sequences are
// replaced with U+FFFD, nothing fails.
func (r *DecodedResult) RawText() string {
	return strings.ToValidUTF8( string(r.data), "�" )
}

// Text is the strict text view of the decoded bytes.
func (r *DecodedResult) Text() (string, error) {
	if !utf8.Valid( r.data ) {
		return "", ErrInvalidUTF8
	}
	return string(r.data), nil
}

// Decode walks src under opts, reassembling payload bytes from the
// low bits of the selected channel. Running out of pixels is normal
// termination; when opts carries a marker, assembly stops early the
// moment the trailing bytes match it.
func Decode( opts Options, src *codec.PixelBuffer ) (*DecodedResult, error) {
	opts = opts.normalized()
	if opts.Channel < Red || opts.Channel > Blue {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, opts.Channel)
	}
	started := time.Now()
	cur := newCursor( opts, src.Width(), src.Height() )
	scanner := newMarkerScanner( opts.Marker )
	channel := int(opts.Channel)

	data := []byte{}
	current := byte(0)
	iterCount := 0
	hit := false

	for {
		x, y, ok := cur.advance()
		if !ok {
			break
		}
		count := opts.BitsPerPixel
		if count > 8 - iterCount {
			count = 8 - iterCount
		}
		chunk := getBits( src.ChannelAt( x, y, channel ), count )
		current = setBits( current, iterCount, count, chunk )
		iterCount += count
		if iterCount == 8 {
			data = append( data, current )
			current = 0
			iterCount = 0
			if scanner.push( data[ len(data) - 1 ] ) {
				hit = true
				break
			}
		}
	}

	return &DecodedResult{
		data: data,
		marker: opts.Marker,
		hitMarker: hit,
		elapsed: time.Since( started ),
	}, nil
}

// DecodeBytes decodes carrier bytes and extracts whatever they hold.
func DecodeBytes( carrier []byte, opts Options ) (*DecodedResult, error) {
	buf, err := LoadImage( carrier )
	if err != nil {
		return nil, err
	}
	return Decode( opts, buf )
}
