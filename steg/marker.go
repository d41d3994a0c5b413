package steg

import (
	"bytes"
)

/*
 * markerScanner watches the stream of completed output bytes for the
 * terminator sequence. It keeps a FIFO window of the last len(marker)
 * bytes and compares it against the marker each time it is full. An
 * empty marker disables the scanner.
 */
type markerScanner struct {
	marker	[]byte
	window	[]byte
}

func newMarkerScanner( marker []byte ) *markerScanner {
	return &markerScanner{
		marker: marker,
		window: make([]byte, 0, len(marker)),
	}
}

// push feeds one completed byte and reports whether the trailing
// window now equals the marker.
func (s *markerScanner) push( b byte ) bool {
	if len(s.marker) == 0 {
		return false
	}
	if len(s.window) == len(s.marker) {
		copy( s.window, s.window[1:] )
		s.window[ len(s.window) - 1 ] = b
	} else {
		s.window = append( s.window, b )
	}
	if len(s.window) == len(s.marker) {
		return bytes.Equal( s.window, s.marker )
	}
	return false
}
