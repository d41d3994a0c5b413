package steg

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel selects the color component carrying payload bits.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// ParseChannel maps a channel name to a Channel.
func ParseChannel( name string ) (Channel, error) {
	switch strings.ToLower( name ) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return Blue, fmt.Errorf("Unknown channel: %s", name)
}

// Position names the corner (or point) the traversal is biased towards.
type Position int

const (
	TopLeft Position = iota
	TopRight
	BottomLeft
	BottomRight
	Center
	At
)

/*
 * Start is the starting-position part of the options. X and Y are
 * only meaningful when Position is At.
 */
type Start struct {
	Position	Position
	X		int
	Y		int
}

// AtPixel builds a Start biased towards the given point.
func AtPixel( x, y int ) Start {
	return Start{ Position: At, X: x, Y: y }
}

// ParseStart maps a position name ("topleft", "center", ...) or an
// "x,y" pair to a Start.
func ParseStart( name string ) (Start, error) {
	switch strings.ToLower( name ) {
	case "", "topleft":
		return Start{ Position: TopLeft }, nil
	case "topright":
		return Start{ Position: TopRight }, nil
	case "bottomleft":
		return Start{ Position: BottomLeft }, nil
	case "bottomright":
		return Start{ Position: BottomRight }, nil
	case "center":
		return Start{ Position: Center }, nil
	}
	parts := strings.Split( name, "," )
	if len(parts) == 2 {
		x, errX := strconv.Atoi( strings.TrimSpace( parts[0] ) )
		y, errY := strconv.Atoi( strings.TrimSpace( parts[1] ) )
		if errX == nil && errY == nil {
			return AtPixel( x, y ), nil
		}
	}
	return Start{}, fmt.Errorf("Unknown start position: %s", name)
}

/*
 * Options is the full configuration surface shared by Encode and
 * Decode. It is a plain value: build it once (usually starting from
 * DefaultOptions), pass it by value, nothing is shared between calls.
 * Marker only matters to Decode and is ignored by Encode.
 */
type Options struct {
	BitsPerPixel	int
	Channel		Channel
	PixelOffset	int
	PixelStride	int
	Start		Start
	Spread		bool
	Marker		[]byte
}

func DefaultOptions() Options {
	return Options{
		BitsPerPixel: 1,
		Channel: Blue,
		PixelStride: 1,
		Start: Start{ Position: TopLeft },
	}
}

// normalized clamps the numeric fields into their documented ranges.
func (o Options) normalized() Options {
	if o.BitsPerPixel < 1 {
		o.BitsPerPixel = 1
	}
	if o.BitsPerPixel > 8 {
		o.BitsPerPixel = 8
	}
	if o.PixelStride < 1 {
		o.PixelStride = 1
	}
	if o.PixelOffset < 0 {
		o.PixelOffset = 0
	}
	return o
}

// baseOffset is the coarse positional skip derived from the start
// position. It is a pixel-count bias added to the traversal start,
// not a coordinate.
func (s Start) baseOffset( width, height int ) int {
	switch s.Position {
	case TopRight:
		return width
	case BottomLeft:
		return height
	case BottomRight:
		return width + height
	case Center:
		return (width + height) / 2
	case At:
		// negative coordinates would walk the traversal off the
		// buffer; clamp like the other numeric options
		if s.X * s.Y < 0 {
			return 0
		}
		return s.X * s.Y
	}
	return 0
}
