package steg

/*
 * cursor yields the deterministic sequence of pixels an operation
 * visits: every stride-th pixel in row-major order, starting at the
 * configured skip. With spread enabled the walk wraps back to pixel
 * zero (the starting skip is not re-applied) and keeps going until
 * the number of pixels handed out reaches the image's pixel count.
 *
 * The spread budget counts visits, not distinct pixels. With a stride
 * above 1 every wrap restarts striding from index 0, so later passes
 * can hand out pixels an earlier pass already used; an encode that
 * needs that many visits overwrites its own earlier chunks. Both
 * engines share the cursor, so the walk stays decodable either way,
 * but multi-wrap encodes at stride > 1 are self-corrupting and best
 * avoided.
 */
type cursor struct {
	width	int
	total	int
	stride	int
	spread	bool
	next	int
	visited	int
}

func newCursor( opts Options, width, height int ) *cursor {
	return &cursor{
		width: width,
		total: width * height,
		stride: opts.PixelStride,
		spread: opts.Spread,
		next: opts.Start.baseOffset( width, height ) + opts.PixelOffset,
	}
}

// advance hands out the next pixel coordinate. ok is false once the
// walk is exhausted.
func (c *cursor) advance() (x, y int, ok bool) {
	if c.total == 0 || c.visited >= c.total {
		return 0, 0, false
	}
	if c.next >= c.total {
		if !c.spread {
			return 0, 0, false
		}
		c.next = 0
	}
	idx := c.next
	c.next += c.stride
	c.visited++
	return idx % c.width, idx / c.width, true
}
