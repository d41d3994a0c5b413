package steg

/*
 * Capacity accounting. Matches the cursor's real consumption exactly:
 * one pass yields ceil((total - skip) / stride) pixels, and spread
 * mode raises the ceiling to the image's full pixel count.
 */

// chunksPerByte is how many pixel visits carry one payload byte. The
// final chunk is partial when bitsPerPixel does not divide 8.
func chunksPerByte( bitsPerPixel int ) int {
	return (8 + bitsPerPixel - 1) / bitsPerPixel
}

// requiredVisits is the number of pixel writes needed for a payload
// of n bytes.
func requiredVisits( n, bitsPerPixel int ) int {
	return n * chunksPerByte( bitsPerPixel )
}

// availableVisits is how many pixels the cursor can yield under opts.
func availableVisits( opts Options, width, height int ) int {
	opts = opts.normalized()
	total := width * height
	if opts.Spread {
		return total
	}
	skip := opts.Start.baseOffset( width, height ) + opts.PixelOffset
	if skip >= total {
		return 0
	}
	return (total - skip + opts.PixelStride - 1) / opts.PixelStride
}

// Capacity returns the number of whole payload bytes embeddable into
// an image of the given dimensions under opts.
func Capacity( opts Options, width, height int ) int {
	opts = opts.normalized()
	return availableVisits( opts, width, height ) / chunksPerByte( opts.BitsPerPixel )
}
