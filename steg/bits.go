package steg

/*
 * Low-order bit slicing and splicing. Bit 0 is always the least
 * significant bit; count is caller-guaranteed in [1,8].
 */

// getBits returns the count low-order bits of b.
func getBits( b byte, count int ) byte {
	return b & byte(1 << count - 1)
}

// setBits returns b with bits [offset, offset+count) replaced by the
// low count bits of src. All other bits of b are left untouched.
func setBits( b byte, offset, count int, src byte ) byte {
	mask := byte(1 << count - 1)
	return b & ^(mask << offset) | (src & mask) << offset
}
