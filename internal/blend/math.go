package blend

// Fixed-point helpers for premultiplied 8-bit channels. Division by 255 is
// done with shifts; see Alvy Ray Smith's technical memos,
// http://alvyray.com/Memos/.

// div255 divides x by 255 with round-half-up, exact for all uint16 inputs
// up to 255*255.
//
// Formula: (t + (t >> 8)) >> 8 where t = x + 128
func div255(x uint16) uint16 {
	t := uint32(x) + 128
	return uint16((t + (t >> 8)) >> 8)
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
