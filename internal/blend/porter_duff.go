package blend

// SourceOverMask composites src over dst, scaled per pixel by mask.
// Formula: S*c + D*(1 - Sa*c)
func SourceOverMask(dst []byte, mask []byte, src Color) {
	for i, c := range mask {
		if c == 0 {
			continue
		}
		o := i * 4
		if c == 255 && src.A == 255 {
			dst[o+0] = src.R
			dst[o+1] = src.G
			dst[o+2] = src.B
			dst[o+3] = 255
			continue
		}
		sr := mulDiv255(src.R, c)
		sg := mulDiv255(src.G, c)
		sb := mulDiv255(src.B, c)
		sa := mulDiv255(src.A, c)
		invSa := 255 - sa
		dst[o+0] = addClamp(sr, mulDiv255(dst[o+0], invSa))
		dst[o+1] = addClamp(sg, mulDiv255(dst[o+1], invSa))
		dst[o+2] = addClamp(sb, mulDiv255(dst[o+2], invSa))
		dst[o+3] = addClamp(sa, mulDiv255(dst[o+3], invSa))
	}
}

// DestinationOutMask removes dst content where mask is set.
// Formula: D*(1 - c)
func DestinationOutMask(dst []byte, mask []byte, _ Color) {
	for i, c := range mask {
		if c == 0 {
			continue
		}
		o := i * 4
		if c == 255 {
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, 0
			continue
		}
		inv := 255 - c
		dst[o+0] = mulDiv255(dst[o+0], inv)
		dst[o+1] = mulDiv255(dst[o+1], inv)
		dst[o+2] = mulDiv255(dst[o+2], inv)
		dst[o+3] = mulDiv255(dst[o+3], inv)
	}
}
