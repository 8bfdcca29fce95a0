package blend

import "math"

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// separable applies a per-channel blend function using the standard formula
//
//	Result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cd)
//
// where S and D are premultiplied and Cs, Cd are the unpremultiplied colors
// B operates on. The three terms are accumulated at full precision and
// rounded once.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, b func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	invSa := uint32(255 - sa)
	invDa := uint32(255 - da)
	saDa := uint32(sa) * uint32(da)

	ch := func(s, d byte) byte {
		bl := uint32(b(unpremul(s, sa), unpremul(d, da)))
		n := invSa*uint32(d)*255 + invDa*uint32(s)*255 + saDa*bl
		v := (n + 65025/2) / 65025
		if v > 255 {
			return 255
		}
		return byte(v)
	}

	return ch(sr, dr), ch(sg, dg), ch(sb, db), addClamp(sa, mulDiv255(da, byte(invSa)))
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func unpremul(c, a byte) byte {
	if a == 255 {
		return c
	}
	if c >= a {
		return 255
	}
	return byte((uint16(c)*255 + uint16(a)/2) / uint16(a))
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

func screen(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// overlay is HardLight with the layers swapped.
func overlay(s, d byte) byte {
	return hardLight(d, s)
}

// hardLight: if Cs <= 0.5: Multiply(Cb, 2*Cs), else: Screen(Cb, 2*Cs - 1)
func hardLight(s, d byte) byte {
	if s <= 127 {
		return byte((2*uint32(s)*uint32(d) + 127) / 255)
	}
	return 255 - byte((2*uint32(255-s)*uint32(255-d)+127)/255)
}

func colorDodge(s, d byte) byte {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := (uint32(d)*255 + uint32(255-s)/2) / uint32(255-s)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func colorBurn(s, d byte) byte {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := (uint32(255-d)*255 + uint32(s)/2) / uint32(s)
	if v > 255 {
		return 0
	}
	return 255 - byte(v)
}

// softLight follows the W3C definition, evaluated in floating point.
func softLight(s, d byte) byte {
	sf := float64(s) / 255
	df := float64(d) / 255

	var r float64
	if sf <= 0.5 {
		r = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		r = df + (2*sf-1)*(dx-df)
	}
	return byte(math.Round(math.Max(0, math.Min(1, r)) * 255))
}

func difference(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusion(s, d byte) byte {
	v := int(s) + int(d) - 2*int(mulDiv255(s, d))
	if v < 0 {
		return 0
	}
	return byte(v)
}
