package stroke

// dashPolyline splits pts into the "on" intervals of pattern, starting
// offset units into the pattern. pattern must be even-length with a positive
// sum.
func dashPolyline(pts []Point, pattern []float64, offset float64) [][]Point {
	if len(pts) < 2 {
		return nil
	}

	var total float64
	for _, d := range pattern {
		total += d
	}
	offset = mod(offset, total)

	idx := 0
	for offset >= pattern[idx] {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remain := pattern[idx] - offset
	on := idx%2 == 0

	var (
		dashes [][]Point
		cur    []Point
	)
	if on {
		cur = []Point{pts[0]}
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			p := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				dashes = append(dashes, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		dashes = append(dashes, cur)
	}
	return dashes
}

func mod(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	if m < 0 {
		m += b
	}
	return m
}
