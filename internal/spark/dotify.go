package spark

import "strings"

// Dotify converts series to a dense braille sparkline, packing two values
// into each glyph. The series is always self-ranged: its minimum maps to
// level 0 and its maximum to level 4. An odd-length series is padded with
// a trailing level 0, so the output holds ceil(len(series)/2) glyphs.
func Dotify(series []float64) (string, error) {
	if len(series) == 0 {
		return "", ErrEmptySeries
	}
	if err := checkFinite(series); err != nil {
		return "", err
	}

	levels := DotLevels(series)
	if len(levels)%2 == 1 {
		levels = append(levels, 0)
	}

	var sb strings.Builder
	sb.Grow(len(levels) / 2 * 3)
	for i := 0; i < len(levels); i += 2 {
		sb.WriteRune(DotLevelTable[levels[i]][levels[i+1]])
	}
	return sb.String(), nil
}

// DotLevels quantizes a non-empty, finite series into density levels 0..4.
func DotLevels(series []float64) []int {
	if len(series) == 0 {
		return nil
	}

	low, hi := bounds(series)
	factor := overflowFactor(low, hi)
	normalized := make([]float64, len(series))
	for i, x := range series {
		normalized[i] = x*factor - low*factor
	}
	high := hi*factor - low*factor
	if high == 0 {
		high = 1
	}

	levels := make([]int, len(series), len(series)+1)
	for i, x := range normalized {
		levels[i] = quantize(x/high*float64(maxDotLevel), maxDotLevel)
	}
	return levels
}
