package extract

import (
	"errors"
	"math"
	"strconv"
)

// ParseNumber parses a single token. The boolean is false when the token is
// not a number at all; out-of-range tokens parse to ±Inf and report true so
// that filtering stays the caller's decision.
func ParseNumber(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return v, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return v, true
	}
	return 0, false
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Extract returns every finite number in text, in order of appearance.
// Duplicates are kept. Text without numbers yields an empty series.
func Extract(text string) []float64 {
	series := make([]float64, 0)
	for _, tok := range Tokens(text) {
		v, ok := ParseNumber(tok)
		if !ok || !Finite(v) {
			continue
		}
		series = append(series, v)
	}
	return series
}
