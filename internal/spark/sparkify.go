package spark

import (
	"math"
	"strings"
)

// Sparkify converts series to a bar sparkline with one glyph per value.
//
// The range defaults to the series' own minimum and maximum; WithMin,
// WithMax and WithRange override either end. A zero-width range draws the
// baseline for every value. Values outside the range are clamped to the
// lowest or highest glyph.
func Sparkify(series []float64, opts ...Option) (string, error) {
	if err := checkFinite(series); err != nil {
		return "", err
	}

	lo, hi, err := ResolveRange(series, opts...)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(series) * 3)

	dataRange := hi - lo
	if dataRange == 0.0 {
		for range series {
			sb.WriteRune(Baseline)
		}
		return sb.String(), nil
	}

	scale := newBarScale(lo, hi)
	for _, x := range series {
		sb.WriteRune(Palette[scale.index(x)])
	}
	return sb.String(), nil
}

// ResolveRange returns the range Sparkify uses for series: pinned ends from
// opts, the rest derived from the data.
func ResolveRange(series []float64, opts ...Option) (lo, hi float64, err error) {
	o := applyOptions(opts)
	lo, hi = o.min, o.max
	if !o.hasMin || !o.hasMax {
		if len(series) == 0 {
			return 0, 0, ErrNoRange
		}
		dataLo, dataHi := bounds(series)
		if !o.hasMin {
			lo = dataLo
		}
		if !o.hasMax {
			hi = dataHi
		}
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		return 0, 0, &ValueError{Index: -1, Value: lo, Wrapped: ErrNonFinite}
	}
	if math.IsNaN(hi) || math.IsInf(hi, 0) {
		return 0, 0, &ValueError{Index: -1, Value: hi, Wrapped: ErrNonFinite}
	}
	return lo, hi, nil
}

// barScale maps values onto palette indices for one range.
type barScale struct {
	lo          float64
	factor      float64
	coefficient float64
}

// newBarScale builds the mapping for [lo, hi]. A zero-width range maps
// every value to 0.
func newBarScale(lo, hi float64) barScale {
	if hi-lo == 0.0 {
		return barScale{lo: lo, factor: 1}
	}
	factor := overflowFactor(lo, hi)
	return barScale{
		lo:          lo,
		factor:      factor,
		coefficient: float64(maxBarIndex) / (hi*factor - lo*factor),
	}
}

func (b barScale) index(x float64) int {
	return quantize((x*b.factor-b.lo*b.factor)*b.coefficient, maxBarIndex)
}

// overflowFactor returns 0.5 when hi-lo does not fit in a float64 and 1
// otherwise. Halving both ends before subtracting keeps the width finite;
// with a factor of 1 the arithmetic is exactly x-lo.
func overflowFactor(lo, hi float64) float64 {
	if math.IsInf(hi-lo, 0) {
		return 0.5
	}
	return 1
}

// quantize rounds half to even and clamps to [0, hi]. Clamping happens in
// floating point so huge out-of-range values never overflow int.
func quantize(v float64, hi int) int {
	r := math.RoundToEven(v)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	if r >= float64(hi) {
		return hi
	}
	return clampIndex(int(r), hi)
}

// bounds returns the minimum and maximum of a non-empty series.
func bounds(series []float64) (lo, hi float64) {
	lo, hi = series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func checkFinite(series []float64) error {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValueError{Index: i, Value: v, Wrapped: ErrNonFinite}
		}
	}
	return nil
}
