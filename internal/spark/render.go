package spark

import (
	"fmt"
	"strings"

	"github.com/san-kum/sparkline/internal/extract"
)

// MinValues is the fewest numbers Render accepts.
const MinValues = 2

// Mode selects the encoding used by Render.
type Mode int

const (
	ModeBars Mode = iota
	ModeDots
)

func (m Mode) String() string {
	switch m {
	case ModeBars:
		return "bars"
	case ModeDots:
		return "dots"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "bars" or "dots" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bars", "bar", "":
		return ModeBars, nil
	case "dots", "dot":
		return ModeDots, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Render extracts every number in text and draws it in the given mode.
// Range options only apply to ModeBars; dots are always self-ranged.
func Render(text string, mode Mode, opts ...Option) (string, error) {
	return RenderSeries(extract.Extract(text), mode, opts...)
}

// RenderSeries draws an already extracted series in the given mode.
func RenderSeries(series []float64, mode Mode, opts ...Option) (string, error) {
	if len(series) < MinValues {
		return "", fmt.Errorf("%w, got %d", ErrTooFewValues, len(series))
	}

	switch mode {
	case ModeBars:
		return Sparkify(series, opts...)
	case ModeDots:
		return Dotify(series)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}
