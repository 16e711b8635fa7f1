package spark

// Palette holds eight glyphs of (nearly) steadily increasing height.
var Palette = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// DotLevelTable packs two samples, each quantized to 0..4, into one braille
// glyph. The row is the level of the first sample and the column the level
// of the second; each level fills its braille column from the bottom up.
var DotLevelTable = [5][5]rune{
	{' ', '⢀', '⢠', '⢰', '⢸'},
	{'⡀', '⣀', '⣠', '⣰', '⣸'},
	{'⡄', '⣄', '⣤', '⣴', '⣼'},
	{'⡆', '⣆', '⣦', '⣶', '⣾'},
	{'⡇', '⣇', '⣧', '⣷', '⣿'},
}

// Baseline is the glyph drawn for every value of a zero-width range.
const Baseline = '▁'

const (
	maxBarIndex = len(Palette) - 1
	maxDotLevel = len(DotLevelTable) - 1
)

func clampIndex(idx, hi int) int {
	if idx < 0 {
		return 0
	}
	if idx > hi {
		return hi
	}
	return idx
}
