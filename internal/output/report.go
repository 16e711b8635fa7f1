package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/san-kum/sparkline/internal/spark"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the machine-readable form of one rendering.
type Report struct {
	Mode   string    `json:"mode"`
	Count  int       `json:"count"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Glyphs int       `json:"glyphs"`
	Line   string    `json:"line"`
	Values []float64 `json:"values"`
}

// NewReport describes line as rendered from series. lo and hi are the range
// ends actually used; for dots that is always the series' own range.
func NewReport(mode spark.Mode, series []float64, lo, hi float64, line string) *Report {
	values := make([]float64, len(series))
	copy(values, series)
	return &Report{
		Mode:   mode.String(),
		Count:  len(series),
		Min:    lo,
		Max:    hi,
		Glyphs: len([]rune(line)),
		Line:   line,
		Values: values,
	}
}

func (r *Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
