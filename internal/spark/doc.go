// Package spark renders numeric series as single-line sparklines.
//
// Two encodings are provided:
//
//   - [Sparkify]: one bar glyph per value, chosen from the eight-step [Palette]
//   - [Dotify]: two values per braille glyph, looked up in [DotLevelTable]
//
// [Render] composes text extraction with either encoding.
//
// # Example
//
//	line, err := spark.Render("1 5 22 13 5", spark.ModeBars)
//	// line == "▁▂█▅▂"
//
// # Thread Safety
//
// Every function in this package is pure. The glyph tables are read-only,
// so concurrent calls need no synchronization.
package spark
