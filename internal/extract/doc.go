// Package extract pulls numbers out of free-form text.
//
// Extraction is lenient: any delimiter is accepted, substrings that do not
// form a number are skipped, and non-finite results are discarded. It never
// fails, it only finds fewer numbers.
package extract
