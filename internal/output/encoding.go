// Package output writes rendered sparklines to a byte stream.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var ErrUnknownEncoding = errors.New("output: unknown encoding")

type charset struct {
	enc encoding.Encoding
	// keep reports whether the charset can represent r.
	keep func(r rune) bool
}

func fromCharmap(cm *charmap.Charmap) charset {
	return charset{
		enc: cm,
		keep: func(r rune) bool {
			_, ok := cm.EncodeRune(r)
			return ok
		},
	}
}

var charsets = map[string]charset{
	"utf-8": {
		enc:  unicode.UTF8,
		keep: utf8.ValidRune,
	},
	"us-ascii": {
		enc:  encoding.Nop,
		keep: func(r rune) bool { return r < utf8.RuneSelf },
	},
	"iso-8859-1":   fromCharmap(charmap.ISO8859_1),
	"windows-1252": fromCharmap(charmap.Windows1252),
	"cp437":        fromCharmap(charmap.CodePage437),
}

var aliases = map[string]string{
	"utf8":   "utf-8",
	"ascii":  "us-ascii",
	"latin1": "iso-8859-1",
	"cp1252": "windows-1252",
	"ibm437": "cp437",
}

func lookup(name string) (charset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "utf-8"
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	cs, ok := charsets[key]
	if !ok {
		return charset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEncoding, name, Encodings())
	}
	return cs, nil
}

// Encodings lists the canonical encoding names accepted by NewWriter.
func Encodings() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewWriter wraps w so that text written to it is encoded in the named
// charset. Runes the charset cannot represent are dropped instead of
// failing the write. Close flushes buffered output; it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	cs, err := lookup(name)
	if err != nil {
		return nil, err
	}
	drop := runes.Remove(runes.Predicate(func(r rune) bool { return !cs.keep(r) }))
	return transform.NewWriter(w, transform.Chain(drop, cs.enc.NewEncoder())), nil
}

// encode returns s encoded in the named charset, dropping runes it cannot
// represent.
func encode(s, name string) ([]byte, error) {
	var sb strings.Builder
	wc, err := NewWriter(&sb, name)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(wc, s); err != nil {
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
