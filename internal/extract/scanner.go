package extract

// scanner walks text and yields numeric-looking tokens: an optional sign,
// digits with an optional fractional part (or a bare fractional part), and
// an optional exponent. Tokens are leftmost and non-overlapping, so
// "1.2.3" yields "1.2" and ".3".
type scanner struct {
	src string
	pos int
	tok string
}

func newScanner(text string) *scanner {
	return &scanner{src: text}
}

// Scan advances to the next token. It returns false when the text is
// exhausted.
func (s *scanner) Scan() bool {
	for s.pos < len(s.src) {
		if end := s.matchAt(s.pos); end > 0 {
			s.tok = s.src[s.pos:end]
			s.pos = end
			return true
		}
		s.pos++
	}
	s.tok = ""
	return false
}

// Token returns the most recent token found by Scan.
func (s *scanner) Token() string {
	return s.tok
}

// matchAt returns the end offset of a token starting at i, or 0.
func (s *scanner) matchAt(i int) int {
	j := i
	if j < len(s.src) && isSign(s.src[j]) {
		j++
	}

	intEnd := s.skipDigits(j)
	end := 0
	switch {
	case intEnd < len(s.src) && s.src[intEnd] == '.' && s.skipDigits(intEnd+1) > intEnd+1:
		end = s.skipDigits(intEnd + 1)
	case intEnd > j:
		end = intEnd
	default:
		return 0
	}

	if end < len(s.src) && (s.src[end] == 'e' || s.src[end] == 'E') {
		k := end + 1
		if k < len(s.src) && isSign(s.src[k]) {
			k++
		}
		if expEnd := s.skipDigits(k); expEnd > k {
			end = expEnd
		}
	}
	return end
}

func (s *scanner) skipDigits(i int) int {
	for i < len(s.src) && isDigit(s.src[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isSign(c byte) bool  { return c == '+' || c == '-' }

// Tokens returns every numeric-looking substring of text in order: an
// optional sign, digits with an optional fractional part (or a bare
// fractional part), and an optional exponent.
func Tokens(text string) []string {
	var toks []string
	s := newScanner(text)
	for s.Scan() {
		toks = append(toks, s.Token())
	}
	return toks
}
