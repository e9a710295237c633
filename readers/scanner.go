package readers

import (
	"math"
	"strconv"
	"strings"
)

// scanner is a cursor over a fully buffered msh text. Each grammar attempt
// owns its scanner, so a failed attempt leaves nothing behind for the next.
type scanner struct {
	text    string
	pos     int
	grammar string
}

func newScanner(grammar, text string) *scanner {
	return &scanner{text: text, grammar: grammar}
}

func (s *scanner) rest() string { return s.text[s.pos:] }

func (s *scanner) atEOF() bool { return s.pos >= len(s.text) }

func (s *scanner) fail(kind ErrorKind, expected string) *ParseError {
	return s.failAt(s.pos, kind, expected)
}

func (s *scanner) failAt(pos int, kind ErrorKind, expected string) *ParseError {
	consumed := s.text[:pos]
	line := strings.Count(consumed, "\n") + 1
	col := pos - strings.LastIndexByte(consumed, '\n')
	return &ParseError{
		Kind:     kind,
		Grammar:  s.grammar,
		Offset:   pos,
		Line:     line,
		Column:   col,
		Expected: expected,
	}
}

// capHint bounds a declared count by what the remaining input could hold,
// declared counts are never trusted for allocation
func (s *scanner) capHint(n int) int {
	if rem := len(s.text) - s.pos; n > rem/2 {
		return rem / 2
	}
	return n
}

func (s *scanner) hasLiteral(lit string) bool {
	return strings.HasPrefix(s.rest(), lit)
}

func (s *scanner) literal(lit string) error {
	if !s.hasLiteral(lit) {
		return s.fail(GrammarMismatch, strconv.Quote(lit))
	}
	s.pos += len(lit)
	return nil
}

// marker matches a section marker that fills its whole line
func (s *scanner) marker(name string) error {
	start := s.pos
	if err := s.literal(name); err != nil {
		return err
	}
	if err := s.lineEnd(); err != nil {
		s.pos = start
		return s.fail(GrammarMismatch, strconv.Quote(name))
	}
	return nil
}

// hasMarker reports whether a marker line starts at the cursor
func (s *scanner) hasMarker(name string) bool {
	start := s.pos
	defer func() { s.pos = start }()
	return s.marker(name) == nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// space0 consumes zero or more non-newline blanks
func (s *scanner) space0() {
	for s.pos < len(s.text) && isSpace(s.text[s.pos]) {
		s.pos++
	}
}

// space1 consumes one or more non-newline blanks
func (s *scanner) space1() error {
	start := s.pos
	s.space0()
	if s.pos == start {
		return s.fail(GrammarMismatch, "whitespace")
	}
	return nil
}

func (s *scanner) newline() error {
	switch {
	case strings.HasPrefix(s.rest(), "\n"):
		s.pos++
	case strings.HasPrefix(s.rest(), "\r\n"):
		s.pos += 2
	default:
		return s.fail(GrammarMismatch, "newline")
	}
	return nil
}

// lineEnd consumes trailing blanks and the newline that terminates a record
func (s *scanner) lineEnd() error {
	start := s.pos
	s.space0()
	if err := s.newline(); err != nil {
		s.pos = start
		return err
	}
	return nil
}

// skipUntil advances to the next occurrence of lit without consuming it
func (s *scanner) skipUntil(lit string) error {
	i := strings.Index(s.rest(), lit)
	if i < 0 {
		return s.fail(GrammarMismatch, strconv.Quote(lit))
	}
	s.pos += i
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (s *scanner) digits(from int) int {
	for from < len(s.text) && isDigit(s.text[from]) {
		from++
	}
	return from
}

// double reads a decimal floating point literal
func (s *scanner) double() (float64, error) {
	start, p := s.pos, s.pos
	if p < len(s.text) && (s.text[p] == '+' || s.text[p] == '-') {
		p++
	}
	for _, word := range [...]string{"infinity", "inf", "nan"} {
		if len(s.text)-p >= len(word) && strings.EqualFold(s.text[p:p+len(word)], word) {
			v, _ := strconv.ParseFloat(s.text[start:p+len(word)], 64)
			s.pos = p + len(word)
			return v, nil
		}
	}
	mant := p
	p = s.digits(p)
	intDigits := p - mant
	fracDigits := 0
	if p < len(s.text) && s.text[p] == '.' {
		q := s.digits(p + 1)
		fracDigits = q - (p + 1)
		p = q
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, s.fail(MalformedField, "floating point number")
	}
	if p < len(s.text) && (s.text[p] == 'e' || s.text[p] == 'E') {
		q := p + 1
		if q < len(s.text) && (s.text[q] == '+' || s.text[q] == '-') {
			q++
		}
		if e := s.digits(q); e > q {
			p = e
		}
	}
	v, err := strconv.ParseFloat(s.text[start:p], 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, s.fail(MalformedField, "floating point number")
		}
	}
	s.pos = p
	return v, nil
}

// floatInt reads a tag or id written as a decimal float and truncates it to
// 32 bits without bounds checking. Legacy writers emit integer fields this way.
func (s *scanner) floatInt() (int32, error) {
	v, err := s.double()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// floatCount reads a count written as a decimal float. Negative and NaN
// counts saturate to zero.
func (s *scanner) floatCount() (int, error) {
	v, err := s.double()
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, nil
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(v), nil
}

// int32 reads a native signed decimal integer
func (s *scanner) int32() (int32, error) {
	start, p := s.pos, s.pos
	if p < len(s.text) && (s.text[p] == '+' || s.text[p] == '-') {
		p++
	}
	end := s.digits(p)
	if end == p {
		return 0, s.fail(MalformedField, "integer")
	}
	v, err := strconv.ParseInt(s.text[start:end], 10, 32)
	if err != nil {
		return 0, s.fail(MalformedField, "32-bit integer")
	}
	s.pos = end
	return int32(v), nil
}

// count reads a native unsigned decimal integer
func (s *scanner) count() (int, error) {
	end := s.digits(s.pos)
	if end == s.pos {
		return 0, s.fail(MalformedField, "unsigned integer")
	}
	v, err := strconv.ParseUint(s.text[s.pos:end], 10, 63)
	if err != nil {
		return 0, s.fail(MalformedField, "unsigned integer")
	}
	s.pos = end
	return int(v), nil
}

// quoted reads a double quoted string; the quotes are not part of the value
func (s *scanner) quoted() (string, error) {
	if err := s.literal(`"`); err != nil {
		return "", err
	}
	i := strings.IndexByte(s.rest(), '"')
	if i < 0 {
		return "", s.fail(MalformedField, "closing quote")
	}
	name := s.text[s.pos : s.pos+i]
	s.pos += i + 1
	return name, nil
}

// int32List reads a count followed by that many space separated integers
func (s *scanner) int32List() ([]int32, error) {
	n, err := s.count()
	if err != nil {
		return nil, err
	}
	list := make([]int32, 0, s.capHint(n))
	for i := 0; i < n; i++ {
		if err = s.space1(); err != nil {
			return nil, err
		}
		var v int32
		if v, err = s.int32(); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// doubles fills dst with floats separated by at least one blank
func (s *scanner) doubles(dst []float64) (err error) {
	for i := range dst {
		if i > 0 {
			if err = s.space1(); err != nil {
				return
			}
		}
		if dst[i], err = s.double(); err != nil {
			return
		}
	}
	return
}

// int32s fills dst with integers separated by at least one blank
func (s *scanner) int32s(dst []int32) (err error) {
	for i := range dst {
		if i > 0 {
			if err = s.space1(); err != nil {
				return
			}
		}
		if dst[i], err = s.int32(); err != nil {
			return
		}
	}
	return
}
