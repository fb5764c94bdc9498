package tickgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrParse is matched by every error returned when a document does not fit the summary layout.
var ErrParse = errors.New("parse failed")

// ParseError reports the furthest point the parser reached before the document stopped matching.
type ParseError struct {
	Offset   int
	Line     int
	Column   int
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at line %d, column %d: expected %s, found %s",
		e.Line, e.Column, joinExpected(e.Expected), e.Found)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Span is a half-open byte range into the parsed input.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

var lineTerminators = []string{"\r\n", "\n", "\r", "\v", "\f", "\u0085", "\u2028", "\u2029"}

// newlineLen returns the byte length of the line terminator str starts with, or 0.
func newlineLen(str string) int {
	for _, term := range lineTerminators {
		if strings.HasPrefix(str, term) {
			return len(term)
		}
	}
	return 0
}

// scanner is a cursor over a fully buffered document.
// Failed matches never move the cursor; the furthest one is kept for error reporting.
type scanner struct {
	input    string
	pos      int
	failPos  int
	expected []string
}

func newScanner(input string) *scanner {
	return &scanner{input: input, failPos: -1}
}

func (s *scanner) rest() string {
	return s.input[s.pos:]
}

func (s *scanner) atEOF() bool {
	return s.pos >= len(s.input)
}

// fail records that expected was wanted at the current position.
func (s *scanner) fail(expected string) {
	switch {
	case s.pos > s.failPos:
		s.failPos = s.pos
		s.expected = []string{expected}
	case s.pos == s.failPos:
		for _, e := range s.expected {
			if e == expected {
				return
			}
		}
		s.expected = append(s.expected, expected)
	}
}

// literal consumes lit if the input continues with it.
func (s *scanner) literal(lit string) bool {
	if strings.HasPrefix(s.rest(), lit) {
		s.pos += len(lit)
		return true
	}
	s.fail(strconv.Quote(lit))
	return false
}

// newline consumes a single line terminator.
func (s *scanner) newline() bool {
	if n := newlineLen(s.rest()); n > 0 {
		s.pos += n
		return true
	}
	s.fail("newline")
	return false
}

// inlineWhitespace consumes any horizontal whitespace. It never fails.
func (s *scanner) inlineWhitespace() {
	for !s.atEOF() {
		rest := s.rest()
		if newlineLen(rest) > 0 {
			return
		}
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// filler swallows blank lines, including ones holding only horizontal whitespace.
func (s *scanner) filler() {
	for {
		mark := s.pos
		s.inlineWhitespace()
		n := newlineLen(s.rest())
		if n == 0 {
			s.pos = mark
			return
		}
		s.pos += n
	}
}

// until consumes everything before the next stop marker, line terminator or end of input.
func (s *scanner) until(stop string) (string, Span) {
	start := s.pos
	for !s.atEOF() {
		rest := s.rest()
		if newlineLen(rest) > 0 || (stop != "" && strings.HasPrefix(rest, stop)) {
			break
		}
		_, size := utf8.DecodeRuneInString(rest)
		s.pos += size
	}
	return s.input[start:s.pos], Span{Start: start, End: s.pos}
}

// err builds the error for a document that stopped matching at or before the cursor.
func (s *scanner) err() *ParseError {
	offset, expected := s.failPos, s.expected
	if offset < s.pos {
		offset, expected = s.pos, []string{"end of input"}
	}
	line, column := s.position(offset)
	return &ParseError{
		Offset:   offset,
		Line:     line,
		Column:   column,
		Expected: append([]string(nil), expected...),
		Found:    s.found(offset),
	}
}

func (s *scanner) position(offset int) (line, column int) {
	before := s.input[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndex(before, "\n") + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}

func (s *scanner) found(offset int) string {
	rest := s.input[offset:]
	if rest == "" {
		return "end of input"
	}
	if n := newlineLen(rest); n > 0 {
		return "newline"
	}
	if idx := strings.IndexAny(rest, "\r\n"); idx >= 0 {
		rest = rest[:idx]
	}
	return strconv.Quote(rest)
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}
