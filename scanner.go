package mini

import (
	"fmt"

	"github.com/cznic/mathutil"
)

type TokenKind int

const (
	EOF TokenKind = iota
	WORD
	PLUS
	EQ
)

func (t TokenKind) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case PLUS:
		return "+"
	case EQ:
		return "="
	}
	panic("unreachable")
}

type Pos struct {
	filename string
	line     uint
	column   uint
}

func At(filename string, line uint) Pos {
	return Pos{filename: filename, line: line}
}

func (p Pos) Filename() string { return p.filename }
func (p Pos) Line() uint       { return p.line }
func (p Pos) Column() uint     { return p.column }

func (p Pos) String() string {
	if p.column == 0 {
		return fmt.Sprintf("%s:%d", p.filename, p.line)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.column)
}

type Token struct {
	Pos
	Kind    TokenKind
	Content []byte
}

// ScanTokens splits one source line into whitespace-delimited tokens.
// The result always ends with an EOF token.
func ScanTokens(pos Pos, line []byte) []Token {
	sc := NewScanner(pos, line)
	tokens := []Token{}
	for {
		tok := sc.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens
}

type Scanner struct {
	pos    Pos
	source []byte
	start  int
	end    int
}

func NewScanner(pos Pos, line []byte) Scanner {
	return Scanner{
		pos:    Pos{filename: pos.filename, line: pos.line},
		source: line,
	}
}

func (s *Scanner) Scan() Token {
	s.skipWhitespace()
	s.start = s.end
	if s.atEnd() {
		return s.token(EOF)
	}
	for !s.atEnd() && !isSpace(s.next()) {
		s.advance()
	}
	t := s.token(WORD)
	// operators only count when they stand alone; "-5" stays one word
	switch string(t.Content) {
	case "+":
		t.Kind = PLUS
	case "=":
		t.Kind = EQ
	}
	return t
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func (s *Scanner) skipWhitespace() {
	for !s.atEnd() && isSpace(s.next()) {
		s.advance()
	}
}

func (s *Scanner) atEnd() bool {
	return s.end >= len(s.source)
}

func (s *Scanner) next() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.end]
}

func (s *Scanner) advance() byte {
	c := s.next()
	s.end++
	return c
}

func (s *Scanner) token(t TokenKind) Token {
	end := mathutil.Clamp(s.end, 0, len(s.source))
	start := mathutil.Clamp(s.start, 0, end)
	content := s.source[start:end]
	s.start = end
	return Token{
		Pos: Pos{
			filename: s.pos.filename,
			line:     s.pos.line,
			column:   uint(start) + 1,
		},
		Kind:    t,
		Content: content,
	}
}
