package mini

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseLine classifies and parses one source line into a statement.
func ParseLine(pos Pos, line string) (Stmt, error) {
	kind, err := classifyAt(pos, line)
	if err != nil {
		return nil, err
	}
	p := NewParser(ScanTokens(pos, []byte(line)))
	stmt, err := p.ParseStmt(pos, kind)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return nil, e.withLine(line)
		}
		return nil, err
	}
	return stmt, nil
}

type Parser struct {
	tokens []Token
	index  int
}

func NewParser(tokens []Token) Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF})
	}
	return Parser{
		tokens: tokens,
		index:  0,
	}
}

// ParseStmt consumes the remaining tokens as a statement of the given kind.
func (p *Parser) ParseStmt(pos Pos, kind StmtKind) (Stmt, error) {
	words := p.operands()
	switch kind {
	case ADDITION:
		if len(words) != 3 {
			return nil, arityError(pos, kind, 3, len(words))
		}
		target, err := parseTarget(words[0])
		if err != nil {
			return nil, err
		}
		left, err := ParseOperand(words[1])
		if err != nil {
			return nil, err
		}
		right, err := ParseOperand(words[2])
		if err != nil {
			return nil, err
		}
		return &AdditionStmt{Pos: pos, Target: target, Left: left, Right: right}, nil
	case ASSIGNMENT:
		if len(words) != 2 {
			return nil, arityError(pos, kind, 2, len(words))
		}
		target, err := parseTarget(words[0])
		if err != nil {
			return nil, err
		}
		source, err := ParseOperand(words[1])
		if err != nil {
			return nil, err
		}
		return &AssignmentStmt{Pos: pos, Target: target, Source: source}, nil
	case OUTPUT:
		if len(words) != 1 {
			return nil, arityError(pos, kind, 1, len(words))
		}
		source, err := ParseOperand(words[0])
		if err != nil {
			return nil, err
		}
		return &OutputStmt{Pos: pos, Source: source}, nil
	}
	panic("unreachable")
}

// operands returns every WORD token up to EOF; standalone '+' and '=' are dropped.
func (p *Parser) operands() []Token {
	words := make([]Token, 0, 3)
	for p.next().Kind != EOF {
		tok := p.advance()
		if tok.Kind == WORD {
			words = append(words, tok)
		}
	}
	return words
}

func (p *Parser) next() Token {
	return p.tokens[p.index]
}

func (p *Parser) advance() Token {
	t := p.tokens[p.index]
	if p.index+1 < len(p.tokens) {
		p.index++
	}
	return t
}

func arityError(pos Pos, kind StmtKind, want, got int) *Error {
	return NewError(pos, ArityError, "%s expects %d operand(s), got %d", kind, want, got)
}

// ParseOperand turns a word into an operand. A single non-digit character is
// a variable; anything else must be a decimal 32-bit integer literal.
func ParseOperand(tok Token) (Operand, error) {
	text := string(tok.Content)
	first, size := utf8.DecodeRuneInString(text)
	if size > 0 && size == len(text) && !unicode.IsDigit(first) {
		return VariableOperand{Token: tok, Name: text}, nil
	}
	val, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, NewError(tok.Pos, IntegerParseError, "cannot parse %q as an integer", text).withCause(err)
	}
	return LiteralOperand{Token: tok, Value: int32(val)}, nil
}

func parseTarget(tok Token) (string, error) {
	op, err := ParseOperand(tok)
	if err != nil {
		return "", NewError(tok.Pos, MalformedStatement, "cannot assign to %q", tok.Content)
	}
	v, ok := op.(VariableOperand)
	if !ok {
		return "", NewError(tok.Pos, MalformedStatement, "cannot assign to literal %s", op)
	}
	return v.Name, nil
}

// SplitProgram breaks source text into lines. Trailing blank lines are
// dropped; blank lines in the middle of a program are kept.
func SplitProgram(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
