package mini

import "strings"

type StmtKind int

const (
	ADDITION StmtKind = iota
	ASSIGNMENT
	OUTPUT
)

func (k StmtKind) String() string {
	switch k {
	case ADDITION:
		return "addition"
	case ASSIGNMENT:
		return "assignment"
	case OUTPUT:
		return "output"
	}
	panic("unreachable")
}

// Classify decides the statement kind of a single line. A '+' anywhere wins
// over '=', so "A = 1 + 2" is an addition.
func Classify(line string) (StmtKind, error) {
	return classifyAt(Pos{}, line)
}

func classifyAt(pos Pos, line string) (StmtKind, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return OUTPUT, NewError(pos, MalformedStatement, "empty line").withLine(line)
	case strings.ContainsRune(trimmed, '+'):
		return ADDITION, nil
	case strings.ContainsRune(trimmed, '='):
		return ASSIGNMENT, nil
	}
	return OUTPUT, nil
}
