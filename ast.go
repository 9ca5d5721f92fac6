package mini

import "strconv"

type Operand interface {
	operand()
	String() string
}

type LiteralOperand struct {
	Token
	Value int32
}

type VariableOperand struct {
	Token
	Name string
}

func (l LiteralOperand) operand()  {}
func (v VariableOperand) operand() {}

func (l LiteralOperand) String() string {
	return strconv.FormatInt(int64(l.Value), 10)
}

func (v VariableOperand) String() string {
	return v.Name
}

type Stmt interface {
	pos() Pos
	Kind() StmtKind
	String() string
}

type AdditionStmt struct {
	Pos
	Target string
	Left   Operand
	Right  Operand
}

type AssignmentStmt struct {
	Pos
	Target string
	Source Operand
}

type OutputStmt struct {
	Pos
	Source Operand
}

func (a *AdditionStmt) pos() Pos {
	return a.Pos
}
func (a *AssignmentStmt) pos() Pos {
	return a.Pos
}
func (o *OutputStmt) pos() Pos {
	return o.Pos
}

func (a *AdditionStmt) Kind() StmtKind   { return ADDITION }
func (a *AssignmentStmt) Kind() StmtKind { return ASSIGNMENT }
func (o *OutputStmt) Kind() StmtKind     { return OUTPUT }

func (a *AdditionStmt) String() string {
	return a.Target + " = " + a.Left.String() + " + " + a.Right.String()
}
func (a *AssignmentStmt) String() string {
	return a.Target + " = " + a.Source.String()
}
func (o *OutputStmt) String() string {
	return o.Source.String()
}
