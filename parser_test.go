package mini_test

import (
	"errors"
	"mini"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classifyTest struct {
	line     string
	expected mini.StmtKind
}

var classifyTests = []classifyTest{
	{"C = A + B", mini.ADDITION},
	{"A = 1 + 2", mini.ADDITION},
	{"A + B", mini.ADDITION},
	{"A = 7", mini.ASSIGNMENT},
	{"A = -15", mini.ASSIGNMENT},
	{"A", mini.OUTPUT},
	{"-21", mini.OUTPUT},
	{"  Z\t", mini.OUTPUT},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		t.Logf("classifying %q", test.line)
		kind, err := mini.Classify(test.line)
		require.NoError(t, err)
		assert.Equal(t, test.expected, kind)
	}
}

func TestClassifyEmptyLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\r"} {
		_, err := mini.Classify(line)
		assert.ErrorIs(t, err, mini.ErrMalformedStatement)
	}
}

type parseLineTest struct {
	line     string
	kind     mini.StmtKind
	expected string
}

var parseLineTests = []parseLineTest{
	{"C = A + B", mini.ADDITION, "C = A + B"},
	{"A = 1 + 2", mini.ADDITION, "A = 1 + 2"},
	{"B = -6 + A", mini.ADDITION, "B = -6 + A"},
	{"A = -15", mini.ASSIGNMENT, "A = -15"},
	{"A   =   B", mini.ASSIGNMENT, "A = B"},
	{"Z", mini.OUTPUT, "Z"},
	{"  -21  ", mini.OUTPUT, "-21"},
	{"5", mini.OUTPUT, "5"},
}

func TestParseLine(t *testing.T) {
	for _, test := range parseLineTests {
		t.Logf("parsing %q", test.line)
		stmt, err := mini.ParseLine(mini.At("<test>", 1), test.line)
		require.NoError(t, err)
		assert.Equal(t, test.kind, stmt.Kind())
		assert.Equal(t, test.expected, stmt.String())
	}
}

func TestParseLineAddition(t *testing.T) {
	stmt, err := mini.ParseLine(mini.At("<test>", 4), "K = A + 22")
	require.NoError(t, err)
	add, ok := stmt.(*mini.AdditionStmt)
	require.True(t, ok, "expected *AdditionStmt, got %T", stmt)
	assert.Equal(t, "K", add.Target)
	left, ok := add.Left.(mini.VariableOperand)
	require.True(t, ok)
	assert.Equal(t, "A", left.Name)
	assert.Equal(t, uint(5), left.Column())
	right, ok := add.Right.(mini.LiteralOperand)
	require.True(t, ok)
	assert.Equal(t, int32(22), right.Value)
	assert.Equal(t, uint(4), add.Line())
}

type parseErrorTest struct {
	line string
	err  error
}

var parseErrorTests = []parseErrorTest{
	{"", mini.ErrMalformedStatement},
	{"    ", mini.ErrMalformedStatement},
	{"5 = 3", mini.ErrMalformedStatement},
	{"AB = 3", mini.ErrMalformedStatement},
	{"A + B", mini.ErrArity},
	{"A = B + C + D", mini.ErrArity},
	{"A+B", mini.ErrArity},
	{"A = B = C", mini.ErrArity},
	{"A =", mini.ErrArity},
	{"A B", mini.ErrArity},
	{"A = AB", mini.ErrIntegerParse},
	{"A = 1x", mini.ErrIntegerParse},
	{"A = 99999999999", mini.ErrIntegerParse},
	{"AB", mini.ErrIntegerParse},
	{"C = A + 3.5", mini.ErrIntegerParse},
}

func TestParseLineErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Logf("parsing %q", test.line)
		_, err := mini.ParseLine(mini.At("<test>", 1), test.line)
		assert.ErrorIs(t, err, test.err)
	}
}

func TestParseLineErrorMessage(t *testing.T) {
	_, err := mini.ParseLine(mini.At("prog.mini", 2), "A + B")
	require.Error(t, err)
	assert.Equal(t, `prog.mini:2: error: arity error: addition expects 3 operand(s), got 2 (in "A + B")`, err.Error())

	var e *mini.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, mini.ArityError, e.Kind)
	assert.Equal(t, "A + B", e.Line)
}

func TestParseLineIntegerCause(t *testing.T) {
	_, err := mini.ParseLine(mini.At("<test>", 1), "A = 4294967296")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.ErrorIs(t, numErr, strconv.ErrRange)
}

type parseOperandTest struct {
	word     string
	variable bool
	value    int32
}

var parseOperandTests = []parseOperandTest{
	{"A", true, 0},
	{"z", true, 0},
	{"-", true, 0},
	{"5", false, 5},
	{"0", false, 0},
	{"-5", false, -5},
	{"12", false, 12},
	{"-2147483648", false, -2147483648},
	{"2147483647", false, 2147483647},
}

func TestParseOperand(t *testing.T) {
	for _, test := range parseOperandTests {
		t.Logf("parsing operand %q", test.word)
		op, err := mini.ParseOperand(mini.Token{Kind: mini.WORD, Content: []byte(test.word)})
		require.NoError(t, err)
		if test.variable {
			v, ok := op.(mini.VariableOperand)
			require.True(t, ok, "expected a variable, got %T", op)
			assert.Equal(t, test.word, v.Name)
			continue
		}
		l, ok := op.(mini.LiteralOperand)
		require.True(t, ok, "expected a literal, got %T", op)
		assert.Equal(t, test.value, l.Value)
	}
}

func TestSplitProgram(t *testing.T) {
	assert.Equal(t, []string{"A = 1", "A"}, mini.SplitProgram("A = 1\nA"))
	assert.Equal(t, []string{"A = 1", "A"}, mini.SplitProgram("A = 1\r\nA\r\n"))
	assert.Equal(t, []string{"A = 1", "A"}, mini.SplitProgram("A = 1\nA\n\n  \n"))
	assert.Equal(t, []string{"A = 1", "", "A"}, mini.SplitProgram("A = 1\n\nA"))
	assert.Empty(t, mini.SplitProgram(""))
}
