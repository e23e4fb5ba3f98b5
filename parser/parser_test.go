package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/lexer"
	"github.com/thiremani/graphtex/types"
)

func parseInput(t *testing.T, input string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(lexer.New("test.gt", input))
	return p.ParseProgram(), p
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}

	t.Errorf("parser has %d errors", len(errors))
	for _, e := range errors {
		t.Errorf("parser error: %q", e.Error())
	}
	t.FailNow()
}

func testStatements(t *testing.T, input string, expected []string) *ast.Program {
	t.Helper()
	program, p := parseInput(t, input)
	checkParserErrors(t, p)
	require.Len(t, program.Statements, len(expected))
	for i, s := range program.Statements {
		require.Equal(t, expected[i], s.String(), "statement %d", i)
	}
	return program
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"(a + b) * c", "((a + b) * c)"},
		{"2 * x!", "(2 * x!)"},
		{"(1 + 2)!", "(1 + 2)!"},
		{"x!!", "x!!"},
		{"-2.5 * x", "(-2.5 * x)"},
		{"a - -1", "(a - -1)"},
		{"sin(x) + cos(y, 1)", "(sin(x) + cos(y, 1))"},
		{"f()", "f()"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			testStatements(t, tc.input, []string{tc.expected})
		})
	}
}

func TestBinaryExpressionNodes(t *testing.T) {
	program := testStatements(t, "x % 2", []string{"(x % 2)"})
	es, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	be, ok := es.Expression.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, ast.Mod, be.Operator)

	left, ok := be.Left.(*ast.Variable)
	require.True(t, ok)
	require.Equal(t, "x", left.Name)
	right, ok := be.Right.(*ast.NumberLiteral)
	require.True(t, ok)
	require.Equal(t, "2", right.Value)
}

func TestCallIsNormalCall(t *testing.T) {
	program := testStatements(t, "max(1, x)", []string{"max(1, x)"})
	call := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	require.Equal(t, ast.NormalCall, call.Modifier)
	require.Equal(t, "max", call.Function)
	require.Len(t, call.Arguments, 2)
}

func TestLists(t *testing.T) {
	testStatements(t, "[1, x, 2.5]\n[]\n[1,\n  2,\n  3]", []string{"[1, x, 2.5]", "[]", "[1, 2, 3]"})
}

func TestMacroCall(t *testing.T) {
	program := testStatements(t, "map!(f, xs, [1, 2])", []string{"map!(f, xs, [1, 2])"})
	mc, ok := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.MacroCall)
	require.True(t, ok)
	require.Equal(t, "map", mc.Name)
	require.Len(t, mc.Arguments, 3)
}

func TestPiecewise(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{x > 0: 1, 0}", "{x > 0: 1, 0}"},
		{"{x = 1: 2, 3}", "{x == 1: 2, 3}"},
		{"{x == 1: 2, 3}", "{x == 1: 2, 3}"},
		{"{x >= 1: a, x <= -1: b, x < 0: c, 0}", "{x >= 1: a, x <= -1: b, x < 0: c, 0}"},
		{"{\n  x > 0: 1,\n  0\n}", "{x > 0: 1, 0}"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			testStatements(t, tc.input, []string{tc.expected})
		})
	}

	program := testStatements(t, "{x >= 1: a, x <= 2: b, 0}", []string{"{x >= 1: a, x <= 2: b, 0}"})
	pw := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Piecewise)
	require.Equal(t, ast.GreaterThanEqual, pw.First.Cmp)
	require.Len(t, pw.Rest, 1)
	require.Equal(t, ast.LessThanEqual, pw.Rest[0].Cmp)
}

func TestFuncDef(t *testing.T) {
	program := testStatements(t,
		"f(a: Number, bs: List): List = bs\nc() = 3\ng(): Number = 1\nh(x) + 1",
		[]string{
			"f(a: Number, bs: List): List = bs",
			"c() = 3",
			"g(): Number = 1",
			"(h(x) + 1)",
		})

	fs, ok := program.Statements[0].(*ast.FuncDefStatement)
	require.True(t, ok)
	require.Equal(t, "f", fs.Def.Name)
	require.Equal(t, []ast.Param{
		{Loc: fs.Def.Params[0].Loc, Name: "a", Type: types.Number},
		{Loc: fs.Def.Params[1].Loc, Name: "bs", Type: types.List},
	}, fs.Def.Params)
	require.NotNil(t, fs.Def.Return)
	require.Equal(t, types.List, *fs.Def.Return)

	fs, ok = program.Statements[1].(*ast.FuncDefStatement)
	require.True(t, ok)
	require.Empty(t, fs.Def.Params)
	require.Nil(t, fs.Def.Return)

	_, ok = program.Statements[3].(*ast.ExpressionStatement)
	require.True(t, ok)
}

func TestCommentsAndBlankLines(t *testing.T) {
	testStatements(t, "# heading\n\nx # trailing\n\n\n# another\ny\n", []string{"x", "y"})
}

func TestSpans(t *testing.T) {
	program := testStatements(t, "x\n  sq(a: Number) = a + 1", []string{"x", "sq(a: Number) = (a + 1)"})

	fs := program.Statements[1].(*ast.FuncDefStatement)
	require.Equal(t, "test.gt:2:3", fs.Span().String())
	require.Equal(t, 2, fs.Span().Start.Line)
	require.Equal(t, 3, fs.Span().Start.Column)
	// "sq(a: Number) = a + 1" is 21 runes long
	require.Equal(t, 24, fs.Span().End.Column)

	param := fs.Def.Params[0]
	require.Equal(t, 6, param.Loc.Start.Column)
	require.Equal(t, 15, param.Loc.End.Column)

	body := fs.Body.(*ast.BinaryExpression)
	require.Equal(t, 19, body.Span().Start.Column)
	require.Equal(t, 20, body.Left.Span().End.Column)
}

func TestMacroSpanIncludesCall(t *testing.T) {
	program := testStatements(t, "map!(f, xs)", []string{"map!(f, xs)"})
	sp := program.Statements[0].Span()
	require.Equal(t, 1, sp.Start.Column)
	require.Equal(t, 12, sp.End.Column)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"1 +", "unexpected EOF at start of expression"},
		{"x y", `expected end of statement, got IDENT("y")`},
		{"{1}", "piecewise needs at least one condition before the default value"},
		{"{x > 1: 2}", "expected , and a default value after piecewise condition, got }"},
		{"-x", `unary minus is only allowed before a number, got IDENT("x")`},
		{"f(a: Foo) = a", `unknown type name "Foo"`},
		{"f(a: Number) a", "expected next token to be =, got IDENT(\"a\") instead"},
		{"sin(1", "expected next token to be ), got EOF instead"},
		{"x = 1", "expected end of statement, got ="},
		{"f(List: Number) = 1", "type name List cannot be used as a parameter name"},
		{"Number(a: Number) = a", "type name Number cannot be used as a function name"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			program, p := parseInput(t, tc.input)
			require.NotEmpty(t, p.Errors())
			require.Contains(t, p.Errors()[0].Msg, tc.contains)
			require.Empty(t, program.Statements)
		})
	}
}

func TestErrorRecovery(t *testing.T) {
	program, p := parseInput(t, "1 +\nx\n)\ny")
	require.Len(t, p.Errors(), 2)
	require.Equal(t, 1, p.Errors()[0].Span.Start.Line)
	require.Equal(t, 3, p.Errors()[1].Span.Start.Line)

	require.Len(t, program.Statements, 2)
	require.Equal(t, "x", program.Statements[0].String())
	require.Equal(t, "y", program.Statements[1].String())

	err := p.Err()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "2 errors occurred"), err.Error())
	require.Contains(t, err.Error(), "test.gt:1:")
	require.Contains(t, err.Error(), "test.gt:3:1")
}

func TestErrNilWithoutErrors(t *testing.T) {
	_, p := parseInput(t, "x + 1")
	require.NoError(t, p.Err())
}
