package compiler

import (
	"fmt"

	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/latex"
	"github.com/thiremani/graphtex/types"
)

var binaryOps = map[ast.BinaryOperator]latex.BinaryOperator{
	ast.Add:      latex.Add,
	ast.Subtract: latex.Subtract,
	ast.Multiply: latex.Multiply,
	ast.Divide:   latex.Divide,
}

var compareOps = map[ast.CompareOperator]latex.CompareOperator{
	ast.Equal:            latex.Equal,
	ast.GreaterThan:      latex.GreaterThan,
	ast.LessThan:         latex.LessThan,
	ast.GreaterThanEqual: latex.GreaterThanEqual,
	ast.LessThanEqual:    latex.LessThanEqual,
}

// CompileExpr lowers expr and returns its type.
func (ctx *Context) CompileExpr(expr ast.Expression) (latex.Node, types.ValType, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return &latex.Num{Value: e.Value}, types.Number, nil
	case *ast.Variable:
		t, ok := ctx.ResolveVariable(e.Name)
		if !ok {
			return nil, 0, &CompileError{Kind: UndefinedVariable, Span: e.Loc, Name: e.Name}
		}
		return &latex.Variable{Name: e.Name}, t, nil
	case *ast.BinaryExpression:
		return ctx.compileBinary(e)
	case *ast.UnaryExpression:
		operand, err := ctx.compileNumber(e.Operand)
		if err != nil {
			return nil, 0, err
		}
		if e.Operator != ast.Factorial {
			return nil, 0, &InternalError{Span: e.Loc, Msg: fmt.Sprintf("unknown unary operator %d", e.Operator)}
		}
		return &latex.UnaryExpression{Operand: operand, Operator: latex.Factorial}, types.Number, nil
	case *ast.CallExpression:
		if e.Modifier != ast.NormalCall {
			return nil, 0, &InternalError{Span: e.Loc, Msg: "mapped calls are not supported"}
		}
		args, err := ctx.compileArgs(e.Arguments)
		if err != nil {
			return nil, 0, err
		}
		return ctx.compileCall(e.Loc, e.Function, args, NormalMode)
	case *ast.MacroCall:
		return ctx.handleMacro(e)
	case *ast.ListLiteral:
		return ctx.compileList(e)
	case *ast.Piecewise:
		return ctx.compilePiecewise(e)
	case *ast.MapExpression:
		return nil, 0, &InternalError{Span: e.Loc, Msg: "map expressions are not supported"}
	}
	return nil, 0, &InternalError{Span: expr.Span(), Msg: fmt.Sprintf("unsupported expression type %T", expr)}
}

// compileNumber compiles expr and requires it to be a Number. A mismatch is
// reported at expr's span.
func (ctx *Context) compileNumber(expr ast.Expression) (latex.Node, error) {
	node, t, err := ctx.CompileExpr(expr)
	if err != nil {
		return nil, err
	}
	if t != types.Number {
		return nil, typeMismatch(expr.Span(), t, types.Number)
	}
	return node, nil
}

func (ctx *Context) compileBinary(e *ast.BinaryExpression) (latex.Node, types.ValType, error) {
	left, err := ctx.compileNumber(e.Left)
	if err != nil {
		return nil, 0, err
	}
	right, err := ctx.compileNumber(e.Right)
	if err != nil {
		return nil, 0, err
	}

	if e.Operator == ast.Mod {
		return &latex.Call{Func: ModFunc, IsBuiltin: true, Args: []latex.Node{left, right}}, types.Number, nil
	}
	op, ok := binaryOps[e.Operator]
	if !ok {
		return nil, 0, &InternalError{Span: e.Loc, Msg: fmt.Sprintf("no lowering for operator %s", e.Operator)}
	}
	return &latex.BinaryExpression{Left: left, Operator: op, Right: right}, types.Number, nil
}

func (ctx *Context) compileList(e *ast.ListLiteral) (latex.Node, types.ValType, error) {
	items := make([]latex.Node, 0, len(e.Elements))
	for _, elem := range e.Elements {
		node, t, err := ctx.CompileExpr(elem)
		if err != nil {
			return nil, 0, err
		}
		if t == types.List {
			return nil, 0, &CompileError{Kind: NoNestedList, Span: elem.Span()}
		}
		items = append(items, node)
	}
	return &latex.List{Items: items}, types.List, nil
}

// compilePiecewise requires every branch's left side and the default to be
// Numbers. Right sides and results may be any type, and the whole
// expression is typed Number.
func (ctx *Context) compilePiecewise(e *ast.Piecewise) (latex.Node, types.ValType, error) {
	first, err := ctx.branchToCond(e.First)
	if err != nil {
		return nil, 0, err
	}
	rest := make([]*latex.Cond, 0, len(e.Rest))
	for _, b := range e.Rest {
		c, err := ctx.branchToCond(b)
		if err != nil {
			return nil, 0, err
		}
		rest = append(rest, c)
	}
	def, err := ctx.compileNumber(e.Default)
	if err != nil {
		return nil, 0, err
	}
	return &latex.Piecewise{First: first, Rest: rest, Default: def}, types.Number, nil
}

func (ctx *Context) branchToCond(b *ast.Branch) (*latex.Cond, error) {
	left, err := ctx.compileNumber(b.Left)
	if err != nil {
		return nil, err
	}
	right, _, err := ctx.CompileExpr(b.Right)
	if err != nil {
		return nil, err
	}
	result, _, err := ctx.CompileExpr(b.Result)
	if err != nil {
		return nil, err
	}
	op, ok := compareOps[b.Cmp]
	if !ok {
		return nil, &InternalError{Span: b.Left.Span().Join(b.Result.Span()), Msg: fmt.Sprintf("unknown comparison %s", b.Cmp)}
	}
	return &latex.Cond{Left: left, Op: op, Right: right, Result: result}, nil
}
