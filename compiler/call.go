package compiler

import (
	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/latex"
	"github.com/thiremani/graphtex/token"
	"github.com/thiremani/graphtex/types"
)

// Mode changes how call arguments are checked.
type Mode int

const (
	NormalMode Mode = iota
	// MapMode lets a List argument stand in for a Number parameter. The
	// calculator broadcasts the call over the list.
	MapMode
)

func (m Mode) String() string {
	if m == MapMode {
		return "map"
	}
	return "normal"
}

// compiledArg is an argument that has already been lowered, plus what is
// needed to check it against a parameter.
type compiledArg struct {
	Span token.Span
	Node latex.Node
	Type types.ValType
}

func (ctx *Context) compileArgs(exprs []ast.Expression) ([]compiledArg, error) {
	args := make([]compiledArg, 0, len(exprs))
	for _, expr := range exprs {
		node, t, err := ctx.CompileExpr(expr)
		if err != nil {
			return nil, err
		}
		args = append(args, compiledArg{Span: expr.Span(), Node: node, Type: t})
	}
	return args, nil
}

// compileCall checks args against name's signature. Arity errors point at
// the call, type errors at the offending argument. The call's type is the
// signature's return type in either mode.
func (ctx *Context) compileCall(span token.Span, name string, args []compiledArg, mode Mode) (latex.Node, types.ValType, error) {
	sig, ok := ctx.ResolveFunction(name)
	if !ok {
		return nil, 0, &CompileError{Kind: UnknownFunction, Span: span, Name: name}
	}
	if len(args) != len(sig.Params) {
		return nil, 0, &CompileError{Kind: WrongArgCount, Span: span, GotArgs: len(args), ExpectedArgs: len(sig.Params)}
	}

	nodes := make([]latex.Node, len(args))
	for i, arg := range args {
		expect := sig.Params[i]
		broadcast := mode == MapMode && arg.Type == types.List && expect == types.Number
		if arg.Type != expect && !broadcast {
			return nil, 0, typeMismatch(arg.Span, arg.Type, expect)
		}
		nodes[i] = arg.Node
	}

	return &latex.Call{Func: name, IsBuiltin: sig.Builtin, Args: nodes}, sig.Return, nil
}
