package compiler

import (
	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/latex"
	"github.com/thiremani/graphtex/types"
)

const mapMacro = "map"

func (ctx *Context) handleMacro(mc *ast.MacroCall) (latex.Node, types.ValType, error) {
	switch mc.Name {
	case mapMacro:
		return ctx.handleMapMacro(mc)
	}
	return nil, 0, &CompileError{Kind: UndefinedMacro, Span: mc.Loc, Name: mc.Name}
}

// handleMapMacro expands map!(f, args...) to a call of f compiled in
// MapMode. f must be written as a bare name.
func (ctx *Context) handleMapMacro(mc *ast.MacroCall) (latex.Node, types.ValType, error) {
	if len(mc.Arguments) < 2 {
		return nil, 0, &CompileError{Kind: BadMapMacro, Span: mc.Loc}
	}
	fn, ok := mc.Arguments[0].(*ast.Variable)
	if !ok {
		return nil, 0, &CompileError{Kind: ExpectedFunction, Span: mc.Arguments[0].Span()}
	}

	args, err := ctx.compileArgs(mc.Arguments[1:])
	if err != nil {
		return nil, 0, err
	}
	ctx.logf("expanding %s!(%s) over %d argument(s)", mapMacro, fn.Name, len(args))
	return ctx.compileCall(mc.Loc, fn.Name, args, MapMode)
}
