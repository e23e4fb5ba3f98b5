// Package compiler type-checks a parsed program and lowers it to the latex
// output tree. Compilation stops at the first error.
package compiler

import (
	"fmt"
	"maps"
	"strings"

	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/latex"
	"github.com/thiremani/graphtex/types"
)

// Context holds everything the compiler knows about names. It is mutated by
// compilation and is not safe for concurrent use.
type Context struct {
	// Globals are supplied by the caller before compiling.
	Globals map[string]types.ValType
	// Locals are the parameters of the function currently being compiled.
	Locals map[string]types.ValType
	// Functions are the functions the program has defined so far.
	Functions map[string]*Signature

	// Logf is an optional debug logger.
	Logf func(format string, v ...interface{})
}

// NewContext returns a Context seeded with a copy of globals.
func NewContext(globals map[string]types.ValType) *Context {
	g := maps.Clone(globals)
	if g == nil {
		g = make(map[string]types.ValType)
	}
	return &Context{
		Globals:   g,
		Locals:    make(map[string]types.ValType),
		Functions: make(map[string]*Signature),
	}
}

func (ctx *Context) logf(format string, v ...interface{}) {
	if ctx.Logf != nil {
		ctx.Logf(format, v...)
	}
}

// CompileProgram compiles statements in order. On error it returns the
// nodes compiled before the failing statement along with the error.
// Context changes made by earlier statements are kept.
func (ctx *Context) CompileProgram(program *ast.Program) ([]latex.Node, error) {
	out := make([]latex.Node, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		node, err := ctx.CompileStatement(stmt)
		if err != nil {
			return out, err
		}
		out = append(out, node)
	}
	return out, nil
}

func (ctx *Context) CompileStatement(stmt ast.Statement) (latex.Node, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		node, _, err := ctx.CompileExpr(s.Expression)
		return node, err
	case *ast.FuncDefStatement:
		return ctx.compileFuncDef(s)
	}
	return nil, &InternalError{Span: stmt.Span(), Msg: fmt.Sprintf("unsupported statement type %T", stmt)}
}

// compileFuncDef compiles the body with the parameters in scope, then
// registers the function. Because registration happens last, a body cannot
// call its own function.
func (ctx *Context) compileFuncDef(fs *ast.FuncDefStatement) (latex.Node, error) {
	saved := ctx.Locals
	locals := maps.Clone(saved)
	if locals == nil {
		locals = make(map[string]types.ValType)
	}
	for _, p := range fs.Def.Params {
		locals[p.Name] = p.Type
	}
	ctx.Locals = locals
	defer func() { ctx.Locals = saved }()

	body, ret, err := ctx.CompileExpr(fs.Body)
	if err != nil {
		return nil, err
	}
	if fs.Def.Return != nil && *fs.Def.Return != ret {
		return nil, typeMismatch(fs.Body.Span(), ret, *fs.Def.Return)
	}

	params := make([]types.ValType, len(fs.Def.Params))
	names := make([]string, len(fs.Def.Params))
	for i, p := range fs.Def.Params {
		params[i] = p.Type
		names[i] = p.Name
	}
	sig := &Signature{Params: params, Return: ret}
	ctx.Functions[fs.Def.Name] = sig
	ctx.logf("registered function %s(%s) %s", fs.Def.Name, strings.Join(names, ", "), sig)

	return &latex.FuncDef{Name: fs.Def.Name, Args: names, Body: body}, nil
}
