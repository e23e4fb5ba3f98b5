package compiler

import (
	"fmt"
	"slices"

	"github.com/thiremani/graphtex/types"
)

// Signature is a function's parameter types and return type. Signatures
// are created once and only read afterwards, so they are shared by pointer.
type Signature struct {
	Params  []types.ValType
	Return  types.ValType
	Builtin bool
}

func (s *Signature) String() string {
	return fmt.Sprintf("(%s) -> %s", types.TypesStr(s.Params), s.Return)
}

const (
	globalLayer = "global"
	localLayer  = "local"
)

// variableScopes is the lookup order for variables: globals win over the
// parameters of the function being compiled.
func (ctx *Context) variableScopes() Scopes[types.ValType] {
	return Scopes[types.ValType]{
		NewLayer(globalLayer, ctx.Globals),
		NewLayer(localLayer, ctx.Locals),
	}
}

// ResolveVariable looks name up in globals first, then locals.
func (ctx *Context) ResolveVariable(name string) (types.ValType, bool) {
	t, _, ok := Get(ctx.variableScopes(), name)
	return t, ok
}

// ResolveFunction prefers functions defined by the program and falls back
// to the builtin table. Builtin hits get their own Signature copy.
func (ctx *Context) ResolveFunction(name string) (*Signature, bool) {
	if sig, ok := ctx.Functions[name]; ok {
		return sig, true
	}
	b, ok := Builtins[name]
	if !ok {
		return nil, false
	}
	return &Signature{
		Params:  slices.Clone(b.Params),
		Return:  b.Return,
		Builtin: true,
	}, true
}
