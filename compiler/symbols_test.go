package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thiremani/graphtex/types"
)

func TestScopesFirstLayerWins(t *testing.T) {
	scopes := Scopes[int]{
		NewLayer("outer", map[string]int{"a": 1}),
		NewLayer("inner", map[string]int{"a": 2, "b": 3}),
		NewLayer[int]("empty", nil),
	}

	v, layer, ok := Get(scopes, "a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, "outer", layer)

	v, layer, ok = Get(scopes, "b")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, "inner", layer)

	_, _, ok = Get(scopes, "c")
	require.False(t, ok)
}

func TestResolveVariable(t *testing.T) {
	ctx := NewContext(map[string]types.ValType{"x": types.Number})
	ctx.Locals["x"] = types.List
	ctx.Locals["p"] = types.List

	typ, ok := ctx.ResolveVariable("x")
	require.True(t, ok)
	require.Equal(t, types.Number, typ)

	typ, ok = ctx.ResolveVariable("p")
	require.True(t, ok)
	require.Equal(t, types.List, typ)

	_, ok = ctx.ResolveVariable("q")
	require.False(t, ok)
}

func TestResolveFunctionBuiltin(t *testing.T) {
	ctx := NewContext(nil)

	sig, ok := ctx.ResolveFunction("sin")
	require.True(t, ok)
	require.True(t, sig.Builtin)
	require.Equal(t, []types.ValType{types.Number}, sig.Params)
	require.Equal(t, types.Number, sig.Return)

	// each lookup gets its own copy of the table entry
	sig.Params[0] = types.List
	require.Equal(t, types.Number, Builtins["sin"].Params[0])

	_, ok = ctx.ResolveFunction("nope")
	require.False(t, ok)
}

func TestResolveFunctionPrefersDefined(t *testing.T) {
	ctx := NewContext(nil)
	defined := &Signature{Params: []types.ValType{types.List}, Return: types.List}
	ctx.Functions["max"] = defined

	sig, ok := ctx.ResolveFunction("max")
	require.True(t, ok)
	require.Same(t, defined, sig)
	require.False(t, sig.Builtin)
}

func TestModIsBinaryBuiltin(t *testing.T) {
	b, ok := Builtins[ModFunc]
	require.True(t, ok)
	require.Equal(t, []types.ValType{types.Number, types.Number}, b.Params)
	require.Equal(t, types.Number, b.Return)
}

func TestSignatureString(t *testing.T) {
	sig := &Signature{Params: []types.ValType{types.Number, types.List}, Return: types.List}
	require.Equal(t, "(Number, List) -> List", sig.String())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      *CompileError
		expected string
	}{
		{&CompileError{Kind: UnknownFunction, Name: "f"}, "Unknown function 'f'"},
		{&CompileError{Kind: WrongArgCount, GotArgs: 3, ExpectedArgs: 2}, "Expected 2 arguments but got 3"},
		{&CompileError{Kind: TypeMismatch, Got: types.List, Expected: types.Number}, "Expected type Number but got List"},
		{&CompileError{Kind: UndefinedVariable, Name: "v"}, "Undefined variable 'v'"},
		{&CompileError{Kind: UndefinedMacro, Name: "m"}, "Undefined macro 'm'"},
		{&CompileError{Kind: ExpectedFunction}, "Expected a function"},
		{&CompileError{Kind: NoNestedList}, "Storing lists inside of lists is not allowed"},
	}

	for _, tc := range tests {
		t.Run(tc.err.Kind.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Msg())
		})
	}
}
