package compiler

import "github.com/thiremani/graphtex/types"

// ModFunc is the builtin that the % operator lowers to.
const ModFunc = "mod"

// BuiltinFunc describes a builtin function's type signature
type BuiltinFunc struct {
	Params []types.ValType
	Return types.ValType
}

var (
	unaryNumber  = &BuiltinFunc{Params: []types.ValType{types.Number}, Return: types.Number}
	binaryNumber = &BuiltinFunc{Params: []types.ValType{types.Number, types.Number}, Return: types.Number}
)

// Builtins maps builtin function names to their type information. Every
// name here has a LaTeX control sequence of the same name.
var Builtins = map[string]*BuiltinFunc{
	"sin":    unaryNumber,
	"cos":    unaryNumber,
	"tan":    unaryNumber,
	"sec":    unaryNumber,
	"csc":    unaryNumber,
	"cot":    unaryNumber,
	"arcsin": unaryNumber,
	"arccos": unaryNumber,
	"arctan": unaryNumber,
	"sinh":   unaryNumber,
	"cosh":   unaryNumber,
	"tanh":   unaryNumber,
	"ln":     unaryNumber,
	"log":    unaryNumber,
	"exp":    unaryNumber,
	"min":    binaryNumber,
	"max":    binaryNumber,
	"gcd":    binaryNumber,
	"lcm":    binaryNumber,
	ModFunc:  binaryNumber,
}
