package compiler

import (
	"fmt"

	"github.com/thiremani/graphtex/token"
	"github.com/thiremani/graphtex/types"
)

type ErrorKind int

const (
	UnknownFunction ErrorKind = iota
	WrongArgCount
	TypeMismatch
	UndefinedVariable
	UndefinedMacro
	BadMapMacro
	ExpectedFunction
	NoNestedList
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownFunction:
		return "UnknownFunction"
	case WrongArgCount:
		return "WrongArgCount"
	case TypeMismatch:
		return "TypeMismatch"
	case UndefinedVariable:
		return "UndefinedVariable"
	case UndefinedMacro:
		return "UndefinedMacro"
	case BadMapMacro:
		return "BadMapMacro"
	case ExpectedFunction:
		return "ExpectedFunction"
	case NoNestedList:
		return "NoNestedList"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CompileError is a user-facing error. Which of the detail fields are set
// depends on Kind:
//
//   - UnknownFunction, UndefinedVariable, UndefinedMacro: Name
//   - WrongArgCount: GotArgs, ExpectedArgs
//   - TypeMismatch: Got, Expected
type CompileError struct {
	Kind         ErrorKind
	Span         token.Span
	Name         string
	Got          types.ValType
	Expected     types.ValType
	GotArgs      int
	ExpectedArgs int
}

func (e *CompileError) Msg() string {
	switch e.Kind {
	case UnknownFunction:
		return fmt.Sprintf("Unknown function '%s'", e.Name)
	case WrongArgCount:
		return fmt.Sprintf("Expected %d arguments but got %d", e.ExpectedArgs, e.GotArgs)
	case TypeMismatch:
		return fmt.Sprintf("Expected type %s but got %s", e.Expected, e.Got)
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable '%s'", e.Name)
	case UndefinedMacro:
		return fmt.Sprintf("Undefined macro '%s'", e.Name)
	case BadMapMacro:
		return "The map! macro takes a function and then at least one list to pass as an argument"
	case ExpectedFunction:
		return "Expected a function"
	case NoNestedList:
		return "Storing lists inside of lists is not allowed"
	}
	return e.Kind.String()
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg())
}

// InternalError marks a path the compiler should never reach from parser
// output, such as the reserved mapped-call forms. It is a fault in the
// compiler or its caller, not a problem with the user's program.
type InternalError struct {
	Span token.Span
	Msg  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal compiler error at %s: %s", e.Span, e.Msg)
}

func typeMismatch(span token.Span, got, expected types.ValType) *CompileError {
	return &CompileError{Kind: TypeMismatch, Span: span, Got: got, Expected: expected}
}
