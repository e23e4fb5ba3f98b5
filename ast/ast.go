package ast

import (
	"bytes"
	"strings"

	"github.com/thiremani/graphtex/token"
	"github.com/thiremani/graphtex/types"
)

// The base Node interface
type Node interface {
	Span() token.Span
	String() string
}

// All statement nodes implement this
type Statement interface {
	Node
	statementNode()
}

// All expression nodes implement this
type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) Span() token.Span {
	if len(p.Statements) == 0 {
		return token.Span{}
	}
	first := p.Statements[0].Span()
	return first.Join(p.Statements[len(p.Statements)-1].Span())
}

func (p *Program) String() string {
	var out bytes.Buffer

	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}

	return out.String()
}

func printVec(a []Expression) string {
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Statements
type ExpressionStatement struct {
	Loc        token.Span
	Expression Expression
}

func (es *ExpressionStatement) statementNode()   {}
func (es *ExpressionStatement) Span() token.Span { return es.Loc }
func (es *ExpressionStatement) String() string   { return es.Expression.String() }

type Param struct {
	Loc  token.Span
	Name string
	Type types.ValType
}

// FunctionDefinition is the head of a definition: name, typed parameters
// and an optional return type annotation.
type FunctionDefinition struct {
	Name   string
	Params []Param
	Return *types.ValType
}

type FuncDefStatement struct {
	Loc  token.Span
	Def  FunctionDefinition
	Body Expression
}

func (fs *FuncDefStatement) statementNode()   {}
func (fs *FuncDefStatement) Span() token.Span { return fs.Loc }
func (fs *FuncDefStatement) String() string {
	var out bytes.Buffer

	params := []string{}
	for _, p := range fs.Def.Params {
		params = append(params, p.Name+": "+p.Type.String())
	}

	out.WriteString(fs.Def.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(")")
	if fs.Def.Return != nil {
		out.WriteString(": " + fs.Def.Return.String())
	}
	out.WriteString(" = ")
	out.WriteString(fs.Body.String())

	return out.String()
}

// Expressions
type NumberLiteral struct {
	Loc   token.Span
	Value string // raw text, never parsed
}

func (nl *NumberLiteral) expressionNode()  {}
func (nl *NumberLiteral) Span() token.Span { return nl.Loc }
func (nl *NumberLiteral) String() string   { return nl.Value }

type Variable struct {
	Loc  token.Span
	Name string
}

func (v *Variable) expressionNode()  {}
func (v *Variable) Span() token.Span { return v.Loc }
func (v *Variable) String() string   { return v.Name }

type BinaryOperator int

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Mod
)

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Mod:
		return "%"
	}
	return "?"
}

type BinaryExpression struct {
	Loc      token.Span
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (be *BinaryExpression) expressionNode()  {}
func (be *BinaryExpression) Span() token.Span { return be.Loc }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator.String() + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")

	return out.String()
}

type UnaryOperator int

const (
	Factorial UnaryOperator = iota
)

type UnaryExpression struct {
	Loc      token.Span
	Operand  Expression
	Operator UnaryOperator
}

func (ue *UnaryExpression) expressionNode()  {}
func (ue *UnaryExpression) Span() token.Span { return ue.Loc }
func (ue *UnaryExpression) String() string   { return ue.Operand.String() + "!" }

type CallModifier int

const (
	NormalCall CallModifier = iota
	// MapCall is reserved for a first-class mapped call syntax that the
	// parser does not produce yet.
	MapCall
)

type CallExpression struct {
	Loc       token.Span
	Modifier  CallModifier
	Function  string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()  {}
func (ce *CallExpression) Span() token.Span { return ce.Loc }
func (ce *CallExpression) String() string {
	return ce.Function + "(" + printVec(ce.Arguments) + ")"
}

// MacroCall is name!(args). Only map! is expanded by the compiler.
type MacroCall struct {
	Loc       token.Span
	Name      string
	Arguments []Expression
}

func (mc *MacroCall) expressionNode()  {}
func (mc *MacroCall) Span() token.Span { return mc.Loc }
func (mc *MacroCall) String() string {
	return mc.Name + "!(" + printVec(mc.Arguments) + ")"
}

type ListLiteral struct {
	Loc      token.Span
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()  {}
func (ll *ListLiteral) Span() token.Span { return ll.Loc }
func (ll *ListLiteral) String() string   { return "[" + printVec(ll.Elements) + "]" }

type CompareOperator int

// There is deliberately no "not equal".
const (
	Equal CompareOperator = iota
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
)

func (op CompareOperator) String() string {
	switch op {
	case Equal:
		return "=="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterThanEqual:
		return ">="
	case LessThanEqual:
		return "<="
	}
	return "?"
}

// Branch is one "left cmp right: result" clause of a piecewise.
type Branch struct {
	Left   Expression
	Cmp    CompareOperator
	Right  Expression
	Result Expression
}

func (b *Branch) String() string {
	return b.Left.String() + " " + b.Cmp.String() + " " + b.Right.String() + ": " + b.Result.String()
}

type Piecewise struct {
	Loc     token.Span
	First   *Branch
	Rest    []*Branch
	Default Expression
}

func (pw *Piecewise) expressionNode()  {}
func (pw *Piecewise) Span() token.Span { return pw.Loc }
func (pw *Piecewise) String() string {
	parts := []string{pw.First.String()}
	for _, b := range pw.Rest {
		parts = append(parts, b.String())
	}
	parts = append(parts, pw.Default.String())
	return "{" + strings.Join(parts, ", ") + "}"
}

// MapExpression is reserved; nothing constructs it from source yet.
type MapExpression struct {
	Loc   token.Span
	Inner Expression
}

func (me *MapExpression) expressionNode()  {}
func (me *MapExpression) Span() token.Span { return me.Loc }
func (me *MapExpression) String() string   { return "map " + me.Inner.String() }
