// Package latex holds the render-ready output tree and turns it into the
// LaTeX dialect the graphing calculator accepts. Nodes carry no types and
// are never changed after construction.
package latex

type Node interface {
	latexNode()
}

type BinaryOperator int

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
)

type UnaryOperator int

const (
	Factorial UnaryOperator = iota
)

type CompareOperator int

const (
	Equal CompareOperator = iota
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
)

type Variable struct {
	Name string
}

type Num struct {
	Value string
}

type Call struct {
	Func      string
	IsBuiltin bool
	Args      []Node
}

type BinaryExpression struct {
	Left     Node
	Operator BinaryOperator
	Right    Node
}

type UnaryExpression struct {
	Operand  Node
	Operator UnaryOperator
}

type List struct {
	Items []Node
}

type Assignment struct {
	Left  Node
	Right Node
}

type FuncDef struct {
	Name string
	Args []string
	Body Node
}

// Cond is one "left cmp right: result" clause.
type Cond struct {
	Left   Node
	Op     CompareOperator
	Right  Node
	Result Node
}

type Piecewise struct {
	First   *Cond
	Rest    []*Cond
	Default Node
}

func (*Variable) latexNode()         {}
func (*Num) latexNode()              {}
func (*Call) latexNode()             {}
func (*BinaryExpression) latexNode() {}
func (*UnaryExpression) latexNode()  {}
func (*List) latexNode()             {}
func (*Assignment) latexNode()       {}
func (*FuncDef) latexNode()          {}
func (*Piecewise) latexNode()        {}
