package latex

import (
	"fmt"
	"strings"
)

// FormatIdentifier subscripts everything after the first character, so
// "abc" becomes "a_{bc}". Identifiers are ASCII.
func FormatIdentifier(v string) string {
	if len(v) <= 1 {
		return v
	}
	return fmt.Sprintf("%s_{%s}", v[:1], v[1:])
}

func renderAll(items []Node) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Render(item)
	}
	return out
}

func isSum(n Node) bool {
	be, ok := n.(*BinaryExpression)
	return ok && (be.Operator == Add || be.Operator == Subtract)
}

// needsDot reports whether juxtaposing l and r would be misread, as with
// two numbers or a right side that starts with a minus sign.
func needsDot(l, r string) bool {
	if l == "" || r == "" {
		return false
	}
	if r[0] == '-' {
		return true
	}
	return isDigit(l[len(l)-1]) && isDigit(r[0])
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func group(s string) string {
	return `\left(` + s + `\right)`
}

func renderBinary(be *BinaryExpression) string {
	ls := Render(be.Left)
	rs := Render(be.Right)
	switch be.Operator {
	case Add:
		return ls + "+" + rs
	case Subtract:
		if isSum(be.Right) {
			rs = group(rs)
		}
		return ls + "-" + rs
	case Multiply:
		if isSum(be.Left) {
			ls = group(ls)
		}
		if isSum(be.Right) {
			rs = group(rs)
		}
		if needsDot(ls, rs) {
			return ls + `\cdot ` + rs
		}
		return ls + rs
	case Divide:
		return `\frac{` + ls + `}{` + rs + `}`
	}
	panic(fmt.Sprintf("unknown binary operator %d", be.Operator))
}

func compareOpStr(op CompareOperator) string {
	switch op {
	case Equal:
		return "="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterThanEqual:
		return `\ge `
	case LessThanEqual:
		return `\le `
	}
	panic(fmt.Sprintf("unknown compare operator %d", op))
}

func renderCond(c *Cond) string {
	return Render(c.Left) + compareOpStr(c.Op) + Render(c.Right) + ":" + Render(c.Result)
}

// Render produces the LaTeX text for one output node.
func Render(n Node) string {
	switch l := n.(type) {
	case *Variable:
		return FormatIdentifier(l.Name)
	case *Num:
		return l.Value
	case *Call:
		name := l.Func
		if l.IsBuiltin {
			name = `\` + name
		} else {
			name = FormatIdentifier(name)
		}
		return name + `\left(` + strings.Join(renderAll(l.Args), ",") + `\right)`
	case *BinaryExpression:
		return renderBinary(l)
	case *UnaryExpression:
		s := Render(l.Operand)
		switch l.Operand.(type) {
		case *BinaryExpression, *UnaryExpression:
			s = group(s)
		}
		return s + "!"
	case *List:
		return `\left[` + strings.Join(renderAll(l.Items), ",") + `\right]`
	case *Assignment:
		return Render(l.Left) + "=" + Render(l.Right)
	case *FuncDef:
		args := make([]string, len(l.Args))
		for i, a := range l.Args {
			args[i] = FormatIdentifier(a)
		}
		return FormatIdentifier(l.Name) + `\left(` + strings.Join(args, ",") + `\right)=` + Render(l.Body)
	case *Piecewise:
		conds := []string{renderCond(l.First)}
		for _, c := range l.Rest {
			conds = append(conds, renderCond(c))
		}
		return `\left\{` + strings.Join(conds, ",") + "," + Render(l.Default) + `\right\}`
	}
	panic(fmt.Sprintf("cannot render node of type %T", n))
}
