package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	literal_beg
	// Identifiers + literals
	IDENT  // f, xs, abc
	NUMBER // 12, 3.25
	MACRO  // map! (the name, when directly followed by "(")
	literal_end

	operator_beg
	// Operators and delimiters
	ASSIGN // =
	BANG   // !

	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %

	LPAREN // (
	LBRACK // [
	LBRACE // {
	COMMA  // ,
	COLON  // :

	RPAREN // )
	RBRACK // ]
	RBRACE // }
	operator_end

	comparison_beg
	EQL // ==
	LSS // <
	GTR // >
	LEQ // <=
	GEQ // >=
	comparison_end

	NEWLINE
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	MACRO:  "MACRO",

	ASSIGN: "=",
	BANG:   "!",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",

	LPAREN: "(",
	LBRACK: "[",
	LBRACE: "{",
	COMMA:  ",",
	COLON:  ":",

	RPAREN: ")",
	RBRACK: "]",
	RBRACE: "}",

	EQL: "==",
	LSS: "<",
	GTR: ">",
	LEQ: "<=",
	GEQ: ">=",

	NEWLINE: "NEWLINE",
}

type Token struct {
	Type     TokenType
	Literal  string
	FileName string
	Line     int // 1-based
	Column   int // 1-based, in runes
	Offset   int // rune offset into the input
}

// IsComparison reports whether the token can sit between the two sides of
// a piecewise condition. A lone "=" counts as equality there.
func (t Token) IsComparison() bool {
	return t.Type == ASSIGN || (comparison_beg < t.Type && comparison_end > t.Type)
}

func (t Token) Pos() Pos {
	return Pos{Offset: t.Offset, Line: t.Line, Column: t.Column}
}

// End is the position just past the token's literal.
func (t Token) End() Pos {
	n := len([]rune(t.Literal))
	if t.Type == MACRO {
		n++ // the "!" is consumed with the name
	}
	return Pos{Offset: t.Offset + n, Line: t.Line, Column: t.Column + n}
}

func (t Token) Span() Span {
	return Span{FileName: t.FileName, Start: t.Pos(), End: t.End()}
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, NUMBER, MACRO, ILLEGAL:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	}
	return t.Type.String()
}

func (tokenType TokenType) String() string {
	s := ""
	if 0 <= tokenType && tokenType < TokenType(len(tokens)) {
		s = tokens[tokenType]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tokenType)) + ")"
	}

	return s
}
