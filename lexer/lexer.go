package lexer

import "github.com/thiremani/graphtex/token"

type Lexer struct {
	FileName     string
	input        []rune
	position     int  // current position in input (points to current rune)
	readPosition int  // current reading position in input (after current rune)
	curr         rune // current rune under examination
	line         int
	column       int
	depth        int // open ( [ { count; newlines inside brackets are whitespace
}

func New(fileName, input string) *Lexer {
	l := &Lexer{FileName: fileName, input: []rune(input), line: 1}
	l.readRune()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	for l.curr == '#' {
		l.skipComment()
		l.skipWhitespace()
	}

	tok := token.Token{
		FileName: l.FileName,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.position,
	}

	switch l.curr {
	case '\n':
		tok.Type, tok.Literal = token.NEWLINE, "\n"
	case '=':
		tok.Type, tok.Literal = l.twoRune('=', token.ASSIGN, token.EQL)
	case '<':
		tok.Type, tok.Literal = l.twoRune('=', token.LSS, token.LEQ)
	case '>':
		tok.Type, tok.Literal = l.twoRune('=', token.GTR, token.GEQ)
	case '+':
		tok.Type, tok.Literal = token.ADD, "+"
	case '-':
		tok.Type, tok.Literal = token.SUB, "-"
	case '*':
		tok.Type, tok.Literal = token.MUL, "*"
	case '/':
		tok.Type, tok.Literal = token.QUO, "/"
	case '%':
		tok.Type, tok.Literal = token.REM, "%"
	case '!':
		tok.Type, tok.Literal = token.BANG, "!"
	case '(':
		tok.Type, tok.Literal = token.LPAREN, "("
		l.depth++
	case ')':
		tok.Type, tok.Literal = token.RPAREN, ")"
		l.closeBracket()
	case '[':
		tok.Type, tok.Literal = token.LBRACK, "["
		l.depth++
	case ']':
		tok.Type, tok.Literal = token.RBRACK, "]"
		l.closeBracket()
	case '{':
		tok.Type, tok.Literal = token.LBRACE, "{"
		l.depth++
	case '}':
		tok.Type, tok.Literal = token.RBRACE, "}"
		l.closeBracket()
	case ',':
		tok.Type, tok.Literal = token.COMMA, ","
	case ':':
		tok.Type, tok.Literal = token.COLON, ":"
	case 0:
		tok.Type, tok.Literal = token.EOF, ""
		return tok
	default:
		if isLetter(l.curr) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.IDENT
			// name!( is a macro invocation, not a factorial
			if l.curr == '!' && l.peekRune() == '(' {
				tok.Type = token.MACRO
				l.readRune()
			}
			return tok
		}
		if isDigit(l.curr) {
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			return tok
		}
		tok.Type, tok.Literal = token.ILLEGAL, string(l.curr)
	}

	l.readRune()
	return tok
}

// twoRune returns the long form when the next rune is second.
func (l *Lexer) twoRune(second rune, short, long token.TokenType) (token.TokenType, string) {
	if l.peekRune() == second {
		first := l.curr
		l.readRune()
		return long, string(first) + string(l.curr)
	}
	return short, string(l.curr)
}

func (l *Lexer) closeBracket() {
	if l.depth > 0 {
		l.depth--
	}
}

func (l *Lexer) skipWhitespace() {
	for l.curr == ' ' || l.curr == '\t' || l.curr == '\r' || (l.curr == '\n' && l.depth > 0) {
		l.readRune()
	}
}

// skipComment stops on the newline so it still ends the statement.
func (l *Lexer) skipComment() {
	for l.curr != '\n' && l.curr != 0 {
		l.readRune()
	}
}

func (l *Lexer) readRune() {
	if l.curr == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.curr = 0
	} else {
		l.curr = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekRune() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for IsLetterOrDigit(l.curr) {
		l.readRune()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.curr) {
		l.readRune()
	}
	if l.curr == '.' && isDigit(l.peekRune()) {
		l.readRune()
		for isDigit(l.curr) {
			l.readRune()
		}
	}
	return string(l.input[position:l.position])
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsLetterOrDigit(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}
