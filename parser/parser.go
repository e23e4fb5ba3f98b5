package parser

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/thiremani/graphtex/ast"
	"github.com/thiremani/graphtex/lexer"
	"github.com/thiremani/graphtex/token"
	"github.com/thiremani/graphtex/types"
)

const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * / %
	POSTFIX // x!
)

var precedences = map[token.TokenType]int{
	token.ADD:  SUM,
	token.SUB:  SUM,
	token.MUL:  PRODUCT,
	token.QUO:  PRODUCT,
	token.REM:  PRODUCT,
	token.BANG: POSTFIX,
}

var binaryOperators = map[token.TokenType]ast.BinaryOperator{
	token.ADD: ast.Add,
	token.SUB: ast.Subtract,
	token.MUL: ast.Multiply,
	token.QUO: ast.Divide,
	token.REM: ast.Mod,
}

var compareOperators = map[token.TokenType]ast.CompareOperator{
	token.ASSIGN: ast.Equal,
	token.EQL:    ast.Equal,
	token.GTR:    ast.GreaterThan,
	token.LSS:    ast.LessThan,
	token.GEQ:    ast.GreaterThanEqual,
	token.LEQ:    ast.LessThanEqual,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// ParseError is a syntax error at a source span.
type ParseError struct {
	Span token.Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}

type Parser struct {
	tokens []token.Token
	pos    int // index of curToken in tokens
	errors []*ParseError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		errors: []*ParseError{},
	}

	// buffer everything so function definitions can be told apart from
	// calls by looking a few tokens ahead
	for {
		tok := l.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.SUB, p.parseNegativeLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACK, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parsePiecewise)
	p.registerPrefix(token.MACRO, p.parseMacroCall)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for tt := range binaryOperators {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(token.BANG, p.parseFactorial)

	p.pos = -1
	p.nextToken()

	return p
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokenAt(p.pos)
	p.peekToken = p.tokenAt(p.pos + 1)
}

// peekN returns the token n positions after curToken.
func (p *Parser) peekN(n int) token.Token {
	return p.tokenAt(p.pos + n)
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// Err combines every parse error into one, or returns nil.
func (p *Parser) Err() error {
	var err *multierror.Error
	for _, e := range p.errors {
		err = multierror.Append(err, e)
	}
	return err.ErrorOrNil()
}

func (p *Parser) errorf(span token.Span, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{Span: span, Msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) peekError(t token.TokenType) {
	p.errorf(p.peekToken.Span(), "expected next token to be %s, got %s instead", t, p.peekToken)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errorf(tok.Span(), "unexpected %s at start of expression", tok)
}

func (p *Parser) stmtEnded() bool {
	return p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.EOF)
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		prevLen := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil && len(p.errors) == prevLen {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipLine()
	}

	return program
}

// skipLine moves past the rest of the current line.
func (p *Parser) skipLine() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement
	if p.isFuncDef() {
		stmt = p.parseFuncDef()
	} else {
		first := p.curToken
		exp := p.parseExpression(LOWEST)
		if exp == nil {
			return nil
		}
		stmt = &ast.ExpressionStatement{Loc: first.Span().Join(exp.Span()), Expression: exp}
	}
	if stmt == nil {
		return nil
	}

	if !p.stmtEnded() {
		p.errorf(p.peekToken.Span(), "expected end of statement, got %s", p.peekToken)
		return nil
	}
	p.nextToken()
	return stmt
}

// isFuncDef reports whether the line starts with name(a: T, ...) or name() followed by ":" or "=".
func (p *Parser) isFuncDef() bool {
	if !p.curTokenIs(token.IDENT) || !p.peekTokenIs(token.LPAREN) {
		return false
	}
	switch p.peekN(2).Type {
	case token.RPAREN:
		next := p.peekN(3).Type
		return next == token.COLON || next == token.ASSIGN
	case token.IDENT:
		return p.peekN(3).Type == token.COLON
	}
	return false
}

func (p *Parser) parseFuncDef() ast.Statement {
	nameTok := p.curToken
	if types.IsReservedTypeName(nameTok.Literal) {
		p.errorf(nameTok.Span(), "type name %s cannot be used as a function name", nameTok.Literal)
		return nil
	}
	def := ast.FunctionDefinition{Name: nameTok.Literal}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		return nil
	}
	def.Params = params

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		ret, ok := p.parseTypeName()
		if !ok {
			return nil
		}
		def.Return = &ret
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	return &ast.FuncDefStatement{
		Loc:  nameTok.Span().Join(body.Span()),
		Def:  def,
		Body: body,
	}
}

// parseParams is called with curToken on "(" and leaves it on ")".
func (p *Parser) parseParams() ([]ast.Param, bool) {
	params := []ast.Param{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		nameTok := p.curToken
		if types.IsReservedTypeName(nameTok.Literal) {
			p.errorf(nameTok.Span(), "type name %s cannot be used as a parameter name", nameTok.Literal)
			return nil, false
		}
		if !p.expectPeek(token.COLON) {
			return nil, false
		}
		typ, ok := p.parseTypeName()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{
			Loc:  token.SpanOf(nameTok, p.curToken),
			Name: nameTok.Literal,
			Type: typ,
		})

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

// parseTypeName is called with curToken on ":" and leaves it on the type name.
func (p *Parser) parseTypeName() (types.ValType, bool) {
	if !p.expectPeek(token.IDENT) {
		return types.Number, false
	}
	typ, err := types.ParseValType(p.curToken.Literal)
	if err != nil {
		p.errorf(p.curToken.Span(), "%s", err)
		return types.Number, false
	}
	return typ, true
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	ident := p.curToken
	if !p.peekTokenIs(token.LPAREN) {
		return &ast.Variable{Loc: ident.Span(), Name: ident.Literal}
	}

	p.nextToken()
	args := p.parseExpressionList(token.RPAREN)
	if args == nil {
		return nil
	}
	return &ast.CallExpression{
		Loc:       token.SpanOf(ident, p.curToken),
		Modifier:  ast.NormalCall,
		Function:  ident.Literal,
		Arguments: args,
	}
}

func (p *Parser) parseMacroCall() ast.Expression {
	name := p.curToken
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	args := p.parseExpressionList(token.RPAREN)
	if args == nil {
		return nil
	}
	return &ast.MacroCall{
		Loc:       token.SpanOf(name, p.curToken),
		Name:      name.Literal,
		Arguments: args,
	}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Loc: p.curToken.Span(), Value: p.curToken.Literal}
}

// parseNegativeLiteral folds "-" into the literal that follows. There is no
// general negation in the language.
func (p *Parser) parseNegativeLiteral() ast.Expression {
	minus := p.curToken
	if !p.peekTokenIs(token.NUMBER) {
		p.errorf(minus.Span(), "unary minus is only allowed before a number, got %s", p.peekToken)
		return nil
	}
	p.nextToken()
	return &ast.NumberLiteral{
		Loc:   token.SpanOf(minus, p.curToken),
		Value: "-" + p.curToken.Literal,
	}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op := binaryOperators[p.curToken.Type]
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &ast.BinaryExpression{
		Loc:      left.Span().Join(right.Span()),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

func (p *Parser) parseFactorial(operand ast.Expression) ast.Expression {
	return &ast.UnaryExpression{
		Loc:      operand.Span().Join(p.curToken.Span()),
		Operand:  operand,
		Operator: ast.Factorial,
	}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseListLiteral() ast.Expression {
	open := p.curToken
	elems := p.parseExpressionList(token.RBRACK)
	if elems == nil {
		return nil
	}
	return &ast.ListLiteral{Loc: token.SpanOf(open, p.curToken), Elements: elems}
}

// parsePiecewise reads {l cmp r: res, ..., default}. At least one branch and
// the trailing default are required.
func (p *Parser) parsePiecewise() ast.Expression {
	open := p.curToken
	branches := []*ast.Branch{}

	for {
		p.nextToken()
		left := p.parseExpression(LOWEST)
		if left == nil {
			return nil
		}

		if !p.peekToken.IsComparison() {
			// the default value closes the piecewise
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			if len(branches) == 0 {
				p.errorf(token.SpanOf(open, p.curToken), "piecewise needs at least one condition before the default value")
				return nil
			}
			return &ast.Piecewise{
				Loc:     token.SpanOf(open, p.curToken),
				First:   branches[0],
				Rest:    branches[1:],
				Default: left,
			}
		}

		p.nextToken()
		cmp := compareOperators[p.curToken.Type]
		p.nextToken()
		right := p.parseExpression(LOWEST)
		if right == nil {
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		result := p.parseExpression(LOWEST)
		if result == nil {
			return nil
		}
		branches = append(branches, &ast.Branch{Left: left, Cmp: cmp, Right: right, Result: result})

		if !p.peekTokenIs(token.COMMA) {
			p.errorf(p.peekToken.Span(), "expected , and a default value after piecewise condition, got %s", p.peekToken)
			return nil
		}
		p.nextToken()
	}
}

// parseExpressionList is called on the opening token and leaves curToken on end.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	list = append(list, exp)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		exp := p.parseExpression(LOWEST)
		if exp == nil {
			return nil
		}
		list = append(list, exp)
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}
