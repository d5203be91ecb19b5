package parser

import (
	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/lexer"
)

// Implicit binding powers of the non-operator left denotations: a call
// binds at 18, a computed member at 19, a tagged template at 0.
const (
	callBindingPower     = 18
	computedBindingPower = 19
)

// expression consumes a token and parses an expression with the given
// left binding power.
func (p *Parser) expression(lbp uint8) *ast.Expression {
	return p.expressionFrom(p.next(), lbp)
}

// expressionFrom parses an expression whose first token has already been
// consumed. The token selects the null denotation; complexExpression
// then climbs the operator chain.
func (p *Parser) expressionFrom(token lexer.Token, lbp uint8) *ast.Expression {
	var left *ast.Expression

	switch token.Type {
	case lexer.This:
		left = p.arena.Expression(ast.Expression{
			Kind:  ast.ExprThis,
			Start: token.Start,
			End:   token.End,
		})

	case lexer.Identifier:
		left = p.identifier(token)

	case lexer.LiteralNumber, lexer.LiteralBinary, lexer.LiteralString,
		lexer.LiteralTrue, lexer.LiteralFalse, lexer.LiteralNull,
		lexer.LiteralUndefined:
		left = p.literal(token)

	case lexer.Operator:
		switch {
		case token.Operator == lexer.Division || token.Operator == lexer.DivideAssign:
			// A slash in operand position starts a regular expression;
			// rescan it through the lexer's re-entry hook.
			left = p.regularExpression()
		case token.Operator.Prefix():
			left = p.prefixExpression(token)
		default:
			p.unexpected(token)
			return p.badExpression(token)
		}

	case lexer.ParenOpen:
		left = p.parenExpression(token)

	case lexer.BracketOpen:
		left = p.arrayExpression(token)

	case lexer.BraceOpen:
		left = p.objectExpression(token)

	case lexer.Function:
		left = p.functionExpression(token)

	case lexer.Class:
		left = p.classExpression(token)

	case lexer.TemplateOpen, lexer.TemplateClosed:
		left = p.templateExpression(nil, token)

	default:
		p.unexpected(token)
		return p.badExpression(token)
	}

	return p.complexExpression(left, lbp)
}

// complexExpression climbs the operator chain: as long as the lookahead
// is an operator whose binding power is at least lbp (or a call,
// computed member or template whose implicit power is at least lbp), consume
// it and extend left through the matching left denotation.
func (p *Parser) complexExpression(left *ast.Expression, lbp uint8) *ast.Expression {
	for {
		token := p.peek()

		switch token.Type {
		case lexer.Operator:
			rbp := token.Operator.BindingPower()
			if rbp == 0 || rbp < lbp {
				return left
			}
			p.consume()

			if token.Operator == lexer.FatArrow {
				return p.arrowFunctionExpression(left, left.Start)
			}
			left = p.infixExpression(left, token, rbp)

		case lexer.ParenOpen:
			if lbp > callBindingPower {
				return left
			}
			p.consume()

			arguments := p.expressionList()
			left = p.arena.Expression(ast.Expression{
				Kind:      ast.ExprCall,
				Callee:    left,
				Arguments: arguments,
				Start:     left.Start,
				End:       p.lastEnd,
			})

		case lexer.BracketOpen:
			if lbp > computedBindingPower {
				return left
			}
			p.consume()

			property := p.sequenceOrExpression()
			p.expect(lexer.BracketClose)
			left = p.arena.Expression(ast.Expression{
				Kind:   ast.ExprComputedMember,
				Object: left,
				Index:  property,
				Start:  left.Start,
				End:    p.lastEnd,
			})

		case lexer.TemplateOpen, lexer.TemplateClosed:
			if lbp > 0 {
				return left
			}
			p.consume()

			left = p.templateExpression(left, token)

		default:
			return left
		}
	}
}

// infixExpression is the left denotation of a plain operator token.
func (p *Parser) infixExpression(left *ast.Expression, token lexer.Token, rbp uint8) *ast.Expression {
	op := token.Operator

	switch op {
	case lexer.Increment, lexer.Decrement:
		return p.arena.Expression(ast.Expression{
			Kind:     ast.ExprPostfix,
			Operator: op,
			Operand:  left,
			Start:    left.Start,
			End:      token.End,
		})

	case lexer.Accessor:
		member := p.next()
		name, ok := member.Word()
		if !ok {
			p.unexpected(member)
			return p.badExpression(member)
		}
		return p.arena.Expression(ast.Expression{
			Kind:     ast.ExprMember,
			Object:   left,
			Property: name,
			Start:    left.Start,
			End:      member.End,
		})

	case lexer.Conditional:
		consequent := p.expression(rbp)
		p.expect(lexer.Colon)
		alternate := p.expression(rbp)
		return p.arena.Expression(ast.Expression{
			Kind:       ast.ExprConditional,
			Test:       left,
			Consequent: consequent,
			Alternate:  alternate,
			Start:      left.Start,
			End:        alternate.End,
		})
	}

	// Left-associative operators parse their right operand one notch
	// above their own power so equal-power chains fold to the left;
	// right-associative ones recurse at their own power.
	rhsBp := rbp
	if !op.RightAssociative() {
		rhsBp++
	}
	right := p.expression(rhsBp)

	return p.arena.Expression(ast.Expression{
		Kind:     ast.ExprBinary,
		Operator: op,
		Left:     left,
		Right:    right,
		Start:    left.Start,
		End:      right.End,
	})
}

// prefixExpression parses a unary operator and its operand.
func (p *Parser) prefixExpression(token lexer.Token) *ast.Expression {
	operand := p.expression(15)

	return p.arena.Expression(ast.Expression{
		Kind:     ast.ExprPrefix,
		Operator: token.Operator,
		Operand:  operand,
		Start:    token.Start,
		End:      operand.End,
	})
}

// regularExpression asks the lexer to rescan the current slash token as
// a regular expression literal.
func (p *Parser) regularExpression() *ast.Expression {
	token := p.lexer.ReadRegularExpression()
	if token.Type != lexer.LiteralRegEx {
		p.unexpected(token)
		return p.badExpression(token)
	}
	p.lastEnd = token.End
	return p.literal(token)
}

// parenExpression resolves the `(` ambiguity: an empty pair must begin
// an arrow function; anything else is parsed as a full expression first
// and reinterpreted as a parameter list only if `=>` follows.
func (p *Parser) parenExpression(paren lexer.Token) *ast.Expression {
	token := p.next()
	if token.Type == lexer.ParenClose {
		arrow := p.next()
		if arrow.Type != lexer.Operator || arrow.Operator != lexer.FatArrow {
			p.unexpected(arrow)
			return p.badExpression(arrow)
		}
		return p.arrowFunctionExpression(nil, paren.Start)
	}

	expression := p.expressionFrom(token, 0)
	expression = p.sequenceOr(expression)

	p.expect(lexer.ParenClose)

	if expression.Kind == ast.ExprBinary {
		expression.Parenthesized = true
	}
	return expression
}

// arrowFunctionExpression reinterprets an already parsed parenthesised
// expression (or a bare identifier) as an arrow function parameter list
// and parses the body. A nil argument is the empty `() =>` list.
func (p *Parser) arrowFunctionExpression(params *ast.Expression, start int) *ast.Expression {
	list, ok := p.arrowParameters(params)
	if !ok {
		p.errorAt(params.Start, params.End)
		return p.badExpression(lexer.Token{Start: params.Start, End: params.End})
	}

	token := p.next()
	var body *ast.Statement
	if token.Type == lexer.BraceOpen {
		statements := p.blockBodyTail()
		body = p.arena.Statement(ast.Statement{
			Kind:       ast.StmtBlock,
			Statements: statements,
			Start:      token.Start,
			End:        p.lastEnd,
		})
	} else {
		expression := p.expressionFrom(token, 0)
		body = p.arena.Statement(ast.Statement{
			Kind:       ast.StmtExpression,
			Expression: expression,
			Start:      expression.Start,
			End:        expression.End,
		})
	}

	return p.arena.Expression(ast.Expression{
		Kind:   ast.ExprArrowFunction,
		Params: list,
		Body:   body,
		Start:  start,
		End:    body.End,
	})
}

// arrowParameters converts the parenthesised expression shapes the
// grammar admits into a parameter list: a lone identifier, a
// parenthesised assignment of an identifier (a defaulted parameter), or
// a sequence of either.
func (p *Parser) arrowParameters(expression *ast.Expression) ([]ast.Parameter, bool) {
	if expression == nil {
		return nil, true
	}

	switch expression.Kind {
	case ast.ExprIdentifier:
		return []ast.Parameter{{
			Name:  expression.Name,
			Start: expression.Start,
			End:   expression.End,
		}}, true

	case ast.ExprBinary:
		if expression.Operator != lexer.Assign || !expression.Parenthesized ||
			expression.Left.Kind != ast.ExprIdentifier {
			return nil, false
		}
		return []ast.Parameter{{
			Name:    expression.Left.Name,
			Default: expression.Right,
			Start:   expression.Start,
			End:     expression.End,
		}}, true

	case ast.ExprSequence:
		list := make([]ast.Parameter, 0, len(expression.Items))
		for _, item := range expression.Items {
			switch {
			case item.Kind == ast.ExprIdentifier:
				list = append(list, ast.Parameter{
					Name:  item.Name,
					Start: item.Start,
					End:   item.End,
				})
			case item.Kind == ast.ExprBinary && item.Operator == lexer.Assign &&
				item.Left.Kind == ast.ExprIdentifier:
				list = append(list, ast.Parameter{
					Name:    item.Left.Name,
					Default: item.Right,
					Start:   item.Start,
					End:     item.End,
				})
			default:
				return nil, false
			}
		}
		return list, true
	}

	return nil, false
}

// sequenceOrExpression parses an expression and extends it into a
// sequence if commas follow.
func (p *Parser) sequenceOrExpression() *ast.Expression {
	return p.sequenceOrExpressionFrom(p.next())
}

// sequenceOrExpressionFrom is sequenceOrExpression with the first token
// already consumed.
func (p *Parser) sequenceOrExpressionFrom(token lexer.Token) *ast.Expression {
	return p.sequenceOr(p.expressionFrom(token, 0))
}

// sequenceOr extends first into a comma sequence when the lookahead is a
// comma; a sequence always has at least two elements.
func (p *Parser) sequenceOr(first *ast.Expression) *ast.Expression {
	if p.peek().Type != lexer.Comma {
		return first
	}

	items := []*ast.Expression{first}
	for p.peek().Type == lexer.Comma {
		p.consume()
		items = append(items, p.expression(0))
	}

	return p.arena.Expression(ast.Expression{
		Kind:  ast.ExprSequence,
		Items: items,
		Start: first.Start,
		End:   items[len(items)-1].End,
	})
}

// expressionList parses a parenthesised, comma-separated argument list;
// the opening paren has already been consumed.
func (p *Parser) expressionList() []*ast.Expression {
	var list []*ast.Expression

	for {
		token := p.next()
		switch token.Type {
		case lexer.ParenClose:
			return list
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			p.unexpected(token)
			return list
		}

		list = append(list, p.expressionFrom(token, 0))

		token = p.next()
		switch token.Type {
		case lexer.ParenClose:
			return list
		case lexer.Comma:
		default:
			p.unexpected(token)
			p.skipUntil(lexer.ParenClose)
			return list
		}
	}
}

// arrayExpression parses an array literal; consecutive commas leave
// Void holes.
func (p *Parser) arrayExpression(bracket lexer.Token) *ast.Expression {
	var items []*ast.Expression

loop:
	for {
		token := p.next()
		switch token.Type {
		case lexer.BracketClose:
			break loop
		case lexer.Comma:
			items = append(items, p.arena.Expression(ast.Expression{
				Kind:  ast.ExprVoid,
				Start: token.Start,
				End:   token.End,
			}))
			continue
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			p.unexpected(token)
			break loop
		}

		items = append(items, p.expressionFrom(token, 0))

		token = p.next()
		switch token.Type {
		case lexer.BracketClose:
			break loop
		case lexer.Comma:
		default:
			p.unexpected(token)
			p.skipUntil(lexer.BracketClose)
			break loop
		}
	}

	return p.arena.Expression(ast.Expression{
		Kind:  ast.ExprArray,
		Items: items,
		Start: bracket.Start,
		End:   p.lastEnd,
	})
}

// objectExpression parses an object literal.
func (p *Parser) objectExpression(brace lexer.Token) *ast.Expression {
	members := p.objectMemberList()

	return p.arena.Expression(ast.Expression{
		Kind:    ast.ExprObject,
		Members: members,
		Start:   brace.Start,
		End:     p.lastEnd,
	})
}

func (p *Parser) objectMemberList() []ast.ObjectMember {
	var members []ast.ObjectMember

	for {
		token := p.next()
		switch token.Type {
		case lexer.BraceClose:
			return members
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			p.unexpected(token)
			return members
		}

		members = append(members, p.objectMember(token))

		token = p.next()
		switch token.Type {
		case lexer.BraceClose:
			return members
		case lexer.Comma:
		default:
			p.unexpected(token)
			p.skipUntil(lexer.BraceClose)
			return members
		}
	}
}

// objectMember parses one object literal entry: shorthand, key-value,
// or method. Word tokens such as `null` or `typeof` in key position are
// reinterpreted as identifier spellings.
func (p *Parser) objectMember(token lexer.Token) ast.ObjectMember {
	start := token.Start
	var key ast.PropertyKey

	switch token.Type {
	case lexer.Identifier:
		next := p.peek().Type
		if next != lexer.Colon && next != lexer.ParenOpen {
			return ast.ObjectMember{
				Kind:  ast.ObjectShorthand,
				Key:   ast.PropertyKey{Kind: ast.KeyLiteral, Literal: token.Value},
				Start: start,
				End:   token.End,
			}
		}
		key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: token.Value}

	case lexer.BracketOpen:
		computed := p.expression(0)
		p.expect(lexer.BracketClose)
		key = ast.PropertyKey{Kind: ast.KeyComputed, Computed: computed}

	case lexer.LiteralString, lexer.LiteralNumber:
		key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: token.Value}

	case lexer.LiteralBinary:
		key = ast.PropertyKey{Kind: ast.KeyBinary, Number: token.Number}

	default:
		word, ok := token.Word()
		if !ok {
			p.unexpected(token)
			return ast.ObjectMember{Kind: ast.ObjectShorthand, Start: start, End: token.End}
		}
		key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: word}
	}

	token = p.next()
	switch {
	case token.Type == lexer.Colon:
		value := p.expression(0)
		return ast.ObjectMember{
			Kind:  ast.ObjectValue,
			Key:   key,
			Value: value,
			Start: start,
			End:   value.End,
		}

	case token.Type == lexer.ParenOpen:
		params := p.parameterList()
		body := p.blockBody()
		return ast.ObjectMember{
			Kind:   ast.ObjectMethod,
			Key:    key,
			Params: params,
			Body:   body,
			Start:  start,
			End:    p.lastEnd,
		}
	}

	p.unexpected(token)
	return ast.ObjectMember{Kind: ast.ObjectShorthand, Key: key, Start: start, End: token.End}
}

// functionExpression parses a function expression; the name is
// optional.
func (p *Parser) functionExpression(keyword lexer.Token) *ast.Expression {
	name := ""

	token := p.next()
	switch token.Type {
	case lexer.Identifier:
		name = token.Value
		p.expect(lexer.ParenOpen)
	case lexer.ParenOpen:
	default:
		p.unexpected(token)
		return p.badExpression(token)
	}

	function := &ast.Function{
		Name:   name,
		Params: p.parameterList(),
		Body:   p.blockBody(),
	}

	return p.arena.Expression(ast.Expression{
		Kind:     ast.ExprFunction,
		Function: function,
		Start:    keyword.Start,
		End:      p.lastEnd,
	})
}

// classExpression parses a class expression; the name is optional.
func (p *Parser) classExpression(keyword lexer.Token) *ast.Expression {
	name := ""
	if p.peek().Type == lexer.Identifier {
		name = p.next().Value
	}

	class := p.classAfterName(name)

	return p.arena.Expression(ast.Expression{
		Kind:  ast.ExprClass,
		Class: class,
		Start: keyword.Start,
		End:   p.lastEnd,
	})
}

// templateExpression parses a template literal from its first quasi
// token, re-entering the lexer after every interpolation. The quasi
// list is always one longer than the expression list, also on error
// paths.
func (p *Parser) templateExpression(tag *ast.Expression, token lexer.Token) *ast.Expression {
	start := token.Start
	if tag != nil {
		start = tag.Start
	}

	var expressions []*ast.Expression
	var quasis []string

	for {
		switch token.Type {
		case lexer.TemplateOpen:
			quasis = append(quasis, token.Value)
			expressions = append(expressions, p.sequenceOrExpression())

			if !p.expect(lexer.BraceClose) {
				quasis = append(quasis, "")
				return p.arena.Expression(ast.Expression{
					Kind:        ast.ExprTemplate,
					Tag:         tag,
					Expressions: expressions,
					Quasis:      quasis,
					Start:       start,
					End:         p.lastEnd,
				})
			}
			token = p.lexer.ReadTemplateToken()
			p.lastEnd = token.End

		case lexer.TemplateClosed:
			quasis = append(quasis, token.Value)
			return p.arena.Expression(ast.Expression{
				Kind:        ast.ExprTemplate,
				Tag:         tag,
				Expressions: expressions,
				Quasis:      quasis,
				Start:       start,
				End:         token.End,
			})

		default:
			p.unexpected(token)
			quasis = append(quasis, "")
			return p.arena.Expression(ast.Expression{
				Kind:        ast.ExprTemplate,
				Tag:         tag,
				Expressions: expressions,
				Quasis:      quasis,
				Start:       start,
				End:         p.lastEnd,
			})
		}
	}
}

// parameterList parses a formal parameter list; the opening paren has
// already been consumed. Defaulted parameters may appear anywhere in
// the list.
func (p *Parser) parameterList() []ast.Parameter {
	var list []ast.Parameter

	for {
		token := p.next()
		switch token.Type {
		case lexer.ParenClose:
			return list
		case lexer.Identifier:
		default:
			p.unexpected(token)
			p.skipUntil(lexer.ParenClose)
			return list
		}

		param := ast.Parameter{
			Name:  token.Value,
			Start: token.Start,
			End:   token.End,
		}
		if next := p.peek(); next.Type == lexer.Operator && next.Operator == lexer.Assign {
			p.consume()
			param.Default = p.expression(0)
			param.End = param.Default.End
		}
		list = append(list, param)

		token = p.next()
		switch token.Type {
		case lexer.ParenClose:
			return list
		case lexer.Comma:
		default:
			p.unexpected(token)
			p.skipUntil(lexer.ParenClose)
			return list
		}
	}
}

// skipUntil consumes tokens up to and including the wanted closer, used
// to resync inside bracketed lists. Stops at the end of input.
func (p *Parser) skipUntil(tt lexer.TokenType) {
	for {
		token := p.peek()
		switch token.Type {
		case tt:
			p.consume()
			return
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			return
		}
		p.consume()
	}
}
