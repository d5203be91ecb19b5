package parser

import (
	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/lexer"
)

// statement dispatches on the already consumed first token of a
// statement.
func (p *Parser) statement(token lexer.Token) *ast.Statement {
	switch token.Type {
	case lexer.Semicolon:
		return p.arena.Statement(ast.Statement{
			Kind:  ast.StmtEmpty,
			Start: token.Start,
			End:   token.End,
		})
	case lexer.BraceOpen:
		return p.blockStatement(token)
	case lexer.Declaration:
		return p.variableDeclarationStatement(token)
	case lexer.Return:
		return p.returnStatement(token)
	case lexer.Break:
		return p.breakStatement(token)
	case lexer.Function:
		return p.functionStatement(token)
	case lexer.Class:
		return p.classStatement(token)
	case lexer.If:
		return p.ifStatement(token)
	case lexer.While:
		return p.whileStatement(token)
	case lexer.Do:
		return p.doStatement(token)
	case lexer.For:
		return p.forStatement(token)
	case lexer.Throw:
		return p.throwStatement(token)
	case lexer.Try:
		return p.tryStatement(token)
	case lexer.Identifier:
		return p.labeledOrExpressionStatement(token)
	default:
		return p.expressionStatement(token)
	}
}

// expectStatement consumes a token and parses the statement it starts.
func (p *Parser) expectStatement() *ast.Statement {
	token := p.next()
	if token.Type == lexer.EndOfProgram || token.Type == lexer.UnexpectedEndOfProgram {
		p.unexpected(token)
		return p.badStatement(token.Start)
	}
	return p.statement(token)
}

// blockStatement parses `{ ... }` with the opening brace consumed.
func (p *Parser) blockStatement(brace lexer.Token) *ast.Statement {
	body := p.blockBodyTail()

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtBlock,
		Statements: body,
		Start:      brace.Start,
		End:        p.lastEnd,
	})
}

// blockBodyTail parses statements up to the closing brace.
func (p *Parser) blockBodyTail() []*ast.Statement {
	var body []*ast.Statement

	for {
		token := p.next()
		switch token.Type {
		case lexer.BraceClose:
			return body
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			p.unexpected(token)
			return body
		}
		body = append(body, p.statement(token))
	}
}

// blockBody expects an opening brace and parses the block.
func (p *Parser) blockBody() []*ast.Statement {
	if !p.expect(lexer.BraceOpen) {
		return nil
	}
	return p.blockBodyTail()
}

// expressionStatement parses a statement that is a bare expression.
func (p *Parser) expressionStatement(token lexer.Token) *ast.Statement {
	expression := p.sequenceOrExpressionFrom(token)

	if expression.Kind == ast.ExprError {
		p.recover()
		return p.badStatement(token.Start)
	}

	p.expectSemicolon()

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtExpression,
		Expression: expression,
		Start:      expression.Start,
		End:        p.lastEnd,
	})
}

// labeledOrExpressionStatement resolves a leading identifier: a label
// when a colon follows, otherwise the start of an expression statement.
func (p *Parser) labeledOrExpressionStatement(token lexer.Token) *ast.Statement {
	if p.peek().Type == lexer.Colon {
		p.consume()
		body := p.expectStatement()

		return p.arena.Statement(ast.Statement{
			Kind:  ast.StmtLabeled,
			Label: token.Value,
			Body:  body,
			Start: token.Start,
			End:   body.End,
		})
	}

	first := p.complexExpression(p.identifier(token), 0)
	expression := p.sequenceOr(first)

	p.expectSemicolon()

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtExpression,
		Expression: expression,
		Start:      expression.Start,
		End:        p.lastEnd,
	})
}

// variableDeclarationStatement parses `var`/`let`/`const` declarations.
func (p *Parser) variableDeclarationStatement(token lexer.Token) *ast.Statement {
	declarators := p.variableDeclarators()

	statement := p.arena.Statement(ast.Statement{
		Kind:        ast.StmtDeclaration,
		Declaration: token.Declaration,
		Declarators: declarators,
		Start:       token.Start,
		End:         p.lastEnd,
	})

	p.expectSemicolon()
	statement.End = p.lastEnd

	return statement
}

// variableDeclarator parses one `name [= value]` pair. The name may be
// an identifier or an array/object pattern.
func (p *Parser) variableDeclarator() ast.Declarator {
	token := p.next()

	var name *ast.Expression
	switch token.Type {
	case lexer.Identifier:
		name = p.identifier(token)
	case lexer.BraceOpen:
		name = p.objectExpression(token)
	case lexer.BracketOpen:
		name = p.arrayExpression(token)
	default:
		p.unexpected(token)
		name = p.badExpression(token)
	}

	declarator := ast.Declarator{
		Name:  name,
		Start: token.Start,
		End:   name.End,
	}

	if next := p.peek(); next.Type == lexer.Operator && next.Operator == lexer.Assign {
		p.consume()
		declarator.Value = p.expression(0)
		declarator.End = declarator.Value.End
	}

	return declarator
}

// variableDeclarators parses the comma-separated declarator list.
func (p *Parser) variableDeclarators() []ast.Declarator {
	declarators := []ast.Declarator{p.variableDeclarator()}

	for p.peek().Type == lexer.Comma {
		p.consume()
		declarators = append(declarators, p.variableDeclarator())
	}

	return declarators
}

// returnStatement parses `return [expr]` under ASI rules: a line
// terminator after the keyword ends the statement.
func (p *Parser) returnStatement(token lexer.Token) *ast.Statement {
	var value *ast.Expression

	switch p.asi() {
	case lexer.NoSemicolon:
		value = p.sequenceOrExpression()
		p.expectSemicolon()
	case lexer.ExplicitSemicolon:
		p.consume()
	case lexer.ImplicitSemicolon:
	}

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtReturn,
		Expression: value,
		Start:      token.Start,
		End:        p.lastEnd,
	})
}

// breakStatement parses `break [label]` under the same ASI rules.
func (p *Parser) breakStatement(token lexer.Token) *ast.Statement {
	var label *ast.Expression

	switch p.asi() {
	case lexer.NoSemicolon:
		if ident, ok := p.expectIdentifier(); ok {
			label = p.identifier(ident)
		}
		p.expectSemicolon()
	case lexer.ExplicitSemicolon:
		p.consume()
	case lexer.ImplicitSemicolon:
	}

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtBreak,
		Expression: label,
		Start:      token.Start,
		End:        p.lastEnd,
	})
}

// throwStatement parses `throw expr`.
func (p *Parser) throwStatement(token lexer.Token) *ast.Statement {
	value := p.sequenceOrExpression()
	p.expectSemicolon()

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtThrow,
		Expression: value,
		Start:      token.Start,
		End:        p.lastEnd,
	})
}

// tryStatement parses `try { ... } catch (err) { ... }`.
func (p *Parser) tryStatement(token lexer.Token) *ast.Statement {
	body := p.blockBody()

	p.expect(lexer.Catch)
	p.expect(lexer.ParenOpen)

	var param *ast.Expression
	if ident, ok := p.expectIdentifier(); ok {
		param = p.identifier(ident)
	}
	p.expect(lexer.ParenClose)

	handler := p.blockBody()

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtTry,
		Statements: body,
		CatchParam: param,
		Handler:    handler,
		Start:      token.Start,
		End:        p.lastEnd,
	})
}

// ifStatement parses `if (test) consequent [else alternate]`.
func (p *Parser) ifStatement(token lexer.Token) *ast.Statement {
	p.expect(lexer.ParenOpen)
	test := p.expression(0)
	p.expect(lexer.ParenClose)

	consequent := p.expectStatement()

	var alternate *ast.Statement
	if p.peek().Type == lexer.Else {
		p.consume()
		alternate = p.expectStatement()
	}

	end := consequent.End
	if alternate != nil {
		end = alternate.End
	}

	return p.arena.Statement(ast.Statement{
		Kind:       ast.StmtIf,
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
		Start:      token.Start,
		End:        end,
	})
}

// whileStatement parses `while (test) body`.
func (p *Parser) whileStatement(token lexer.Token) *ast.Statement {
	p.expect(lexer.ParenOpen)
	test := p.expression(0)
	p.expect(lexer.ParenClose)

	body := p.expectStatement()

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtWhile,
		Test:  test,
		Body:  body,
		Start: token.Start,
		End:   body.End,
	})
}

// doStatement parses `do body while test`. The test is an ordinary
// expression, so the customary parentheses arrive as a parenthesised
// expression.
func (p *Parser) doStatement(token lexer.Token) *ast.Statement {
	body := p.expectStatement()

	p.expect(lexer.While)
	test := p.expression(0)

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtDo,
		Body:  body,
		Test:  test,
		Start: token.Start,
		End:   p.lastEnd,
	})
}

// functionStatement parses a function declaration; the name is
// mandatory.
func (p *Parser) functionStatement(token lexer.Token) *ast.Statement {
	name, ok := p.expectIdentifier()
	if !ok {
		p.recover()
		return p.badStatement(token.Start)
	}

	p.expect(lexer.ParenOpen)

	function := &ast.Function{
		Name:   name.Value,
		Params: p.parameterList(),
		Body:   p.blockBody(),
	}

	return p.arena.Statement(ast.Statement{
		Kind:     ast.StmtFunction,
		Function: function,
		Start:    token.Start,
		End:      p.lastEnd,
	})
}

// classStatement parses a class declaration; the name is mandatory.
func (p *Parser) classStatement(token lexer.Token) *ast.Statement {
	name, ok := p.expectIdentifier()
	if !ok {
		p.recover()
		return p.badStatement(token.Start)
	}

	class := p.classAfterName(name.Value)

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtClass,
		Class: class,
		Start: token.Start,
		End:   p.lastEnd,
	})
}

// classAfterName parses the optional `extends Identifier` heritage and
// the class body.
func (p *Parser) classAfterName(name string) *ast.Class {
	extends := ""

	token := p.next()
	switch token.Type {
	case lexer.Extends:
		if ident, ok := p.expectIdentifier(); ok {
			extends = ident.Value
		}
		p.expect(lexer.BraceOpen)
	case lexer.BraceOpen:
	default:
		p.unexpected(token)
		return &ast.Class{Name: name, Extends: extends}
	}

	return &ast.Class{
		Name:    name,
		Extends: extends,
		Members: p.classBody(),
	}
}

// classBody parses class members up to the closing brace. Stray
// semicolons between members are skipped silently.
func (p *Parser) classBody() []ast.ClassMember {
	var members []ast.ClassMember

	for {
		token := p.next()

		isStatic := false
		if token.Type == lexer.Static {
			isStatic = true
			token = p.next()
		}

		var key ast.PropertyKey
		switch token.Type {
		case lexer.Semicolon:
			continue
		case lexer.BraceClose:
			return members
		case lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			p.unexpected(token)
			return members
		case lexer.LiteralNumber:
			key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: token.Value}
		case lexer.LiteralBinary:
			key = ast.PropertyKey{Kind: ast.KeyBinary, Number: token.Number}
		case lexer.Identifier:
			key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: token.Value}
		case lexer.BracketOpen:
			computed := p.sequenceOrExpression()
			p.expect(lexer.BracketClose)
			key = ast.PropertyKey{Kind: ast.KeyComputed, Computed: computed}
		default:
			word, ok := token.Word()
			if !ok {
				p.unexpected(token)
				members = append(members, ast.ClassMember{
					Kind:  ast.ClassMemberError,
					Start: token.Start,
					End:   token.End,
				})
				p.recoverClassMember()
				continue
			}
			key = ast.PropertyKey{Kind: ast.KeyLiteral, Literal: word}
		}

		members = append(members, p.classMember(key, isStatic, token.Start))
	}
}

// classMember parses the remainder of a member after its key: a method
// (constructor when the key spells `constructor` and the member is not
// static), or a field initializer.
func (p *Parser) classMember(key ast.PropertyKey, isStatic bool, start int) ast.ClassMember {
	token := p.next()

	switch {
	case token.Type == lexer.ParenOpen:
		params := p.parameterList()
		body := p.blockBody()

		if !isStatic && key.Kind == ast.KeyLiteral && key.Literal == "constructor" {
			return ast.ClassMember{
				Kind:   ast.ClassConstructor,
				Key:    key,
				Params: params,
				Body:   body,
				Start:  start,
				End:    p.lastEnd,
			}
		}
		return ast.ClassMember{
			Kind:   ast.ClassMethod,
			Static: isStatic,
			Key:    key,
			Params: params,
			Body:   body,
			Start:  start,
			End:    p.lastEnd,
		}

	case token.Type == lexer.Operator && token.Operator == lexer.Assign:
		value := p.expression(0)
		return ast.ClassMember{
			Kind:   ast.ClassProperty,
			Static: isStatic,
			Key:    key,
			Value:  value,
			Start:  start,
			End:    value.End,
		}
	}

	p.unexpected(token)
	p.recoverClassMember()
	return ast.ClassMember{
		Kind:  ast.ClassMemberError,
		Start: start,
		End:   token.End,
	}
}

// recoverClassMember resyncs inside a class body: past a `;`, or up to
// the `}` closing the body.
func (p *Parser) recoverClassMember() {
	for {
		switch p.peek().Type {
		case lexer.Semicolon:
			p.consume()
			return
		case lexer.BraceClose, lexer.EndOfProgram, lexer.UnexpectedEndOfProgram:
			return
		default:
			p.consume()
		}
	}
}

// forStatement resolves the three-way `for (` ambiguity. The init
// segment is parsed first; a top-level `in` binary in it is rewritten
// into a ForIn head, and a following `in` or contextual `of` selects
// the enumeration forms. Otherwise the classic C-style head applies.
func (p *Parser) forStatement(token lexer.Token) *ast.Statement {
	p.expect(lexer.ParenOpen)

	var init *ast.Statement

	head := p.next()
	switch head.Type {
	case lexer.Semicolon:
		// empty init

	case lexer.Declaration:
		declarators := p.variableDeclarators()

		if len(declarators) == 1 {
			if value := declarators[0].Value; value != nil &&
				value.Kind == ast.ExprBinary && value.Operator == lexer.In {
				// `for (let x = y in z)`: hoist the `in` out of the
				// initializer.
				declarators[0].Value = value.Left
				declarators[0].End = value.Left.End

				left := p.arena.Statement(ast.Statement{
					Kind:        ast.StmtDeclaration,
					Declaration: head.Declaration,
					Declarators: declarators,
					Start:       head.Start,
					End:         value.Left.End,
				})
				return p.forInFromParts(token, left, value.Right)
			}
		}

		init = p.arena.Statement(ast.Statement{
			Kind:        ast.StmtDeclaration,
			Declaration: head.Declaration,
			Declarators: declarators,
			Start:       head.Start,
			End:         p.lastEnd,
		})

	default:
		expression := p.sequenceOrExpressionFrom(head)

		if expression.Kind == ast.ExprBinary && expression.Operator == lexer.In {
			left := p.arena.Statement(ast.Statement{
				Kind:       ast.StmtExpression,
				Expression: expression.Left,
				Start:      expression.Left.Start,
				End:        expression.Left.End,
			})
			return p.forInFromParts(token, left, expression.Right)
		}

		init = p.arena.Statement(ast.Statement{
			Kind:       ast.StmtExpression,
			Expression: expression,
			Start:      expression.Start,
			End:        expression.End,
		})
	}

	if init != nil {
		next := p.next()
		switch {
		case next.Type == lexer.Operator && next.Operator == lexer.In:
			return p.forInTail(token, init)
		case next.Type == lexer.Identifier && next.Value == "of":
			return p.forOfTail(token, init)
		case next.Type == lexer.Semicolon:
		default:
			p.unexpected(next)
			p.recover()
			return p.badStatement(token.Start)
		}
	}

	var test *ast.Expression
	next := p.next()
	if next.Type != lexer.Semicolon {
		test = p.expressionFrom(next, 0)
		p.expect(lexer.Semicolon)
	}

	var update *ast.Expression
	next = p.next()
	if next.Type != lexer.ParenClose {
		update = p.expressionFrom(next, 0)
		p.expect(lexer.ParenClose)
	}

	body := p.expectStatement()

	return p.arena.Statement(ast.Statement{
		Kind:   ast.StmtFor,
		Init:   init,
		Test:   test,
		Update: update,
		Body:   body,
		Start:  token.Start,
		End:    body.End,
	})
}

// forInFromParts finishes a ForIn whose right side was carved out of
// the init expression; the head's `)` is still pending.
func (p *Parser) forInFromParts(token lexer.Token, left *ast.Statement, right *ast.Expression) *ast.Statement {
	p.expect(lexer.ParenClose)
	body := p.expectStatement()

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtForIn,
		Left:  left,
		Right: right,
		Body:  body,
		Start: token.Start,
		End:   body.End,
	})
}

// forInTail parses the right side and body of `for (left in right)`.
func (p *Parser) forInTail(token lexer.Token, left *ast.Statement) *ast.Statement {
	right := p.sequenceOrExpression()
	p.expect(lexer.ParenClose)
	body := p.expectStatement()

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtForIn,
		Left:  left,
		Right: right,
		Body:  body,
		Start: token.Start,
		End:   body.End,
	})
}

// forOfTail parses the right side and body of `for (left of right)`.
func (p *Parser) forOfTail(token lexer.Token, left *ast.Statement) *ast.Statement {
	right := p.sequenceOrExpression()
	p.expect(lexer.ParenClose)
	body := p.expectStatement()

	return p.arena.Statement(ast.Statement{
		Kind:  ast.StmtForOf,
		Left:  left,
		Right: right,
		Body:  body,
		Start: token.Start,
		End:   body.End,
	})
}
