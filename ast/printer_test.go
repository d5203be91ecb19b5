package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esparse/esparse/lexer"
)

func TestPrinter_ExpressionStatement(t *testing.T) {
	arena := NewArena()

	left := arena.Expression(Expression{Kind: ExprLiteral, Literal: LiteralNumber, Value: "1"})
	right := arena.Expression(Expression{Kind: ExprLiteral, Literal: LiteralNumber, Value: "2"})
	sum := arena.Expression(Expression{
		Kind:     ExprBinary,
		Operator: lexer.Addition,
		Left:     left,
		Right:    right,
	})
	statement := arena.Statement(Statement{Kind: StmtExpression, Expression: sum})

	printer := &Printer{}
	printer.Statements([]*Statement{statement})

	assert.Equal(t,
		"ExpressionStatement\n"+
			"  Binary (+)\n"+
			"    Literal (1)\n"+
			"    Literal (2)\n",
		printer.String())
}

func TestPrinter_Declaration(t *testing.T) {
	arena := NewArena()

	name := arena.Expression(Expression{Kind: ExprIdentifier, Name: "x"})
	value := arena.Expression(Expression{Kind: ExprLiteral, Literal: LiteralNumber, Value: "42"})
	statement := arena.Statement(Statement{
		Kind:        StmtDeclaration,
		Declaration: lexer.Let,
		Declarators: []Declarator{{Name: name, Value: value}},
	})

	printer := &Printer{}
	printer.Statement(statement)

	assert.Equal(t,
		"Declaration (let)\n"+
			"  Declarator\n"+
			"    Identifier (x)\n"+
			"    Literal (42)\n",
		printer.String())
}

func TestArena_NodesCount(t *testing.T) {
	arena := NewArena()
	assert.Equal(t, 0, arena.Nodes())

	arena.Expression(Expression{Kind: ExprThis})
	arena.Statement(Statement{Kind: StmtEmpty})
	assert.Equal(t, 2, arena.Nodes())
}
