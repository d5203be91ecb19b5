package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/lexer"
)

func TestParser_BlockStatement(t *testing.T) {
	statement := onlyStatement(t, `{ true }`)

	require.Equal(t, ast.StmtBlock, statement.Kind)
	require.Len(t, statement.Statements, 1)

	inner := statement.Statements[0]
	require.Equal(t, ast.StmtExpression, inner.Kind)
	require.Equal(t, ast.ExprLiteral, inner.Expression.Kind)
	assert.Equal(t, ast.LiteralTrue, inner.Expression.Literal)
}

func TestParser_EmptyStatement(t *testing.T) {
	statement := onlyStatement(t, `;`)
	assert.Equal(t, ast.StmtEmpty, statement.Kind)
}

func TestParser_LabeledBlockStatement(t *testing.T) {
	statement := onlyStatement(t, `foobar: { true }`)

	require.Equal(t, ast.StmtLabeled, statement.Kind)
	assert.Equal(t, "foobar", statement.Label)
	require.Equal(t, ast.StmtBlock, statement.Body.Kind)
}

func TestParser_IfStatement(t *testing.T) {
	statement := onlyStatement(t, `if (true) foo;`)

	require.Equal(t, ast.StmtIf, statement.Kind)
	require.Equal(t, ast.ExprLiteral, statement.Test.Kind)
	assert.Equal(t, ast.LiteralTrue, statement.Test.Literal)

	require.Equal(t, ast.StmtExpression, statement.Consequent.Kind)
	assert.Equal(t, "foo", statement.Consequent.Expression.Name)
	assert.Nil(t, statement.Alternate)
}

func TestParser_IfElseStatement(t *testing.T) {
	statement := onlyStatement(t, `if (true) foo; else { bar; }`)

	require.Equal(t, ast.StmtIf, statement.Kind)
	require.NotNil(t, statement.Alternate)
	require.Equal(t, ast.StmtBlock, statement.Alternate.Kind)
	require.Len(t, statement.Alternate.Statements, 1)
	assert.Equal(t, "bar", statement.Alternate.Statements[0].Expression.Name)
}

func TestParser_WhileStatement(t *testing.T) {
	statement := onlyStatement(t, `while (true) foo;`)

	require.Equal(t, ast.StmtWhile, statement.Kind)
	assert.Equal(t, ast.LiteralTrue, statement.Test.Literal)
	require.Equal(t, ast.StmtExpression, statement.Body.Kind)
}

func TestParser_WhileStatementBlock(t *testing.T) {
	statement := onlyStatement(t, `while (true) { foo; }`)

	require.Equal(t, ast.StmtWhile, statement.Kind)
	require.Equal(t, ast.StmtBlock, statement.Body.Kind)
	require.Len(t, statement.Body.Statements, 1)
}

func TestParser_DoStatement(t *testing.T) {
	statement := onlyStatement(t, `do foo; while (true)`)

	require.Equal(t, ast.StmtDo, statement.Kind)
	require.Equal(t, ast.StmtExpression, statement.Body.Kind)
	assert.Equal(t, "foo", statement.Body.Expression.Name)
	require.Equal(t, ast.ExprLiteral, statement.Test.Kind)
	assert.Equal(t, ast.LiteralTrue, statement.Test.Literal)
}

func TestParser_BreakStatement(t *testing.T) {
	statement := onlyStatement(t, `break;`)

	require.Equal(t, ast.StmtBreak, statement.Kind)
	assert.Nil(t, statement.Expression)
}

func TestParser_BreakStatementLabel(t *testing.T) {
	statement := onlyStatement(t, `break foo;`)

	require.Equal(t, ast.StmtBreak, statement.Kind)
	require.NotNil(t, statement.Expression)
	assert.Equal(t, "foo", statement.Expression.Name)
}

func TestParser_BreakStatementAsi(t *testing.T) {
	body := parseBody(t, "break\nfoo;")
	require.Len(t, body, 2)

	require.Equal(t, ast.StmtBreak, body[0].Kind)
	assert.Nil(t, body[0].Expression)
	assert.Equal(t, ast.StmtExpression, body[1].Kind)
}

func TestParser_ThrowStatement(t *testing.T) {
	statement := onlyStatement(t, `throw '3'`)

	require.Equal(t, ast.StmtThrow, statement.Kind)
	require.Equal(t, ast.ExprLiteral, statement.Expression.Kind)
	assert.Equal(t, ast.LiteralString, statement.Expression.Literal)
	assert.Equal(t, `'3'`, statement.Expression.Value)
}

func TestParser_TryStatementEmpty(t *testing.T) {
	statement := onlyStatement(t, `try {} catch (err) {}`)

	require.Equal(t, ast.StmtTry, statement.Kind)
	assert.Empty(t, statement.Statements)
	require.NotNil(t, statement.CatchParam)
	assert.Equal(t, "err", statement.CatchParam.Name)
	assert.Empty(t, statement.Handler)
}

func TestParser_TryStatement(t *testing.T) {
	statement := onlyStatement(t, `try { foo; } catch (err) { bar; }`)

	require.Equal(t, ast.StmtTry, statement.Kind)
	require.Len(t, statement.Statements, 1)
	assert.Equal(t, "foo", statement.Statements[0].Expression.Name)
	require.Len(t, statement.Handler, 1)
	assert.Equal(t, "bar", statement.Handler[0].Expression.Name)
}

func TestParser_DeclarationDestructuringArray(t *testing.T) {
	statement := onlyStatement(t, `let [x, y] = [1, 2];`)

	require.Equal(t, ast.StmtDeclaration, statement.Kind)
	require.Len(t, statement.Declarators, 1)

	name := statement.Declarators[0].Name
	require.Equal(t, ast.ExprArray, name.Kind)
	require.Len(t, name.Items, 2)
	assert.Equal(t, "x", name.Items[0].Name)
	assert.Equal(t, "y", name.Items[1].Name)

	value := statement.Declarators[0].Value
	require.Equal(t, ast.ExprArray, value.Kind)
	require.Len(t, value.Items, 2)
}

func TestParser_DeclarationDestructuringObject(t *testing.T) {
	statement := onlyStatement(t, `const { x, y } = { a, b };`)

	require.Equal(t, ast.StmtDeclaration, statement.Kind)
	assert.Equal(t, lexer.Const, statement.Declaration)
	require.Len(t, statement.Declarators, 1)

	name := statement.Declarators[0].Name
	require.Equal(t, ast.ExprObject, name.Kind)
	require.Len(t, name.Members, 2)
	assert.Equal(t, ast.ObjectShorthand, name.Members[0].Kind)
	assert.Equal(t, "x", name.Members[0].Key.Literal)
	assert.Equal(t, "y", name.Members[1].Key.Literal)
}

func TestParser_EmptyForStatement(t *testing.T) {
	statement := onlyStatement(t, `for (;;) {}`)

	require.Equal(t, ast.StmtFor, statement.Kind)
	assert.Nil(t, statement.Init)
	assert.Nil(t, statement.Test)
	assert.Nil(t, statement.Update)
	require.Equal(t, ast.StmtBlock, statement.Body.Kind)
}

func TestParser_ForWithExpressionInit(t *testing.T) {
	statement := onlyStatement(t, `for (i = 0; i < 3; ++i) body();`)

	require.Equal(t, ast.StmtFor, statement.Kind)
	require.NotNil(t, statement.Init)
	require.Equal(t, ast.StmtExpression, statement.Init.Kind)
	require.Equal(t, ast.ExprBinary, statement.Init.Expression.Kind)
	assert.Equal(t, lexer.Assign, statement.Init.Expression.Operator)

	require.Equal(t, ast.ExprPrefix, statement.Update.Kind)
	assert.Equal(t, lexer.Increment, statement.Update.Operator)
}

func TestParser_ForInWithExpressionLeft(t *testing.T) {
	statement := onlyStatement(t, `for (key in obj) {}`)

	require.Equal(t, ast.StmtForIn, statement.Kind)
	require.Equal(t, ast.StmtExpression, statement.Left.Kind)
	assert.Equal(t, "key", statement.Left.Expression.Name)
	assert.Equal(t, "obj", statement.Right.Name)
}

func TestParser_ForOfStatement(t *testing.T) {
	statement := onlyStatement(t, `for (let item of list) {}`)

	require.Equal(t, ast.StmtForOf, statement.Kind)

	left := statement.Left
	require.Equal(t, ast.StmtDeclaration, left.Kind)
	require.Len(t, left.Declarators, 1)
	assert.Equal(t, "item", left.Declarators[0].Name.Name)

	assert.Equal(t, "list", statement.Right.Name)
}

func TestParser_OfIsAPlainIdentifierElsewhere(t *testing.T) {
	expression := onlyExpression(t, `of + 1`)

	require.Equal(t, ast.ExprBinary, expression.Kind)
	require.Equal(t, ast.ExprIdentifier, expression.Left.Kind)
	assert.Equal(t, "of", expression.Left.Name)
}

func TestParser_FunctionStatement(t *testing.T) {
	statement := onlyStatement(t, `function foo() {}`)

	require.Equal(t, ast.StmtFunction, statement.Kind)
	assert.Equal(t, "foo", statement.Function.Name)
	assert.Empty(t, statement.Function.Params)
	assert.Empty(t, statement.Function.Body)
}

func TestParser_FunctionWithDefaultParameters(t *testing.T) {
	statement := onlyStatement(t, `function foo(a = 1, b) {}`)

	require.Equal(t, ast.StmtFunction, statement.Kind)
	params := statement.Function.Params
	require.Len(t, params, 2)

	assert.Equal(t, "a", params[0].Name)
	require.NotNil(t, params[0].Default)
	assert.Equal(t, "1", params[0].Default.Value)

	// Required parameters may follow defaulted ones.
	assert.Equal(t, "b", params[1].Name)
	assert.Nil(t, params[1].Default)
}

func TestParser_ClassStatement(t *testing.T) {
	statement := onlyStatement(t, `class Foo {}`)

	require.Equal(t, ast.StmtClass, statement.Kind)
	assert.Equal(t, "Foo", statement.Class.Name)
	assert.Equal(t, "", statement.Class.Extends)
	assert.Empty(t, statement.Class.Members)
}

func TestParser_ClassExtends(t *testing.T) {
	statement := onlyStatement(t, `class Foo extends Bar {}`)

	require.Equal(t, ast.StmtClass, statement.Kind)
	assert.Equal(t, "Bar", statement.Class.Extends)
}

func TestParser_ClassMembers(t *testing.T) {
	statement := onlyStatement(t, `class Foo {
		constructor(a) { this.a = a; }
		static make(v = 1) { return v; }
		count = 0;
		[key]() {}
		0b101() {}
	}`)

	require.Equal(t, ast.StmtClass, statement.Kind)
	members := statement.Class.Members
	require.Len(t, members, 5)

	assert.Equal(t, ast.ClassConstructor, members[0].Kind)
	require.Len(t, members[0].Params, 1)

	assert.Equal(t, ast.ClassMethod, members[1].Kind)
	assert.True(t, members[1].Static)
	assert.Equal(t, "make", members[1].Key.Literal)
	require.Len(t, members[1].Params, 1)
	require.NotNil(t, members[1].Params[0].Default)

	assert.Equal(t, ast.ClassProperty, members[2].Kind)
	assert.Equal(t, "count", members[2].Key.Literal)
	assert.Equal(t, "0", members[2].Value.Value)

	assert.Equal(t, ast.ClassMethod, members[3].Kind)
	assert.Equal(t, ast.KeyComputed, members[3].Key.Kind)

	assert.Equal(t, ast.ClassMethod, members[4].Kind)
	assert.Equal(t, ast.KeyBinary, members[4].Key.Kind)
	assert.Equal(t, uint64(5), members[4].Key.Number)
}

func TestParser_ClassWordKeys(t *testing.T) {
	statement := onlyStatement(t, `class Foo { typeof() {} null() {} }`)

	members := statement.Class.Members
	require.Len(t, members, 2)
	assert.Equal(t, "typeof", members[0].Key.Literal)
	assert.Equal(t, "null", members[1].Key.Literal)
}

func TestParser_StaticConstructorIsAMethod(t *testing.T) {
	statement := onlyStatement(t, `class Foo { static constructor() {} }`)

	members := statement.Class.Members
	require.Len(t, members, 1)
	assert.Equal(t, ast.ClassMethod, members[0].Kind)
	assert.True(t, members[0].Static)
}

func TestParser_SequenceStatement(t *testing.T) {
	expression := onlyExpression(t, `a, b, c;`)

	require.Equal(t, ast.ExprSequence, expression.Kind)
	require.Len(t, expression.Items, 3)
	assert.GreaterOrEqual(t, len(expression.Items), 2)
}

func TestParser_NestedBlocks(t *testing.T) {
	statement := onlyStatement(t, `{ { var a = 1; } }`)

	require.Equal(t, ast.StmtBlock, statement.Kind)
	require.Len(t, statement.Statements, 1)
	inner := statement.Statements[0]
	require.Equal(t, ast.StmtBlock, inner.Kind)
	require.Len(t, inner.Statements, 1)
	assert.Equal(t, ast.StmtDeclaration, inner.Statements[0].Kind)
}
