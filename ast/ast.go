// Package ast defines the node families produced by the parser.
//
// Each family is a single fat struct discriminated by a Kind field, so a
// whole parse allocates out of two slabs (expressions and statements)
// instead of one heap object per node. Every located node carries a
// (Start, End) pair of byte offsets into the original source, with
// Start <= End always. The parser allocates; consumers only read.
package ast

import (
	"github.com/esparse/esparse/arena"
	"github.com/esparse/esparse/lexer"
)

// ExpressionKind discriminates Expression nodes.
type ExpressionKind uint8

const (
	// ExprError is the recovery placeholder substituted where no
	// expression could be parsed.
	ExprError ExpressionKind = iota

	// ExprVoid is the hole produced by elisions in array literals.
	ExprVoid

	ExprThis
	ExprIdentifier
	ExprLiteral
	ExprArray
	ExprObject
	ExprSequence
	ExprPrefix
	ExprPostfix
	ExprBinary
	ExprConditional
	ExprCall
	ExprMember
	ExprComputedMember
	ExprFunction
	ExprClass
	ExprArrowFunction
	ExprTemplate
)

// LiteralKind discriminates literal expressions and mirrors the lexer's
// literal token kinds.
type LiteralKind uint8

const (
	LiteralNumber LiteralKind = iota
	LiteralBinary
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNull
	LiteralUndefined
	LiteralRegEx
)

// Expression is a tagged union over every expression form. Only the
// fields named for a Kind are meaningful for it; the rest stay zero.
type Expression struct {
	Kind       ExpressionKind
	Start, End int

	// Parenthesized is set on a Binary that was wrapped in parentheses.
	// Arrow-parameter reinterpretation needs it to tell `(a = b) => ...`
	// from a plain assignment.
	Parenthesized bool

	Name string // Identifier

	// Literal expressions
	Literal LiteralKind
	Value   string // raw source slice (numbers keep digits, strings keep quotes)
	Number  uint64 // decoded value of a binary literal

	Operator lexer.OperatorKind // Prefix, Postfix, Binary

	Left, Right *Expression // Binary
	Operand     *Expression // Prefix, Postfix

	Test, Consequent, Alternate *Expression // Conditional

	Callee    *Expression   // Call
	Arguments []*Expression // Call

	Object   *Expression // Member, ComputedMember
	Property string      // Member
	Index    *Expression // ComputedMember

	Items   []*Expression  // Array elements, Sequence elements
	Members []ObjectMember // Object literal

	Function *Function // Function expression
	Class    *Class    // Class expression

	Params []Parameter // ArrowFunction
	Body   *Statement  // ArrowFunction body: a Block or an Expression statement

	Tag         *Expression   // Template tag, nil when untagged
	Expressions []*Expression // Template interpolations
	Quasis      []string      // Template quasi slices; len(Quasis) == len(Expressions)+1
}

// StatementKind discriminates Statement nodes.
type StatementKind uint8

const (
	// StmtError is the recovery placeholder substituted where no
	// statement could be parsed.
	StmtError StatementKind = iota

	StmtEmpty
	StmtBlock
	StmtExpression
	StmtDeclaration
	StmtReturn
	StmtBreak
	StmtThrow
	StmtIf
	StmtWhile
	StmtDo
	StmtFor
	StmtForIn
	StmtForOf
	StmtFunction
	StmtClass
	StmtLabeled
	StmtTry
)

// Statement is a tagged union over every statement form.
type Statement struct {
	Kind       StatementKind
	Start, End int

	// Expression statement value, Return value (nil for bare return),
	// Throw value, Break label (nil for bare break).
	Expression *Expression

	Statements []*Statement // Block body, Try body

	Declaration lexer.DeclarationKind // Declaration
	Declarators []Declarator          // Declaration

	Label string     // Labeled
	Body  *Statement // Labeled, While, Do, For, ForIn, ForOf bodies

	Test                  *Expression  // If, While, Do, For
	Consequent, Alternate *Statement   // If
	Init                  *Statement   // For; nil when empty
	Update                *Expression  // For; nil when empty
	Left                  *Statement   // ForIn, ForOf
	Right                 *Expression  // ForIn, ForOf
	CatchParam            *Expression  // Try: the caught identifier
	Handler               []*Statement // Try: catch block body

	Function *Function // Function declaration
	Class    *Class    // Class declaration
}

// Function is the shared shape of function declarations, function
// expressions and methods.
type Function struct {
	Name   string // empty for anonymous expressions
	Params []Parameter
	Body   []*Statement
}

// Parameter is one formal parameter with an optional default.
type Parameter struct {
	Name       string
	Default    *Expression
	Start, End int
}

// Class is the shared shape of class declarations and expressions.
type Class struct {
	Name    string // empty for anonymous expressions
	Extends string // empty when the class has no superclass
	Members []ClassMember
}

// ClassMemberKind discriminates class body members.
type ClassMemberKind uint8

const (
	// ClassMemberError is the recovery placeholder for an unparsable
	// member.
	ClassMemberError ClassMemberKind = iota

	ClassConstructor
	ClassMethod
	ClassProperty
)

// ClassMember is one entry of a class body.
type ClassMember struct {
	Kind       ClassMemberKind
	Static     bool
	Key        PropertyKey
	Params     []Parameter  // Constructor, Method
	Body       []*Statement // Constructor, Method
	Value      *Expression  // Property initializer
	Start, End int
}

// ObjectMemberKind discriminates object literal members.
type ObjectMemberKind uint8

const (
	ObjectShorthand ObjectMemberKind = iota
	ObjectValue
	ObjectMethod
)

// ObjectMember is one entry of an object literal.
type ObjectMember struct {
	Kind       ObjectMemberKind
	Key        PropertyKey
	Value      *Expression  // Value
	Params     []Parameter  // Method
	Body       []*Statement // Method
	Start, End int
}

// PropertyKeyKind discriminates object and class keys.
type PropertyKeyKind uint8

const (
	// KeyLiteral covers identifier, string and number spellings.
	KeyLiteral PropertyKeyKind = iota

	// KeyBinary is an eagerly decoded binary literal key.
	KeyBinary

	// KeyComputed is a bracketed key expression.
	KeyComputed
)

// PropertyKey is an object literal or class member key.
type PropertyKey struct {
	Kind     PropertyKeyKind
	Literal  string      // KeyLiteral spelling
	Number   uint64      // KeyBinary value
	Computed *Expression // KeyComputed expression
}

// Declarator is one name/value pair of a variable declaration. The name
// is an expression because array and object patterns are valid binding
// targets.
type Declarator struct {
	Name       *Expression
	Value      *Expression // nil without initializer
	Start, End int
}

// Arena owns the backing storage of one parse. Expression and Statement
// cells come out of chunked slabs, so node pointers stay valid for the
// lifetime of the arena.
type Arena struct {
	expressions arena.Slab[Expression]
	statements  arena.Slab[Statement]
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Expression copies e into the arena and returns a stable pointer.
func (a *Arena) Expression(e Expression) *Expression {
	return a.expressions.Alloc(e)
}

// Statement copies s into the arena and returns a stable pointer.
func (a *Arena) Statement(s Statement) *Statement {
	return a.statements.Alloc(s)
}

// Nodes returns the number of nodes allocated so far.
func (a *Arena) Nodes() int {
	return a.expressions.Len() + a.statements.Len()
}
