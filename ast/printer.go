package ast

import (
	"bytes"
	"fmt"
)

const printerIndent = 2

// Printer renders an AST as an indented tree, one node per line. It is
// what the CLI and the REPL show, and what golden tests compare against.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// String returns everything printed so far.
func (p *Printer) String() string {
	return p.buf.String()
}

// Statements prints a statement list at the current indent level.
func (p *Printer) Statements(body []*Statement) {
	for _, statement := range body {
		p.Statement(statement)
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent*printerIndent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(print func()) {
	p.indent++
	print()
	p.indent--
}

// Statement prints one statement subtree.
func (p *Printer) Statement(s *Statement) {
	if s == nil {
		return
	}

	switch s.Kind {
	case StmtError:
		p.line("ErrorStatement")

	case StmtEmpty:
		p.line("EmptyStatement")

	case StmtBlock:
		p.line("Block")
		p.nested(func() { p.Statements(s.Statements) })

	case StmtExpression:
		p.line("ExpressionStatement")
		p.nested(func() { p.Expression(s.Expression) })

	case StmtDeclaration:
		p.line("Declaration (%s)", s.Declaration)
		p.nested(func() {
			for _, d := range s.Declarators {
				p.line("Declarator")
				p.nested(func() {
					p.Expression(d.Name)
					if d.Value != nil {
						p.Expression(d.Value)
					}
				})
			}
		})

	case StmtReturn:
		p.line("Return")
		if s.Expression != nil {
			p.nested(func() { p.Expression(s.Expression) })
		}

	case StmtBreak:
		p.line("Break")
		if s.Expression != nil {
			p.nested(func() { p.Expression(s.Expression) })
		}

	case StmtThrow:
		p.line("Throw")
		p.nested(func() { p.Expression(s.Expression) })

	case StmtIf:
		p.line("If")
		p.nested(func() {
			p.Expression(s.Test)
			p.Statement(s.Consequent)
			if s.Alternate != nil {
				p.line("Else")
				p.nested(func() { p.Statement(s.Alternate) })
			}
		})

	case StmtWhile:
		p.line("While")
		p.nested(func() {
			p.Expression(s.Test)
			p.Statement(s.Body)
		})

	case StmtDo:
		p.line("DoWhile")
		p.nested(func() {
			p.Statement(s.Body)
			p.Expression(s.Test)
		})

	case StmtFor:
		p.line("For")
		p.nested(func() {
			p.Statement(s.Init)
			p.Expression(s.Test)
			p.Expression(s.Update)
			p.Statement(s.Body)
		})

	case StmtForIn:
		p.line("ForIn")
		p.nested(func() {
			p.Statement(s.Left)
			p.Expression(s.Right)
			p.Statement(s.Body)
		})

	case StmtForOf:
		p.line("ForOf")
		p.nested(func() {
			p.Statement(s.Left)
			p.Expression(s.Right)
			p.Statement(s.Body)
		})

	case StmtFunction:
		p.line("Function (%s)", s.Function.Name)
		p.nested(func() { p.function(s.Function) })

	case StmtClass:
		p.line("Class (%s)", s.Class.Name)
		p.nested(func() { p.class(s.Class) })

	case StmtLabeled:
		p.line("Labeled (%s)", s.Label)
		p.nested(func() { p.Statement(s.Body) })

	case StmtTry:
		p.line("Try")
		p.nested(func() {
			p.Statements(s.Statements)
			p.line("Catch")
			p.nested(func() {
				p.Expression(s.CatchParam)
				p.Statements(s.Handler)
			})
		})
	}
}

// Expression prints one expression subtree.
func (p *Printer) Expression(e *Expression) {
	if e == nil {
		return
	}

	switch e.Kind {
	case ExprError:
		p.line("ErrorExpression")

	case ExprVoid:
		p.line("Hole")

	case ExprThis:
		p.line("This")

	case ExprIdentifier:
		p.line("Identifier (%s)", e.Name)

	case ExprLiteral:
		switch e.Literal {
		case LiteralBinary:
			p.line("Literal (%s = %d)", e.Value, e.Number)
		default:
			p.line("Literal (%s)", e.Value)
		}

	case ExprArray:
		p.line("Array")
		p.nested(func() {
			for _, item := range e.Items {
				p.Expression(item)
			}
		})

	case ExprObject:
		p.line("Object")
		p.nested(func() {
			for i := range e.Members {
				p.objectMember(&e.Members[i])
			}
		})

	case ExprSequence:
		p.line("Sequence")
		p.nested(func() {
			for _, item := range e.Items {
				p.Expression(item)
			}
		})

	case ExprPrefix:
		p.line("Prefix (%s)", e.Operator)
		p.nested(func() { p.Expression(e.Operand) })

	case ExprPostfix:
		p.line("Postfix (%s)", e.Operator)
		p.nested(func() { p.Expression(e.Operand) })

	case ExprBinary:
		p.line("Binary (%s)", e.Operator)
		p.nested(func() {
			p.Expression(e.Left)
			p.Expression(e.Right)
		})

	case ExprConditional:
		p.line("Conditional")
		p.nested(func() {
			p.Expression(e.Test)
			p.Expression(e.Consequent)
			p.Expression(e.Alternate)
		})

	case ExprCall:
		p.line("Call")
		p.nested(func() {
			p.Expression(e.Callee)
			for _, argument := range e.Arguments {
				p.Expression(argument)
			}
		})

	case ExprMember:
		p.line("Member (%s)", e.Property)
		p.nested(func() { p.Expression(e.Object) })

	case ExprComputedMember:
		p.line("ComputedMember")
		p.nested(func() {
			p.Expression(e.Object)
			p.Expression(e.Index)
		})

	case ExprFunction:
		p.line("FunctionExpression (%s)", e.Function.Name)
		p.nested(func() { p.function(e.Function) })

	case ExprClass:
		p.line("ClassExpression (%s)", e.Class.Name)
		p.nested(func() { p.class(e.Class) })

	case ExprArrowFunction:
		p.line("ArrowFunction")
		p.nested(func() {
			p.parameters(e.Params)
			p.Statement(e.Body)
		})

	case ExprTemplate:
		p.line("Template")
		p.nested(func() {
			if e.Tag != nil {
				p.line("Tag")
				p.nested(func() { p.Expression(e.Tag) })
			}
			for i, quasi := range e.Quasis {
				p.line("Quasi (%q)", quasi)
				if i < len(e.Expressions) {
					p.Expression(e.Expressions[i])
				}
			}
		})
	}
}

func (p *Printer) function(f *Function) {
	p.parameters(f.Params)
	p.Statements(f.Body)
}

func (p *Printer) parameters(params []Parameter) {
	for _, param := range params {
		if param.Default != nil {
			p.line("Parameter (%s =)", param.Name)
			p.nested(func() { p.Expression(param.Default) })
		} else {
			p.line("Parameter (%s)", param.Name)
		}
	}
}

func (p *Printer) class(c *Class) {
	if c.Extends != "" {
		p.line("Extends (%s)", c.Extends)
	}
	for i := range c.Members {
		p.classMember(&c.Members[i])
	}
}

func (p *Printer) classMember(m *ClassMember) {
	switch m.Kind {
	case ClassMemberError:
		p.line("ErrorMember")
	case ClassConstructor:
		p.line("Constructor")
		p.nested(func() {
			p.parameters(m.Params)
			p.Statements(m.Body)
		})
	case ClassMethod:
		p.line("Method (static=%t)", m.Static)
		p.nested(func() {
			p.propertyKey(&m.Key)
			p.parameters(m.Params)
			p.Statements(m.Body)
		})
	case ClassProperty:
		p.line("Property (static=%t)", m.Static)
		p.nested(func() {
			p.propertyKey(&m.Key)
			p.Expression(m.Value)
		})
	}
}

func (p *Printer) objectMember(m *ObjectMember) {
	switch m.Kind {
	case ObjectShorthand:
		p.line("Shorthand (%s)", m.Key.Literal)
	case ObjectValue:
		p.line("Value")
		p.nested(func() {
			p.propertyKey(&m.Key)
			p.Expression(m.Value)
		})
	case ObjectMethod:
		p.line("Method")
		p.nested(func() {
			p.propertyKey(&m.Key)
			p.parameters(m.Params)
			p.Statements(m.Body)
		})
	}
}

func (p *Printer) propertyKey(key *PropertyKey) {
	switch key.Kind {
	case KeyLiteral:
		p.line("Key (%s)", key.Literal)
	case KeyBinary:
		p.line("Key (%d)", key.Number)
	case KeyComputed:
		p.line("ComputedKey")
		p.nested(func() { p.Expression(key.Computed) })
	}
}
