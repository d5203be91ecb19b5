package lexer

// OperatorKind enumerates every operator the grammar knows, including the
// word operators (new, typeof, void, delete, instanceof, in) and the
// punctuation that plugs into the expression parser as a left denotation
// (member access, ternary, fat arrow).
type OperatorKind uint8

const (
	FatArrow         OperatorKind = iota // =>
	Accessor                             // .
	New                                  // new
	Increment                            // ++
	Decrement                            // --
	LogicalNot                           // !
	BitwiseNot                           // ~
	Typeof                               // typeof
	Void                                 // void
	Delete                               // delete
	Multiplication                       // *
	Division                             // /
	Remainder                            // %
	Exponent                             // **
	Addition                             // +
	Subtraction                          // -
	BitShiftLeft                         // <<
	BitShiftRight                        // >>
	UBitShiftRight                       // >>>
	Lesser                               // <
	LesserEquals                         // <=
	Greater                              // >
	GreaterEquals                        // >=
	Instanceof                           // instanceof
	In                                   // in
	StrictEquality                       // ===
	StrictInequality                     // !==
	Equality                             // ==
	Inequality                           // !=
	BitwiseAnd                           // &
	BitwiseXor                           // ^
	BitwiseOr                            // |
	LogicalAnd                           // &&
	LogicalOr                            // ||
	Nullish                              // ??
	Conditional                          // ?
	Assign                               // =
	AddAssign                            // +=
	SubtractAssign                       // -=
	ExponentAssign                       // **=
	MultiplyAssign                       // *=
	DivideAssign                         // /=
	RemainderAssign                      // %=
	BSLAssign                            // <<=
	BSRAssign                            // >>=
	UBSRAssign                           // >>>=
	BitAndAssign                         // &=
	BitXorAssign                         // ^=
	BitOrAssign                          // |=
	LogicalAndAssign                     // &&=
	LogicalOrAssign                      // ||=
	NullishAssign                        // ??=
	Spread                               // ...
)

// BindingPower returns the infix binding power of the operator. Zero
// means the operator cannot appear in infix position at all.
func (op OperatorKind) BindingPower() uint8 {
	switch op {
	case FatArrow,
		Assign, AddAssign, SubtractAssign, ExponentAssign, MultiplyAssign,
		DivideAssign, RemainderAssign, BSLAssign, BSRAssign, UBSRAssign,
		BitAndAssign, BitXorAssign, BitOrAssign,
		LogicalAndAssign, LogicalOrAssign, NullishAssign:
		return 3
	case Conditional:
		return 4
	case LogicalOr, Nullish:
		return 5
	case LogicalAnd:
		return 6
	case BitwiseOr:
		return 7
	case BitwiseXor:
		return 8
	case BitwiseAnd:
		return 9
	case Equality, Inequality, StrictEquality, StrictInequality:
		return 10
	case Lesser, LesserEquals, Greater, GreaterEquals, Instanceof, In:
		return 11
	case BitShiftLeft, BitShiftRight, UBitShiftRight:
		return 12
	case Addition, Subtraction:
		return 13
	case Multiplication, Division, Remainder:
		return 14
	case Exponent:
		return 15
	case Increment, Decrement:
		return 16
	case Accessor:
		return 19
	default:
		return 0
	}
}

// Prefix reports whether the operator can begin an expression.
func (op OperatorKind) Prefix() bool {
	switch op {
	case LogicalNot, BitwiseNot, Addition, Subtraction,
		Increment, Decrement, Typeof, Void, Delete, New:
		return true
	}
	return false
}

// Infix reports whether the operator can continue an expression as a
// left denotation.
func (op OperatorKind) Infix() bool {
	return op.BindingPower() != 0
}

// Assignment reports whether the operator is a (compound) assignment.
func (op OperatorKind) Assignment() bool {
	switch op {
	case Assign, AddAssign, SubtractAssign, ExponentAssign, MultiplyAssign,
		DivideAssign, RemainderAssign, BSLAssign, BSRAssign, UBSRAssign,
		BitAndAssign, BitXorAssign, BitOrAssign,
		LogicalAndAssign, LogicalOrAssign, NullishAssign:
		return true
	}
	return false
}

// RightAssociative reports whether chains of the operator nest to the
// right. The expression parser recurses at the operator's own binding
// power for these, and one above it for the left-associative rest;
// FatArrow is the exception, its body being parsed at power 0.
func (op OperatorKind) RightAssociative() bool {
	return op.Assignment() || op == Exponent || op == Conditional || op == FatArrow
}

// isWord reports whether the operator is spelled as a word, making it a
// valid identifier spelling in key positions.
func (op OperatorKind) isWord() bool {
	switch op {
	case New, Typeof, Void, Delete, Instanceof, In:
		return true
	}
	return false
}

var operatorNames = [...]string{
	FatArrow:         "=>",
	Accessor:         ".",
	New:              "new",
	Increment:        "++",
	Decrement:        "--",
	LogicalNot:       "!",
	BitwiseNot:       "~",
	Typeof:           "typeof",
	Void:             "void",
	Delete:           "delete",
	Multiplication:   "*",
	Division:         "/",
	Remainder:        "%",
	Exponent:         "**",
	Addition:         "+",
	Subtraction:      "-",
	BitShiftLeft:     "<<",
	BitShiftRight:    ">>",
	UBitShiftRight:   ">>>",
	Lesser:           "<",
	LesserEquals:     "<=",
	Greater:          ">",
	GreaterEquals:    ">=",
	Instanceof:       "instanceof",
	In:               "in",
	StrictEquality:   "===",
	StrictInequality: "!==",
	Equality:         "==",
	Inequality:       "!=",
	BitwiseAnd:       "&",
	BitwiseXor:       "^",
	BitwiseOr:        "|",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Nullish:          "??",
	Conditional:      "?",
	Assign:           "=",
	AddAssign:        "+=",
	SubtractAssign:   "-=",
	ExponentAssign:   "**=",
	MultiplyAssign:   "*=",
	DivideAssign:     "/=",
	RemainderAssign:  "%=",
	BSLAssign:        "<<=",
	BSRAssign:        ">>=",
	UBSRAssign:       ">>>=",
	BitAndAssign:     "&=",
	BitXorAssign:     "^=",
	BitOrAssign:      "|=",
	LogicalAndAssign: "&&=",
	LogicalOrAssign:  "||=",
	NullishAssign:    "??=",
	Spread:           "...",
}

// String returns the source spelling of the operator.
func (op OperatorKind) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "?op?"
}
