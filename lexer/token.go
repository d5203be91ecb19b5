package lexer

// TokenType classifies a lexeme. The lexer produces exactly one TokenType
// per call to Next; payload-carrying kinds (Identifier, literals,
// Operator, Declaration, templates) store their data in the other Token
// fields.
type TokenType uint8

const (
	// EndOfProgram marks the end of the input stream.
	EndOfProgram TokenType = iota

	// Structural tokens
	Semicolon    // ;
	Colon        // :
	Comma        // ,
	ParenOpen    // (
	ParenClose   // )
	BracketOpen  // [
	BracketClose // ]
	BraceOpen    // {
	BraceClose   // }

	// Keywords
	This
	Function
	Return
	Break
	Class
	Extends
	Static
	If
	Else
	While
	Do
	For
	Throw
	Try
	Catch

	// Declaration carries a DeclarationKind (var, let, const).
	Declaration

	// Identifier carries the source slice in Value. The contextual
	// keyword `of` is lexed as a plain Identifier and recognised by the
	// parser in for-of heads only.
	Identifier

	// Literals. Number, String and RegEx keep their raw source slice in
	// Value; Binary is decoded eagerly into the Number field.
	LiteralNumber
	LiteralBinary
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNull
	LiteralUndefined
	LiteralRegEx

	// Operator carries an OperatorKind.
	Operator

	// Template quasis. TemplateOpen ends in `${`, TemplateClosed ends in
	// a backtick; Value holds the raw quasi slice between the delimiters.
	TemplateOpen
	TemplateClosed

	// ReservedWord is a word of the reserved set that this grammar does
	// not give a production (switch, yield, async, import, ...). The
	// spelling is kept in Value so key positions can reinterpret it.
	ReservedWord

	// UnexpectedToken and UnexpectedEndOfProgram are produced when the
	// scanner itself cannot classify the input. The parser turns them
	// into error records.
	UnexpectedToken
	UnexpectedEndOfProgram
)

// DeclarationKind distinguishes var, let and const declarations.
type DeclarationKind uint8

const (
	Var DeclarationKind = iota
	Let
	Const
)

func (k DeclarationKind) String() string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	default:
		return "var"
	}
}

// Token is a single classified lexeme with its source span.
// Start and End are byte offsets into the original source.
type Token struct {
	Type        TokenType
	Start       int
	End         int
	Value       string          // Identifier, literal and template slices; word spellings
	Operator    OperatorKind    // valid when Type == Operator
	Declaration DeclarationKind // valid when Type == Declaration
	Number      uint64          // valid when Type == LiteralBinary
}

// Word returns the identifier spelling of the token when it has one.
// Keywords, word operators (typeof, new, in, ...), word literals (null,
// true, ...) and reserved words all expose their spelling here, which is
// how object keys, member names and class keys accept them as plain
// identifiers.
func (t Token) Word() (string, bool) {
	switch t.Type {
	case Identifier, ReservedWord:
		return t.Value, true
	case This, Function, Return, Break, Class, Extends, Static,
		If, Else, While, Do, For, Throw, Try, Catch,
		LiteralTrue, LiteralFalse, LiteralNull, LiteralUndefined,
		Declaration:
		return t.Value, true
	case Operator:
		if t.Operator.isWord() {
			return t.Value, true
		}
	}
	return "", false
}

// Asi is the tri-state answer to the parser's automatic semicolon
// insertion query.
type Asi uint8

const (
	// NoSemicolon: a required semicolon is genuinely missing.
	NoSemicolon Asi = iota

	// ImplicitSemicolon: the statement may end here without consuming a
	// token (closing brace, end of input, or a preceding line terminator).
	ImplicitSemicolon

	// ExplicitSemicolon: the lookahead is a real `;`.
	ExplicitSemicolon
)

// classifyWord resolves a scanned word against the keyword table.
// Dispatch is on the first byte with fixed-string tail matches, so a miss
// costs little on ordinary identifiers.
func classifyWord(word string) (TokenType, OperatorKind, DeclarationKind) {
	switch word[0] {
	case 'a':
		switch word {
		case "async", "await":
			return ReservedWord, 0, 0
		}
	case 'b':
		if word == "break" {
			return Break, 0, 0
		}
	case 'c':
		switch word {
		case "catch":
			return Catch, 0, 0
		case "class":
			return Class, 0, 0
		case "const":
			return Declaration, 0, Const
		case "case", "continue":
			return ReservedWord, 0, 0
		}
	case 'd':
		switch word {
		case "do":
			return Do, 0, 0
		case "delete":
			return Operator, Delete, 0
		case "debugger", "default":
			return ReservedWord, 0, 0
		}
	case 'e':
		switch word {
		case "else":
			return Else, 0, 0
		case "extends":
			return Extends, 0, 0
		case "enum", "export":
			return ReservedWord, 0, 0
		}
	case 'f':
		switch word {
		case "for":
			return For, 0, 0
		case "function":
			return Function, 0, 0
		case "false":
			return LiteralFalse, 0, 0
		case "finally":
			return ReservedWord, 0, 0
		}
	case 'i':
		switch word {
		case "if":
			return If, 0, 0
		case "in":
			return Operator, In, 0
		case "instanceof":
			return Operator, Instanceof, 0
		case "import", "implements", "interface":
			return ReservedWord, 0, 0
		}
	case 'l':
		if word == "let" {
			return Declaration, 0, Let
		}
	case 'n':
		switch word {
		case "new":
			return Operator, New, 0
		case "null":
			return LiteralNull, 0, 0
		}
	case 'p':
		switch word {
		case "package", "private", "protected", "public":
			return ReservedWord, 0, 0
		}
	case 'r':
		if word == "return" {
			return Return, 0, 0
		}
	case 's':
		switch word {
		case "static":
			return Static, 0, 0
		case "super", "switch":
			return ReservedWord, 0, 0
		}
	case 't':
		switch word {
		case "this":
			return This, 0, 0
		case "throw":
			return Throw, 0, 0
		case "try":
			return Try, 0, 0
		case "true":
			return LiteralTrue, 0, 0
		case "typeof":
			return Operator, Typeof, 0
		}
	case 'u':
		if word == "undefined" {
			return LiteralUndefined, 0, 0
		}
	case 'v':
		switch word {
		case "var":
			return Declaration, 0, Var
		case "void":
			return Operator, Void, 0
		}
	case 'w':
		switch word {
		case "while":
			return While, 0, 0
		case "with":
			return ReservedWord, 0, 0
		}
	case 'y':
		if word == "yield" {
			return ReservedWord, 0, 0
		}
	}
	// `of` falls through on purpose; it is contextual.
	return Identifier, 0, 0
}
