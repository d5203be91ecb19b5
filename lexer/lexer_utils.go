package lexer

// Byte classification helpers for the scanner hot path. Identifier
// classification is ASCII-only: letters, digits, `_` and `$`.

// isIdentStart reports whether c can begin an identifier.
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

// isIdentPart reports whether c can continue an identifier.
func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isOctalDigit reports whether c is in '0'..'7'.
func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// isBinaryDigit reports whether c is '0' or '1'.
func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

// isLetter reports whether c is an ASCII letter. Regular expression
// flags are scanned with this.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
