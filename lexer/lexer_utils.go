package lexer

import "unicode"

// isDigitASCII reports whether c is an ASCII decimal digit.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace reports whether c is whitespace under Unicode's definition.
func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// isAlpha reports whether c can start an identifier: a letter or underscore.
func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

// isAlphanumeric reports whether c can continue an identifier or symbol.
func isAlphanumeric(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}
