package parser

import (
	"strconv"
	"strings"

	"github.com/gomix-k/gomix-k/lexer"
)

// isValueStart reports whether tt can begin a value expression: a literal,
// an identifier, a verb (which can itself start a monadic-prefix chain), or
// an opening paren/brace/conditional. Used to decide whether a leading verb
// has an operand to apply to, or is being used bare as a value.
func isValueStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.SYMBOL_LIT, lexer.IDENTIFIER_ID,
		lexer.LEFT_PAREN, lexer.LEFT_BRACE, lexer.DOLLAR_OP:
		return true
	}
	return isVerbToken(tt)
}

// hasFloatShape reports whether a scanned number literal's text denotes a
// Float rather than an Int: it contains a decimal point or an exponent.
func hasFloatShape(text string) bool {
	return strings.ContainsAny(text, ".eE")
}

func parseFloatLiteral(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntLiteral(text string) int64 {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
