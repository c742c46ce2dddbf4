/*
File   : plox/lexer/lexer_utils.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// sprintf is a tiny indirection so error-message formatting reads the same
// way across this file without importing fmt everywhere it's needed.
func sprintf(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

// isWhitespace reports whether curr is whitespace (space, tab, newline,
// carriage return, ...).
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric reports whether curr is an ASCII letter or digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}

// isNumeric reports whether curr is an ASCII decimal digit.
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha reports whether curr is a letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readStringLiteral reads a "..." literal from the source. No escape
// processing is performed (per the language's lexical rules); an embedded
// newline and running off the end of source before the closing quote are
// both recorded as errors, and the scan continues past the offending
// region rather than aborting.
func readStringLiteral(lex *Lexer) Token {
	startLine := lex.Line
	lex.Advance() // consume opening quote

	start := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\n' {
			lex.recordError(lex.Line, "Unterminated string.")
			lex.Line++
		}
		lex.Advance()
	}

	if lex.Current == 0 {
		lex.recordError(startLine, "Unterminated string.")
		value := lex.Src[start:lex.Position]
		return NewLiteralToken(STRING_LIT, lex.Src[start-1:lex.Position], value, startLine)
	}

	value := lex.Src[start:lex.Position]
	lex.Advance() // consume closing quote
	return NewLiteralToken(STRING_LIT, lex.Src[start-1:lex.Position], value, startLine)
}

// readNumber reads digit+ ('.' digit+)? and parses it as a 64-bit float. A
// leading or trailing bare dot is not part of the number, so "1." scans as
// the number "1" followed by a separate '.' token.
func readNumber(lex *Lexer) Token {
	line := lex.Line
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance()
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	literal := lex.Src[start:lex.Position]
	value, _ := strconv.ParseFloat(literal, 64)
	return NewLiteralToken(NUMBER_LIT, literal, value, line)
}

// readIdentifier reads [A-Za-z_][A-Za-z_0-9]* and classifies it as a
// keyword token when it exactly matches a reserved word.
func readIdentifier(lex *Lexer) Token {
	line := lex.Line
	start := lex.Position

	lex.Advance() // first char already validated by the caller
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line)
}

// QuoteIfSpecial renders a lexeme for display in diagnostics: a
// whitespace-only or empty lexeme is quoted so it's visible in the
// message instead of disappearing into the surrounding text.
func QuoteIfSpecial(lexeme string) string {
	if strings.TrimSpace(lexeme) == "" {
		return strconv.Quote(lexeme)
	}
	return lexeme
}
