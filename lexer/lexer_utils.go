/*
File: langcore/lexer/lexer_utils.go
*/
package lexer

import "unicode"

// isWhitespace reports whether c is whitespace under Unicode's
// definition (space, tab, newline, carriage return, etc).
func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c can start or continue an identifier:
// letters and underscore.
func isLetter(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

// isAlphanumeric reports whether c can continue an identifier after the
// first character: letters, digits, or underscore.
func isAlphanumeric(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_'
}

// readNumber scans a run of digits, optionally followed by a `.` and a
// further run of digits, and returns an INT or FLOAT token. The language
// lexes floats but never evaluates them (see the parser's handling of
// FLOAT tokens).
func readNumber(l *Lexer) Token {
	startLine, startCol := l.Line, l.Column
	start := l.Position
	for isDigit(l.Current) {
		l.Advance()
	}
	isFloat := false
	if l.Current == '.' && isDigit(l.Peek()) {
		isFloat = true
		l.Advance() // consume '.'
		for isDigit(l.Current) {
			l.Advance()
		}
	}
	literal := l.Src[start:l.Position]
	if isFloat {
		return newPositionedToken(FLOAT, literal, startLine, startCol)
	}
	return newPositionedToken(INT, literal, startLine, startCol)
}

// readIdentifier scans a run of letters/digits/underscore starting with
// a letter or underscore, and classifies it as a keyword or IDENT.
func readIdentifier(l *Lexer) Token {
	startLine, startCol := l.Line, l.Column
	start := l.Position
	for isAlphanumeric(l.Current) {
		l.Advance()
	}
	literal := l.Src[start:l.Position]
	return newPositionedToken(lookupIdent(literal), literal, startLine, startCol)
}
