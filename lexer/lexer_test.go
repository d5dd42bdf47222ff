/*
File    : langcore/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tokenCase is a single (expected type, expected literal) pair fed to
// TestNextToken_*.
type tokenCase struct {
	Type    TokenType
	Literal string
}

func TestNextToken_Operators(t *testing.T) {
	input := `=+(){},;!-/*<>`

	expected := []tokenCase{
		{ASSIGN, "="},
		{PLUS, "+"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{BANG, "!"},
		{MINUS, "-"},
		{SLASH, "/"},
		{ASTERISK, "*"},
		{LT, "<"},
		{GT, ">"},
		{EOF, ""},
	}

	l := NewLexer(input)
	for i, want := range expected {
		tok := l.NextToken()
		assert.Equalf(t, want.Type, tok.Type, "token %d type", i)
		assert.Equalf(t, want.Literal, tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
null;
`

	expected := []tokenCase{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {INT, "10"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{NULL, "null"}, {SEMICOLON, ";"},
		{EOF, ""},
	}

	l := NewLexer(input)
	for i, want := range expected {
		tok := l.NextToken()
		assert.Equalf(t, want.Type, tok.Type, "token %d (%q) type", i, tok.Literal)
		assert.Equalf(t, want.Literal, tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_LineComments(t *testing.T) {
	input := "let x = 1; // trailing comment\nlet y = 2;"

	l := NewLexer(input)
	tokens := l.ConsumeTokens()

	assert.Equal(t, INT, tokens[3].Type)
	assert.Equal(t, "1", tokens[3].Literal)
	assert.Equal(t, LET, tokens[5].Type)
	assert.Equal(t, "y", tokens[6].Literal)
}

func TestNextToken_UnterminatedCommentIsIllegal(t *testing.T) {
	l := NewLexer("let x = 1; // no newline at eof")
	tokens := l.ConsumeTokens()

	last := tokens[len(tokens)-1]
	assert.Equal(t, ILLEGAL, last.Type)
}

func TestNextToken_FloatPromotion(t *testing.T) {
	l := NewLexer("3.14")
	tok := l.NextToken()
	assert.Equal(t, FLOAT, tok.Type)
	assert.Equal(t, "3.14", tok.Literal)
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := NewLexer("@")
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}
