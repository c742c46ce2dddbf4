/*
File    : plox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConsumeToken represents a table-driven test case for ConsumeTokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + ()  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, `"This is a long string  "`),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, `"12"`),
			},
		},
		{
			Input: `fun class if else for and or super this var "hello!" __KEY__`,
			ExpectedTokens: []Token{
				NewToken(FUN_KEY, "fun"),
				NewToken(CLASS_KEY, "class"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FOR_KEY, "for"),
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(SUPER_KEY, "super"),
				NewToken(THIS_KEY, "this"),
				NewToken(VAR_KEY, "var"),
				NewToken(STRING_LIT, `"hello!"`),
				NewToken(IDENTIFIER_ID, "__KEY__"),
			},
		},
		{
			Input: `
			fun main(args, argv) {
				var a = args;
				if (a <= 0) {
					return a;
				} else {
					var f = 1;
					while (f < 10) {
						f = f * 2;
					}
					return f;
				}
			}
			`,
			ExpectedTokens: []Token{
				NewToken(FUN_KEY, "fun"),
				NewToken(IDENTIFIER_ID, "main"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "args"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "argv"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "args"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LE_OP, "<="),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(LT_OP, "<"),
				NewToken(NUMBER_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(MUL_OP, "*"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `1 1.23 true "hello" nil`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "1.23"),
				NewToken(TRUE_KEY, "true"),
				NewToken(STRING_LIT, `"hello"`),
				NewToken(NIL_KEY, "nil"),
			},
		},
		{
			// trailing dot is not part of the number: lexed as NUMBER "1"
			// followed by a DOT token (used for property access elsewhere)
			Input: `1. 2.5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(DOT_OP, "."),
				NewToken(NUMBER_LIT, "2.5"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		// ConsumeTokens appends a trailing EOF sentinel the parser
		// relies on; strip it before comparing against the table's
		// real-token expectations.
		require.NotEmpty(t, gotTokens)
		require.Equal(t, EOF_TYPE, gotTokens[len(gotTokens)-1].Type)
		gotTokens = gotTokens[:len(gotTokens)-1]

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens), "input: %s", test.Input)
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
		assert.Empty(t, lex.Errors, "input: %s", test.Input)
	}
}

func TestNewLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var a = 1;\nvar b = 2;\nprint a + b;")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, tokens[0].Line) // var
	var printLine int
	for _, tok := range tokens {
		if tok.Type == PRINT_KEY {
			printLine = tok.Line
		}
	}
	assert.Equal(t, 3, printLine)
}

func TestNewLexer_Errors(t *testing.T) {
	lex := NewLexer("var a = @;")
	lex.ConsumeTokens()
	assert.Len(t, lex.Errors, 1)
	assert.Equal(t, 1, lex.Errors[0].Line)
}

func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"never closed`)
	lex.ConsumeTokens()
	assert.Len(t, lex.Errors, 1)
}

func TestNewLexer_NumberLiteralValue(t *testing.T) {
	lex := NewLexer("3.5")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 3.5, tokens[0].Value)
}

func TestNewLexer_TokenLexemeMatchesSourceSlice(t *testing.T) {
	src := `var greeting = "hi there";`
	lex := NewLexer(src)
	for _, tok := range lex.ConsumeTokens() {
		if tok.Type == STRING_LIT {
			// the literal is the string's source slice, quotes included
			assert.Contains(t, src, tok.Literal)
		}
	}
}
