package kapst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	l := NewLexer(input)
	var toks []Token
	for {
		tok, err := l.Lex()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

func TestLexerTokenKinds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{"identifier", "frac", []TokenKind{TokenIdentifier, TokenEOF}},
		{"number int", "42", []TokenKind{TokenNumber, TokenEOF}},
		{"number decimal", "3.14", []TokenKind{TokenNumber, TokenEOF}},
		{"number leading dot", ".5", []TokenKind{TokenNumber, TokenEOF}},
		{"string", `"hi"`, []TokenKind{TokenString, TokenEOF}},
		{"operators", "+-*/^_=", []TokenKind{
			TokenOperator, TokenOperator, TokenOperator, TokenOperator,
			TokenOperator, TokenOperator, TokenOperator, TokenEOF,
		}},
		{"punctuation", ",:;.()[]{}|", []TokenKind{
			TokenPunctuation, TokenPunctuation, TokenPunctuation, TokenPunctuation,
			TokenPunctuation, TokenPunctuation, TokenPunctuation, TokenPunctuation,
			TokenPunctuation, TokenPunctuation, TokenPunctuation, TokenEOF,
		}},
		{"empty", "", []TokenKind{TokenEOF}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := lexAll(t, tc.input)
			kinds := make([]TokenKind, len(toks))
			for i, tok := range toks {
				kinds[i] = tok.Kind
			}
			assert.Equal(t, tc.want, kinds)
		})
	}
}

func TestLexerMultiCharOperatorsLongestMatch(t *testing.T) {
	toks := lexAll(t, "<=> <-> => -> <- <= >= != ==")
	var texts []string
	for _, tok := range toks {
		if tok.Kind == TokenOperator {
			texts = append(texts, tok.Text)
		}
	}
	assert.Equal(t, []string{"<=>", "<->", "=>", "->", "<-", "<=", ">=", "!=", "=="}, texts)
}

func TestLexerTrivia(t *testing.T) {
	toks := lexAll(t, "a // comment\n/* block */ b")
	require.Len(t, toks, 3)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
	assert.Equal(t, TokenEOF, toks[2].Kind)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\tc\"d"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\tc\"d", toks[0].Text)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"abc`)
	_, err := l.Lex()
	require.Error(t, err)
	var ue *UnterminatedStringError
	require.ErrorAs(t, err, &ue)
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	l := NewLexer(`/* never closes`)
	_, err := l.Lex()
	require.Error(t, err)
	var ue *UnterminatedBlockCommentError
	require.ErrorAs(t, err, &ue)
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	l := NewLexer("\x01")
	_, err := l.Lex()
	require.Error(t, err)
	var ue *UnexpectedCharacterError
	require.ErrorAs(t, err, &ue)
}

func TestLexerInvalidUTF8IsUnexpectedCharacter(t *testing.T) {
	l := NewLexer("\xff")
	_, err := l.Lex()
	require.Error(t, err)
	var ue *UnexpectedCharacterError
	require.ErrorAs(t, err, &ue)
}

func TestLexerUnclassifiedPrintableRuneBecomesSymbolToken(t *testing.T) {
	toks := lexAll(t, "§")
	require.Len(t, toks, 2)
	assert.Equal(t, TokenSymbol, toks[0].Kind)
	assert.Equal(t, "§", toks[0].Text)
}

func TestLexerByteOffsets(t *testing.T) {
	toks := lexAll(t, "ab + cd")
	require.Len(t, toks, 4)
	assert.Equal(t, 0, toks[0].Loc.Start)
	assert.Equal(t, 2, toks[0].Loc.End)
	assert.Equal(t, "ab", toks[0].Loc.Text())
	assert.Equal(t, 3, toks[1].Loc.Start)
	assert.Equal(t, "cd", toks[2].Loc.Text())
}
