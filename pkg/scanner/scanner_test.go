package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crnvl/netl/pkg/tokens"
)

func TestScanStatement(t *testing.T) {
	toks := Scan("let x = 5;")
	expected := []tokens.Token{
		{Type: tokens.Let},
		{Type: tokens.Identifier, Text: "x"},
		{Type: tokens.Assign},
		{Type: tokens.Num, Text: "5"},
		{Type: tokens.Semicolon},
		{Type: tokens.EOF},
	}
	assert.Equal(t, expected, toks)
}

func TestScanOperators(t *testing.T) {
	toks := Scan("+ - * / % < > ( ) { } [ ] , ;")
	expected := []tokens.TokType{
		tokens.Plus, tokens.Minus, tokens.Star, tokens.Slash, tokens.Percent,
		tokens.Less, tokens.Greater,
		tokens.LeftParen, tokens.RightParen,
		tokens.LeftBrace, tokens.RightBrace,
		tokens.LeftBracket, tokens.RightBracket,
		tokens.Comma, tokens.Semicolon,
		tokens.EOF,
	}
	assert.Equal(t, expected, types(toks))
}

// == is consumed greedily, a lone = is assignment.
func TestScanEquals(t *testing.T) {
	assert.Equal(t,
		[]tokens.TokType{tokens.EqlEql, tokens.EOF},
		types(Scan("==")))
	assert.Equal(t,
		[]tokens.TokType{tokens.Assign, tokens.EOF},
		types(Scan("=")))
	assert.Equal(t,
		[]tokens.TokType{tokens.EqlEql, tokens.Assign, tokens.EOF},
		types(Scan("===")))
	assert.Equal(t,
		[]tokens.TokType{tokens.Assign, tokens.EqlEql, tokens.Assign, tokens.EOF},
		types(Scan("= == =")))
}

// != is a token, but there is no boolean-not: a lone ! is Unknown.
func TestScanBang(t *testing.T) {
	assert.Equal(t,
		[]tokens.TokType{tokens.BangEql, tokens.EOF},
		types(Scan("!=")))
	assert.Equal(t,
		[]tokens.TokType{tokens.Unknown, tokens.EOF},
		types(Scan("!")))
	assert.Equal(t,
		[]tokens.TokType{tokens.BangEql, tokens.Assign, tokens.EOF},
		types(Scan("!==")))
}

// Scanning is total: unrecognized characters become Unknown tokens,
// never an error.
func TestScanUnknownChars(t *testing.T) {
	toks := Scan("@ # $")
	assert.Equal(t,
		[]tokens.TokType{tokens.Unknown, tokens.Unknown, tokens.Unknown, tokens.EOF},
		types(toks))
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := Scan("let print if else letx my_var2 elsewhere")
	expected := []tokens.Token{
		{Type: tokens.Let},
		{Type: tokens.Print},
		{Type: tokens.If},
		{Type: tokens.Else},
		{Type: tokens.Identifier, Text: "letx"},
		{Type: tokens.Identifier, Text: "my_var2"},
		{Type: tokens.Identifier, Text: "elsewhere"},
		{Type: tokens.EOF},
	}
	assert.Equal(t, expected, toks)
}

func TestScanStringLiteral(t *testing.T) {
	toks := Scan(`print "hello there";`)
	expected := []tokens.Token{
		{Type: tokens.Print},
		{Type: tokens.Str, Text: "hello there"},
		{Type: tokens.Semicolon},
		{Type: tokens.EOF},
	}
	assert.Equal(t, expected, toks)
}

// No escape processing: backslashes are captured verbatim.
func TestScanStringNoEscapes(t *testing.T) {
	toks := Scan(`"a\n"`)
	assert.Equal(t, tokens.Token{Type: tokens.Str, Text: `a\n`}, toks[0])
}

// An unterminated string silently captures the rest of the source.
func TestScanUnterminatedString(t *testing.T) {
	toks := Scan(`"never closed; let x = 1`)
	expected := []tokens.Token{
		{Type: tokens.Str, Text: "never closed; let x = 1"},
		{Type: tokens.EOF},
	}
	assert.Equal(t, expected, toks)
}

func TestScanNumber(t *testing.T) {
	toks := Scan("0 42 007")
	expected := []tokens.Token{
		{Type: tokens.Num, Text: "0"},
		{Type: tokens.Num, Text: "42"},
		{Type: tokens.Num, Text: "007"},
		{Type: tokens.EOF},
	}
	assert.Equal(t, expected, toks)
}

func TestScanWhitespace(t *testing.T) {
	toks := Scan(" \t\r\n\n ")
	assert.Equal(t, []tokens.TokType{tokens.EOF}, types(toks))
}

func TestScanEmptySource(t *testing.T) {
	assert.Equal(t, []tokens.Token{{Type: tokens.EOF}}, Scan(""))
}

func types(toks []tokens.Token) []tokens.TokType {
	res := make([]tokens.TokType, 0, len(toks))
	for _, tok := range toks {
		res = append(res, tok.Type)
	}
	return res
}
