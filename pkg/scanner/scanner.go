package scanner

import (
	"unicode"

	"github.com/crnvl/netl/pkg/tokens"
	"github.com/crnvl/netl/pkg/utils"
)

// Scan converts source text to a token stream. It is total: it always
// terminates, never reports an error, and always appends a terminating
// EOF token. Characters that fit no rule become Unknown tokens.
func Scan(source string) []tokens.Token {
	input := []rune(source)
	pos := 0
	toks := make([]tokens.Token, 0)
	for !utils.IsAtEnd(input, pos) {
		tok := scanToken(input, &pos)
		if tok != nil {
			toks = append(toks, *tok)
		}
	}
	toks = append(toks, tokens.Token{Type: tokens.EOF})
	return toks
}

func scanToken(str []rune, pos *int) *tokens.Token {
	c := utils.Advance(str, pos)
	if c == nil {
		return nil
	}
	switch *c {
	case ' ', '\t', '\n', '\r':
		return nil
	case '(':
		return mkToken(tokens.LeftParen)
	case ')':
		return mkToken(tokens.RightParen)
	case '{':
		return mkToken(tokens.LeftBrace)
	case '}':
		return mkToken(tokens.RightBrace)
	case '[':
		return mkToken(tokens.LeftBracket)
	case ']':
		return mkToken(tokens.RightBracket)
	case ',':
		return mkToken(tokens.Comma)
	case ';':
		return mkToken(tokens.Semicolon)
	case '+':
		return mkToken(tokens.Plus)
	case '-':
		return mkToken(tokens.Minus)
	case '*':
		return mkToken(tokens.Star)
	case '/':
		return mkToken(tokens.Slash)
	case '%':
		return mkToken(tokens.Percent)
	case '<':
		return mkToken(tokens.Less)
	case '>':
		return mkToken(tokens.Greater)
	case '=':
		// == is consumed greedily; a lone = is the assignment marker.
		next := utils.Peek(str, *pos)
		if next != nil && *next == '=' {
			*pos++
			return mkToken(tokens.EqlEql)
		}
		return mkToken(tokens.Assign)
	case '!':
		// != only; there is no boolean-not operator.
		next := utils.Peek(str, *pos)
		if next != nil && *next == '=' {
			*pos++
			return mkToken(tokens.BangEql)
		}
		return mkToken(tokens.Unknown)
	case '"':
		return scanStrLiteral(str, pos)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return scanNumLiteral(str, pos, *pos-1)
	default:
		if unicode.IsLetter(*c) {
			return scanIdentifier(str, pos, *pos-1)
		}
		return mkToken(tokens.Unknown)
	}
}

// Captures everything up to (not including) the next quote, verbatim.
// No escape sequences; at end of input the literal silently holds the
// remainder of the source.
func scanStrLiteral(str []rune, pos *int) *tokens.Token {
	start := *pos
	for {
		c := utils.Advance(str, pos)
		if c == nil {
			return &tokens.Token{Type: tokens.Str, Text: string(str[start:])}
		}
		if *c == '"' {
			return &tokens.Token{Type: tokens.Str, Text: string(str[start : *pos-1])}
		}
	}
}

func scanNumLiteral(str []rune, pos *int, start int) *tokens.Token {
	for {
		c := utils.Peek(str, *pos)
		if c == nil || !unicode.IsDigit(*c) {
			break
		}
		*pos++
	}
	return &tokens.Token{Type: tokens.Num, Text: string(str[start:*pos])}
}

func scanIdentifier(str []rune, pos *int, start int) *tokens.Token {
	for {
		c := utils.Peek(str, *pos)
		if c == nil || !(unicode.IsLetter(*c) || unicode.IsDigit(*c) || *c == '_') {
			break
		}
		*pos++
	}
	text := string(str[start:*pos])
	if kw, ok := tokens.Keywords[text]; ok {
		return mkToken(kw)
	}
	return &tokens.Token{Type: tokens.Identifier, Text: text}
}

func mkToken(type_ tokens.TokType) *tokens.Token {
	return &tokens.Token{Type: type_}
}
