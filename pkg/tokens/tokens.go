package tokens

// Token is a single lexical unit. Identifier, Num and Str tokens carry
// their payload in Text; every other variant leaves it empty, so two
// tokens are equal exactly when their type and payload match.
type Token struct {
	Type TokType
	Text string
}

type TokType int8

const (
	// single char tokens
	LeftParen TokType = iota
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Minus
	Plus
	Star
	Slash
	Percent
	Less
	Greater
	Assign
	// 2 char tokens
	EqlEql
	BangEql
	// literals
	Identifier
	Num
	Str
	// keywords
	Let
	Print
	If
	Else
	EOF
	Unknown
)

func (self TokType) String() string {
	return []string{
		"'('", "')'", "'{'", "'}'", "'['", "']'", "','", "';'",
		"'-'", "'+'", "'*'", "'/'", "'%'", "'<'", "'>'", "'='",
		"'=='", "'!='",
		"identifier", "number", "string",
		"'let'", "'print'", "'if'", "'else'",
		"end of input", "unknown",
	}[self]
}

func (self Token) String() string {
	switch self.Type {
	case Identifier:
		return "identifier " + self.Text
	case Num:
		return "number " + self.Text
	case Str:
		return "string \"" + self.Text + "\""
	default:
		return self.Type.String()
	}
}

// Maps the text of a completed identifier to its keyword token type.
var Keywords = map[string]TokType{
	"let":   Let,
	"print": Print,
	"if":    If,
	"else":  Else,
}
