package parser

import (
	"fmt"

	"github.com/crnvl/netl/pkg/tokens"
)

type ParseErrorKind uint8

const (
	// The grammar required one specific token and found another.
	ExpectedToken ParseErrorKind = iota
	// No production matches the token at the current position.
	UnexpectedToken
	// The parser ran past the final token.
	UnexpectedEOF
	// A number literal does not fit in an int32.
	BadNumber
)

// ParseError aborts the whole parse: no partial tree is ever returned.
// Pos is the index of the offending token in the scanned stream.
type ParseError struct {
	Kind     ParseErrorKind
	Expected tokens.TokType
	Found    tokens.Token
	Pos      int
}

func (self *ParseError) Error() string {
	switch self.Kind {
	case ExpectedToken:
		return fmt.Sprintf("expected %s but found %s at token %d", self.Expected, self.Found, self.Pos)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected %s at token %d", self.Found, self.Pos)
	case BadNumber:
		return fmt.Sprintf("number literal %s out of range at token %d", self.Found.Text, self.Pos)
	default:
		return "unexpected end of input"
	}
}
