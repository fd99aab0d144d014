package utils

import (
	"github.com/crnvl/netl/pkg/tokens"
)

func Peek[T any](str []T, pos int) *T {
	if pos < len(str) {
		return &str[pos]
	}
	return nil
}

func Previous[T any](str []T, pos int) *T {
	prevIdx := pos - 1
	return Advance(str, &prevIdx)
}

func Advance[T any](str []T, pos *int) *T {
	if *pos >= len(str) || *pos < 0 {
		return nil
	}
	res := &str[*pos]
	*pos++
	return res
}

func IsAtEnd[T any](str []T, pos int) bool {
	return pos >= len(str)
}

// Consumes the current token and reports true if its type is one of vals.
func MatchTokenType(slice []tokens.Token, pos *int, vals ...tokens.TokType) bool {
	if *pos >= len(slice) {
		return false
	}
	for _, val := range vals {
		if slice[*pos].Type == val {
			*pos++
			return true
		}
	}
	return false
}

func PeekMatchesTokType(slice []tokens.Token, pos int, vals ...tokens.TokType) bool {
	peeked := Peek(slice, pos)
	if peeked == nil {
		return false
	}
	for _, val := range vals {
		if val == peeked.Type {
			return true
		}
	}
	return false
}
