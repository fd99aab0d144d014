package ast

import (
	"github.com/crnvl/netl/pkg/tokens"
)

// Interface of every Ast node type. The variant set is closed: Program,
// VarDecl, Assignment, PrintStmt, Identifier, Num, Str, Binop, If and
// IfElse, and every consumption site switches over all of them.
type Ast interface{}

// Root node, exactly one per parse. An empty statement list is valid.
type Program struct {
	Statements []Ast
}

// `let name = expr;` — introduces or overwrites a binding.
type VarDecl struct {
	Name string
	Val  Ast
}

// `name = expr;` — at evaluation time this is indistinguishable from a
// declaration: both write the same environment mapping.
type Assignment struct {
	Name string
	Val  Ast
}

// `print expr;`
type PrintStmt struct {
	Expr Ast
}

// A variable reference, resolved against the environment when evaluated.
type Identifier struct {
	Name string
}

type Num struct {
	Val int32
}

type Str struct {
	Val string
}

type Binop struct {
	Op  BinaryOperator
	Lhs Ast
	Rhs Ast
}

// `if expr { ... }` with no else branch.
type If struct {
	Cond Ast
	Then []Ast
}

// `if expr { ... } else { ... }`
type IfElse struct {
	Cond Ast
	Then []Ast
	Else []Ast
}

type BinaryOperator uint8

const (
	Eql BinaryOperator = iota
	NotEql
	Minus
	Plus
	Mult
	Div
	Mod
	Less
	Greater
)

func (self BinaryOperator) String() string {
	return []string{"==", "!=", "-", "+", "*", "/", "%", "<", ">"}[self]
}

// Maps tokens to their corresponding BinaryOperator if such a mapping exists.
var TokToBinop = map[tokens.TokType]BinaryOperator{
	tokens.EqlEql:  Eql,
	tokens.BangEql: NotEql,
	tokens.Minus:   Minus,
	tokens.Plus:    Plus,
	tokens.Star:    Mult,
	tokens.Slash:   Div,
	tokens.Percent: Mod,
	tokens.Less:    Less,
	tokens.Greater: Greater,
}
