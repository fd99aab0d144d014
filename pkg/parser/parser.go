package parser

import (
	"strconv"

	"github.com/crnvl/netl/pkg/ast"
	"github.com/crnvl/netl/pkg/scanner"
	. "github.com/crnvl/netl/pkg/tokens"
	"github.com/crnvl/netl/pkg/utils"
)

// ScanAndParse runs the scanner and the parser over a source string.
// This is the front half of the pipeline: the resulting tree is handed
// to eval as-is.
func ScanAndParse(source string) (ast.Program, error) {
	return Parse(scanner.Scan(source))
}

// Top-level parsing function. One token of lookahead, no backtracking,
// all-or-nothing: the first error aborts the parse.
func Parse(toks []Token) (ast.Program, error) {
	pos := 0
	res := []ast.Ast{}
	for !utils.PeekMatchesTokType(toks, pos, EOF) && !utils.IsAtEnd(toks, pos) {
		node, err := parseStatement(toks, &pos)
		if err != nil {
			return ast.Program{}, err
		}
		res = append(res, node)
	}
	return ast.Program{Statements: res}, nil
}

// The first token selects the production: let, print and if each open
// their own statement form, anything else is attempted as an assignment.
func parseStatement(toks []Token, pos *int) (ast.Ast, error) {
	next := utils.Peek(toks, *pos)
	if next == nil {
		return nil, &ParseError{Kind: UnexpectedEOF, Pos: *pos}
	}
	switch next.Type {
	case Let:
		return parseVarDecl(toks, pos)
	case Print:
		return parsePrint(toks, pos)
	case If:
		return parseIf(toks, pos)
	default:
		return parseAssignment(toks, pos)
	}
}

func parseVarDecl(toks []Token, pos *int) (ast.Ast, error) {
	if err := expect(toks, pos, Let); err != nil {
		return nil, err
	}
	name, err := expectIdentifier(toks, pos)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pos, Assign); err != nil {
		return nil, err
	}
	val, err := parseExpression(toks, pos)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pos, Semicolon); err != nil {
		return nil, err
	}
	return ast.VarDecl{Name: name, Val: val}, nil
}

func parsePrint(toks []Token, pos *int) (ast.Ast, error) {
	if err := expect(toks, pos, Print); err != nil {
		return nil, err
	}
	expr, err := parseExpression(toks, pos)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pos, Semicolon); err != nil {
		return nil, err
	}
	return ast.PrintStmt{Expr: expr}, nil
}

func parseAssignment(toks []Token, pos *int) (ast.Ast, error) {
	name, err := expectIdentifier(toks, pos)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pos, Assign); err != nil {
		return nil, err
	}
	expr, err := parseExpression(toks, pos)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pos, Semicolon); err != nil {
		return nil, err
	}
	return ast.Assignment{Name: name, Val: expr}, nil
}

func parseIf(toks []Token, pos *int) (ast.Ast, error) {
	if err := expect(toks, pos, If); err != nil {
		return nil, err
	}
	cond, err := parseExpression(toks, pos)
	if err != nil {
		return nil, err
	}
	then, err := parseBlock(toks, pos)
	if err != nil {
		return nil, err
	}
	if !utils.MatchTokenType(toks, pos, Else) {
		return ast.If{Cond: cond, Then: then}, nil
	}
	els, err := parseBlock(toks, pos)
	if err != nil {
		return nil, err
	}
	return ast.IfElse{Cond: cond, Then: then, Else: els}, nil
}

// A brace-delimited statement list. An unterminated block runs the
// statement loop into the EOF token, whose dispatch error terminates
// the parse.
func parseBlock(toks []Token, pos *int) ([]ast.Ast, error) {
	if err := expect(toks, pos, LeftBrace); err != nil {
		return nil, err
	}
	stmts := []ast.Ast{}
	for !utils.PeekMatchesTokType(toks, *pos, RightBrace) {
		stmt, err := parseStatement(toks, pos)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := expect(toks, pos, RightBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

// All nine binary operators live on one precedence level here, so
// 2 + 3 * 4 groups as (2 + 3) * 4. Equality additionally reappears one
// level down in parseTerm; both quirks are part of the language.
func parseExpression(toks []Token, pos *int) (ast.Ast, error) {
	expr, err := parseTerm(toks, pos)
	if err != nil {
		return nil, err
	}
	for utils.MatchTokenType(toks, pos, Plus, Minus, EqlEql, BangEql, Star, Slash, Percent, Less, Greater) {
		op := utils.Previous(toks, *pos)
		right, err := parseTerm(toks, pos)
		if err != nil {
			return nil, err
		}
		expr = ast.Binop{
			Op:  ast.TokToBinop[op.Type],
			Lhs: expr,
			Rhs: right,
		}
	}
	return expr, nil
}

func parseTerm(toks []Token, pos *int) (ast.Ast, error) {
	expr, err := parseFactor(toks, pos)
	if err != nil {
		return nil, err
	}
	for utils.MatchTokenType(toks, pos, EqlEql, BangEql) {
		op := utils.Previous(toks, *pos)
		right, err := parseFactor(toks, pos)
		if err != nil {
			return nil, err
		}
		expr = ast.Binop{
			Op:  ast.TokToBinop[op.Type],
			Lhs: expr,
			Rhs: right,
		}
	}
	return expr, nil
}

func parseFactor(toks []Token, pos *int) (ast.Ast, error) {
	next := utils.Advance(toks, pos)
	if next == nil {
		return nil, &ParseError{Kind: UnexpectedEOF, Pos: *pos}
	}
	switch next.Type {
	case Num:
		val, err := strconv.ParseInt(next.Text, 10, 32)
		if err != nil {
			return nil, &ParseError{Kind: BadNumber, Found: *next, Pos: *pos - 1}
		}
		return ast.Num{Val: int32(val)}, nil
	case Str:
		return ast.Str{Val: next.Text}, nil
	case Identifier:
		return ast.Identifier{Name: next.Text}, nil
	case LeftParen:
		expr, err := parseExpression(toks, pos)
		if err != nil {
			return nil, err
		}
		if err := expect(toks, pos, RightParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Found: *next, Pos: *pos - 1}
	}
}

func expect(toks []Token, pos *int, want TokType) error {
	next := utils.Peek(toks, *pos)
	if next == nil {
		return &ParseError{Kind: UnexpectedEOF, Pos: *pos}
	}
	if next.Type != want {
		return &ParseError{Kind: ExpectedToken, Expected: want, Found: *next, Pos: *pos}
	}
	*pos++
	return nil
}

func expectIdentifier(toks []Token, pos *int) (string, error) {
	next := utils.Peek(toks, *pos)
	if next == nil {
		return "", &ParseError{Kind: UnexpectedEOF, Pos: *pos}
	}
	if next.Type != Identifier {
		return "", &ParseError{Kind: ExpectedToken, Expected: Identifier, Found: *next, Pos: *pos}
	}
	*pos++
	return next.Text, nil
}
