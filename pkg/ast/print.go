package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrettyPrint writes an indented tree dump of a node to w via fmt.
// Debugging aid for the driver's --debug mode.
func PrettyPrint(node Ast) {
	prettyPrint(node, 0)
}

func prettyPrint(node Ast, indent int) {
	const INDENT_LVL = 3
	if indent == 0 {
		fmt.Print(strings.Repeat(" ", indent))
	} else {
		fmt.Print(strings.Repeat(" ", indent-1) + "|" + " ")
	}
	switch t := node.(type) {
	case Program:
		fmt.Print("Program\n")
		for _, stmt := range t.Statements {
			prettyPrint(stmt, indent+INDENT_LVL)
		}
		return
	case VarDecl:
		fmt.Printf("VarDecl: %s\n", t.Name)
		prettyPrint(t.Val, indent+INDENT_LVL)
		return
	case Assignment:
		fmt.Printf("Assignment: %s\n", t.Name)
		prettyPrint(t.Val, indent+INDENT_LVL)
		return
	case PrintStmt:
		fmt.Print("Print\n")
		prettyPrint(t.Expr, indent+INDENT_LVL)
		return
	case Binop:
		fmt.Printf("Binop: %s\n", t.Op)
		prettyPrint(t.Lhs, indent+INDENT_LVL)
		prettyPrint(t.Rhs, indent+INDENT_LVL)
		return
	case If:
		fmt.Print("If\n")
		prettyPrint(t.Cond, indent+INDENT_LVL)
		for _, stmt := range t.Then {
			prettyPrint(stmt, indent+INDENT_LVL)
		}
		return
	case IfElse:
		fmt.Print("IfElse\n")
		prettyPrint(t.Cond, indent+INDENT_LVL)
		for _, stmt := range t.Then {
			prettyPrint(stmt, indent+INDENT_LVL)
		}
		fmt.Print(strings.Repeat(" ", indent) + "else\n")
		for _, stmt := range t.Else {
			prettyPrint(stmt, indent+INDENT_LVL)
		}
		return
	case Identifier:
		fmt.Printf("Identifier: %s", t.Name)
	case Num:
		fmt.Printf("Num: %d", t.Val)
	case Str:
		fmt.Printf("Str: %s", t.Val)
	default:
		fmt.Printf("Error pretty-printing AST, unknown node type: %T", t)
	}
	fmt.Print("\n")
}

// Source renders a node back to source text. Expressions come out fully
// parenthesized so that reparsing the result rebuilds the same tree
// regardless of operator precedence.
func Source(node Ast) string {
	var sb strings.Builder
	writeSource(&sb, node)
	return sb.String()
}

func writeSource(sb *strings.Builder, node Ast) {
	switch t := node.(type) {
	case Program:
		for i, stmt := range t.Statements {
			if i > 0 {
				sb.WriteString("\n")
			}
			writeSource(sb, stmt)
		}
	case VarDecl:
		sb.WriteString("let " + t.Name + " = ")
		writeSource(sb, t.Val)
		sb.WriteString(";")
	case Assignment:
		sb.WriteString(t.Name + " = ")
		writeSource(sb, t.Val)
		sb.WriteString(";")
	case PrintStmt:
		sb.WriteString("print ")
		writeSource(sb, t.Expr)
		sb.WriteString(";")
	case If:
		sb.WriteString("if ")
		writeSource(sb, t.Cond)
		sb.WriteString(" {")
		writeBlock(sb, t.Then)
		sb.WriteString(" }")
	case IfElse:
		sb.WriteString("if ")
		writeSource(sb, t.Cond)
		sb.WriteString(" {")
		writeBlock(sb, t.Then)
		sb.WriteString(" } else {")
		writeBlock(sb, t.Else)
		sb.WriteString(" }")
	case Binop:
		sb.WriteString("(")
		writeSource(sb, t.Lhs)
		sb.WriteString(" " + t.Op.String() + " ")
		writeSource(sb, t.Rhs)
		sb.WriteString(")")
	case Identifier:
		sb.WriteString(t.Name)
	case Num:
		sb.WriteString(strconv.FormatInt(int64(t.Val), 10))
	case Str:
		sb.WriteString("\"" + t.Val + "\"")
	default:
		sb.WriteString(fmt.Sprintf("<unknown node %T>", t))
	}
}

func writeBlock(sb *strings.Builder, stmts []Ast) {
	for _, stmt := range stmts {
		sb.WriteString(" ")
		writeSource(sb, stmt)
	}
}
