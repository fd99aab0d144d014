package eval

import (
	"fmt"
	"io"

	"github.com/crnvl/netl/pkg/ast"
)

// Interp evaluates one program. The environment is flat: there is no
// scoping, every binding is global for the duration of one Run, and
// nothing survives past it. Print output goes to out.
type Interp struct {
	env map[string]ast.Ast
	out io.Writer
}

func New(out io.Writer) *Interp {
	return &Interp{
		env: map[string]ast.Ast{},
		out: out,
	}
}

type FaultKind uint8

const (
	UndefinedVar FaultKind = iota
	TypeMismatch
	DivByZero
	BadCondition
	BadNode
)

// Fault is an evaluation-time error. It aborts the current run; prints
// already executed are not rolled back.
type Fault struct {
	Kind FaultKind
	Msg  string
}

func (self *Fault) Error() string {
	return self.Msg
}

// Run executes the program's statements in order, depth-first and left
// to right. The first fault aborts the remaining statements.
func (self *Interp) Run(prog ast.Program) error {
	for _, stmt := range prog.Statements {
		if err := self.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (self *Interp) exec(node ast.Ast) error {
	switch t := node.(type) {
	case ast.VarDecl:
		evald, err := self.eval(t.Val)
		if err != nil {
			return err
		}
		self.env[t.Name] = evald
		return nil

	case ast.Assignment:
		// Not distinguished from declaration: both overwrite the
		// same mapping.
		evald, err := self.eval(t.Val)
		if err != nil {
			return err
		}
		self.env[t.Name] = evald
		return nil

	case ast.PrintStmt:
		evald, err := self.eval(t.Expr)
		if err != nil {
			return err
		}
		text, err := stringify(evald)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(self.out, text)
		return err

	case ast.If:
		truthy, err := self.evalCondition(t.Cond)
		if err != nil {
			return err
		}
		if truthy {
			return self.execAll(t.Then)
		}
		return nil

	case ast.IfElse:
		truthy, err := self.evalCondition(t.Cond)
		if err != nil {
			return err
		}
		if truthy {
			return self.execAll(t.Then)
		}
		return self.execAll(t.Else)

	default:
		return &Fault{
			Kind: BadNode,
			Msg:  fmt.Sprintf("BUG: not a statement node: %T", t),
		}
	}
}

func (self *Interp) execAll(stmts []ast.Ast) error {
	for _, stmt := range stmts {
		if err := self.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Conditions must be numeric: non-zero is truthy, zero is falsy. The
// language has no boolean type, so a string condition is a fault.
func (self *Interp) evalCondition(cond ast.Ast) (bool, error) {
	evald, err := self.eval(cond)
	if err != nil {
		return false, err
	}
	switch t := evald.(type) {
	case ast.Num:
		return t.Val != 0, nil
	case ast.Str:
		return false, &Fault{
			Kind: BadCondition,
			Msg:  fmt.Sprintf("condition must be a number, got string %q", t.Val),
		}
	default:
		return false, &Fault{
			Kind: BadNode,
			Msg:  fmt.Sprintf("BUG: condition evaluated to non-value node: %T", t),
		}
	}
}

func (self *Interp) eval(node ast.Ast) (ast.Ast, error) {
	switch t := node.(type) {
	case ast.Num, ast.Str:
		return node, nil

	case ast.Identifier:
		val, ok := self.env[t.Name]
		if !ok {
			return nil, &Fault{
				Kind: UndefinedVar,
				Msg:  fmt.Sprintf("undefined variable: %s", t.Name),
			}
		}
		return val, nil

	case ast.Binop:
		lhs, err := self.eval(t.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := self.eval(t.Rhs)
		if err != nil {
			return nil, err
		}
		return applyBinop(t.Op, lhs, rhs)

	default:
		return nil, &Fault{
			Kind: BadNode,
			Msg:  fmt.Sprintf("BUG: not an expression node: %T", t),
		}
	}
}

// Every operator is defined for numbers only; comparisons produce the
// number 1 or 0. Equality on strings or mixed operands is a fault like
// any other type mismatch.
func applyBinop(op ast.BinaryOperator, lhs ast.Ast, rhs ast.Ast) (ast.Ast, error) {
	l, r, err := numOperands(op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.Plus:
		return ast.Num{Val: l + r}, nil
	case ast.Minus:
		return ast.Num{Val: l - r}, nil
	case ast.Mult:
		return ast.Num{Val: l * r}, nil
	case ast.Div:
		if r == 0 {
			return nil, &Fault{Kind: DivByZero, Msg: "division by zero"}
		}
		return ast.Num{Val: l / r}, nil
	case ast.Mod:
		if r == 0 {
			return nil, &Fault{Kind: DivByZero, Msg: "modulo by zero"}
		}
		return ast.Num{Val: l % r}, nil
	case ast.Eql:
		return boolToNum(l == r), nil
	case ast.NotEql:
		return boolToNum(l != r), nil
	case ast.Less:
		return boolToNum(l < r), nil
	case ast.Greater:
		return boolToNum(l > r), nil
	default:
		return nil, &Fault{
			Kind: BadNode,
			Msg:  fmt.Sprintf("BUG: unhandled binary operator: %s", op),
		}
	}
}

func numOperands(op ast.BinaryOperator, lhs ast.Ast, rhs ast.Ast) (int32, int32, error) {
	l, ok := lhs.(ast.Num)
	if !ok {
		return 0, 0, mismatch(op, lhs)
	}
	r, ok := rhs.(ast.Num)
	if !ok {
		return 0, 0, mismatch(op, rhs)
	}
	return l.Val, r.Val, nil
}

func mismatch(op ast.BinaryOperator, operand ast.Ast) error {
	return &Fault{
		Kind: TypeMismatch,
		Msg:  fmt.Sprintf("operator %s expects numbers, got %s", op, describe(operand)),
	}
}

func describe(val ast.Ast) string {
	switch t := val.(type) {
	case ast.Num:
		return fmt.Sprintf("number %d", t.Val)
	case ast.Str:
		return fmt.Sprintf("string %q", t.Val)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func boolToNum(b bool) ast.Num {
	if b {
		return ast.Num{Val: 1}
	}
	return ast.Num{Val: 0}
}

func stringify(val ast.Ast) (string, error) {
	switch t := val.(type) {
	case ast.Num:
		return fmt.Sprintf("%d", t.Val), nil
	case ast.Str:
		return t.Val, nil
	default:
		return "", &Fault{
			Kind: BadNode,
			Msg:  fmt.Sprintf("BUG: can't print non-value node: %T", t),
		}
	}
}
