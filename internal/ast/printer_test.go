package ast_test

import (
	"strings"
	"testing"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/token"
)

func TestNewProgram(t *testing.T) {
	pos := token.Position{Line: 1}
	prog := ast.NewProgram(pos, []ast.Stmt{})

	if prog == nil {
		t.Fatal("expected program to be non-nil")
	}
	if prog.Pos().Line != 1 {
		t.Errorf("expected line 1, got %d", prog.Pos().Line)
	}
	if len(prog.Decls) != 0 {
		t.Errorf("expected 0 decls, got %d", len(prog.Decls))
	}
}

func TestNewFnStmt(t *testing.T) {
	pos := token.Position{Line: 1}
	retType := ast.NewPrimitiveType(pos, ast.I32)
	params := []*ast.Param{
		ast.NewParam(pos, "a", ast.NewPrimitiveType(pos, ast.I32)),
		ast.NewParam(pos, "b", ast.NewPrimitiveType(pos, ast.I32)),
	}
	body := ast.NewBlockStmt(pos, []ast.Stmt{})

	fn := ast.NewFnStmt(pos, "add", params, retType, body)

	if fn == nil {
		t.Fatal("expected fn to be non-nil")
	}
	if fn.Name != "add" {
		t.Errorf("expected name 'add', got %q", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(fn.Params))
	}
}

func TestNewLetStmt(t *testing.T) {
	pos := token.Position{Line: 1}
	typ := ast.NewPrimitiveType(pos, ast.I32)
	init := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 42})
	stmt := ast.NewLetStmt(pos, "x", true, typ, init)

	if stmt == nil {
		t.Fatal("expected let statement to be non-nil")
	}
	if stmt.Name != "x" {
		t.Errorf("expected name 'x', got %q", stmt.Name)
	}
	if !stmt.Mut {
		t.Error("expected Mut true")
	}
}

func TestNewAssignStmt(t *testing.T) {
	pos := token.Position{Line: 1}
	value := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 7})
	stmt := ast.NewAssignStmt(pos, "x", value)

	if stmt.Name != "x" {
		t.Errorf("expected name 'x', got %q", stmt.Name)
	}
	if stmt.Value == nil {
		t.Error("expected value to be non-nil")
	}
}

func TestNewExpressionStmt(t *testing.T) {
	pos := token.Position{Line: 1}
	expr := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 42})
	stmt := ast.NewExpressionStmt(pos, expr)

	if stmt == nil {
		t.Fatal("expected expression statement to be non-nil")
	}
	if stmt.Expr == nil {
		t.Error("expected expression to be non-nil")
	}
}

func TestNewBlockStmt(t *testing.T) {
	pos := token.Position{Line: 1}
	block := ast.NewBlockStmt(pos, []ast.Stmt{})

	if block == nil {
		t.Fatal("expected block to be non-nil")
	}
	if len(block.Stmts) != 0 {
		t.Errorf("expected 0 statements, got %d", len(block.Stmts))
	}
}

func TestNewLiteralExpr(t *testing.T) {
	pos := token.Position{Line: 1}
	tests := []struct {
		lit      token.Literal
		expected string
	}{
		{token.Literal{Kind: token.IntLiteral, Int: 42}, "42"},
		{token.Literal{Kind: token.FloatLiteral, Float: 3.5}, "3.5"},
		{token.Literal{Kind: token.BoolLiteral, Bool: true}, "true"},
	}

	for _, tt := range tests {
		lit := ast.NewLiteralExpr(pos, tt.lit)
		if !strings.Contains(lit.String(), tt.expected) {
			t.Errorf("expected %q in %q", tt.expected, lit.String())
		}
	}
}

func TestNewBinaryExpr(t *testing.T) {
	pos := token.Position{Line: 1}
	left := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 5})
	right := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 3})

	expr := ast.NewBinaryExpr(pos, left, ast.Add, right)

	if expr == nil {
		t.Fatal("expected binary expression to be non-nil")
	}
	if expr.Op != ast.Add {
		t.Errorf("expected op Add, got %v", expr.Op)
	}
	if expr.Left == nil || expr.Right == nil {
		t.Error("expected left and right to be non-nil")
	}
}

func TestBinaryOpString(t *testing.T) {
	tests := []struct {
		op       ast.BinaryOp
		expected string
	}{
		{ast.Add, "+"}, {ast.Sub, "-"}, {ast.Mul, "*"}, {ast.Div, "/"}, {ast.Mod, "%"},
		{ast.Eq, "=="}, {ast.Neq, "!="}, {ast.Lt, "<"}, {ast.Lte, "<="}, {ast.Gt, ">"}, {ast.Gte, ">="},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestNewUnaryExpr(t *testing.T) {
	pos := token.Position{Line: 1}
	expr := ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 42})
	unary := ast.NewUnaryExpr(pos, ast.Negate, expr)

	if unary == nil {
		t.Fatal("expected unary expression to be non-nil")
	}
	if unary.Op != ast.Negate {
		t.Errorf("expected op Negate, got %v", unary.Op)
	}
}

func TestNewCallExpr(t *testing.T) {
	pos := token.Position{Line: 1}
	args := []ast.Expr{
		ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 1}),
		ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 2}),
	}

	call := ast.NewCallExpr(pos, "add", args)

	if call == nil {
		t.Fatal("expected call expression to be non-nil")
	}
	if call.Callee != "add" {
		t.Errorf("expected callee 'add', got %q", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(call.Args))
	}
}

func TestNewVariableExpr(t *testing.T) {
	pos := token.Position{Line: 1}
	v := ast.NewVariableExpr(pos, "x")
	if v.Name != "x" {
		t.Errorf("expected name 'x', got %q", v.Name)
	}
}

func TestPrimitiveTypeKind(t *testing.T) {
	pos := token.Position{Line: 1}
	tests := []struct {
		kind     ast.TypeKind
		expected string
	}{
		{ast.Void, "void"}, {ast.I32, "i32"}, {ast.F64, "f64"}, {ast.Bool, "bool"}, {ast.StringType, "string"},
	}
	for _, tt := range tests {
		typ := ast.NewPrimitiveType(pos, tt.kind)
		if typ.Kind() != tt.kind {
			t.Errorf("expected kind %v, got %v", tt.kind, typ.Kind())
		}
		if tt.kind.String() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
		}
	}
}

func TestNewParam(t *testing.T) {
	pos := token.Position{Line: 1}
	typ := ast.NewPrimitiveType(pos, ast.I32)
	param := ast.NewParam(pos, "x", typ)

	if param == nil {
		t.Fatal("expected param to be non-nil")
	}
	if param.Name != "x" {
		t.Errorf("expected name 'x', got %q", param.Name)
	}
}

func TestStringMethods(t *testing.T) {
	pos := token.Position{Line: 1}

	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{"Program", ast.NewProgram(pos, []ast.Stmt{}), "Program{Decls: 0}"},
		{"FnStmt", ast.NewFnStmt(pos, "foo", nil, nil, nil), "FnStmt{Name: foo}"},
		{"Param", ast.NewParam(pos, "x", nil), "Param{Name: x}"},
	}

	for _, tt := range tests {
		str := tt.node.String()
		if !strings.Contains(str, tt.expected) {
			t.Errorf("%s: expected substring %q in %q", tt.name, tt.expected, str)
		}
	}
}

func TestPrettyPrintComplex(t *testing.T) {
	pos := token.Position{Line: 1}

	fn := ast.NewFnStmt(
		pos,
		"complex",
		[]*ast.Param{
			ast.NewParam(pos, "a", ast.NewPrimitiveType(pos, ast.I32)),
			ast.NewParam(pos, "b", ast.NewPrimitiveType(pos, ast.I32)),
		},
		ast.NewPrimitiveType(pos, ast.I32),
		ast.NewBlockStmt(pos, []ast.Stmt{
			ast.NewLetStmt(pos, "x", false, ast.NewPrimitiveType(pos, ast.I32), ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 5})),
			ast.NewReturnStmt(pos, ast.NewBinaryExpr(
				pos,
				ast.NewVariableExpr(pos, "a"),
				ast.Add,
				ast.NewVariableExpr(pos, "b"),
			)),
		}),
	)

	prog := ast.NewProgram(pos, []ast.Stmt{fn})

	output := ast.PrettyPrint(prog)

	if !strings.Contains(output, "complex") {
		t.Error("expected 'complex' in output")
	}
	if !strings.Contains(output, "BinaryExpr") {
		t.Error("expected 'BinaryExpr' in output")
	}
}

func TestPrettyPrintUnaryExpr(t *testing.T) {
	pos := token.Position{Line: 1}

	unary := ast.NewUnaryExpr(pos, ast.Negate, ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 42}))
	prog := ast.NewProgram(pos, []ast.Stmt{
		ast.NewFnStmt(pos, "test", nil, nil, ast.NewBlockStmt(pos, []ast.Stmt{
			ast.NewExpressionStmt(pos, unary),
		})),
	})

	output := ast.PrettyPrint(prog)
	if !strings.Contains(output, "UnaryExpr") {
		t.Error("expected UnaryExpr in output")
	}
}

func TestPrettyPrintCallExpr(t *testing.T) {
	pos := token.Position{Line: 1}

	call := ast.NewCallExpr(
		pos,
		"foo",
		[]ast.Expr{
			ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 1}),
			ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 2}),
		},
	)

	prog := ast.NewProgram(pos, []ast.Stmt{
		ast.NewFnStmt(pos, "test", nil, nil, ast.NewBlockStmt(pos, []ast.Stmt{
			ast.NewExpressionStmt(pos, call),
		})),
	})

	output := ast.PrettyPrint(prog)
	if !strings.Contains(output, "CallExpr") {
		t.Error("expected CallExpr in output")
	}
}

func TestPrettyPrintNestedExpressions(t *testing.T) {
	pos := token.Position{Line: 1}

	inner := ast.NewBinaryExpr(
		pos,
		ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 1}),
		ast.Add,
		ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 2}),
	)
	outer := ast.NewBinaryExpr(
		pos,
		inner,
		ast.Mul,
		ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 3}),
	)

	prog := ast.NewProgram(pos, []ast.Stmt{
		ast.NewFnStmt(pos, "test", nil, nil, ast.NewBlockStmt(pos, []ast.Stmt{
			ast.NewExpressionStmt(pos, outer),
		})),
	})

	output := ast.PrettyPrint(prog)
	if !strings.Contains(output, "BinaryExpr") {
		t.Error("expected BinaryExpr in output")
	}
}

func TestInterfaceImplementation(t *testing.T) {
	pos := token.Position{Line: 1}

	var stmts []ast.Stmt
	var exprs []ast.Expr
	var types []ast.Type

	ls := ast.NewLetStmt(pos, "x", false, nil, ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 1}))
	es := ast.NewExpressionStmt(pos, ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 1}))
	blk := ast.NewBlockStmt(pos, []ast.Stmt{})
	as := ast.NewAssignStmt(pos, "x", ast.NewLiteralExpr(pos, token.Literal{Kind: token.IntLiteral, Int: 2}))
	rs := ast.NewReturnStmt(pos, nil)

	stmts = append(stmts, ls, es, blk, as, rs)
	exprs = append(exprs, ast.NewLiteralExpr(pos, token.Literal{}), ast.NewVariableExpr(pos, "x"),
		ast.NewBinaryExpr(pos, nil, ast.Add, nil), ast.NewUnaryExpr(pos, ast.Negate, nil), ast.NewCallExpr(pos, "f", nil))
	types = append(types, ast.NewPrimitiveType(pos, ast.I32))

	_ = stmts
	_ = exprs
	_ = types
}
