// internal/ast/nodes.go

// Пакет ast определяет абстрактное синтаксическое дерево языка Slug:
// статически типизированного императивного языка с функциями, блоками,
// целочисленной и плавающей арифметикой и булевыми условиями.
package ast

import (
	"fmt"

	"github.com/slugc/slug/internal/token"
)

// Position — псевдоним для token.Position, позиция узла в исходном коде.
type Position = token.Position

// Node — базовый интерфейс для всех узлов AST: каждый узел знает свою
// позицию и умеет выводить человекочитаемое представление для отладки.
type Node interface {
	Pos() Position
	String() string
}

// Program представляет корень AST — единицу компиляции Slug. Декларации
// верхнего уровня разбираются той же продукцией грамматики, что и
// объявления внутри блока (см. internal/parser), поэтому Decls хранится
// как []Stmt; лишь Fn и Let допустимы здесь семантически — это
// ограничение применяется на этапе понижения (internal/lower), а не в
// парсере.
type Program struct {
	pos   Position
	Decls []Stmt
}

func (p *Program) Pos() Position { return p.pos }
func (p *Program) String() string { return fmt.Sprintf("Program{Decls: %d}", len(p.Decls)) }

// NewProgram создаёт новый узел Program.
func NewProgram(pos Position, decls []Stmt) *Program {
	return &Program{pos: pos, Decls: decls}
}

// TypeKind перечисляет встроенные типы Slug (spec.md §3): void — только
// как тип возврата функции, i32/f64 — числовые типы, bool — условия,
// string — зарезервирован лексически, но не понижается до IR.
type TypeKind int

const (
	Void TypeKind = iota
	I32
	F64
	Bool
	StringType
)

func (k TypeKind) String() string {
	switch k {
	case Void:
		return "void"
	case I32:
		return "i32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	case StringType:
		return "string"
	default:
		return "unknown"
	}
}

// Type — интерфейс для типовых аннотаций. Единственная реализация —
// PrimitiveType, поскольку Slug не имеет пользовательских типов.
type Type interface {
	Node
	typeString() string
	Kind() TypeKind
}

// PrimitiveType представляет один из встроенных типов Slug.
type PrimitiveType struct {
	pos  Position
	kind TypeKind
}

func (pt *PrimitiveType) Pos() Position     { return pt.pos }
func (pt *PrimitiveType) String() string    { return fmt.Sprintf("Type{%s}", pt.kind) }
func (pt *PrimitiveType) typeString() string { return pt.String() }
func (pt *PrimitiveType) Kind() TypeKind    { return pt.kind }

// NewPrimitiveType создаёт новый узел PrimitiveType.
func NewPrimitiveType(pos Position, kind TypeKind) *PrimitiveType {
	return &PrimitiveType{pos: pos, kind: kind}
}

// Param представляет параметр функции: Param ::= IDENTIFIER ":" Type.
type Param struct {
	pos  Position
	Name string
	Type Type
}

func (p *Param) Pos() Position  { return p.pos }
func (p *Param) String() string { return fmt.Sprintf("Param{Name: %s}", p.Name) }

// NewParam создаёт новый узел Param.
func NewParam(pos Position, name string, typ Type) *Param {
	return &Param{pos: pos, Name: name, Type: typ}
}

// Stmt — интерфейс для всех операторов и деклараций Slug.
type Stmt interface {
	Node
	stmtString() string
}

// Expr — интерфейс для всех выражений Slug.
type Expr interface {
	Node
	exprString() string
}

// FnStmt представляет определение функции:
// fn_decl ::= "fn" IDENTIFIER "(" params? ")" ":" Type block
// Тип возврата не является опциональным в грамматике — парсер всегда
// заполняет ReturnType (явный "void" для процедур); nil допустим только
// при ручном построении узла в тестах.
type FnStmt struct {
	pos        Position
	Name       string
	Params     []*Param
	ReturnType Type
	Body       *BlockStmt
}

func (f *FnStmt) Pos() Position     { return f.pos }
func (f *FnStmt) String() string    { return fmt.Sprintf("FnStmt{Name: %s}", f.Name) }
func (f *FnStmt) stmtString() string { return f.String() }

// NewFnStmt создаёт новый узел FnStmt.
func NewFnStmt(pos Position, name string, params []*Param, returnType Type, body *BlockStmt) *FnStmt {
	return &FnStmt{pos: pos, Name: name, Params: params, ReturnType: returnType, Body: body}
}

// LetStmt представляет объявление переменной:
// let_decl ::= "let" [ "mut" ] IDENTIFIER ":" Type "=" expression ";"
// Mut отражает решённый открытый вопрос о мутируемости (см. DESIGN.md):
// без "mut" переменная неизменяема после инициализации.
type LetStmt struct {
	pos  Position
	Name string
	Mut  bool
	Type Type
	Init Expr
}

func (ls *LetStmt) Pos() Position     { return ls.pos }
func (ls *LetStmt) String() string    { return fmt.Sprintf("LetStmt{Name: %s, Mut: %t}", ls.Name, ls.Mut) }
func (ls *LetStmt) stmtString() string { return ls.String() }

// NewLetStmt создаёт новый узел LetStmt.
func NewLetStmt(pos Position, name string, mut bool, typ Type, init Expr) *LetStmt {
	return &LetStmt{pos: pos, Name: name, Mut: mut, Type: typ, Init: init}
}

// ReturnStmt представляет оператор возврата:
// return_stmt ::= "return" expression? ";"
type ReturnStmt struct {
	pos   Position
	Value Expr // nil для "return;"
}

func (r *ReturnStmt) Pos() Position     { return r.pos }
func (r *ReturnStmt) String() string    { return "ReturnStmt" }
func (r *ReturnStmt) stmtString() string { return r.String() }

// NewReturnStmt создаёт новый узел ReturnStmt.
func NewReturnStmt(pos Position, value Expr) *ReturnStmt {
	return &ReturnStmt{pos: pos, Value: value}
}

// AssignStmt представляет переприсваивание существующей переменной:
// assign_stmt ::= IDENTIFIER "=" expression ";"
// Добавлен решением открытого вопроса о мутируемых переменных (см.
// DESIGN.md) — без него в языке не было бы способа присвоить значение
// переменной, объявленной с "mut", после её инициализации.
type AssignStmt struct {
	pos   Position
	Name  string
	Value Expr
}

func (a *AssignStmt) Pos() Position     { return a.pos }
func (a *AssignStmt) String() string    { return fmt.Sprintf("AssignStmt{Name: %s}", a.Name) }
func (a *AssignStmt) stmtString() string { return a.String() }

// NewAssignStmt создаёт новый узел AssignStmt.
func NewAssignStmt(pos Position, name string, value Expr) *AssignStmt {
	return &AssignStmt{pos: pos, Name: name, Value: value}
}

// ExpressionStmt представляет выражение, используемое как оператор
// (spec.md §4.2: вызов функции ради побочного эффекта).
type ExpressionStmt struct {
	pos  Position
	Expr Expr
}

func (es *ExpressionStmt) Pos() Position     { return es.pos }
func (es *ExpressionStmt) String() string    { return "ExpressionStmt" }
func (es *ExpressionStmt) stmtString() string { return es.String() }

// NewExpressionStmt создаёт новый узел ExpressionStmt.
func NewExpressionStmt(pos Position, expr Expr) *ExpressionStmt {
	return &ExpressionStmt{pos: pos, Expr: expr}
}

// BlockStmt представляет блок: block ::= "{" declaration* "}". Блок
// вводит собственную область видимости (push/pop в internal/scope).
type BlockStmt struct {
	pos   Position
	Stmts []Stmt
}

func (b *BlockStmt) Pos() Position     { return b.pos }
func (b *BlockStmt) String() string    { return fmt.Sprintf("BlockStmt{Stmts: %d}", len(b.Stmts)) }
func (b *BlockStmt) stmtString() string { return b.String() }

// NewBlockStmt создаёт новый узел BlockStmt.
func NewBlockStmt(pos Position, stmts []Stmt) *BlockStmt {
	return &BlockStmt{pos: pos, Stmts: stmts}
}

// BinaryOp перечисляет бинарные операторы Slug в четырёх уровнях
// приоритета (spec.md §4.2): `* / %` > `+ -` > сравнения порядка >
// равенство.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	default:
		return "?"
	}
}

// BinaryExpr представляет бинарное выражение: `a + b`, `x == y`.
type BinaryExpr struct {
	pos   Position
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (be *BinaryExpr) Pos() Position     { return be.pos }
func (be *BinaryExpr) String() string    { return fmt.Sprintf("BinaryExpr{%s}", be.Op) }
func (be *BinaryExpr) exprString() string { return be.String() }

// NewBinaryExpr создаёт новый узел BinaryExpr.
func NewBinaryExpr(pos Position, left Expr, op BinaryOp, right Expr) *BinaryExpr {
	return &BinaryExpr{pos: pos, Left: left, Op: op, Right: right}
}

// UnaryOp перечисляет унарные префиксные операторы Slug: `-` (отрицание
// числа) и `!` (логическое отрицание).
type UnaryOp int

const (
	Negate UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "!"
	default:
		return "?"
	}
}

// UnaryExpr представляет унарное выражение: `-x`, `!flag`.
type UnaryExpr struct {
	pos  Position
	Op   UnaryOp
	Expr Expr
}

func (ue *UnaryExpr) Pos() Position     { return ue.pos }
func (ue *UnaryExpr) String() string    { return fmt.Sprintf("UnaryExpr{%s}", ue.Op) }
func (ue *UnaryExpr) exprString() string { return ue.String() }

// NewUnaryExpr создаёт новый узел UnaryExpr.
func NewUnaryExpr(pos Position, op UnaryOp, expr Expr) *UnaryExpr {
	return &UnaryExpr{pos: pos, Op: op, Expr: expr}
}

// LiteralExpr представляет числовой или булев литерал.
type LiteralExpr struct {
	pos     Position
	Literal token.Literal
}

func (l *LiteralExpr) Pos() Position     { return l.pos }
func (l *LiteralExpr) String() string    { return fmt.Sprintf("LiteralExpr{%s}", l.Literal) }
func (l *LiteralExpr) exprString() string { return l.String() }

// NewLiteralExpr создаёт новый узел LiteralExpr.
func NewLiteralExpr(pos Position, lit token.Literal) *LiteralExpr {
	return &LiteralExpr{pos: pos, Literal: lit}
}

// VariableExpr представляет ссылку на переменную по имени.
type VariableExpr struct {
	pos  Position
	Name string
}

func (v *VariableExpr) Pos() Position     { return v.pos }
func (v *VariableExpr) String() string    { return fmt.Sprintf("VariableExpr{%s}", v.Name) }
func (v *VariableExpr) exprString() string { return v.String() }

// NewVariableExpr создаёт новый узел VariableExpr.
func NewVariableExpr(pos Position, name string) *VariableExpr {
	return &VariableExpr{pos: pos, Name: name}
}

// CallExpr представляет вызов функции: call ::= IDENTIFIER "(" args? ")".
// Slug не имеет вызовов через произвольное выражение-функцию (нет
// замыканий и указателей на функции), поэтому Callee хранится как имя, а
// не как Expr.
type CallExpr struct {
	pos    Position
	Callee string
	Args   []Expr
}

func (ce *CallExpr) Pos() Position     { return ce.pos }
func (ce *CallExpr) String() string    { return fmt.Sprintf("CallExpr{%s, Args: %d}", ce.Callee, len(ce.Args)) }
func (ce *CallExpr) exprString() string { return ce.String() }

// NewCallExpr создаёт новый узел CallExpr.
func NewCallExpr(pos Position, callee string, args []Expr) *CallExpr {
	return &CallExpr{pos: pos, Callee: callee, Args: args}
}
