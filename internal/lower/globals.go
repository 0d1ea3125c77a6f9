package lower

import (
	"fmt"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/ir"
	"github.com/slugc/slug/internal/scope"
	"github.com/slugc/slug/internal/token"
)

// declareGlobals — pass 1 of spec.md §4.4.2: iterate the program once,
// declaring a function prototype for every top-level Fn and folding the
// initializer of every top-level Let into a module constant. Any other
// top-level statement is a fatal error.
func (l *lowerer) declareGlobals(prog *ast.Program) error {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.FnStmt:
			if err := l.declareFnPrototype(d); err != nil {
				return err
			}
		case *ast.LetStmt:
			if err := l.declareGlobalLet(d); err != nil {
				return err
			}
		default:
			return fmt.Errorf("internal: unexpected top-level statement type %T (sema.ValidateProgram should have rejected this)", d)
		}
	}
	return nil
}

// declareFnPrototype строит сигнатуру функции (spec.md §4.4.4): типы
// параметров и тип возврата понижаются через mapType, кроме функции
// буквально названной main, чья IR-сигнатура возврата всегда i32
// независимо от объявленного исходного типа.
func (l *lowerer) declareFnPrototype(fn *ast.FnStmt) error {
	irParams, err := mapParams(fn.Params)
	if err != nil {
		return fmt.Errorf("function '%s': %w", fn.Name, err)
	}

	var retType ir.Type
	if fn.Name == "main" {
		retType = ir.Type{Kind: ir.TI32}
	} else {
		retType, err = mapType(fn.ReturnType)
		if err != nil {
			return fmt.Errorf("function '%s': %w", fn.Name, err)
		}
	}

	irFn := l.b.DeclarePrototype(l.module, fn.Name, irParams, retType)
	l.scope.DeclareGlobal(fn.Name, scope.Binding{Storage: irFn, Mut: false, Type: fn.ReturnType})
	return nil
}

// mapParams понижает параметры функции в параметры IR, сохраняя имена
// для биндинга в локальной области при эмиссии тела. Типовая ошибка в
// любом параметре прерывает построение прототипа немедленно.
func mapParams(params []*ast.Param) ([]*ir.Param, error) {
	irParams := make([]*ir.Param, 0, len(params))
	for _, p := range params {
		irType, err := mapType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': %w", p.Name, err)
		}
		irParams = append(irParams, &ir.Param{Name: p.Name, ParamType: irType})
	}
	return irParams, nil
}

// declareGlobalLet понижает top-level let (spec.md §4.4.5): инициализатор
// должен быть константным выражением, иначе — фатальная ошибка. Итоговая
// глобальная переменная получает constant-флаг = ¬mut.
func (l *lowerer) declareGlobalLet(let *ast.LetStmt) error {
	irType, err := mapType(let.Type)
	if err != nil {
		return fmt.Errorf("let '%s': %w", let.Name, err)
	}
	init, err := foldConstant(let.Init)
	if err != nil {
		return fmt.Errorf("non-constant initializer for top-level let '%s': %w", let.Name, err)
	}
	g := &ir.GlobalVar{Name: let.Name, ValType: irType, Init: init, IsConst: !let.Mut}
	l.module.AddGlobal(g)
	l.scope.DeclareGlobal(let.Name, scope.Binding{Storage: g, Mut: let.Mut, Type: let.Type})
	return nil
}

// foldConstant evaluates a module-scope initializer as a constant
// (spec.md §4.4.5: "literal expressions directly, no runtime
// computation"). Anything other than a bare literal — including
// arithmetic on literals — is rejected: neither spec.md nor the system
// it was distilled from describe constant-expression arithmetic, so
// folding stops at the literal the grammar already hands us.
func foldConstant(expr ast.Expr) (ir.Value, error) {
	lit, ok := expr.(*ast.LiteralExpr)
	if !ok {
		return nil, fmt.Errorf("expected a literal expression, got %T", expr)
	}
	switch lit.Literal.Kind {
	case token.IntLiteral:
		return &ir.ConstInt{Val: lit.Literal.Int}, nil
	case token.FloatLiteral:
		return &ir.ConstFloat{Val: lit.Literal.Float}, nil
	case token.BoolLiteral:
		return &ir.ConstBool{Val: lit.Literal.Bool}, nil
	default:
		return nil, fmt.Errorf("literal carries no value")
	}
}
