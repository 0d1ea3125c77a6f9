// Package lower реализует понижение проверенного AST в типизированный
// SSA IR модуль (spec.md §4.4) — ядро компилятора Slug. Понижение идёт в
// два прохода: сначала объявляются все сигнатуры функций и top-level
// константы (чтобы взаимные и опережающие ссылки между функциями
// разрешались независимо от порядка в файле), затем эмитируются тела
// функций.
package lower

import (
	"fmt"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/ir"
	"github.com/slugc/slug/internal/scope"
	"github.com/slugc/slug/internal/sema"
)

// lowerer держит состояние, общее для обоих проходов понижения одной
// программы: строящийся модуль, IR builder с текущей точкой вставки,
// стек областей видимости и AST-узел текущей функции (нужен Return'у,
// чтобы проверить тип возврата и применить особые правила для main).
type lowerer struct {
	module *ir.Module
	b      *ir.Builder
	scope  *scope.Stack

	currentFn   *ast.FnStmt
	currentIRFn *ir.Function
}

// Lower выполняет двухпроходное понижение программы в модуль SSA IR и
// запускает итоговую верификацию модуля (spec.md §4.4.8). Ошибка любого
// прохода фатальна и немедленно прерывает понижение — partial-success
// контракта нет (spec.md §5).
func Lower(prog *ast.Program) (*ir.Module, error) {
	if err := sema.ValidateProgram(prog); err != nil {
		return nil, err
	}

	l := &lowerer{
		module: ir.NewModule("slug"),
		b:      ir.NewBuilder(),
		scope:  scope.NewStack(),
	}

	if err := l.declareGlobals(prog); err != nil {
		return nil, err
	}
	if err := l.emitFunctionBodies(prog); err != nil {
		return nil, err
	}
	if err := ir.Verify(l.module); err != nil {
		return nil, fmt.Errorf("internal: IR verification failed, dumping module:\n%s\n%w", l.module.Dump(), err)
	}
	return l.module, nil
}

// mapType переводит объявленный в исходнике тип в тип значения IR
// (spec.md §4.4.4): void→void, i32→i32, f64→double, bool→i1.
func mapType(t ast.Type) (ir.Type, error) {
	switch t.Kind() {
	case ast.Void:
		return ir.Type{Kind: ir.TVoid}, nil
	case ast.I32:
		return ir.Type{Kind: ir.TI32}, nil
	case ast.F64:
		return ir.Type{Kind: ir.TDouble}, nil
	case ast.Bool:
		return ir.Type{Kind: ir.TI1}, nil
	default:
		return ir.Type{}, fmt.Errorf("unknown primitive type name %q", t.Kind())
	}
}

// zeroValue produces the zero value of an IR type, used for the
// defensive "let with no initializer" branch (spec.md §4.4.6 notes this
// is not reachable from the current grammar, since let_decl always
// requires "=" expr, but implementers should handle it anyway).
func zeroValue(t ir.Type) ir.Value {
	switch t.Kind {
	case ir.TI32:
		return &ir.ConstInt{Val: 0}
	case ir.TDouble:
		return &ir.ConstFloat{Val: 0}
	case ir.TI1:
		return &ir.ConstBool{Val: false}
	default:
		return &ir.ConstInt{Val: 0}
	}
}
