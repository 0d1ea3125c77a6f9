package lower

import (
	"errors"
	"fmt"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/ir"
	"github.com/slugc/slug/internal/scope"
)

// lowerBlock реализует spec.md §4.4.6's Block case. Each block pushes
// its own scope (the resolved open question recorded in DESIGN.md),
// rather than sharing the enclosing function's scope directly.
func (l *lowerer) lowerBlock(block *ast.BlockStmt) error {
	l.scope.Push()
	defer l.scope.Pop()
	for _, stmt := range block.Stmts {
		if err := l.lowerStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (l *lowerer) lowerStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return l.lowerLocalLet(s)
	case *ast.ReturnStmt:
		return l.lowerReturnStmt(s)
	case *ast.AssignStmt:
		return l.lowerAssignStmt(s)
	case *ast.ExpressionStmt:
		_, err := l.lowerExpr(s.Expr)
		return err
	case *ast.FnStmt:
		return errors.New("nested function declarations are not supported inside a block")
	default:
		return fmt.Errorf("internal: unhandled statement type %T", stmt)
	}
}

// lowerLocalLet реализует spec.md §4.4.6's Let case: allocate a stack
// slot in the function's entry block regardless of where the let
// textually appears, lower the initializer, store it, and bind the name.
func (l *lowerer) lowerLocalLet(let *ast.LetStmt) error {
	irType, err := mapType(let.Type)
	if err != nil {
		return fmt.Errorf("let '%s': %w", let.Name, err)
	}
	slot := l.b.AllocaInEntry(irType)

	var initVal ir.Value
	if let.Init != nil {
		initVal, err = l.lowerExpr(let.Init)
		if err != nil {
			return err
		}
		if initVal.Type() != irType {
			return fmt.Errorf("Type mismatch in let '%s': initializer has type '%s' but expected '%s'", let.Name, initVal.Type(), irType)
		}
	} else {
		initVal = zeroValue(irType)
	}

	l.b.CreateStore(initVal, slot)
	l.scope.Declare(let.Name, scope.Binding{Storage: slot, Mut: let.Mut, Type: let.Type})
	return nil
}

// lowerReturnStmt реализует spec.md §4.4.6's Return case, including the
// main fix-up rule (§4.4.3, §4.4.4) for both a bare "return;" in main
// and a missing value entirely.
func (l *lowerer) lowerReturnStmt(ret *ast.ReturnStmt) error {
	fn := l.currentFn

	// main is always declared void (sema.ValidateProgram enforces this),
	// but its IR return type is forced to i32 (spec.md §4.4.4) — so a
	// bare "return;" in main always emits "ret i32 0", never "ret void".
	if fn.Name == "main" {
		if ret.Value != nil {
			return errors.New("cannot return a value from a void function.")
		}
		l.b.CreateRet(&ir.ConstInt{Val: 0})
		return nil
	}

	if fn.ReturnType.Kind() == ast.Void {
		if ret.Value != nil {
			return errors.New("cannot return a value from a void function.")
		}
		l.b.CreateRetVoid()
		return nil
	}

	if ret.Value == nil {
		return errors.New("Empty return in function with non-void return type.")
	}

	val, err := l.lowerExpr(ret.Value)
	if err != nil {
		return err
	}
	if val.Type() != l.currentIRFn.RetType {
		return fmt.Errorf("Type mismatch in function '%s': returning '%s' but expected '%s'", fn.Name, val.Type(), l.currentIRFn.RetType)
	}
	l.b.CreateRet(val)
	return nil
}

// lowerAssignStmt реализует решённый открытый вопрос о мутируемых
// переменных (см. DESIGN.md): присваивание понижается в store в alloca
// именованной привязки, с фатальной ошибкой для неизменяемых имён.
// Только локальные (alloca) привязки адресуемы — top-level let
// используется как значение напрямую (spec.md §4.4.7), без пути
// load/store, так что присвоение глобальному имени тоже отклоняется.
func (l *lowerer) lowerAssignStmt(assign *ast.AssignStmt) error {
	binding, ok := l.scope.Lookup(assign.Name)
	if !ok {
		return fmt.Errorf("Undefined variable '%s'.", assign.Name)
	}
	if !binding.Mut {
		return fmt.Errorf("Cannot assign to immutable variable '%s'.", assign.Name)
	}
	slot, ok := binding.Storage.(*ir.Instruction)
	if !ok || slot.Op != ir.OpAlloca {
		return fmt.Errorf("cannot assign to '%s': not a local variable", assign.Name)
	}

	val, err := l.lowerExpr(assign.Value)
	if err != nil {
		return err
	}
	if val.Type() != slot.AllocType {
		return fmt.Errorf("Type mismatch assigning to '%s': value has type '%s' but expected '%s'", assign.Name, val.Type(), slot.AllocType)
	}
	l.b.CreateStore(val, slot)
	return nil
}
