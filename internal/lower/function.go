package lower

import (
	"errors"
	"fmt"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/scope"
)

// emitFunctionBodies — pass 2 of spec.md §4.4.2: every top-level Fn gets
// its body emitted now that all prototypes are visible, so mutual and
// forward references between functions resolve regardless of source
// order. Top-level Let was already fully handled in pass 1.
func (l *lowerer) emitFunctionBodies(prog *ast.Program) error {
	for _, decl := range prog.Decls {
		fn, ok := decl.(*ast.FnStmt)
		if !ok {
			continue
		}
		if err := l.emitFunctionBody(fn); err != nil {
			return err
		}
	}
	return nil
}

// emitFunctionBody реализует spec.md §4.4.3.
func (l *lowerer) emitFunctionBody(fn *ast.FnStmt) error {
	irFn := l.module.FindFunction(fn.Name)
	if irFn == nil {
		return fmt.Errorf("internal: no prototype declared for function '%s'", fn.Name)
	}

	l.b.BeginFunctionBody(irFn)
	l.scope.Push()
	l.currentFn = fn
	l.currentIRFn = irFn

	for i, param := range fn.Params {
		l.scope.Declare(param.Name, scope.Binding{Storage: irFn.Params[i], Mut: false, Type: param.Type})
	}

	if err := l.lowerBlock(fn.Body); err != nil {
		return err
	}

	if !l.b.Block().HasTerminator() {
		if err := l.emitImplicitTerminator(fn); err != nil {
			return err
		}
	}

	l.scope.Pop()
	l.currentFn = nil
	l.currentIRFn = nil
	return nil
}

// emitImplicitTerminator fills in the missing terminator spec.md §4.4.3
// requires when control falls off the end of a function body: main
// always gets "ret i32 0", a void function gets "ret void", and any
// other function is a fatal error — it promised a value on every path.
func (l *lowerer) emitImplicitTerminator(fn *ast.FnStmt) error {
	switch {
	case fn.Name == "main":
		l.b.CreateRet(zeroValue(l.currentIRFn.RetType))
	case fn.ReturnType.Kind() == ast.Void:
		l.b.CreateRetVoid()
	default:
		return errors.New("Empty return in function with non-void return type.")
	}
	return nil
}
