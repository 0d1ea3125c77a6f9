// Package sema выполняет структурную предпроверку программы перед
// опусканием в IR: только верхнеуровневые объявления fn/let и ровно одна
// функция main с типом возврата void.
package sema

import (
	"fmt"

	"github.com/slugc/slug/internal/ast"
)

// SemanticError описывает нарушение структурного инварианта программы.
type SemanticError struct {
	Msg string
}

func (e SemanticError) Error() string {
	return fmt.Sprintf("Semantic error: %s", e.Msg)
}

// ValidateProgram проверяет структурные инварианты верхнего уровня,
// которые spec.md относит к первому проходу опускания (§4.4.2): на
// верхнем уровне допустимы только fn и let, и ровно одна функция,
// буквально названная main, с типом возврата void.
func ValidateProgram(prog *ast.Program) error {
	var mainCount int
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.FnStmt:
			if d.Name == "main" {
				mainCount++
				if d.ReturnType == nil || d.ReturnType.Kind() != ast.Void {
					return SemanticError{Msg: "function 'main' must have return type 'void'"}
				}
			}
		case *ast.LetStmt:
			// let верхнего уровня допустим безусловно; константность
			// инициализатора проверяется позже, при опускании (§4.4.5).
		default:
			return SemanticError{Msg: "only 'fn' and 'let' declarations are permitted at module scope"}
		}
	}
	if mainCount == 0 {
		return SemanticError{Msg: "program must declare a function named 'main'"}
	}
	if mainCount > 1 {
		return SemanticError{Msg: "program must declare exactly one function named 'main'"}
	}
	return nil
}
