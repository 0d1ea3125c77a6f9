// internal/ast/printer.go

// Пакет ast также печатает AST в человекочитаемом, отформатированном виде.
package ast

import (
	"strings"
)

// PrettyPrint возвращает отформатированное строковое представление узла
// AST с отступами по уровню вложенности. Используется при отладке и в
// diagnostic-режиме CLI.
func PrettyPrint(n Node) string {
	var sb strings.Builder
	prettyPrintNode(&sb, n, 0)
	return sb.String()
}

// prettyPrintNode рекурсивно обходит узел AST, выводя его String() и
// спускаясь в дочерние узлы согласно конкретному типу узла.
func prettyPrintNode(sb *strings.Builder, n Node, indent int) {
	if n == nil {
		return
	}
	prefix := strings.Repeat("  ", indent)
	sb.WriteString(prefix)
	sb.WriteString(n.String())
	sb.WriteString("\n")

	switch node := n.(type) {
	case *Program:
		for _, decl := range node.Decls {
			prettyPrintNode(sb, decl, indent+1)
		}
	case *FnStmt:
		for _, param := range node.Params {
			prettyPrintNode(sb, param, indent+1)
		}
		if node.ReturnType != nil {
			prettyPrintNode(sb, node.ReturnType, indent+1)
		}
		prettyPrintNode(sb, node.Body, indent+1)
	case *BlockStmt:
		for _, stmt := range node.Stmts {
			prettyPrintNode(sb, stmt, indent+1)
		}
	case *LetStmt:
		if node.Type != nil {
			prettyPrintNode(sb, node.Type, indent+1)
		}
		prettyPrintNode(sb, node.Init, indent+1)
	case *AssignStmt:
		prettyPrintNode(sb, node.Value, indent+1)
	case *ReturnStmt:
		if node.Value != nil {
			prettyPrintNode(sb, node.Value, indent+1)
		}
	case *ExpressionStmt:
		prettyPrintNode(sb, node.Expr, indent+1)
	case *BinaryExpr:
		prettyPrintNode(sb, node.Left, indent+1)
		prettyPrintNode(sb, node.Right, indent+1)
	case *UnaryExpr:
		prettyPrintNode(sb, node.Expr, indent+1)
	case *CallExpr:
		for _, arg := range node.Args {
			prettyPrintNode(sb, arg, indent+1)
		}
		// LiteralExpr, VariableExpr и PrimitiveType — листовые узлы и не
		// требуют отдельного случая.
	}
}
