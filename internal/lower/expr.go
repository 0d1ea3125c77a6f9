package lower

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/ir"
	"github.com/slugc/slug/internal/token"
)

// lowerExpr реализует spec.md §4.4.7 — lowering for every expression
// variant the grammar produces.
func (l *lowerer) lowerExpr(expr ast.Expr) (ir.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return lowerLiteral(e)
	case *ast.VariableExpr:
		return l.lowerVariable(e)
	case *ast.BinaryExpr:
		return l.lowerBinary(e)
	case *ast.UnaryExpr:
		return l.lowerUnary(e)
	case *ast.CallExpr:
		return l.lowerCall(e)
	default:
		return nil, fmt.Errorf("internal: unhandled expression type %T", expr)
	}
}

func lowerLiteral(lit *ast.LiteralExpr) (ir.Value, error) {
	switch lit.Literal.Kind {
	case token.IntLiteral:
		return &ir.ConstInt{Val: lit.Literal.Int}, nil
	case token.FloatLiteral:
		return &ir.ConstFloat{Val: lit.Literal.Float}, nil
	case token.BoolLiteral:
		return &ir.ConstBool{Val: lit.Literal.Bool}, nil
	default:
		return nil, fmt.Errorf("internal: literal carries no value")
	}
}

// lowerVariable реализует spec.md §4.4.7's Variable case: an alloca
// binding is loaded, everything else (parameters, function handles,
// global constants) is used directly. An unresolved name is fatal —
// this is the fix for the variable-lowering bug spec.md §9 calls out,
// where a prior implementation's unreachable throw branch let an
// undefined reference silently fall through instead of failing.
func (l *lowerer) lowerVariable(v *ast.VariableExpr) (ir.Value, error) {
	binding, ok := l.scope.Lookup(v.Name)
	if !ok {
		return nil, fmt.Errorf("Undefined variable '%s'.", v.Name)
	}
	if slot, ok := binding.Storage.(*ir.Instruction); ok && slot.Op == ir.OpAlloca {
		return l.b.CreateLoad(slot), nil
	}
	return binding.Storage, nil
}

// lowerBinary реализует spec.md §4.4.7's Binary case: both operands are
// lowered first, then dispatched to the integer or floating opcode
// table by operand type. Mismatched operand types are never coerced.
func (l *lowerer) lowerBinary(b *ast.BinaryExpr) (ir.Value, error) {
	lhs, err := l.lowerExpr(b.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := l.lowerExpr(b.Right)
	if err != nil {
		return nil, err
	}
	if lhs.Type() != rhs.Type() {
		return nil, fmt.Errorf("Type mismatch: cannot apply '%s' to '%s' and '%s'", b.Op, lhs.Type(), rhs.Type())
	}

	switch b.Op {
	case ast.Eq, ast.Neq, ast.Lt, ast.Lte, ast.Gt, ast.Gte:
		instr, err := l.b.CreateCmp(b.Op.String(), lhs, rhs)
		if err != nil {
			return nil, err
		}
		return instr, nil
	default:
		instr, err := l.b.CreateBinOp(b.Op.String(), lhs, rhs)
		if err != nil {
			return nil, err
		}
		return instr, nil
	}
}

// lowerUnary реализует spec.md §4.4.7's Unary case: Negate dispatches by
// int/float domain inside ir.Builder.CreateNeg, Not only accepts i1.
func (l *lowerer) lowerUnary(u *ast.UnaryExpr) (ir.Value, error) {
	operand, err := l.lowerExpr(u.Expr)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case ast.Negate:
		return l.b.CreateNeg(operand)
	case ast.Not:
		return l.b.CreateNot(operand)
	default:
		return nil, fmt.Errorf("internal: unhandled unary operator %s", u.Op)
	}
}

// lowerCall реализует spec.md §4.4.7's Call case: the callee is looked
// up by name in any enclosing scope (function prototypes live in the
// global scope from pass 1), arguments are lowered left to right and
// checked against the declared parameter types.
func (l *lowerer) lowerCall(call *ast.CallExpr) (ir.Value, error) {
	binding, ok := l.scope.Lookup(call.Callee)
	if !ok {
		return nil, fmt.Errorf("Unknown function '%s'.", call.Callee)
	}
	fn, ok := binding.Storage.(*ir.Function)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a function", call.Callee)
	}

	args := make([]ir.Value, 0, len(call.Args))
	for _, argExpr := range call.Args {
		arg, err := l.lowerExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("'%s' expects %d argument(s), got %d", call.Callee, len(fn.Params), len(args))
	}
	for i, arg := range args {
		if arg.Type() != fn.Params[i].ParamType {
			paramTypes := lo.Map(fn.Params, func(p *ir.Param, _ int) string { return p.ParamType.String() })
			return nil, fmt.Errorf("Type mismatch in call to '%s': argument %d has type '%s' but expected '%s' (signature: %v)", call.Callee, i+1, arg.Type(), fn.Params[i].ParamType, paramTypes)
		}
	}
	return l.b.CreateCall(fn, args), nil
}
