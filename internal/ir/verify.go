package ir

import (
	"fmt"

	"github.com/samber/lo"
)

// Verify checks structural invariants of a lowered module: every block of
// every function is non-empty and ends in exactly one terminator, main
// returns i32, and a ret's operand type (or a ret void) matches the
// function's return type. Operand types of other instructions are not
// checked here. It is the
// final step of internal/lower's two-pass program lowering, run once per
// module rather than incrementally per instruction.
func Verify(m *Module) error {
	for _, fn := range m.Functions {
		if err := verifyFunction(fn); err != nil {
			return fmt.Errorf("ir: function %s: %w", fn.Name, err)
		}
	}
	return nil
}

func verifyFunction(fn *Function) error {
	if len(fn.Blocks) == 0 {
		return fmt.Errorf("function has no basic blocks")
	}
	if fn.Name == "main" && fn.RetType.Kind != TI32 {
		return fmt.Errorf("main must return i32, got %s", fn.RetType)
	}

	for _, block := range fn.Blocks {
		if err := verifyBlock(fn, block); err != nil {
			return fmt.Errorf("block %s: %w", block.Name, err)
		}
	}
	return nil
}

func verifyBlock(fn *Function, block *BasicBlock) error {
	if len(block.Instrs) == 0 {
		return fmt.Errorf("block has no instructions")
	}
	terminators := lo.Filter(block.Instrs, func(instr *Instruction, _ int) bool {
		return instr.Op.isTerminator()
	})
	if len(terminators) == 0 {
		return fmt.Errorf("block does not end in a terminator")
	}
	last := block.Instrs[len(block.Instrs)-1]
	if len(terminators) > 1 || !last.Op.isTerminator() {
		return fmt.Errorf("terminator %s is not the last instruction", terminators[0].Op)
	}

	if last.Op == OpRet {
		if len(last.Operands) != 1 {
			return fmt.Errorf("ret takes exactly one operand")
		}
		if last.Operands[0].Type() != fn.RetType {
			return fmt.Errorf("ret value type %s does not match function return type %s", last.Operands[0].Type(), fn.RetType)
		}
	}
	if last.Op == OpRetVoid && fn.RetType.Kind != TVoid {
		return fmt.Errorf("ret void in function declared to return %s", fn.RetType)
	}
	return nil
}
