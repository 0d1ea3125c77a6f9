package ir_test

import (
	"strings"
	"testing"

	"github.com/slugc/slug/internal/ir"
)

func TestBuildSimpleAddFunction(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()

	params := []*ir.Param{
		{Name: "a", ParamType: ir.Type{Kind: ir.TI32}},
		{Name: "b", ParamType: ir.Type{Kind: ir.TI32}},
	}
	fn := b.CreateFunction(m, "add", params, ir.Type{Kind: ir.TI32})

	sum, err := b.CreateBinOp("+", params[0], params[1])
	if err != nil {
		t.Fatalf("CreateBinOp failed: %v", err)
	}
	b.CreateRet(sum)

	if err := ir.Verify(m); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if fn.RetType.Kind != ir.TI32 {
		t.Errorf("expected return type i32, got %s", fn.RetType)
	}
	if !m.FindFunction("add").Blocks[0].HasTerminator() {
		t.Error("expected entry block to have a terminator")
	}
}

func TestCreateAllocaLoadStore(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "f", nil, ir.Type{Kind: ir.TVoid})

	slot := b.CreateAlloca(ir.Type{Kind: ir.TI32})
	b.CreateStore(&ir.ConstInt{Val: 5}, slot)
	loaded := b.CreateLoad(slot)
	if loaded.Type().Kind != ir.TI32 {
		t.Errorf("expected loaded type i32, got %s", loaded.Type())
	}
	b.CreateRetVoid()

	if err := ir.Verify(m); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
}

func TestCreateCmpAllSixOperators(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "f", nil, ir.Type{Kind: ir.TVoid})

	lhs := &ir.ConstInt{Val: 1}
	rhs := &ir.ConstInt{Val: 2}

	ops := []string{"==", "!=", "<", "<=", ">", ">="}
	for _, op := range ops {
		cmp, err := b.CreateCmp(op, lhs, rhs)
		if err != nil {
			t.Fatalf("CreateCmp(%q) failed: %v", op, err)
		}
		if cmp.Type().Kind != ir.TI1 {
			t.Errorf("CreateCmp(%q): expected i1 result, got %s", op, cmp.Type())
		}
	}
}

func TestCreateCmpFloatDispatch(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "f", nil, ir.Type{Kind: ir.TVoid})

	lhs := &ir.ConstFloat{Val: 1.5}
	rhs := &ir.ConstFloat{Val: 2.5}
	cmp, err := b.CreateCmp(">=", lhs, rhs)
	if err != nil {
		t.Fatalf("CreateCmp failed: %v", err)
	}
	if cmp.Op != ir.OpFCmpOGE {
		t.Errorf("expected OpFCmpOGE, got %v", cmp.Op)
	}
}

func TestCreateBinOpEmitsFRemForFloatModulo(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "f", nil, ir.Type{Kind: ir.TVoid})

	instr, err := b.CreateBinOp("%", &ir.ConstFloat{Val: 1}, &ir.ConstFloat{Val: 2})
	if err != nil {
		t.Fatalf("CreateBinOp failed: %v", err)
	}
	if instr.Op != ir.OpFRem {
		t.Errorf("expected OpFRem, got %v", instr.Op)
	}
	if instr.Type() != (ir.Type{Kind: ir.TDouble}) {
		t.Errorf("expected result type double, got %v", instr.Type())
	}
}

func TestVerifyRejectsMissingTerminator(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "f", nil, ir.Type{Kind: ir.TVoid})
	b.CreateAlloca(ir.Type{Kind: ir.TI32})

	if err := ir.Verify(m); err == nil {
		t.Fatal("expected Verify to reject a block with no terminator")
	}
}

func TestVerifyRejectsMainNotReturningI32(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "main", nil, ir.Type{Kind: ir.TVoid})
	b.CreateRetVoid()

	if err := ir.Verify(m); err == nil {
		t.Fatal("expected Verify to reject main with non-i32 return type")
	}
}

func TestModuleDumpContainsFunctionSignature(t *testing.T) {
	m := ir.NewModule("test")
	b := ir.NewBuilder()
	b.CreateFunction(m, "main", nil, ir.Type{Kind: ir.TI32})
	b.CreateRet(&ir.ConstInt{Val: 0})

	dump := m.Dump()
	if !strings.Contains(dump, "define i32 @main()") {
		t.Errorf("expected function signature in dump, got:\n%s", dump)
	}
	if !strings.Contains(dump, "ret i32 0") {
		t.Errorf("expected ret instruction in dump, got:\n%s", dump)
	}
}

func TestGlobalVarDump(t *testing.T) {
	m := ir.NewModule("test")
	m.AddGlobal(&ir.GlobalVar{Name: "g", ValType: ir.Type{Kind: ir.TI32}, Init: &ir.ConstInt{Val: 7}})

	dump := m.Dump()
	if !strings.Contains(dump, "@g = global i32 7") {
		t.Errorf("expected global var in dump, got:\n%s", dump)
	}
}
