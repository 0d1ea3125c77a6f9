package ir

import "fmt"

// Builder выпускает инструкции в текущую точку вставки, присваивая
// каждому производящему значение результату новый номер регистра. Один
// Builder обслуживает один модуль в течение всего понижения программы;
// точка вставки переключается между функциями и блоками через
// SetInsertPoint.
type Builder struct {
	fn    *Function
	block *BasicBlock
}

// NewBuilder создаёт пустой Builder без точки вставки.
func NewBuilder() *Builder {
	return &Builder{}
}

// CreateFunction создаёт новую функцию с единственным блоком entry,
// добавляет её в модуль и делает текущей точкой вставки. Сочетает
// DeclarePrototype и BeginFunctionBody в одном вызове — для кода,
// которому не нужно разносить объявление сигнатуры и эмиссию тела по
// разным проходам (internal/lower делает это раздельно, см. ниже).
func (b *Builder) CreateFunction(m *Module, name string, params []*Param, retType Type) *Function {
	fn := b.DeclarePrototype(m, name, params, retType)
	b.BeginFunctionBody(fn)
	return fn
}

// DeclarePrototype регистрирует сигнатуру функции в модуле без тела —
// соответствует первому проходу понижения программы (spec.md §4.4.2):
// функции и top-level константы объявляются все разом, до того как
// начнётся эмиссия какого-либо тела, чтобы взаимные и опережающие
// ссылки между функциями разрешались независимо от порядка в файле.
func (b *Builder) DeclarePrototype(m *Module, name string, params []*Param, retType Type) *Function {
	fn := &Function{Name: name, Params: params, RetType: retType}
	m.AddFunction(fn)
	return fn
}

// BeginFunctionBody создаёт entry-блок уже объявленной функции и
// переключает точку вставки на него — второй проход понижения
// программы (spec.md §4.4.3), выполняемый отдельно для каждой функции
// после того как все прототипы уже видны в модуле.
func (b *Builder) BeginFunctionBody(fn *Function) {
	entry := &BasicBlock{Name: "entry"}
	fn.Blocks = append(fn.Blocks, entry)
	b.fn = fn
	b.block = entry
}

// SetInsertPoint переключает точку вставки на заданную функцию и блок.
func (b *Builder) SetInsertPoint(fn *Function, block *BasicBlock) {
	b.fn = fn
	b.block = block
}

// Block возвращает блок, в который Builder сейчас вставляет инструкции.
func (b *Builder) Block() *BasicBlock { return b.block }

func (b *Builder) nextReg() int {
	b.fn.nextReg++
	return b.fn.nextReg
}

func (b *Builder) emit(instr *Instruction) *Instruction {
	if instr.ResultType.Kind != TVoid {
		instr.id = b.nextReg()
	}
	b.block.Instrs = append(b.block.Instrs, instr)
	return instr
}

// CreateAlloca выделяет именованную ячейку заданного типа. По дисциплине
// Slug все alloca размещаются в entry-блоке функции, даже если let
// встречается во вложенном блоке — это гарантирует internal/lower, вызывая
// CreateAlloca только пока точка вставки указывает на entry, либо вставляя
// инструкцию напрямую в Blocks[0] через AllocaInEntry.
func (b *Builder) CreateAlloca(typ Type) *Instruction {
	return b.emit(&Instruction{Op: OpAlloca, ResultType: Type{TPtr}, AllocType: typ})
}

// AllocaInEntry создаёт alloca прямо в entry-блоке текущей функции,
// независимо от того, в каком блоке сейчас находится точка вставки.
// internal/lower использует её для каждого локального let, чтобы каждая
// локальная переменная имела ровно одну стабильную stack-ячейку.
func (b *Builder) AllocaInEntry(typ Type) *Instruction {
	instr := &Instruction{Op: OpAlloca, ResultType: Type{TPtr}, AllocType: typ, id: b.nextReg()}
	entry := b.fn.Blocks[0]
	entry.Instrs = append(entry.Instrs, nil)
	copy(entry.Instrs[1:], entry.Instrs[:len(entry.Instrs)-1])
	entry.Instrs[0] = instr
	return instr
}

// CreateLoad читает значение из ячейки, выделенной CreateAlloca.
func (b *Builder) CreateLoad(ptr *Instruction) *Instruction {
	return b.emit(&Instruction{Op: OpLoad, ResultType: ptr.AllocType, Operands: []Value{ptr}})
}

// CreateStore записывает значение в ячейку, выделенную CreateAlloca.
func (b *Builder) CreateStore(val Value, ptr *Instruction) *Instruction {
	return b.emit(&Instruction{Op: OpStore, ResultType: Type{TVoid}, Operands: []Value{val, ptr}})
}

// intBinOps и floatBinOps сопоставляют логический оператор его опкоду в
// целочисленном и плавающем домене — диспетчеризация производится по
// типу операндов вызывающей стороной (internal/lower), а не здесь.
var intBinOps = map[string]Opcode{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpSDiv, "%": OpSRem,
}

var floatBinOps = map[string]Opcode{
	"+": OpFAdd, "-": OpFSub, "*": OpFMul, "/": OpFDiv, "%": OpFRem,
}

// CreateBinOp создаёт арифметическую инструкцию, выбирая целочисленный
// или плавающий опкод по типу левого операнда. Оба операнда должны уже
// иметь одинаковый тип — типовая совместимость проверяется в
// internal/lower до вызова этого метода.
func (b *Builder) CreateBinOp(symbol string, lhs, rhs Value) (*Instruction, error) {
	t := lhs.Type()
	var table map[string]Opcode
	switch {
	case t.IsInt():
		table = intBinOps
	case t.IsFloat():
		table = floatBinOps
	default:
		return nil, fmt.Errorf("ir: cannot apply %q to type %s", symbol, t)
	}
	op, ok := table[symbol]
	if !ok {
		return nil, fmt.Errorf("ir: operator %q not defined for type %s", symbol, t)
	}
	return b.emit(&Instruction{Op: op, ResultType: t, Operands: []Value{lhs, rhs}}), nil
}

var intCmpOps = map[string]Opcode{
	"==": OpICmpEQ, "!=": OpICmpNE, "<": OpICmpSLT, "<=": OpICmpSLE, ">": OpICmpSGT, ">=": OpICmpSGE,
}

var floatCmpOps = map[string]Opcode{
	"==": OpFCmpOEQ, "!=": OpFCmpONE, "<": OpFCmpOLT, "<=": OpFCmpOLE, ">": OpFCmpOGT, ">=": OpFCmpOGE,
}

// CreateCmp создаёт сравнение, производящее значение типа i1. Каждый из
// шести операторов сравнения имеет собственную запись в таблицах
// intCmpOps/floatCmpOps, поэтому "проваливания" между соседними case в
// switch, из-за которого в одном из предыдущих вариантов компилятора,
// например, ">=" вычислялся как "<", здесь быть не может.
func (b *Builder) CreateCmp(symbol string, lhs, rhs Value) (*Instruction, error) {
	t := lhs.Type()
	var table map[string]Opcode
	switch {
	case t.IsInt():
		table = intCmpOps
	case t.IsFloat():
		table = floatCmpOps
	default:
		return nil, fmt.Errorf("ir: cannot compare values of type %s", t)
	}
	op, ok := table[symbol]
	if !ok {
		return nil, fmt.Errorf("ir: comparison operator %q not recognized", symbol)
	}
	return b.emit(&Instruction{Op: op, ResultType: Type{TI1}, Operands: []Value{lhs, rhs}}), nil
}

// CreateNeg создаёт унарное отрицание, выбирая целочисленный или
// плавающий опкод по типу операнда.
func (b *Builder) CreateNeg(v Value) (*Instruction, error) {
	switch {
	case v.Type().IsInt():
		return b.emit(&Instruction{Op: OpNeg, ResultType: v.Type(), Operands: []Value{v}}), nil
	case v.Type().IsFloat():
		return b.emit(&Instruction{Op: OpFNeg, ResultType: v.Type(), Operands: []Value{v}}), nil
	default:
		return nil, fmt.Errorf("ir: cannot negate value of type %s", v.Type())
	}
}

// CreateNot создаёт логическое отрицание значения типа i1.
func (b *Builder) CreateNot(v Value) (*Instruction, error) {
	if v.Type().Kind != TI1 {
		return nil, fmt.Errorf("ir: cannot apply '!' to value of type %s", v.Type())
	}
	return b.emit(&Instruction{Op: OpNot, ResultType: Type{TI1}, Operands: []Value{v}}), nil
}

// CreateCall создаёт вызов ранее определённой функции.
func (b *Builder) CreateCall(callee *Function, args []Value) *Instruction {
	return b.emit(&Instruction{Op: OpCall, ResultType: callee.RetType, Operands: args, Callee: callee})
}

// CreateRet завершает текущий блок возвратом значения.
func (b *Builder) CreateRet(v Value) *Instruction {
	return b.emit(&Instruction{Op: OpRet, ResultType: Type{TVoid}, Operands: []Value{v}})
}

// CreateRetVoid завершает текущий блок пустым возвратом.
func (b *Builder) CreateRetVoid() *Instruction {
	return b.emit(&Instruction{Op: OpRetVoid, ResultType: Type{TVoid}})
}
