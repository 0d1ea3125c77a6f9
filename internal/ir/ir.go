// Package ir определяет типизированное SSA-представление программ Slug:
// модуль из глобальных переменных и функций, функции из базовых блоков,
// блоки из инструкций. Каждая инструкция, производящая значение, сама
// является Value и может использоваться как операнд последующих
// инструкций — это и есть статическая единственность присваивания (SSA).
//
// Представление сознательно близко к модели LLVM IRBuilder (alloca в
// entry-блоке, load/store для доступа к изменяемым переменным, отдельные
// целочисленные и плавающие опкоды), поскольку именно на неё ориентируется
// настоящий бэкенд Slug — internal/ir лишь строит и проверяет эту
// структуру, не эмитируя объектный код самостоятельно.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeKind перечисляет типы значений SSA IR. Slug понижает i32/f64/bool в
// TI32/TDouble/TI1 соответственно; void используется только как тип
// возврата функции и тип store/ret-инструкций.
type TypeKind int

const (
	TVoid TypeKind = iota
	TI1
	TI32
	TDouble
	// TPtr — тип результата alloca: адрес stack-ячейки. Не участвует в
	// арифметике и сравнениях (IsInt/IsFloat возвращают для него false) —
	// он существует только чтобы alloca получала номер регистра и на неё
	// можно было ссылаться из load/store как на операнд.
	TPtr
)

// Type — тип значения IR.
type Type struct {
	Kind TypeKind
}

func (t Type) String() string {
	switch t.Kind {
	case TVoid:
		return "void"
	case TI1:
		return "i1"
	case TI32:
		return "i32"
	case TDouble:
		return "double"
	case TPtr:
		return "ptr"
	default:
		return "?"
	}
}

// IsInt сообщает, относится ли тип к целочисленному домену (включая i1).
func (t Type) IsInt() bool { return t.Kind == TI32 || t.Kind == TI1 }

// IsFloat сообщает, относится ли тип к домену чисел с плавающей точкой.
func (t Type) IsFloat() bool { return t.Kind == TDouble }

// Value — любое значение SSA IR, которое может использоваться как операнд:
// константа, параметр, глобальная переменная или результат инструкции.
type Value interface {
	Type() Type
	String() string
}

// ConstInt — целочисленная константа типа i32.
type ConstInt struct{ Val int32 }

func (c *ConstInt) Type() Type     { return Type{TI32} }
func (c *ConstInt) String() string { return strconv.FormatInt(int64(c.Val), 10) }

// ConstFloat — константа с плавающей точкой типа double.
type ConstFloat struct{ Val float64 }

func (c *ConstFloat) Type() Type     { return Type{TDouble} }
func (c *ConstFloat) String() string { return strconv.FormatFloat(c.Val, 'g', -1, 64) }

// ConstBool — булева константа типа i1.
type ConstBool struct{ Val bool }

func (c *ConstBool) Type() Type { return Type{TI1} }
func (c *ConstBool) String() string {
	if c.Val {
		return "true"
	}
	return "false"
}

// GlobalVar — глобальная переменная модуля, порождённая константным
// top-level let (см. internal/lower). Init хранит свёрнутое значение
// инициализатора.
type GlobalVar struct {
	Name    string
	ValType Type
	Init    Value
	// IsConst отражает ¬mut исходного top-level let (spec.md §4.4.5):
	// "let" без "mut" даёт константную глобальную, "let mut" — изменяемую.
	IsConst bool
}

func (g *GlobalVar) Type() Type     { return g.ValType }
func (g *GlobalVar) String() string { return "@" + g.Name }

// Param — параметр функции, используемый как SSA-значение внутри тела.
type Param struct {
	Name      string
	ParamType Type
}

func (p *Param) Type() Type     { return p.ParamType }
func (p *Param) String() string { return "%" + p.Name }

// Opcode перечисляет инструкции SSA IR. Целочисленные и плавающие
// операции различаются опкодом, а не типом операнда (spec.md §4.4:
// типизированная диспетчеризация int/float).
type Opcode int

const (
	OpAlloca Opcode = iota
	OpLoad
	OpStore
	OpAdd
	OpFAdd
	OpSub
	OpFSub
	OpMul
	OpFMul
	OpSDiv
	OpFDiv
	OpSRem
	OpFRem
	OpICmpEQ
	OpICmpNE
	OpICmpSLT
	OpICmpSLE
	OpICmpSGT
	OpICmpSGE
	OpFCmpOEQ
	OpFCmpONE
	OpFCmpOLT
	OpFCmpOLE
	OpFCmpOGT
	OpFCmpOGE
	OpNeg
	OpFNeg
	OpNot
	OpCall
	OpRet
	OpRetVoid
)

func (op Opcode) String() string {
	switch op {
	case OpAlloca:
		return "alloca"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpAdd:
		return "add"
	case OpFAdd:
		return "fadd"
	case OpSub:
		return "sub"
	case OpFSub:
		return "fsub"
	case OpMul:
		return "mul"
	case OpFMul:
		return "fmul"
	case OpSDiv:
		return "sdiv"
	case OpFDiv:
		return "fdiv"
	case OpSRem:
		return "srem"
	case OpFRem:
		return "frem"
	case OpICmpEQ:
		return "icmp eq"
	case OpICmpNE:
		return "icmp ne"
	case OpICmpSLT:
		return "icmp slt"
	case OpICmpSLE:
		return "icmp sle"
	case OpICmpSGT:
		return "icmp sgt"
	case OpICmpSGE:
		return "icmp sge"
	case OpFCmpOEQ:
		return "fcmp oeq"
	case OpFCmpONE:
		return "fcmp one"
	case OpFCmpOLT:
		return "fcmp olt"
	case OpFCmpOLE:
		return "fcmp ole"
	case OpFCmpOGT:
		return "fcmp ogt"
	case OpFCmpOGE:
		return "fcmp oge"
	case OpNeg:
		return "neg"
	case OpFNeg:
		return "fneg"
	case OpNot:
		return "not"
	case OpCall:
		return "call"
	case OpRet:
		return "ret"
	case OpRetVoid:
		return "ret void"
	default:
		return "?"
	}
}

// isTerminator сообщает, завершает ли инструкция базовый блок. Slug не
// имеет ветвлений, поэтому единственные терминаторы — ret и ret void.
func (op Opcode) isTerminator() bool {
	return op == OpRet || op == OpRetVoid
}

// Instruction — одна инструкция SSA IR. Для инструкций, не производящих
// значение (store, ret, ret void), ResultType.Kind == TVoid и String()
// печатает саму инструкцию, а не её имя.
type Instruction struct {
	id         int
	Op         Opcode
	ResultType Type
	Operands   []Value
	Callee     *Function // только для OpCall
	AllocType  Type      // только для OpAlloca: тип выделяемой ячейки
}

func (i *Instruction) Type() Type { return i.ResultType }

// String возвращает имя регистра (%N), под которым на это значение можно
// сослаться как на операнд. Для void-инструкций это не вызывается как
// операнд — используется только Module.Dump().
func (i *Instruction) String() string {
	if i.ResultType.Kind == TVoid {
		return i.dump()
	}
	return "%" + strconv.Itoa(i.id)
}

// dump форматирует инструкцию целиком для текстового дампа модуля.
func (i *Instruction) dump() string {
	var operands []string
	for _, op := range i.Operands {
		operands = append(operands, op.String())
	}
	args := strings.Join(operands, ", ")

	switch i.Op {
	case OpAlloca:
		return fmt.Sprintf("%s = alloca %s", i.String(), i.AllocType)
	case OpCall:
		name := "<nil>"
		if i.Callee != nil {
			name = i.Callee.Name
		}
		if i.ResultType.Kind == TVoid {
			return fmt.Sprintf("call void @%s(%s)", name, args)
		}
		return fmt.Sprintf("%s = call %s @%s(%s)", i.String(), i.ResultType, name, args)
	case OpRetVoid:
		return "ret void"
	case OpRet:
		return fmt.Sprintf("ret %s %s", i.Operands[0].Type(), args)
	case OpStore:
		return fmt.Sprintf("store %s, %s", operands[0], operands[1])
	default:
		if i.ResultType.Kind == TVoid {
			return fmt.Sprintf("%s %s", i.Op, args)
		}
		return fmt.Sprintf("%s = %s %s", i.String(), i.Op, args)
	}
}

// BasicBlock — линейная последовательность инструкций без внутренних
// переходов. Slug не имеет условных операторов или циклов (см.
// Non-goals), поэтому каждая функция состоит ровно из одного блока —
// entry — но структура блока сохраняется, чтобы согласовываться с тем,
// как настоящий бэкенд ожидает получать тело функции.
type BasicBlock struct {
	Name   string
	Instrs []*Instruction
}

// HasTerminator сообщает, завершается ли блок инструкцией ret/ret void.
func (b *BasicBlock) HasTerminator() bool {
	if len(b.Instrs) == 0 {
		return false
	}
	return b.Instrs[len(b.Instrs)-1].Op.isTerminator()
}

// Function — функция SSA IR.
type Function struct {
	Name    string
	Params  []*Param
	RetType Type
	Blocks  []*BasicBlock

	nextReg int
}

// EntryBlock возвращает первый базовый блок функции (создаётся Builder'ом
// при помощи CreateFunction).
func (f *Function) EntryBlock() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// Type и String делают *Function пригодной для хранения как Value в
// scope.Stack наравне с параметрами и глобальными константами (spec.md
// §4.4.7: "the binding value is used directly (function parameters,
// function handles, global constants)") — Slug не имеет значений
// функционального типа как таковых, Type() здесь лишь позволяет
// функции участвовать в той же привязке по имени, что и переменные.
func (f *Function) Type() Type     { return f.RetType }
func (f *Function) String() string { return "@" + f.Name }

// Module — единица компиляции SSA IR: набор глобальных переменных и
// функций, соответствующий одной программе Slug.
type Module struct {
	Name      string
	Globals   []*GlobalVar
	Functions []*Function
}

// NewModule создаёт пустой модуль с заданным именем.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddGlobal добавляет глобальную переменную в модуль.
func (m *Module) AddGlobal(g *GlobalVar) {
	m.Globals = append(m.Globals, g)
}

// AddFunction добавляет функцию в модуль.
func (m *Module) AddFunction(f *Function) {
	m.Functions = append(m.Functions, f)
}

// FindFunction ищет функцию по имени среди уже добавленных в модуль.
func (m *Module) FindFunction(name string) *Function {
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Dump выводит весь модуль в текстовом виде, пригодном для отладки и как
// вход узкому текстовому бэкенду (internal/backend).
func (m *Module) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; module %s\n", m.Name)
	for _, g := range m.Globals {
		init := "zeroinitializer"
		if g.Init != nil {
			init = g.Init.String()
		}
		kind := "global"
		if g.IsConst {
			kind = "constant"
		}
		fmt.Fprintf(&sb, "@%s = %s %s %s\n", g.Name, kind, g.ValType, init)
	}
	for _, f := range m.Functions {
		var params []string
		for _, p := range f.Params {
			params = append(params, fmt.Sprintf("%s %s", p.ParamType, p))
		}
		fmt.Fprintf(&sb, "\ndefine %s @%s(%s) {\n", f.RetType, f.Name, strings.Join(params, ", "))
		for _, b := range f.Blocks {
			fmt.Fprintf(&sb, "%s:\n", b.Name)
			for _, instr := range b.Instrs {
				fmt.Fprintf(&sb, "  %s\n", instr.dump())
			}
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}
