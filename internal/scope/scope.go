// Пакет scope реализует стек лексических областей видимости, используемый
// на этапе понижения AST в IR (internal/lower). В отличие от цепочки
// родительских Scope-узлов, распространённой в древовидных интерпретаторах,
// здесь используется явный стек срезов — push/pop на вход/выход из блока,
// что отражает дисциплину "alloca в entry-блоке" этапа понижения: поиск
// имени всегда идёт сверху вниз по стеку, от самой внутренней области к
// глобальной.
package scope

import (
	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/ir"
)

// Binding связывает имя переменной с её storage-ячейкой в IR, флагом
// мутируемости и объявленным в исходнике типом. Проверки типов при
// присваивании и возврате в internal/lower сравнивают IR-типы и это поле
// не читают.
type Binding struct {
	Storage ir.Value
	Mut     bool
	Type    ast.Type
}

// Stack — стек областей видимости. Индекс 0 — глобальная область
// (функции и константы верхнего уровня); каждый Push добавляет новую
// область поверх стека, Pop её снимает.
type Stack struct {
	scopes []map[string]Binding
}

// NewStack создаёт стек с одной глобальной областью видимости.
func NewStack() *Stack {
	return &Stack{scopes: []map[string]Binding{make(map[string]Binding)}}
}

// Push открывает новую, самую внутреннюю область видимости.
func (s *Stack) Push() {
	s.scopes = append(s.scopes, make(map[string]Binding))
}

// Pop закрывает самую внутреннюю область видимости. Вызывающий код должен
// гарантировать парность с Push — это не проверяется во время выполнения.
func (s *Stack) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Declare связывает имя в текущей (самой внутренней) области видимости.
// Повторное объявление того же имени в одной области перекрывает прежнюю
// привязку — последняя запись побеждает, теневое объявление в блоке
// разрешено языком.
func (s *Stack) Declare(name string, b Binding) {
	s.scopes[len(s.scopes)-1][name] = b
}

// Lookup ищет имя, начиная с самой внутренней области и поднимаясь к
// глобальной. Возвращает найденную привязку и true, либо нулевое значение
// и false, если имя нигде не объявлено.
func (s *Stack) Lookup(name string) (Binding, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if b, ok := s.scopes[i][name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// DeclareGlobal связывает имя прямо в глобальной области видимости,
// независимо от того, какая область видимости сейчас самая внутренняя.
// Используется на первом проходе понижения программы, когда функции и
// let-константы верхнего уровня объявляются до того, как начнётся обход
// тел функций.
func (s *Stack) DeclareGlobal(name string, b Binding) {
	s.scopes[0][name] = b
}

// Depth возвращает текущую глубину стека (1 означает только глобальную
// область). Полезно в тестах и для sanity-проверок парности Push/Pop.
func (s *Stack) Depth() int {
	return len(s.scopes)
}
