// Пакет token определяет типы токенов языка Slug, выделяемых лексическим
// анализатором, а также их позиции в исходном коде.
package token

import "fmt"

// Kind — перечисление возможных типов токенов, которые может распознать лексер.
type Kind int

const (
	// Пунктуация.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Semicolon
	Colon

	// Операторы.
	Bang
	BangEqual
	Equal
	EqualEqual
	Plus
	PlusEqual
	Minus
	MinusEqual
	Star
	StarEqual
	Slash
	SlashEqual
	Percent
	PercentEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Идентификаторы и литералы.
	Identifier
	Number
	True
	False
	String // зарезервирован; не опускается до IR (см. spec.md §1, §3)

	// Ключевые слова.
	Fn
	Let
	Mut
	Return

	// Терминатор потока токенов.
	Eof
)

// String возвращает имя типа токена, как оно перечислено в spec.md §6.
func (k Kind) String() string {
	switch k {
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case LeftBrace:
		return "LeftBrace"
	case RightBrace:
		return "RightBrace"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case Semicolon:
		return "Semicolon"
	case Colon:
		return "Colon"
	case Bang:
		return "Bang"
	case BangEqual:
		return "BangEqual"
	case Equal:
		return "Equal"
	case EqualEqual:
		return "EqualEqual"
	case Plus:
		return "Plus"
	case PlusEqual:
		return "PlusEqual"
	case Minus:
		return "Minus"
	case MinusEqual:
		return "MinusEqual"
	case Star:
		return "Star"
	case StarEqual:
		return "StarEqual"
	case Slash:
		return "Slash"
	case SlashEqual:
		return "SlashEqual"
	case Percent:
		return "Percent"
	case PercentEqual:
		return "PercentEqual"
	case Less:
		return "Less"
	case LessEqual:
		return "LessEqual"
	case Greater:
		return "Greater"
	case GreaterEqual:
		return "GreaterEqual"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case String:
		return "String"
	case Fn:
		return "Fn"
	case Let:
		return "Let"
	case Mut:
		return "Mut"
	case Return:
		return "Return"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// LiteralKind — вариант литерального значения, переносимого токеном.
type LiteralKind int

const (
	// NoLiteral — у токена нет сопутствующего литерала.
	NoLiteral LiteralKind = iota
	IntLiteral
	FloatLiteral
	BoolLiteral
)

// Literal — помеченное литеральное значение (spec.md §3: i32, f64 или bool).
type Literal struct {
	Kind  LiteralKind
	Int   int32
	Float float64
	Bool  bool
}

// String возвращает печатное представление литерала для отладки.
func (l Literal) String() string {
	switch l.Kind {
	case IntLiteral:
		return fmt.Sprintf("%d", l.Int)
	case FloatLiteral:
		return fmt.Sprintf("%g", l.Float)
	case BoolLiteral:
		return fmt.Sprintf("%t", l.Bool)
	default:
		return "<none>"
	}
}

// Position представляет позицию токена в исходном коде. Нумерация строк
// 1-based, как того требует spec.md §3.
type Position struct {
	Line int
}

// Token представляет один лексический токен. Неизменяем после создания.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    int // 1-based
}

// Pos возвращает позицию токена.
func (t Token) Pos() Position { return Position{Line: t.Line} }

// String возвращает человекочитаемое представление токена для диагностики.
func (t Token) String() string {
	if t.Literal.Kind != NoLiteral {
		return fmt.Sprintf("%s(%q)=%s@%d", t.Kind, t.Lexeme, t.Literal, t.Line)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Line)
}
