// Пакет lexer: низкоуровневый сканер (работа с рунами и номером строки).
package lexer

// scanner — упрощённый ридер по рун-строке. Предоставляет peek и
// отслеживает номер строки для диагностики (spec.md §4.1: "no lookahead
// beyond two characters").
type scanner struct {
	runes   []rune
	length  int
	pos     int // индекс текущей руны
	readPos int // индекс следующей руны
	ch      rune
	line    int
}

// newScanner создаёт новый сканер и сразу читает первую руну.
func newScanner(input string) *scanner {
	r := []rune(input)
	s := &scanner{runes: r, length: len(r), line: 1}
	s.readChar()
	return s
}

// readChar продвигает сканер на следующую руну и обновляет номер строки.
func (s *scanner) readChar() {
	if s.readPos >= s.length {
		s.ch = 0
	} else {
		s.ch = s.runes[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
	if s.ch == '\n' {
		s.line++
	}
}

// current возвращает текущую руну (0 на конце входа).
func (s *scanner) current() rune { return s.ch }

// peek возвращает следующую руну без продвижения.
func (s *scanner) peek() rune {
	if s.readPos >= s.length {
		return 0
	}
	return s.runes[s.readPos]
}

// isAtEnd возвращает true, если достигнут конец входа.
func (s *scanner) isAtEnd() bool { return s.ch == 0 }
