// Пакет lexer реализует однопроходный лексер языка Slug: Lex(source)
// преобразует исходный текст в плоскую последовательность токенов, не
// заглядывая вперёд более чем на два символа (spec.md §4.1).
package lexer

import (
	"fmt"
	"unicode"

	"github.com/spf13/cast"

	"github.com/slugc/slug/internal/token"
)

// Lexer отделяет реализацию лексического анализа от точки вызова.
type Lexer interface {
	Lex(source string) ([]token.Token, error)
}

type lexer struct {
	s      *scanner
	tokens []token.Token
}

// New создаёт лексер Slug.
func New() Lexer {
	return &lexer{}
}

// Lex сканирует исходный текст в последовательность токенов, всегда
// завершающуюся ровно одним Eof (spec.md §8, "Tokenizer totality": лексер
// либо производит полный поток токенов, либо возвращает ошибку).
func (l *lexer) Lex(source string) ([]token.Token, error) {
	l.s = newScanner(source)
	l.tokens = nil

	for {
		l.skipWhitespace()
		if l.s.isAtEnd() {
			break
		}
		if err := l.scanOne(); err != nil {
			return nil, err
		}
	}

	l.tokens = append(l.tokens, token.Token{Kind: token.Eof, Line: l.s.line})
	return l.tokens, nil
}

// skipWhitespace пропускает пробел, CR, TAB и перевод строки. У Slug нет
// синтаксиса комментариев (spec.md §4.1 перечисляет только пробельные
// символы), поэтому здесь не пропускается ничего сверх них.
func (l *lexer) skipWhitespace() {
	for !l.s.isAtEnd() {
		switch l.s.current() {
		case ' ', '\r', '\t', '\n':
			l.s.readChar()
		default:
			return
		}
	}
}

func (l *lexer) scanOne() error {
	c := l.s.current()
	line := l.s.line

	switch {
	case unicode.IsDigit(c):
		return l.number(line)
	case isIdentStart(c):
		l.identifierOrKeyword(line)
		return nil
	}

	if c < 128 {
		if kind, ok := singleCharPunct[byte(c)]; ok {
			lexeme := string(c)
			l.s.readChar()
			l.emit(kind, lexeme, token.Literal{}, line)
			return nil
		}
		if pair, ok := equalCombinable[byte(c)]; ok {
			lexeme := string(c)
			l.s.readChar()
			if l.s.current() == '=' {
				l.s.readChar()
				l.emit(pair[1], lexeme+"=", token.Literal{}, line)
			} else {
				l.emit(pair[0], lexeme, token.Literal{}, line)
			}
			return nil
		}
	}

	return fmt.Errorf("[line %d] Unexpected character: %c", line, c)
}

// isIdentStart допускает underscore в первой позиции идентификатора.
func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentCont допускает underscore в любой последующей позиции — spec.md
// §4.1 отмечает, что реализации SHOULD разрешать его где угодно в имени;
// это решение зафиксировано здесь, а не оставлено открытым (см. DESIGN.md).
func isIdentCont(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// number читает целочисленный или дробный литерал (spec.md §4.1): один или
// более разрядов; если за ними следует '.' и ещё цифра, читается дробная
// часть и производится литерал f64, иначе — i32. Нет ни шестнадцатеричной
// формы, ни экспоненты, ни знака — знак числа это унарный оператор, а не
// часть самого литерала.
func (l *lexer) number(line int) error {
	start := l.s.pos
	for unicode.IsDigit(l.s.current()) {
		l.s.readChar()
	}

	isFloat := false
	if l.s.current() == '.' && unicode.IsDigit(l.s.peek()) {
		isFloat = true
		l.s.readChar()
		for unicode.IsDigit(l.s.current()) {
			l.s.readChar()
		}
	}

	lexeme := string(l.s.runes[start:l.s.pos])

	if isFloat {
		f, err := cast.ToFloat64E(lexeme)
		if err != nil {
			return fmt.Errorf("[line %d] invalid float literal %q: %w", line, lexeme, err)
		}
		l.emit(token.Number, lexeme, token.Literal{Kind: token.FloatLiteral, Float: f}, line)
		return nil
	}

	i, err := cast.ToInt32E(lexeme)
	if err != nil {
		return fmt.Errorf("[line %d] invalid int literal %q: %w", line, lexeme, err)
	}
	l.emit(token.Number, lexeme, token.Literal{Kind: token.IntLiteral, Int: i}, line)
	return nil
}

// identifierOrKeyword читает [A-Za-z_][A-Za-z0-9_]* и разрешает ключевые
// слова и булевы литералы точным сравнением лексемы.
func (l *lexer) identifierOrKeyword(line int) {
	start := l.s.pos
	for isIdentCont(l.s.current()) {
		l.s.readChar()
	}
	lexeme := string(l.s.runes[start:l.s.pos])

	switch lexeme {
	case "true":
		l.emit(token.True, lexeme, token.Literal{Kind: token.BoolLiteral, Bool: true}, line)
		return
	case "false":
		l.emit(token.False, lexeme, token.Literal{Kind: token.BoolLiteral, Bool: false}, line)
		return
	}

	if kind, ok := Keywords[lexeme]; ok {
		l.emit(kind, lexeme, token.Literal{}, line)
		return
	}
	l.emit(token.Identifier, lexeme, token.Literal{}, line)
}

func (l *lexer) emit(kind token.Kind, lexeme string, lit token.Literal, line int) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: lexeme, Literal: lit, Line: line})
}
