// internal/parser/parser.go

// Package parser реализует рекурсивно-нисходящий парсер Slug с ручным
// разбором приоритетов для выражений, преобразующий поток токенов в AST.
package parser

import (
	"fmt"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/token"
)

// Parser разбирает поток токенов в AST. В отличие от парсеров с
// накоплением ошибок, Parser останавливается на первой синтаксической
// ошибке: spec.md §4.2 и §7 требуют единственной фатальной ошибки без
// восстановления, поэтому здесь нет ни списка ParseError, ни
// синхронизирующего пропуска токенов.
type Parser struct {
	stream TokenStream
}

// NewParser создаёт новый парсер из среза токенов, полученного от лексера.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{stream: NewTokenStream(tokens)}
}

// ParseProgram разбирает весь поток токенов как Program: program ::=
// { declaration }. Возвращает первую встреченную синтаксическую ошибку,
// если она есть; в этом случае возвращённый *ast.Program равен nil.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	pos := p.stream.Pos()
	var decls []ast.Stmt
	for !p.stream.IsEOF() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return ast.NewProgram(pos, decls), nil
}

// errorf строит фатальную ошибку синтаксического анализа в формате,
// который требует spec.md §7: "Parser error at line N: <reason>".
func (p *Parser) errorf(pos token.Position, format string, args ...any) error {
	return fmt.Errorf("Parser error at line %d: %s", pos.Line, fmt.Sprintf(format, args...))
}

// expect требует, чтобы текущий токен имел заданный Kind; при
// совпадении потребляет его и возвращает, иначе возвращает фатальную
// ошибку без продвижения курсора.
func (p *Parser) expect(kind token.Kind, desc string) (token.Token, error) {
	tok := p.stream.Peek()
	if tok.Kind != kind {
		return token.Token{}, p.errorf(tok.Pos(), "expected %s, got %s", desc, describeToken(tok))
	}
	return p.stream.Next(), nil
}

func describeToken(tok token.Token) string {
	if tok.Kind == token.Eof {
		return "end of input"
	}
	if tok.Lexeme != "" {
		return fmt.Sprintf("%q", tok.Lexeme)
	}
	return tok.Kind.String()
}
