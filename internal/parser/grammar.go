// internal/parser/grammar.go

package parser

import (
	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/token"
)

// parseDeclaration реализует spec.md §4.2's shared declaration production,
// used for both program-level and block-level parsing:
// declaration ::= fn_decl | let_decl | return_stmt | expr_or_assign_stmt
// The restriction that only Fn and Let are legal at the top level is
// enforced during lowering (spec.md §4.4.2), not here.
func (p *Parser) parseDeclaration() (ast.Stmt, error) {
	switch p.stream.Peek().Kind {
	case token.Fn:
		return p.parseFnDecl()
	case token.Let:
		return p.parseLetDecl()
	case token.Return:
		return p.parseReturnStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseFnDecl разбирает:
// fn_decl ::= "fn" IDENT "(" [ param { "," param } ] ")" ":" type block
// Тип возврата вводится двоеточием и обязателен — не "->" и не опционален.
func (p *Parser) parseFnDecl() (ast.Stmt, error) {
	pos := p.stream.Pos()
	if _, err := p.expect(token.Fn, "'fn'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftParen, "'('"); err != nil {
		return nil, err
	}
	var params []*ast.Param
	if p.stream.Peek().Kind != token.RightParen {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.stream.Peek().Kind == token.Comma {
				p.stream.Next()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':' before return type"); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFnStmt(pos, nameTok.Lexeme, params, retType, body), nil
}

// parseParam разбирает: param ::= IDENT ":" type
func (p *Parser) parseParam() (*ast.Param, error) {
	nameTok, err := p.expect(token.Identifier, "parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':' after parameter name"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ast.NewParam(nameTok.Pos(), nameTok.Lexeme, typ), nil
}

// parseLetDecl разбирает:
// let_decl ::= "let" [ "mut" ] IDENT ":" type "=" expr ";"
func (p *Parser) parseLetDecl() (ast.Stmt, error) {
	pos := p.stream.Pos()
	if _, err := p.expect(token.Let, "'let'"); err != nil {
		return nil, err
	}
	mut := false
	if p.stream.Peek().Kind == token.Mut {
		p.stream.Next()
		mut = true
	}
	nameTok, err := p.expect(token.Identifier, "variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':' after variable name"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal, "'=' in let declaration"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';' after let declaration"); err != nil {
		return nil, err
	}
	return ast.NewLetStmt(pos, nameTok.Lexeme, mut, typ, init), nil
}

// parseReturnStmt разбирает: return_stmt ::= "return" [ expr ] ";"
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	pos := p.stream.Pos()
	if _, err := p.expect(token.Return, "'return'"); err != nil {
		return nil, err
	}
	if p.stream.Peek().Kind == token.Semicolon {
		p.stream.Next()
		return ast.NewReturnStmt(pos, nil), nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';' after return value"); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(pos, value), nil
}

// parseExprOrAssignStmt handles the two remaining declaration
// alternatives: assign_stmt ::= IDENT "=" expr ";" and the
// expression-statement fallthrough spec.md §4.2 adds to `declaration`.
// Both start by parsing a full expression; if what comes back is a bare
// VariableExpr immediately followed by "=", it is reinterpreted as an
// assignment target rather than a two-statement lookahead.
func (p *Parser) parseExprOrAssignStmt() (ast.Stmt, error) {
	pos := p.stream.Pos()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.stream.Peek().Kind == token.Equal {
		variable, ok := expr.(*ast.VariableExpr)
		if !ok {
			return nil, p.errorf(pos, "invalid assignment target")
		}
		p.stream.Next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon, "';' after assignment"); err != nil {
			return nil, err
		}
		return ast.NewAssignStmt(pos, variable.Name, value), nil
	}
	if _, err := p.expect(token.Semicolon, "';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewExpressionStmt(pos, expr), nil
}

// parseBlock разбирает: block ::= "{" { declaration } "}"
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	pos := p.stream.Pos()
	if _, err := p.expect(token.LeftBrace, "'{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.stream.Peek().Kind != token.RightBrace {
		if p.stream.IsEOF() {
			return nil, p.errorf(p.stream.Pos(), "expected '}', got end of input")
		}
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.stream.Next() // consume '}'
	return ast.NewBlockStmt(pos, stmts), nil
}

// parseType разбирает: type ::= "void" | "i32" | "f64" | "bool"
// Эти четыре имени не являются ключевыми словами лексера (spec.md §4.1
// перечисляет только fn/let/mut/return) — они обычные идентификаторы,
// которые парсер распознаёт по лексеме, как и teacher's ParseType делал
// для произвольных именованных типов.
func (p *Parser) parseType() (ast.Type, error) {
	tok, err := p.expect(token.Identifier, "type name")
	if err != nil {
		return nil, err
	}
	var kind ast.TypeKind
	switch tok.Lexeme {
	case "void":
		kind = ast.Void
	case "i32":
		kind = ast.I32
	case "f64":
		kind = ast.F64
	case "bool":
		kind = ast.Bool
	default:
		return nil, p.errorf(tok.Pos(), "unknown primitive type name %q", tok.Lexeme)
	}
	return ast.NewPrimitiveType(tok.Pos(), kind), nil
}

// Precedence-climbing expression grammar (spec.md §4.2), four binary
// levels from lowest to highest, left-associative; prefix "-"/"!" bind
// tighter than any binary operator.
//
//	expr       ::= equality
//	equality   ::= comparison { ( "==" | "!=" ) comparison }
//	comparison ::= additive  { ( "<" | "<=" | ">" | ">=" ) additive }
//	additive   ::= multiplicative { ( "+" | "-" ) multiplicative }
//	multiplicative ::= unary { ( "*" | "/" | "%" ) unary }
//	unary      ::= ( "-" | "!" ) unary | primary

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.stream.Peek().Kind {
		case token.EqualEqual:
			op = ast.Eq
		case token.BangEqual:
			op = ast.Neq
		default:
			return left, nil
		}
		pos := p.stream.Pos()
		p.stream.Next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(pos, left, op, right)
	}
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.stream.Peek().Kind {
		case token.Less:
			op = ast.Lt
		case token.LessEqual:
			op = ast.Lte
		case token.Greater:
			op = ast.Gt
		case token.GreaterEqual:
			op = ast.Gte
		default:
			return left, nil
		}
		pos := p.stream.Pos()
		p.stream.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(pos, left, op, right)
	}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.stream.Peek().Kind {
		case token.Plus:
			op = ast.Add
		case token.Minus:
			op = ast.Sub
		default:
			return left, nil
		}
		pos := p.stream.Pos()
		p.stream.Next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(pos, left, op, right)
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.stream.Peek().Kind {
		case token.Star:
			op = ast.Mul
		case token.Slash:
			op = ast.Div
		case token.Percent:
			op = ast.Mod
		default:
			return left, nil
		}
		pos := p.stream.Pos()
		p.stream.Next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(pos, left, op, right)
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.stream.Peek()
	var op ast.UnaryOp
	switch tok.Kind {
	case token.Minus:
		op = ast.Negate
	case token.Bang:
		op = ast.Not
	default:
		return p.parsePrimary()
	}
	p.stream.Next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpr(tok.Pos(), op, operand), nil
}

// parsePrimary разбирает литералы, идентификаторы (с опциональным
// вызовом) и скобочные выражения.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.stream.Peek()
	switch tok.Kind {
	case token.Number:
		p.stream.Next()
		return ast.NewLiteralExpr(tok.Pos(), tok.Literal), nil
	case token.True, token.False:
		p.stream.Next()
		return ast.NewLiteralExpr(tok.Pos(), tok.Literal), nil
	case token.Identifier:
		p.stream.Next()
		if p.stream.Peek().Kind == token.LeftParen {
			return p.parseCallArgs(tok)
		}
		return ast.NewVariableExpr(tok.Pos(), tok.Lexeme), nil
	case token.LeftParen:
		p.stream.Next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf(tok.Pos(), "expected expression, got %s", describeToken(tok))
	}
}

// parseCallArgs разбирает продолжение вызова функции после уже
// потреблённого идентификатора-имени: "(" [ expr { "," expr } ] ")".
func (p *Parser) parseCallArgs(nameTok token.Token) (ast.Expr, error) {
	p.stream.Next() // consume '('
	var args []ast.Expr
	if p.stream.Peek().Kind != token.RightParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.stream.Peek().Kind == token.Comma {
				p.stream.Next()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewCallExpr(nameTok.Pos(), nameTok.Lexeme, args), nil
}
