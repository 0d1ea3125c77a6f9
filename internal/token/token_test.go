package token_test

import (
	"testing"

	"github.com/slugc/slug/internal/token"
)

func TestTokenPos(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Lexeme: "test", Line: 5}

	pos := tok.Pos()
	if pos.Line != 5 {
		t.Errorf("Expected line 5, got %d", pos.Line)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.Eof, "Eof"},
		{token.Identifier, "Identifier"},
		{token.Fn, "Fn"},
		{token.Let, "Let"},
		{token.Mut, "Mut"},
		{token.Return, "Return"},
		{token.Number, "Number"},
		{token.String, "String"},
		{token.True, "True"},
		{token.False, "False"},
		{token.Plus, "Plus"},
		{token.PlusEqual, "PlusEqual"},
		{token.BangEqual, "BangEqual"},
		{token.LeftParen, "LeftParen"},
		{token.Colon, "Colon"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind %d: expected %q, got %q", tt.kind, tt.expected, got)
		}
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit      token.Literal
		expected string
	}{
		{token.Literal{Kind: token.IntLiteral, Int: 42}, "42"},
		{token.Literal{Kind: token.FloatLiteral, Float: 3.5}, "3.5"},
		{token.Literal{Kind: token.BoolLiteral, Bool: true}, "true"},
		{token.Literal{Kind: token.NoLiteral}, "<none>"},
	}

	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Lexeme: "x", Line: 1}
	if got := tok.String(); got != `Identifier("x")@1` {
		t.Errorf("unexpected token string: %q", got)
	}

	litTok := token.Token{
		Kind:    token.Number,
		Lexeme:  "42",
		Literal: token.Literal{Kind: token.IntLiteral, Int: 42},
		Line:    3,
	}
	if got := litTok.String(); got != `Number("42")=42@3` {
		t.Errorf("unexpected token string: %q", got)
	}
}

func TestKindsAreDistinct(t *testing.T) {
	if token.Eof == token.Identifier {
		t.Error("Eof and Identifier should be different")
	}
	if token.Fn == token.Let {
		t.Error("Fn and Let should be different")
	}
}
