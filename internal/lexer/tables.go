// Пакет lexer: статические таблицы ключевых слов и операторов Slug.
package lexer

import "github.com/slugc/slug/internal/token"

// Keywords сопоставляет ключевые слова Slug их типам токенов (spec.md §4.1).
// "mut" не упомянут в прозе §4.1, но требуется грамматикой §4.2
// (`let_decl = "let" [ "mut" ] ...`) и перечислен в §6 — лексер распознаёт
// его как ключевое слово наравне с остальными.
var Keywords = map[string]token.Kind{
	"fn":     token.Fn,
	"let":    token.Let,
	"mut":    token.Mut,
	"return": token.Return,
}

// singleCharPunct — однозначная пунктуация, не комбинируемая с '='.
var singleCharPunct = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	',': token.Comma,
	'.': token.Dot,
	';': token.Semicolon,
	':': token.Colon,
}

// equalCombinable — операторы, допускающие необязательный хвостовой '='
// (spec.md §4.1: "! != = == + += - -= * *= / /= % %= < <= > >=").
var equalCombinable = map[byte][2]token.Kind{
	'!': {token.Bang, token.BangEqual},
	'=': {token.Equal, token.EqualEqual},
	'+': {token.Plus, token.PlusEqual},
	'-': {token.Minus, token.MinusEqual},
	'*': {token.Star, token.StarEqual},
	'/': {token.Slash, token.SlashEqual},
	'%': {token.Percent, token.PercentEqual},
	'<': {token.Less, token.LessEqual},
	'>': {token.Greater, token.GreaterEqual},
}
