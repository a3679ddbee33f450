package lexer

import (
	"testing"

	"github.com/drblallo/odl/token"
)

func collectRaw(t *testing.T, src string) []token.Token {
	t.Helper()
	l := NewRaw(src)
	var toks []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestRawLexerKeywordsAndOperators(t *testing.T) {
	toks := collectRaw(t, "const opt alt or and == != <= >= + - * / ( ) ;")
	want := []token.Kind{
		token.Const, token.Whitespace,
		token.Opt, token.Whitespace,
		token.Alt, token.Whitespace,
		token.Or, token.Whitespace,
		token.And, token.Whitespace,
		token.Equals, token.Whitespace,
		token.Different, token.Whitespace,
		token.LessEqual, token.Whitespace,
		token.GreaterEqual, token.Whitespace,
		token.Plus, token.Whitespace,
		token.Minus, token.Whitespace,
		token.Star, token.Whitespace,
		token.Slash, token.Whitespace,
		token.LParen, token.Whitespace,
		token.RParen, token.Whitespace,
		token.Semi,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestRawLexerCoalescesWhitespaceAndNewlines(t *testing.T) {
	toks := collectRaw(t, "a   b\n\n\nc")
	want := []token.Kind{token.Ident, token.Whitespace, token.Ident, token.EndLine, token.Ident}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	if toks[1].Width != 3 {
		t.Fatalf("whitespace width = %d, want 3", toks[1].Width)
	}
}

func TestRawLexerComment(t *testing.T) {
	toks := collectRaw(t, "asd #comment\n")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	if toks[0].Kind != token.Ident || toks[0].Text != "asd" {
		t.Fatalf("token 0 = %v, want Ident(asd)", toks[0])
	}
	if toks[2].Kind != token.Comment {
		t.Fatalf("token 2 = %v, want Comment", toks[2])
	}
}

func TestRawLexerInteger(t *testing.T) {
	toks := collectRaw(t, "65")
	if len(toks) != 1 || toks[0].Kind != token.Integer || toks[0].IntVal != 65 {
		t.Fatalf("got %v, want single Integer(65)", toks)
	}
}

func TestRawLexerUnrecognizedCharacterPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on unrecognized character")
		}
		if _, ok := r.(*UnrecognizedCharacter); !ok {
			t.Fatalf("expected *UnrecognizedCharacter, got %T", r)
		}
	}()
	collectRaw(t, "@")
}

func TestRawLexerLoneBangPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on lone '!'")
		}
	}()
	collectRaw(t, "!a")
}
