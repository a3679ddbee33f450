package lexer

import (
	"testing"

	"github.com/drblallo/odl/token"
)

// collectIndent runs the indent lexer to completion, returning every
// successfully emitted token and the terminating error (always non-nil:
// either *EndOfTokenStreamError on success or the first failure).
func collectIndent(src string) ([]token.Token, error) {
	l := NewIndent(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, got []token.Token, want []token.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("got %v, want %v", gk, want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: %v)", i, gk[i], want[i], gk)
		}
	}
}

func TestIndentLexerNestedIndent(t *testing.T) {
	toks, err := collectIndent(" asd\n  asd\n asd\nasd\n")
	if _, ok := err.(*EndOfTokenStreamError); !ok {
		t.Fatalf("expected clean end-of-stream, got %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.Indent, token.Ident,
		token.Indent, token.Ident,
		token.Deindent, token.Ident,
		token.Deindent, token.Ident,
	})
}

func TestIndentLexerDropsComments(t *testing.T) {
	toks, err := collectIndent("asd #comment\n")
	if _, ok := err.(*EndOfTokenStreamError); !ok {
		t.Fatalf("expected clean end-of-stream, got %v", err)
	}
	assertKinds(t, toks, []token.Kind{token.Ident})
}

func TestIndentLexerMismatchedDedent(t *testing.T) {
	toks, err := collectIndent("  asd\n asd\n")
	assertKinds(t, toks, []token.Kind{token.Indent, token.Ident})

	ierr, ok := err.(*IndentationError)
	if !ok {
		t.Fatalf("expected *IndentationError, got %T (%v)", err, err)
	}
	if ierr.Expected != 2 || ierr.Actual != 1 {
		t.Fatalf("got IndentationError{expected:%d, actual:%d}, want {expected:2, actual:1}", ierr.Expected, ierr.Actual)
	}
}

func TestIndentLexerBlankLinesDoNotAffectIndentation(t *testing.T) {
	toks, err := collectIndent("const asd\n rasd\n\n")
	if _, ok := err.(*EndOfTokenStreamError); !ok {
		t.Fatalf("expected clean end-of-stream, got %v", err)
	}
	assertKinds(t, toks, []token.Kind{
		token.Const, token.Ident,
		token.Indent, token.Ident,
		token.Deindent,
	})
}

func TestIndentLexerBalancedIndentDeindent(t *testing.T) {
	inputs := []string{
		" a\n  b\n   c\nd\n",
		"a\n b\nc\n d\n",
		"a\n",
	}
	for _, src := range inputs {
		toks, err := collectIndent(src)
		if _, ok := err.(*EndOfTokenStreamError); !ok {
			t.Fatalf("%q: expected clean end-of-stream, got %v", src, err)
		}
		indents, deindents := 0, 0
		depth := 0
		for _, tok := range toks {
			switch tok.Kind {
			case token.Indent:
				indents++
				depth++
			case token.Deindent:
				deindents++
				depth--
			}
			if depth < 0 {
				t.Fatalf("%q: Deindent without matching Indent", src)
			}
		}
		if indents != deindents {
			t.Fatalf("%q: got %d Indent vs %d Deindent, want balanced", src, indents, deindents)
		}
		if depth != 0 {
			t.Fatalf("%q: indent depth not balanced at end: %d", src, depth)
		}
	}
}
