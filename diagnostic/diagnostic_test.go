package diagnostic

import (
	"testing"

	"github.com/drblallo/odl/lexer"
	"github.com/drblallo/odl/parser"
	"github.com/drblallo/odl/token"
)

func TestFromErrorUnexpectedToken(t *testing.T) {
	tok := token.Token{Kind: token.RParen, Span: token.Span{
		Lo: token.SourceLocation{Row: 0, Column: 4},
		Hi: token.SourceLocation{Row: 0, Column: 5},
	}}
	d := FromError(&parser.UnexpectedTokenError{Token: tok}, token.SourceLocation{})
	if d.Message != "unexpected token" {
		t.Fatalf("message = %q, want %q", d.Message, "unexpected token")
	}
	if d.Range.Start != (Position{0, 4}) || d.Range.End != (Position{0, 5}) {
		t.Fatalf("range = %+v, want token span", d.Range)
	}
	if d.Source != "odl" {
		t.Fatalf("source = %q, want odl", d.Source)
	}
}

func TestFromErrorIndentation(t *testing.T) {
	span := token.Span{
		Lo: token.SourceLocation{Row: 1, Column: 0},
		Hi: token.SourceLocation{Row: 1, Column: 1},
	}
	d := FromError(&lexer.IndentationError{Span: span, Expected: 2, Actual: 1}, token.SourceLocation{})
	if d.Range.Start != (Position{1, 0}) {
		t.Fatalf("range start = %+v, want {1,0}", d.Range.Start)
	}
	if d.Message == "" {
		t.Fatalf("expected non-empty message mentioning expected/actual")
	}
}

func TestFromErrorEndOfTokenStreamCollapsesToLastKnown(t *testing.T) {
	last := token.SourceLocation{Row: 3, Column: 7}
	d := FromError(&lexer.EndOfTokenStreamError{}, last)
	want := Position{Line: 3, Character: 7}
	if d.Range.Start != want || d.Range.End != want {
		t.Fatalf("range = %+v, want zero-width range at %+v", d.Range, want)
	}
	if d.Message != "unexpected end of input" {
		t.Fatalf("message = %q, want %q", d.Message, "unexpected end of input")
	}
}
