package ast

import (
	"testing"

	"github.com/drblallo/odl/token"
)

func zeroSpan() token.Span { return token.Span{} }

func TestSymbolTableFallthrough(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Insert(Declaration{Kind: DeclConst, Const: &ConstantDeclaration{Name: "outer"}})

	child := root.MakeChild()
	child.Insert(Declaration{Kind: DeclConst, Const: &ConstantDeclaration{Name: "inner"}})

	if _, ok := child.Get("inner"); !ok {
		t.Fatalf("expected to find local symbol %q", "inner")
	}
	if _, ok := child.Get("outer"); !ok {
		t.Fatalf("expected child to fall through to parent for %q", "outer")
	}
	if _, ok := root.Get("inner"); ok {
		t.Fatalf("did not expect parent to see child's symbol %q", "inner")
	}
	if _, ok := child.Get("missing"); ok {
		t.Fatalf("did not expect to find nonexistent symbol")
	}
}

func TestDeclarationNameAndSpan(t *testing.T) {
	span := token.Span{
		Lo: token.SourceLocation{Row: 0, Column: 0},
		Hi: token.SourceLocation{Row: 0, Column: 7},
	}
	alt := &AlternativeDeclaration{Name: "asd", Span: span}
	d := Declaration{Kind: DeclAlt, Alt: alt}
	if got := d.Name(); got != "asd" {
		t.Fatalf("Name() = %q, want %q", got, "asd")
	}
	if got := d.Span(); got != span {
		t.Fatalf("Span() = %s, want %s", got, span)
	}
}

func TestDocumentTypeCheckSkipsChoice(t *testing.T) {
	doc := &Document{
		Entries: []Declaration{
			{Kind: DeclConst, Const: &ConstantDeclaration{Name: "a"}},
			{Kind: DeclChoice},
		},
	}
	if err := doc.TypeCheck(); err != nil {
		t.Fatalf("unexpected type check error: %v", err)
	}
}

func TestExpressionString(t *testing.T) {
	lhs := NewLit(IntLiteral(43), zeroSpan())
	rhs := NewLit(IntLiteral(53), zeroSpan())
	bin := NewBinary(GreaterEqual, lhs, rhs, zeroSpan())

	if got, want := bin.String(), "(43 >= 53)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
