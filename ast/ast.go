// Package ast defines the ODL abstract syntax tree: literals, expressions,
// and the const/opt/alt declaration forms, plus the symbol table used by
// the (currently trivial) type-check pass.
package ast

import (
	"fmt"

	"github.com/drblallo/odl/token"
)

// LiteralKind tags the variant held by a Literal.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	// LiteralIdent holds a bare identifier used as a primary expression.
	LiteralIdent
	// LiteralStr and LiteralFloat are reserved: the lexer and parser never
	// produce them today (see spec's "assume no for now" on string/float
	// literals), but the union carries the variant so a future lexer
	// extension does not need to change every switch over LiteralKind.
	LiteralStr
	LiteralFloat
)

// Literal is a leaf value in an Expression tree.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Str   string
	Float float64
}

func IntLiteral(v int64) Literal  { return Literal{Kind: LiteralInteger, Int: v} }
func IdentLiteral(s string) Literal { return Literal{Kind: LiteralIdent, Str: s} }

func (l Literal) String() string {
	switch l.Kind {
	case LiteralInteger:
		return fmt.Sprintf("%d", l.Int)
	case LiteralIdent:
		return l.Str
	case LiteralStr:
		return fmt.Sprintf("%q", l.Str)
	case LiteralFloat:
		return fmt.Sprintf("%g", l.Float)
	default:
		return "<invalid literal>"
	}
}

// BinaryKind identifies a binary operator.
type BinaryKind int

const (
	Add BinaryKind = iota
	Sub
	Mult
	Div
	Or
	And
	Equal
	// Different is the fix for the source's different() constructor, which
	// mis-tagged != as Equal. Here it gets its own tag.
	Different
	Less
	LessEqual
	Greater
	GreaterEqual
)

var binaryKindText = map[BinaryKind]string{
	Add: "+", Sub: "-", Mult: "*", Div: "/",
	Or: "or", And: "and", Equal: "==", Different: "!=",
	Less: "<", LessEqual: "<=", Greater: ">", GreaterEqual: ">=",
}

func (k BinaryKind) String() string { return binaryKindText[k] }

// UnaryKind identifies a unary operator. UnaryNot is the only one produced
// by the parser (unary + is an identity that does not wrap a node).
type UnaryKind int

const (
	UnaryNot UnaryKind = iota
)

func (k UnaryKind) String() string { return "-" }

// ExpressionKind tags which variant an Expression holds.
type ExpressionKind int

const (
	ExprLit ExpressionKind = iota
	ExprUnary
	ExprBinary
)

// Expression is an ODL expression tree node: a literal, a unary operator
// applied to one operand, or a binary operator applied to two. Every node
// carries the span of its own subtree.
type Expression struct {
	Kind ExpressionKind
	Span token.Span

	Lit Literal // set when Kind == ExprLit

	UnaryOp  UnaryKind   // set when Kind == ExprUnary
	Operand  *Expression // set when Kind == ExprUnary

	BinaryOp BinaryKind  // set when Kind == ExprBinary
	Left     *Expression // set when Kind == ExprBinary
	Right    *Expression // set when Kind == ExprBinary
}

func NewLit(lit Literal, span token.Span) *Expression {
	return &Expression{Kind: ExprLit, Span: span, Lit: lit}
}

func NewUnary(op UnaryKind, operand *Expression, span token.Span) *Expression {
	return &Expression{Kind: ExprUnary, Span: span, UnaryOp: op, Operand: operand}
}

func NewBinary(op BinaryKind, left, right *Expression, span token.Span) *Expression {
	return &Expression{Kind: ExprBinary, Span: span, BinaryOp: op, Left: left, Right: right}
}

func (e *Expression) String() string {
	switch e.Kind {
	case ExprLit:
		return e.Lit.String()
	case ExprUnary:
		return fmt.Sprintf("%s%s", e.UnaryOp, e.Operand)
	case ExprBinary:
		return fmt.Sprintf("(%s %s %s)", e.Left, e.BinaryOp, e.Right)
	default:
		return "<invalid expression>"
	}
}

// DeclarationKind tags which variant a Declaration holds.
type DeclarationKind int

const (
	DeclConst DeclarationKind = iota
	DeclOpt
	DeclAlt
	// DeclChoice is reserved: the grammar never produces it (see spec's
	// choice form), but the tag exists so Document.TypeCheck can skip it by
	// kind the way the source's type_check skips is_choise() declarations.
	DeclChoice
)

// Declaration is the tagged union over the three declaration forms the
// parser produces (const/opt/alt) plus the reserved, unparsed choice form.
type Declaration struct {
	Kind DeclarationKind

	Const *ConstantDeclaration // set when Kind == DeclConst
	Opt   *OptionDeclaration   // set when Kind == DeclOpt
	Alt   *AlternativeDeclaration // set when Kind == DeclAlt
}

// Name returns the declaration's symbol name, used as the symbol table key.
func (d Declaration) Name() string {
	switch d.Kind {
	case DeclConst:
		return d.Const.Name
	case DeclOpt:
		return d.Opt.Name
	case DeclAlt:
		return d.Alt.Name
	default:
		return ""
	}
}

// Span returns the declaration's source span.
func (d Declaration) Span() token.Span {
	switch d.Kind {
	case DeclConst:
		return d.Const.Span
	case DeclOpt:
		return d.Opt.Span
	case DeclAlt:
		return d.Alt.Span
	default:
		return token.Span{}
	}
}

// TypeCheck is a no-op hook, preserved from the source's type_check methods
// on AlternativeDeclaration and OptionDeclaration: the grammar carries
// enough static structure that nothing needs checking beyond parsing today.
func (d Declaration) TypeCheck(table *SymbolTable) error {
	return nil
}

func (d Declaration) String() string {
	switch d.Kind {
	case DeclConst:
		return d.Const.String()
	case DeclOpt:
		return d.Opt.String()
	case DeclAlt:
		return d.Alt.String()
	default:
		return "<reserved choice declaration>"
	}
}

// ConstantBodyKind tags whether a ConstantDeclaration is a direct
// initializer or a nested block of further constant declarations.
type ConstantBodyKind int

const (
	ConstantDirect ConstantBodyKind = iota
	ConstantContent
)

// ConstantDeclaration is `const name = expr` (ConstantDirect) or
// `const name` followed by an indented block of nested constants
// (ConstantContent).
type ConstantDeclaration struct {
	Name string
	Span token.Span

	BodyKind ConstantBodyKind
	Direct   *Expression            // set when BodyKind == ConstantDirect
	Content  []*ConstantDeclaration // set when BodyKind == ConstantContent
}

func (c *ConstantDeclaration) String() string {
	if c.BodyKind == ConstantDirect {
		return fmt.Sprintf("const %s = %s", c.Name, c.Direct)
	}
	return fmt.Sprintf("const %s { %d nested }", c.Name, len(c.Content))
}

// OptionDeclaration is `opt name`, optionally followed by an indented block
// of fields. The parser produces const fields and keyword-less nested option
// fields; it never produces an alt field.
type OptionDeclaration struct {
	Name   string
	Fields []Declaration
	Span   token.Span
}

func (o *OptionDeclaration) String() string {
	return fmt.Sprintf("opt %s { %d fields }", o.Name, len(o.Fields))
}

// AlternativeDeclaration is `alt name` followed by an indented block of
// anonymous option forms, one per alternative.
type AlternativeDeclaration struct {
	Name         string
	Alternatives []*OptionDeclaration
	Span         token.Span
}

func (a *AlternativeDeclaration) TypeCheck(table *SymbolTable) error {
	return nil
}

func (a *AlternativeDeclaration) String() string {
	return fmt.Sprintf("alt %s { %d alternatives }", a.Name, len(a.Alternatives))
}

// Document is the top-level parse result: an ordered list of declarations.
type Document struct {
	Entries []Declaration
}

// TypeCheck mirrors the source's Document::type_check: build a flat symbol
// table over every non-choice top-level declaration, then invoke each
// declaration's (no-op) TypeCheck against it. Returns the first error.
func (doc *Document) TypeCheck() error {
	table := NewSymbolTable(nil)
	for _, decl := range doc.Entries {
		if decl.Kind != DeclChoice {
			table.Insert(decl)
		}
	}
	for _, decl := range doc.Entries {
		if err := decl.TypeCheck(table); err != nil {
			return err
		}
	}
	return nil
}

func (doc *Document) String() string {
	s := ""
	for _, decl := range doc.Entries {
		s += decl.String() + "\n"
	}
	return s
}

// SymbolTable is a chained scope: lookups fall through to Parent when a
// name is not found locally. The grammar never actually nests scopes today
// (TypeCheck always builds one flat table), but the chain is kept because
// it is how the source models scoping and a future nested-option lookup
// would need it.
type SymbolTable struct {
	symbols map[string]Declaration
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Declaration), parent: parent}
}

func (t *SymbolTable) MakeChild() *SymbolTable {
	return NewSymbolTable(t)
}

func (t *SymbolTable) Insert(decl Declaration) {
	t.symbols[decl.Name()] = decl
}

func (t *SymbolTable) Get(name string) (Declaration, bool) {
	if decl, ok := t.symbols[name]; ok {
		return decl, true
	}
	if t.parent != nil {
		return t.parent.Get(name)
	}
	return Declaration{}, false
}
