// Package token defines the lexical tokens and source spans shared by the
// ODL lexer and parser.
package token

import "fmt"

// SourceLocation is a zero-based row/column position in source text. Row
// advances on '\n'; column counts code units since the last newline.
type SourceLocation struct {
	Row    int
	Column int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Row, l.Column)
}

// Less reports whether l comes strictly before other in textual order.
func (l SourceLocation) Less(other SourceLocation) bool {
	if l.Row != other.Row {
		return l.Row < other.Row
	}
	return l.Column < other.Column
}

// Span is a half-open source range: Lo is inclusive, Hi is exclusive.
type Span struct {
	Lo SourceLocation
	Hi SourceLocation
}

// Merge returns the span covering from self.Lo to other.Hi. The caller is
// responsible for passing spans in textual order.
func (s Span) Merge(other Span) Span {
	return Span{Lo: s.Lo, Hi: other.Hi}
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Lo, s.Hi)
}

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Literals
	Ident Kind = iota
	Integer

	// Keywords
	Const
	Opt
	Alt

	// Operators
	Plus
	Minus
	Star
	Slash
	Assign
	Or
	And
	Equals
	Different
	Less
	LessEqual
	Greater
	GreaterEqual
	LParen
	RParen
	Semi

	// Layout, raw lexer only: never escapes to the indent lexer's caller.
	Whitespace
	EndLine
	Comment

	// Layout, synthesized by the indent lexer.
	Indent
	Deindent

	// EOF is a named kind only: neither lexer emits it. RawLexer.Next signals
	// exhaustion with ok=false and IndentLexer.Next with
	// *EndOfTokenStreamError.
	EOF
)

var kindNames = map[Kind]string{
	Ident:        "Ident",
	Integer:      "Integer",
	Const:        "const",
	Opt:          "opt",
	Alt:          "alt",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Assign:       "=",
	Or:           "or",
	And:          "and",
	Equals:       "==",
	Different:    "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	LParen:       "(",
	RParen:       ")",
	Semi:         ";",
	Whitespace:   "Whitespace",
	EndLine:      "EndLine",
	Comment:      "Comment",
	Indent:       "Indent",
	Deindent:     "Deindent",
	EOF:          "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved identifiers to their keyword Kind.
var keywords = map[string]Kind{
	"const": Const,
	"opt":   Opt,
	"alt":   Alt,
	"or":    Or,
	"and":   And,
}

// LookupIdent returns the keyword Kind for name, or Ident if name is not a
// keyword.
func LookupIdent(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return Ident
}

// Token is a single lexical token: a Kind, its Span, and — for Ident and
// Integer — the literal text or value.
type Token struct {
	Kind   Kind
	Span   Span
	Text   string // set for Ident (and raw Whitespace width encoded elsewhere)
	IntVal int64  // set for Integer
	Width  int    // set for Whitespace: the run's width in columns
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("Ident(%q)@%s", t.Text, t.Span)
	case Integer:
		return fmt.Sprintf("Integer(%d)@%s", t.IntVal, t.Span)
	case Whitespace:
		return fmt.Sprintf("Whitespace(%d)@%s", t.Width, t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}
