package ast

import (
	"encoding/json"

	"github.com/drblallo/odl/token"
)

// JSON serialization with type discriminators, one struct per tagged-union
// variant, following the shape of a discriminated sum type over
// encoding/json.

type spanJSON struct {
	Lo [2]int `json:"lo"`
	Hi [2]int `json:"hi"`
}

func toSpanJSON(s token.Span) spanJSON {
	return spanJSON{
		Lo: [2]int{s.Lo.Row, s.Lo.Column},
		Hi: [2]int{s.Hi.Row, s.Hi.Column},
	}
}

type documentJSON struct {
	Entries []json.RawMessage `json:"entries"`
}

// MarshalJSON implements json.Marshaler for Document.
func (doc *Document) MarshalJSON() ([]byte, error) {
	dj := documentJSON{Entries: make([]json.RawMessage, 0, len(doc.Entries))}
	for _, entry := range doc.Entries {
		data, err := marshalDeclaration(entry)
		if err != nil {
			return nil, err
		}
		dj.Entries = append(dj.Entries, data)
	}
	return json.Marshal(dj)
}

func marshalDeclaration(d Declaration) (json.RawMessage, error) {
	switch d.Kind {
	case DeclConst:
		return json.Marshal(d.Const)
	case DeclOpt:
		return json.Marshal(d.Opt)
	case DeclAlt:
		return json.Marshal(d.Alt)
	default:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "choice"})
	}
}

type constantDeclarationJSON struct {
	Type    string            `json:"type"`
	Span    spanJSON          `json:"span"`
	Name    string            `json:"name"`
	Direct  json.RawMessage   `json:"direct,omitempty"`
	Content []json.RawMessage `json:"content,omitempty"`
}

// MarshalJSON implements json.Marshaler for ConstantDeclaration.
func (c *ConstantDeclaration) MarshalJSON() ([]byte, error) {
	cj := constantDeclarationJSON{
		Type: "const",
		Span: toSpanJSON(c.Span),
		Name: c.Name,
	}
	switch c.BodyKind {
	case ConstantDirect:
		data, err := json.Marshal(c.Direct)
		if err != nil {
			return nil, err
		}
		cj.Direct = data
	case ConstantContent:
		cj.Content = make([]json.RawMessage, 0, len(c.Content))
		for _, nested := range c.Content {
			data, err := json.Marshal(nested)
			if err != nil {
				return nil, err
			}
			cj.Content = append(cj.Content, data)
		}
	}
	return json.Marshal(cj)
}

type optionDeclarationJSON struct {
	Type   string            `json:"type"`
	Span   spanJSON          `json:"span"`
	Name   string            `json:"name"`
	Fields []json.RawMessage `json:"fields"`
}

// MarshalJSON implements json.Marshaler for OptionDeclaration.
func (o *OptionDeclaration) MarshalJSON() ([]byte, error) {
	oj := optionDeclarationJSON{
		Type:   "opt",
		Span:   toSpanJSON(o.Span),
		Name:   o.Name,
		Fields: make([]json.RawMessage, 0, len(o.Fields)),
	}
	for _, field := range o.Fields {
		data, err := marshalDeclaration(field)
		if err != nil {
			return nil, err
		}
		oj.Fields = append(oj.Fields, data)
	}
	return json.Marshal(oj)
}

type alternativeDeclarationJSON struct {
	Type         string            `json:"type"`
	Span         spanJSON          `json:"span"`
	Name         string            `json:"name"`
	Alternatives []json.RawMessage `json:"alternatives"`
}

// MarshalJSON implements json.Marshaler for AlternativeDeclaration.
func (a *AlternativeDeclaration) MarshalJSON() ([]byte, error) {
	aj := alternativeDeclarationJSON{
		Type:         "alt",
		Span:         toSpanJSON(a.Span),
		Name:         a.Name,
		Alternatives: make([]json.RawMessage, 0, len(a.Alternatives)),
	}
	for _, alt := range a.Alternatives {
		data, err := json.Marshal(alt)
		if err != nil {
			return nil, err
		}
		aj.Alternatives = append(aj.Alternatives, data)
	}
	return json.Marshal(aj)
}

type literalJSON struct {
	Type string `json:"type"`
	Int  int64  `json:"int,omitempty"`
	Str  string `json:"str,omitempty"`
}

type unaryExpressionJSON struct {
	Type    string          `json:"type"`
	Span    spanJSON        `json:"span"`
	Op      string          `json:"op"`
	Operand json.RawMessage `json:"operand"`
}

type binaryExpressionJSON struct {
	Type  string          `json:"type"`
	Span  spanJSON        `json:"span"`
	Op    string          `json:"op"`
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

type literalExpressionJSON struct {
	Type string      `json:"type"`
	Span spanJSON    `json:"span"`
	Lit  literalJSON `json:"literal"`
}

// MarshalJSON implements json.Marshaler for Expression.
func (e *Expression) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ExprLit:
		lj := literalJSON{}
		switch e.Lit.Kind {
		case LiteralInteger:
			lj.Type, lj.Int = "integer", e.Lit.Int
		case LiteralIdent:
			lj.Type, lj.Str = "ident", e.Lit.Str
		case LiteralStr:
			lj.Type, lj.Str = "str", e.Lit.Str
		case LiteralFloat:
			lj.Type = "float"
		}
		return json.Marshal(literalExpressionJSON{Type: "literal", Span: toSpanJSON(e.Span), Lit: lj})
	case ExprUnary:
		operand, err := json.Marshal(e.Operand)
		if err != nil {
			return nil, err
		}
		return json.Marshal(unaryExpressionJSON{
			Type: "unary", Span: toSpanJSON(e.Span), Op: e.UnaryOp.String(), Operand: operand,
		})
	case ExprBinary:
		left, err := json.Marshal(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := json.Marshal(e.Right)
		if err != nil {
			return nil, err
		}
		return json.Marshal(binaryExpressionJSON{
			Type: "binary", Span: toSpanJSON(e.Span), Op: e.BinaryOp.String(), Left: left, Right: right,
		})
	default:
		return json.Marshal(struct{}{})
	}
}
