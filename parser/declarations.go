package parser

import (
	"github.com/drblallo/odl/ast"
	"github.com/drblallo/odl/lexer"
	"github.com/drblallo/odl/token"
)

// ParseDeclaration dispatches on the current token to the matching
// declaration production, or UnexpectedTokenError if none matches.
func (p *Parser) ParseDeclaration() (ast.Declaration, error) {
	if p.curErr != nil {
		return ast.Declaration{}, p.curErr
	}
	switch p.cur.Kind {
	case token.Const:
		return p.parseConstantDeclaration()
	case token.Opt:
		return p.parseOptionDeclaration()
	case token.Alt:
		return p.parseAlternativeDeclaration()
	default:
		return ast.Declaration{}, &UnexpectedTokenError{Token: p.cur}
	}
}

// parseConstantDeclaration := `const` constant_body
func (p *Parser) parseConstantDeclaration() (ast.Declaration, error) {
	kwSpan := p.cur.Span
	p.advance() // consume const
	decl, err := p.parseConstantBody()
	if err != nil {
		return ast.Declaration{}, err
	}
	decl.Span = kwSpan.Merge(decl.Span)
	return ast.Declaration{Kind: ast.DeclConst, Const: decl}, nil
}

// parseConstantBody := identifier ( `=` expression | INDENT constant_body+ DEINDENT )
//
// Nested entries inside a Content body are themselves constant_bodys with
// no leading `const` keyword — e.g. "const asd\n rasd = 4\n\n" nests
// "rasd = 4" directly, never "const rasd = 4".
func (p *Parser) parseConstantBody() (*ast.ConstantDeclaration, error) {
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	switch {
	case p.at(token.Assign):
		p.advance()
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ConstantDeclaration{
			Name:     nameTok.Text,
			Span:     nameTok.Span.Merge(expr.Span),
			BodyKind: ast.ConstantDirect,
			Direct:   expr,
		}, nil
	case p.at(token.Indent):
		p.advance()
		var nested []*ast.ConstantDeclaration
		for !p.at(token.Deindent) {
			if p.curErr != nil {
				return nil, p.curErr
			}
			child, err := p.parseConstantBody()
			if err != nil {
				return nil, err
			}
			nested = append(nested, child)
		}
		dedentTok, err := p.expect(token.Deindent)
		if err != nil {
			return nil, err
		}
		return &ast.ConstantDeclaration{
			Name:     nameTok.Text,
			Span:     nameTok.Span.Merge(dedentTok.Span),
			BodyKind: ast.ConstantContent,
			Content:  nested,
		}, nil
	default:
		if p.curErr != nil {
			return nil, p.curErr
		}
		return nil, &UnexpectedTokenError{Token: p.cur}
	}
}

// parseOptionDeclaration := `opt` option_body
func (p *Parser) parseOptionDeclaration() (ast.Declaration, error) {
	kwSpan := p.cur.Span
	p.advance() // consume opt
	decl, err := p.parseOptionBody()
	if err != nil {
		return ast.Declaration{}, err
	}
	decl.Span = kwSpan.Merge(decl.Span)
	return ast.Declaration{Kind: ast.DeclOpt, Opt: decl}, nil
}

// parseOptionBody := identifier [ INDENT option_field+ DEINDENT ]
func (p *Parser) parseOptionBody() (*ast.OptionDeclaration, error) {
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	decl := &ast.OptionDeclaration{Name: nameTok.Text, Span: nameTok.Span}
	if !p.at(token.Indent) {
		return decl, nil
	}
	p.advance()
	for !p.at(token.Deindent) {
		if p.curErr != nil {
			return nil, p.curErr
		}
		field, err := p.parseOptionField()
		if err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, field)
	}
	dedentTok, err := p.expect(token.Deindent)
	if err != nil {
		return nil, err
	}
	decl.Span = nameTok.Span.Merge(dedentTok.Span)
	return decl, nil
}

// parseOptionField := constant_declaration | option_body
//
// A nested option field is identified positionally, not by keyword: if
// the current token isn't `const`, it must be the start of a bare
// (keyword-less) option_body.
func (p *Parser) parseOptionField() (ast.Declaration, error) {
	if p.curErr != nil {
		return ast.Declaration{}, p.curErr
	}
	if p.at(token.Const) {
		return p.parseConstantDeclaration()
	}
	nested, err := p.parseOptionBody()
	if err != nil {
		return ast.Declaration{}, err
	}
	return ast.Declaration{Kind: ast.DeclOpt, Opt: nested}, nil
}

// parseAlternativeDeclaration := `alt` alt_body
func (p *Parser) parseAlternativeDeclaration() (ast.Declaration, error) {
	kwSpan := p.cur.Span
	p.advance() // consume alt
	decl, err := p.parseAltBody()
	if err != nil {
		return ast.Declaration{}, err
	}
	decl.Span = kwSpan.Merge(decl.Span)
	return ast.Declaration{Kind: ast.DeclAlt, Alt: decl}, nil
}

// parseAltBody := identifier [ INDENT option_body+ DEINDENT ]
//
// Each alternative is an anonymous option form: no `opt` keyword, just
// option_body directly.
func (p *Parser) parseAltBody() (*ast.AlternativeDeclaration, error) {
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	decl := &ast.AlternativeDeclaration{Name: nameTok.Text, Span: nameTok.Span}
	if !p.at(token.Indent) {
		return decl, nil
	}
	p.advance()
	for !p.at(token.Deindent) {
		if p.curErr != nil {
			return nil, p.curErr
		}
		alt, err := p.parseOptionBody()
		if err != nil {
			return nil, err
		}
		decl.Alternatives = append(decl.Alternatives, alt)
	}
	dedentTok, err := p.expect(token.Deindent)
	if err != nil {
		return nil, err
	}
	decl.Span = nameTok.Span.Merge(dedentTok.Span)
	return decl, nil
}

// ParseDocument applies ParseDeclaration repeatedly until the indent
// lexer reports end-of-stream. A trivial wrapper, per design: the
// single-declaration entry point is the primary grammar surface.
func ParseDocument(src string) (*ast.Document, error) {
	doc, _, err := parseDocument(src)
	return doc, err
}

// ParseDocumentWithLocation is ParseDocument plus the last source
// location the lexer reached, for callers (internal/server's
// diagnostic projection) that need to anchor an EndOfTokenStream error
// to a concrete position.
func ParseDocumentWithLocation(src string) (*ast.Document, token.SourceLocation, error) {
	return parseDocument(src)
}

func parseDocument(src string) (*ast.Document, token.SourceLocation, error) {
	p := New(src)
	doc := &ast.Document{}
	for {
		if _, ok := p.curErr.(*lexer.EndOfTokenStreamError); ok {
			return doc, p.LastLocation(), nil
		}
		if p.curErr != nil {
			return doc, p.LastLocation(), p.curErr
		}
		decl, err := p.ParseDeclaration()
		if err != nil {
			return doc, p.LastLocation(), err
		}
		doc.Entries = append(doc.Entries, decl)
	}
}
