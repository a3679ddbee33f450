// Package parser implements a recursive-descent parser over the ODL token
// stream: an expression parser across seven precedence levels and a
// declaration parser for the const/opt/alt forms.
package parser

import (
	"github.com/drblallo/odl/lexer"
	"github.com/drblallo/odl/token"
)

// Parser holds single-token lookahead over an IndentLexer, mirroring the
// source's Parser{lexer, next_token} shape.
type Parser struct {
	lex *lexer.IndentLexer

	cur    token.Token
	curErr error
}

// New creates a Parser over src, priming the first lookahead token.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewIndent(src)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur, p.curErr = p.lex.Next()
}

// expect consumes the current token if it has the given kind, advancing
// past it. Any outstanding lexer error (end-of-stream, indentation)
// surfaces as-is; a mismatched-but-present token surfaces as
// UnexpectedTokenError.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.curErr != nil {
		return token.Token{}, p.curErr
	}
	if p.cur.Kind != kind {
		return token.Token{}, &UnexpectedTokenError{Token: p.cur}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// at reports whether the current token (with no pending lexer error) has
// the given kind.
func (p *Parser) at(kind token.Kind) bool {
	return p.curErr == nil && p.cur.Kind == kind
}

// LastLocation returns the source location just past the last token the
// underlying lexer consumed, for projecting an end-of-stream error to a
// zero-width range at end of file.
func (p *Parser) LastLocation() token.SourceLocation {
	return p.lex.LastLocation()
}
