package parser

import (
	"github.com/drblallo/odl/ast"
	"github.com/drblallo/odl/token"
)

// ParseExpression parses a full expression, starting at the lowest
// precedence level (or).
func (p *Parser) ParseExpression() (*ast.Expression, error) {
	return p.parseOr()
}

// Every precedence function below recurses into itself (not the next
// lower level) for its right operand, reproducing the source's
// Bin(kind, lhs, same_level()) composition. That makes every binary
// operator right-associative here, including + and * — "1 - 2 - 3"
// parses as "1 - (2 - 3)". This is a faithful port of that behavior, not
// an endorsement of it.

func (p *Parser) parseOr() (*ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.at(token.Or) {
		p.advance()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.Or, left, right, left.Span.Merge(right.Span)), nil
	}
	return left, nil
}

func (p *Parser) parseAnd() (*ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if p.at(token.And) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.And, left, right, left.Span.Merge(right.Span)), nil
	}
	return left, nil
}

func (p *Parser) parseEquality() (*ast.Expression, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	var kind ast.BinaryKind
	switch {
	case p.at(token.Equals):
		kind = ast.Equal
	case p.at(token.Different):
		kind = ast.Different
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(kind, left, right, left.Span.Merge(right.Span)), nil
}

func (p *Parser) parseRelational() (*ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var kind ast.BinaryKind
	switch {
	case p.at(token.Less):
		kind = ast.Less
	case p.at(token.LessEqual):
		kind = ast.LessEqual
	case p.at(token.Greater):
		kind = ast.Greater
	case p.at(token.GreaterEqual):
		kind = ast.GreaterEqual
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(kind, left, right, left.Span.Merge(right.Span)), nil
}

func (p *Parser) parseAdditive() (*ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	var kind ast.BinaryKind
	switch {
	case p.at(token.Plus):
		kind = ast.Add
	case p.at(token.Minus):
		kind = ast.Sub
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(kind, left, right, left.Span.Merge(right.Span)), nil
}

func (p *Parser) parseMultiplicative() (*ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	var kind ast.BinaryKind
	switch {
	case p.at(token.Star):
		kind = ast.Mult
	case p.at(token.Slash):
		kind = ast.Div
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(kind, left, right, left.Span.Merge(right.Span)), nil
}

// parseUnary handles unary `-` (UnaryNot) and unary `+` (identity, does
// not wrap a node).
func (p *Parser) parseUnary() (*ast.Expression, error) {
	if p.at(token.Minus) {
		lo := p.cur.Span
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.UnaryNot, operand, lo.Merge(operand.Span)), nil
	}
	if p.at(token.Plus) {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

// parsePrimary handles identifier | integer literal | ( expression ).
func (p *Parser) parsePrimary() (*ast.Expression, error) {
	if p.curErr != nil {
		return nil, p.curErr
	}

	switch p.cur.Kind {
	case token.Ident:
		tok := p.cur
		p.advance()
		return ast.NewLit(ast.IdentLiteral(tok.Text), tok.Span), nil
	case token.Integer:
		tok := p.cur
		p.advance()
		return ast.NewLit(ast.IntLiteral(tok.IntVal), tok.Span), nil
	case token.LParen:
		lo := p.cur.Span
		p.advance()
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		respanned := *inner
		respanned.Span = lo.Merge(rparen.Span)
		return &respanned, nil
	default:
		return nil, &UnexpectedTokenError{Token: p.cur}
	}
}
