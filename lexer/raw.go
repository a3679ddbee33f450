// Package lexer implements the two-layer ODL tokenizer: a RawLexer that
// scans source bytes into primitive tokens, and an IndentLexer wrapping it
// that synthesizes the off-side-rule Indent/Deindent markers the parser
// consumes.
package lexer

import (
	"fmt"

	"github.com/drblallo/odl/token"
)

// RawLexer scans a source string into a flat stream of tokens, including
// the layout tokens (Whitespace, EndLine, Comment) the IndentLexer filters.
// It never fails recoverably: an unrecognized character is a bug in the
// lexer table, not a user error, and panics (see UnrecognizedCharacter).
type RawLexer struct {
	src []byte
	pos int
	loc token.SourceLocation
}

// NewRaw creates a RawLexer over src.
func NewRaw(src string) *RawLexer {
	return &RawLexer{src: []byte(src)}
}

// UnrecognizedCharacter is raised (via panic) when the raw lexer encounters
// a byte outside the recognized lexeme table. This is a fatal implementation
// bug class, not a reportable diagnostic — see spec §7.
type UnrecognizedCharacter struct {
	Char byte
	Loc  token.SourceLocation
}

func (e *UnrecognizedCharacter) Error() string {
	return fmt.Sprintf("unrecognized character %q at %s", e.Char, e.Loc)
}

// Next returns the next raw token, or ok=false once the source is
// exhausted. Adjacent Whitespace runs are coalesced into a single token so
// that callers (the IndentLexer) observe one Whitespace per contiguous run.
func (l *RawLexer) Next() (token.Token, bool) {
	if l.pos >= len(l.src) {
		return token.Token{}, false
	}

	ch := l.src[l.pos]

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r':
		return l.scanWhitespace(), true
	case ch == '\n':
		return l.scanEndLine(), true
	case ch == '#':
		return l.scanComment(), true
	case isIdentStart(ch):
		return l.scanIdentOrKeyword(), true
	case ch >= '0' && ch <= '9':
		return l.scanInteger(), true
	default:
		return l.scanOperator(), true
	}
}

func (l *RawLexer) lo() token.SourceLocation { return l.loc }

func (l *RawLexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.loc.Row++
		l.loc.Column = 0
	} else {
		l.loc.Column++
	}
	return ch
}

func (l *RawLexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *RawLexer) scanWhitespace() token.Token {
	lo := l.lo()
	width := 0
	for {
		ch, ok := l.peekByte()
		if !ok || !(ch == ' ' || ch == '\t' || ch == '\r') {
			break
		}
		l.advance()
		width++
	}
	return token.Token{Kind: token.Whitespace, Span: token.Span{Lo: lo, Hi: l.loc}, Width: width}
}

func (l *RawLexer) scanEndLine() token.Token {
	lo := l.lo()
	for {
		ch, ok := l.peekByte()
		if !ok || ch != '\n' {
			break
		}
		l.advance()
	}
	return token.Token{Kind: token.EndLine, Span: token.Span{Lo: lo, Hi: l.loc}}
}

func (l *RawLexer) scanComment() token.Token {
	lo := l.lo()
	l.advance() // consume '#'
	for {
		ch, ok := l.peekByte()
		if !ok || ch == '\n' {
			break
		}
		l.advance()
	}
	return token.Token{Kind: token.Comment, Span: token.Span{Lo: lo, Hi: l.loc}}
}

func (l *RawLexer) scanIdentOrKeyword() token.Token {
	lo := l.lo()
	start := l.pos
	for {
		ch, ok := l.peekByte()
		if !ok || !isIdentContinue(ch) {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	return token.Token{Kind: token.LookupIdent(text), Span: token.Span{Lo: lo, Hi: l.loc}, Text: text}
}

func (l *RawLexer) scanInteger() token.Token {
	lo := l.lo()
	start := l.pos
	for {
		ch, ok := l.peekByte()
		if !ok || ch < '0' || ch > '9' {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	var value int64
	for _, r := range text {
		value = value*10 + int64(r-'0')
	}
	return token.Token{Kind: token.Integer, Span: token.Span{Lo: lo, Hi: l.loc}, IntVal: value, Text: text}
}

func (l *RawLexer) scanOperator() token.Token {
	lo := l.lo()
	ch := l.advance()

	two := func(next byte, kind token.Kind) (token.Kind, bool) {
		if n, ok := l.peekByte(); ok && n == next {
			l.advance()
			return kind, true
		}
		return 0, false
	}

	var kind token.Kind
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ';':
		kind = token.Semi
	case '=':
		if k, ok := two('=', token.Equals); ok {
			kind = k
		} else {
			kind = token.Assign
		}
	case '!':
		if k, ok := two('=', token.Different); ok {
			kind = k
		} else {
			panic(&UnrecognizedCharacter{Char: ch, Loc: lo})
		}
	case '<':
		if k, ok := two('=', token.LessEqual); ok {
			kind = k
		} else {
			kind = token.Less
		}
	case '>':
		if k, ok := two('=', token.GreaterEqual); ok {
			kind = k
		} else {
			kind = token.Greater
		}
	default:
		panic(&UnrecognizedCharacter{Char: ch, Loc: lo})
	}

	return token.Token{Kind: kind, Span: token.Span{Lo: lo, Hi: l.loc}}
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
