package lexer

import (
	"fmt"

	"github.com/drblallo/odl/token"
)

// IndentationError reports that a line's leading whitespace width matches no
// level on the indent stack. Non-recoverable for the current parse, but the
// lexer has already advanced past the offending token when this is raised,
// so a caller could in principle resume (unexercised by this frontend).
type IndentationError struct {
	Span     token.Span
	Expected int64
	Actual   int64
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("indentation mismatch at %s: expected %d, got %d", e.Span, e.Expected, e.Actual)
}

// EndOfTokenStreamError reports that the indent lexer was asked for another
// token after the source (and all outstanding Deindents) was exhausted.
type EndOfTokenStreamError struct{}

func (e *EndOfTokenStreamError) Error() string {
	return "unexpected end of input"
}

// IndentLexer wraps a RawLexer and synthesizes virtual Indent/Deindent
// tokens from leading whitespace, implementing the off-side rule described
// in spec §4.2. Tokens it returns are never Whitespace, EndLine, or Comment.
//
// Like the source lexer it wraps, it keeps a current/next pair of raw
// tokens so handleIndent can recognize a blank line (whitespace immediately
// followed by EndLine or EOF) and skip indentation bookkeeping for it,
// rather than synthesizing a hollow Indent/Deindent pair around nothing.
type IndentLexer struct {
	raw *RawLexer

	cur, nxt     token.Token
	haveCur      bool
	haveNxt      bool

	pending []token.Token

	startOfLine bool
	stack       []int64 // active indentation widths, outermost first
	lastLoc     token.SourceLocation
}

// NewIndent creates an IndentLexer over src.
func NewIndent(src string) *IndentLexer {
	l := &IndentLexer{startOfLine: true}
	l.raw = NewRaw(src)
	l.advanceRaw()
	l.advanceRaw()
	return l
}

// advanceRaw shifts nxt into cur and reads a new nxt, dropping comments.
func (l *IndentLexer) advanceRaw() {
	l.cur, l.haveCur = l.nxt, l.haveNxt
	if l.haveCur {
		l.lastLoc = l.cur.Span.Hi
	}
	for {
		tok, ok := l.raw.Next()
		if !ok {
			l.nxt, l.haveNxt = token.Token{}, false
			return
		}
		if tok.Kind == token.Comment {
			continue
		}
		l.nxt, l.haveNxt = tok, true
		return
	}
}

// LastLocation returns the last source location observed, used by the
// diagnostic projector for end-of-file ranges.
func (l *IndentLexer) LastLocation() token.SourceLocation {
	return l.lastLoc
}

// Next returns the next token visible to the parser, or an error. When the
// stream (including all synthesized Deindents) is exhausted it returns
// *EndOfTokenStreamError.
func (l *IndentLexer) Next() (token.Token, error) {
	for {
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok, nil
		}

		if l.startOfLine {
			l.startOfLine = false
			if err := l.handleIndent(); err != nil {
				return token.Token{}, err
			}
			if len(l.pending) > 0 {
				continue
			}
		}

		if !l.haveCur {
			l.flushDeindentsAtEOF()
			if len(l.pending) > 0 {
				continue
			}
			return token.Token{}, &EndOfTokenStreamError{}
		}

		tok := l.cur
		switch tok.Kind {
		case token.Whitespace:
			l.advanceRaw()
			continue
		case token.EndLine:
			l.advanceRaw()
			l.startOfLine = true
			continue
		default:
			l.advanceRaw()
			return tok, nil
		}
	}
}

// isBlankLine reports whether the current line has no content before its
// terminating EndLine (or EOF): either cur is itself EndLine, or cur is
// Whitespace immediately followed by EndLine or end of stream.
func (l *IndentLexer) isBlankLine() bool {
	if !l.haveCur {
		return true
	}
	if l.cur.Kind == token.EndLine {
		return true
	}
	if l.cur.Kind == token.Whitespace {
		return !l.haveNxt || l.nxt.Kind == token.EndLine
	}
	return false
}

// handleIndent inspects the current line-leading token (if any) and updates
// the indent stack, queueing Indent/Deindent tokens into l.pending. Blank
// lines are left untouched — the indentation they carry, if any, describes
// nothing and must not perturb the stack.
func (l *IndentLexer) handleIndent() error {
	if l.isBlankLine() {
		return nil
	}

	var width int64
	var span token.Span
	if l.cur.Kind == token.Whitespace {
		width = int64(l.cur.Width)
		span = l.cur.Span
	} else {
		width = 0
		span = token.Span{Lo: l.cur.Span.Lo, Hi: l.cur.Span.Lo}
	}

	top := int64(0)
	if len(l.stack) > 0 {
		top = l.stack[len(l.stack)-1]
	}

	switch {
	case width == top:
		return nil
	case width > top:
		l.stack = append(l.stack, width)
		l.pending = append(l.pending, token.Token{Kind: token.Indent, Span: span})
		return nil
	default: // width < top
		firstPopped := top
		for len(l.stack) > 0 && l.stack[len(l.stack)-1] > width {
			l.stack = l.stack[:len(l.stack)-1]
			l.pending = append(l.pending, token.Token{Kind: token.Deindent, Span: span})
		}
		newTop := int64(0)
		if len(l.stack) > 0 {
			newTop = l.stack[len(l.stack)-1]
		}
		if newTop < width {
			l.advanceRaw() // step past the offending whitespace before reporting
			return &IndentationError{Span: span, Expected: firstPopped, Actual: width}
		}
		return nil
	}
}

// flushDeindentsAtEOF empties the indent stack into pending Deindent tokens
// once the raw stream is exhausted.
func (l *IndentLexer) flushDeindentsAtEOF() {
	for len(l.stack) > 0 {
		l.stack = l.stack[:len(l.stack)-1]
		l.pending = append(l.pending, token.Token{Kind: token.Deindent, Span: token.Span{Lo: l.lastLoc, Hi: l.lastLoc}})
	}
}
