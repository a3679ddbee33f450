// Package diagnostic projects a parser error onto an editor-facing
// diagnostic: a range, severity, source tag, and message. It has no
// dependency on any particular transport — internal/server converts a
// Diagnostic to glsp's protocol.Diagnostic at the LSP boundary.
package diagnostic

import (
	"fmt"

	"github.com/drblallo/odl/lexer"
	"github.com/drblallo/odl/parser"
	"github.com/drblallo/odl/token"
)

// Severity mirrors the LSP severity scale; only Error is produced today.
type Severity int

const (
	SeverityError Severity = 1
)

// Position is a zero-based line/character pair, matching LSP's coordinate
// system (which happens to already match token.SourceLocation's).
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) source range.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is the editor-facing projection of a single parser error.
type Diagnostic struct {
	Range    Range
	Severity Severity
	Source   string
	Message  string
}

const sourceTag = "odl"

func positionOf(loc token.SourceLocation) Position {
	return Position{Line: loc.Row, Character: loc.Column}
}

func rangeOf(span token.Span) Range {
	return Range{Start: positionOf(span.Lo), End: positionOf(span.Hi)}
}

// FromError projects a parser error to a Diagnostic, per the three-case
// taxonomy: UnexpectedToken ranges over the offending token, Indentation
// ranges over the offending whitespace, and EndOfTokenStream — which
// carries no span of its own — collapses to a zero-width range at
// lastKnown, the last source location the lexer reached.
func FromError(err error, lastKnown token.SourceLocation) Diagnostic {
	switch e := err.(type) {
	case *parser.UnexpectedTokenError:
		return Diagnostic{
			Range:    rangeOf(e.Token.Span),
			Severity: SeverityError,
			Source:   sourceTag,
			Message:  "unexpected token",
		}
	case *lexer.IndentationError:
		return Diagnostic{
			Range:    rangeOf(e.Span),
			Severity: SeverityError,
			Source:   sourceTag,
			Message:  fmt.Sprintf("indentation mismatch: expected %d, got %d", e.Expected, e.Actual),
		}
	case *lexer.EndOfTokenStreamError:
		p := positionOf(lastKnown)
		return Diagnostic{
			Range:    Range{Start: p, End: p},
			Severity: SeverityError,
			Source:   sourceTag,
			Message:  "unexpected end of input",
		}
	default:
		return Diagnostic{
			Severity: SeverityError,
			Source:   sourceTag,
			Message:  err.Error(),
		}
	}
}
