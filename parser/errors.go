package parser

import (
	"fmt"

	"github.com/drblallo/odl/token"
)

// UnexpectedTokenError is raised when the current token is not in the
// grammar's FIRST or FOLLOW set at the point the parser consults it.
type UnexpectedTokenError struct {
	Token token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Token)
}
