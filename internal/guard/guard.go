package guard

import "strings"

// Expr is a compiled guard expression. The zero value is None.
type Expr string

// None means "no guard".
const None Expr = ""

const (
	definedMarker = "defined"
	andSeparator  = " && "
)

// IsNone reports whether the expression carries no guard.
func (e Expr) IsNone() bool {
	return e == None
}

// String returns the expression text.
func (e Expr) String() string {
	return string(e)
}

// Compile turns an ordered list of guard tokens into their logical AND.
// An empty list compiles to None.
func Compile(tokens []string) Expr {
	if len(tokens) == 0 {
		return None
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, Wrap(tok))
	}

	return Expr(strings.Join(parts, andSeparator))
}

// Wrap normalizes a single token: anything already mentioning defined is
// returned as is, a bare symbol becomes defined(symbol).
func Wrap(token string) string {
	token = strings.TrimSpace(token)
	if strings.Contains(token, definedMarker) {
		return token
	}

	return "defined(" + token + ")"
}
