package gen

import (
	"fmt"
	"strings"
)

// UnclosedGuardError reports generated lines whose #if/#endif pairs do not
// balance. Line is the zero-based index of the offending directive.
type UnclosedGuardError struct {
	// Directive is the text of the unmatched line.
	Directive string
	Line      int
	// Stray is set when an #endif has no matching opener.
	Stray bool
}

func (e *UnclosedGuardError) Error() string {
	if e.Stray {
		return fmt.Sprintf("stray %q at line %d has no matching #if", e.Directive, e.Line)
	}

	return fmt.Sprintf("guard block %q opened at line %d is never closed", e.Directive, e.Line)
}

// CheckBalance verifies that every conditional opened in lines is closed
// again, honoring nesting. It returns *UnclosedGuardError otherwise.
func CheckBalance(lines []string) error {
	type open struct {
		text string
		line int
	}

	var stack []open

	for i, raw := range lines {
		switch directive(raw) {
		case "if", "ifdef", "ifndef":
			stack = append(stack, open{text: strings.TrimSpace(raw), line: i})
		case "endif":
			if len(stack) == 0 {
				return &UnclosedGuardError{Directive: strings.TrimSpace(raw), Line: i, Stray: true}
			}

			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &UnclosedGuardError{Directive: top.text, Line: top.line}
	}

	return nil
}

// directive returns the preprocessor keyword of line, or "".
func directive(line string) string {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return ""
	}

	s = strings.TrimSpace(s[1:])
	if end := strings.IndexAny(s, " \t("); end >= 0 {
		s = s[:end]
	}

	return s
}
