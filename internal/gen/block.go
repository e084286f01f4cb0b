package gen

import (
	"iter"

	"vk-helpers-generator/internal/guard"
	"vk-helpers-generator/internal/table"
)

// Formatter renders one entry name into one output line. It knows nothing
// about guards.
type Formatter func(name string) string

// OpenLine returns the line that opens a block guarded by expr.
func OpenLine(expr guard.Expr) string {
	return "#if " + expr.String()
}

// CloseLine returns the line that closes a block guarded by expr.
func CloseLine(expr guard.Expr) string {
	return "#endif  // " + expr.String()
}

// Generate lazily yields the region lines for entries, wrapping runs of
// entries with the same compiled guard in a single #if/#endif pair.
//
// The sequence is meant to be consumed once; ranging over it again walks
// the table again from the start.
func Generate(entries []table.Entry, format Formatter) iter.Seq[string] {
	return func(yield func(string) bool) {
		current := guard.None

		for _, e := range entries {
			if e.IsBlank() {
				if !yield("") {
					return
				}

				continue
			}

			next := guard.Compile(e.Guards)

			if !current.IsNone() && next != current {
				if !yield(CloseLine(current)) || !yield("") {
					return
				}

				current = guard.None
			}

			if next != current {
				if !yield(OpenLine(next)) {
					return
				}

				current = next
			}

			if !yield(format(e.Name)) {
				return
			}
		}

		if !current.IsNone() {
			yield(CloseLine(current))
		}
	}
}

// Lines materializes Generate into a slice.
func Lines(entries []table.Entry, format Formatter) []string {
	var out []string
	for line := range Generate(entries, format) {
		out = append(out, line)
	}

	return out
}
