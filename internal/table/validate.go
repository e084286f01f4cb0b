package table

import (
	"fmt"
	"strings"

	"vk-helpers-generator/internal/diagnostic"
)

// Validate checks a table for authoring mistakes. Errors make the table
// unusable; warnings flag output that is legal but probably unintended.
func Validate(t Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(t.Entries) == 0 {
		res.AddWarning("empty_table", "table has no entries", t.Name, -1)
		return res
	}

	seen := map[string]int{}

	for i, e := range t.Entries {
		if e.IsBlank() {
			if len(e.Guards) > 0 {
				res.AddError("guarded_blank",
					fmt.Sprintf("blank marker carries guards %q", e.Guards), t.Name, i)
			}

			validateBlank(res, t, i)

			continue
		}

		if strings.TrimSpace(e.Name) != e.Name || strings.ContainsAny(e.Name, " \t") {
			res.AddError("invalid_name", fmt.Sprintf("entry name %q contains whitespace", e.Name), t.Name, i)
		}

		if prev, ok := seen[e.Name]; ok {
			res.AddError("duplicate_entry",
				fmt.Sprintf("duplicate entry %q (first at #%d)", e.Name, prev), t.Name, i)
		} else {
			seen[e.Name] = i
		}

		for _, g := range e.Guards {
			if strings.TrimSpace(g) == "" {
				res.AddError("empty_guard", fmt.Sprintf("entry %q has an empty guard token", e.Name), t.Name, i)
			}
		}
	}

	return res
}

func validateBlank(res *diagnostic.Diagnostics, t Table, i int) {
	switch {
	case i == 0:
		res.AddWarning("leading_blank", "table starts with a blank marker", t.Name, i)
	case i == len(t.Entries)-1:
		res.AddWarning("trailing_blank", "table ends with a blank marker", t.Name, i)
	case t.Entries[i-1].IsBlank():
		res.AddWarning("blank_run", "consecutive blank markers", t.Name, i)
	}
}
