package table

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// Entry is one callable entry point plus the guard tokens it is compiled
// under. An Entry with an empty Name is a blank marker.
type Entry struct {
	Name   string
	Guards []string
}

// Fn builds a named entry.
func Fn(name string, guards ...string) Entry {
	return Entry{Name: name, Guards: guards}
}

// Blank builds a blank marker.
func Blank() Entry {
	return Entry{}
}

// IsBlank reports whether e is a blank marker.
func (e Entry) IsBlank() bool {
	return e.Name == ""
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	return Entry{Name: e.Name, Guards: slices.Clone(e.Guards)}
}

// Tuple returns the entry as the flat (name, guards...) tuple it is
// written as. A blank marker yields an empty tuple.
func (e Entry) Tuple() []string {
	if e.IsBlank() {
		return []string{}
	}

	return append([]string{e.Name}, e.Guards...)
}

// UnmarshalYAML decodes an entry from a sequence of strings. An empty
// name keeps its guards so Validate can reject the entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var tuple []string
	if err := node.Decode(&tuple); err != nil {
		return err
	}

	*e = Entry{}
	if len(tuple) == 0 {
		return nil
	}

	e.Name = tuple[0]
	if len(tuple) > 1 {
		e.Guards = tuple[1:]
	}

	return nil
}

// MarshalYAML encodes the entry as a flow sequence.
func (e Entry) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Tag: "!!seq"}
	for _, s := range e.Tuple() {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}

	return node, nil
}

// Table is a named, ordered list of entries.
type Table struct {
	Name    string
	Entries []Entry
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := Table{Name: t.Name, Entries: make([]Entry, len(t.Entries))}
	for i, e := range t.Entries {
		out.Entries[i] = e.Clone()
	}

	return out
}

// Names returns the entry names in table order, skipping blank markers.
func (t Table) Names() []string {
	var names []string

	for _, e := range t.Entries {
		if !e.IsBlank() {
			names = append(names, e.Name)
		}
	}

	return names
}
