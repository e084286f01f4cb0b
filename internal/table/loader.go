package table

import (
	"os"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// File is the YAML form of a set of entry tables.
type File struct {
	Version string             `yaml:"version"`
	Tables  map[string][]Entry `yaml:"tables"`
}

// LoadFile loads and parses a YAML table file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table file %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "table file %s", path)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse table YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Tables == nil {
		f.Tables = map[string][]Entry{}
	}
}

// Marshal serializes tables to YAML.
func Marshal(tables ...Table) ([]byte, error) {
	f := File{Version: "1", Tables: make(map[string][]Entry, len(tables))}
	for _, t := range tables {
		f.Tables[t.Name] = t.Entries
	}

	return yaml.Marshal(&f)
}

// Table returns the named table from the file.
func (f *File) Table(name string) (Table, bool) {
	entries, ok := f.Tables[name]
	if !ok {
		return Table{}, false
	}

	return Table{Name: name, Entries: entries}.Clone(), true
}

// Names returns the table names in the file, sorted.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Tables))
	for name := range f.Tables {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Set resolves entry tables by name: YAML overrides first, then the
// compiled-in tables.
type Set struct {
	overrides *File
}

// NewSet returns a Set backed by the optional override file.
func NewSet(overrides *File) *Set {
	return &Set{overrides: overrides}
}

// Lookup returns the table with the given name.
func (s *Set) Lookup(name string) (Table, error) {
	if s != nil && s.overrides != nil {
		if t, ok := s.overrides.Table(name); ok {
			return t, nil
		}
	}

	if t, ok := Builtin(name); ok {
		return t, nil
	}

	return Table{}, errors.Newf("unknown entry table %q", name)
}

// Overridden returns the names replaced by the override file.
func (s *Set) Overridden() []string {
	if s == nil || s.overrides == nil {
		return nil
	}

	return slices.Clone(s.overrides.Names())
}
