// Package symbol interns Atom names so that two Atoms with the same name
// share an identity and can be compared by integer rather than by string.
package symbol

import "sync"

// ID identifies an interned name. The zero ID is never issued by Intern.
type ID uint32

// Table interns names to IDs and back.
type Table struct {
	mu    sync.Mutex
	ids   map[string]ID
	names []string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		ids:   make(map[string]ID),
		names: []string{""}, // index 0 unused, keeps ID zero invalid
	}
}

// Intern returns the ID for name, assigning a new one if name has not
// been seen by this Table before.
func (t *Table) Intern(name string) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := ID(len(t.names))
	t.names = append(t.names, name)
	t.ids[name] = id
	return id
}

// Name returns the interned string for id, or "" if id is unknown.
func (t *Table) Name(id ID) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// DefaultTable is the Table used by interp.Expression's Atom values.
var DefaultTable = NewTable()
