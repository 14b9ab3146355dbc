package attr

import (
	"sort"

	"github.com/aili-dev/vistree/pkg/hook"
)

// Value is a present-or-absent string. Absent is the zero Value.
type Value struct {
	s       string
	present bool
}

// Present reports whether the value holds a string.
func (v Value) Present() bool { return v.present }

// String returns the held string, or "" if absent.
func (v Value) String() string { return v.s }

// Of constructs a present value.
func Of(s string) Value { return Value{s: s, present: true} }

// Absent is the zero value and also available as a named constant for
// readability at call sites.
var Absent = Value{}

// Entry is one named attribute. The zero Entry is a valid, absent entry.
type Entry struct {
	value    Value
	OnChange hook.ChangeHook[Value]
}

// Value returns the current value (or absence) of the entry.
func (e *Entry) Value() Value { return e.value }

// Set writes a new value. A write equal to the current value is a no-op
// and fires no hook, including writing absence to an already-absent entry.
func (e *Entry) Set(v Value) {
	if e.value == v {
		return
	}
	old := e.value
	e.value = v
	e.OnChange.Trigger(v, old)
}

// Map is a lazily-populated name -> Entry store. The zero Map is ready to
// use.
type Map struct {
	entries map[string]*Entry
}

// Entry returns the entry for name, creating it (absent, with no
// subscribers yet) on first access. Creating an entry before a value is
// ever written lets observers register ahead of time, per the
// "observe-before-set" contract.
func (m *Map) Entry(name string) *Entry {
	if m.entries == nil {
		m.entries = make(map[string]*Entry)
	}
	e, ok := m.entries[name]
	if !ok {
		e = &Entry{}
		m.entries[name] = e
	}
	return e
}

// Get is shorthand for Entry(name).Value().
func (m *Map) Get(name string) Value {
	return m.Entry(name).Value()
}

// Set is shorthand for Entry(name).Set(v).
func (m *Map) Set(name string, v Value) {
	m.Entry(name).Set(v)
}

// Names returns the sorted list of attribute names that have ever been
// touched (read or written). Diagnostic use only; not part of the core
// invariants.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindMany subscribes each callback in subs to the named entry's
// OnChange hook and, for any entry that already holds a present value,
// immediately invokes the callback with (current, absent) before
// returning. It returns a single handle that unhooks every subscription
// it made.
func BindMany(m *Map, subs map[string]func(newV, oldV Value)) hook.Handle {
	handles := make([]hook.Handle, 0, len(subs))
	for name, cb := range subs {
		entry := m.Entry(name)
		handles = append(handles, entry.OnChange.Subscribe(cb))
		if v := entry.Value(); v.Present() {
			cb(v, Absent)
		}
	}
	return hook.Combine(handles...)
}
