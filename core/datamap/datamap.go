package datamap

import "fmt"

// Localized maps a language code to the display string for that language.
type Localized map[string]string

// Get returns the string for a language, or "" if no translation exists.
func (l Localized) Get(lang string) string {
	if l == nil {
		return ""
	}
	return l[lang]
}

// En returns the canonical English string.
func (l Localized) En() string { return l.Get("en") }

// Entry is one record in a Map: an id, its localized names, and the
// entity payload.
type Entry[T any] struct {
	ID   int
	Name Localized
	Data T
}

// Map is an insertion-ordered, id-keyed collection with a per-language
// name index. The zero value is not usable; construct with New.
type Map[T any] struct {
	order  []int
	byID   map[int]*Entry[T]
	byName map[string]map[string]int // language -> name -> id
}

// New returns an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{
		byID:   make(map[int]*Entry[T]),
		byName: make(map[string]map[string]int),
	}
}

// Insert adds an entry. It fails if the id is already present, or if any
// of the entry's names is already indexed for its language.
func (m *Map[T]) Insert(id int, name Localized, data T) (*Entry[T], error) {
	if _, ok := m.byID[id]; ok {
		return nil, fmt.Errorf("datamap: duplicate id %d", id)
	}
	for lang, value := range name {
		if value == "" {
			continue
		}
		if existing, ok := m.byName[lang][value]; ok {
			return nil, fmt.Errorf("datamap: duplicate name %q (%s) for ids %d and %d",
				value, lang, existing, id)
		}
	}

	entry := &Entry[T]{ID: id, Name: name, Data: data}
	m.byID[id] = entry
	m.order = append(m.order, id)
	for lang, value := range name {
		if value == "" {
			continue
		}
		if m.byName[lang] == nil {
			m.byName[lang] = make(map[string]int)
		}
		m.byName[lang][value] = id
	}
	return entry, nil
}

// ByID returns the entry with the given id.
func (m *Map[T]) ByID(id int) (*Entry[T], bool) {
	e, ok := m.byID[id]
	return e, ok
}

// IDOf returns the id indexed under the given language and name.
func (m *Map[T]) IDOf(lang, name string) (int, bool) {
	id, ok := m.byName[lang][name]
	return id, ok
}

// EntryOf returns the entry indexed under the given language and name.
func (m *Map[T]) EntryOf(lang, name string) (*Entry[T], bool) {
	id, ok := m.byName[lang][name]
	if !ok {
		return nil, false
	}
	return m.byID[id], true
}

// HasName reports whether a name is indexed for the given language.
func (m *Map[T]) HasName(lang, name string) bool {
	_, ok := m.byName[lang][name]
	return ok
}

// Entries returns all entries in insertion order.
func (m *Map[T]) Entries() []*Entry[T] {
	out := make([]*Entry[T], 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// Len returns the number of entries.
func (m *Map[T]) Len() int { return len(m.order) }

// MaxID returns the highest id present, or 0 for an empty map.
func (m *Map[T]) MaxID() int {
	max := 0
	for id := range m.byID {
		if id > max {
			max = id
		}
	}
	return max
}
