package traceschema

import (
	"sort"
	"sync"
)

// SchemaName is an interned schema identifier.
// Names obtained from the same NameRegistry with equal text are identical,
// so they can be compared with == and used as map keys.
// The zero value is not a valid name.
type SchemaName struct {
	text *string
}

// String returns the name's text.
func (n SchemaName) String() string {
	if n.text == nil {
		return ""
	}
	return *n.text
}

// IsValid reports whether the name was obtained from a registry.
func (n SchemaName) IsValid() bool {
	return n.text != nil
}

// NameRegistry interns schema names.
// Safe for concurrent use by multiple goroutines. A name, once created, is
// never replaced.
type NameRegistry struct {
	mu    sync.RWMutex
	names map[string]SchemaName
}

// NewNameRegistry creates an empty registry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{
		names: make(map[string]SchemaName),
	}
}

// Intern returns the canonical name for text, creating it on first request.
func (r *NameRegistry) Intern(text string) SchemaName {
	r.mu.RLock()
	name, ok := r.names[text]
	r.mu.RUnlock()
	if ok {
		return name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if name, ok := r.names[text]; ok {
		return name
	}
	s := text
	name = SchemaName{text: &s}
	r.names[text] = name
	return name
}

// Get returns the name for text if it has already been interned.
func (r *NameRegistry) Get(text string) (SchemaName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[text]
	return name, ok
}

// Len returns the number of interned names.
func (r *NameRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Names returns a snapshot of all interned names sorted by text.
func (r *NameRegistry) Names() []SchemaName {
	r.mu.RLock()
	result := make([]SchemaName, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, name)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}
