package store

import "github.com/iancoleman/orderedmap"

// Records is an ordered key/value table holding one file's localization
// entries. Iteration order is insertion order; setting an existing key
// replaces its value without moving it.
type Records struct {
	entries *orderedmap.OrderedMap
}

// New returns an empty Records.
func New() *Records {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return &Records{entries: m}
}

// Set inserts or replaces the value for key.
func (r *Records) Set(key, value string) {
	r.entries.Set(key, value)
}

// Get returns the value for key and whether it is present.
func (r *Records) Get(key string) (string, bool) {
	v, ok := r.entries.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Keys returns all keys in insertion order.
func (r *Records) Keys() []string {
	return r.entries.Keys()
}

// Len returns the number of entries.
func (r *Records) Len() int {
	return len(r.entries.Keys())
}

// MarshalJSON renders the records as a JSON object preserving entry order.
func (r *Records) MarshalJSON() ([]byte, error) {
	return r.entries.MarshalJSON()
}
