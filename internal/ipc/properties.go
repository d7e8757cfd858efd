package ipc

import (
	"iter"
	"maps"
	"slices"
)

// Properties is an ordered set of string properties. Keys iterate in the order
// they were first set; setting an existing key replaces its value in place.
// The zero value is not usable; use NewProperties or FromMap.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// FromMap builds a property set from m with keys in sorted order, since map
// iteration order carries no meaning.
func FromMap(m map[string]string) *Properties {
	p := NewProperties()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p.Set(k, m[k])
	}
	return p
}

// Set stores value under key. Last write wins.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Delete removes key if present.
func (p *Properties) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in iteration order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All yields every property in iteration order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the properties.
func (p *Properties) Map() map[string]string {
	out := make(map[string]string, p.Len())
	for k, v := range p.All() {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy that keeps the iteration order.
func (p *Properties) Clone() *Properties {
	c := NewProperties()
	for k, v := range p.All() {
		c.Set(k, v)
	}
	return c
}

// Equal reports whether p and o hold the same keys and values. Order is not
// compared.
func (p *Properties) Equal(o *Properties) bool {
	if p.Len() != o.Len() {
		return false
	}
	for k, v := range p.All() {
		if ov, ok := o.Get(k); !ok || ov != v {
			return false
		}
	}
	return true
}
