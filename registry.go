package mdtex

import "maps"

// EquationRegistry numbers display-math blocks and records label anchors
// for one document render. The counter only increases, and a label keeps
// the number it was first bound to. Not safe for concurrent use: hosts
// rendering documents in parallel must give each render its own registry.
type EquationRegistry struct {
	counter int
	labels  map[string]int
}

// NewEquationRegistry returns an empty registry ready for a document render.
func NewEquationRegistry() *EquationRegistry {
	return &EquationRegistry{labels: make(map[string]int)}
}

// Next advances the counter and returns the new equation number.
func (r *EquationRegistry) Next() int {
	r.counter++
	return r.counter
}

// Count returns the number of display equations seen so far.
func (r *EquationRegistry) Count() int {
	return r.counter
}

// RecordLabel binds name to equation number n. The first binding wins;
// later bindings of the same name are ignored.
func (r *EquationRegistry) RecordLabel(name string, n int) {
	if _, ok := r.labels[name]; ok {
		return
	}
	r.labels[name] = n
}

// Lookup returns the equation number bound to name.
func (r *EquationRegistry) Lookup(name string) (int, bool) {
	n, ok := r.labels[name]
	return n, ok
}

// Labels returns a copy of the label table for cross-reference resolution.
func (r *EquationRegistry) Labels() map[string]int {
	return maps.Clone(r.labels)
}

// Reset clears the counter and all labels ahead of a new document render.
func (r *EquationRegistry) Reset() {
	r.counter = 0
	clear(r.labels)
}
