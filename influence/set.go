package influence

// defaultSetCap covers one vertex plus a typical neighborhood without growth.
const defaultSetCap = 2 * MaxStorage

// Set is a small linear-scan association list of influences for one vertex.
//
// Group cardinality per vertex is tiny (≤ MaxStorage per contributing
// vertex), so a flat slice beats a map: no hashing, no per-vertex
// allocation once the backing array has grown. The zero value is ready to use.
type Set struct {
	items []Weight
}

// NewSet returns a Set with room for a vertex and a typical neighborhood.
func NewSet() *Set {
	return &Set{items: make([]Weight, 0, defaultSetCap)}
}

// Reset empties the set, keeping its backing array.
func (s *Set) Reset() { s.items = s.items[:0] }

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.items) }

// At returns entry i.
func (s *Set) At(i int) Weight { return s.items[i] }

// Weights returns the entries as a view; valid until the next mutation.
func (s *Set) Weights() []Weight { return s.items }

// Find returns the index of the first entry for group g, or -1.
func (s *Set) Find(g int32) int {
	for i := range s.items {
		if s.items[i].Group == g {
			return i
		}
	}
	return -1
}

// Weight returns the weight of group g, or 0 when absent.
func (s *Set) Weight(g int32) float32 {
	if i := s.Find(g); i >= 0 {
		return s.items[i].Value
	}
	return 0
}

// Add accumulates w into group g, appending g when absent.
func (s *Set) Add(g int32, w float32) {
	if i := s.Find(g); i >= 0 {
		s.items[i].Value += w
		return
	}
	s.items = append(s.items, Weight{Group: g, Value: w})
}

// Put sets the weight of group g, appending g when absent.
func (s *Set) Put(g int32, w float32) {
	if i := s.Find(g); i >= 0 {
		s.items[i].Value = w
		return
	}
	s.items = append(s.items, Weight{Group: g, Value: w})
}

// Append adds w without looking for an existing entry.
func (s *Set) Append(w Weight) { s.items = append(s.items, w) }

// Remove deletes entry i, preserving the order of the rest.
func (s *Set) Remove(i int) {
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
}

// Truncate keeps the first n entries.
func (s *Set) Truncate(n int) {
	if n < len(s.items) {
		s.items = s.items[:n]
	}
}

// Sum returns the total weight of the first n entries.
func (s *Set) Sum(n int) float32 {
	if n > len(s.items) {
		n = len(s.items)
	}
	var total float32
	for i := 0; i < n; i++ {
		total += s.items[i].Value
	}
	return total
}

// Sort orders entries by descending weight. Equal weights keep their
// insertion order. Insertion sort: n is bounded by a few strides and the
// input is usually nearly sorted already.
func (s *Set) Sort() {
	items := s.items
	for i := 1; i < len(items); i++ {
		cur := items[i]
		j := i - 1
		for j >= 0 && items[j].Value < cur.Value {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = cur
	}
}

// Lowest returns the index of the smallest weight, preferring the last of
// equal weights, or -1 for an empty set.
func (s *Set) Lowest() int {
	idx := -1
	for i := range s.items {
		if idx < 0 || s.items[i].Value <= s.items[idx].Value {
			idx = i
		}
	}
	return idx
}
