package contraction

// idSet is a small dense-id set, filled once at construction, supporting
// O(1) erase-by-swap-with-last and O(live) iteration — the data structure
// backing WithSets's live-node and live-edge tracking. It has no insert
// or membership query.
type idSet struct {
	items   []int
	indexOf map[int]int
}

func newIDSet(ids []int) *idSet {
	s := &idSet{
		items:   append([]int(nil), ids...),
		indexOf: make(map[int]int, len(ids)),
	}
	for i, id := range s.items {
		s.indexOf[id] = i
	}
	return s
}

func (s *idSet) Erase(id int) {
	i, ok := s.indexOf[id]
	if !ok {
		return
	}
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.indexOf[s.items[i]] = i
	s.items = s.items[:last]
	delete(s.indexOf, id)
}

// Items returns the live ids in unspecified order. The returned slice
// aliases internal storage and must not be mutated by the caller.
func (s *idSet) Items() []int {
	return s.items
}

func (s *idSet) Len() int {
	return len(s.items)
}
