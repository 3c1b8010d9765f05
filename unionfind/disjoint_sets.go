package unionfind

// DisjointSets is a union-find structure over the dense integer range
// [0, n). Finds use path compression; merges always keep the smaller root.
type DisjointSets struct {
	parent []int
	nSets  int
}

// New constructs a DisjointSets over [0, n), each element its own set.
func New(n int) *DisjointSets {
	d := &DisjointSets{}
	d.Reset(n)
	return d
}

// Reset restores the structure to n singleton sets, reusing the backing
// array when it is already large enough.
func (d *DisjointSets) Reset(n int) {
	if cap(d.parent) >= n {
		d.parent = d.parent[:n]
	} else {
		d.parent = make([]int, n)
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	d.nSets = n
}

// Find returns the representative root of x, compressing the path walked
// to reach it. Find is idempotent: Find(Find(x)) == Find(x).
func (d *DisjointSets) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: point every node on the walked path directly at root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Merge unions the sets containing x and y and returns the surviving root.
// The smaller of the two roots always wins; if x and y are already in the
// same set, Merge is a no-op and returns that shared root.
func (d *DisjointSets) Merge(x, y int) int {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return rx
	}
	d.nSets--
	if rx < ry {
		d.parent[ry] = rx
		return rx
	}
	d.parent[rx] = ry
	return ry
}

// NumberOfSets reports the current number of disjoint sets.
func (d *DisjointSets) NumberOfSets() int {
	return d.nSets
}

// RepresentativeLabeling fills out with, for every distinct root currently
// present, a contiguous id in [0, NumberOfSets()) assigned in ascending
// root order. out must have length >= len(d.parent); entries for elements
// that are not themselves roots are not written —
// callers look up out[d.Find(x)], not out[x], for non-root elements.
func (d *DisjointSets) RepresentativeLabeling(out []int) {
	next := 0
	for i := range d.parent {
		if d.Find(i) != i {
			continue
		}
		out[i] = next
		next++
	}
}

// Len returns the size of the underlying universe (n passed to Reset/New).
func (d *DisjointSets) Len() int {
	return len(d.parent)
}
