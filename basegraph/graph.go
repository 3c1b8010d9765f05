package basegraph

import "sort"

// AddNode appends a new live node and returns its id.
// Thread-safe: acquires a write lock.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.nodeAlive)
	g.nodeAlive = append(g.nodeAlive, true)
	g.adj = append(g.adj, nil)
	g.numNodes++
	return id
}

// AddEdge inserts an edge between u and v (which must already exist) and
// returns its id. Parallel edges and self-loops are both permitted at this
// layer — BaseGraph is a raw static substrate; contraction.Graph is the
// layer that enforces the no-parallel-edge/no-self-loop invariants as it
// contracts.
// Thread-safe: acquires a write lock.
func (g *Graph) AddEdge(u, v int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, edgeRecord{u: u, v: v, alive: true})
	g.numEdges++

	g.insertAdjacency(u, Neighbor{Node: v, Edge: id})
	if u != v {
		g.insertAdjacency(v, Neighbor{Node: u, Edge: id})
	}
	return id
}

func (g *Graph) insertAdjacency(node int, n Neighbor) {
	lst := g.adj[node]
	i := sort.Search(len(lst), func(i int) bool { return lst[i].Node >= n.Node })
	lst = append(lst, Neighbor{})
	copy(lst[i+1:], lst[i:])
	lst[i] = n
	g.adj[node] = lst
}

// RemoveNode marks id dead, along with every edge still incident to it,
// leaving a gap in the id space (NodeIDUpperBound does not shrink).
// Thread-safe: acquires a write lock.
func (g *Graph) RemoveNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodeAlive[id] {
		return
	}
	g.nodeAlive[id] = false
	g.numNodes--

	for _, n := range g.adj[id] {
		if g.edges[n.Edge].alive {
			g.edges[n.Edge].alive = false
			g.numEdges--
		}
		g.removeAdjacency(n.Node, id)
	}
	g.adj[id] = nil
}

func (g *Graph) removeAdjacency(node, otherEndpoint int) {
	lst := g.adj[node]
	out := lst[:0]
	for _, n := range lst {
		if n.Node == otherEndpoint {
			continue
		}
		out = append(out, n)
	}
	g.adj[node] = out
}

// RemoveEdge marks id dead, leaving a gap in the edge id space.
// Thread-safe: acquires a write lock.
func (g *Graph) RemoveEdge(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := &g.edges[id]
	if !e.alive {
		return
	}
	e.alive = false
	g.numEdges--
	// Drop only this edge's entries, so a parallel edge between the same
	// endpoints keeps its adjacency.
	for _, node := range [2]int{e.u, e.v} {
		lst := g.adj[node]
		out := lst[:0]
		for _, n := range lst {
			if n.Edge != id {
				out = append(out, n)
			}
		}
		g.adj[node] = out
	}
}

// NumberOfNodes reports the number of live nodes.
func (g *Graph) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.numNodes
}

// NumberOfEdges reports the number of live edges.
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.numEdges
}

// NodeIDUpperBound returns one past the largest node id ever allocated.
func (g *Graph) NodeIDUpperBound() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodeAlive)
}

// EdgeIDUpperBound returns one past the largest edge id ever allocated.
func (g *Graph) EdgeIDUpperBound() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Nodes returns the ids of every live node.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.numNodes)
	for id, alive := range g.nodeAlive {
		if alive {
			out = append(out, id)
		}
	}
	return out
}

// Edges returns the ids of every live edge.
func (g *Graph) Edges() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.numEdges)
	for id, e := range g.edges {
		if e.alive {
			out = append(out, id)
		}
	}
	return out
}

// UV returns the endpoints of edge, with the smaller id first.
func (g *Graph) UV(edge int) (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.edges[edge]
	if e.u <= e.v {
		return e.u, e.v
	}
	return e.v, e.u
}

// Adjacency returns node's neighbors, sorted by neighbor id. The returned
// slice is owned by the caller's read; it must not be mutated.
func (g *Graph) Adjacency(node int) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.adj[node]
}

// HasNode reports whether id is a currently-live node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return id >= 0 && id < len(g.nodeAlive) && g.nodeAlive[id]
}

// HasEdge reports whether id is a currently-live edge.
func (g *Graph) HasEdge(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return id >= 0 && id < len(g.edges) && g.edges[id].alive
}
