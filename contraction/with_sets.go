package contraction

// WithSets is the composite observer of spec.md §4.3: it maintains a live
// node set and a live edge set by erasing dead/deadEdge on the
// corresponding callbacks, then forwards every call unchanged to Inner
// (use NullCallback{} for Inner if no further forwarding is needed).
//
// This buys O(1) iteration of live nodes/edges (LiveNodeIDs/LiveEdgeIDs)
// at the cost of one erase per contraction — the tradeoff spec.md §4.3
// documents explicitly.
type WithSets struct {
	Inner Callback

	nodes *idSet
	edges *idSet
}

// NewWithSets constructs a WithSets seeded with every node in
// [0, nodeIDUpperBound) and every edge in [0, edgeIDUpperBound), forwarding
// to inner.
func NewWithSets(inner Callback, nodeIDUpperBound, edgeIDUpperBound int) *WithSets {
	nodeIDs := make([]int, nodeIDUpperBound)
	for i := range nodeIDs {
		nodeIDs[i] = i
	}
	edgeIDs := make([]int, edgeIDUpperBound)
	for i := range edgeIDs {
		edgeIDs[i] = i
	}
	return &WithSets{
		Inner: inner,
		nodes: newIDSet(nodeIDs),
		edges: newIDSet(edgeIDs),
	}
}

func (w *WithSets) ContractEdge(edge int) {
	w.edges.Erase(edge)
	w.Inner.ContractEdge(edge)
}

func (w *WithSets) MergeNodes(alive, dead int) {
	w.nodes.Erase(dead)
	w.Inner.MergeNodes(alive, dead)
}

func (w *WithSets) MergeEdges(aliveEdge, deadEdge int) {
	w.edges.Erase(deadEdge)
	w.Inner.MergeEdges(aliveEdge, deadEdge)
}

func (w *WithSets) ContractEdgeDone(edge int) {
	w.Inner.ContractEdgeDone(edge)
}

// LiveNodeIDs returns the currently-live node ids, in unspecified order.
func (w *WithSets) LiveNodeIDs() []int { return w.nodes.Items() }

// LiveEdgeIDs returns the currently-live edge ids, in unspecified order.
func (w *WithSets) LiveEdgeIDs() []int { return w.edges.Items() }

// NumberOfLiveNodes reports len(LiveNodeIDs()) in O(1).
func (w *WithSets) NumberOfLiveNodes() int { return w.nodes.Len() }

// NumberOfLiveEdges reports len(LiveEdgeIDs()) in O(1).
func (w *WithSets) NumberOfLiveEdges() int { return w.edges.Len() }

var _ Callback = (*WithSets)(nil)
