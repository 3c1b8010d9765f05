package contraction

// Callback is the observer protocol fired by Graph.ContractEdge, per
// spec.md §4.3. The four methods always fire in this order for a single
// contraction: ContractEdge, MergeNodes, zero or more MergeEdges (in
// ascending order of the dead node's adjacency iteration), ContractEdgeDone.
type Callback interface {
	ContractEdge(edge int)
	MergeNodes(alive, dead int)
	MergeEdges(aliveEdge, deadEdge int)
	ContractEdgeDone(edge int)
}

// NullCallback is a Callback that does nothing, for callers that only need
// the contraction mechanics with no bookkeeping.
type NullCallback struct{}

func (NullCallback) ContractEdge(int)        {}
func (NullCallback) MergeNodes(int, int)     {}
func (NullCallback) MergeEdges(int, int)     {}
func (NullCallback) ContractEdgeDone(int)    {}

// FuncCallback adapts four plain functions into a Callback, for ad hoc
// listeners that don't warrant a named type. Nil fields are skipped.
type FuncCallback struct {
	OnContractEdge     func(edge int)
	OnMergeNodes       func(alive, dead int)
	OnMergeEdges       func(aliveEdge, deadEdge int)
	OnContractEdgeDone func(edge int)
}

func (f FuncCallback) ContractEdge(edge int) {
	if f.OnContractEdge != nil {
		f.OnContractEdge(edge)
	}
}

func (f FuncCallback) MergeNodes(alive, dead int) {
	if f.OnMergeNodes != nil {
		f.OnMergeNodes(alive, dead)
	}
}

func (f FuncCallback) MergeEdges(aliveEdge, deadEdge int) {
	if f.OnMergeEdges != nil {
		f.OnMergeEdges(aliveEdge, deadEdge)
	}
}

func (f FuncCallback) ContractEdgeDone(edge int) {
	if f.OnContractEdgeDone != nil {
		f.OnContractEdgeDone(edge)
	}
}

var (
	_ Callback = NullCallback{}
	_ Callback = FuncCallback{}
)
