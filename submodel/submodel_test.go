package submodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hmaarrfk/nifty/basegraph"
	"github.com/hmaarrfk/nifty/mincut"
)

// fifoQueue is the minimal AnchorQueue a test needs; cgc.Driver's FIFO
// queue is exercised separately in the cgc package.
type fifoQueue struct{ items []int }

func (q *fifoQueue) Push(node int) { q.items = append(q.items, node) }

// buildS3Base constructs spec.md S3's 4-node weighted graph as a
// basegraph.Graph, plus a matching weights EdgeMap. Edge order mirrors
// mincut.mincut_test.go's buildS3Objective so both share expected values.
func buildS3Base() (*basegraph.Graph, *basegraph.EdgeMap[float64]) {
	g := basegraph.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	weights := basegraph.NewEdgeMap[float64](6, 0)
	add := func(u, v int, w float64) {
		e := g.AddEdge(u, v)
		weights.Set(e, w)
	}
	add(0, 1, 5)
	add(2, 3, 5)
	add(0, 2, -3)
	add(1, 3, -3)
	add(0, 3, -3)
	add(1, 2, -3)
	return g, weights
}

func TestOptimize1SplitsS3IntoTwoComponents(t *testing.T) {
	base, weights := buildS3Base()
	o := New(base, weights, mincut.NewBruteForceFactory(), NewDirtyBits(base.EdgeIDUpperBound()))

	labels := []int{0, 0, 0, 0}
	queue := &fifoQueue{}
	result, err := o.Optimize1(labels, 0, queue)
	require.NoError(t, err)
	require.True(t, result.Improvement)
	require.InDelta(t, -12, result.MinCutValue, 1e-9)

	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[2], labels[3])
	require.NotEqual(t, labels[0], labels[2])

	require.Len(t, queue.items, 2, "both fresh size-2 subcomponents should be re-queued")
}

func TestOptimize1NoImprovementOnAlreadyOptimalSplit(t *testing.T) {
	base, weights := buildS3Base()
	o := New(base, weights, mincut.NewBruteForceFactory(), NewDirtyBits(base.EdgeIDUpperBound()))

	labels := []int{10, 10, 20, 20}
	queue := &fifoQueue{}
	result, err := o.Optimize1(labels, 0, queue)
	require.NoError(t, err)
	require.False(t, result.Improvement)
	require.Empty(t, queue.items)
}

func TestOptimize2RecutsAcrossTwoComponents(t *testing.T) {
	base, weights := buildS3Base()
	o := New(base, weights, mincut.NewBruteForceFactory(), NewDirtyBits(base.EdgeIDUpperBound()))

	// Start from a suboptimal split of the S3 instance: {0,3}|{1,2}.
	// Inside-edge cut value under this labeling is (0,1)+(2,3)-(0,2)-(1,3)
	// = 5+5-3-3 = 4; the optimal split {0,1}|{2,3} cuts -12.
	labels := []int{0, 1, 1, 0}
	result, err := o.Optimize2(labels, 0, 1)
	require.NoError(t, err)
	require.True(t, result.Improvement)
	require.InDelta(t, 16, result.ImprovedBy, 1e-9) // 4 - (-12)

	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[2], labels[3])
	require.NotEqual(t, labels[0], labels[2])
}

func TestOptimize2NoImprovementWhenAlreadyOptimal(t *testing.T) {
	base, weights := buildS3Base()
	o := New(base, weights, mincut.NewBruteForceFactory(), NewDirtyBits(base.EdgeIDUpperBound()))

	labels := []int{10, 10, 20, 20}
	result, err := o.Optimize2(labels, 0, 2)
	require.NoError(t, err)
	require.False(t, result.Improvement)
	require.Zero(t, result.ImprovedBy)
}

func TestVarMappingMarksInsideEdgesCleanAndBorderEdgesUntouched(t *testing.T) {
	base, weights := buildS3Base()
	dirty := NewDirtyBits(base.EdgeIDUpperBound())
	o := New(base, weights, mincut.NewBruteForceFactory(), dirty)

	labels := []int{0, 0, 1, 1}
	maxLabel := o.varMapping(labels, 0, 0)
	require.Equal(t, 1, maxLabel)
	require.Equal(t, 2, o.nLocalNodes)
	require.Len(t, o.insideEdges, 1, "only the 0-1 edge lies fully inside the {0,1} submodel")
	require.Len(t, o.borderEdges, 4, "the four cross edges touch exactly one of 0,1")

	for _, e := range o.insideEdges {
		require.False(t, dirty[e])
	}
	for _, e := range o.borderEdges {
		require.True(t, dirty[e], "border edge %d must keep its initial dirty bit", e)
	}
}

func TestLastSplitSizesReflectsMostRecentSplit(t *testing.T) {
	base, weights := buildS3Base()
	o := New(base, weights, mincut.NewBruteForceFactory(), NewDirtyBits(base.EdgeIDUpperBound()))

	labels := []int{0, 0, 0, 0}
	_, err := o.Optimize1(labels, 0, &fifoQueue{})
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, o.LastSplitSizes())
}
