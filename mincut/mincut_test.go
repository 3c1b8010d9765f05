package mincut

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Matches S3's 4-node configuration: optimal split {0,1}|{2,3}, cut -12.
func buildS3Objective() (*SubGraph, *SubObjective) {
	g := NewSubGraph(4)
	weights := []float64{}
	add := func(u, v int, w float64) {
		g.AddEdge(u, v)
		weights = append(weights, w)
	}
	add(0, 1, 5)
	add(2, 3, 5)
	add(0, 2, -3)
	add(1, 3, -3)
	add(0, 3, -3)
	add(1, 2, -3)
	return g, NewSubObjective(g, weights)
}

func TestBruteForceSolverFindsOptimalSplit(t *testing.T) {
	g, obj := buildS3Objective()
	factory := NewBruteForceFactory()
	solver, err := factory(g, obj)
	require.NoError(t, err)

	labels, err := solver.Optimize()
	require.NoError(t, err)
	require.InDelta(t, -12, obj.CutValue(labels), 1e-9)
	require.NotEqual(t, labels[0], labels[2], "0 and 2 must land in different parts")
	require.Equal(t, labels[0], labels[1], "0 and 1 must land in the same part")
	require.Equal(t, labels[2], labels[3], "2 and 3 must land in the same part")
}

func TestBruteForceSolverRejectsOversizedSubmodel(t *testing.T) {
	g := NewSubGraph(BruteForceNodeLimit + 1)
	obj := NewSubObjective(g, nil)
	factory := NewBruteForceFactory()

	_, err := factory(g, obj)
	require.ErrorIs(t, err, ErrSubmodelTooLarge)
}

func TestLocalSearchSolverFindsOptimalOnSmallInstance(t *testing.T) {
	g, obj := buildS3Objective()
	factory := NewLocalSearchFactory(32)
	solver, err := factory(g, obj)
	require.NoError(t, err)

	labels, err := solver.Optimize()
	require.NoError(t, err)
	require.InDelta(t, -12, obj.CutValue(labels), 1e-9)
}

func TestLocalSearchSolverSingleNodeNeverWorse(t *testing.T) {
	g := NewSubGraph(1)
	obj := NewSubObjective(g, nil)
	factory := NewLocalSearchFactory(4)
	solver, err := factory(g, obj)
	require.NoError(t, err)

	labels, err := solver.Optimize()
	require.NoError(t, err)
	require.Len(t, labels, 1)
	require.Zero(t, obj.CutValue(labels))
}
