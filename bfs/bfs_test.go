package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/bfs"
	"github.com/katalvlaran/wayfinder/core"
)

// chain builds n0→n1→…→n(k) with unit weights.
func chain(t testing.TB, k int) *core.Graph[string, int] {
	t.Helper()
	g := core.NewStringGraph[int]()
	for i := 0; i <= k; i++ {
		require.NoError(t, g.AddNode("n"+strconv.Itoa(i)))
	}
	for i := 0; i < k; i++ {
		require.NoError(t, g.AddEdge("n"+strconv.Itoa(i), "n"+strconv.Itoa(i+1), 1))
	}

	return g
}

// build creates a string graph from edge triples, adding nodes on first sight.
func build(t testing.TB, edges ...[3]string) *core.Graph[string, int] {
	t.Helper()
	g := core.NewStringGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddNode(e[0]))
		require.NoError(t, g.AddNode(e[1]))
		w, err := strconv.Atoi(e[2])
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e[0], e[1], w))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	ctx := context.Background()

	var nilGraph *core.Graph[string, int]
	_, err := bfs.BFS(ctx, nilGraph, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewStringGraph[int]()
	_, err = bfs.BFS(ctx, g, "missing")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	require.NoError(t, g.AddNode("A"))
	_, err = bfs.BFS(ctx, g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewStringGraph[int]()
	require.NoError(t, g.AddNode("A"))

	res, err := bfs.BFS(context.Background(), g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
	require.Equal(t, 0, res.Depth["A"])
	require.Empty(t, res.Parent)
}

// TestBFS_LayersAndDirection checks depths and that edges are never walked backwards.
func TestBFS_LayersAndDirection(t *testing.T) {
	g := build(t,
		[3]string{"A", "B", "1"},
		[3]string{"A", "D", "1"},
		[3]string{"B", "C", "1"},
		[3]string{"D", "C", "1"},
		[3]string{"E", "A", "1"},
	)

	res, err := bfs.BFS(context.Background(), g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, "B", res.Parent["C"], "first discoverer wins")
	require.False(t, res.Reached("E"))
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 2)
	ctx := context.Background()

	res, err := bfs.BFS(ctx, g, "n0", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"n0", "n1"}, res.Order)

	res, err = bfs.BFS(ctx, g, "n0", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []string{"n0", "n1", "n2"}, res.Order)

	res, err = bfs.BFS(ctx, g, "n0", bfs.WithMaxDepth(10))
	require.NoError(t, err)
	require.Equal(t, []string{"n0", "n1", "n2"}, res.Order)
}

// TestBFS_SkipZeroWeight prunes closed edges.
func TestBFS_SkipZeroWeight(t *testing.T) {
	g := build(t,
		[3]string{"A", "B", "0"},
		[3]string{"A", "C", "2"},
	)

	res, err := bfs.BFS(context.Background(), g, "A", bfs.WithSkipZeroWeight())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, res.Order)
}

// TestBFS_SelfLoop ensures a self-loop does not enqueue the start twice.
func TestBFS_SelfLoop(t *testing.T) {
	g := build(t,
		[3]string{"A", "A", "1"},
		[3]string{"A", "B", "1"},
	)

	res, err := bfs.BFS(context.Background(), g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

// TestWalk_VisitorAbort asserts that the visitor sees depths in order and can stop the walk.
func TestWalk_VisitorAbort(t *testing.T) {
	g := chain(t, 5)
	stop := errors.New("enough")

	var seen []string
	res, err := bfs.Walk(context.Background(), g, "n0", func(n string, d int) error {
		seen = append(seen, n+"@"+strconv.Itoa(d))
		if d == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"n0@0", "n1@1", "n2@2"}, seen)
	require.Equal(t, []string{"n0", "n1", "n2"}, res.Order)
}

// TestResult_PathTo covers the trivial path, a multi-hop path, and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	g := chain(t, 3)
	require.NoError(t, g.AddNode("island"))

	res, err := bfs.BFS(context.Background(), g, "n0")
	require.NoError(t, err)

	path, err := res.PathTo("n0")
	require.NoError(t, err)
	require.Equal(t, []string{"n0"}, path)

	path, err = res.PathTo("n3")
	require.NoError(t, err)
	require.Equal(t, []string{"n0", "n1", "n2", "n3"}, path)

	_, err = res.PathTo("island")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(ctx, g, "n0")
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentReaders ensures concurrent runs on the same graph do not interfere.
func TestBFS_ConcurrentReaders(t *testing.T) {
	g := chain(t, 50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.BFS(context.Background(), g, "n0")
			if err == nil && len(res.Order) != 51 {
				err = errors.New("short walk")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
}
