// Package dijkstra_test contains unit tests for the shortest-path search,
// covering optimality, trivial paths, unreachable targets, unknown endpoints
// and the cost options.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/dijkstra"
	"github.com/katalvlaran/wayfinder/hashmap"
)

// newDiamond builds A→B(1), B→C(2), A→C(10), A→D(1), D→C(1) plus an
// isolated node E.
func newDiamond(t testing.TB) *core.Graph[string, float64] {
	t.Helper()
	g := core.NewStringGraph[float64]()
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 10}, {"A", "D", 1}, {"D", "C", 1},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

type DijkstraSuite struct {
	suite.Suite
	g *core.Graph[string, float64]
}

func (s *DijkstraSuite) SetupTest() {
	s.g = newDiamond(s.T())
}

func (s *DijkstraSuite) TestOptimalPath() {
	require := require.New(s.T())

	res, err := dijkstra.ShortestPath(s.g, "A", "C")
	require.NoError(err)
	require.Equal([]string{"A", "D", "C"}, res.Path)
	require.Equal(2.0, res.Cost)

	path, err := dijkstra.PathData(s.g, "A", "C")
	require.NoError(err)
	require.Equal([]string{"A", "D", "C"}, path)

	cost, err := dijkstra.PathCost(s.g, "A", "C")
	require.NoError(err)
	require.Equal(2.0, cost)
}

func (s *DijkstraSuite) TestTrivialPath() {
	require := require.New(s.T())

	for _, n := range s.g.Nodes() {
		path, err := dijkstra.PathData(s.g, n, n)
		require.NoError(err)
		require.Equal([]string{n}, path)

		cost, err := dijkstra.PathCost(s.g, n, n)
		require.NoError(err)
		require.Zero(cost)
	}
}

func (s *DijkstraSuite) TestNoPath() {
	require := require.New(s.T())

	_, err := dijkstra.PathData(s.g, "A", "E")
	require.ErrorIs(err, dijkstra.ErrNoPathFound)

	// Edges are directed: C has no way back to A.
	_, err = dijkstra.PathCost(s.g, "C", "A")
	require.ErrorIs(err, dijkstra.ErrNoPathFound)
}

func (s *DijkstraSuite) TestUnknownEndpoints() {
	require := require.New(s.T())

	_, err := dijkstra.PathData(s.g, "ghost", "A")
	require.ErrorIs(err, dijkstra.ErrNodeNotFound)
	require.ErrorIs(err, core.ErrNodeNotFound)

	_, err = dijkstra.PathCost(s.g, "A", "ghost")
	require.ErrorIs(err, dijkstra.ErrNodeNotFound)

	// A missing node is reported even when start == end.
	_, err = dijkstra.PathData(s.g, "ghost", "ghost")
	require.ErrorIs(err, dijkstra.ErrNodeNotFound)
}

func (s *DijkstraSuite) TestMaxCost() {
	require := require.New(s.T())

	_, err := dijkstra.ShortestPath(s.g, "A", "C", dijkstra.WithMaxCost(1.5))
	require.ErrorIs(err, dijkstra.ErrNoPathFound)

	res, err := dijkstra.ShortestPath(s.g, "A", "C", dijkstra.WithMaxCost(2))
	require.NoError(err)
	require.Equal(2.0, res.Cost)
}

func (s *DijkstraSuite) TestInfEdgeThreshold() {
	require := require.New(s.T())

	// Closing every edge of weight ≥ 1 leaves A isolated.
	_, err := dijkstra.ShortestPath(s.g, "A", "B", dijkstra.WithInfEdgeThreshold(1))
	require.ErrorIs(err, dijkstra.ErrNoPathFound)

	// Closing only the heavy direct edge changes nothing here.
	res, err := dijkstra.ShortestPath(s.g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(err)
	require.Equal([]string{"A", "D", "C"}, res.Path)
}

func (s *DijkstraSuite) TestBadOptions() {
	require := require.New(s.T())

	for _, opt := range []dijkstra.Option{
		dijkstra.WithMaxCost(-1),
		dijkstra.WithMaxCost(math.NaN()),
		dijkstra.WithInfEdgeThreshold(0),
		dijkstra.WithInfEdgeThreshold(-3),
	} {
		_, err := dijkstra.ShortestPath(s.g, "A", "C", opt)
		require.ErrorIs(err, dijkstra.ErrBadOption)
	}
}

func (s *DijkstraSuite) TestCosts() {
	require := require.New(s.T())

	costs, err := dijkstra.Costs(s.g, "A")
	require.NoError(err)
	require.Equal(map[string]float64{"A": 0, "B": 1, "D": 1, "C": 2}, costs)

	costs, err = dijkstra.Costs(s.g, "E")
	require.NoError(err)
	require.Equal(map[string]float64{"E": 0}, costs)

	_, err = dijkstra.Costs(s.g, "ghost")
	require.ErrorIs(err, dijkstra.ErrNodeNotFound)
}

func (s *DijkstraSuite) TestGraphNotMutated() {
	require := require.New(s.T())

	before := s.g.Stats()
	_, err := dijkstra.Costs(s.g, "A")
	require.NoError(err)
	require.Equal(before, s.g.Stats())
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}

func TestShortestPath_NilGraph(t *testing.T) {
	var g *core.Graph[string, float64]
	_, err := dijkstra.ShortestPath(g, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_SelfLoopAndZeroWeights(t *testing.T) {
	g := core.NewStringGraph[int]()
	for _, n := range []string{"X", "Y", "Z"} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge("X", "X", 0))
	require.NoError(t, g.AddEdge("X", "Y", 0))
	require.NoError(t, g.AddEdge("Y", "Z", 4))

	res, err := dijkstra.ShortestPath(g, "X", "Z")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y", "Z"}, res.Path)
	require.Equal(t, 4.0, res.Cost)
}

func TestShortestPath_IntegerKeys(t *testing.T) {
	// A 0→1→…→9 chain with a shortcut 0→9 that is more expensive than the chain.
	g := core.NewGraph[int, uint8](hashmap.IntHasher[int]{})
	for i := 0; i < 10; i++ {
		require.NoError(t, g.AddNode(i))
	}
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	require.NoError(t, g.AddEdge(0, 9, 10))

	res, err := dijkstra.ShortestPath(g, 0, 9)
	require.NoError(t, err)
	require.Len(t, res.Path, 10)
	require.Equal(t, 9.0, res.Cost)
}

func TestShortestPath_PicksCheaperOfParallelRoutes(t *testing.T) {
	// Two routes S→M1→T (3+3) and S→M2→T (1+4); the second wins.
	g := core.NewStringGraph[float64]()
	for _, n := range []string{"S", "M1", "M2", "T"} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge("S", "M1", 3))
	require.NoError(t, g.AddEdge("M1", "T", 3))
	require.NoError(t, g.AddEdge("S", "M2", 1))
	require.NoError(t, g.AddEdge("M2", "T", 4))

	res, err := dijkstra.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "M2", "T"}, res.Path)
	require.Equal(t, 5.0, res.Cost)
}

// TestCosts_RepeatedRelaxation queues C three times at falling costs; each
// node must settle exactly once at its cheapest cost.
func TestCosts_RepeatedRelaxation(t *testing.T) {
	g := core.NewStringGraph[float64]()
	for _, n := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("D", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))

	costs, err := dijkstra.Costs(g, "A")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 0, "B": 1, "D": 2, "C": 3}, costs)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Path)
}
