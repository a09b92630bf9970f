// Package dijkstra_test contains unit tests for the constrained-run search.
// They cover validation, the small hand-checked scenarios, the two reference
// puzzle boards, path reconstruction and monotonicity in the run bounds.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/dijkstra"
	"github.com/katalvlaran/aoc/grid"
)

const heatLoss = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustGrid(t testing.TB, rows [][]uint64) *grid.Grid[uint64] {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func mustParse(t testing.TB, text string) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.Parse(text, grid.Digit[uint8])
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestCrucible_NilGrid(t *testing.T) {
	_, err := dijkstra.Crucible[uint8](nil, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestCrucible_BadRunLength(t *testing.T) {
	g := mustGrid(t, [][]uint64{{1, 1}, {1, 1}})
	for _, b := range [][2]int{{0, 3}, {-1, 1}, {3, 2}} {
		_, err := dijkstra.Crucible(g, b[0], b[1])
		assert.ErrorIs(t, err, dijkstra.ErrBadRunLength, "min=%d max=%d", b[0], b[1])
	}
}

func TestCrucible_NegativeWeight(t *testing.T) {
	g, err := grid.New([][]int{{0, 1}, {-2, 1}})
	require.NoError(t, err)
	_, err = dijkstra.Crucible(g, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestCrucible_PointOutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]uint64{{1, 1}, {1, 1}})
	_, err := dijkstra.Crucible(g, 1, 3, dijkstra.WithSource(grid.Point{Row: -1}))
	assert.ErrorIs(t, err, dijkstra.ErrPointOutOfBounds)
	_, err = dijkstra.Crucible(g, 1, 3, dijkstra.WithTarget(grid.Point{Row: 2, Col: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrPointOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Small scenarios
// ------------------------------------------------------------------------

func TestCrucible_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]uint64{{7}})
	res, err := dijkstra.Crucible(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Cost)
}

func TestCrucible_TwoByTwoPicksCheaperSide(t *testing.T) {
	// (0,1)->(1,1) costs 2+4=6, (1,0)->(1,1) costs 3+4=7.
	g := mustGrid(t, [][]uint64{{1, 2}, {3, 4}})
	res, err := dijkstra.Crucible(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), res.Cost)
}

func TestCrucible_TurnOnly(t *testing.T) {
	g := mustGrid(t, [][]uint64{{1, 1}, {1, 1}})
	res, err := dijkstra.Crucible(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Cost)
}

func TestCrucible_SingleRow(t *testing.T) {
	g := mustGrid(t, [][]uint64{{1, 2, 3}})

	res, err := dijkstra.Crucible(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Cost)

	// One cell at a time would need a second eastward run, which is forbidden.
	_, err = dijkstra.Crucible(g, 1, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestCrucible_MinStepTooLong(t *testing.T) {
	g := mustGrid(t, [][]uint64{{1, 1, 1}, {1, 1, 1}})
	_, err := dijkstra.Crucible(g, 4, 10)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestCrucible_CustomEndpoints(t *testing.T) {
	g := mustGrid(t, [][]uint64{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	res, err := dijkstra.Crucible(g, 1, 3,
		dijkstra.WithSource(grid.Point{Row: 0, Col: 2}),
		dijkstra.WithTarget(grid.Point{Row: 0, Col: 0}),
	)
	require.NoError(t, err)
	// down 2 (1+1), west 2 (1+1), north 2 (1+1)
	assert.Equal(t, uint64(6), res.Cost)
}

// ------------------------------------------------------------------------
// 3. Reference boards
// ------------------------------------------------------------------------

func TestCrucible_ReferenceBoards(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		min, max int
		want     uint64
	}{
		{"crucible", heatLoss, 1, 3, 102},
		{"ultra crucible", heatLoss, 4, 10, 94},
		{"ultra crucible long straight", unfortunate, 4, 10, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dijkstra.Crucible(mustParse(t, tt.board), tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Cost)
			assert.Nil(t, res.Moves)
		})
	}
}

// ------------------------------------------------------------------------
// 4. Path reconstruction
// ------------------------------------------------------------------------

func TestCrucible_PathObeysRunRules(t *testing.T) {
	for _, b := range [][2]int{{1, 3}, {4, 10}, {2, 5}} {
		g := mustParse(t, heatLoss)
		res, err := dijkstra.Crucible(g, b[0], b[1], dijkstra.WithReturnPath())
		require.NoError(t, err)
		checkPath(t, g, res, b[0], b[1], grid.Point{}, g.BottomRight())
	}
}

func TestCrucible_PathEmptyForSingleCell(t *testing.T) {
	g := mustGrid(t, [][]uint64{{3}})
	res, err := dijkstra.Crucible(g, 1, 3, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Empty(t, res.Moves)
}

func checkPath[T uint8 | uint64](t *testing.T, g *grid.Grid[T], res *dijkstra.Result, minStep, maxStep int, from, to grid.Point) {
	t.Helper()
	require.NotEmpty(t, res.Moves)
	assert.Equal(t, from, res.Moves[0].From)
	assert.Equal(t, to, res.Moves[len(res.Moves)-1].To)

	var total uint64
	for i, m := range res.Moves {
		assert.GreaterOrEqual(t, m.Run, minStep, "move %d", i)
		assert.LessOrEqual(t, m.Run, maxStep, "move %d", i)
		if i > 0 {
			prev := res.Moves[i-1]
			assert.Equal(t, prev.To, m.From, "moves must chain")
			assert.NotEqual(t, prev.Dir, m.Dir, "move %d continues straight", i)
			assert.NotEqual(t, prev.Dir.Reverse(), m.Dir, "move %d reverses", i)
		}
		var paid uint64
		for k := 1; k <= m.Run; k++ {
			v, ok := g.AtStep(m.From, k, m.Dir)
			require.True(t, ok)
			paid += uint64(v)
		}
		assert.Equal(t, paid, m.Cost, "move %d cost", i)
		total += m.Cost
	}
	assert.Equal(t, res.Cost, total)
}

// ------------------------------------------------------------------------
// 5. Monotonicity in run bounds
// ------------------------------------------------------------------------

// costOrInf maps ErrNoPath to +∞ so unreachable targets still compare.
func costOrInf(t *testing.T, g *grid.Grid[uint64], minStep, maxStep int) uint64 {
	t.Helper()
	res, err := dijkstra.Crucible(g, minStep, maxStep)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return math.MaxUint64
	}
	require.NoError(t, err)
	return res.Cost
}

func randomGrid(rng *rand.Rand, h, w int) [][]uint64 {
	rows := make([][]uint64, h)
	for r := range rows {
		rows[r] = make([]uint64, w)
		for c := range rows[r] {
			rows[r][c] = uint64(rng.Intn(9) + 1)
		}
	}
	return rows
}

func TestCrucible_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 20; trial++ {
		g := mustGrid(t, randomGrid(rng, 3+rng.Intn(5), 3+rng.Intn(5)))

		for minStep := 1; minStep <= 3; minStep++ {
			last := uint64(math.MaxUint64)
			for maxStep := minStep; maxStep <= 6; maxStep++ {
				c := costOrInf(t, g, minStep, maxStep)
				assert.LessOrEqual(t, c, last, "max_step %d→%d raised cost", maxStep-1, maxStep)
				last = c
			}
		}

		for maxStep := 3; maxStep <= 6; maxStep++ {
			last := uint64(0)
			for minStep := 1; minStep <= maxStep; minStep++ {
				c := costOrInf(t, g, minStep, maxStep)
				assert.GreaterOrEqual(t, c, last, "min_step %d→%d lowered cost", minStep-1, minStep)
				last = c
			}
		}
	}
}
