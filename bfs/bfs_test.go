package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/bfs"
)

// line returns a successor function over 0..n-1 where i links to i±1.
func line(n int) func(int) []int {
	return func(i int) []int {
		var out []int
		if i > 0 {
			out = append(out, i-1)
		}
		if i < n-1 {
			out = append(out, i+1)
		}
		return out
	}
}

func TestWalk_InvalidInput(t *testing.T) {
	_, err := bfs.Walk(nil, line(3))
	assert.ErrorIs(t, err, bfs.ErrNoStart)

	_, err = bfs.Walk([]int{0}, nil)
	assert.ErrorIs(t, err, bfs.ErrNilSuccessor)

	_, err = bfs.Walk([]int{0}, line(3), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestWalk_Line(t *testing.T) {
	res, err := bfs.Walk([]int{2}, line(5))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 0, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[0])
	assert.Equal(t, 2, res.Depth[4])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, path)
}

func TestWalk_MultipleStarts(t *testing.T) {
	res, err := bfs.Walk([]int{0, 6, 0}, line(7))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
	assert.Equal(t, 3, res.Depth[3])
	assert.Equal(t, 0, res.Depth[6])
	_, hasParent := res.Parent[6]
	assert.False(t, hasParent, "start states have no parent")
}

func TestWalk_MaxDepth(t *testing.T) {
	res, err := bfs.Walk([]int{0}, line(10), bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.False(t, res.Reached(4))

	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Walk([]int{0}, line(3), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_Cycle(t *testing.T) {
	ring := func(i int) []int { return []int{(i + 1) % 4} }
	res, err := bfs.Walk([]int{0}, ring)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestWalk_OnVisit(t *testing.T) {
	var seen []int
	_, err := bfs.Walk([]int{0}, line(5), bfs.WithOnVisit(func(s any, depth int) error {
		assert.Equal(t, s.(int), depth)
		seen = append(seen, s.(int))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)

	stop := errors.New("stop")
	res, err := bfs.Walk([]int{0}, line(5), bfs.WithOnVisit(func(s any, _ int) error {
		if s.(int) == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}
