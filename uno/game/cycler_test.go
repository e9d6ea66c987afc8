package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.Next()

	var seats []int
	cycler.ForEach(func(seat int) {
		seats = append(seats, seat)
	})

	require.Equal(t, []int{0, 1, 2, 3}, seats)
	require.Equal(t, 1, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(3)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, -1, cycler.Direction())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
}

func TestReverseTwiceRestoresDirection(t *testing.T) {
	cycler := game.NewCycler(5)
	for flips := 1; flips <= 6; flips++ {
		cycler.Reverse()
		if flips%2 == 0 {
			require.Equal(t, 1, cycler.Direction())
		} else {
			require.Equal(t, -1, cycler.Direction())
		}
	}
}
