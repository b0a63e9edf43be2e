package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive size", func(t *testing.T) {
		for _, n := range []int{0, -1, -20} {
			g, err := NewGrid(n)
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.Nil(t, g)
		}
	})

	t.Run("starts fully walled", func(t *testing.T) {
		g, err := NewGrid(4)
		require.NoError(t, err)

		assert.Equal(t, 4, g.Size())
		assert.Equal(t, 2*4*5, g.WallCount())
		for y := 0; y < 4; y++ {
			for x := 0; x <= 4; x++ {
				assert.True(t, g.VerticalWall(x, y), "vertical %d,%d", x, y)
			}
		}
		for y := 0; y <= 4; y++ {
			for x := 0; x < 4; x++ {
				assert.True(t, g.HorizontalWall(x, y), "horizontal %d,%d", x, y)
			}
		}
	})
}

func TestRemoveWallBetween(t *testing.T) {
	t.Run("east neighbour clears vertical wall", func(t *testing.T) {
		g, _ := NewGrid(3)
		require.NoError(t, g.RemoveWallBetween(Cell{X: 1, Y: 2}, Cell{X: 2, Y: 2}))

		assert.False(t, g.VerticalWall(2, 2))
		assert.False(t, g.HasWall(Cell{X: 1, Y: 2}, East))
		assert.False(t, g.HasWall(Cell{X: 2, Y: 2}, West))
		assert.Equal(t, 2*3*4-1, g.WallCount())
	})

	t.Run("west neighbour clears the same wall", func(t *testing.T) {
		g, _ := NewGrid(3)
		require.NoError(t, g.RemoveWallBetween(Cell{X: 2, Y: 0}, Cell{X: 1, Y: 0}))
		assert.False(t, g.VerticalWall(2, 0))
	})

	t.Run("north neighbour clears horizontal wall", func(t *testing.T) {
		g, _ := NewGrid(3)
		require.NoError(t, g.RemoveWallBetween(Cell{X: 0, Y: 1}, Cell{X: 0, Y: 2}))

		assert.False(t, g.HorizontalWall(0, 2))
		assert.True(t, g.Passable(Cell{X: 0, Y: 2}, Cell{X: 0, Y: 1}))
	})

	t.Run("south neighbour clears horizontal wall", func(t *testing.T) {
		g, _ := NewGrid(3)
		require.NoError(t, g.RemoveWallBetween(Cell{X: 2, Y: 1}, Cell{X: 2, Y: 0}))
		assert.False(t, g.HorizontalWall(2, 1))
	})

	t.Run("non adjacent cells fail and leave grid intact", func(t *testing.T) {
		g, _ := NewGrid(3)
		for _, pair := range [][2]Cell{
			{{X: 0, Y: 0}, {X: 1, Y: 1}},
			{{X: 0, Y: 0}, {X: 2, Y: 0}},
			{{X: 1, Y: 1}, {X: 1, Y: 1}},
		} {
			err := g.RemoveWallBetween(pair[0], pair[1])
			assert.ErrorIs(t, err, ErrNotAdjacent)
		}
		assert.Equal(t, 2*3*4, g.WallCount())
	})

	t.Run("out of bounds cells fail", func(t *testing.T) {
		g, _ := NewGrid(3)
		err := g.RemoveWallBetween(Cell{X: 0, Y: 0}, Cell{X: -1, Y: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)

		err = g.RemoveWallBetween(Cell{X: 2, Y: 2}, Cell{X: 2, Y: 3})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 2*3*4, g.WallCount())
	})
}

func TestRemoveBoundaryWall(t *testing.T) {
	g, _ := NewGrid(3)

	require.NoError(t, g.RemoveBoundaryWall(Opening{Cell: Cell{X: 0, Y: 0}, Edge: South}))
	assert.False(t, g.HorizontalWall(0, 0))

	require.NoError(t, g.RemoveBoundaryWall(Opening{Cell: Cell{X: 2, Y: 2}, Edge: North}))
	assert.False(t, g.HorizontalWall(2, 3))

	require.NoError(t, g.RemoveBoundaryWall(Opening{Cell: Cell{X: 0, Y: 1}, Edge: West}))
	assert.False(t, g.VerticalWall(0, 1))

	require.NoError(t, g.RemoveBoundaryWall(Opening{Cell: Cell{X: 2, Y: 1}, Edge: East}))
	assert.False(t, g.VerticalWall(3, 1))

	err := g.RemoveBoundaryWall(Opening{Cell: Cell{X: 1, Y: 1}, Edge: North})
	assert.ErrorIs(t, err, ErrNotBoundary)

	err = g.RemoveBoundaryWall(Opening{Cell: Cell{X: 3, Y: 0}, Edge: East})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNeighbors(t *testing.T) {
	g, _ := NewGrid(3)

	assert.Equal(t, []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbors(Cell{X: 0, Y: 0}))
	assert.Equal(t, []Cell{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}}, g.Neighbors(Cell{X: 1, Y: 1}))
	assert.Len(t, g.Neighbors(Cell{X: 2, Y: 2}), 2)

	single, _ := NewGrid(1)
	assert.Empty(t, single.Neighbors(Cell{X: 0, Y: 0}))
}

func TestCloneAndEqual(t *testing.T) {
	g, _ := NewGrid(2)
	clone := g.Clone()
	assert.True(t, g.Equal(clone))

	require.NoError(t, clone.RemoveWallBetween(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}))
	assert.False(t, g.Equal(clone))
	assert.True(t, g.VerticalWall(1, 0))

	other, _ := NewGrid(3)
	assert.False(t, g.Equal(other))
	assert.False(t, g.Equal(nil))
}

func TestString(t *testing.T) {
	g, _ := NewGrid(2)
	require.NoError(t, g.RemoveWallBetween(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}))
	require.NoError(t, g.RemoveWallBetween(Cell{X: 1, Y: 0}, Cell{X: 1, Y: 1}))
	require.NoError(t, g.RemoveWallBetween(Cell{X: 1, Y: 1}, Cell{X: 0, Y: 1}))
	require.NoError(t, g.RemoveBoundaryWall(DefaultEntrance()))
	require.NoError(t, g.RemoveBoundaryWall(DefaultExit(2)))

	expected := "" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+   +---+\n"
	assert.Equal(t, expected, g.String())
}

func TestParseOpening(t *testing.T) {
	tests := []struct {
		in      string
		want    Opening
		wantErr bool
	}{
		{in: "0,0,south", want: Opening{Cell: Cell{X: 0, Y: 0}, Edge: South}},
		{in: " 10, 10, N", want: Opening{Cell: Cell{X: 10, Y: 10}, Edge: North}},
		{in: "3,0,East", want: Opening{Cell: Cell{X: 3, Y: 0}, Edge: East}},
		{in: "0,0", wantErr: true},
		{in: "a,0,west", wantErr: true},
		{in: "0,b,west", wantErr: true},
		{in: "0,0,up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOpening(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOpening)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Opening {
	t.Helper()
	o, err := ParseOpening(s)
	require.NoError(t, err)
	return o
}
