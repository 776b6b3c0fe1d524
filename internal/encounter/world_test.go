package encounter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldStartsAtOppositeCorners(t *testing.T) {
	w := New(12, 12)
	assert.Equal(t, PlayerVsRandom, w.Mode())
	assert.Equal(t, NewAgent(Vec{0, 0}), w.Blue())
	assert.Equal(t, NewAgent(Vec{11, 11}), w.Red())
	assert.Equal(t, 0, w.Turns())
	assert.False(t, w.Encountered())
	assert.Equal(t, CellBlue, w.Cells()[0])
	assert.Equal(t, CellRed, w.Cells()[len(w.Cells())-1])
}

func TestStepPlayerBlockedMoveStays(t *testing.T) {
	w := New(6, 6)
	require.True(t, w.StepPlayer(Up))
	assert.Equal(t, Vec{0, 0}, w.Blue().Pos)
	assert.Equal(t, Vec{0, 0}, w.Blue().Prev)
	assert.Equal(t, 1, w.Turns())

	w.Board().AddWall(Vec{1, 0})
	require.True(t, w.StepPlayer(Right))
	assert.Equal(t, Vec{0, 0}, w.Blue().Pos, "walls block the player")
	assert.Equal(t, 2, w.Turns())

	require.True(t, w.StepPlayer(Down))
	assert.Equal(t, Vec{0, 1}, w.Blue().Pos)
	assert.Equal(t, Vec{0, 0}, w.Blue().Prev)
}

func TestCrossingEndsRound(t *testing.T) {
	w := New(2, 1)
	w.SetMode(RandomVsRandom)
	require.True(t, w.StepRandomVsRandom())

	assert.True(t, w.Encountered())
	assert.True(t, Crossed(w.Blue(), w.Red()))
	assert.Equal(t, []uint8{CellEncounter, CellEncounter}, w.Cells())

	assert.False(t, w.StepRandomVsRandom(), "no turns after an encounter")
	assert.Equal(t, 1, w.Turns())
}

func TestMeetingEndsRound(t *testing.T) {
	w := New(3, 1)
	require.True(t, w.StepPlayer(Right))

	assert.True(t, w.Encountered())
	assert.True(t, Met(w.Blue(), w.Red()))
	assert.False(t, w.StepPlayer(Left))
	assert.Equal(t, Vec{1, 0}, w.Blue().Pos)
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	w := NewWithConfig(cfg)
	w.SetObstacles(true)
	w.SetMode(RandomVsRandom)

	play := func() ([]uint8, []Vec) {
		w.Reset(0)
		cells := slices.Clone(w.Cells())
		var path []Vec
		for i := 0; i < 50 && !w.Encountered(); i++ {
			w.Step()
			path = append(path, w.Red().Pos)
		}
		return cells, path
	}

	cells1, path1 := play()
	cells2, path2 := play()
	assert.Equal(t, cells1, cells2)
	assert.Equal(t, path1, path2)

	w.Reset(1234)
	assert.Equal(t, int64(1234), w.Seed())
}

func TestObstaclesKeepStartsClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ObstacleDensity = 1
	w := NewWithConfig(cfg)
	w.SetObstacles(true)

	assert.Equal(t, 12*12-2, w.Board().WallCount())
	assert.False(t, w.Board().IsWall(w.Blue().Pos))
	assert.False(t, w.Board().IsWall(w.Red().Pos))

	w.SetObstacles(false)
	assert.Equal(t, 0, w.Board().WallCount())
}

func TestResetRoundRegeneratesWalls(t *testing.T) {
	w := New(12, 12)
	w.SetObstacles(true)
	first := slices.Clone(w.Cells())
	w.ResetRound()
	assert.NotEqual(t, first, w.Cells(), "consecutive rounds draw fresh obstacles")
}

func TestStepOnlyActsInRandomMode(t *testing.T) {
	w := New(12, 12)
	w.Step()
	assert.Equal(t, 0, w.Turns())

	w.SetMode(RandomVsRandom)
	w.Step()
	assert.Equal(t, 1, w.Turns())
}

func TestVisitMaskNormalised(t *testing.T) {
	w := New(4, 4)
	mask := w.VisitMask()
	assert.Equal(t, float32(1), mask[0])
	assert.Equal(t, float32(1), mask[15])
	assert.Equal(t, float32(0), mask[5])

	w.StepPlayer(Up)
	mask = w.VisitMask()
	assert.Equal(t, float32(1), mask[0], "blue stayed and is the most visited")
}
