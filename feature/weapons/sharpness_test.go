package weapons

import (
	"testing"

	"hunterdb/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpnessReader(t *testing.T) {
	// Cumulative end positions; pool sizes are 50 each except white (100).
	reader := NewSharpnessReader(map[int]loader.SharpnessRecord{
		1: {ID: 1, Red: 50, Orange: 100, Yellow: 150, Green: 200, Blue: 250, White: 350, Purple: 400},
	})

	t.Run("MaxedHandicraft", func(t *testing.T) {
		s, err := reader.For(loader.WeaponRecord{KireID: 1, Handicraft: 5})
		require.NoError(t, err)

		assert.True(t, s.Maxed)
		assert.Equal(t, 50, s.Red)
		assert.Equal(t, 100, s.White)
		assert.Equal(t, 50, s.Purple)
	})

	t.Run("PartialHandicraft", func(t *testing.T) {
		// Modifier is -250+2*50 = -150, then +50 since not maxed; the bar
		// loses 100 units from the top.
		s, err := reader.For(loader.WeaponRecord{KireID: 1, Handicraft: 2})
		require.NoError(t, err)

		assert.False(t, s.Maxed)
		assert.Equal(t, 0, s.Purple)
		assert.Equal(t, 50, s.White)
		assert.Equal(t, 50, s.Blue)
		assert.Equal(t, 50, s.Red)
	})

	t.Run("ZeroHandicraft", func(t *testing.T) {
		s, err := reader.For(loader.WeaponRecord{KireID: 1, Handicraft: 0})
		require.NoError(t, err)

		// 200 units drain from the top: purple, white, and blue empty out.
		assert.Equal(t, 0, s.Purple)
		assert.Equal(t, 0, s.White)
		assert.Equal(t, 0, s.Blue)
		assert.Equal(t, 50, s.Green)
		assert.Equal(t, 50, s.Yellow)
		assert.Equal(t, 50, s.Red)
	})

	t.Run("UnknownRow", func(t *testing.T) {
		_, err := reader.For(loader.WeaponRecord{KireID: 9})
		assert.Error(t, err)
	})
}
