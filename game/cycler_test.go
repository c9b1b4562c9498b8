package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycler(t *testing.T) {
	t.Run("starts_at_seat_zero_going_left", func(t *testing.T) {
		cycler := NewCycler(4)
		assert.Equal(t, 0, cycler.Current())
		assert.Equal(t, left, cycler.Direction())
		assert.Equal(t, 3, cycler.Peek())
		assert.Equal(t, 0, cycler.Current())
	})

	t.Run("next_wraps_around", func(t *testing.T) {
		cycler := NewCycler(3)
		var seats []int
		for i := 0; i < 4; i++ {
			seats = append(seats, cycler.Next())
		}
		assert.Equal(t, []int{2, 1, 0, 2}, seats)
	})

	t.Run("reverse_flips_direction", func(t *testing.T) {
		cycler := NewCycler(3)
		cycler.Reverse()
		assert.Equal(t, right, cycler.Direction())
		assert.Equal(t, 1, cycler.Next())
		assert.Equal(t, 2, cycler.Next())
		cycler.Reverse()
		assert.Equal(t, 1, cycler.Next())
	})
}
