package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldNotify(t *testing.T) {
	today := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	dayOffset := func(days int) time.Time {
		return today.AddDate(0, 0, days)
	}

	t.Run("before window", func(t *testing.T) {
		cases := []struct {
			daysUntil int
			expected  bool
		}{
			{daysUntil: 1, expected: true},
			{daysUntil: 2, expected: true},
			{daysUntil: 3, expected: true},
			{daysUntil: 0, expected: false},
			{daysUntil: 4, expected: false},
			{daysUntil: -1, expected: false},
		}

		for _, c := range cases {
			fire, err := ShouldNotify(dayOffset(c.daysUntil), today, DirectionBefore, 3)
			require.NoError(t, err)
			assert.Equalf(t, c.expected, fire, "daysUntil=%d", c.daysUntil)
		}
	})

	t.Run("after window", func(t *testing.T) {
		cases := []struct {
			daysUntil int
			expected  bool
		}{
			{daysUntil: -5, expected: true},
			{daysUntil: -6, expected: true},
			{daysUntil: -10, expected: true},
			{daysUntil: -4, expected: false},
			{daysUntil: 0, expected: false},
			{daysUntil: 1, expected: false},
		}

		for _, c := range cases {
			fire, err := ShouldNotify(dayOffset(c.daysUntil), today, DirectionAfter, 5)
			require.NoError(t, err)
			assert.Equalf(t, c.expected, fire, "daysUntil=%d", c.daysUntil)
		}
	})

	t.Run("zero session date is rejected", func(t *testing.T) {
		_, err := ShouldNotify(time.Time{}, today, DirectionBefore, 3)
		assert.Error(t, err)
	})

	t.Run("unknown direction never fires", func(t *testing.T) {
		fire, err := ShouldNotify(dayOffset(1), today, Direction("sideways"), 3)
		require.NoError(t, err)
		assert.False(t, fire)
	})
}
