package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("future session is upcoming", func(t *testing.T) {
		result, err := DeriveStatus(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), today)
		require.NoError(t, err)
		assert.Equal(t, StatusUpcoming, result.Status)
		assert.Equal(t, 3, result.DaysUntil)
	})

	t.Run("same day is in progress", func(t *testing.T) {
		result, err := DeriveStatus(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), today)
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, result.Status)
		assert.Equal(t, 0, result.DaysUntil)
	})

	t.Run("past session is completed", func(t *testing.T) {
		result, err := DeriveStatus(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), today)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.Status)
		assert.Equal(t, -7, result.DaysUntil)
	})

	t.Run("time of day is discarded on both sides", func(t *testing.T) {
		lateToday := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
		earlySession := time.Date(2025, 6, 11, 0, 15, 0, 0, time.UTC)

		result, err := DeriveStatus(earlySession, lateToday)
		require.NoError(t, err)
		assert.Equal(t, StatusUpcoming, result.Status)
		assert.Equal(t, 1, result.DaysUntil)

		sameDayEvening := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
		result, err = DeriveStatus(sameDayEvening, lateToday)
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, result.Status)
		assert.Equal(t, 0, result.DaysUntil)
	})

	t.Run("zero dates are rejected", func(t *testing.T) {
		_, err := DeriveStatus(time.Time{}, today)
		assert.Error(t, err)

		_, err = DeriveStatus(today, time.Time{})
		assert.Error(t, err)
	})
}
