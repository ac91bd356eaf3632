package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQualifiesForBadge(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty list does not qualify", func(t *testing.T) {
		assert.False(t, QualifiesForBadge([]Occurrence{}))
		assert.False(t, QualifiesForBadge(nil))
	})

	t.Run("completed entry level formation qualifies", func(t *testing.T) {
		occurrences := []Occurrence{
			{FormationTitle: "Initiation - Niveau 1", SessionDate: date, Status: StatusCompleted},
		}
		assert.True(t, QualifiesForBadge(occurrences))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		occurrences := []Occurrence{
			{FormationTitle: "INITIATION AU DIAGNOSTIC", SessionDate: date, Status: StatusCompleted},
		}
		assert.True(t, QualifiesForBadge(occurrences))
	})

	t.Run("upcoming entry level formation does not qualify", func(t *testing.T) {
		occurrences := []Occurrence{
			{FormationTitle: "Initiation - Niveau 1", SessionDate: date, Status: StatusUpcoming},
		}
		assert.False(t, QualifiesForBadge(occurrences))
	})

	t.Run("completed advanced formation does not qualify", func(t *testing.T) {
		occurrences := []Occurrence{
			{FormationTitle: "Expertise ONM avancée", SessionDate: date, Status: StatusCompleted},
		}
		assert.False(t, QualifiesForBadge(occurrences))
	})

	t.Run("custom phrase set", func(t *testing.T) {
		occurrences := []Occurrence{
			{FormationTitle: "Découverte du métier", SessionDate: date, Status: StatusCompleted},
		}
		assert.False(t, QualifiesForBadgeWithPhrases(occurrences, FoundationalLevelPhrases))
		assert.True(t, QualifiesForBadgeWithPhrases(occurrences, []string{"découverte"}))
	})
}
