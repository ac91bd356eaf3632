package training

import (
	"math"
	"net/http"
	"time"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

type StatusResult struct {
	Status    Status
	DaysUntil int
}

func truncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveStatus maps a session date to its lifecycle status relative to today.
// Both dates are truncated to their local calendar day before comparison, the
// time of day never influences the result. The cancelled status is never
// derived here, it only comes from an explicit cancellation on the order item.
func DeriveStatus(sessionDate, today time.Time) (StatusResult, error) {
	if sessionDate.IsZero() || today.IsZero() {
		return StatusResult{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "session date and reference date must both be set")
	}

	sd := truncateToMidnight(sessionDate)
	td := truncateToMidnight(today)

	// Rounding instead of ceiling keeps the count correct across DST
	// transitions, where the gap between two midnights is not exactly 24h.
	daysUntil := int(math.Round(sd.Sub(td).Hours() / 24))

	result := StatusResult{DaysUntil: daysUntil}

	switch {
	case daysUntil > 0:
		result.Status = StatusUpcoming
	case daysUntil == 0:
		result.Status = StatusInProgress
	default:
		result.Status = StatusCompleted
	}

	return result, nil
}
