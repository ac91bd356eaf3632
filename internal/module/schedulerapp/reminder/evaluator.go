package reminder

import (
	"time"

	"github.com/pixfil/onm-formation/internal/module/customerapp/training"
)

// ShouldNotify reports whether a time-window reminder applies today for the
// given session date. It is a stateless predicate: it fires on every day
// inside the window, deduplication belongs to the caller.
//
// DirectionBefore fires while 0 < daysUntil <= thresholdDays. DirectionAfter
// fires once the session is thresholdDays or more in the past.
func ShouldNotify(sessionDate, today time.Time, direction Direction, thresholdDays int) (bool, error) {
	derived, err := training.DeriveStatus(sessionDate, today)
	if err != nil {
		return false, err
	}

	switch direction {
	case DirectionBefore:
		return derived.DaysUntil > 0 && derived.DaysUntil <= thresholdDays, nil
	case DirectionAfter:
		return derived.DaysUntil < 0 && -derived.DaysUntil >= thresholdDays, nil
	}

	return false, nil
}
