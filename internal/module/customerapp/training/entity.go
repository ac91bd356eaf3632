package training

import "time"

type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Occurrence is one purchased seat in one scheduled session with its derived
// lifecycle status. It is computed fresh on every query and never persisted.
type Occurrence struct {
	OrderItemID    int64
	FormationID    string
	FormationTitle string
	SessionCity    string
	SessionDate    time.Time
	Status         Status
	DaysUntil      int
}
