package formation

import "time"

const (
	LevelIntroductory string = "INTRODUCTORY"
	LevelAdvanced     string = "ADVANCED"
	LevelExpert       string = "EXPERT"

	SessionStatusScheduled string = "SCHEDULED"
	SessionStatusCancelled string = "CANCELLED"
)

type Formation struct {
	ID        string
	Title     string
	Level     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Session struct {
	ID          string
	FormationID string
	City        string
	StartDate   time.Time
	Status      string
	// Formation is nil when the referenced formation row could not be
	// resolved, callers fall back to the denormalized title on the order item.
	Formation *Formation
}
