package reminder

import "time"

type Direction string

const (
	DirectionBefore Direction = "before"
	DirectionAfter  Direction = "after"
)

type TemplateKind string

const (
	TemplateUpcomingReminder TemplateKind = "UPCOMING_REMINDER"
	TemplateFollowUp         TemplateKind = "FOLLOW_UP"
)

type RunRemindersEvent struct {
	TriggeredAt time.Time `json:"triggered_at"`
}

type ReminderDispatchedEvent struct {
	OrderItemID    int64        `json:"order_item_id"`
	TemplateKind   TemplateKind `json:"template_kind"`
	CustomerEmail  string       `json:"customer_email"`
	FormationTitle string       `json:"formation_title"`
	SessionCity    string       `json:"session_city"`
	SessionDate    time.Time    `json:"session_date"`
	DispatchedAt   time.Time    `json:"dispatched_at"`
}
