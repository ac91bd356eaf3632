package training

import "time"

type GetManyOccurrenceResponse []OccurrenceResponse

type OccurrenceResponse struct {
	OrderItemID    int64     `json:"order_item_id"`
	FormationTitle string    `json:"formation_title"`
	SessionCity    string    `json:"session_city"`
	SessionDate    time.Time `json:"session_date"`
	Status         string    `json:"status"`
	DaysUntil      int       `json:"days_until"`
}

func (r *OccurrenceResponse) PopulateFromEntity(occ Occurrence) {
	r.OrderItemID = occ.OrderItemID
	r.FormationTitle = occ.FormationTitle
	r.SessionCity = occ.SessionCity
	r.SessionDate = occ.SessionDate
	r.Status = string(occ.Status)
	r.DaysUntil = occ.DaysUntil
}

type GetBadgeResponse struct {
	Qualified bool `json:"qualified"`
}
