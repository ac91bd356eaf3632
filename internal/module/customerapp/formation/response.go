package formation

import "time"

type SessionResponse struct {
	ID        string    `json:"id"`
	City      string    `json:"city"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
}

type GetFormationResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Level    string            `json:"level"`
	Status   string            `json:"status"`
	Sessions []SessionResponse `json:"sessions"`
}

func (r *GetFormationResponse) PopulateFromEntity(f Formation, sessions []Session) {
	r.ID = f.ID
	r.Title = f.Title
	r.Level = f.Level
	r.Status = f.Status
	r.Sessions = make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		r.Sessions = append(r.Sessions, SessionResponse{
			ID:        s.ID,
			City:      s.City,
			StartDate: s.StartDate,
			Status:    s.Status,
		})
	}
}
