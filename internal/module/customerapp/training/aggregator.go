package training

import (
	"sort"
	"time"

	"github.com/pixfil/onm-formation/internal/module/customerapp/order"
)

func isActive(o order.Order) bool {
	if o.PaymentStatus != order.PaymentStatusPaid {
		return false
	}

	return o.Status == order.StatusConfirmed || o.Status == order.StatusCompleted
}

// ListOccurrences projects paid orders into the customer's formation
// occurrences, sorted chronologically. Items without a resolved session are
// skipped, a missing formation title falls back to the denormalized title on
// the item.
func ListOccurrences(orders []order.Order, today time.Time) ([]Occurrence, error) {
	occurrences := make([]Occurrence, 0)

	for _, o := range orders {
		if !isActive(o) {
			continue
		}

		for _, item := range o.Items {
			if item.Session == nil {
				continue
			}

			derived, err := DeriveStatus(item.Session.StartDate, today)
			if err != nil {
				return nil, err
			}

			title := item.FormationTitle
			if item.Session.Formation != nil && item.Session.Formation.Title != "" {
				title = item.Session.Formation.Title
			}

			occ := Occurrence{
				OrderItemID:    item.ID,
				FormationID:    item.Session.FormationID,
				FormationTitle: title,
				SessionCity:    item.Session.City,
				SessionDate:    item.Session.StartDate,
				Status:         derived.Status,
				DaysUntil:      derived.DaysUntil,
			}

			if item.CancelledAt != nil {
				occ.Status = StatusCancelled
			}

			occurrences = append(occurrences, occ)
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].SessionDate.Before(occurrences[j].SessionDate)
	})

	return occurrences, nil
}
