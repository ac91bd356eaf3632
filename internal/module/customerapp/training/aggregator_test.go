package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixfil/onm-formation/internal/module/customerapp/formation"
	"github.com/pixfil/onm-formation/internal/module/customerapp/order"
)

func sessionOn(date time.Time, city, title string) *formation.Session {
	return &formation.Session{
		ID:          "fs-" + date.Format("20060102"),
		FormationID: "f-1",
		City:        city,
		StartDate:   date,
		Status:      formation.SessionStatusScheduled,
		Formation: &formation.Formation{
			ID:    "f-1",
			Title: title,
			Level: formation.LevelIntroductory,
		},
	}
}

func paidOrder(id string, items ...order.Item) order.Order {
	return order.Order{
		ID:            id,
		Status:        order.StatusConfirmed,
		PaymentStatus: order.PaymentStatusPaid,
		CustomerID:    42,
		CustomerEmail: "client@example.fr",
		Items:         items,
	}
}

func TestListOccurrences(t *testing.T) {
	today := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	t.Run("end to end projection", func(t *testing.T) {
		sessionDate := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
		orders := []order.Order{
			paidOrder("TO-1", order.Item{
				ID:      1,
				OrderID: "TO-1",
				Session: sessionOn(sessionDate, "Lyon", "Diagnostic ONM"),
			}),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, "Diagnostic ONM", occurrences[0].FormationTitle)
		assert.Equal(t, sessionDate, occurrences[0].SessionDate)
		assert.Equal(t, StatusUpcoming, occurrences[0].Status)
		assert.Equal(t, 3, occurrences[0].DaysUntil)
	})

	t.Run("unpaid orders are excluded", func(t *testing.T) {
		o := paidOrder("TO-2", order.Item{
			ID:      2,
			Session: sessionOn(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), "Paris", "Diagnostic ONM"),
		})
		o.PaymentStatus = order.PaymentStatusWaiting

		occurrences, err := ListOccurrences([]order.Order{o}, today)
		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("orders outside confirmed or completed are excluded", func(t *testing.T) {
		o := paidOrder("TO-3", order.Item{
			ID:      3,
			Session: sessionOn(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), "Paris", "Diagnostic ONM"),
		})
		o.Status = order.StatusExpired

		occurrences, err := ListOccurrences([]order.Order{o}, today)
		require.NoError(t, err)
		assert.Empty(t, occurrences)
	})

	t.Run("item without resolved session is skipped", func(t *testing.T) {
		orders := []order.Order{
			paidOrder("TO-4",
				order.Item{ID: 4, Session: nil},
				order.Item{ID: 5, Session: sessionOn(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "Nantes", "Diagnostic ONM")},
			),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, int64(5), occurrences[0].OrderItemID)
	})

	t.Run("missing formation falls back to the denormalized title", func(t *testing.T) {
		s := sessionOn(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "Nantes", "")
		s.Formation = nil

		orders := []order.Order{
			paidOrder("TO-5", order.Item{ID: 6, FormationTitle: "Initiation - Niveau 1", Session: s}),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, "Initiation - Niveau 1", occurrences[0].FormationTitle)
	})

	t.Run("output is sorted chronologically across orders", func(t *testing.T) {
		orders := []order.Order{
			paidOrder("TO-6", order.Item{ID: 7, Session: sessionOn(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "Paris", "Diagnostic ONM")}),
			paidOrder("TO-7",
				order.Item{ID: 8, Session: sessionOn(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), "Lyon", "Initiation - Niveau 1")},
				order.Item{ID: 9, Session: sessionOn(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), "Nice", "Diagnostic ONM")},
			),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 3)

		for i := 1; i < len(occurrences); i++ {
			assert.False(t, occurrences[i].SessionDate.Before(occurrences[i-1].SessionDate))
		}
		assert.Equal(t, []int64{8, 9, 7}, []int64{occurrences[0].OrderItemID, occurrences[1].OrderItemID, occurrences[2].OrderItemID})
	})

	t.Run("equal dates keep input relative order", func(t *testing.T) {
		date := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
		orders := []order.Order{
			paidOrder("TO-8",
				order.Item{ID: 10, Session: sessionOn(date, "Paris", "A")},
				order.Item{ID: 11, Session: sessionOn(date, "Lyon", "B")},
			),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 2)
		assert.Equal(t, int64(10), occurrences[0].OrderItemID)
		assert.Equal(t, int64(11), occurrences[1].OrderItemID)
	})

	t.Run("cancelled item overrides the derived status", func(t *testing.T) {
		cancelledAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		orders := []order.Order{
			paidOrder("TO-9", order.Item{
				ID:          12,
				CancelledAt: &cancelledAt,
				Session:     sessionOn(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), "Paris", "Diagnostic ONM"),
			}),
		}

		occurrences, err := ListOccurrences(orders, today)
		require.NoError(t, err)
		require.Len(t, occurrences, 1)
		assert.Equal(t, StatusCancelled, occurrences[0].Status)
	})
}
