package order

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/internal/module/customerapp/formation"
	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

type ItemRepository interface {
	FindManyByOrderID(ctx context.Context, orderID string, tx *sql.Tx) ([]Item, error)
}

type itemRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewItemRepository(logger *logrus.Logger, db *sql.DB) ItemRepository {
	return &itemRepository{
		logger: logger,
		db:     db,
	}
}

// FindManyByOrderID implements ItemRepository. Sessions and their formations
// are resolved with left joins, an item whose session row is gone comes back
// with a nil Session instead of failing the whole list.
func (r *itemRepository) FindManyByOrderID(ctx context.Context, orderID string, tx *sql.Tx) ([]Item, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			i.id, i.order_id, i.session_id, i.formation_title, i.price, i.quantity, i.cancelled_at,
			s.id, s.formation_id, s.city, s.start_date, s.status,
			f.id, f.title, f.level
		FROM order_item i
		LEFT JOIN formation_session s ON s.id = i.session_id
		LEFT JOIN formation f ON f.id = s.formation_id
		WHERE
			i.order_id = $1
		ORDER BY i.id ASC
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, orderID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
	}

	defer rows.Close()

	var data = make([]Item, 0)

	for rows.Next() {
		var i Item
		var cancelledAt sql.NullTime
		var sessionID sql.NullString
		var sessionFormationID sql.NullString
		var sessionCity sql.NullString
		var sessionStartDate sql.NullTime
		var sessionStatus sql.NullString
		var formationID sql.NullString
		var formationTitle sql.NullString
		var formationLevel sql.NullString

		if err := rows.Scan(
			&i.ID, &i.OrderID, &i.SessionID, &i.FormationTitle, &i.Price, &i.Quantity, &cancelledAt,
			&sessionID, &sessionFormationID, &sessionCity, &sessionStartDate, &sessionStatus,
			&formationID, &formationTitle, &formationLevel,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of order item's properties")
		}

		if cancelledAt.Valid {
			i.CancelledAt = &cancelledAt.Time
		}

		if sessionID.Valid {
			s := &formation.Session{
				ID:          sessionID.String,
				FormationID: sessionFormationID.String,
				City:        sessionCity.String,
				StartDate:   sessionStartDate.Time,
				Status:      sessionStatus.String,
			}

			if formationID.Valid {
				s.Formation = &formation.Formation{
					ID:    formationID.String,
					Title: formationTitle.String,
					Level: formationLevel.String,
				}
			}

			i.Session = s
		}

		data = append(data, i)
	}

	return data, nil
}
