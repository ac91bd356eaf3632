package formation

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

type SessionRepository interface {
	FindByID(ctx context.Context, ID string, tx *sql.Tx) (Session, error)
	FindManyByFormationID(ctx context.Context, formationID string, tx *sql.Tx) ([]Session, error)
}

type sessionRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewSessionRepository(logger *logrus.Logger, db *sql.DB) SessionRepository {
	return &sessionRepository{
		logger: logger,
		db:     db,
	}
}

func scanSession(scan func(dest ...interface{}) error) (Session, error) {
	var s Session
	var formationID sql.NullString
	var formationTitle sql.NullString
	var formationLevel sql.NullString

	err := scan(
		&s.ID, &s.FormationID, &s.City, &s.StartDate, &s.Status,
		&formationID, &formationTitle, &formationLevel,
	)
	if err != nil {
		return Session{}, err
	}

	if formationID.Valid {
		s.Formation = &Formation{
			ID:    formationID.String,
			Title: formationTitle.String,
			Level: formationLevel.String,
		}
	}

	return s, nil
}

// FindByID implements SessionRepository. The formation reference is resolved
// with a left join so a dangling reference degrades to a nil Formation
// instead of an error.
func (r *sessionRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (Session, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			s.id, s.formation_id, s.city, s.start_date, s.status,
			f.id, f.title, f.level
		FROM formation_session s
		LEFT JOIN formation f ON f.id = s.formation_id
		WHERE
			s.id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Session{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting formation session's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	data, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return Session{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("formation session's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Session{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting formation session's properties")
	}

	return data, nil
}

// FindManyByFormationID implements SessionRepository.
func (r *sessionRepository) FindManyByFormationID(ctx context.Context, formationID string, tx *sql.Tx) ([]Session, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			s.id, s.formation_id, s.city, s.start_date, s.status,
			f.id, f.title, f.level
		FROM formation_session s
		LEFT JOIN formation f ON f.id = s.formation_id
		WHERE
			s.formation_id = $1
		ORDER BY s.start_date ASC
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of formation session's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, formationID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of formation session's properties")
	}

	defer rows.Close()

	var data = make([]Session, 0)
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of formation session's properties")
		}

		data = append(data, s)
	}

	return data, nil
}
