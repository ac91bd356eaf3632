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

type FormationRepository interface {
	FindByID(ctx context.Context, ID string, tx *sql.Tx) (Formation, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type formationRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewFormationRepository(logger *logrus.Logger, db *sql.DB) FormationRepository {
	return &formationRepository{
		logger: logger,
		db:     db,
	}
}

// FindByID implements FormationRepository.
func (r *formationRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (Formation, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, title, level, status, created_at, updated_at
		FROM formation
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Formation{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting formation's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Formation
	err = row.Scan(
		&data.ID, &data.Title, &data.Level, &data.Status, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Formation{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("formation's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Formation{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting formation's properties")
	}

	return data, nil
}
