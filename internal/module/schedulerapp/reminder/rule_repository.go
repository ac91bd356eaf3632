package reminder

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

// Rule overrides the default reminder window for one formation.
type Rule struct {
	FormationID   string
	Direction     Direction
	ThresholdDays int
}

type RuleRepository interface {
	FindManyByFormationID(ctx context.Context, formationID string, tx *sql.Tx) ([]Rule, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type ruleRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewRuleRepository(logger *logrus.Logger, db *sql.DB) RuleRepository {
	return &ruleRepository{
		logger: logger,
		db:     db,
	}
}

// FindManyByFormationID implements RuleRepository.
func (r *ruleRepository) FindManyByFormationID(ctx context.Context, formationID string, tx *sql.Tx) ([]Rule, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			formation_id, direction, threshold_days
		FROM reminder_rule
		WHERE
			formation_id = $1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reminder rule's properties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, formationID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reminder rule's properties")
	}

	defer rows.Close()

	var data = make([]Rule, 0)
	for rows.Next() {
		var rule Rule

		err := rows.Scan(&rule.FormationID, &rule.Direction, &rule.ThresholdDays)
		if err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of reminder rule's properties")
		}

		data = append(data, rule)
	}

	return data, nil
}
