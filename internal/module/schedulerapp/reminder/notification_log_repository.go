package reminder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/status"
)

// NotificationLogRepository remembers which reminders were already sent so a
// run inside the same window does not notify a customer twice.
type NotificationLogRepository interface {
	HasNotified(ctx context.Context, orderItemID int64, kind TemplateKind) (bool, error)
	RecordNotified(ctx context.Context, orderItemID int64, kind TemplateKind, sentAt time.Time) error
}

type redisNotificationLogRepository struct {
	logger    *logrus.Logger
	client    *goredis.Client
	retention time.Duration
}

func NewRedisNotificationLogRepository(logger *logrus.Logger, client *goredis.Client, retention time.Duration) NotificationLogRepository {
	return &redisNotificationLogRepository{
		logger:    logger,
		client:    client,
		retention: retention,
	}
}

func notificationKey(orderItemID int64, kind TemplateKind) string {
	return fmt.Sprintf("reminder:notified:%d:%s", orderItemID, kind)
}

// HasNotified implements NotificationLogRepository.
func (r *redisNotificationLogRepository) HasNotified(ctx context.Context, orderItemID int64, kind TemplateKind) (bool, error) {
	n, err := r.client.Exists(ctx, notificationKey(orderItemID, kind)).Result()
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return false, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while checking notification log")
	}

	return n > 0, nil
}

// RecordNotified implements NotificationLogRepository.
func (r *redisNotificationLogRepository) RecordNotified(ctx context.Context, orderItemID int64, kind TemplateKind, sentAt time.Time) error {
	err := r.client.Set(ctx, notificationKey(orderItemID, kind), sentAt.Format(time.RFC3339), r.retention).Err()
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while recording notification log")
	}

	return nil
}
