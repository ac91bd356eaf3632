package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/sirupsen/logrus"

	"github.com/pixfil/onm-formation/internal/module/customerapp/order"
	"github.com/pixfil/onm-formation/internal/module/customerapp/training"
	"github.com/pixfil/onm-formation/internal/module/schedulerapp/mailer"
	"github.com/pixfil/onm-formation/pkg/gctasks"
	"github.com/pixfil/onm-formation/pkg/pubsub"
)

const orderBatchSize = 100

type ReminderUseCase interface {
	OnRunReminders(ctx context.Context, e RunRemindersEvent) error
}

type reminderUseCase struct {
	logger                    *logrus.Logger
	timeout                   time.Duration
	baseURL                   string
	queueID                   string
	runInterval               time.Duration
	upcomingThresholdDays     int
	followUpThresholdDays     int
	senderName                string
	senderEmail               string
	upcomingTemplateID        int64
	followUpTemplateID        int64
	orderRepository           order.OrderRepository
	itemRepository            order.ItemRepository
	ruleRepository            RuleRepository
	notificationLogRepository NotificationLogRepository
	mailerRepository          mailer.MailerRepository
	publisher                 pubsub.Publisher
	cloudTask                 gctasks.Client
}

type ReminderUseCaseProperty struct {
	Logger                    *logrus.Logger
	Timeout                   time.Duration
	BaseURL                   string
	QueueID                   string
	RunInterval               time.Duration
	UpcomingThresholdDays     int
	FollowUpThresholdDays     int
	SenderName                string
	SenderEmail               string
	UpcomingTemplateID        int64
	FollowUpTemplateID        int64
	OrderRepository           order.OrderRepository
	ItemRepository            order.ItemRepository
	RuleRepository            RuleRepository
	NotificationLogRepository NotificationLogRepository
	MailerRepository          mailer.MailerRepository
	Publisher                 pubsub.Publisher
	CloudTask                 gctasks.Client
}

func NewReminderUseCase(props ReminderUseCaseProperty) ReminderUseCase {
	return &reminderUseCase{
		logger:                    props.Logger,
		timeout:                   props.Timeout,
		baseURL:                   props.BaseURL,
		queueID:                   props.QueueID,
		runInterval:               props.RunInterval,
		upcomingThresholdDays:     props.UpcomingThresholdDays,
		followUpThresholdDays:     props.FollowUpThresholdDays,
		senderName:                props.SenderName,
		senderEmail:               props.SenderEmail,
		upcomingTemplateID:        props.UpcomingTemplateID,
		followUpTemplateID:        props.FollowUpTemplateID,
		orderRepository:           props.OrderRepository,
		itemRepository:            props.ItemRepository,
		ruleRepository:            props.RuleRepository,
		notificationLogRepository: props.NotificationLogRepository,
		mailerRepository:          props.MailerRepository,
		publisher:                 props.Publisher,
		cloudTask:                 props.CloudTask,
	}
}

type window struct {
	direction    Direction
	threshold    int
	templateKind TemplateKind
	templateID   int64
}

// windowsFor returns the two reminder windows for a formation, applying
// per-formation rule overrides on top of the configured defaults. A rule
// lookup failure degrades to the defaults.
func (u *reminderUseCase) windowsFor(ctx context.Context, formationID string) []window {
	windows := []window{
		{
			direction:    DirectionBefore,
			threshold:    u.upcomingThresholdDays,
			templateKind: TemplateUpcomingReminder,
			templateID:   u.upcomingTemplateID,
		},
		{
			direction:    DirectionAfter,
			threshold:    u.followUpThresholdDays,
			templateKind: TemplateFollowUp,
			templateID:   u.followUpTemplateID,
		},
	}

	if formationID == "" {
		return windows
	}

	rules, err := u.ruleRepository.FindManyByFormationID(ctx, formationID, nil)
	if err != nil {
		u.logger.WithContext(ctx).WithField("formationId", formationID).WithError(err).Error()
		return windows
	}

	for _, rule := range rules {
		for k := range windows {
			if windows[k].direction == rule.Direction {
				windows[k].threshold = rule.ThresholdDays
			}
		}
	}

	return windows
}

// OnRunReminders implements ReminderUseCase. It walks every active order,
// evaluates both reminder windows for each occurrence and dispatches at most
// one email per (order item, template) thanks to the notification log.
// Dispatch failures are logged and skipped, the run itself never aborts on a
// single customer.
func (u *reminderUseCase) OnRunReminders(ctx context.Context, e RunRemindersEvent) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	now := e.TriggeredAt
	if now.IsZero() {
		now = time.Now()
	}

	var offset int64

	for {
		orders, err := u.orderRepository.FindManyActive(ctx, offset, orderBatchSize, nil)
		if err != nil {
			return err
		}

		if len(orders) == 0 {
			break
		}

		for _, o := range orders {
			u.remindOrder(ctx, o, now)
		}

		offset += int64(len(orders))
	}

	u.scheduleNextRun(now)

	return nil
}

func (u *reminderUseCase) remindOrder(ctx context.Context, o order.Order, now time.Time) {
	items, err := u.itemRepository.FindManyByOrderID(ctx, o.ID, nil)
	if err != nil {
		u.logger.WithContext(ctx).WithField("orderId", o.ID).WithError(err).Error()
		return
	}
	o.Items = items

	occurrences, err := training.ListOccurrences([]order.Order{o}, now)
	if err != nil {
		u.logger.WithContext(ctx).WithField("orderId", o.ID).WithError(err).Error()
		return
	}

	for _, occ := range occurrences {
		if occ.Status == training.StatusCancelled {
			continue
		}

		for _, w := range u.windowsFor(ctx, occ.FormationID) {
			fire, err := ShouldNotify(occ.SessionDate, now, w.direction, w.threshold)
			if err != nil {
				u.logger.WithContext(ctx).WithField("orderItemId", occ.OrderItemID).WithError(err).Error()
				continue
			}

			if !fire {
				continue
			}

			u.dispatch(ctx, o, occ, w, now)
		}
	}
}

func (u *reminderUseCase) dispatch(ctx context.Context, o order.Order, occ training.Occurrence, w window, now time.Time) {
	notified, err := u.notificationLogRepository.HasNotified(ctx, occ.OrderItemID, w.templateKind)
	if err != nil {
		u.logger.WithContext(ctx).WithField("orderItemId", occ.OrderItemID).WithError(err).Error()
		return
	}

	if notified {
		return
	}

	_, err = u.mailerRepository.Send(ctx, mailer.SendEmailRequest{
		Sender:     mailer.Contact{Name: u.senderName, Email: u.senderEmail},
		To:         []mailer.Contact{{Name: o.CustomerName, Email: o.CustomerEmail}},
		TemplateID: w.templateID,
		Params: map[string]interface{}{
			"formation_title": occ.FormationTitle,
			"session_city":    occ.SessionCity,
			"session_date":    occ.SessionDate.Format("2006-01-02"),
			"days_until":      occ.DaysUntil,
		},
	})
	if err != nil {
		u.logger.WithContext(ctx).WithField("orderItemId", occ.OrderItemID).WithError(err).Error()
		return
	}

	event := ReminderDispatchedEvent{
		OrderItemID:    occ.OrderItemID,
		TemplateKind:   w.templateKind,
		CustomerEmail:  o.CustomerEmail,
		FormationTitle: occ.FormationTitle,
		SessionCity:    occ.SessionCity,
		SessionDate:    occ.SessionDate,
		DispatchedAt:   now,
	}
	eventBuff, _ := json.Marshal(event)
	u.publisher.Publish(ctx, "formation-reminder-dispatched", o.ID, nil, eventBuff)

	if err := u.notificationLogRepository.RecordNotified(ctx, occ.OrderItemID, w.templateKind, now); err != nil {
		u.logger.WithContext(ctx).WithField("orderItemId", occ.OrderItemID).WithError(err).Error()
	}
}

func (u *reminderUseCase) scheduleNextRun(now time.Time) {
	eventBuff, _ := json.Marshal(RunRemindersEvent{TriggeredAt: now.Add(u.runInterval)})

	tasksRequest := gctasks.Request{
		URL:    fmt.Sprintf("%s/onm-formation/v1/schedulerapp/reminders/on-run", u.baseURL),
		Method: cloudtaskspb.HttpMethod_POST,
		Body:   eventBuff,
	}

	u.cloudTask.DeferCreateTaskInDuration(u.queueID, tasksRequest, u.runInterval)
}
