package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixfil/onm-formation/internal/module/customerapp/formation"
	"github.com/pixfil/onm-formation/internal/module/customerapp/order"
	"github.com/pixfil/onm-formation/internal/module/schedulerapp/mailer"
	"github.com/pixfil/onm-formation/pkg/applogger"
	"github.com/pixfil/onm-formation/pkg/gctasks"
)

type fakeOrderRepository struct {
	orders []order.Order
}

func (f *fakeOrderRepository) BeginTx(ctx context.Context) (*sql.Tx, error)        { return nil, nil }
func (f *fakeOrderRepository) CommitTx(ctx context.Context, tx *sql.Tx) error      { return nil }
func (f *fakeOrderRepository) Rollback(ctx context.Context, tx *sql.Tx) error      { return nil }
func (f *fakeOrderRepository) Update(ctx context.Context, ID string, o order.Order, tx *sql.Tx) error {
	return nil
}

func (f *fakeOrderRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (order.Order, error) {
	for _, o := range f.orders {
		if o.ID == ID {
			return o, nil
		}
	}
	return order.Order{}, fmt.Errorf("not found")
}

func (f *fakeOrderRepository) FindManyByCustomerID(ctx context.Context, customerID int64, tx *sql.Tx) ([]order.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepository) FindManyActive(ctx context.Context, offset, limit int64, tx *sql.Tx) ([]order.Order, error) {
	if offset >= int64(len(f.orders)) {
		return []order.Order{}, nil
	}
	end := offset + limit
	if end > int64(len(f.orders)) {
		end = int64(len(f.orders))
	}
	return f.orders[offset:end], nil
}

type fakeItemRepository struct {
	items map[string][]order.Item
}

func (f *fakeItemRepository) FindManyByOrderID(ctx context.Context, orderID string, tx *sql.Tx) ([]order.Item, error) {
	return f.items[orderID], nil
}

type fakeRuleRepository struct {
	rules map[string][]Rule
}

func (f *fakeRuleRepository) FindManyByFormationID(ctx context.Context, formationID string, tx *sql.Tx) ([]Rule, error) {
	return f.rules[formationID], nil
}

type fakeNotificationLog struct {
	notified map[string]time.Time
}

func newFakeNotificationLog() *fakeNotificationLog {
	return &fakeNotificationLog{notified: make(map[string]time.Time)}
}

func (f *fakeNotificationLog) HasNotified(ctx context.Context, orderItemID int64, kind TemplateKind) (bool, error) {
	_, ok := f.notified[fmt.Sprintf("%d:%s", orderItemID, kind)]
	return ok, nil
}

func (f *fakeNotificationLog) RecordNotified(ctx context.Context, orderItemID int64, kind TemplateKind, sentAt time.Time) error {
	f.notified[fmt.Sprintf("%d:%s", orderItemID, kind)] = sentAt
	return nil
}

type fakeMailer struct {
	sent []mailer.SendEmailRequest
}

func (f *fakeMailer) Send(ctx context.Context, req mailer.SendEmailRequest) (mailer.SendEmailResponse, error) {
	f.sent = append(f.sent, req)
	return mailer.SendEmailResponse{MessageID: fmt.Sprintf("msg-%d", len(f.sent))}, nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, key string, headers map[string]string, message []byte) error {
	f.published = append(f.published, topic)
	return nil
}

func (f *fakePublisher) Close() {}

type fakeCloudTask struct {
	deferred []string
}

func (f *fakeCloudTask) CreateQueue(id string) error { return nil }
func (f *fakeCloudTask) CreateTask(queueID string, request gctasks.Request) error {
	return nil
}
func (f *fakeCloudTask) DeferCreateTaskInDuration(queueID string, request gctasks.Request, duration time.Duration) error {
	f.deferred = append(f.deferred, queueID)
	return nil
}
func (f *fakeCloudTask) DeferCreateTaskInTime(queueID string, request gctasks.Request, schedule time.Time) error {
	f.deferred = append(f.deferred, queueID)
	return nil
}
func (f *fakeCloudTask) Close() error { return nil }

func reminderFixture(sessionDate time.Time) (*fakeOrderRepository, *fakeItemRepository) {
	orders := &fakeOrderRepository{
		orders: []order.Order{
			{
				ID:            "TO-100",
				Status:        order.StatusConfirmed,
				PaymentStatus: order.PaymentStatusPaid,
				CustomerID:    7,
				CustomerName:  "Claire Martin",
				CustomerEmail: "claire@example.fr",
			},
		},
	}

	items := &fakeItemRepository{
		items: map[string][]order.Item{
			"TO-100": {
				{
					ID:      31,
					OrderID: "TO-100",
					Session: &formation.Session{
						ID:          "fs-31",
						FormationID: "f-9",
						City:        "Lyon",
						StartDate:   sessionDate,
						Formation:   &formation.Formation{ID: "f-9", Title: "Diagnostic ONM"},
					},
				},
			},
		},
	}

	return orders, items
}

func newTestReminderUseCase(orders *fakeOrderRepository, items *fakeItemRepository, rules *fakeRuleRepository, log *fakeNotificationLog, m *fakeMailer, p *fakePublisher, ct *fakeCloudTask) ReminderUseCase {
	return NewReminderUseCase(ReminderUseCaseProperty{
		Logger:                    applogger.GetLogrus(),
		Timeout:                   5 * time.Second,
		BaseURL:                   "https://api.onm.example",
		QueueID:                   "formation-reminder",
		RunInterval:               24 * time.Hour,
		UpcomingThresholdDays:     3,
		FollowUpThresholdDays:     5,
		SenderName:                "ONM Formations",
		SenderEmail:               "formations@onm.example",
		UpcomingTemplateID:        11,
		FollowUpTemplateID:        12,
		OrderRepository:           orders,
		ItemRepository:            items,
		RuleRepository:            rules,
		NotificationLogRepository: log,
		MailerRepository:          m,
		Publisher:                 p,
		CloudTask:                 ct,
	})
}

func TestReminderUseCase_OnRunReminders(t *testing.T) {
	t.Run("sends upcoming reminder inside the window", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		orders, items := reminderFixture(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC))
		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, &fakeRuleRepository{}, log, m, p, ct)

		err := u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now})
		require.NoError(t, err)

		require.Len(t, m.sent, 1)
		assert.Equal(t, int64(11), m.sent[0].TemplateID)
		assert.Equal(t, "claire@example.fr", m.sent[0].To[0].Email)
		assert.Equal(t, []string{"formation-reminder-dispatched"}, p.published)
		assert.Equal(t, []string{"formation-reminder"}, ct.deferred)
	})

	t.Run("does not resend inside the same window", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		orders, items := reminderFixture(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC))
		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, &fakeRuleRepository{}, log, m, p, ct)

		require.NoError(t, u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now}))
		require.NoError(t, u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now.Add(24 * time.Hour)}))

		assert.Len(t, m.sent, 1)
	})

	t.Run("sends follow up once the session is far enough in the past", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		orders, items := reminderFixture(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, &fakeRuleRepository{}, log, m, p, ct)

		err := u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now})
		require.NoError(t, err)

		require.Len(t, m.sent, 1)
		assert.Equal(t, int64(12), m.sent[0].TemplateID)
	})

	t.Run("outside both windows nothing is sent", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		orders, items := reminderFixture(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, &fakeRuleRepository{}, log, m, p, ct)

		err := u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now})
		require.NoError(t, err)

		assert.Empty(t, m.sent)
		assert.Empty(t, p.published)
		assert.Equal(t, []string{"formation-reminder"}, ct.deferred, "next run is still scheduled")
	})

	t.Run("formation rule overrides the default window", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		// Seven days out, outside the default three-day window.
		orders, items := reminderFixture(time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC))
		rules := &fakeRuleRepository{rules: map[string][]Rule{
			"f-9": {{FormationID: "f-9", Direction: DirectionBefore, ThresholdDays: 7}},
		}}
		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, rules, log, m, p, ct)

		err := u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now})
		require.NoError(t, err)

		require.Len(t, m.sent, 1)
		assert.Equal(t, int64(11), m.sent[0].TemplateID)
	})

	t.Run("cancelled items are never reminded", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
		orders, items := reminderFixture(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC))
		cancelledAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		items.items["TO-100"][0].CancelledAt = &cancelledAt

		log := newFakeNotificationLog()
		m := &fakeMailer{}
		p := &fakePublisher{}
		ct := &fakeCloudTask{}

		u := newTestReminderUseCase(orders, items, &fakeRuleRepository{}, log, m, p, ct)

		err := u.OnRunReminders(context.Background(), RunRemindersEvent{TriggeredAt: now})
		require.NoError(t, err)

		assert.Empty(t, m.sent)
	})
}
