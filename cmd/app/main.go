package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/pixfil/onm-formation/config"
	customerapp_formation "github.com/pixfil/onm-formation/internal/module/customerapp/formation"
	customerapp_order "github.com/pixfil/onm-formation/internal/module/customerapp/order"
	customerapp_training "github.com/pixfil/onm-formation/internal/module/customerapp/training"
	"github.com/pixfil/onm-formation/internal/module/schedulerapp/mailer"
	schedulerapp_reminder "github.com/pixfil/onm-formation/internal/module/schedulerapp/reminder"
	"github.com/pixfil/onm-formation/internal/pkg/jwt"
	internalMiddleware "github.com/pixfil/onm-formation/internal/pkg/middleware"
	"github.com/pixfil/onm-formation/internal/pkg/session"
	"github.com/pixfil/onm-formation/pkg/applogger"
	"github.com/pixfil/onm-formation/pkg/gctasks"
	"github.com/pixfil/onm-formation/pkg/kafka"
	"github.com/pixfil/onm-formation/pkg/middleware"
	"github.com/pixfil/onm-formation/pkg/monitoring"
	"github.com/pixfil/onm-formation/pkg/postgresql"
	"github.com/pixfil/onm-formation/pkg/pubsub"
	"github.com/pixfil/onm-formation/pkg/redis"
	"github.com/pixfil/onm-formation/pkg/server"
	"github.com/pixfil/onm-formation/pkg/validator"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	mon := monitoring.NewOpenTelemetry(
		c.Application.Name,
		c.Application.Environment,
		c.GCP.ProjectID,
	)

	mon.Start(ctx)

	validate := validator.Get()

	hc := http.DefaultClient

	jsonWebToken := jwt.NewJSONWebToken(c.JWT.PrivateKey, c.JWT.PublicKey)

	psqldb := postgresql.GetDatabase()
	if err := psqldb.Ping(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	publisher := pubsub.PublisherFromConfluentKafkaProducer(logger, kafka.NewProducer())

	rc := redis.GetClient()
	if err := rc.Ping(context.Background()).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	cloudTask := gctasks.NewGCTasks(logger, c.GCP.ProjectID, c.GCP.ServiceAccount)

	sessionStore := session.NewRedisSessionStore(logger, rc)

	customerSessionMiddleware := internalMiddleware.NewCustomerSessionMiddleware(jsonWebToken, sessionStore)

	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(c.Application.Name),
		middleware.HTTPResponseTraceInjection,
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	// customer's app
	formationRepo := customerapp_formation.NewFormationRepository(logger, psqldb)
	formationSessionRepo := customerapp_formation.NewSessionRepository(logger, psqldb)
	formationUseCase := customerapp_formation.NewFormationUseCase(customerapp_formation.FormationUseCaseProperty{
		Logger:              logger,
		Timeout:             c.Application.Timeout,
		FormationRepository: formationRepo,
		SessionRepository:   formationSessionRepo,
	})
	customerapp_formation.InitHTTPHandler(router, formationUseCase)

	orderRepo := customerapp_order.NewOrderRepository(logger, psqldb)
	orderItemRepo := customerapp_order.NewItemRepository(logger, psqldb)
	orderUseCase := customerapp_order.NewOrderUseCase(customerapp_order.OrderUseCaseProperty{
		Logger:          logger,
		Timeout:         c.Application.Timeout,
		OrderRepository: orderRepo,
		ItemRepository:  orderItemRepo,
		Publisher:       publisher,
	})
	customerapp_order.InitHTTPHandler(router, customerSessionMiddleware, validate, orderUseCase)

	trainingUseCase := customerapp_training.NewTrainingUseCase(customerapp_training.TrainingUseCaseProperty{
		Logger:          logger,
		Timeout:         c.Application.Timeout,
		OrderRepository: orderRepo,
		ItemRepository:  orderItemRepo,
	})
	customerapp_training.InitHTTPHandler(router, customerSessionMiddleware, trainingUseCase)

	// scheduler's app
	mailerRepo := mailer.NewMailerRepository(c.Mailer.BaseURL, c.Mailer.APIKey, logger, hc)
	reminderRuleRepo := schedulerapp_reminder.NewRuleRepository(logger, psqldb)
	notificationLogRepo := schedulerapp_reminder.NewRedisNotificationLogRepository(logger, rc, 0)
	reminderUseCase := schedulerapp_reminder.NewReminderUseCase(schedulerapp_reminder.ReminderUseCaseProperty{
		Logger:                    logger,
		Timeout:                   c.Application.Timeout,
		BaseURL:                   c.Application.BaseURL,
		QueueID:                   c.Reminder.QueueID,
		RunInterval:               c.Reminder.RunInterval,
		UpcomingThresholdDays:     c.Reminder.UpcomingThresholdDays,
		FollowUpThresholdDays:     c.Reminder.FollowUpThresholdDays,
		SenderName:                c.Mailer.SenderName,
		SenderEmail:               c.Mailer.SenderEmail,
		UpcomingTemplateID:        c.Mailer.UpcomingTemplateID,
		FollowUpTemplateID:        c.Mailer.FollowUpTemplateID,
		OrderRepository:           orderRepo,
		ItemRepository:            orderItemRepo,
		RuleRepository:            reminderRuleRepo,
		NotificationLogRepository: notificationLogRepo,
		MailerRepository:          mailerRepo,
		Publisher:                 publisher,
		CloudTask:                 cloudTask,
	})
	schedulerapp_reminder.InitHTTPHandler(router, reminderUseCase)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
	publisher.Close()
	psqldb.Close()
	rc.Close()
	cloudTask.Close()
	mon.Stop(ctx)
}
