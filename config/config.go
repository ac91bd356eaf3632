package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type ApplicationConfig struct {
	Name        string
	Environment string
	Port        int
	Debug       bool
	Timeout     time.Duration
	BaseURL     string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	MaxAge           int
	AllowCredentials bool
}

type JWTConfig struct {
	PrivateKey string
	PublicKey  string
}

type PostgreSQLConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	BootstrapServers string
	ClientID         string
}

type GCPConfig struct {
	ProjectID      string
	ServiceAccount []byte
}

type MailerConfig struct {
	BaseURL            string
	APIKey             string
	SenderName         string
	SenderEmail        string
	UpcomingTemplateID int64
	FollowUpTemplateID int64
}

type ReminderConfig struct {
	UpcomingThresholdDays int
	FollowUpThresholdDays int
	RunInterval           time.Duration
	QueueID               string
}

type Config struct {
	Application ApplicationConfig
	CORS        CORSConfig
	JWT         JWTConfig
	PostgreSQL  PostgreSQLConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	GCP         GCPConfig
	Mailer      MailerConfig
	Reminder    ReminderConfig
}

var (
	c    *Config
	once sync.Once
)

func Get() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetDefault("application.name", "onm-formation")
		v.SetDefault("application.environment", "development")
		v.SetDefault("application.port", 9000)
		v.SetDefault("application.timeout", "30s")
		v.SetDefault("postgresql.sslmode", "disable")
		v.SetDefault("postgresql.maxopenconns", 25)
		v.SetDefault("postgresql.maxidleconns", 5)
		v.SetDefault("reminder.upcomingthresholddays", 3)
		v.SetDefault("reminder.followupthresholddays", 5)
		v.SetDefault("reminder.runinterval", "24h")
		v.SetDefault("reminder.queueid", "formation-reminder")

		// The config file is optional, environment variables can carry the
		// whole configuration in deployment.
		v.ReadInConfig()

		c = &Config{
			Application: ApplicationConfig{
				Name:        v.GetString("application.name"),
				Environment: v.GetString("application.environment"),
				Port:        v.GetInt("application.port"),
				Debug:       v.GetBool("application.debug"),
				Timeout:     v.GetDuration("application.timeout"),
				BaseURL:     v.GetString("application.baseurl"),
			},
			CORS: CORSConfig{
				AllowedOrigins:   v.GetStringSlice("cors.allowedorigins"),
				AllowedMethods:   v.GetStringSlice("cors.allowedmethods"),
				AllowedHeaders:   v.GetStringSlice("cors.allowedheaders"),
				ExposedHeaders:   v.GetStringSlice("cors.exposedheaders"),
				MaxAge:           v.GetInt("cors.maxage"),
				AllowCredentials: v.GetBool("cors.allowcredentials"),
			},
			JWT: JWTConfig{
				PrivateKey: v.GetString("jwt.privatekey"),
				PublicKey:  v.GetString("jwt.publickey"),
			},
			PostgreSQL: PostgreSQLConfig{
				Host:         v.GetString("postgresql.host"),
				Port:         v.GetInt("postgresql.port"),
				User:         v.GetString("postgresql.user"),
				Password:     v.GetString("postgresql.password"),
				Name:         v.GetString("postgresql.name"),
				SSLMode:      v.GetString("postgresql.sslmode"),
				MaxOpenConns: v.GetInt("postgresql.maxopenconns"),
				MaxIdleConns: v.GetInt("postgresql.maxidleconns"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("redis.addr"),
				Password: v.GetString("redis.password"),
				DB:       v.GetInt("redis.db"),
			},
			Kafka: KafkaConfig{
				BootstrapServers: v.GetString("kafka.bootstrapservers"),
				ClientID:         v.GetString("kafka.clientid"),
			},
			GCP: GCPConfig{
				ProjectID:      v.GetString("gcp.projectid"),
				ServiceAccount: []byte(v.GetString("gcp.serviceaccount")),
			},
			Mailer: MailerConfig{
				BaseURL:            v.GetString("mailer.baseurl"),
				APIKey:             v.GetString("mailer.apikey"),
				SenderName:         v.GetString("mailer.sendername"),
				SenderEmail:        v.GetString("mailer.senderemail"),
				UpcomingTemplateID: v.GetInt64("mailer.upcomingtemplateid"),
				FollowUpTemplateID: v.GetInt64("mailer.followuptemplateid"),
			},
			Reminder: ReminderConfig{
				UpcomingThresholdDays: v.GetInt("reminder.upcomingthresholddays"),
				FollowUpThresholdDays: v.GetInt("reminder.followupthresholddays"),
				RunInterval:           v.GetDuration("reminder.runinterval"),
				QueueID:               v.GetString("reminder.queueid"),
			},
		}
	})

	return c
}
