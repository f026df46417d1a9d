package config

import (
	"careportal-service/internal/pkg/utils"
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// NewInternalConfig reads the application settings. Every key can be
// overridden from the environment by its upper-cased, underscore-joined
// name, e.g. app.backend_timeout_in_seconds from APP_BACKEND_TIMEOUT_IN_SECONDS.
func NewInternalConfig() (*InternalConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	internalConfig := new(InternalConfig)
	err = v.Unmarshal(internalConfig)
	if err != nil {
		return nil, err
	}
	return internalConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.version", "v1.0")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.allowed_origins", "http://localhost:8080")
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.max_time_requests_per_seconds", 60)
	v.SetDefault("app.login_requests_per_minute", 10)
	v.SetDefault("app.login_burst", 5)
	v.SetDefault("app.request_body_limit_in_megabyte", 6)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.backend_timeout_in_seconds", 10)
	v.SetDefault("app.session_cookie_name", "careportal_session")
	v.SetDefault("app.session_cookie_secure", false)
	v.SetDefault("app.login_session_expired_time_in_hours", 8)
	v.SetDefault("app.view_state_expired_time_in_minutes", 60)
	v.SetDefault("app.view_state_lock_time_in_seconds", 5)

	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.service_token", "")
	v.SetDefault("backend.appointment_type", "")

	v.SetDefault("jwt.secret", "change-me")

	v.SetDefault("refcache.ttl_in_minutes", 15)
	v.SetDefault("refcache.cron_spec", "@every 10m")

	v.SetDefault("rabbitmq.appointment_event_queue", "appointment_events")

	v.SetDefault("minio.bucket_name", "lab-results")
	v.SetDefault("minio.lab_attachment_max_upload_size_in_mb", 10)
	v.SetDefault("minio.pre_signed_url_object_expiry_time_in_hours", 24)
}
