package config

import (
	"strings"
	"time"
)

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Refcache AppRefcache `mapstructure:"refcache"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	LoginRequestsPerMinute     int    `mapstructure:"login_requests_per_minute"`
	LoginBurst                 int    `mapstructure:"login_burst"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	BackendTimeoutInSeconds    int    `mapstructure:"backend_timeout_in_seconds"`
	SessionCookieName          string `mapstructure:"session_cookie_name"`
	SessionCookieSecure        bool   `mapstructure:"session_cookie_secure"`
	LoginSessionExpiredInHours int    `mapstructure:"login_session_expired_time_in_hours"`
	ViewStateExpiredInMinutes  int    `mapstructure:"view_state_expired_time_in_minutes"`
	ViewStateLockInSeconds     int    `mapstructure:"view_state_lock_time_in_seconds"`
}

func (a App) BackendTimeout() time.Duration {
	return time.Duration(a.BackendTimeoutInSeconds) * time.Second
}

func (a App) ShutdownTimeout() time.Duration {
	return time.Duration(a.ShutdownTimeoutInSeconds) * time.Second
}

func (a App) SessionTTL() time.Duration {
	return time.Duration(a.LoginSessionExpiredInHours) * time.Hour
}

func (a App) ViewStateTTL() time.Duration {
	return time.Duration(a.ViewStateExpiredInMinutes) * time.Minute
}

func (a App) ViewStateLockTTL() time.Duration {
	return time.Duration(a.ViewStateLockInSeconds) * time.Second
}

// Origins splits the comma separated allowed origins list.
func (a App) Origins() []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(a.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

type AppBackend struct {
	BaseUrl         string `mapstructure:"base_url"`
	ServiceToken    string `mapstructure:"service_token"`
	AppointmentType string `mapstructure:"appointment_type"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppRefcache struct {
	TTLInMinutes int    `mapstructure:"ttl_in_minutes"`
	CronSpec     string `mapstructure:"cron_spec"`
}

type AppRabbitMQ struct {
	AppointmentEventQueue string `mapstructure:"appointment_event_queue"`
}

type AppMinio struct {
	BucketName                         string `mapstructure:"bucket_name"`
	LabAttachmentMaxUploadSizeInMB     int64  `mapstructure:"lab_attachment_max_upload_size_in_mb"`
	PreSignedUrlObjectExpiryTimeInHour int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}
