package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX = "CRPRTL_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	DateTimeDisplay = "02 Jan 2006 15:04"
	DateDisplay     = "02 Jan 2006"
)

const (
	RedisSessionKeyPrefix       = "session:"
	RedisBookingStateKeyPrefix  = "viewstate:booking:"
	RedisListStateKeyPrefix     = "viewstate:appointments:"
	RedisViewStateLockKeyPrefix = "lock:viewstate:"
	RedisRefcacheKeyPrefix      = "refcache:"
	RedisRefcacheLeaderLockKey  = "refcache:leader"
)
