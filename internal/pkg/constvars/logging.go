package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionIDKey          = "session_id"
	LoggingUserIDKey             = "user_id"
	LoggingDataKey               = "data"
	LoggingQueryParamsKey        = "query_params"
	LoggingFiltersKey            = "filters"
	LoggingResponseKey           = "response"
	LoggingRequestKey            = "request"
	LoggingResponseLengthKey     = "response_length"
	LoggingErrorTypeKey          = "error_type"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingResourceKey           = "resource"
	LoggingFieldKey              = "field"
	LoggingRecordIndexKey        = "record_index"
	LoggingSequenceKey           = "seq"
	LoggingCurrentSequenceKey    = "current_seq"
	LoggingSelectorStateKey      = "selector_state"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey          = "queue_name"
	LoggingEventTypeKey          = "event_type"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingPrescriptionIDKey     = "prescription_id"
	LoggingLabTestIDKey          = "lab_test_id"
	LoggingInventoryItemIDKey    = "inventory_item_id"
	LoggingPaymentIDKey          = "payment_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingFileSizeKey           = "file_size"
	LoggingMedicationCountKey    = "medication_count"
)
