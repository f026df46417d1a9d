package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"notblank":    "is required",
	"datetime":    "must be a valid date",
	"numeric":     "must be a number",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"dive":        "is invalid",
	"not_past":    "cannot be in the past",
	"slot_option": "must be one of the available time slots",
	"email":       "must be a valid email address",
	"eqfield":     "does not match",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"min":   true,
	"max":   true,
}

// Field labels shown next to per-field validation messages.
var FieldLabels = map[string]string{
	"patient_id":       "Patient",
	"provider_id":      "Provider",
	"doctor_id":        "Doctor",
	"date":             "Date",
	"time_slot":        "Time slot",
	"reason":           "Reason",
	"username":         "Username",
	"password":         "Password",
	"diagnosis":        "Diagnosis",
	"medications":      "Medications",
	"medicine_id":      "Medicine",
	"dosage":           "Dosage",
	"frequency":        "Frequency",
	"duration":         "Duration",
	"test_type":        "Test type",
	"priority":         "Priority",
	"status":           "Status",
	"results":          "Results",
	"completion_date":  "Completion date",
	"location_type":    "Location",
	"quantity":         "Quantity",
	"payment_method":   "Payment method",
	"message":          "Message",
	"technician_notes": "Technician notes",
	"attachment":       "Attachment",
	"email":            "Email",
	"confirm_password": "Password confirmation",
	"current_password": "Current password",
	"new_password":     "New password",
	"name":             "Name",
	"phone":            "Phone",
	"first_name":       "First name",
	"last_name":        "Last name",
	"date_of_birth":    "Date of birth",
	"gender":           "Gender",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidInput                  = "please correct the highlighted fields"
	ErrClientConfirmationRequired          = "please confirm this action"
	ErrClientBackendUnavailable            = "unable to reach the server, please try again"
	ErrClientTooManyRequests               = "too many requests, please slow down"

	ErrClientFailedToLoadSlots           = "Failed to load available time slots"
	ErrClientFailedToLoadAppointments    = "Failed to load appointments"
	ErrClientFailedToScheduleAppointment = "Failed to schedule appointment"
	ErrClientFailedToCancelAppointment   = "Failed to cancel appointment"
	ErrClientFailedToCheckInAppointment  = "Failed to check in appointment"
	ErrClientFailedToConfirmAppointment  = "Failed to confirm appointment"
	ErrClientFailedToCompleteAppointment = "Failed to complete appointment"
	ErrClientFailedToLoadReferences      = "Failed to load selection lists"
	ErrClientFailedToLoadPrescriptions   = "Failed to load prescriptions"
	ErrClientFailedToCreatePrescription  = "Failed to create prescription"
	ErrClientFailedToLoadLabTests        = "Failed to load laboratory tests"
	ErrClientFailedToCreateLabTest       = "Error creating test request. Please try again."
	ErrClientFailedToSaveLabResults      = "Error saving test results. Please try again."
	ErrClientFailedToLoadInventory       = "Failed to load inventory"
	ErrClientFailedToTransferItem        = "Error transferring item"
	ErrClientFailedToLoadPayments        = "Failed to load payments"
	ErrClientFailedToProcessPayment      = "Error processing payment"
	ErrClientFailedToLogin               = "Login failed. Please check your credentials."
	ErrClientLoginFailedPrefix           = "Login failed. "
	ErrClientLoginMissingCredentials     = "Please enter both username and password."
	ErrClientLoginUnreachable            = "Network error or server not responding. Please try again later."
	ErrClientFailedToLoadProfile         = "Failed to load profile"
	ErrClientFailedToRegister            = "Registration failed."
	ErrClientFailedToUpdateProfile       = "Error updating profile"
	ErrClientFailedToChangePassword      = "Error changing password"
	ErrClientFailedToLoadPatients        = "Error loading patients. Please try again."
	ErrClientFailedToLoadPatient         = "Error loading patient details. Please try again."
	ErrClientFailedToCreatePatient       = "Error saving patient. Please try again."
	ErrClientAttachmentTooLarge          = "Attachment must be at most %d MB"

	ErrClientChatbotLoginRequired = "Please log in to use the chatbot."
	ErrClientChatbotNotUnderstood = "Sorry, I'm having trouble understanding. Please try again."
	ErrClientChatbotUnreachable   = "Sorry, I'm having trouble connecting. Please try again later."
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotParseForm          = "cannot parse form"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request to %s backend"
	ErrDevReadHTTPResponse         = "failed to read %s backend response"
	ErrDevBackendRejected          = "%s backend rejected the request with status %d"
	ErrDevBackendUnauthorized      = "%s backend rejected the bearer token"
	ErrDevDecodeBackendResponse    = "failed to decode %s backend response"
	ErrDevConfirmationRequired     = "action requires explicit confirmation"
	ErrDevAuthTokenMissing         = "auth cookie missing"
	ErrDevAuthTokenInvalid         = "auth cookie invalid or expired"
	ErrDevAuthSessionNotFound      = "session not found in redis"
	ErrDevAuthGenerateToken        = "failed to sign session token"
	ErrDevViewStateBusy            = "view state lock is held by another request"
	ErrDevTemplateRender           = "failed to render template %s"

	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisGetNoData      = "no data found in redis for key %s"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevMinioCreateObject      = "failed to create object in bucket %s"
	ErrDevMinioPresignObject     = "failed to presign object in bucket %s"
)
