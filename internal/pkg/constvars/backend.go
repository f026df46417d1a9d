package constvars

// Backend resources, used for error context and metrics labels.
const (
	ResourceAppointments  = "appointments"
	ResourceTimeSlots     = "timeslots"
	ResourceDoctors       = "doctors"
	ResourcePatients      = "patients"
	ResourceMedicines     = "medicines"
	ResourcePrescriptions = "prescriptions"
	ResourceLabTests      = "laboratory_tests"
	ResourceInventory     = "inventory_items"
	ResourcePayments      = "payments"
	ResourceAuth          = "auth"
	ResourceProfile       = "profile"
	ResourceChatbot       = "chatbot"
)

const (
	EndpointAppointments              = "/api/appointments/"
	EndpointAppointmentDetailFormat   = "/api/appointments/%s/"
	EndpointAppointmentCancelFormat   = "/api/appointments/%s/cancel/"
	EndpointAppointmentCheckInFormat  = "/api/appointments/%s/check_in/"
	EndpointAppointmentCompleteFormat = "/api/appointments/%s/complete/"
	EndpointAvailableTimeSlots        = "/api/appointments/timeslots/available/"

	EndpointDoctors   = "/api/doctors/"
	EndpointPatients  = "/api/patients/"
	EndpointMedicines = "/api/medicines/"

	EndpointPatientDetailFormat = "/api/patients/%s/"

	EndpointPrescriptions            = "/api/prescriptions/"
	EndpointPrescriptionDetailFormat = "/api/prescriptions/%s/"

	EndpointLabTests             = "/api/laboratory/tests/"
	EndpointLabTestResultsFormat = "/api/laboratory/tests/%s/results/"

	EndpointInventoryItems          = "/api/inventory/items/"
	EndpointInventoryTransferFormat = "/api/inventory/items/%s/transfer/"

	EndpointPaymentsPending      = "/api/payments/pending/"
	EndpointPaymentsHistory      = "/api/payments/history/"
	EndpointPaymentProcessFormat = "/api/payments/%s/process/"

	EndpointAuthToken          = "/api/auth/token/"
	EndpointAuthRegister       = "/api/auth/register/"
	EndpointAuthProfile        = "/api/auth/profile/"
	EndpointAuthProfileUpdate  = "/api/auth/profile/update/"
	EndpointAuthChangePassword = "/api/auth/change-password/"
	EndpointChatbot            = "/api/chatbot/"
)

// Query parameters understood by the backend list endpoints.
const (
	QueryStartDate    = "start_date"
	QueryEndDate      = "end_date"
	QueryStatus       = "status"
	QueryProviderID   = "provider_id"
	QueryProviderType = "provider_type"
	QueryItemType     = "item_type"
	QueryLocationType = "location_type"
	QueryTestType     = "test_type"
	QuerySearch       = "search"
)
