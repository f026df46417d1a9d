package constvars

const (
	AppointmentStatusScheduled  = "SCHEDULED"
	AppointmentStatusConfirmed  = "CONFIRMED"
	AppointmentStatusCheckedIn  = "CHECKED_IN"
	AppointmentStatusInProgress = "IN_PROGRESS"
	AppointmentStatusCompleted  = "COMPLETED"
	AppointmentStatusCancelled  = "CANCELLED"
	AppointmentStatusNoShow     = "NO_SHOW"
)

const (
	ProviderTypeDoctor     = "DOCTOR"
	ProviderTypeNurse      = "NURSE"
	AppointmentTypeDefault = "CONSULTATION"
)

const (
	FilterAll         = "all"
	DateRangeToday    = "today"
	DateRangeWeek     = "week"
	DateRangeMonth    = "month"
	DateRangeAll      = "all"
	DateRangeLast7    = "last7"
	DateRangeLast30   = "last30"
	CancelledByUser   = "Cancelled by user"
	SlotDisplayFormat = "%s (%d min)"
)

const (
	BadgePrimary   = "primary"
	BadgeSecondary = "secondary"
	BadgeSuccess   = "success"
	BadgeInfo      = "info"
	BadgeWarning   = "warning"
	BadgeDanger    = "danger"
)

const (
	ActionConfirm  = "confirm"
	ActionCancel   = "cancel"
	ActionCheckIn  = "check-in"
	ActionComplete = "complete"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCheckedIn = "appointment.checked_in"
	EventAppointmentConfirmed = "appointment.confirmed"
	EventAppointmentCompleted = "appointment.completed"
)
