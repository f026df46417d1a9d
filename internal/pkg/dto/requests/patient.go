package requests

// PatientForm is posted to the patient registry with the camelCase keys it
// expects. Status is set by the portal, never by the browser.
type PatientForm struct {
	FirstName             string `form:"first_name" json:"firstName" validate:"required,notblank"`
	LastName              string `form:"last_name" json:"lastName" validate:"required,notblank"`
	DateOfBirth           string `form:"date_of_birth" json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender                string `form:"gender" json:"gender" validate:"required,oneof=male female other"`
	Phone                 string `form:"phone" json:"phone"`
	Email                 string `form:"email" json:"email" validate:"omitempty,email"`
	Address               string `form:"address" json:"address"`
	EmergencyContactName  string `form:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactPhone string `form:"emergency_contact_phone" json:"emergencyContactPhone"`
	Status                string `form:"-" json:"status"`
}

type PatientFilters struct {
	Search string `form:"search"`
	Status string `form:"status"`
}
