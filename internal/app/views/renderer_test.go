package views

import (
	"bytes"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer(time.UTC)
	require.NoError(t, err)
	return renderer
}

func sampleAppointmentPage() *models.AppointmentPage {
	return &models.AppointmentPage{
		Filters:  requests.DefaultAppointmentFilters(),
		Doctors:  []responses.Provider{{ID: "d-1", FirstName: "Ann", LastName: "Smith", Specialization: "Cardiology"}},
		Patients: []responses.Patient{{ID: "p-1", FirstName: "Jane", LastName: "Doe"}},
		Today:    "2024-05-06",
		Booking: models.BookingState{Selector: models.SlotSelector{
			State:    models.SelectorIdle,
			Message:  "Select a provider and date first",
			Disabled: true,
		}},
	}
}

func TestRendererPages(t *testing.T) {
	renderer := newTestRenderer(t)
	session := &models.Session{SessionID: "s-1", Username: "drsmith", DisplayName: "Dr Smith"}
	start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	expires := start.AddDate(0, 0, 10)
	appointmentPage := sampleAppointmentPage()

	cases := []struct {
		name     string
		page     *Page
		contains []string
	}{
		{
			name:     "login",
			page:     &Page{Title: "Sign in", Data: &LoginView{Message: "Login failed. Invalid credentials"}},
			contains: []string{`hx-post="/login"`, "Login failed. Invalid credentials"},
		},
		{
			name: "appointments",
			page: &Page{Title: "Appointments", Active: "appointments", Session: session, Data: &AppointmentsView{
				Page:     appointmentPage,
				Statuses: []string{constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCheckedIn},
				List: AppointmentListView{Appointments: []responses.Appointment{{
					ID:          "a-1",
					PatientName: "Jane Doe",
					Slot:        responses.TimeSlot{Start: start, End: start.Add(30 * time.Minute)},
					Status:      constvars.AppointmentStatusScheduled,
				}}},
				Booking: BookingFormView{Page: appointmentPage, Form: &requests.BookingForm{}},
			}},
			contains: []string{"Jane Doe", "09:00", `hx-post="/appointments/a-1/cancel"`, "Select a provider and date first", `ws-connect="/chatbot/ws"`},
		},
		{
			name: "prescriptions",
			page: &Page{Title: "Prescriptions", Session: session, Data: &PrescriptionsView{
				List: PrescriptionListView{Prescriptions: []responses.Prescription{{ID: "rx-1", PatientName: "Jane Doe", Diagnosis: "Otitis media", Status: "active", PrescribedAt: start}}},
				Form: PrescriptionFormView{Lists: &models.ReferenceLists{Failed: true}, Form: &requests.PrescriptionForm{}},
			}},
			contains: []string{"Otitis media", "Failed to load selection lists", `name="medications.0.medicine_id"`},
		},
		{
			name: "laboratory",
			page: &Page{Title: "Laboratory", Session: session, Data: &LabView{
				List: LabListView{Tests: []responses.LabTest{{ID: "t-1", PatientName: "Jane Doe", TestType: "CBC", Status: "pending", Priority: "urgent"}}},
				Form: LabFormView{Lists: &models.ReferenceLists{}, Form: &requests.LabTestForm{}},
			}},
			contains: []string{"CBC", `hx-post="/laboratory/tests/t-1/results"`, `hx-encoding="multipart/form-data"`},
		},
		{
			name: "inventory",
			page: &Page{Title: "Inventory", Session: session, Data: &InventoryView{Page: &models.InventoryPage{
				Items: []responses.InventoryItem{{ID: "i-1", Name: "Gauze", Quantity: 4, Unit: "box", Status: "Low Stock", ExpiresOn: &expires}},
				Stats: responses.InventoryStats{Total: 1, LowStock: 1},
			}}},
			contains: []string{"Gauze", "16 May 2024", `hx-post="/inventory/items/i-1/transfer"`},
		},
		{
			name:     "payments",
			page:     &Page{Title: "Payments", Session: session, Data: &PaymentsView{Failed: true}},
			contains: []string{"Failed to load payments"},
		},
		{
			name: "profile",
			page: &Page{Title: "Profile", Session: session, Data: &ProfileView{
				Details:  ProfileDetailsView{Profile: &responses.Profile{Username: "drsmith", Email: "smith@example.com"}},
				Form:     ProfileFormView{Form: &requests.ProfileForm{Name: "Dr Smith"}},
				Password: PasswordFormView{Form: &requests.ChangePasswordForm{}},
			}},
			contains: []string{"drsmith", "Not provided", `value="Dr Smith"`, `hx-post="/profile/password"`},
		},
		{
			name: "profile",
			page: &Page{Title: "Profile", Session: session, Data: &ProfileView{
				Form:     ProfileFormView{Form: &requests.ProfileForm{}},
				Password: PasswordFormView{Form: &requests.ChangePasswordForm{}},
			}},
			contains: []string{"Failed to load profile", `hx-post="/profile"`},
		},
		{
			name:     "register",
			page:     &Page{Title: "Register", Data: &RegisterView{Form: &requests.RegisterForm{Username: "jroe"}}},
			contains: []string{`hx-post="/register"`, `value="jroe"`, `name="confirm_password"`},
		},
		{
			name: "patients",
			page: &Page{Title: "Patients", Session: session, Data: &PatientsView{
				List: PatientListView{Patients: []responses.PatientRecord{
					{ID: "p-1", FirstName: "Jane", LastName: "Doe", DateOfBirth: &expires, Status: "active"},
					{ID: "p-2", FirstName: "Sam", Status: "inactive"},
				}},
				Form: PatientFormView{Form: &requests.PatientForm{}},
			}},
			contains: []string{"Jane Doe", "16 May 2024", "text-bg-success", "text-bg-secondary", `hx-get="/patients/p-1"`, `hx-post="/patients"`},
		},
		{
			name:     "error",
			page:     &Page{Title: "Appointments", Session: session, Data: constvars.ErrClientFailedToLoadAppointments},
			contains: []string{constvars.ErrClientFailedToLoadAppointments},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderer.Page(&buf, tc.name, tc.page))
			for _, want := range tc.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRendererFragments(t *testing.T) {
	renderer := newTestRenderer(t)

	t.Run("Booking Form With Errors", func(t *testing.T) {
		var buf bytes.Buffer
		err := renderer.Fragment(&buf, "booking_form", BookingFormView{
			Page:        sampleAppointmentPage(),
			Form:        &requests.BookingForm{PatientID: "p-1", Reason: "Follow-up"},
			FieldErrors: exceptions.FieldErrors{"time_slot": "Time slot is required"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Time slot is required")
		assert.Contains(t, buf.String(), `<option value="p-1" selected>`)
		assert.Contains(t, buf.String(), "Follow-up")
	})

	t.Run("Out Of Band List", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "appointment_list", AppointmentListView{OOB: true}))
		assert.Contains(t, buf.String(), `hx-swap-oob="outerHTML"`)
		assert.Contains(t, buf.String(), "No appointments found")
	})

	t.Run("Populated Slot Selector", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "slot_selector", models.BookingState{
			Selector: models.SlotSelector{
				State: models.SelectorPopulated,
				Options: []models.SlotOption{
					{Value: "slot-1", Label: "09:00 (30 min)"},
					{Value: "slot-2", Label: "09:30 (30 min)", Disabled: true},
				},
			},
		}))
		assert.Contains(t, buf.String(), `<option value="slot-1">09:00 (30 min)</option>`)
		assert.Contains(t, buf.String(), `<option value="slot-2" disabled>`)
	})

	t.Run("Booking Form Keeps Selected Slot", func(t *testing.T) {
		page := sampleAppointmentPage()
		page.Booking = models.BookingState{
			ProviderID: "d-1",
			Date:       "2024-05-07",
			Selector: models.SlotSelector{
				State: models.SelectorPopulated,
				Options: []models.SlotOption{
					{Value: "slot-1", Label: "09:00 (30 min)"},
					{Value: "slot-2", Label: "09:30 (30 min)"},
				},
			},
			SelectedSlotID: "slot-2",
		}

		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "booking_form", BookingFormView{
			Page:        page,
			Form:        &requests.BookingForm{ProviderID: "d-1", Date: "2024-05-07", TimeSlot: "slot-2"},
			FieldErrors: exceptions.FieldErrors{"reason": "Reason is required"},
		}))
		assert.Contains(t, buf.String(), `<option value="slot-2" selected>09:30 (30 min)</option>`)
		assert.Contains(t, buf.String(), `<option value="slot-1">09:00 (30 min)</option>`)
		assert.Contains(t, buf.String(), "Reason is required")
	})

	t.Run("Registered Form Hides Inputs", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "register_form", RegisterView{
			Form:       &requests.RegisterForm{Username: "jroe"},
			Registered: true,
			Message:    constvars.RegistrationSuccessMessage,
		}))
		assert.Contains(t, buf.String(), constvars.RegistrationSuccessMessage)
		assert.Contains(t, buf.String(), `href="/login"`)
		assert.NotContains(t, buf.String(), `name="password"`)
	})

	t.Run("Patient Form With Errors", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "patient_form", PatientFormView{
			Form:        &requests.PatientForm{FirstName: "Jane", Gender: "female"},
			FieldErrors: exceptions.FieldErrors{"last_name": "Last name is required"},
		}))
		assert.Contains(t, buf.String(), `form-control is-invalid" id="patient-last-name"`)
		assert.Contains(t, buf.String(), "Last name is required")
		assert.Contains(t, buf.String(), `<option value="female" selected>Female</option>`)
	})

	t.Run("Profile Details Out Of Band", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "profile_details", ProfileDetailsView{
			Profile: &responses.Profile{FirstName: "Grace", LastName: "Hopper", Phone: "555-0101"},
			OOB:     true,
		}))
		assert.Contains(t, buf.String(), `id="profile-details" hx-swap-oob="outerHTML"`)
		assert.Contains(t, buf.String(), "Grace Hopper")
		assert.Contains(t, buf.String(), "555-0101")
	})

	t.Run("Chat Reply Is Escaped", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.Fragment(&buf, "chat_reply", ChatReplyView{Message: "<b>hi</b>", Reply: "Hello"}))
		assert.Contains(t, buf.String(), "&lt;b&gt;hi&lt;/b&gt;")
		assert.NotContains(t, buf.String(), "<b>hi</b>")
	})

	t.Run("Unknown Fragment", func(t *testing.T) {
		var buf bytes.Buffer
		err := renderer.Fragment(&buf, "missing", nil)
		require.Error(t, err)
		assert.Empty(t, buf.String(), "nothing is written when rendering fails")
	})
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Checked in", humanize(constvars.AppointmentStatusCheckedIn))
	assert.Equal(t, "In progress", humanize("in_progress"))
	assert.Equal(t, "", humanize(""))
}
