package normalize

import (
	"careportal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestNormalizer() (*Normalizer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return NewNormalizer(zap.New(core), time.UTC), logs
}

func TestRecords(t *testing.T) {
	t.Run("Bare Array", func(t *testing.T) {
		records, err := Records([]byte(`[{"id":1},{"id":2}]`))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Results Envelope", func(t *testing.T) {
		records, err := Records([]byte(`{"count":1,"next":null,"results":[{"id":"a"}]}`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "a", records[0].Get("id").String())
	})

	t.Run("Object Without Results", func(t *testing.T) {
		_, err := Records([]byte(`{"detail":"not found"}`))
		assert.ErrorIs(t, err, ErrNotAList)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := Records([]byte(`<html>`))
		assert.ErrorIs(t, err, ErrNotAList)
	})
}

func TestTimeSlots(t *testing.T) {
	normalizer, logs := newTestNormalizer()

	body := []byte(`[
		{"id":"s1","start_time":"2024-06-10T09:00","end_time":"2024-06-10T09:30","provider_id":7},
		{"id":"s2","start":"2024-06-10T09:30:00Z","end":"2024-06-10T10:00:00Z"},
		{"id":"s3","start_time":"2024-06-10T10:00"}
	]`)

	slots, err := normalizer.TimeSlots(body)
	require.NoError(t, err)
	require.Len(t, slots, 2, "slot without an end time should be dropped")

	assert.Equal(t, "s1", slots[0].ID)
	assert.Equal(t, "7", slots[0].ProviderID)
	assert.Equal(t, "09:00 (30 min)", slots[0].Label())
	assert.Equal(t, "09:30 (30 min)", slots[1].Label())

	require.Equal(t, 1, logs.Len(), "dropped record should be logged")
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "end_time", entry.ContextMap()[constvars.LoggingFieldKey])
	assert.EqualValues(t, 2, entry.ContextMap()[constvars.LoggingRecordIndexKey])
}

func TestAppointment(t *testing.T) {
	normalizer, logs := newTestNormalizer()

	t.Run("Expanded Slot Object", func(t *testing.T) {
		body := []byte(`{"results":[{
			"id": 12,
			"patient_id": 3,
			"patient_name": "Jane Roe",
			"provider_id": 7,
			"provider_name": "Dr. Alice",
			"provider_type": "doctor",
			"time_slot": {"id": "s1", "start_time": "2024-06-10T09:00", "end_time": "2024-06-10T09:30"},
			"reason": "checkup",
			"status": "scheduled"
		}]}`)

		appointments, err := normalizer.Appointments(body)
		require.NoError(t, err)
		require.Len(t, appointments, 1)

		appointment := appointments[0]
		assert.Equal(t, "12", appointment.ID)
		assert.Equal(t, "3", appointment.PatientID)
		assert.Equal(t, "Jane Roe", appointment.PatientName)
		assert.Equal(t, "DOCTOR", appointment.ProviderType)
		assert.Equal(t, "s1", appointment.Slot.ID)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
		assert.Equal(t, 30, appointment.Slot.DurationMinutes())
	})

	t.Run("Slot Details Next To Slot ID", func(t *testing.T) {
		body := []byte(`[{
			"appointment_id": "a-1",
			"patient": {"id": 3, "first_name": "Jane", "last_name": "Roe"},
			"provider_id": 7,
			"time_slot": "s9",
			"time_slot_details": {"start": "2024-06-10T11:00", "end": "2024-06-10T11:45"},
			"status": "CONFIRMED"
		}]`)

		appointments, err := normalizer.Appointments(body)
		require.NoError(t, err)
		require.Len(t, appointments, 1)

		appointment := appointments[0]
		assert.Equal(t, "a-1", appointment.ID)
		assert.Equal(t, "3", appointment.PatientID)
		assert.Equal(t, "Jane Roe", appointment.PatientName)
		assert.Equal(t, "s9", appointment.Slot.ID)
		assert.Equal(t, constvars.UnknownProviderLabel, appointment.ProviderName)
		assert.Equal(t, 45, appointment.Slot.DurationMinutes())
	})

	t.Run("Missing Status Is Dropped And Logged", func(t *testing.T) {
		before := logs.Len()
		body := []byte(`[{"id":1,"patient_id":2,"provider_id":3,"start_time":"2024-06-10T09:00","end_time":"2024-06-10T09:30"}]`)

		appointments, err := normalizer.Appointments(body)
		require.NoError(t, err)
		assert.Empty(t, appointments)
		assert.Equal(t, before+1, logs.Len())
	})
}

func TestPeople(t *testing.T) {
	normalizer, _ := newTestNormalizer()

	t.Run("Doctor Keyed By User ID", func(t *testing.T) {
		doctors, err := normalizer.Doctors([]byte(`[{"id":1,"user_id":7,"first_name":"Alice","last_name":"Smith","specialization":"Cardiology"}]`))
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "7", doctors[0].ID)
		assert.Equal(t, "Alice Smith", doctors[0].FullName())
		assert.Equal(t, "Cardiology", doctors[0].Specialization)
	})

	t.Run("Nested User Object", func(t *testing.T) {
		patients, err := normalizer.Patients([]byte(`[{"id":4,"user":{"id":9,"first_name":"Bob","last_name":"Lee"}}]`))
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "9", patients[0].ID)
		assert.Equal(t, "Bob Lee", patients[0].FullName())
	})

	t.Run("Medicine Without Name Is Dropped", func(t *testing.T) {
		medicines, err := normalizer.Medicines([]byte(`[{"id":1,"name":"Amoxicillin"},{"id":2}]`))
		require.NoError(t, err)
		require.Len(t, medicines, 1)
		assert.Equal(t, "Amoxicillin", medicines[0].Name)
	})
}

func TestPrescriptions(t *testing.T) {
	normalizer, _ := newTestNormalizer()

	body := []byte(`[
		{"prescription_id":"p1","patientName":"Jane Roe","doctor_name":"Dr. Alice","status":"ACTIVE",
		 "date_prescribed":"2024-06-10T08:00:00Z","diagnosis":"Flu",
		 "medications":[{"medicine_id":5,"medicine_name":"Oseltamivir","dosage":"75mg","frequency":"twice daily","duration":"5 days"}]},
		{"id":"p2","status":"completed","created_at":"2024-06-01"}
	]`)

	prescriptions, err := normalizer.Prescriptions(body)
	require.NoError(t, err)
	require.Len(t, prescriptions, 2)

	assert.Equal(t, "p1", prescriptions[0].ID)
	assert.Equal(t, "Jane Roe", prescriptions[0].PatientName)
	assert.Equal(t, constvars.PrescriptionStatusActive, prescriptions[0].Status)
	require.Len(t, prescriptions[0].Medications, 1)
	assert.Equal(t, "5", prescriptions[0].Medications[0].MedicineID)
	assert.Equal(t, "75mg", prescriptions[0].Medications[0].Dosage)

	assert.Equal(t, constvars.UnknownPatientLabel, prescriptions[1].PatientName)
	assert.Equal(t, constvars.UnknownDoctorLabel, prescriptions[1].DoctorName)
	assert.Empty(t, prescriptions[1].Medications)
}

func TestClinicalLists(t *testing.T) {
	normalizer, _ := newTestNormalizer()

	t.Run("Lab Tests", func(t *testing.T) {
		tests, err := normalizer.LabTests([]byte(`[{"id":1,"testType":"Blood Panel","status":"PENDING","requestedDate":"2024-06-10T08:00:00Z","patientName":"Jane"}]`))
		require.NoError(t, err)
		require.Len(t, tests, 1)
		assert.Equal(t, "Blood Panel", tests[0].TestType)
		assert.Equal(t, constvars.LabTestStatusPending, tests[0].Status)
		assert.Equal(t, constvars.LabPriorityRoutine, tests[0].Priority)
		assert.Nil(t, tests[0].CompletedAt)
	})

	t.Run("Inventory Items", func(t *testing.T) {
		items, err := normalizer.InventoryItems([]byte(`[{"id":1,"item_name":"Gauze","item_type":"supply","location_type":"clinic","quantity":"12","unit_of_measure":"box","status":"Available","expiration_date":"2025-01-01"}]`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 12, items[0].Quantity)
		require.NotNil(t, items[0].ExpiresOn)
		assert.Equal(t, 2025, items[0].ExpiresOn.Year())
	})

	t.Run("Payments", func(t *testing.T) {
		payments, err := normalizer.Payments([]byte(`{"results":[{"id":3,"reference_number":"INV-3","amount":"150.50","status":"PENDING","created_at":"2024-06-10T08:00:00Z"},{"id":4,"status":"pending","created_at":"2024-06-10"}]}`))
		require.NoError(t, err)
		require.Len(t, payments, 1, "payment without amount should be dropped")
		assert.Equal(t, "INV-3", payments[0].Reference)
		assert.InDelta(t, 150.50, payments[0].Amount, 0.001)
		assert.Equal(t, constvars.PaymentStatusPending, payments[0].Status)
	})
}

func TestProfile(t *testing.T) {
	normalizer, _ := newTestNormalizer()

	profile, err := normalizer.Profile([]byte(`{"id":42,"username":"jroe","first_name":"Jane","last_name":"Roe","user_type":"PATIENT"}`))
	require.NoError(t, err)
	assert.Equal(t, "42", profile.ID)
	assert.Equal(t, "Jane Roe", profile.DisplayName())
	assert.Equal(t, "PATIENT", profile.Role)
	assert.Empty(t, profile.Phone)

	_, err = normalizer.Profile([]byte(`{"username":"jroe"}`))
	var missing *MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestPatientRecords(t *testing.T) {
	normalizer, logs := newTestNormalizer()

	records, err := normalizer.PatientRecords([]byte(`{"results":[
		{"id":7,"firstName":"Jane","lastName":"Doe","dateOfBirth":"1990-04-12","gender":"Female","phone":"555-0101","status":"inactive",
		 "emergencyContactName":"John Doe","emergencyContactPhone":"555-0102"},
		{"id":8,"first_name":"Sam"},
		{"lastName":"Nobody"}
	]}`))
	require.NoError(t, err)
	require.Len(t, records, 2, "record without an id should be dropped")
	assert.Equal(t, 1, logs.Len())

	assert.Equal(t, "7", records[0].ID)
	assert.Equal(t, "Jane Doe", records[0].FullName())
	require.NotNil(t, records[0].DateOfBirth)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), *records[0].DateOfBirth)
	assert.Equal(t, constvars.GenderFemale, records[0].Gender)
	assert.Equal(t, "John Doe", records[0].EmergencyContactName)
	assert.False(t, records[0].Active())

	assert.Nil(t, records[1].DateOfBirth)
	assert.True(t, records[1].Active(), "missing status reads as active")

	detail, err := normalizer.PatientDetail([]byte(`{"id":"p-3","first_name":"Ada","email":"ada@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", detail.Email)

	_, err = normalizer.PatientDetail([]byte(`[]`))
	assert.Error(t, err)
}
