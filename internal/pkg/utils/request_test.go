package utils

import (
	"bytes"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeForm(t *testing.T) {
	t.Run("Nested Medications", func(t *testing.T) {
		form := url.Values{
			"patient_id":                {"p-1"},
			"doctor_id":                 {"d-1"},
			"diagnosis":                 {"Otitis media"},
			"medications.0.medicine_id": {"m-1"},
			"medications.0.quantity":    {"14"},
			"medications.0.dosage":      {"500mg"},
			"medications.1.medicine_id": {"m-2"},
			"medications.1.quantity":    {""},
			"csrf_token":                {"ignored"},
		}
		req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(form.Encode()))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

		var got requests.PrescriptionForm
		require.NoError(t, DecodeForm(req, &got))

		assert.Equal(t, "Otitis media", got.Diagnosis)
		require.Len(t, got.Medications, 2)
		assert.Equal(t, 14, got.Medications[0].Quantity)
		assert.Equal(t, "500mg", got.Medications[0].Dosage)
		assert.Equal(t, "m-2", got.Medications[1].MedicineID)
		assert.Zero(t, got.Medications[1].Quantity, "empty values leave the zero value")
	})

	t.Run("Query String", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/appointments/list?status=CONFIRMED&date_range=week", nil)

		filters := requests.DefaultAppointmentFilters()
		require.NoError(t, DecodeForm(req, &filters))

		assert.Equal(t, "CONFIRMED", filters.Status)
		assert.Equal(t, "week", filters.DateRange)
		assert.Equal(t, constvars.FilterAll, filters.ProviderID, "missing keys keep their defaults")
	})

	t.Run("Multipart", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("status", "completed"))
		require.NoError(t, writer.WriteField("results", "Hb 13.5 g/dL"))
		part, err := writer.CreateFormFile("attachment", "report.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/laboratory/tests/t-1/results", &body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

		var got requests.LabResultForm
		require.NoError(t, DecodeForm(req, &got))
		assert.Equal(t, "completed", got.Status)
		assert.Equal(t, "Hb 13.5 g/dL", got.Results)

		file, header, err := req.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)
	})

	t.Run("Invalid Number", func(t *testing.T) {
		form := url.Values{"medications.0.quantity": {"lots"}}
		req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(form.Encode()))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

		var got requests.PrescriptionForm
		err := DecodeForm(req, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), constvars.ErrDevCannotParseForm)
	})
}

func TestFormValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chatbot?message=%20hello%20", nil)
	assert.Equal(t, "hello", FormValue(req, "message"))
}

func TestSessionCookies(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "careportal_session", "signed", 0, true)
	ClearSessionCookie(rr, "careportal_session", true)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 2)

	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	assert.Empty(t, cookies[1].Value)
	assert.Equal(t, -1, cookies[1].MaxAge)
}
