package utils

import (
	"careportal-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHXTriggers(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHXTriggers().
		Notify(constvars.NotifyLevelSuccess, constvars.AppointmentScheduledSuccessMessage).
		Event(constvars.CloseModalEvent).
		Write(rr)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rr.Header().Get(constvars.HeaderHXTrigger)), &payload))

	assert.Equal(t, true, payload[constvars.CloseModalEvent])
	notify, ok := payload[constvars.NotifyEventName].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, constvars.NotifyLevelSuccess, notify["level"])
	assert.Equal(t, constvars.AppointmentScheduledSuccessMessage, notify["message"])
}

func TestHXTriggersEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHXTriggers().Write(rr)
	assert.Empty(t, rr.Header().Get(constvars.HeaderHXTrigger))
}

func TestRedirectToLogin(t *testing.T) {
	t.Run("Page Load", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RedirectToLogin(rr, httptest.NewRequest(http.MethodGet, "/appointments", nil))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("Fragment Request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/appointments/list", nil)
		req.Header.Set(constvars.HeaderHXRequest, "true")
		rr := httptest.NewRecorder()
		RedirectToLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get(constvars.HeaderHXRedirect))
	})
}

func TestDiscardStale(t *testing.T) {
	rr := httptest.NewRecorder()
	DiscardStale(rr)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, constvars.HXReswapNone, rr.Header().Get(constvars.HeaderHXReswap))
}
