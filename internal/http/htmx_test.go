package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.False(t, IsHTMX(req))

	req.Header.Set("Hx-Request", "true")
	assert.True(t, IsHTMX(req))

	req.Header.Set("Hx-Request", "TRUE")
	assert.True(t, IsHTMX(req))
}

func TestWantsPartial_HistoryRestoreGetsFullPage(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Hx-Request", "true")
	assert.True(t, WantsPartial(req))

	// A history cache miss expects a complete page, not a fragment.
	req.Header.Set("Hx-History-Restore-Request", "true")
	assert.False(t, WantsPartial(req))
}

func TestSetHXTrigger_Payload(t *testing.T) {
	w := httptest.NewRecorder()
	SetHXTrigger(w, "showToast", map[string]string{"message": "hi", "type": "success"})
	assert.JSONEq(t, `{"showToast":{"message":"hi","type":"success"}}`, w.Header().Get("Hx-Trigger"))
}

func TestSetHXTrigger_NilPayload(t *testing.T) {
	w := httptest.NewRecorder()
	SetHXTrigger(w, "refreshed", nil)
	assert.JSONEq(t, `{"refreshed":true}`, w.Header().Get("Hx-Trigger"))
}

func TestHTMXResponse_Redirect(t *testing.T) {
	w := httptest.NewRecorder()
	HTMX(w).Redirect("/login")
	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Hx-Redirect"))
}

func TestHTMXResponse_TriggerThenRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	HTMX(w).Trigger("showToast", map[string]string{"message": "saved"}).Redirect("/")
	assert.Equal(t, 204, w.Code)
	assert.NotEmpty(t, w.Header().Get("Hx-Trigger"))
	assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
}
