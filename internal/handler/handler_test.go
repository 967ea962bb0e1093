package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// jsonCall runs one handler against a synthetic JSON request and returns
// the recorder. Handlers write their own error responses, so the returned
// error is only consulted for the pathID 400 case.
func jsonCall(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for k, v := range params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	h := &AuthHandler{}
	rec := jsonCall(t, h.Register, http.MethodPost, "/auth/register",
		`{"dni":"123","full_name":"A B","email":"a@b.c","password":"pw","role_id":9}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid role") {
		t.Fatalf("body = %s, want invalid role error", rec.Body.String())
	}
}

func TestRegisterRequiresIdentityFields(t *testing.T) {
	h := &AuthHandler{}
	rec := jsonCall(t, h.Register, http.MethodPost, "/auth/register",
		`{"dni":"  ","full_name":"","email":""}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	h := &AuthHandler{}
	rec := jsonCall(t, h.Login, http.MethodPost, "/auth/login", `{"dni":"123"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateOrderRequiresItems(t *testing.T) {
	h := &OrderHandler{}
	rec := jsonCall(t, h.Create, http.MethodPost, "/orders", `{"items":[]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "items required") {
		t.Fatalf("body = %s, want items required error", rec.Body.String())
	}
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	h := &OrderHandler{}
	rec := jsonCall(t, h.Create, http.MethodPost, "/orders",
		`{"items":[{"menu_item_id":1,"quantity":0}]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateOrderStatusRejectsUnknownState(t *testing.T) {
	h := &OrderHandler{}
	rec := jsonCall(t, h.UpdateStatus, http.MethodPut, "/orders/1/status",
		`{"status":"flying"}`, map[string]string{"id": "1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPathIDRejectsGarbage(t *testing.T) {
	h := &OrderHandler{}
	rec := jsonCall(t, h.Get, http.MethodGet, "/orders/abc", "", map[string]string{"id": "abc"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateReservationRequiresWindow(t *testing.T) {
	h := &ReservationHandler{}
	rec := jsonCall(t, h.Create, http.MethodPost, "/reservations", `{"table_id":1}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateReservationRejectsInvertedWindow(t *testing.T) {
	h := &ReservationHandler{}
	rec := jsonCall(t, h.Create, http.MethodPost, "/reservations",
		`{"table_id":1,"start_at":"2026-09-01T20:00:00Z","end_at":"2026-09-01T19:00:00Z"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "end_at must be after start_at") {
		t.Fatalf("body = %s, want window error", rec.Body.String())
	}
}

func TestCreateTableRequiresCodeAndSeats(t *testing.T) {
	h := &TableHandler{}
	rec := jsonCall(t, h.Create, http.MethodPost, "/tables", `{"code":"T1","seats":0}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
