package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/lib/mail"
	"eventManager/internal/lib/password"
	"eventManager/internal/lib/token"
	"eventManager/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()

	storage, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return New(
		log,
		storage,
		password.New(bcrypt.MinCost),
		token.New("test-secret", token.DefaultTTL),
		mail.New(log, "", "Event Manager <bookings@example.com>"),
		[]string{"*"},
	)
}

func do(t *testing.T, h http.Handler, method, path, bearer, body string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), rr.Body.String())

	return rr.Code, decoded
}

func signupAndLogin(t *testing.T, h http.Handler, name, email, pass string) string {
	t.Helper()

	code, _ := do(t, h, http.MethodPost, "/signup", "",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, pass))
	require.Equal(t, http.StatusCreated, code)

	code, body := do(t, h, http.MethodPost, "/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, pass))
	require.Equal(t, http.StatusOK, code)

	tokenString, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, tokenString)

	return tokenString
}

const bookingBody = `{
	"eventId": 1,
	"name": "A",
	"email": "a@x.com",
	"phone": "+1 555 0100",
	"address": "1 Main St",
	"date": "2025-02-14",
	"time": "18:30",
	"addons": ["flowers", "lighting"],
	"totalPrice": 27500
}`

func TestBookingScenario(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	tokenA := signupAndLogin(t, h, "A", "a@x.com", "p1")

	code, body := do(t, h, http.MethodPost, "/book-event", tokenA, bookingBody)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "booking confirmed successfully", body["message"])

	bookingID, ok := body["booking_id"].(float64)
	require.True(t, ok)

	code, body = do(t, h, http.MethodGet, "/my-bookings", tokenA, "")
	require.Equal(t, http.StatusOK, code)

	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, bookings, 1)

	summary := bookings[0].(map[string]any)
	assert.Equal(t, bookingID, summary["booking_id"])
	assert.Equal(t, "Elegant Wedding", summary["title"])
	assert.Equal(t, "2025-02-14", summary["date"])

	code, body = do(t, h, http.MethodGet, fmt.Sprintf("/bookings/%d", int64(bookingID)), tokenA, "")
	require.Equal(t, http.StatusOK, code)

	booking := body["booking"].(map[string]any)
	assert.Equal(t, []any{"flowers", "lighting"}, booking["addons"])

	tokenB := signupAndLogin(t, h, "B", "b@x.com", "p2")

	code, body = do(t, h, http.MethodGet, "/my-bookings", tokenB, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["bookings"])

	code, _ = do(t, h, http.MethodGet, fmt.Sprintf("/bookings/%d", int64(bookingID)), tokenB, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAuthFailures(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	code, body := do(t, h, http.MethodGet, "/my-bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "access denied, token missing", body["error"])

	code, body = do(t, h, http.MethodPost, "/book-event", "garbage", bookingBody)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "invalid or expired token", body["error"])

	code, _ = do(t, h, http.MethodPost, "/signup", "", `{"name":"A","email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = do(t, h, http.MethodPost, "/signup", "", `{"name":"A2","email":"a@x.com","password":"p3"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "email already registered", body["error"])

	code, body = do(t, h, http.MethodPost, "/login", "", `{"email":"a@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Nil(t, body["token"])

	code, _ = do(t, h, http.MethodPost, "/login", "", `{"email":"nobody@x.com","password":"p1"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBookingUnknownTemplate(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	tokenA := signupAndLogin(t, h, "A", "a@x.com", "p1")

	code, body := do(t, h, http.MethodPost, "/book-event", tokenA,
		`{"eventId": 9999, "name": "A", "email": "a@x.com", "phone": "1", "address": "x",
		  "date": "2025-02-14", "time": "18:30", "totalPrice": 0}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "event template not found", body["error"])
}

func TestPublicCatalog(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	code, body := do(t, h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body["status"])

	code, body = do(t, h, http.MethodGet, "/event-templates", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["templates"], 25)

	code, body = do(t, h, http.MethodGet, "/event-templates/1", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Elegant Wedding", body["template"].(map[string]any)["title"])

	code, _ = do(t, h, http.MethodGet, "/event-templates/9999", "", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = do(t, h, http.MethodPost, "/events", "", `{"title":"Spring Gala","description":"Garden party","date":"2025-04-20"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "event added", body["message"])

	code, body = do(t, h, http.MethodGet, "/events", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["events"], 1)
}
