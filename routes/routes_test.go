package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prestige-salon-backend/config"
	"prestige-salon-backend/services"
	"prestige-salon-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg config.Config, s store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg.SlowRequestThreshold == 0 {
		cfg.SlowRequestThreshold = time.Second
	}
	return SetupRouter(Deps{Config: cfg, Store: s, Notifier: services.NewNotifier(nil, nil, "", "")})
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const validBooking = `{
	"full_name": "Ana Hoxha",
	"phone": "+355 69 123 4567",
	"service_title": "Facial Glow",
	"preferred_date": "2026-10-20",
	"preferred_time": "14:30"
}`

func TestRoot(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.NewMemoryStore("salon"))
	w := doRequest(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Prestige Beauty Salon Backend Running"}`, w.Body.String())
}

func TestBookingRoundTrip(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.NewMemoryStore("salon"))

	w := doRequest(r, http.MethodPost, "/api/bookings", validBooking)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	require.NotEmpty(t, created.ID)

	w = doRequest(r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	bookings := decodeList(t, w)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, created.ID, b["id"])
	assert.NotContains(t, b, "_id")
	assert.Equal(t, "Ana Hoxha", b["full_name"])
	assert.Equal(t, "+355 69 123 4567", b["phone"])
	assert.Equal(t, "Facial Glow", b["service_title"])
	assert.Equal(t, "2026-10-20", b["preferred_date"])
	assert.Equal(t, "14:30", b["preferred_time"])
	assert.Equal(t, "pending", b["status"])
	assert.Contains(t, b, "email")
	assert.Nil(t, b["email"])
	assert.Nil(t, b["notes"])
}

func TestBookingKeepsExplicitStatus(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.NewMemoryStore("salon"))
	body := strings.Replace(validBooking, `"preferred_time": "14:30"`, `"preferred_time": "14:30", "status": "whatever"`, 1)

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/bookings", body).Code)
	bookings := decodeList(t, doRequest(r, http.MethodGet, "/api/bookings", ""))
	require.Len(t, bookings, 1)
	assert.Equal(t, "whatever", bookings[0]["status"])
}

func TestBookingValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"invalid email", strings.Replace(validBooking, `"phone"`, `"email": "not-an-email", "phone"`, 1), "email"},
		{"missing phone", `{"full_name":"Ana","service_title":"Facial Glow","preferred_date":"2026-10-20","preferred_time":"14:30"}`, "phone"},
		{"wrong type", strings.Replace(validBooking, `"Ana Hoxha"`, `42`, 1), "full_name"},
		{"empty body", "", "body"},
		{"null status", strings.Replace(validBooking, `"phone"`, `"status": null, "phone"`, 1), "status"},
		{"null full name", strings.Replace(validBooking, `"Ana Hoxha"`, `null`, 1), "full_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore("salon")
			r := newTestRouter(t, config.Config{}, s)

			w := doRequest(r, http.MethodPost, "/api/bookings", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp struct {
				Detail []struct {
					Field string `json:"field"`
				} `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
			var fields []string
			for _, d := range resp.Detail {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.wantField)
			assert.Equal(t, 0, s.Count(store.KindBooking))
		})
	}
}

func TestBookingLimit(t *testing.T) {
	s := store.NewMemoryStore("salon")
	for i := 1; i <= 25; i++ {
		_, err := s.CreateDocument(context.Background(), store.KindBooking, store.Document{
			"full_name": fmt.Sprintf("Client %d", i),
			"status":    "pending",
		})
		require.NoError(t, err)
	}
	r := newTestRouter(t, config.Config{}, s)

	bookings := decodeList(t, doRequest(r, http.MethodGet, "/api/bookings?limit=2", ""))
	require.Len(t, bookings, 2)
	assert.Equal(t, "Client 1", bookings[0]["full_name"])
	assert.Equal(t, "Client 2", bookings[1]["full_name"])

	assert.Len(t, decodeList(t, doRequest(r, http.MethodGet, "/api/bookings", "")), 20)
	assert.Len(t, decodeList(t, doRequest(r, http.MethodGet, "/api/bookings?limit=100", "")), 25)
	assert.Empty(t, decodeList(t, doRequest(r, http.MethodGet, "/api/bookings?limit=0", "")))

	assert.Equal(t, http.StatusUnprocessableEntity, doRequest(r, http.MethodGet, "/api/bookings?limit=-1", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, doRequest(r, http.MethodGet, "/api/bookings?limit=abc", "").Code)
}

func TestServicesSeededOnce(t *testing.T) {
	s := store.NewMemoryStore("salon")
	r := newTestRouter(t, config.Config{}, s)

	first := decodeList(t, doRequest(r, http.MethodGet, "/api/services", ""))
	require.Len(t, first, 3)
	want := []struct {
		title    string
		price    float64
		duration float64
	}{
		{"Haircut & Styling", 25, 45},
		{"Manicure & Gel", 20, 60},
		{"Facial Glow", 35, 50},
	}
	for i, w := range want {
		assert.Equal(t, w.title, first[i]["title"])
		assert.Equal(t, w.price, first[i]["price"])
		assert.Equal(t, w.duration, first[i]["duration_minutes"])
		assert.NotEmpty(t, first[i]["id"])
		assert.NotContains(t, first[i], "_id")
	}

	second := decodeList(t, doRequest(r, http.MethodGet, "/api/services", ""))
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i]["id"], second[i]["id"])
	}
	assert.Equal(t, 3, s.Count(store.KindService))
}

func TestContactMessage(t *testing.T) {
	s := store.NewMemoryStore("salon")
	r := newTestRouter(t, config.Config{}, s)

	w := doRequest(r, http.MethodPost, "/api/contact", `{"full_name":"Ana","message":"Hello"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"subject"`)
	assert.Equal(t, 0, s.Count(store.KindContactMessage))

	w = doRequest(r, http.MethodPost, "/api/contact", `{"full_name":"Ana","subject":"Prices","message":"Hello","email":"ana@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, 1, s.Count(store.KindContactMessage))
}

func TestEmptyRequiredTextIsPresent(t *testing.T) {
	s := store.NewMemoryStore("salon")
	r := newTestRouter(t, config.Config{}, s)

	body := strings.Replace(validBooking, `"Ana Hoxha"`, `""`, 1)
	w := doRequest(r, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	bookings := decodeList(t, doRequest(r, http.MethodGet, "/api/bookings", ""))
	require.Len(t, bookings, 1)
	assert.Equal(t, "", bookings[0]["full_name"])

	w = doRequest(r, http.MethodPost, "/api/contact", `{"full_name":"Ana","subject":"","message":""}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, s.Count(store.KindContactMessage))

	w = doRequest(r, http.MethodPost, "/api/contact", `{"full_name":"Ana","message":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"detail":[{"field":"subject","reason":"field required"}]}`, w.Body.String())
	assert.Equal(t, 1, s.Count(store.KindContactMessage))
}

func TestStoreUnavailable(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.Unavailable{})

	w := doRequest(r, http.MethodPost, "/api/bookings", validBooking)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"create booking: database not available"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/services", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"get service: database not available"}`, w.Body.String())

	// Validation still runs before any store access.
	w = doRequest(r, http.MethodPost, "/api/contact", `{"full_name":"Ana"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSocialFeeds(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.NewMemoryStore("salon"))
	assert.JSONEq(t, `[]`, doRequest(r, http.MethodGet, "/api/social/instagram", "").Body.String())
	assert.JSONEq(t, `[]`, doRequest(r, http.MethodGet, "/api/social/facebook", "").Body.String())
	assert.JSONEq(t, `{"instagram_username":null,"facebook_page":null}`,
		doRequest(r, http.MethodGet, "/api/social/config", "").Body.String())

	r = newTestRouter(t, config.Config{InstagramUsername: "salon", FacebookPage: "prestige"}, store.NewMemoryStore("salon"))
	posts := decodeList(t, doRequest(r, http.MethodGet, "/api/social/instagram", ""))
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.True(t, strings.HasSuffix(p["permalink"].(string), "/salon"))
	}

	fb := decodeList(t, doRequest(r, http.MethodGet, "/api/social/facebook", ""))
	require.Len(t, fb, 1)
	assert.Equal(t, "https://facebook.com/prestige", fb[0]["permalink"])
	assert.JSONEq(t, `{"instagram_username":"salon","facebook_page":"prestige"}`,
		doRequest(r, http.MethodGet, "/api/social/config", "").Body.String())
}

func TestDiagnostics(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.Unavailable{})
	w := doRequest(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"backend": "✅ Running",
		"database": "⚠️  Available but not initialized",
		"database_url": null,
		"database_name": null,
		"connection_status": "Not Connected",
		"collections": []
	}`, w.Body.String())

	s := store.NewMemoryStore("salon")
	r = newTestRouter(t, config.Config{DatabaseURL: "memory://"}, s)
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/bookings", validBooking).Code)
	w = doRequest(r, http.MethodGet, "/test", "")
	assert.JSONEq(t, `{
		"backend": "✅ Running",
		"database": "✅ Connected & Working",
		"database_url": "✅ Set",
		"database_name": "salon",
		"connection_status": "Connected",
		"collections": ["booking"]
	}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, config.Config{}, store.NewMemoryStore("salon"))

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://prestige.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-custom-thing")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://prestige.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "content-type,x-custom-thing", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, w.Header().Values("Vary"), "Access-Control-Request-Headers")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://prestige.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://prestige.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Headers"))
}
