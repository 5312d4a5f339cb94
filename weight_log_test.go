package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lg/fitcoach-go-api/internal/workout"
)

// setupWeightLogTest mounts the weight-log routes without a database. Only
// the validation paths that answer before any query are exercised.
func setupWeightLogTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	})
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.PUT("/weight-log/:id", h.updateWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
	return router
}

func TestWeightLog_Validation(t *testing.T) {
	router := setupWeightLogTest()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"bad start", "GET", "/api/weight-log?start=2026/01/01", "", "invalid start, expected YYYY-MM-DD"},
		{"bad end", "GET", "/api/weight-log?end=tomorrow", "", "invalid end, expected YYYY-MM-DD"},
		{"start after end", "GET", "/api/weight-log?start=2026-02-01&end=2026-01-01", "", "start must not be after end"},
		{"malformed body", "POST", "/api/weight-log", `{"weight_kg":`, "invalid request body"},
		{"bad date", "POST", "/api/weight-log", `{"date":"01-02-2026","weight_kg":80}`, "invalid date, expected YYYY-MM-DD"},
		{"zero weight", "POST", "/api/weight-log", `{"date":"2026-01-02","weight_kg":0}`, weightRangeMsg},
		{"too heavy", "POST", "/api/weight-log", `{"weight_kg":701}`, weightRangeMsg},
		{"non-numeric id", "PUT", "/api/weight-log/abc", `{"weight_kg":80}`, "invalid id"},
		{"update bad weight", "PUT", "/api/weight-log/3", `{"weight_kg":-2}`, weightRangeMsg},
		{"delete bad id", "DELETE", "/api/weight-log/0", "", "invalid id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := errorMessage(t, w); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWeightLogRange_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/weight-log", nil)

	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	start, end, msg := weightLogRange(c, now)
	if msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}
	if start != "2026-07-21" || end != "2026-10-19" {
		t.Errorf("got [%s, %s], want [2026-07-21, 2026-10-19]", start, end)
	}
}

func TestValidBodyweight(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		kg   *float64
		want bool
	}{
		{nil, true},
		{f(0), true},
		{f(82.5), true},
		{f(700), true},
		{f(-1), false},
		{f(700.1), false},
	}
	for _, tc := range cases {
		if got := validBodyweight(tc.kg); got != tc.want {
			t.Errorf("validBodyweight(%v) = %v, want %v", tc.kg, got, tc.want)
		}
	}
}

func TestResolveBodyweight_WithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	h := &Handler{}

	kg := 91.0
	if got := h.resolveBodyweight(c, &kg); got != 91 {
		t.Errorf("expected override 91, got %v", got)
	}
	zero := 0.0
	if got := h.resolveBodyweight(c, &zero); got != workout.DefaultBodyweightKg {
		t.Errorf("expected default for zero override, got %v", got)
	}
	if got := h.resolveBodyweight(c, nil); got != workout.DefaultBodyweightKg {
		t.Errorf("expected default, got %v", got)
	}
}
