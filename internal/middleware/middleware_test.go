package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/metrics"
	"github.com/civiclink/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Initialize(logger.Options{Level: "ERROR"})
	os.Exit(m.Run())
}

func staffRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(StaffMiddleware(secret, models.DefaultStaff))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentStaff(c))
	})
	return r
}

func TestStaffMiddleware(t *testing.T) {
	staff := models.Staff{ID: "7", Name: "John Smith", Email: "public.works@city.gov", Role: models.RoleStaff}

	valid, err := SignStaffToken(staff, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	expired, err := SignStaffToken(staff, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	require.NoError(t, err)

	wrongKey, err := SignStaffToken(staff, "other-secret", jwt.RegisteredClaims{})
	require.NoError(t, err)

	tests := []struct {
		name     string
		secret   string
		header   string
		wantCode int
		wantName string
	}{
		{"no header", testSecret, "", http.StatusOK, models.DefaultStaff.Name},
		{"valid token", testSecret, "Bearer " + valid, http.StatusOK, "John Smith"},
		{"expired token", testSecret, "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong key", testSecret, "Bearer " + wrongKey, http.StatusUnauthorized, ""},
		{"bad scheme", testSecret, "Basic abc", http.StatusUnauthorized, ""},
		{"secret disabled", "", "Bearer " + valid, http.StatusOK, models.DefaultStaff.Name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			staffRouter(tt.secret).ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantName != "" {
				assert.Contains(t, w.Body.String(), tt.wantName)
			}
		})
	}
}

func TestCurrentStaffDefaultsOutsideMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.DefaultStaff, CurrentStaff(c))
}

func TestClaimsMergeKeepsFallbackFields(t *testing.T) {
	merged := StaffClaims{Name: "Sarah Johnson"}.merge(models.DefaultStaff)
	assert.Equal(t, "Sarah Johnson", merged.Name)
	assert.Equal(t, models.DefaultStaff.Email, merged.Email)
	assert.Equal(t, models.DefaultStaff.Role, merged.Role)
}

func TestCustomLoggerMiddlewareRequestID(t *testing.T) {
	r := gin.New()
	r.Use(CustomLoggerMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/items/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight))
}

func TestMetricsMiddlewareNil(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware(nil))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSimulatedLatency(t *testing.T) {
	r := gin.New()
	r.Use(SimulatedLatency(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) { c.Status(http.StatusOK) })

	start := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r2 := gin.New()
	r2.Use(SimulatedLatency(time.Hour))
	handled := false
	r2.GET("/slow", func(c *gin.Context) { handled = true })
	r2.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))
	assert.False(t, handled)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
