package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimitMiddleware_PerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do("1.1.1.1") != http.StatusOK || do("1.1.1.1") != http.StatusOK {
		t.Fatal("expected the burst to be allowed")
	}
	if code := do("1.1.1.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the burst, got %d", code)
	}
	if code := do("2.2.2.2"); code != http.StatusOK {
		t.Fatalf("expected a different IP to be unaffected, got %d", code)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		if _, ok := c.Get(LoggerKey); !ok {
			t.Error("expected a logger in the context")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated request id echoed in header, got %q / %q", seen, w.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen != "abc-123" {
		t.Fatalf("expected incoming request id to be kept, got %q", seen)
	}
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": " 3.3.3.3 , 10.0.0.1"}, "127.0.0.1:1", "3.3.3.3"},
		{"real ip", map[string]string{"X-Real-IP": "4.4.4.4"}, "127.0.0.1:1", "4.4.4.4"},
		{"remote addr", nil, "5.5.5.5:4242", "5.5.5.5"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = tc.remote
		for k, v := range tc.header {
			c.Request.Header.Set(k, v)
		}
		if got := getClientIP(c); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
