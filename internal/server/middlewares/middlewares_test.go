package middlewares

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestGZIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GZIP())
	r.GET("/", okHandler)
	r.GET("/api/health", okHandler)

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
	})

	t.Run("health path is never compressed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("plain without accept-encoding", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})
}

func TestSecureHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		tls       bool
		expectSTS bool
	}{
		{name: "plain http", tls: false, expectSTS: false},
		{name: "tls", tls: true, expectSTS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(SecureHeaders(tt.tls))
			r.GET("/", okHandler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			if tt.expectSTS {
				assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=315360000")
			} else {
				assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimiter("2-M"))
	r.GET("/", okHandler)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"code":"E_RATE_LIMITED","error":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimiter_BadRatePanics(t *testing.T) {
	assert.Panics(t, func() { RateLimiter("lots") })
}
