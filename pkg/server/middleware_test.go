package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unsaidhq/lingo/config"
	"github.com/unsaidhq/lingo/pkg/models"
)

func TestSendVersion(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := SendVersion(nextHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get(versionHeader) != config.VersionString {
		t.Errorf("handler returned wrong version header: got %v want %v",
			rr.Header().Get(versionHeader), config.VersionString)
	}
}

func TestSecretKeyAuth(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("secret configured", func(t *testing.T) {
		cfg := &config.Config{Auth: config.AuthConfig{Secret: "test-secret"}}
		handler := SecretKeyAuth(cfg)(testHandler)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusUnauthorized, res.Code)

		req = httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(internalKeyHeader, "test-secret")
		res = httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("no secret configured", func(t *testing.T) {
		cfg := &config.Config{}
		handler := SecretKeyAuth(cfg)(testHandler)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})
}

// Cross-origin requests are universally permitted on this deployment.
func TestCORSPreflight(t *testing.T) {
	appState := newTestAppState(&stubPipeline{doc: &models.ParsedDoc{}}, "")
	router := setupRouter(appState)

	req := httptest.NewRequest(http.MethodOptions, "/process", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "x-internal-key")

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Less(t, res.Code, 400)
	assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))
}
