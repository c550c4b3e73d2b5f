package server

import (
	"net/http"

	"github.com/unsaidhq/lingo/config"
)

const versionHeader = "X-Lingo-Version"

// internalKeyHeader carries the shared secret on annotate requests.
// Header names are canonicalized, so this matches x-internal-key too.
const internalKeyHeader = "X-Internal-Key"

// SendVersion is a middleware that adds the current version to the response
func SendVersion(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if w.Header().Get(versionHeader) == "" {
			w.Header().Add(
				versionHeader,
				config.VersionString,
			)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// SecretKeyAuth gates a route on the configured shared secret. When the
// secret is empty, the check is skipped entirely: that deployment mode is
// deliberately open.
func SecretKeyAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Auth.Secret != "" && r.Header.Get(internalKeyHeader) != cfg.Auth.Secret {
				renderDetail(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
