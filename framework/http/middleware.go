// Package http provides the unit-of-work glue between an HTTP host and
// the locator: each inbound request gets its own instance scope,
// discarded when the request ends.
package http

import (
	"net/http"

	"github.com/km-arc/go-locator/framework/locator"
)

// ScopePerRequest returns middleware that attaches a fresh
// locator.Scope to every request's context. Components resolved during
// the request are cached in that scope and dropped with it, so two
// concurrent requests never see each other's instances.
//
//	router.Middleware(gohttp.ScopePerRequest())
func ScopePerRequest() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := locator.WithScope(r.Context(), locator.NewScope())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
