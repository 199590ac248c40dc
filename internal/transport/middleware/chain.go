// Package middleware holds the HTTP middleware wrapped around the REST router.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so the first argument runs outermost:
// Chain(mw1, mw2)(h) is mw1(mw2(h)). Nil entries are skipped, which lets
// callers leave optional middleware unset.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}
