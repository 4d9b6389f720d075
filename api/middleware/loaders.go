package middleware

import (
	"context"
	"net/http"
)

type loaderAttacher interface {
	Attach(ctx context.Context) context.Context
}

// Loaders gives every request its own batching loaders so lookups made while
// rendering one response share a cache and never leak across requests.
func Loaders(attachers ...loaderAttacher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			for _, a := range attachers {
				if a != nil {
					ctx = a.Attach(ctx)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
