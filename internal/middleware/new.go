package middleware

import (
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/scope"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New creates the shared middleware. submitsPerMin bounds assistant submissions per operator.
func New(l log.Logger, jwtManager scope.Manager, submitsPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(submitsPerMin),
	}
}
