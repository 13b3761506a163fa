package middleware

import (
	pkgLog "taskbuster/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares.
type Middleware struct {
	l pkgLog.Logger
}

// New creates the middleware bundle.
func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
