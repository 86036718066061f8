// Package middleware holds the global and route-specific echo middleware:
// request ids, the request-scoped logger, New Relic tracing, rate
// limiting, language selection, Clerk auth for the admin API and basic
// auth for the admin UI, plus the global error handler.
package middleware
