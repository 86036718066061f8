// Package handler turns HTTP requests into service calls.
//
// JSON endpoints go through the typed Handle pipeline, which binds and
// validates the request before the service is called. Pages and the
// admin UI render html templates from the view package. Everything not
// claimed by a route is served by the frontend handler.
package handler
