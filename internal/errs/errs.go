// Package errs defines the error shapes returned to API clients.
//
// Every handler error ends up as an HTTPError (status, machine code,
// message, optional field errors and client action) so the JSON body is
// the same for validation failures, missing records and database
// constraint violations.
package errs
