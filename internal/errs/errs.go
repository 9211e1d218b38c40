// Package errs defines the error shapes returned to API clients.
//
// HTTPError carries a machine-readable code, a message, the HTTP
// status and optional field-level errors, so every failure reaches
// the client in one consistent JSON form.
package errs
