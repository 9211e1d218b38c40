// Package sqlerr handles database driver errors.
//
// It parses Postgres SQLSTATE codes from the driver and converts
// them into user-facing errors (a foreign key violation becomes a
// 400, a missing row becomes a 404).
package sqlerr
