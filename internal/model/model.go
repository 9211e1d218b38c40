// Package model holds the rows this service reads and writes.
//
// The tables themselves are owned elsewhere; these types only mirror
// the columns the repositories select.
package model
