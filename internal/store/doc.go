// Package store defines the persistence interfaces the service layer depends
// on, together with the sentinel errors implementations must return and a
// helper for running multi-statement operations in a database transaction.
package store
