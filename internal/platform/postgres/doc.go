// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx driver. Constraint violations
// are mapped onto the store package's sentinel errors.
package postgres
