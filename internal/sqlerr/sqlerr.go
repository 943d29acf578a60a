// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and converts
// them into user-friendly envelope errors (e.g., converting a unique
// violation into a 400 "already exists" message, or ErrNoRows into a
// 404) so no Postgres detail ever leaks to the client.
package sqlerr

import "errors"

// Code classifies a database error into the categories the application
// reacts to. Everything else is Other and maps to a generic 500.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// MapCode maps a Postgres SQLSTATE onto a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// Error is the normalized database error, carrying the mapped Code plus
// the metadata needed to phrase a client-facing message.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ErrCode reports the mapped Code for a given error, walking the error
// chain. Unrecognized errors report Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}
