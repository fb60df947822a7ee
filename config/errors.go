package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfig matches every *MalformedConfigError.
	ErrMalformedConfig = errors.New("malformed config")
	// ErrSchemaViolation matches every *SchemaError.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrNotFound is returned by Find when no configuration file exists in
	// the directory or any of its parents.
	ErrNotFound = errors.New("config: no configuration file found")
)

// MalformedConfigError is returned when a configuration file can't be read
// or decoded.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("config: malformed config %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

func (e *MalformedConfigError) Is(target error) bool {
	return target == ErrMalformedConfig
}

// SchemaError describes a configuration that decoded fine but breaks one of
// the configuration invariants.
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaViolation
}

func schemaErrorf(field, msg string, args ...interface{}) *SchemaError {
	return &SchemaError{Field: field, Msg: fmt.Sprintf(msg, args...)}
}
