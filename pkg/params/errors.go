package params

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilSchema is returned when no schema is supplied.
	ErrNilSchema = errors.New("params: schema is required")
	// ErrAbstractSchema is returned when a bag is built from an abstract schema.
	ErrAbstractSchema = errors.New("params: cannot instantiate an abstract schema")
	// ErrMissingMeta reports naming configuration a renderer depends on.
	ErrMissingMeta = errors.New("params: meta value is not set")
	// ErrInvalidField reports a field name the schema does not declare.
	ErrInvalidField = errors.New("params: invalid field name")
	// ErrMissingRequired reports required components absent from a bag.
	ErrMissingRequired = errors.New("params: required parameters are missing")
	// ErrUnsupportedSource reports a source that cannot feed an update.
	ErrUnsupportedSource = errors.New("params: invalid type for update")
	// ErrRenderNotImplemented is returned for schemas without a URL kind.
	ErrRenderNotImplemented = errors.New("params: url rendering is not implemented for this schema")
)

// MetaError names the unset naming configuration value.
type MetaError struct {
	Field string
}

func (e *MetaError) Error() string {
	return fmt.Sprintf("params: meta value %s is not set", e.Field)
}

func (e *MetaError) Unwrap() error { return ErrMissingMeta }

// InvalidFieldError carries the offending field name.
type InvalidFieldError struct {
	Name string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("params: invalid field name '%s'", e.Name)
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidField }

// MissingRequiredError lists the field names whose required components are
// absent, in schema declaration order.
type MissingRequiredError struct {
	Fields []string
}

func (e *MissingRequiredError) Error() string {
	return "params: parameters are required, but missing: " + strings.Join(e.Fields, ", ")
}

func (e *MissingRequiredError) Unwrap() error { return ErrMissingRequired }
