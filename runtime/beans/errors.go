package beans

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an unknown property name.
	ErrNotFound = errors.New("property not found")
	// ErrUnsupported reports an attempt to write a derived or builder-only
	// property.
	ErrUnsupported = errors.New("property cannot be written")
	// ErrValidation reports a value that violates a property constraint, such
	// as nil for a required property.
	ErrValidation = errors.New("property validation failed")
	// ErrTypeMismatch reports a value or bean whose type is not assignable to
	// the declared type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// PropertyError describes a failed property operation. Kind is one of the
// sentinel errors of this package so callers can match with errors.Is.
type PropertyError struct {
	// Bean is the name of the bean type.
	Bean string
	// Property is the property name, empty for bean-level failures.
	Property string
	// Kind is the failure category.
	Kind error
	// Msg adds detail to Kind.
	Msg string
}

func (e *PropertyError) Error() string {
	var subject string
	switch {
	case e.Bean != "" && e.Property != "":
		subject = e.Bean + "." + e.Property
	case e.Property != "":
		subject = e.Property
	default:
		subject = e.Bean
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", subject, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", subject, e.Kind, e.Msg)
}

// Unwrap returns the failure category.
func (e *PropertyError) Unwrap() error {
	return e.Kind
}

func notFound(bean, name string) error {
	return &PropertyError{Bean: bean, Property: name, Kind: ErrNotFound}
}

func unsupported(bean, name, msg string) error {
	return &PropertyError{Bean: bean, Property: name, Kind: ErrUnsupported, Msg: msg}
}

func invalid(bean, name, msg string) error {
	return &PropertyError{Bean: bean, Property: name, Kind: ErrValidation, Msg: msg}
}

func mismatch(bean, name, format string, args ...any) error {
	return &PropertyError{Bean: bean, Property: name, Kind: ErrTypeMismatch, Msg: fmt.Sprintf(format, args...)}
}
