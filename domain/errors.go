package domain

import (
	"errors"
	"fmt"
)

// IncorrectParameters is the only message shown to users for rejected input.
const IncorrectParameters = "Incorrect parameters"

// MissingArgumentError reports a required argument that was not supplied.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument --%s", e.Name)
}

// InvalidArgumentError reports an argument whose value cannot be used.
type InvalidArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid argument --%s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid argument --%s=%s: %s", e.Name, e.Value, e.Reason)
}

// MathDomainError reports a formula evaluated outside its domain.
type MathDomainError struct {
	Op     string
	Reason string
}

func (e *MathDomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// IsIncorrectParameters reports whether err is one of the parameter errors
// above, possibly wrapped.
func IsIncorrectParameters(err error) bool {
	var missing *MissingArgumentError
	var invalid *InvalidArgumentError
	var mathErr *MathDomainError
	return errors.As(err, &missing) || errors.As(err, &invalid) || errors.As(err, &mathErr)
}
