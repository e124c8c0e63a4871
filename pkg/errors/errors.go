// Package errors defines the typed service errors shared between the
// services layer and the HTTP handlers, which map them to status codes.
package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError marks a missing resource; handlers translate it
// to 404. Remediation carries an optional user-facing hint.
type ResourceNotFoundError struct {
	Resource    string
	Remediation string
}

func (e *ResourceNotFoundError) Error() string {
	if e.Remediation != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Remediation)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewFrontendNotBuiltError() *ResourceNotFoundError {
	return &ResourceNotFoundError{
		Resource:    "frontend",
		Remediation: "application not found, please build the frontend first",
	}
}

func NewResourceNotFoundError(resource string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// AdvertInFlightError marks an advert broadcast requested while one is
// already being sent; handlers translate it to 409.
type AdvertInFlightError struct{}

func (e *AdvertInFlightError) Error() string {
	return "advert broadcast already in progress"
}

func NewAdvertInFlightError() *AdvertInFlightError {
	return &AdvertInFlightError{}
}

func IsAdvertInFlightError(err error) bool {
	var e *AdvertInFlightError
	return errors.As(err, &e)
}
