package contract

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a client error.
type ErrorCode string

const (
	ErrMissingParameter     ErrorCode = "MISSING_PARAMETER"
	ErrInvalidField         ErrorCode = "INVALID_FIELD"
	ErrUnitBuildingMismatch ErrorCode = "UNIT_BUILDING_MISMATCH"
)

// RequestError is returned by services when the caller sent a request that
// can never succeed as-is. Transports surface Message to the caller.
type RequestError struct {
	Code    ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func MissingParameter(msg string) *RequestError {
	return &RequestError{Code: ErrMissingParameter, Message: msg}
}

func InvalidField(format string, args ...any) *RequestError {
	return &RequestError{Code: ErrInvalidField, Message: fmt.Sprintf(format, args...)}
}

func UnitBuildingMismatch(unitNumber, buildingID string) *RequestError {
	return &RequestError{
		Code:    ErrUnitBuildingMismatch,
		Message: fmt.Sprintf("unit %s does not belong to building %s", unitNumber, buildingID),
	}
}

// AsRequestError unwraps err to a *RequestError if it carries one.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
