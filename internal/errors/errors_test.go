package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.Equal(t, "test not found", nfe.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	nfe, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestNotFoundError_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading order: %w", NewNotFoundError("order 9 not found"))

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "order 9 not found", nfe.Message)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "table_number", Message: "required field"},
		{Field: "items", Message: "must not be empty"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestHTTPError_Creation(t *testing.T) {
	err := NewHTTPError(422, "unprocessable")

	assert.Equal(t, 422, err.StatusCode)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "unprocessable")
}

func TestHTTPError_NoMessage(t *testing.T) {
	err := NewHTTPError(500, "")

	assert.Equal(t, "http 500", err.Error())
}

func TestHTTPError_IsHTTPError(t *testing.T) {
	err := fmt.Errorf("deleting order: %w", NewHTTPError(404, "not found"))

	he, ok := IsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.StatusCode)

	_, ok = IsHTTPError(errors.New("plain"))
	assert.False(t, ok)
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError(cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTransportError_IsTransportError(t *testing.T) {
	err := NewTransportError(errors.New("dial tcp: timeout"))

	te, ok := IsTransportError(err)
	assert.True(t, ok)
	assert.NotNil(t, te)

	_, ok = IsTransportError(NewHTTPError(500, ""))
	assert.False(t, ok)
}

func TestTransportError_NotHTTPError(t *testing.T) {
	// The two classes stay distinct: only transport failures trigger
	// fallback substitution.
	err := NewTransportError(errors.New("no route to host"))

	_, ok := IsHTTPError(err)
	assert.False(t, ok)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("encode failure")
	err := NewInternalError("failed to encode response", cause)

	assert.Equal(t, "failed to encode response", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to encode response")
	assert.Contains(t, err.Error(), "encode failure")
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
