package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrBadRequest(t *testing.T) {
	err := &ErrBadRequest{Message: "unexpected EOF"}
	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "query", Message: "must be at most 4096 characters"}
	assert.Equal(t, "validation error: query - must be at most 4096 characters", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "category", Name: "hobbies"}
	assert.Equal(t, "category not found: hobbies", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ErrUnavailable{Cause: cause}
	assert.Equal(t, "service unavailable: connection refused", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", &ErrNotFound{Resource: "category", Name: "x"})
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
