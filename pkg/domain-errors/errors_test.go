package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	base := New(CodeInvalidParameters, "'days' must be a non-negative integer")
	wrapped := fmt.Errorf("handler: %w", base)

	assert.True(t, Is(wrapped, CodeInvalidParameters))
	assert.False(t, Is(wrapped, CodeInternal))
	assert.False(t, Is(errors.New("plain"), CodeInvalidParameters))
}

func TestWrap(t *testing.T) {
	cause := errors.New("parsing time")
	err := Wrap(cause, CodeInvalidParameters, "bad date")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "InvalidParameters: bad date: parsing time", err.Error())
	assert.Equal(t, "NotFound: route not found", New(CodeNotFound, "route not found").Error())
}

func TestFrom(t *testing.T) {
	de := New(CodeRateLimited, "slow down")
	assert.Same(t, de, From(fmt.Errorf("outer: %w", de)))

	internal := From(errors.New("boom"))
	assert.Equal(t, CodeInternal, internal.Code)
	assert.Equal(t, "boom", internal.Message)
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeInvalidParameters: http.StatusBadRequest,
		CodeNotFound:          http.StatusNotFound,
		CodeMethodNotAllowed:  http.StatusMethodNotAllowed,
		CodeRateLimited:       http.StatusTooManyRequests,
		CodeInternal:          http.StatusInternalServerError,
		Code("Unknown"):       http.StatusInternalServerError,
	}
	for code, status := range tests {
		assert.Equal(t, status, HTTPStatus(code), code)
	}
}
