package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsComparesCodeAndMessage(t *testing.T) {
	errA := NewError(http.StatusBadRequest, "bad input")

	assert.ErrorIs(t, errA, NewError(http.StatusBadRequest, "bad input"))
	assert.NotErrorIs(t, errA, NewError(http.StatusNotFound, "bad input"))
	assert.NotErrorIs(t, errA, NewError(http.StatusBadRequest, "other"))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewError(http.StatusNotFound, "missing")))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("wrapped: %w", NewError(http.StatusNotFound, "missing"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
