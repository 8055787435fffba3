package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithCauseUnwraps(t *testing.T) {
	cause := errors.New("browser crashed")
	err := ErrServiceUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Service unavailable: browser crashed", err.Error())
	// the shared sentinel stays untouched
	assert.Nil(t, ErrServiceUnavailable.Err)
}

func TestGetAppError(t *testing.T) {
	t.Run("wrapped app error is found", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", NewBadRequestError("bad date"))
		appErr := GetAppError(wrapped)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := GetAppError(cause)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "boom", appErr.Message)
		assert.ErrorIs(t, appErr, cause)
	})
}
