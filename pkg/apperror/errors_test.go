package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	var v Validator
	v.Check(true, "name", "Name is required")
	assert.NoError(t, v.Err())

	v.Check(false, "pumpNumber", "Please select a pump number")
	v.Check(false, "shift", "Please select shift")
	err := v.Err()
	require.Error(t, err)

	appErr := GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "shift", appErr.Errors[1].Field)
}

func TestGetAppError_WrappedAndPlain(t *testing.T) {
	wrapped := fmt.Errorf("save sale: %w", NewBadRequestError("bad id"))
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, http.StatusBadRequest, GetAppError(wrapped).Code)

	plain := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.Code)
	assert.Equal(t, "boom", plain.Message)
}

func TestNewBadGatewayError(t *testing.T) {
	err := NewBadGatewayError(errors.New("GET /sales: connection refused"))
	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.Equal(t, "GET /sales: connection refused", err.Message)
}
