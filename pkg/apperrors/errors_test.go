package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)

	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, CodeDatabaseError, appErr.Code)
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	err := Wrap(errors.New("secret detail"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError).
		WithDetails(map[string]string{"field": "title"})

	raw, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, string(CodeInternalError), decoded["code"])
	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, string(raw), "500")
}

func TestPredefinedErrorsCarryHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrGigNotFound.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotGigOwner.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrGigAlreadyAssigned.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrDuplicateBid.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrOwnGigBid.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
}

func TestTransactionErrorKeepsDomain(t *testing.T) {
	cause := errors.New("rollback")
	err := TransactionError(cause, "hire")
	assert.Equal(t, "hire", err.Domain)
	assert.Equal(t, CodeTransactionFailed, err.Code)
	assert.True(t, Is(err, cause))
}
