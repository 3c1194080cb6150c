package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Error_Status(t *testing.T) {
	testCases := []struct {
		name           string
		err            *Error
		expectedStatus int
	}{
		{name: "NotFound maps to 404", err: NotFound("missing"), expectedStatus: http.StatusNotFound},
		{name: "Validation maps to 400", err: Validation("bad input"), expectedStatus: http.StatusBadRequest},
		{name: "Unauthorized maps to 401", err: Unauthorized("no key"), expectedStatus: http.StatusUnauthorized},
		{name: "Forbidden maps to 403", err: Forbidden("no access"), expectedStatus: http.StatusForbidden},
		{name: "unknown kind maps to 500", err: &Error{Kind: Kind(99), Message: "?"}, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, tc.err.Status())
		})
	}
}

func Test_Error_Message(t *testing.T) {
	err := NotFound("Product with ID 42 not found.")
	assert.Equal(t, "Product with ID 42 not found.", err.Error())
}

func Test_Validation_CarriesFieldErrors(t *testing.T) {
	fields := []FieldError{
		{Field: "name", Message: "Name must be a non-empty string."},
		{Message: "At least one field must be provided."},
	}

	err := Validation("Product data validation failed.", fields...)

	require.Len(t, err.Fields, 2)
	assert.Equal(t, "name", err.Fields[0].Field)
	assert.Empty(t, err.Fields[1].Field, "collection-level errors carry no field")
}

func Test_From(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expectOK bool
	}{
		{name: "taxonomy error", err: NotFound("missing"), expectOK: true},
		{name: "wrapped taxonomy error", err: fmt.Errorf("layer: %w", Unauthorized("no key")), expectOK: true},
		{name: "plain error", err: errors.New("boom"), expectOK: false},
		{name: "nil", err: nil, expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr, ok := From(tc.err)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				require.NotNil(t, appErr)
			} else {
				assert.Nil(t, appErr)
			}
		})
	}
}
