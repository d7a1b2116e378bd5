package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appcore/pkg/status"
)

func TestConstructors_DefaultsAndOverrides(t *testing.T) {
	tests := []struct {
		name        string
		err         *Error
		wantKind    Kind
		wantCode    status.Code
		wantMessage string
	}{
		{
			name:        "bad request content default message",
			err:         NewBadRequestContent("", nil),
			wantKind:    KindBadRequestContent,
			wantCode:    status.BadRequest,
			wantMessage: "bad request content",
		},
		{
			name:        "bad request content message override",
			err:         NewBadRequestContent("payload rejected", nil),
			wantKind:    KindBadRequestContent,
			wantCode:    status.BadRequest,
			wantMessage: "payload rejected",
		},
		{
			name:        "unauthorized field",
			err:         NewUnauthorizedField("", nil),
			wantKind:    KindUnauthorizedField,
			wantCode:    status.BadRequest,
			wantMessage: "unauthorized field",
		},
		{
			name:        "not found",
			err:         NewNotFound("", nil),
			wantKind:    KindNotFound,
			wantCode:    status.NotFound,
			wantMessage: "resource not found",
		},
		{
			name:        "forbidden",
			err:         NewForbidden("", nil),
			wantKind:    KindForbidden,
			wantCode:    status.Forbidden,
			wantMessage: "forbidden",
		},
		{
			name:        "conflict",
			err:         NewConflict("", nil),
			wantKind:    KindConflict,
			wantCode:    status.Conflict,
			wantMessage: "conflict",
		},
		{
			name:        "unprocessable",
			err:         NewUnprocessable("", nil),
			wantKind:    KindUnprocessable,
			wantCode:    status.UnprocessableEntity,
			wantMessage: "unprocessable entity",
		},
		{
			name:        "no response set",
			err:         NewNoResponseSet(""),
			wantKind:    KindNoResponseSet,
			wantCode:    status.InternalServerError,
			wantMessage: "no response has been presented",
		},
		{
			name:        "internal",
			err:         NewInternal("", nil),
			wantKind:    KindInternal,
			wantCode:    status.InternalServerError,
			wantMessage: "internal error",
		},
		{
			name:        "custom kind via New",
			err:         New(Kind("TEAPOT"), status.Conflict, "short and stout", nil),
			wantKind:    Kind("TEAPOT"),
			wantCode:    status.Conflict,
			wantMessage: "short and stout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
			assert.Equal(t, fmt.Sprintf("ApplicationError[%s]: %s", tt.wantKind, tt.wantMessage), tt.err.Error())
		})
	}
}

func TestError_Errors(t *testing.T) {
	withDetails := NewBadRequestContent("", map[string]interface{}{"field_1": "required"})
	assert.Equal(t, map[string]interface{}{"field_1": "required"}, withDetails.Errors())

	withoutDetails := NewNotFound("user missing", nil)
	assert.Equal(t, map[string]interface{}{"error": "user missing"}, withoutDetails.Errors())
}

func TestError_DetailsMessage(t *testing.T) {
	withEntry := NewForbidden("", map[string]interface{}{"error": "token expired"})
	assert.Equal(t, "token expired", withEntry.DetailsMessage())

	withoutEntry := NewForbidden("", map[string]interface{}{"field": "x"})
	assert.Nil(t, withoutEntry.DetailsMessage())

	noDetails := NewForbidden("", nil)
	assert.Nil(t, noDetails.DetailsMessage())
}

func TestError_Format(t *testing.T) {
	err := NewConflict("duplicate user", map[string]interface{}{"email": "taken"})

	formatted := err.Format()
	assert.Equal(t, map[string]interface{}{
		"status":     "error",
		"error_code": 409,
		"message":    "duplicate user",
		"details":    map[string]interface{}{"email": "taken"},
	}, formatted)

	// Formatting is a pure read.
	assert.Equal(t, formatted, err.Format())
}

func TestError_LogReport(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("lookup failed", nil).WithCause(cause)

	report := err.LogReport()
	assert.Equal(t, "lookup failed", report["message"])
	assert.Equal(t, "INTERNAL_ERROR", report["kind"])
	assert.Equal(t, 500, report["errorCode"])
	assert.Equal(t, map[string]interface{}{"error": "lookup failed"}, report["errors"])
	assert.Equal(t, "connection refused", report["cause"])
	assert.Contains(t, report["origin"], "errors_test.go")
	assert.NotEmpty(t, report["stackTrace"])
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternal("", nil).WithCause(cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *Error
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &appErr))
	assert.Equal(t, KindInternal, appErr.Kind)
}

func TestFromError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, FromError(nil))
	})

	t.Run("structured errors pass through", func(t *testing.T) {
		original := NewNotFound("", nil)
		assert.Same(t, original, FromError(original))
	})

	t.Run("plain errors become internal with cause", func(t *testing.T) {
		plain := errors.New("boom")
		normalized := FromError(plain)

		assert.Equal(t, KindInternal, normalized.Kind)
		assert.Equal(t, status.InternalServerError, normalized.Code)
		assert.Equal(t, "boom", normalized.Details["error"])
		assert.True(t, errors.Is(normalized, plain))
	})
}
