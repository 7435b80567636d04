package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrConn,
		ErrQuery,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Refresh interval out of range",
			suggestion: "Use a value between 200ms and 60000ms",
		},
		{
			name:       "connection error",
			code:       ErrConn,
			message:    "Cannot connect to PostgreSQL",
			suggestion: "Check the DSN and that the server is running",
		},
		{
			name:       "query error",
			code:       ErrQuery,
			message:    "pg_stat_activity query failed",
			suggestion: "Check the monitoring role has pg_monitor privileges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	err := Wrap(cause, "Cannot connect to PostgreSQL")

	require.NotNil(t, err)
	assert.Equal(t, ErrConn, err.Code)
	assert.Equal(t, "Cannot connect to PostgreSQL", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("syntax error at or near")
	err := WrapWithCode(cause, ErrQuery, "Statements query failed", "Check pg_stat_statements is installed")

	require.NotNil(t, err)
	assert.Equal(t, ErrQuery, err.Code)
	assert.Equal(t, "Statements query failed", err.Message)
	assert.Equal(t, "Check pg_stat_statements is installed", err.Suggestion)
	assert.Equal(t, cause, err.Cause)
}

func TestErrorFormat(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := New(ErrConfig, "Something failed", "")
		out := err.Error()
		assert.True(t, strings.HasPrefix(out, "✗ Something failed"))
		assert.NotContains(t, out, "\n\n  \n")
	})

	t.Run("with cause and suggestion", func(t *testing.T) {
		cause := errors.New("underlying problem")
		err := WrapWithCode(cause, ErrConn, "Connection lost", "Retry later")
		out := err.Error()
		assert.Contains(t, out, "✗ Connection lost")
		assert.Contains(t, out, "underlying problem")
		assert.Contains(t, out, "Retry later")
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{"nil error", nil, ErrConfig, false},
		{"matching code", New(ErrConn, "msg", ""), ErrConn, true},
		{"different code", New(ErrConn, "msg", ""), ErrQuery, false},
		{"plain error", errors.New("plain"), ErrConn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCode(tt.err, tt.code))
		})
	}
}

func TestIsCodeWrapped(t *testing.T) {
	inner := New(ErrQuery, "inner", "")
	outer := Wrap(inner, "outer")

	// errors.As finds the outermost *Error first
	assert.True(t, IsCode(outer, ErrConn))
	require.NotNil(t, errors.Unwrap(outer))
	assert.True(t, IsCode(errors.Unwrap(outer), ErrQuery))
}
