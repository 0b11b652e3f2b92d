package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "module name is required",
			wantStr: "[INVALID_INPUT] module name is required",
		},
		{
			name:    "unknown_account_error",
			code:    errors.ErrUnknownAccount,
			message: "no such account",
			wantStr: "[UNKNOWN_ACCOUNT] no such account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTemplateNotFound, "cannot read %s", "module.tmpl")
	assert.Equal(t, "cannot read module.tmpl", err.Message)
	assert.Equal(t, errors.ErrTemplateNotFound, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrIOFailure, "write failed"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrIOFailure, "write %s failed", "x"))
	})

	t.Run("wrapped_cause_is_reachable", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := errors.Wrapf(cause, errors.ErrIOFailure, "cannot write %s", "/tmp/a.lua")

		require.NotNil(t, err)
		assert.Equal(t, "[IO_FAILURE] cannot write /tmp/a.lua: disk full", err.Error())
		assert.True(t, stderrors.Is(err, cause))
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrInvalidInput, "empty name"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrInvalidInput, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrIOFailure, "")))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrUnknownAccount, "lookup failed").WithDetail("account", "ghost")
	wrapped := fmt.Errorf("resolve: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnknownAccount))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrInvalidInput))
	assert.Equal(t, errors.ErrUnknownAccount, errors.GetErrorCode(wrapped))
	assert.Equal(t, "ghost", errors.GetErrorDetails(wrapped)["account"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
