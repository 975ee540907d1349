package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("TIME_1000", "malformed time expression", nil),
			wantErr: NewInvalidArgumentError("TIME_1000", "malformed time expression", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("AGG_9000", nil)),
			wantErr: NewInternalError("AGG_9000", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped upstream ServiceError",
			err:     fmt.Errorf("env los: %w", NewUpstreamError("FETCH_9000", "log fetch failed", errors.New("boom"))),
			wantErr: NewUpstreamError("FETCH_9000", "log fetch failed", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_UnwrapReachesSentinel(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("missing credentials")
	err := NewUnauthenticatedError("CRED_1000", "missing credentials", fmt.Errorf("%w: env los", sentinel))

	assert.ErrorIs(t, err, sentinel)
	assert.True(t, err.IsUnauthenticated())
	assert.False(t, err.IsInternalError())
	assert.Equal(t, 401, err.HttpStatusCode)
}

func TestServiceError_ErrorMessage(t *testing.T) {
	t.Parallel()

	withCause := NewInvalidArgumentError("DEV_1000", "division by zero", errors.New("baseline is 0"))
	assert.Equal(t, "DEV_1000: division by zero: baseline is 0", withCause.Error())

	// internal causes are kept out of the message
	internal := NewInternalError("AGG_9000", errors.New("dial tcp: refused"))
	assert.Equal(t, "AGG_9000: internal server error", internal.Error())
}
