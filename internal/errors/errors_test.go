package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := Unauthorized("authentication required")
	assert.Equal(t, "authentication required", err.Error())

	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeGateway, "upstream call failed")
	assert.Equal(t, "upstream call failed: connection refused", wrapped.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := Wrapf(cause, ErrCodeInternal, "while doing %s", "work")

	require.NotNil(t, wrapped)
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.Equal(t, ErrCodeInternal, GetCode(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeGateway, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrCodeGateway, "nothing %d", 1))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFound("missing"), IsNotFound},
		{"validation", Validation("bad input"), IsValidation},
		{"unauthorized", Unauthorized("no token"), IsUnauthorized},
		{"forbidden", Forbidden("nope"), IsForbidden},
		{"decode", Decode("garbled token"), IsDecode},
		{"gateway", Gateway("upstream 502"), IsGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(stderrors.New("plain")))
		})
	}
}

func TestPredicateSeesThroughWrapping(t *testing.T) {
	inner := Decode("bad token")
	outer := Wrap(inner, ErrCodeUnauthorized, "session rejected")

	// The outermost code wins for GetCode, but Is* helpers see the chain.
	assert.Equal(t, ErrCodeUnauthorized, GetCode(outer))
	assert.True(t, IsDecode(outer))
	assert.True(t, IsUnauthorized(outer))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "Email is required.")
	assert.Equal(t, "email", GetField(err))
	assert.Equal(t, "", GetField(stderrors.New("plain")))
}
