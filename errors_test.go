package emit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerError(t *testing.T) {
	cause := errors.New("db unavailable")
	err := &HandlerError{
		Event:    "order.created",
		Token:    "tok-1",
		Position: 2,
		Err:      cause,
	}

	assert.Contains(t, err.Error(), "order.created")
	assert.Contains(t, err.Error(), "position 2")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestPanicError(t *testing.T) {
	err := &PanicError{
		Event:    "order.created",
		Token:    "tok-1",
		Position: 0,
		Value:    "boom",
		Stack:    []byte("stack trace"),
	}

	assert.Contains(t, err.Error(), "order.created")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, ErrHandlerPanic)
	assert.NotErrorIs(t, err, ErrNilHandler)
}

func TestPanicError_AsFromOutcomeErr(t *testing.T) {
	outcomes := Outcomes{
		{Event: "e", Position: 0},
		{Event: "e", Position: 1, Err: &PanicError{Event: "e", Position: 1, Value: 42}},
	}

	joined := outcomes.Err()
	require.Error(t, joined)

	var perr *PanicError
	require.ErrorAs(t, joined, &perr)
	assert.Equal(t, 42, perr.Value)
	assert.ErrorIs(t, joined, ErrHandlerPanic)
}

func TestName_Helpers(t *testing.T) {
	assert.True(t, Wildcard.IsWildcard())
	assert.False(t, Name("msg").IsWildcard())
	assert.Equal(t, "msg", Name("msg").String())
}
