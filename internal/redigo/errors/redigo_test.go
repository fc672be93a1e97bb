package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsUnwrapToTheirKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"unknown command", NewUnknownCommandError("NOPE"), ErrorUnknownCommand},
		{"arity", NewArityError("SET", 2, 2, 1), ErrorArity},
		{"invalid argument", NewInvalidArgumentError("EXPIRE", ArgumentFailure{Position: 1, Reason: "bad"}), ErrorInvalidArgument},
		{"wrong type", NewWrongTypeError("GET", "string", "list"), ErrorWrongType},
		{"index out of range", NewIndexOutOfRangeError(16, 16), ErrorIndexOutOfRange},
		{"duplicate registration", NewDuplicateRegistrationError("SET"), ErrorDuplicateRegistration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.kind.Error(), Code(tt.err))
		})
	}
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}

func TestArityError_Message(t *testing.T) {
	assert.Equal(t,
		"ERR wrong number of arguments for 'set' command: expected 2, got 3",
		NewArityError("SET", 2, 2, 3).Error(),
	)
	assert.Equal(t,
		"ERR wrong number of arguments for 'del' command: expected at least 1, got 0",
		NewArityError("DEL", 1, -1, 0).Error(),
	)
	assert.Equal(t,
		"ERR wrong number of arguments for 'ping' command: expected 0 to 1, got 2",
		NewArityError("PING", 0, 1, 2).Error(),
	)
}

func TestInvalidArgumentError_FailuresAreCopied(t *testing.T) {
	err := NewInvalidArgumentError("SET",
		ArgumentFailure{Position: 0, Reason: "missing"},
		ArgumentFailure{Position: 1, Reason: "missing"},
	)

	failures := err.Failures()
	require.Len(t, failures, 2)
	failures[0].Reason = "changed"

	assert.Equal(t, "missing", err.Failures()[0].Reason)
	assert.Contains(t, err.Error(), "argument 0: missing; argument 1: missing")
}

func TestErrorsAs(t *testing.T) {
	var err error = NewWrongTypeError("GET", "string", "hash")

	var wrongType *WrongTypeError
	require.True(t, errors.As(err, &wrongType))
	assert.Equal(t, "GET", wrongType.Command())
	assert.Equal(t, "string", wrongType.Expected())
	assert.Equal(t, "hash", wrongType.Actual())
}
