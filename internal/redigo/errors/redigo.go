package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of failure produced while dispatching a command.
// Every concrete error below unwraps to one of these.
var ErrorUnknownCommand = errors.New("command.unknown")
var ErrorArity = errors.New("command.arity")
var ErrorInvalidArgument = errors.New("argument.invalid")
var ErrorWrongType = errors.New("value.wrongType")
var ErrorIndexOutOfRange = errors.New("database.indexOutOfRange")
var ErrorDuplicateRegistration = errors.New("command.duplicateRegistration")

// Returns the stable code of a taxonomy error, or "" for anything else
func Code(err error) string {
	for _, kind := range []error{
		ErrorUnknownCommand,
		ErrorArity,
		ErrorInvalidArgument,
		ErrorWrongType,
		ErrorIndexOutOfRange,
		ErrorDuplicateRegistration,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ""
}

type UnknownCommandError struct {
	name string
}

func NewUnknownCommandError(name string) *UnknownCommandError {
	return &UnknownCommandError{name: name}
}

func (e *UnknownCommandError) Name() string { return e.name }

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("ERR unknown command '%s'", e.name)
}

func (e *UnknownCommandError) Unwrap() error { return ErrorUnknownCommand }

type ArityError struct {
	command string
	min     int
	max     int
	actual  int
}

// max < 0 means no upper bound
func NewArityError(command string, min, max, actual int) *ArityError {
	return &ArityError{command: command, min: min, max: max, actual: actual}
}

func (e *ArityError) Command() string { return e.command }
func (e *ArityError) Min() int        { return e.min }
func (e *ArityError) Max() int        { return e.max }
func (e *ArityError) Actual() int     { return e.actual }

func (e *ArityError) Error() string {
	var expected string
	switch {
	case e.max < 0:
		expected = fmt.Sprintf("at least %d", e.min)
	case e.min == e.max:
		expected = fmt.Sprintf("%d", e.min)
	default:
		expected = fmt.Sprintf("%d to %d", e.min, e.max)
	}
	return fmt.Sprintf(
		"ERR wrong number of arguments for '%s' command: expected %s, got %d",
		strings.ToLower(e.command), expected, e.actual,
	)
}

func (e *ArityError) Unwrap() error { return ErrorArity }

// ArgumentFailure describes why one raw argument was rejected
type ArgumentFailure struct {
	Position int
	Reason   string
}

func (f ArgumentFailure) String() string {
	return fmt.Sprintf("argument %d: %s", f.Position, f.Reason)
}

type InvalidArgumentError struct {
	command  string
	failures []ArgumentFailure
}

func NewInvalidArgumentError(command string, failures ...ArgumentFailure) *InvalidArgumentError {
	return &InvalidArgumentError{
		command:  command,
		failures: append([]ArgumentFailure(nil), failures...),
	}
}

func (e *InvalidArgumentError) Command() string { return e.command }

// Returns a copy of the per-argument failures
func (e *InvalidArgumentError) Failures() []ArgumentFailure {
	return append([]ArgumentFailure(nil), e.failures...)
}

func (e *InvalidArgumentError) Error() string {
	reasons := make([]string, len(e.failures))
	for i, failure := range e.failures {
		reasons[i] = failure.String()
	}
	return fmt.Sprintf("ERR invalid arguments for '%s' command: %s", strings.ToLower(e.command), strings.Join(reasons, "; "))
}

func (e *InvalidArgumentError) Unwrap() error { return ErrorInvalidArgument }

type WrongTypeError struct {
	command  string
	expected string
	actual   string
}

func NewWrongTypeError(command, expected, actual string) *WrongTypeError {
	return &WrongTypeError{command: command, expected: expected, actual: actual}
}

func (e *WrongTypeError) Command() string  { return e.command }
func (e *WrongTypeError) Expected() string { return e.expected }
func (e *WrongTypeError) Actual() string   { return e.actual }

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf(
		"WRONGTYPE Operation against a key holding the wrong kind of value ('%s' expects %s, found %s)",
		strings.ToLower(e.command), e.expected, e.actual,
	)
}

func (e *WrongTypeError) Unwrap() error { return ErrorWrongType }

type IndexOutOfRangeError struct {
	index int
	count int
}

func NewIndexOutOfRangeError(index, count int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{index: index, count: count}
}

func (e *IndexOutOfRangeError) Index() int { return e.index }
func (e *IndexOutOfRangeError) Count() int { return e.count }

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("ERR DB index %d is out of range [0, %d)", e.index, e.count)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrorIndexOutOfRange }

type DuplicateRegistrationError struct {
	name string
}

func NewDuplicateRegistrationError(name string) *DuplicateRegistrationError {
	return &DuplicateRegistrationError{name: name}
}

func (e *DuplicateRegistrationError) Name() string { return e.name }

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.name)
}

func (e *DuplicateRegistrationError) Unwrap() error { return ErrorDuplicateRegistration }
