package redigo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

type recordingCommand struct {
	name       types.CommandName
	arity      types.Arity
	parseErr   error
	executeErr error
	parsed     int
	executed   int
	lastArgs   any
	lastCtx    types.CommandContext
}

func (command *recordingCommand) Name() types.CommandName { return command.name }
func (command *recordingCommand) Arity() types.Arity      { return command.arity }
func (command *recordingCommand) IsWrite() bool           { return false }

func (command *recordingCommand) Execute(_ *Engine, context types.CommandContext, args any) (any, error) {
	command.executed++
	command.lastArgs = args
	command.lastCtx = context
	if command.executeErr != nil {
		return nil, command.executeErr
	}
	return "done", nil
}

type parsingCommand struct {
	recordingCommand
}

func (command *parsingCommand) Parse(rawArgs [][]byte) (any, error) {
	command.parsed++
	if command.parseErr != nil {
		return nil, command.parseErr
	}
	return len(rawArgs), nil
}

func newTestDispatcher(t *testing.T, commands ...Command) *Dispatcher {
	t.Helper()
	registry := NewRegistry()
	for _, command := range commands {
		require.NoError(t, registry.Register(command))
	}
	return NewDispatcher(NewEngine(DEFAULT_DATABASE_COUNT), registry)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	command := &recordingCommand{name: "echo", arity: types.ExactArity(1)}

	require.NoError(t, registry.Register(command))

	for _, name := range []string{"ECHO", "echo", "Echo"} {
		got, exists := registry.Get(name)
		assert.True(t, exists)
		assert.Same(t, command, got)
	}

	_, exists := registry.Get("NOPE")
	assert.False(t, exists)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&recordingCommand{name: "ECHO"}))

	err := registry.Register(&recordingCommand{name: "echo"})

	assert.ErrorIs(t, err, errors.ErrorDuplicateRegistration)
	var duplicate *errors.DuplicateRegistrationError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "ECHO", duplicate.Name())
	assert.Len(t, registry.List(), 1)
}

func TestRegistry_ListKeepsInsertionOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []types.CommandName{"B", "A", "C"} {
		require.NoError(t, registry.Register(&recordingCommand{name: name}))
	}

	var names []types.CommandName
	for _, command := range registry.List() {
		names = append(names, command.Name())
	}
	assert.Equal(t, []types.CommandName{"B", "A", "C"}, names)
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	command := &parsingCommand{recordingCommand{name: "ECHO", arity: types.ExactArity(0)}}
	dispatcher := newTestDispatcher(t, command)

	result, err := dispatcher.Dispatch("NOPE", nil, types.NewCommandContext(0, ""))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errors.ErrorUnknownCommand)
	var unknown *errors.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.Name())
	assert.Zero(t, command.parsed)
	assert.Zero(t, command.executed)
}

func TestDispatcher_ArityCheckedBeforeParse(t *testing.T) {
	command := &parsingCommand{recordingCommand{name: "PAIR", arity: types.ExactArity(2)}}
	dispatcher := newTestDispatcher(t, command)

	for _, count := range []int{1, 3} {
		_, err := dispatcher.Dispatch("pair", make([][]byte, count), types.NewCommandContext(0, ""))

		var arity *errors.ArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, "PAIR", arity.Command())
		assert.Equal(t, 2, arity.Min())
		assert.Equal(t, 2, arity.Max())
		assert.Equal(t, count, arity.Actual())
	}
	assert.Zero(t, command.parsed)
	assert.Zero(t, command.executed)
}

func TestDispatcher_UnboundedArity(t *testing.T) {
	command := &recordingCommand{name: "MANY", arity: types.AtLeastArity(1)}
	dispatcher := newTestDispatcher(t, command)

	_, err := dispatcher.Dispatch("MANY", make([][]byte, 50), types.NewCommandContext(0, ""))
	assert.NoError(t, err)

	_, err = dispatcher.Dispatch("MANY", nil, types.NewCommandContext(0, ""))
	assert.ErrorIs(t, err, errors.ErrorArity)
}

func TestDispatcher_ParseResultReachesExecute(t *testing.T) {
	command := &parsingCommand{recordingCommand{name: "PAIR", arity: types.ExactArity(2)}}
	dispatcher := newTestDispatcher(t, command)
	context := types.NewCommandContext(5, "client")

	result, err := dispatcher.Dispatch("PAIR", [][]byte{[]byte("a"), []byte("b")}, context)

	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 1, command.parsed)
	assert.Equal(t, 2, command.lastArgs)
	assert.Equal(t, context, command.lastCtx)
}

func TestDispatcher_RawArgsPassThroughWithoutParser(t *testing.T) {
	command := &recordingCommand{name: "RAW", arity: types.ExactArity(1)}
	dispatcher := newTestDispatcher(t, command)
	rawArgs := [][]byte{[]byte("x")}

	_, err := dispatcher.Dispatch("raw", rawArgs, types.NewCommandContext(0, ""))

	require.NoError(t, err)
	assert.Equal(t, rawArgs, command.lastArgs)
}

func TestDispatcher_ErrorsPropagateUnchanged(t *testing.T) {
	parseErr := fmt.Errorf("parse failed")
	failingParse := &parsingCommand{recordingCommand{name: "BADPARSE", arity: types.ExactArity(0), parseErr: parseErr}}
	executeErr := errors.NewWrongTypeError("BADEXEC", "string", "list")
	failingExecute := &recordingCommand{name: "BADEXEC", arity: types.ExactArity(0), executeErr: executeErr}
	dispatcher := newTestDispatcher(t, failingParse, failingExecute)

	_, err := dispatcher.Dispatch("BADPARSE", nil, types.NewCommandContext(0, ""))
	assert.Same(t, parseErr, err)
	assert.Zero(t, failingParse.executed)

	_, err = dispatcher.Dispatch("BADEXEC", nil, types.NewCommandContext(0, ""))
	assert.Same(t, executeErr, err)
}
