package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

func TestDbSizeCommand(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, int64(0), h.mustRun("DBSIZE"))

	h.mustRun("SET", "a", "1")
	h.mustRun("SET", "b", "2")
	assert.Equal(t, int64(2), h.mustRun("DBSIZE"))
}

func TestSelectCommand_ReturnsNewContext(t *testing.T) {
	h := newHarness(t)

	result := h.mustRun("SELECT", "3")

	selected, ok := result.(types.CommandContext)
	require.True(t, ok)
	assert.Equal(t, 3, selected.DatabaseIndex())
	assert.Equal(t, 0, h.context.DatabaseIndex())
	clientId, _ := selected.ClientId()
	assert.Equal(t, "test-client", clientId)
}

func TestSelectCommand_OutOfRange(t *testing.T) {
	h := newHarness(t)

	for _, index := range []string{"16", "-1"} {
		_, err := h.run("SELECT", index)
		assert.ErrorIs(t, err, errors.ErrorIndexOutOfRange)
	}

	_, err := h.run("SELECT", "one")
	assert.ErrorIs(t, err, errors.ErrorInvalidArgument)
}

func TestPingCommand(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, PONG, h.mustRun("PING"))
	assert.Equal(t, "hello", h.mustRun("PING", "hello"))

	_, err := h.run("PING", "a", "b")
	assert.ErrorIs(t, err, errors.ErrorArity)
}

func TestCommandCommand_ListsRegisteredNames(t *testing.T) {
	h := newHarness(t)

	names := h.mustRun("COMMAND").([]string)

	assert.Equal(t, []string{
		"SET", "GET", "EXPIRE", "DEL", "EXISTS", "TTL", "PERSIST",
		"TYPE", "DBSIZE", "SELECT", "PING", "SEARCH", "COMMAND",
	}, names)
}

func TestRegisterAllTwiceFails(t *testing.T) {
	registry := redigo.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	assert.ErrorIs(t, RegisterAll(registry), errors.ErrorDuplicateRegistration)
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("NOPE")

	var unknown *errors.UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.Name())
}

func TestWriteClassification(t *testing.T) {
	registry := redigo.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	writes := map[types.CommandName]bool{}
	for _, command := range registry.List() {
		if command.IsWrite() {
			writes[command.Name()] = true
		}
	}
	assert.Equal(t, map[types.CommandName]bool{
		types.SET: true, types.EXPIRE: true, types.DEL: true, types.PERSIST: true,
	}, writes)
}
