package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"redicore/internal/redigo"
	"redicore/internal/redigo/types"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time { return clock.now }

func (clock *fakeClock) Advance(duration time.Duration) {
	clock.now = clock.now.Add(duration)
}

type harness struct {
	t          *testing.T
	clock      *fakeClock
	dispatcher *redigo.Dispatcher
	context    types.CommandContext
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	registry := redigo.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	return &harness{
		t:          t,
		clock:      clock,
		dispatcher: redigo.NewDispatcher(redigo.NewEngine(redigo.DEFAULT_DATABASE_COUNT, redigo.WithClock(clock.Now)), registry),
		context:    types.NewCommandContext(0, "test-client"),
	}
}

func (h *harness) run(name string, args ...string) (any, error) {
	rawArgs := make([][]byte, len(args))
	for i, arg := range args {
		rawArgs[i] = []byte(arg)
	}
	return h.dispatcher.Dispatch(name, rawArgs, h.context)
}

func (h *harness) mustRun(name string, args ...string) any {
	h.t.Helper()
	result, err := h.run(name, args...)
	require.NoError(h.t, err)
	return result
}

func (h *harness) database() *redigo.Database {
	h.t.Helper()
	database, err := h.dispatcher.Engine().GetDatabase(h.context.DatabaseIndex())
	require.NoError(h.t, err)
	return database
}
