package redigo

import (
	"time"

	"redicore/internal/redigo/errors"
)

const DEFAULT_DATABASE_COUNT = 16

// Engine routes to a fixed set of databases. It holds no keyspace data itself.
type Engine struct {
	databases []*Database
}

type EngineOption func(*engineOptions)

type engineOptions struct {
	clock func() time.Time
}

// Replaces the wall clock used for expiry checks
func WithClock(clock func() time.Time) EngineOption {
	return func(options *engineOptions) {
		options.clock = clock
	}
}

// Creates an engine with databaseCount databases. A count below 1 falls back to the default.
func NewEngine(databaseCount int, options ...EngineOption) *Engine {
	settings := engineOptions{clock: time.Now}
	for _, option := range options {
		option(&settings)
	}

	if databaseCount < 1 {
		databaseCount = DEFAULT_DATABASE_COUNT
	}

	engine := &Engine{databases: make([]*Database, databaseCount)}
	for i := range engine.databases {
		engine.databases[i] = newDatabase(i, settings.clock)
	}
	return engine
}

func (engine *Engine) DatabaseCount() int {
	return len(engine.databases)
}

// Returns the database at index, or an out-of-range error
func (engine *Engine) GetDatabase(index int) (*Database, error) {
	if index < 0 || index >= len(engine.databases) {
		return nil, errors.NewIndexOutOfRangeError(index, len(engine.databases))
	}
	return engine.databases[index], nil
}
