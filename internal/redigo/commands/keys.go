package commands

import (
	"time"

	"redicore/internal/redigo"
	"redicore/internal/redigo/types"
)

// keyCommand is a command taking one or more keys and nothing else
type keyCommand struct {
	descriptor
}

func (command *keyCommand) Parse(rawArgs [][]byte) (any, error) {
	values, err := command.parseStrings(rawArgs)
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (command *keyCommand) keys(args any) ([]string, error) {
	keys, ok := args.([]string)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}
	return keys, nil
}

// DEL key [key ...]
type DelCommand struct {
	keyCommand
}

func NewDelCommand() *DelCommand {
	return &DelCommand{keyCommand{descriptor{name: types.DEL, arity: types.AtLeastArity(1), write: true}}}
}

// Returns the number of live keys removed
func (command *DelCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	keys, err := command.keys(args)
	if err != nil {
		return nil, err
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	var removed int64
	for _, key := range keys {
		if _, exists := database.Get(key); exists {
			database.Delete(key)
			removed++
		}
	}
	return removed, nil
}

// EXISTS key [key ...]
type ExistsCommand struct {
	keyCommand
}

func NewExistsCommand() *ExistsCommand {
	return &ExistsCommand{keyCommand{descriptor{name: types.EXISTS, arity: types.AtLeastArity(1)}}}
}

// Counts live keys; a key named twice counts twice
func (command *ExistsCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	keys, err := command.keys(args)
	if err != nil {
		return nil, err
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	var count int64
	for _, key := range keys {
		if _, exists := database.Get(key); exists {
			count++
		}
	}
	return count, nil
}

// TTL key
type TtlCommand struct {
	keyCommand
}

func NewTtlCommand() *TtlCommand {
	return &TtlCommand{keyCommand{descriptor{name: types.TTL, arity: types.ExactArity(1)}}}
}

// Returns -2 for a missing key, -1 for a key without expiry, else the remaining seconds
func (command *TtlCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	keys, err := command.keys(args)
	if err != nil {
		return nil, err
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	remaining, hasExpiry, exists := database.Ttl(keys[0])
	switch {
	case !exists:
		return int64(-2), nil
	case !hasExpiry:
		return int64(-1), nil
	default:
		return int64((remaining + 500*time.Millisecond) / time.Second), nil
	}
}

// PERSIST key
type PersistCommand struct {
	keyCommand
}

func NewPersistCommand() *PersistCommand {
	return &PersistCommand{keyCommand{descriptor{name: types.PERSIST, arity: types.ExactArity(1), write: true}}}
}

func (command *PersistCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	keys, err := command.keys(args)
	if err != nil {
		return nil, err
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	if database.Persist(keys[0]) {
		return int64(1), nil
	}
	return int64(0), nil
}

// TYPE key
type TypeCommand struct {
	keyCommand
}

func NewTypeCommand() *TypeCommand {
	return &TypeCommand{keyCommand{descriptor{name: types.TYPE, arity: types.ExactArity(1)}}}
}

func (command *TypeCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	keys, err := command.keys(args)
	if err != nil {
		return nil, err
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	entry, exists := database.Get(keys[0])
	if !exists {
		return types.NONE_TYPE.String(), nil
	}
	return entry.Type().String(), nil
}
