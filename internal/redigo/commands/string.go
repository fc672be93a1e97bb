package commands

import (
	"fmt"

	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

type setArgs struct {
	key   string
	value string
}

// SET key value
type SetCommand struct {
	descriptor
}

func NewSetCommand() *SetCommand {
	return &SetCommand{descriptor{name: types.SET, arity: types.ExactArity(2), write: true}}
}

func (command *SetCommand) Parse(rawArgs [][]byte) (any, error) {
	values, err := command.parseStrings(rawArgs)
	if err != nil {
		return nil, err
	}
	return setArgs{key: values[0], value: values[1]}, nil
}

// Stores a new string entry. A live key keeps its expiry; a due one is dropped with the old value.
func (command *SetCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	parsed, ok := args.(setArgs)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	// Evict the old entry first if its expiry is due, so the new value does not inherit it
	database.Get(parsed.key)
	database.Set(parsed.key, types.NewStringEntry(parsed.value))
	return OK, nil
}

// GET key
type GetCommand struct {
	descriptor
}

func NewGetCommand() *GetCommand {
	return &GetCommand{descriptor{name: types.GET, arity: types.ExactArity(1)}}
}

func (command *GetCommand) Parse(rawArgs [][]byte) (any, error) {
	values, err := command.parseStrings(rawArgs)
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// Returns the stored string, or nil when the key is not live
func (command *GetCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	key, ok := args.(string)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	entry, exists := database.Get(key)
	if !exists {
		return nil, nil
	}

	value, isString := entry.StringValue()
	if !isString {
		return nil, errors.NewWrongTypeError(string(command.name), types.STRING_TYPE.String(), describeEntry(entry))
	}
	return value, nil
}

// Type tag of entry, or the Go type of its payload when the payload does not match the tag
func describeEntry(entry *types.ValueEntry) string {
	if entry.Type() == types.STRING_TYPE {
		return fmt.Sprintf("%T", entry.Value())
	}
	return entry.Type().String()
}
