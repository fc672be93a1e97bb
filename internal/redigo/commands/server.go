package commands

import (
	"github.com/samber/lo"

	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
	"redicore/pkg/utils"
)

const PONG = "PONG"

// DBSIZE
type DbSizeCommand struct {
	descriptor
}

func NewDbSizeCommand() *DbSizeCommand {
	return &DbSizeCommand{descriptor{name: types.DBSIZE, arity: types.ExactArity(0)}}
}

func (command *DbSizeCommand) Execute(engine *redigo.Engine, context types.CommandContext, _ any) (any, error) {
	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}
	return int64(database.Len()), nil
}

// SELECT index
type SelectCommand struct {
	descriptor
}

func NewSelectCommand() *SelectCommand {
	return &SelectCommand{descriptor{name: types.SELECT, arity: types.ExactArity(1)}}
}

func (command *SelectCommand) Parse(rawArgs [][]byte) (any, error) {
	if rawArgs[0] == nil {
		return nil, errors.NewInvalidArgumentError(string(command.name),
			errors.ArgumentFailure{Position: 0, Reason: "expected an integer, got nil"})
	}

	index, err := utils.FromStringToInt64(string(rawArgs[0]))
	if err != nil || index != int64(int(index)) {
		return nil, errors.NewInvalidArgumentError(string(command.name),
			errors.ArgumentFailure{Position: 0, Reason: "value is not an integer or out of range"})
	}
	return int(index), nil
}

// Returns the context the session should continue with
func (command *SelectCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	index, ok := args.(int)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}

	if _, err := engine.GetDatabase(index); err != nil {
		return nil, err
	}
	return context.WithDatabase(index), nil
}

// PING [message]
type PingCommand struct {
	descriptor
}

func NewPingCommand() *PingCommand {
	return &PingCommand{descriptor{name: types.PING, arity: types.Arity{Min: 0, Max: 1}}}
}

func (command *PingCommand) Parse(rawArgs [][]byte) (any, error) {
	values, err := command.parseStrings(rawArgs)
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (command *PingCommand) Execute(_ *redigo.Engine, _ types.CommandContext, args any) (any, error) {
	message, ok := args.([]string)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}
	if len(message) == 0 {
		return PONG, nil
	}
	return message[0], nil
}

// COMMAND lists the registered command names
type CommandCommand struct {
	descriptor
	registry *redigo.Registry
}

func NewCommandCommand(registry *redigo.Registry) *CommandCommand {
	return &CommandCommand{
		descriptor: descriptor{name: types.COMMAND, arity: types.ExactArity(0)},
		registry:   registry,
	}
}

func (command *CommandCommand) Execute(_ *redigo.Engine, _ types.CommandContext, _ any) (any, error) {
	return lo.Map(command.registry.List(), func(registered redigo.Command, _ int) string {
		return string(registered.Name())
	}), nil
}
