package commands

import (
	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

// SEARCH clause value [clause value ...]
type SearchCommand struct {
	descriptor
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{descriptor{name: types.SEARCH, arity: types.AtLeastArity(2)}}
}

func (command *SearchCommand) Parse(rawArgs [][]byte) (any, error) {
	parts, err := command.parseStrings(rawArgs)
	if err != nil {
		return nil, err
	}

	query, failures := redigo.ParseRedigoQuery(parts)
	if len(failures) > 0 {
		return nil, errors.NewInvalidArgumentError(string(command.name), failures...)
	}
	return query, nil
}

// Returns matching live keys in ascending order
func (command *SearchCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	query, ok := args.(types.RedigoQuery)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	keys := database.Search(query)
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
