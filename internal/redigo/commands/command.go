// Package commands holds the command handlers served by the dispatcher.
package commands

import (
	"fmt"

	"github.com/samber/lo"

	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
	"redicore/pkg/utils"
)

const OK = "OK"

// descriptor carries the static part of every command
type descriptor struct {
	name  types.CommandName
	arity types.Arity
	write bool
}

func (d descriptor) Name() types.CommandName { return d.name }
func (d descriptor) Arity() types.Arity      { return d.arity }
func (d descriptor) IsWrite() bool           { return d.write }

// Converts every raw token to a string, reporting each nil token
func (d descriptor) parseStrings(rawArgs [][]byte) ([]string, error) {
	values, missing := utils.TokensToStrings(rawArgs)
	if len(missing) == 0 {
		return values, nil
	}

	failures := lo.Map(missing, func(position int, _ int) errors.ArgumentFailure {
		return errors.ArgumentFailure{Position: position, Reason: "expected a string, got nil"}
	})
	return nil, errors.NewInvalidArgumentError(string(d.name), failures...)
}

func (d descriptor) unexpectedArgs(args any) error {
	return fmt.Errorf("%s: unexpected arguments of type %T", d.name, args)
}

func selectedDatabase(engine *redigo.Engine, context types.CommandContext) (*redigo.Database, error) {
	return engine.GetDatabase(context.DatabaseIndex())
}

// Registers every command this package provides
func RegisterAll(registry *redigo.Registry) error {
	for _, command := range []redigo.Command{
		NewSetCommand(),
		NewGetCommand(),
		NewExpireCommand(),
		NewDelCommand(),
		NewExistsCommand(),
		NewTtlCommand(),
		NewPersistCommand(),
		NewTypeCommand(),
		NewDbSizeCommand(),
		NewSelectCommand(),
		NewPingCommand(),
		NewSearchCommand(),
		NewCommandCommand(registry),
	} {
		if err := registry.Register(command); err != nil {
			return err
		}
	}
	return nil
}
