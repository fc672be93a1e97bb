package redigo

import (
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

// Dispatcher runs one invocation through lookup, arity check, parse and execute.
// Errors from parse and execute are returned untouched.
type Dispatcher struct {
	engine   *Engine
	registry *Registry
}

func NewDispatcher(engine *Engine, registry *Registry) *Dispatcher {
	return &Dispatcher{
		engine:   engine,
		registry: registry,
	}
}

func (dispatcher *Dispatcher) Engine() *Engine {
	return dispatcher.engine
}

func (dispatcher *Dispatcher) Registry() *Registry {
	return dispatcher.registry
}

func (dispatcher *Dispatcher) Dispatch(commandName string, rawArgs [][]byte, context types.CommandContext) (any, error) {
	// Lookup
	command, exists := dispatcher.registry.Get(commandName)
	if !exists {
		return nil, errors.NewUnknownCommandError(commandName)
	}

	// Arity is checked before any argument is looked at
	arity := command.Arity()
	if !arity.Accepts(len(rawArgs)) {
		return nil, errors.NewArityError(string(command.Name()), arity.Min, arity.Max, len(rawArgs))
	}

	// Commands without a parser receive the raw tokens
	var args any = rawArgs
	if parser, ok := command.(Parser); ok {
		parsed, err := parser.Parse(rawArgs)
		if err != nil {
			return nil, err
		}
		args = parsed
	}

	return command.Execute(dispatcher.engine, context, args)
}
