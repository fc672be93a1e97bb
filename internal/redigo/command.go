package redigo

import (
	"strings"

	"github.com/samber/lo"

	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

// Command is a named unit of execution. Execute must not block and may only
// change state through the databases reached via the engine.
type Command interface {
	Name() types.CommandName
	Arity() types.Arity
	IsWrite() bool
	Execute(engine *Engine, context types.CommandContext, args any) (any, error)
}

// Parser is implemented by commands that turn raw tokens into structured arguments
// before execution. Parse must be pure and reject invalid input instead of coercing it.
type Parser interface {
	Parse(rawArgs [][]byte) (any, error)
}

// Registry maps uppercase command names to commands
type Registry struct {
	commands map[types.CommandName]Command
	order    []types.CommandName
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[types.CommandName]Command)}
}

func normalizeCommandName(name string) types.CommandName {
	return types.CommandName(strings.ToUpper(strings.TrimSpace(name)))
}

// Stores command under its uppercase name. Names can only be registered once.
func (registry *Registry) Register(command Command) error {
	name := normalizeCommandName(string(command.Name()))
	if lo.HasKey(registry.commands, name) {
		return errors.NewDuplicateRegistrationError(string(name))
	}

	registry.commands[name] = command
	registry.order = append(registry.order, name)
	return nil
}

func (registry *Registry) Get(name string) (Command, bool) {
	command, exists := registry.commands[normalizeCommandName(name)]
	return command, exists
}

// Returns all commands in registration order
func (registry *Registry) List() []Command {
	return lo.Map(registry.order, func(name types.CommandName, _ int) Command {
		return registry.commands[name]
	})
}
