package commands

import (
	"math"
	"time"

	"redicore/internal/redigo"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
	"redicore/pkg/utils"
)

// Keeps now + seconds in milliseconds clear of int64 overflow
const maxExpireSeconds = math.MaxInt64 / int64(time.Second/time.Millisecond) / 2

type expireArgs struct {
	key     string
	seconds int64
}

// EXPIRE key seconds
type ExpireCommand struct {
	descriptor
}

func NewExpireCommand() *ExpireCommand {
	return &ExpireCommand{descriptor{name: types.EXPIRE, arity: types.ExactArity(2), write: true}}
}

func (command *ExpireCommand) Parse(rawArgs [][]byte) (any, error) {
	var failures []errors.ArgumentFailure

	if rawArgs[0] == nil {
		failures = append(failures, errors.ArgumentFailure{Position: 0, Reason: "expected a string, got nil"})
	}

	var seconds int64
	if rawArgs[1] == nil {
		failures = append(failures, errors.ArgumentFailure{Position: 1, Reason: "expected an integer, got nil"})
	} else {
		value, err := utils.FromStringToInt64(string(rawArgs[1]))
		switch {
		case err != nil:
			failures = append(failures, errors.ArgumentFailure{Position: 1, Reason: "value is not an integer or out of range"})
		case value <= 0:
			failures = append(failures, errors.ArgumentFailure{Position: 1, Reason: "seconds must be strictly positive"})
		case value > maxExpireSeconds:
			failures = append(failures, errors.ArgumentFailure{Position: 1, Reason: "invalid expire time"})
		default:
			seconds = value
		}
	}

	if len(failures) > 0 {
		return nil, errors.NewInvalidArgumentError(string(command.name), failures...)
	}
	return expireArgs{key: string(rawArgs[0]), seconds: seconds}, nil
}

// Returns 1 when the expiry was recorded, 0 when the key is not live
func (command *ExpireCommand) Execute(engine *redigo.Engine, context types.CommandContext, args any) (any, error) {
	parsed, ok := args.(expireArgs)
	if !ok {
		return nil, command.unexpectedArgs(args)
	}

	database, err := selectedDatabase(engine, context)
	if err != nil {
		return nil, err
	}

	// A missing or already expired key cannot be given a lifetime
	if _, exists := database.Get(parsed.key); !exists {
		return int64(0), nil
	}

	expirationTime := database.Now().UnixMilli() + parsed.seconds*1000
	database.SetExpiry(parsed.key, expirationTime)
	return int64(1), nil
}
