package server

import (
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/oklog/ulid/v2"

	"redicore/internal/redigo"
	"redicore/internal/redigo/commands"
	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
	"redicore/internal/telemetry"
	"redicore/pkg/utils"
)

const QUIT_COMMAND = "QUIT"

// Session is the per-client state around the dispatcher: the selected database,
// the client id, and the bookkeeping done after each command.
type Session struct {
	id         string
	context    types.CommandContext
	dispatcher *redigo.Dispatcher
	journal    *redigo.Journal
	metrics    *telemetry.Metrics
	logger     hclog.Logger
}

// journal and metrics may be nil
func NewSession(dispatcher *redigo.Dispatcher, journal *redigo.Journal, metrics *telemetry.Metrics, logger hclog.Logger) *Session {
	id := ulid.Make().String()
	return &Session{
		id:         id,
		context:    types.NewCommandContext(0, id),
		dispatcher: dispatcher,
		journal:    journal,
		metrics:    metrics,
		logger:     logger.Named("session").With("client", id),
	}
}

func (session *Session) Id() string {
	return session.id
}

func (session *Session) Context() types.CommandContext {
	return session.context
}

// Dispatches one command with the session's current context
func (session *Session) Execute(name string, rawArgs [][]byte) (any, error) {
	start := time.Now()
	result, err := session.dispatcher.Dispatch(name, rawArgs, session.context)
	session.observe(name, time.Since(start), err)

	if err != nil {
		session.logger.Debug("command failed", "command", name, "code", errors.Code(err), "error", err)
		return nil, err
	}

	if selected, ok := result.(types.CommandContext); ok {
		session.logger.Debug("database selected", "database", selected.DatabaseIndex())
		session.context = selected
		return commands.OK, nil
	}

	session.record(name, rawArgs)
	return result, nil
}

// Parses and runs one text line. quit is true when the client asked to leave.
func (session *Session) ExecuteLine(line string) (response ClientResponse, quit bool) {
	name, rawArgs := utils.SplitCommandLine(strings.Fields(line))
	if name == "" {
		return NewErrorResponse(errors.NewUnknownCommandError("")), false
	}
	if strings.EqualFold(name, QUIT_COMMAND) {
		return NewSuccessResponse(commands.OK), true
	}

	result, err := session.Execute(name, rawArgs)
	if err != nil {
		return NewErrorResponse(err), false
	}
	return NewSuccessResponse(FormatReply(result)), false
}

func (session *Session) observe(name string, elapsed time.Duration, err error) {
	if session.metrics == nil {
		return
	}

	label := strings.ToUpper(name)
	if _, known := session.dispatcher.Registry().Get(name); !known {
		label = "unknown"
	}
	session.metrics.Observe(label, elapsed, err)
}

func (session *Session) record(name string, rawArgs [][]byte) {
	if session.journal == nil {
		return
	}

	command, exists := session.dispatcher.Registry().Get(name)
	if !exists || !command.IsWrite() {
		return
	}

	args, _ := utils.TokensToStrings(rawArgs)
	session.journal.Append(types.JournalEntry{
		Name:      command.Name(),
		Database:  session.context.DatabaseIndex(),
		Args:      args,
		ClientId:  session.id,
		Timestamp: time.Now().UnixMilli(),
	})
}
