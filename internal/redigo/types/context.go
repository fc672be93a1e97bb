package types

// CommandContext is the per-call session state handed to every command.
// It is passed by value; changing the selected database yields a new context.
type CommandContext struct {
	databaseIndex int
	clientId      string
}

func NewCommandContext(databaseIndex int, clientId string) CommandContext {
	return CommandContext{
		databaseIndex: databaseIndex,
		clientId:      clientId,
	}
}

func (context CommandContext) DatabaseIndex() int {
	return context.databaseIndex
}

// Returns the opaque client identifier, if the session has one
func (context CommandContext) ClientId() (string, bool) {
	return context.clientId, context.clientId != ""
}

func (context CommandContext) WithDatabase(databaseIndex int) CommandContext {
	return CommandContext{
		databaseIndex: databaseIndex,
		clientId:      context.clientId,
	}
}
