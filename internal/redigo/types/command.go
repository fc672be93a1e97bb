package types

import "fmt"

type CommandName string

const (
	SET     CommandName = "SET"
	GET     CommandName = "GET"
	EXPIRE  CommandName = "EXPIRE"
	DEL     CommandName = "DEL"
	EXISTS  CommandName = "EXISTS"
	TTL     CommandName = "TTL"
	PERSIST CommandName = "PERSIST"
	TYPE    CommandName = "TYPE"
	DBSIZE  CommandName = "DBSIZE"
	SELECT  CommandName = "SELECT"
	PING    CommandName = "PING"
	SEARCH  CommandName = "SEARCH"
	COMMAND CommandName = "COMMAND"
)

// UNBOUNDED as an arity maximum accepts any number of arguments above the minimum
const UNBOUNDED = -1

// Arity is the inclusive range of arguments a command accepts, command name excluded
type Arity struct {
	Min int
	Max int
}

func ExactArity(count int) Arity {
	return Arity{Min: count, Max: count}
}

func AtLeastArity(count int) Arity {
	return Arity{Min: count, Max: UNBOUNDED}
}

func (arity Arity) Accepts(count int) bool {
	if count < arity.Min {
		return false
	}
	return arity.Max == UNBOUNDED || count <= arity.Max
}

func (arity Arity) String() string {
	switch {
	case arity.Max == UNBOUNDED:
		return fmt.Sprintf("at least %d", arity.Min)
	case arity.Min == arity.Max:
		return fmt.Sprintf("%d", arity.Min)
	default:
		return fmt.Sprintf("%d to %d", arity.Min, arity.Max)
	}
}

// JournalEntry records one successful write command
type JournalEntry struct {
	Name      CommandName `json:"name"`
	Database  int         `json:"database"`
	Args      []string    `json:"args"`
	ClientId  string      `json:"clientId,omitempty"`
	Timestamp int64       `json:"timestamp"`
}
