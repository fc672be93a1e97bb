package types

import "time"

// ValueType tags the kind of payload held by a ValueEntry
type ValueType string

const (
	STRING_TYPE ValueType = "string"
	LIST_TYPE   ValueType = "list"
	SET_TYPE    ValueType = "set"
	HASH_TYPE   ValueType = "hash"
	STREAM_TYPE ValueType = "stream"
)

// NONE_TYPE is reported by TYPE for keys that are not live.
const NONE_TYPE ValueType = "none"

func (valueType ValueType) String() string {
	return string(valueType)
}

// ValueEntry wraps a stored value with its type tag and timestamps.
// It never changes after construction; use CloneWithValue to derive an updated entry.
type ValueEntry struct {
	valueType ValueType
	value     any
	createdAt time.Time
	updatedAt time.Time
}

// Creates an entry stamped with the current instant
func NewValueEntry(valueType ValueType, value any) *ValueEntry {
	now := time.Now()
	return &ValueEntry{
		valueType: valueType,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}
}

// Creates an entry keeping a previously recorded creation instant
func NewValueEntryAt(valueType ValueType, value any, createdAt time.Time) *ValueEntry {
	return &ValueEntry{
		valueType: valueType,
		value:     value,
		createdAt: createdAt,
		updatedAt: time.Now(),
	}
}

func NewStringEntry(value string) *ValueEntry {
	return NewValueEntry(STRING_TYPE, value)
}

func (entry *ValueEntry) Type() ValueType {
	return entry.valueType
}

func (entry *ValueEntry) Value() any {
	return entry.value
}

func (entry *ValueEntry) CreatedAt() time.Time {
	return entry.createdAt
}

func (entry *ValueEntry) UpdatedAt() time.Time {
	return entry.updatedAt
}

// Returns the payload as a string when the entry is string typed
func (entry *ValueEntry) StringValue() (string, bool) {
	if entry.valueType != STRING_TYPE {
		return "", false
	}
	value, ok := entry.value.(string)
	return value, ok
}

// Returns a new entry with the same type and creation instant, the given value
// and a fresh update instant. The receiver is left untouched.
func (entry *ValueEntry) CloneWithValue(value any) *ValueEntry {
	return NewValueEntryAt(entry.valueType, value, entry.createdAt)
}
