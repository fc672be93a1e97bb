package redigo

import (
	"encoding/json"
	"io"
	"strconv"

	"redicore/internal/redigo/types"
)

// SnapshotEntry is the serialized form of one live key
type SnapshotEntry struct {
	Type      types.ValueType `json:"type"`
	Value     any             `json:"value"`
	ExpiresAt int64           `json:"expiresAt,omitempty"`
}

// Collects the live entries of every non-empty database, keyed by database index
func BuildSnapshot(engine *Engine) map[string]map[string]SnapshotEntry {
	snapshot := make(map[string]map[string]SnapshotEntry)

	for _, database := range engine.databases {
		entries := make(map[string]SnapshotEntry)
		database.Range(func(key string, entry *types.ValueEntry, expiresAt int64) bool {
			entries[key] = SnapshotEntry{
				Type:      entry.Type(),
				Value:     entry.Value(),
				ExpiresAt: expiresAt,
			}
			return true
		})

		if len(entries) > 0 {
			snapshot[strconv.Itoa(database.index)] = entries
		}
	}
	return snapshot
}

// Writes the live contents of engine to writer as indented JSON
func WriteSnapshot(writer io.Writer, engine *Engine) error {
	jsonData, err := json.MarshalIndent(BuildSnapshot(engine), "", "  ")
	if err != nil {
		return err
	}

	jsonData = append(jsonData, '\n')
	_, err = writer.Write(jsonData)
	return err
}
