package redigo

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"redicore/internal/redigo/types"
)

const DEFAULT_JOURNAL_CAPACITY = 1024

// Journal is a bounded in-memory append-only record of successful write commands.
// Once full, the oldest entries are dropped.
type Journal struct {
	capacity int
	entries  []types.JournalEntry
	dropped  int
}

func NewJournal(capacity int) *Journal {
	if capacity < 1 {
		capacity = DEFAULT_JOURNAL_CAPACITY
	}
	return &Journal{capacity: capacity}
}

func (journal *Journal) Append(entry types.JournalEntry) {
	if len(journal.entries) == journal.capacity {
		journal.entries = journal.entries[1:]
		journal.dropped++
	}
	journal.entries = append(journal.entries, entry)
}

// Returns a copy of the buffered entries, oldest first
func (journal *Journal) Entries() []types.JournalEntry {
	return append([]types.JournalEntry(nil), journal.entries...)
}

// Number of entries discarded because the journal was full
func (journal *Journal) Dropped() int {
	return journal.dropped
}

// Writes all buffered entries to writer as JSON lines and clears the buffer.
// The buffer is kept if writing fails.
func (journal *Journal) Flush(writer io.Writer) error {
	if len(journal.entries) == 0 {
		return nil
	}

	// One JSON object per line, stopping at the first failed write
	encoder := json.NewEncoder(writer)
	var err error
	lo.ForEach(journal.entries, func(entry types.JournalEntry, _ int) {
		if err != nil {
			return
		}
		err = encoder.Encode(entry)
	})
	if err != nil {
		return err
	}

	// Clear only once everything is written
	journal.entries = journal.entries[:0]
	return nil
}
