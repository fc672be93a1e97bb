package redigo

import (
	"time"

	"redicore/internal/redigo/types"
)

// Database owns one keyspace and the absolute expiry instants of its keys.
// Expiration is lazy: an expired key is only removed when it is accessed or deleted.
type Database struct {
	index          int
	store          map[string]*types.ValueEntry // Main key-value store
	expirationKeys map[string]int64             // Absolute expiry instants in milliseconds
	orderedKeys    *keyIndex                    // Keys of store in ascending order
	clock          func() time.Time
}

func newDatabase(index int, clock func() time.Time) *Database {
	return &Database{
		index:          index,
		store:          make(map[string]*types.ValueEntry),
		expirationKeys: make(map[string]int64),
		orderedKeys:    newKeyIndex(),
		clock:          clock,
	}
}

func (database *Database) Index() int {
	return database.index
}

func (database *Database) Now() time.Time {
	return database.clock()
}

// Returns the live entry for key. An expired key is removed on the way.
func (database *Database) Get(key string) (*types.ValueEntry, bool) {
	if database.IsExpired(key) {
		database.Delete(key)
		return nil, false
	}

	entry, exists := database.store[key]
	return entry, exists
}

// Creates or overwrites the entry for key. Any recorded expiry is kept.
func (database *Database) Set(key string, entry *types.ValueEntry) {
	if _, exists := database.store[key]; !exists {
		database.orderedKeys.add(key)
	}
	database.store[key] = entry
}

// Removes key and its expiry. Reports whether the key was present.
func (database *Database) Delete(key string) bool {
	_, exists := database.store[key]
	if exists {
		delete(database.store, key)
		database.orderedKeys.remove(key)
	}
	delete(database.expirationKeys, key)
	return exists
}

// Number of keys held, including expired keys nobody has touched yet
func (database *Database) Len() int {
	return len(database.store)
}

// Visits every live entry in ascending key order until visit returns false.
// Expired entries are skipped but not removed.
func (database *Database) Range(visit func(key string, entry *types.ValueEntry, expiresAt int64) bool) {
	database.orderedKeys.ascendPrefix("", func(key string) bool {
		if database.IsExpired(key) {
			return true
		}
		return visit(key, database.store[key], database.expirationKeys[key])
	})
}
