package redigo

import (
	"time"

	"github.com/samber/lo"
)

// Reports whether key carries an expiry that is due. It never removes anything.
func (database *Database) IsExpired(key string) bool {
	expirationTime, hasExpiry := database.expirationKeys[key]
	return hasExpiry && database.clock().UnixMilli() >= expirationTime
}

// Records the absolute expiry of key in milliseconds. Ignored when key is not stored.
func (database *Database) SetExpiry(key string, timestampMs int64) {
	if _, exists := database.store[key]; !exists {
		return
	}
	database.expirationKeys[key] = timestampMs
}

// Returns the recorded expiry of key, if any
func (database *Database) Expiry(key string) (int64, bool) {
	expirationTime, hasExpiry := database.expirationKeys[key]
	return expirationTime, hasExpiry
}

// Drops the expiry of a live key. Reports whether one was removed.
func (database *Database) Persist(key string) bool {
	if _, exists := database.Get(key); !exists {
		return false
	}
	_, hasExpiry := database.expirationKeys[key]
	delete(database.expirationKeys, key)
	return hasExpiry
}

// Returns the remaining lifetime of key, whether it has an expiry and whether it is live
func (database *Database) Ttl(key string) (time.Duration, bool, bool) {
	// Get evicts the key if it is already due
	if _, exists := database.Get(key); !exists {
		return 0, false, false
	}

	// Remaining time is only meaningful when an expiry is recorded
	expirationTime, hasExpiry := database.expirationKeys[key]
	remaining := lo.Ternary(
		hasExpiry,
		time.Duration(expirationTime-database.clock().UnixMilli())*time.Millisecond,
		0,
	)
	return remaining, hasExpiry, true
}
