/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/tdlaas/tdlaas-node/core"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a session entry does not exist or has expired.
var ErrNotFound = errors.New("not found")

// Engine defines the interface for the storage engine.
type Engine interface {
	core.Engine
	core.Named
	core.Configurable
	core.Runnable

	// GetSessionDatabase returns the SessionDatabase
	GetSessionDatabase() SessionDatabase

	// GetSQLDatabase returns the SQL database.
	GetSQLDatabase() *gorm.DB
}

// SessionDatabase is a non-persistent database that holds session data on a KV basis.
// Keys could be nonces, session identifiers, etc.
// All entries are stored with a TTL, so they will be removed automatically.
type SessionDatabase interface {
	// GetStore returns a SessionStore with the given keys as key prefixes.
	// The keys are used to logically partition the store, e.g. `GetStore(ttl, "session")` stores entries under `session:<key>`.
	// Entries in the store expire after the given TTL.
	GetStore(ttl time.Duration, keys ...string) SessionStore
	// Close stops any background processes and closes the database.
	Close()
}

// SessionStore is a key-value store that holds session data.
// The SessionStore is an abstraction for underlying storage, it automatically adds prefixes for logical partitions.
type SessionStore interface {
	// Delete deletes the entry for the given key.
	// It does not return an error if the key does not exist.
	Delete(key string) error
	// Exists returns true if the key exists.
	Exists(key string) bool
	// Get returns the value for the given key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(key string, target interface{}) error
	// Put stores the given value for the given key, overwriting an existing entry.
	Put(key string, value interface{}) error
	// GetAndDelete combines Get and Delete as a single atomic operation:
	// of concurrent callers for the same key, at most one receives the value, all others get ErrNotFound.
	GetAndDelete(key string, target interface{}) error
}

const keySeparator = ":"

func joinKey(prefixes []string, key string) string {
	if len(prefixes) == 0 {
		return key
	}
	return strings.Join(prefixes, keySeparator) + keySeparator + key
}
