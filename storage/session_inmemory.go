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
	"context"
	"encoding/json"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/tdlaas/tdlaas-node/storage/log"
)

var _ SessionDatabase = (*inMemorySessionDatabase)(nil)
var _ SessionStore = (*inMemorySessionStore)(nil)

var sessionStorePruneInterval = 10 * time.Minute

// inMemorySessionDatabase is an in-memory database that holds session data on a KV basis.
// Expired entries are invisible to readers and are pruned periodically.
type inMemorySessionDatabase struct {
	cancel   context.CancelFunc
	ctx      context.Context
	mux      sync.Mutex
	routines sync.WaitGroup
	entries  *gocache.Cache
}

// NewInMemorySessionDatabase creates a new in memory session database.
func NewInMemorySessionDatabase() SessionDatabase {
	result := &inMemorySessionDatabase{
		// no janitor: pruning is done by startPruning so it can be stopped on Close()
		entries: gocache.New(gocache.NoExpiration, 0),
	}
	result.ctx, result.cancel = context.WithCancel(context.Background())
	result.startPruning(sessionStorePruneInterval)
	return result
}

func (i *inMemorySessionDatabase) GetStore(ttl time.Duration, keys ...string) SessionStore {
	return inMemorySessionStore{
		ttl:      ttl,
		prefixes: keys,
		db:       i,
	}
}

func (i *inMemorySessionDatabase) Close() {
	// Signal pruner to stop and wait for it to finish
	i.cancel()
	i.routines.Wait()
}

func (i *inMemorySessionDatabase) startPruning(interval time.Duration) {
	ticker := time.NewTicker(interval)
	i.routines.Add(1)
	go func(ctx context.Context) {
		defer i.routines.Done()
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				i.prune()
			}
		}
	}(i.ctx)
}

func (i *inMemorySessionDatabase) prune() {
	before := i.entries.ItemCount()
	i.entries.DeleteExpired()
	if pruned := before - i.entries.ItemCount(); pruned > 0 {
		log.Logger().Debugf("Pruned %d expired session variables", pruned)
	}
}

type inMemorySessionStore struct {
	ttl      time.Duration
	prefixes []string
	db       *inMemorySessionDatabase
}

func (i inMemorySessionStore) Delete(key string) error {
	i.db.mux.Lock()
	defer i.db.mux.Unlock()

	i.db.entries.Delete(i.getFullKey(key))
	return nil
}

func (i inMemorySessionStore) Exists(key string) bool {
	_, ok := i.db.entries.Get(i.getFullKey(key))
	return ok
}

func (i inMemorySessionStore) Get(key string, target interface{}) error {
	value, ok := i.db.entries.Get(i.getFullKey(key))
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(value.([]byte), target)
}

func (i inMemorySessionStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	i.db.mux.Lock()
	defer i.db.mux.Unlock()

	i.db.entries.Set(i.getFullKey(key), data, i.ttl)
	return nil
}

func (i inMemorySessionStore) GetAndDelete(key string, target interface{}) error {
	// go-cache has no get-and-delete primitive
	i.db.mux.Lock()
	defer i.db.mux.Unlock()

	fullKey := i.getFullKey(key)
	value, ok := i.db.entries.Get(fullKey)
	if !ok {
		return ErrNotFound
	}
	i.db.entries.Delete(fullKey)
	return json.Unmarshal(value.([]byte), target)
}

func (i inMemorySessionStore) getFullKey(key string) string {
	return joinKey(i.prefixes, key)
}
