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
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/tdlaas/tdlaas-node/storage/log"
)

var _ SessionDatabase = (*MemcachedSessionDatabase)(nil)
var _ SessionStore = (*memcachedSessionStore)(nil)

// MemcachedConfig holds the configuration for the memcached session database.
type MemcachedConfig struct {
	Address []string `koanf:"address"`
}

func (m MemcachedConfig) isConfigured() bool {
	return len(m.Address) > 0
}

func newMemcachedClient(config MemcachedConfig) *memcache.Client {
	return memcache.New(config.Address...)
}

// MemcachedSessionDatabase is a SessionDatabase backed by memcached.
type MemcachedSessionDatabase struct {
	client *memcache.Client
}

// NewMemcachedSessionDatabase creates a new MemcachedSessionDatabase using an initialized memcache.Client.
func NewMemcachedSessionDatabase(client *memcache.Client) *MemcachedSessionDatabase {
	return &MemcachedSessionDatabase{client: client}
}

func (s MemcachedSessionDatabase) GetStore(ttl time.Duration, keys ...string) SessionStore {
	return memcachedSessionStore{
		client:   s.client,
		ttl:      ttl,
		prefixes: keys,
	}
}

func (s MemcachedSessionDatabase) Close() {
	if err := s.client.Close(); err != nil {
		log.Logger().WithError(err).Error("Failed to close memcached client")
	}
}

type memcachedSessionStore struct {
	client   *memcache.Client
	ttl      time.Duration
	prefixes []string
}

func (m memcachedSessionStore) Delete(key string) error {
	err := m.client.Delete(m.getFullKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil
	}
	return err
}

func (m memcachedSessionStore) Exists(key string) bool {
	_, err := m.client.Get(m.getFullKey(key))
	return err == nil
}

func (m memcachedSessionStore) Get(key string, target interface{}) error {
	item, err := m.client.Get(m.getFullKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return json.Unmarshal(item.Value, target)
}

func (m memcachedSessionStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.client.Set(&memcache.Item{
		Key:        m.getFullKey(key),
		Value:      data,
		Expiration: expirationSeconds(m.ttl),
	})
}

func (m memcachedSessionStore) GetAndDelete(key string, target interface{}) error {
	fullKey := m.getFullKey(key)
	item, err := m.client.Get(fullKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	// Only one of concurrent callers can delete the item, the others get a cache miss.
	if err = m.client.Delete(fullKey); errors.Is(err, memcache.ErrCacheMiss) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return json.Unmarshal(item.Value, target)
}

func (m memcachedSessionStore) getFullKey(key string) string {
	return joinKey(m.prefixes, key)
}

// expirationSeconds converts the TTL to memcached expiration, rounding up to whole seconds.
// Memcached treats values over 30 days as a unix timestamp, so those are converted to an absolute time.
func expirationSeconds(ttl time.Duration) int32 {
	seconds := int64(math.Ceil(ttl.Seconds()))
	if seconds > 60*60*24*30 {
		return int32(time.Now().Add(ttl).Unix())
	}
	return int32(seconds)
}
