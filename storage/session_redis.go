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
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tdlaas/tdlaas-node/storage/log"
)

var _ SessionDatabase = (*redisSessionDatabase)(nil)
var _ SessionStore = (*redisSessionStore)(nil)

// NewRedisSessionDatabase creates a SessionDatabase backed by Redis. All keys are prefixed with the given prefix (if any).
func NewRedisSessionDatabase(client redis.UniversalClient, prefix string) SessionDatabase {
	return redisSessionDatabase{
		client: client,
		prefix: prefix,
	}
}

type redisSessionDatabase struct {
	client redis.UniversalClient
	prefix string
}

func (s redisSessionDatabase) GetStore(ttl time.Duration, keys ...string) SessionStore {
	var prefixes []string
	if len(s.prefix) > 0 {
		prefixes = append(prefixes, s.prefix)
	}
	return redisSessionStore{
		client:   s.client,
		ttl:      ttl,
		prefixes: append(prefixes, keys...),
	}
}

func (s redisSessionDatabase) Close() {
	if err := s.client.Close(); err != nil {
		log.Logger().WithError(err).Error("Failed to close Redis client")
	}
}

type redisSessionStore struct {
	client   redis.UniversalClient
	ttl      time.Duration
	prefixes []string
}

func (s redisSessionStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.getFullKey(key)).Err()
}

func (s redisSessionStore) Exists(key string) bool {
	result, err := s.client.Exists(context.Background(), s.getFullKey(key)).Result()
	if err != nil {
		log.Logger().WithError(err).Error("Failed to check whether value exists in Redis session store")
		return false
	}
	return result > 0
}

func (s redisSessionStore) Get(key string, target interface{}) error {
	result, err := s.client.Get(context.Background(), s.getFullKey(key)).Result()
	return s.unmarshal(result, err, target)
}

func (s redisSessionStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.getFullKey(key), data, s.ttl).Err()
}

func (s redisSessionStore) GetAndDelete(key string, target interface{}) error {
	// GETDEL is atomic: of concurrent callers only one receives the value
	result, err := s.client.GetDel(context.Background(), s.getFullKey(key)).Result()
	return s.unmarshal(result, err, target)
}

func (s redisSessionStore) unmarshal(result string, err error, target interface{}) error {
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(result), target)
}

func (s redisSessionStore) getFullKey(key string) string {
	return joinKey(s.prefixes, key)
}
