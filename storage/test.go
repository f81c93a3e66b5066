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
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/tdlaas/tdlaas-node/core"
)

// NewTestStorageEngine creates a storage engine with a SQLite database in a temporary directory and an in-memory session database.
func NewTestStorageEngine(t testing.TB) Engine {
	result := New()
	if err := result.Configure(core.TestServerConfig(core.ServerConfig{Datadir: t.TempDir()})); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = result.Shutdown()
	})
	return result
}

// NewTestStorageEngineRedis creates a storage engine that uses an in-process Redis server as session database.
func NewTestStorageEngineRedis(t testing.TB) (Engine, *miniredis.Miniredis) {
	redis := miniredis.RunT(t)
	result := New().(*engine)
	result.config.Redis = RedisConfig{Address: redis.Addr()}
	if err := result.Configure(core.TestServerConfig(core.ServerConfig{Datadir: t.TempDir()})); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = result.Shutdown()
	})
	return result, redis
}

func getRandomAvailablePort() (int, error) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}
