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
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/storage/log"
	"gorm.io/gorm"
)

const moduleName = "Storage"

const redisPingTimeout = 5 * time.Second

// New creates a new instance of the storage engine.
func New() Engine {
	return &engine{
		config: DefaultConfig(),
	}
}

type engine struct {
	config          Config
	sessionDatabase SessionDatabase
	sqlDB           *gorm.DB
}

func (e *engine) Config() interface{} {
	return &e.config
}

// Name returns the name of the engine.
func (e *engine) Name() string {
	return moduleName
}

func (e *engine) GetSessionDatabase() SessionDatabase {
	return e.sessionDatabase
}

func (e *engine) GetSQLDatabase() *gorm.DB {
	return e.sqlDB
}

// Configure loads the given configurations in the engine.
func (e *engine) Configure(serverConfig core.ServerConfig) error {
	if e.config.Redis.isConfigured() && e.config.Memcached.isConfigured() {
		return errors.New("only one session database can be configured: redis or memcached")
	}
	if err := e.initSessionDatabase(serverConfig); err != nil {
		return err
	}

	connectionString := e.config.SQL.ConnectionString
	if len(connectionString) == 0 {
		connectionString = sqliteConnectionString(serverConfig.Datadir)
	}
	db, err := openSQLDatabase(connectionString)
	if err != nil {
		return err
	}
	e.sqlDB = db
	return nil
}

func (e *engine) initSessionDatabase(serverConfig core.ServerConfig) error {
	switch {
	case e.config.Redis.isConfigured():
		client, err := newRedisClient(e.config.Redis)
		if err != nil {
			return fmt.Errorf("unable to configure Redis client: %w", err)
		}
		redis.SetLogger(redisLogWriter{logger: log.Logger()})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err = client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("unable to connect to Redis: %w", err)
		}
		log.Logger().Info("Redis session database configured")
		e.sessionDatabase = NewRedisSessionDatabase(client, e.config.Redis.Database)
	case e.config.Memcached.isConfigured():
		log.Logger().Info("Memcached session database configured")
		e.sessionDatabase = NewMemcachedSessionDatabase(newMemcachedClient(e.config.Memcached))
	default:
		if serverConfig.Strictmode {
			log.Logger().Warn("Using in-memory session database in strict mode, nonces are lost on restart and not shared between instances")
		}
		e.sessionDatabase = NewInMemorySessionDatabase()
	}
	return nil
}

func newRedisClient(config RedisConfig) (*redis.Client, error) {
	opts, err := config.parse()
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (e *engine) Start() error {
	return nil
}

func (e *engine) Shutdown() error {
	if e.sessionDatabase != nil {
		e.sessionDatabase.Close()
	}
	if e.sqlDB != nil {
		underlying, err := e.sqlDB.DB()
		if err != nil {
			return err
		}
		if err = underlying.Close(); err != nil {
			return fmt.Errorf("unable to close SQL database: %w", err)
		}
	}
	return nil
}
