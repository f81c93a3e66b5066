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

package cmd

import (
	"github.com/spf13/pflag"
	"github.com/tdlaas/tdlaas-node/storage"
)

// FlagSet contains flags relevant for the engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("storage", pflag.ContinueOnError)
	defs := storage.DefaultConfig()
	flagSet.String("storage.redis.address", defs.Redis.Address, "Redis server address for the session database (nonces). This can be a simple 'host:port' or a Redis connection URL with scheme, auth and other options.")
	flagSet.String("storage.redis.username", defs.Redis.Username, "Redis database username. If set, it overrides the username in the connection URL.")
	flagSet.String("storage.redis.password", defs.Redis.Password, "Redis database password. If set, it overrides the password in the connection URL.")
	flagSet.String("storage.redis.database", defs.Redis.Database, "Redis database name, which is used as prefix every key. Can be used to have multiple instances use the same Redis instance.")
	flagSet.String("storage.redis.tls.truststorefile", defs.Redis.TLS.TrustStoreFile, "PEM file containing the trusted CA certificate(s) for authenticating remote Redis servers. Can only be used when connecting over TLS (use 'rediss://' as scheme in address).")
	flagSet.StringSlice("storage.memcached.address", defs.Memcached.Address, "List of memcached server addresses for the session database. Can't be combined with Redis.")
	flagSet.String("storage.sql.connection", defs.SQL.ConnectionString, "Connection string for the SQL database holding anchored transaction records, prefixed with the database type (sqlite, postgres, mysql, sqlserver). "+
		"Defaults to a SQLite database in the data directory.")
	return flagSet
}
