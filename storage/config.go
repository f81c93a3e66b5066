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

// Config specifies config for the storage engine.
type Config struct {
	Redis     RedisConfig     `koanf:"redis"`
	Memcached MemcachedConfig `koanf:"memcached"`
	SQL       SQLConfig       `koanf:"sql"`
}

// SQLConfig specifies config for the SQL database.
type SQLConfig struct {
	// ConnectionString is the connection string for the SQL database.
	// The scheme selects the driver: sqlite, postgres, mysql or sqlserver.
	// When empty, a SQLite database in the data directory is used.
	ConnectionString string `koanf:"connection"`
}

// DefaultConfig returns the default configuration for the module.
func DefaultConfig() Config {
	return Config{}
}
