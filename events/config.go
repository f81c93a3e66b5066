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

package events

// Config holds all the configuration params
type Config struct {
	Nats NatsConfig `koanf:"nats"`
}

// NatsConfig holds the configuration of the embedded NATS server.
type NatsConfig struct {
	// Port is the port the NATS server listens on. -1 selects a random port.
	Port     int    `koanf:"port"`
	Hostname string `koanf:"hostname"`
	// StorageDir is where file-backed streams are stored. Defaults to <datadir>/events.
	StorageDir string `koanf:"storagedir"`
	// Timeout in seconds for starting the server and publishing.
	Timeout int `koanf:"timeout"`
}

// DefaultConfig returns an instance of Config with the default values.
func DefaultConfig() Config {
	return Config{
		Nats: NatsConfig{
			Port:     4022,
			Hostname: "localhost",
			Timeout:  30,
		},
	}
}
