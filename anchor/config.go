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

package anchor

// Config holds the configuration of the anchor engine.
type Config struct {
	// Tag is attached to anchored data on the ledger, identifying this application.
	Tag string `koanf:"tag"`
}

// DefaultConfig returns the default anchor configuration.
func DefaultConfig() Config {
	return Config{Tag: "tdlaas"}
}
