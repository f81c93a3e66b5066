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

package ledger

import "github.com/tdlaas/tdlaas-node/ledger/evm"

const (
	// MemoryType selects the in-process ledger.
	MemoryType = "memory"
	// EVMType selects a ledger on an EVM chain.
	EVMType = "evm"
)

// Config holds the configuration of the ledger engine.
type Config struct {
	// Type selects the ledger backend: memory or evm.
	Type string `koanf:"type"`
	// HRP is the network prefix of the in-memory ledger.
	HRP string     `koanf:"hrp"`
	EVM evm.Config `koanf:"evm"`
}

// DefaultConfig returns the default ledger configuration.
func DefaultConfig() Config {
	return Config{
		Type: MemoryType,
		HRP:  "tdl",
		EVM:  evm.DefaultConfig(),
	}
}
