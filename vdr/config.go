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

package vdr

import "github.com/tdlaas/tdlaas-node/funding"

const (
	// IssuerActor is the actor that issues credentials and anchors data.
	IssuerActor = "issuer"
	// HolderActor is the actor that receives credentials and creates presentations.
	HolderActor = "holder"
)

// Config holds the configuration of the VDR engine.
type Config struct {
	Funding funding.Config `koanf:"funding"`
	// Identities maps actor names to the secret their ledger address is derived from.
	Identities map[string]IdentityConfig `koanf:"identities"`
}

// IdentityConfig holds the configuration of a single actor.
type IdentityConfig struct {
	Secret string `koanf:"secret"`
}

// DefaultConfig returns the default VDR configuration.
func DefaultConfig() Config {
	return Config{
		Funding:    funding.DefaultConfig(),
		Identities: map[string]IdentityConfig{},
	}
}
