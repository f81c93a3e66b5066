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

package vcr

import "time"

// Config holds the configuration of the VCR engine.
type Config struct {
	// BaseURL is the base of generated credential IDs.
	BaseURL string `koanf:"baseurl"`
	// CredentialType is the domain type of issued credentials.
	CredentialType string `koanf:"credentialtype"`
	// CredentialValidity is the validity of issued credentials. Zero means credentials don't expire.
	CredentialValidity time.Duration `koanf:"credentialvalidity"`
	// PresentationValidity is the validity of presentations created by the holder.
	PresentationValidity time.Duration `koanf:"presentationvalidity"`
	// ClockSkew is the accepted clock skew when validating exp and nbf claims.
	ClockSkew time.Duration   `koanf:"clockskew"`
	Challenge ChallengeConfig `koanf:"challenge"`
}

// ChallengeConfig holds the configuration of verification challenges.
type ChallengeConfig struct {
	// TTL is the time a nonce can be used after it was issued.
	TTL time.Duration `koanf:"ttl"`
	// ConsumeOnSuccess makes challenges single use. Disabling it allows presentations to be replayed until the challenge expires.
	ConsumeOnSuccess bool `koanf:"consumeonsuccess"`
	// ConsumeOnFailure consumes the challenge when verification fails, so the holder needs a new challenge to retry.
	ConsumeOnFailure bool `koanf:"consumeonfailure"`
}

// DefaultConfig returns the default VCR configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:              "http://localhost:1323",
		CredentialType:       "RegisteredBankCredential",
		CredentialValidity:   365 * 24 * time.Hour,
		PresentationValidity: 30 * time.Minute,
		ClockSkew:            5 * time.Second,
		Challenge: ChallengeConfig{
			TTL:              300 * time.Second,
			ConsumeOnSuccess: true,
		},
	}
}
