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

package funding

import (
	"context"
	"errors"
	"time"
)

// ErrFaucetUnavailable is returned when the faucet can't be reached or fails to process the funding request.
var ErrFaucetUnavailable = errors.New("faucet unavailable")

// ErrFaucetRateLimited is returned when the faucet refuses the funding request due to rate limiting.
// The request is not retried; callers may try again later.
var ErrFaucetRateLimited = errors.New("faucet rate limited")

// ErrFundingTimeout is returned when the address still has no balance after all polling attempts.
var ErrFundingTimeout = errors.New("funding timeout")

// Funder guarantees addresses hold spendable balance.
type Funder interface {
	// EnsureFunds returns nil if the address has a positive balance, requesting funds from the faucet first if it hasn't.
	// It fails with ErrFaucetUnavailable, ErrFaucetRateLimited or ErrFundingTimeout.
	EnsureFunds(ctx context.Context, address string) error
}

// Config holds the configuration of the funding loop.
type Config struct {
	// Faucet is the URL funding requests are posted to. If empty, the ledger's own faucet is used.
	Faucet string `koanf:"faucet"`
	// Interval is the time between balance polls after requesting funds, including the wait before the first poll.
	Interval time.Duration `koanf:"interval"`
	// Attempts is the number of balance polls after requesting funds.
	Attempts uint `koanf:"attempts"`
	// Timeout is the timeout of the HTTP request to the faucet.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default funding configuration.
func DefaultConfig() Config {
	return Config{
		Interval: 5 * time.Second,
		Attempts: 9,
		Timeout:  10 * time.Second,
	}
}
