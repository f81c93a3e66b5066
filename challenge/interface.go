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

package challenge

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no live challenge exists for a session: it was never issued, it expired or it was consumed.
var ErrNotFound = errors.New("challenge not found")

// Challenge is a nonce issued to a verification session.
type Challenge struct {
	SessionID string    `json:"sessionId"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired returns true if the challenge is expired at the given time.
func (c Challenge) Expired(at time.Time) bool {
	return !at.Before(c.ExpiresAt)
}

// Store issues and consumes single-use nonces keyed by session ID.
type Store interface {
	// Issue creates a new nonce for the session, replacing any challenge previously issued to it.
	Issue(sessionID string) (*Challenge, error)
	// Get returns the live challenge of the session without consuming it, or ErrNotFound.
	Get(sessionID string) (*Challenge, error)
	// Consume removes the challenge of the session and returns it. Of concurrent callers, at most one succeeds;
	// the others, and any later caller, get ErrNotFound.
	Consume(sessionID string) (*Challenge, error)
}
