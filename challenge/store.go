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

	"github.com/tdlaas/tdlaas-node/challenge/log"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/storage"
)

// storeName is the session store partition challenges are kept in, resulting in keys like session:<id>.
const storeName = "session"

var _ Store = (*sessionStore)(nil)

type sessionStore struct {
	store storage.SessionStore
	ttl   time.Duration
	clock func() time.Time
}

// NewStore returns a Store on the session database. Challenges expire after ttl.
func NewStore(db storage.SessionDatabase, ttl time.Duration) Store {
	return &sessionStore{
		store: db.GetStore(ttl, storeName),
		ttl:   ttl,
		clock: time.Now,
	}
}

func (s *sessionStore) Issue(sessionID string) (*Challenge, error) {
	if len(sessionID) == 0 {
		return nil, core.InvalidInputError("session ID is required")
	}
	challenge := Challenge{
		SessionID: sessionID,
		Nonce:     crypto.GenerateNonce(),
		ExpiresAt: s.clock().Add(s.ttl).UTC(),
	}
	if err := s.store.Put(sessionID, challenge); err != nil {
		return nil, err
	}
	log.Logger().
		WithField(core.LogFieldSessionID, sessionID).
		Debugf("Issued challenge (expires: %s)", challenge.ExpiresAt.Format(time.RFC3339))
	return &challenge, nil
}

func (s *sessionStore) Get(sessionID string) (*Challenge, error) {
	var challenge Challenge
	if err := s.store.Get(sessionID, &challenge); err != nil {
		return nil, s.mapError(err)
	}
	if challenge.Expired(s.clock()) {
		return nil, ErrNotFound
	}
	return &challenge, nil
}

func (s *sessionStore) Consume(sessionID string) (*Challenge, error) {
	var challenge Challenge
	if err := s.store.GetAndDelete(sessionID, &challenge); err != nil {
		return nil, s.mapError(err)
	}
	if challenge.Expired(s.clock()) {
		return nil, ErrNotFound
	}
	log.Logger().WithField(core.LogFieldSessionID, sessionID).Debug("Consumed challenge")
	return &challenge, nil
}

func (s *sessionStore) mapError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
