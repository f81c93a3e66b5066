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

import (
	"context"
	"sort"
	"sync"

	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/vdr/log"
	"golang.org/x/sync/singleflight"
)

var _ IdentityRegistry = (*registry)(nil)

// registry lazily creates one identity per actor. Creation is single-flight per actor,
// so concurrent first requests share one publication.
type registry struct {
	creator    Creator
	secrets    map[string][]byte
	mux        sync.RWMutex
	identities map[string]*Identity
	inflight   singleflight.Group
}

// NewIdentityRegistry creates an IdentityRegistry for the actors in secrets.
func NewIdentityRegistry(creator Creator, secrets map[string][]byte) IdentityRegistry {
	return &registry{
		creator:    creator,
		secrets:    secrets,
		identities: map[string]*Identity{},
	}
}

func (r *registry) Get(ctx context.Context, actor string) (*Identity, error) {
	if identity, ok := r.cached(actor); ok {
		return identity, nil
	}
	secret, ok := r.secrets[actor]
	if !ok {
		return nil, ErrUnknownActor
	}
	result, err, shared := r.inflight.Do(actor, func() (interface{}, error) {
		// a previous flight may have completed between the cache check and Do
		if identity, ok := r.cached(actor); ok {
			return identity, nil
		}
		log.Logger().WithField(core.LogFieldActor, actor).Info("Creating identity")
		identity, err := r.creator.Create(ctx, secret)
		if err != nil {
			return nil, err
		}
		r.mux.Lock()
		r.identities[actor] = identity
		r.mux.Unlock()
		return identity, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Logger().WithField(core.LogFieldActor, actor).Debug("Joined identity creation in progress")
	}
	return result.(*Identity), nil
}

func (r *registry) Actors() []string {
	result := make([]string, 0, len(r.secrets))
	for actor := range r.secrets {
		result = append(result, actor)
	}
	sort.Strings(result)
	return result
}

func (r *registry) cached(actor string) (*Identity, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	identity, ok := r.identities[actor]
	return identity, ok
}
