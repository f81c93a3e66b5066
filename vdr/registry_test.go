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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nuts-foundation/go-did/did"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Get(t *testing.T) {
	ctx := context.Background()
	secrets := map[string][]byte{"issuer": []byte("a"), "holder": []byte("b")}
	issuer := &Identity{Document: did.Document{ID: did.MustParseDID("did:tdlaas:tst:0x01")}}
	holder := &Identity{Document: did.Document{ID: did.MustParseDID("did:tdlaas:tst:0x02")}}

	t.Run("created once, then cached", func(t *testing.T) {
		creator := NewMockCreator(gomock.NewController(t))
		creator.EXPECT().Create(ctx, []byte("a")).Return(issuer, nil).Times(1)
		registry := NewIdentityRegistry(creator, secrets)

		first, err := registry.Get(ctx, "issuer")
		require.NoError(t, err)
		second, err := registry.Get(ctx, "issuer")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})
	t.Run("identity per actor", func(t *testing.T) {
		creator := NewMockCreator(gomock.NewController(t))
		creator.EXPECT().Create(ctx, []byte("a")).Return(issuer, nil)
		creator.EXPECT().Create(ctx, []byte("b")).Return(holder, nil)
		registry := NewIdentityRegistry(creator, secrets)

		actual1, _ := registry.Get(ctx, "issuer")
		actual2, _ := registry.Get(ctx, "holder")

		assert.Same(t, issuer, actual1)
		assert.Same(t, holder, actual2)
	})
	t.Run("concurrent first calls publish one DID", func(t *testing.T) {
		creator := NewMockCreator(gomock.NewController(t))
		release := make(chan struct{})
		creator.EXPECT().Create(gomock.Any(), []byte("a")).DoAndReturn(func(_ context.Context, _ []byte) (*Identity, error) {
			<-release
			return issuer, nil
		}).Times(1)
		registry := NewIdentityRegistry(creator, secrets)

		const callers = 20
		results := make([]*Identity, callers)
		wg := sync.WaitGroup{}
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = registry.Get(ctx, "issuer")
			}(i)
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, result := range results {
			assert.Same(t, issuer, result)
		}
	})
	t.Run("failure is not cached", func(t *testing.T) {
		creator := NewMockCreator(gomock.NewController(t))
		gomock.InOrder(
			creator.EXPECT().Create(ctx, []byte("a")).Return(nil, ErrDIDPublishFailed),
			creator.EXPECT().Create(ctx, []byte("a")).Return(issuer, nil),
		)
		registry := NewIdentityRegistry(creator, secrets)

		_, err := registry.Get(ctx, "issuer")
		assert.ErrorIs(t, err, ErrDIDPublishFailed)
		actual, err := registry.Get(ctx, "issuer")
		assert.NoError(t, err)
		assert.Same(t, issuer, actual)
	})
	t.Run("unknown actor", func(t *testing.T) {
		registry := NewIdentityRegistry(NewMockCreator(gomock.NewController(t)), secrets)

		_, err := registry.Get(ctx, "verifier")

		assert.True(t, errors.Is(err, ErrUnknownActor))
	})
}

func TestRegistry_Actors(t *testing.T) {
	registry := NewIdentityRegistry(nil, map[string][]byte{"issuer": nil, "holder": nil, "auditor": nil})

	assert.Equal(t, []string{"auditor", "holder", "issuer"}, registry.Actors())
}
