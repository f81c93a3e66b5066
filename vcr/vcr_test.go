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

import (
	"context"
	"testing"
	"time"

	"github.com/nuts-foundation/go-did/vc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/challenge"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/storage"
	"github.com/tdlaas/tdlaas-node/vdr"
	"go.uber.org/mock/gomock"
)

func TestModule_Configure(t *testing.T) {
	newInstance := func(t *testing.T) *Module {
		vdrInstance, _, keyStore := vdr.NewTestVDR(t)
		return New(storage.NewTestStorageEngine(t), vdrInstance, keyStore)
	}

	t.Run("ok", func(t *testing.T) {
		instance := newInstance(t)

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.NoError(t, err)
		assert.NotNil(t, instance.Challenges())
	})
	t.Run("strict mode requires HTTPS base URL", func(t *testing.T) {
		instance := newInstance(t)

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{Strictmode: true}))

		assert.EqualError(t, err, "vcr.baseurl must be an HTTPS URL in strict mode")
	})
	t.Run("strict mode with HTTPS base URL", func(t *testing.T) {
		instance := newInstance(t)
		instance.config.BaseURL = "https://bank.example.com/"

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{Strictmode: true}))

		assert.NoError(t, err)
	})
	t.Run("invalid base URL", func(t *testing.T) {
		instance := newInstance(t)
		instance.config.BaseURL = "bank"

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "invalid vcr.baseurl: bank")
	})
	t.Run("challenge TTL", func(t *testing.T) {
		instance := newInstance(t)
		instance.config.Challenge.TTL = 0

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "vcr.challenge.ttl must be positive")
	})
	t.Run("presentation validity", func(t *testing.T) {
		instance := newInstance(t)
		instance.config.PresentationValidity = 0

		err := instance.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "vcr.presentationvalidity must be positive")
	})
}

func TestModule_Name(t *testing.T) {
	assert.Equal(t, "VCR", New(nil, nil, crypto.NewMemoryKeyStore()).Name())
}

func TestModule_delegates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	issuer := NewMockIssuer(ctrl)
	holder := NewMockHolder(ctrl)
	verifier := NewMockVerifier(ctrl)
	challenges := challenge.NewMockStore(ctrl)
	instance := &Module{issuer: issuer, holder: holder, verifier: verifier, challenges: challenges}
	identity := vdr.Identity{KeyFragment: vdr.KeyFragment}

	t.Run("Issue", func(t *testing.T) {
		template := CredentialTemplate{Subject: map[string]interface{}{"legalName": "Bank"}}
		issuer.EXPECT().Issue(ctx, identity, template).Return(&IssuedCredential{JWT: "vc-jwt"}, nil)

		issued, err := instance.Issue(ctx, identity, template)

		require.NoError(t, err)
		assert.Equal(t, "vc-jwt", issued.JWT)
	})
	t.Run("CreatePresentation", func(t *testing.T) {
		options := PresentationOptions{Nonce: "nonce", Expires: time.Now().Add(time.Minute)}
		holder.EXPECT().CreatePresentation(ctx, identity, []string{"vc-jwt"}, options).Return(&vc.VerifiablePresentation{}, nil)

		presentation, err := instance.CreatePresentation(ctx, identity, []string{"vc-jwt"}, options)

		require.NoError(t, err)
		assert.NotNil(t, presentation)
	})
	t.Run("VerifyPresentation", func(t *testing.T) {
		verifier.EXPECT().VerifyPresentation(ctx, "session", "vp-jwt").Return(nil, ErrInvalidOrExpiredNonce)

		_, err := instance.VerifyPresentation(ctx, "session", "vp-jwt")

		assert.ErrorIs(t, err, ErrInvalidOrExpiredNonce)
	})
	t.Run("VerifyCredential", func(t *testing.T) {
		verifier.EXPECT().VerifyCredential(ctx, "vc-jwt").Return(&vc.VerifiableCredential{}, nil)

		_, err := instance.VerifyCredential(ctx, "vc-jwt")

		assert.NoError(t, err)
	})
	t.Run("Challenges", func(t *testing.T) {
		challenges.EXPECT().Get("session").Return(nil, challenge.ErrNotFound)

		_, err := instance.Challenges().Get("session")

		assert.ErrorIs(t, err, challenge.ErrNotFound)
	})
}
