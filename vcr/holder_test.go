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
)

func TestHolder_CreatePresentation(t *testing.T) {
	ctx := context.Background()
	testContext := NewTestContext(t)
	issued, err := testContext.VCR.Issue(ctx, testContext.Issuer, CredentialTemplate{
		Subject: map[string]interface{}{"id": testContext.Holder.DID().String()},
	})
	require.NoError(t, err)
	now := time.Now().Truncate(time.Second)
	holder := NewHolder(testContext.KeyStore, 30*time.Minute).(*holder)
	holder.clock = func() time.Time { return now }

	t.Run("ok", func(t *testing.T) {
		presentation, err := holder.CreatePresentation(ctx, testContext.Holder, []string{issued.JWT}, PresentationOptions{Nonce: "a1b2c3"})

		require.NoError(t, err)
		assert.Equal(t, vc.JWTPresentationProofFormat, presentation.Format())
		assert.Equal(t, testContext.Holder.DID().String(), presentation.JWT().Issuer())
		nonce, _ := presentation.JWT().Get("nonce")
		assert.Equal(t, "a1b2c3", nonce)
		assert.Equal(t, now.Add(30*time.Minute).Unix(), presentation.JWT().Expiration().Unix())
		require.Len(t, presentation.VerifiableCredential, 1)
		assert.Equal(t, vc.JWTCredentialProofFormat, presentation.VerifiableCredential[0].Format())
		assert.Equal(t, issued.JWT, presentation.VerifiableCredential[0].Raw())
	})
	t.Run("explicit expiration", func(t *testing.T) {
		expires := now.Add(time.Minute)

		presentation, err := holder.CreatePresentation(ctx, testContext.Holder, []string{issued.JWT}, PresentationOptions{Nonce: "a1b2c3", Expires: expires})

		require.NoError(t, err)
		assert.Equal(t, expires.Unix(), presentation.JWT().Expiration().Unix())
	})
	t.Run("no credentials", func(t *testing.T) {
		_, err := holder.CreatePresentation(ctx, testContext.Holder, nil, PresentationOptions{Nonce: "a1b2c3"})

		assert.EqualError(t, err, "at least one credential is required")
	})
	t.Run("no nonce", func(t *testing.T) {
		_, err := holder.CreatePresentation(ctx, testContext.Holder, []string{issued.JWT}, PresentationOptions{})

		assert.EqualError(t, err, "nonce is required")
	})
	t.Run("invalid credential", func(t *testing.T) {
		_, err := holder.CreatePresentation(ctx, testContext.Holder, []string{"not a JWT"}, PresentationOptions{Nonce: "a1b2c3"})

		assert.ErrorContains(t, err, "invalid credential")
	})
}
