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

package crypto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignJWT(t *testing.T) {
	publicKey, privateKey, _ := ed25519.GenerateKey(rand.Reader)
	keyFunc := func(_ string) (crypto.PublicKey, error) {
		return publicKey, nil
	}

	t.Run("claims and headers", func(t *testing.T) {
		token, err := SignJWT(privateKey, map[string]interface{}{"sub": "holder", "nonce": "a1b2c3"}, map[string]interface{}{"kid": "key-1", "typ": "JWT"})
		require.NoError(t, err)

		kid, alg, err := JWTKidAlg(token)
		require.NoError(t, err)
		assert.Equal(t, "key-1", kid)
		assert.Equal(t, jwa.EdDSA, alg)
		parsed, err := ParseJWT(token, keyFunc)
		require.NoError(t, err)
		assert.Equal(t, "holder", parsed.Subject())
		nonce, _ := parsed.Get("nonce")
		assert.Equal(t, "a1b2c3", nonce)
	})
	t.Run("unsupported key", func(t *testing.T) {
		ecKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)

		_, err := SignJWT(ecKey, nil, nil)

		assert.ErrorIs(t, err, ErrUnsupportedSigningKey)
	})
	t.Run("invalid claim", func(t *testing.T) {
		_, err := SignJWT(privateKey, map[string]interface{}{"exp": "tomorrow"}, nil)

		assert.ErrorContains(t, err, "invalid JWT claim exp")
	})
}

func TestParseJWT(t *testing.T) {
	publicKey, privateKey, _ := ed25519.GenerateKey(rand.Reader)
	otherPublicKey, _, _ := ed25519.GenerateKey(rand.Reader)
	headers := map[string]interface{}{"kid": "key-1"}

	t.Run("wrong key", func(t *testing.T) {
		token, _ := SignJWT(privateKey, nil, headers)

		_, err := ParseJWT(token, func(_ string) (crypto.PublicKey, error) { return otherPublicKey, nil })

		assert.Error(t, err)
	})
	t.Run("key resolution fails", func(t *testing.T) {
		token, _ := SignJWT(privateKey, nil, headers)

		_, err := ParseJWT(token, func(_ string) (crypto.PublicKey, error) { return nil, errors.New("unknown kid") })

		assert.EqualError(t, err, "unknown kid")
	})
	t.Run("expired", func(t *testing.T) {
		token, _ := SignJWT(privateKey, map[string]interface{}{"exp": time.Now().Add(-time.Hour)}, headers)

		_, err := ParseJWT(token, func(_ string) (crypto.PublicKey, error) { return publicKey, nil })

		assert.ErrorIs(t, err, jwt.ErrTokenExpired())
	})
	t.Run("expired, but within clock skew", func(t *testing.T) {
		token, _ := SignJWT(privateKey, map[string]interface{}{"exp": time.Now().Add(-time.Second)}, headers)

		_, err := ParseJWT(token, func(_ string) (crypto.PublicKey, error) { return publicKey, nil }, jwt.WithAcceptableSkew(time.Minute))

		assert.NoError(t, err)
	})
	t.Run("missing kid", func(t *testing.T) {
		token, _ := SignJWT(privateKey, nil, nil)

		_, err := ParseJWT(token, func(_ string) (crypto.PublicKey, error) { return publicKey, nil })

		assert.EqualError(t, err, "JWT has no kid header")
	})
	t.Run("other algorithm", func(t *testing.T) {
		ecKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		hdr := jws.NewHeaders()
		_ = hdr.Set(jws.KeyIDKey, "key-1")
		token, _ := jwt.Sign(jwt.New(), jwt.WithKey(jwa.ES256, ecKey, jws.WithProtectedHeaders(hdr)))

		_, err := ParseJWT(string(token), func(_ string) (crypto.PublicKey, error) { return ecKey.Public(), nil })

		assert.ErrorIs(t, err, ErrUnsupportedSigningKey)
	})
	t.Run("not a JWT", func(t *testing.T) {
		_, err := ParseJWT("not-a-jwt", nil)

		assert.Error(t, err)
	})
}

func TestThumbprint(t *testing.T) {
	publicKey, _, _ := ed25519.GenerateKey(rand.Reader)

	first, err := Thumbprint(publicKey)
	require.NoError(t, err)
	second, _ := Thumbprint(publicKey)

	assert.Equal(t, first, second)
	assert.Len(t, first, 43)
}

func TestGenerateNonce(t *testing.T) {
	nonce := GenerateNonce()

	assert.Len(t, nonce, 2*NonceSize)
	assert.NotEqual(t, nonce, GenerateNonce())
}
