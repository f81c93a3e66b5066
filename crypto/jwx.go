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
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrUnsupportedSigningKey is returned when an unsupported key is used to sign or verify. Only Ed25519 keys are supported.
var ErrUnsupportedSigningKey = errors.New("signing key algorithm not supported")

// SignatureAlgorithm is the JWS algorithm of all JWTs signed by the node.
const SignatureAlgorithm = jwa.EdDSA

// SignJWT signs the claims with the private key and returns the compacted token. The headers are added to the protected header.
func SignJWT(privateKey crypto.Signer, claims map[string]interface{}, headers map[string]interface{}) (string, error) {
	if _, ok := privateKey.(ed25519.PrivateKey); !ok {
		return "", ErrUnsupportedSigningKey
	}
	token := jwt.New()
	for k, v := range claims {
		if err := token.Set(k, v); err != nil {
			return "", fmt.Errorf("invalid JWT claim %s: %w", k, err)
		}
	}
	hdr := jws.NewHeaders()
	for k, v := range headers {
		if err := hdr.Set(k, v); err != nil {
			return "", fmt.Errorf("invalid JWT header %s: %w", k, err)
		}
	}
	signed, err := jwt.Sign(token, jwt.WithKey(SignatureAlgorithm, privateKey, jws.WithProtectedHeaders(hdr)))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// PublicKeyFunc resolves the public key for the kid of a JWT.
type PublicKeyFunc func(kid string) (crypto.PublicKey, error)

// ParseJWT parses the token, verifies its signature with the key resolved for its kid and validates its claims.
// Additional parse options (e.g. a clock, acceptable skew) can be given.
func ParseJWT(tokenString string, f PublicKeyFunc, options ...jwt.ParseOption) (jwt.Token, error) {
	kid, alg, err := JWTKidAlg(tokenString)
	if err != nil {
		return nil, err
	}
	if alg != SignatureAlgorithm {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSigningKey, alg)
	}
	publicKey, err := f(kid)
	if err != nil {
		return nil, err
	}
	if _, ok := publicKey.(ed25519.PublicKey); !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSigningKey, publicKey)
	}
	options = append(options, jwt.WithKey(alg, publicKey), jwt.WithValidate(true))
	return jwt.ParseString(tokenString, options...)
}

// JWTKidAlg parses a JWT without verifying it and returns the 'kid' and 'alg' headers.
func JWTKidAlg(tokenString string) (string, jwa.SignatureAlgorithm, error) {
	message, err := jws.ParseString(tokenString)
	if err != nil {
		return "", "", err
	}
	if len(message.Signatures()) != 1 {
		return "", "", errors.New("incorrect amount of signatures in JWT")
	}
	headers := message.Signatures()[0].ProtectedHeaders()
	if len(headers.KeyID()) == 0 {
		return "", "", errors.New("JWT has no kid header")
	}
	return headers.KeyID(), headers.Algorithm(), nil
}

// Thumbprint is a KIDNamingFunc that names keys by their base64url encoded SHA-256 JWK thumbprint (RFC 7638).
func Thumbprint(publicKey crypto.PublicKey) (string, error) {
	key, err := jwk.FromRaw(publicKey)
	if err != nil {
		return "", err
	}
	thumbprint, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(thumbprint), nil
}
