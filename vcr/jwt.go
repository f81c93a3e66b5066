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
	gocrypto "crypto"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/vdr"
)

// assertionKeyFunc resolves the kid of a JWT to an assertion method of the given DID document.
// Keys of other DIDs are rejected, so the signer is always the subject of the document.
func assertionKeyFunc(document did.Document) crypto.PublicKeyFunc {
	return func(kid string) (gocrypto.PublicKey, error) {
		keyID, err := did.ParseDIDURL(kid)
		if err != nil {
			return nil, fmt.Errorf("invalid kid: %w", err)
		}
		if !keyID.DID.Equals(document.ID) {
			return nil, fmt.Errorf("kid %s is not a key of %s", kid, document.ID)
		}
		verificationMethod := document.AssertionMethod.FindByID(*keyID)
		if verificationMethod == nil {
			return nil, fmt.Errorf("%w: %s", vdr.ErrKeyNotFound, kid)
		}
		return verificationMethod.PublicKey()
	}
}

// verifyJWT verifies the signature and validity period of a JWT signed by the subject of the document.
// The iss claim must equal the DID of the document.
func verifyJWT(raw string, document did.Document, options ...jwt.ParseOption) (jwt.Token, error) {
	token, err := crypto.ParseJWT(raw, assertionKeyFunc(document), options...)
	if err != nil {
		return nil, err
	}
	if token.Issuer() != document.ID.String() {
		return nil, fmt.Errorf("JWT issuer %s does not match signer %s", token.Issuer(), document.ID)
	}
	return token, nil
}
