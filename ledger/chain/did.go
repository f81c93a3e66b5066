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

package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nuts-foundation/go-did/did"
)

// MethodName is the DID method of documents published on the ledger.
const MethodName = "tdlaas"

const tagLength = 32

var placeholderTag = "0x" + strings.Repeat("00", tagLength)

// PlaceholderDID returns the DID that identifies a document before publication.
// The ledger replaces it with the DID derived from the output the document is published in.
func PlaceholderDID(hrp string) did.DID {
	return NewDID(hrp, placeholderTag)
}

// NewDID returns the DID for the given network and output tag.
func NewDID(hrp string, tag string) did.DID {
	return did.MustParseDID(fmt.Sprintf("did:%s:%s:%s", MethodName, hrp, tag))
}

// ParseDID splits a ledger DID in its network HRP and output tag.
func ParseDID(id did.DID) (string, string, error) {
	if id.Method != MethodName {
		return "", "", fmt.Errorf("unsupported DID method: %s", id.Method)
	}
	hrp, tag, ok := strings.Cut(id.ID, ":")
	if !ok || len(hrp) == 0 || len(tag) == 0 {
		return "", "", fmt.Errorf("invalid %s DID: %s", MethodName, id.String())
	}
	return hrp, tag, nil
}

// AssignDID returns a copy of the document where every occurrence of the placeholder DID
// (document ID, verification method IDs and controllers) is replaced by the given DID.
func AssignDID(document did.Document, id did.DID) (*did.Document, error) {
	hrp, _, err := ParseDID(id)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	replaced := strings.ReplaceAll(string(data), PlaceholderDID(hrp).String(), id.String())
	var result did.Document
	if err = json.Unmarshal([]byte(replaced), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
