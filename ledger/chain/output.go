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

	"github.com/nuts-foundation/go-did/did"
)

// OutputKind distinguishes the payloads a ledger output can carry.
type OutputKind string

const (
	// DIDOutput holds an unpublished DID document.
	DIDOutput OutputKind = "did"
	// DataOutput holds application data with a tag.
	DataOutput OutputKind = "data"
)

// Output is the envelope in which payloads are written to the ledger.
type Output struct {
	Kind OutputKind `json:"kind"`
	Tag  string     `json:"tag,omitempty"`
	Data []byte     `json:"data"`
}

// Bytes returns the encoded form of the output.
func (o Output) Bytes() []byte {
	data, _ := json.Marshal(o)
	return data
}

// ParseOutput decodes an output envelope.
func ParseOutput(data []byte) (*Output, error) {
	var result Output
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid ledger output: %w", err)
	}
	switch result.Kind {
	case DIDOutput, DataOutput:
		return &result, nil
	default:
		return nil, fmt.Errorf("invalid ledger output: unknown kind %q", result.Kind)
	}
}

// DIDDocumentOutput creates the output for an unpublished DID document.
func DIDDocumentOutput(document did.Document) (Output, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return Output{}, err
	}
	return Output{Kind: DIDOutput, Data: data}, nil
}

// DocumentFromOutput decodes the DID document held by the output and assigns it the given DID.
func DocumentFromOutput(output *Output, id did.DID) (*did.Document, error) {
	if output.Kind != DIDOutput {
		return nil, ErrNotFound
	}
	var document did.Document
	if err := json.Unmarshal(output.Data, &document); err != nil {
		return nil, fmt.Errorf("invalid DID document in ledger output: %w", err)
	}
	return AssignDID(document, id)
}
