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
	"crypto"
	"errors"
	"fmt"

	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"golang.org/x/sync/errgroup"
)

var _ Resolver = (*resolver)(nil)

const maxParallelResolutions = 8

// resolver resolves DID documents from the ledger.
type resolver struct {
	ledger chain.Client
}

// NewResolver creates a Resolver that reads DID documents from the ledger.
func NewResolver(ledger chain.Client) Resolver {
	return &resolver{ledger: ledger}
}

func (r resolver) Resolve(ctx context.Context, id did.DID) (*did.Document, error) {
	document, err := r.ledger.ResolveDID(ctx, id)
	if err != nil {
		return nil, core.WrapError(ErrDIDResolutionFailed, fmt.Errorf("%s: %w", id, err))
	}
	return document, nil
}

func (r resolver) ResolveMultiple(ctx context.Context, ids []did.DID) (map[string]*did.Document, error) {
	distinct := map[string]did.DID{}
	for _, id := range ids {
		distinct[id.String()] = id
	}
	documents := make(map[string]*did.Document, len(distinct))
	results := make(chan *did.Document, len(distinct))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelResolutions)
	for _, id := range distinct {
		id := id
		group.Go(func() error {
			document, err := r.Resolve(groupCtx, id)
			if err != nil {
				return err
			}
			results <- document
			return nil
		})
	}
	err := group.Wait()
	close(results)
	if err != nil {
		return nil, err
	}
	for document := range results {
		documents[document.ID.String()] = document
	}
	return documents, nil
}

func (r resolver) ResolveAssertionKey(ctx context.Context, keyID did.DIDURL) (crypto.PublicKey, error) {
	document, err := r.Resolve(ctx, keyID.DID)
	if err != nil {
		return nil, err
	}
	verificationMethod := document.AssertionMethod.FindByID(keyID)
	if verificationMethod == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}
	publicKey, err := verificationMethod.PublicKey()
	if err != nil {
		return nil, errors.Join(ErrKeyNotFound, err)
	}
	return publicKey, nil
}
