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

package anchor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nuts-foundation/go-did/did"
	"github.com/tdlaas/tdlaas-node/audit"
	"github.com/tdlaas/tdlaas-node/anchor/log"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto/hash"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
	"gorm.io/gorm"
)

var _ Store = (*sqlStore)(nil)

// payload is the data attached to the ledger for an anchored record.
type payload struct {
	Digest    hash.SHA256Hash `json:"digest"`
	Algorithm string          `json:"alg"`
}

type sqlStore struct {
	db     *gorm.DB
	ledger chain.Client
	tag    string
}

// NewStore creates a Store that anchors on the ledger with the given tag and persists records in the SQL database.
func NewStore(db *gorm.DB, ledger chain.Client, tag string) Store {
	return &sqlStore{
		db:     db,
		ledger: ledger,
		tag:    tag,
	}
}

func (s *sqlStore) Anchor(ctx context.Context, secret []byte, issuer did.DID, transaction Transaction) (*Record, error) {
	record, err := transaction.toRecord(issuer.String())
	if err != nil {
		return nil, err
	}
	digest := Digest(record)
	data, _ := json.Marshal(payload{Digest: digest, Algorithm: hash.Algorithm})
	record.AnchorRef, err = s.ledger.PublishData(ctx, secret, s.tag, data)
	if err != nil {
		anchors.WithLabelValues("publish_failed").Inc()
		return nil, core.WrapError(ErrLedgerPublishFailed, err)
	}
	record.Digest = digest.String()
	if err = s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// The digest is on the ledger, but there's no record to verify it against.
		log.Logger().
			WithError(err).
			WithField(core.LogFieldAnchorRef, record.AnchorRef).
			Error("Failed to persist anchored record")
		anchors.WithLabelValues("persist_failed").Inc()
		return nil, fmt.Errorf("unable to persist record %s: %w", record.AnchorRef, err)
	}
	anchors.WithLabelValues("anchored").Inc()
	audit.Log(ctx, log.Logger(), audit.RecordAnchoredEvent).
		WithField(core.LogFieldAnchorRef, record.AnchorRef).
		WithField(core.LogFieldDID, record.IssuerDID).
		Info("Anchored record")
	return &record, nil
}

func (s *sqlStore) Verify(ctx context.Context, anchorRef string) (*Verification, error) {
	tag, data, err := s.ledger.GetData(ctx, anchorRef)
	if errors.Is(err, chain.ErrNotFound) {
		return nil, fmt.Errorf("%w: no anchor %s on the ledger", ErrRecordNotFound, anchorRef)
	} else if err != nil {
		return nil, core.WrapError(ErrLedgerUnavailable, err)
	}
	var record Record
	err = s.db.WithContext(ctx).Where("anchor_ref = ?", anchorRef).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, anchorRef)
	} else if err != nil {
		return nil, err
	}

	result := &Verification{Record: record}
	if err = s.compare(tag, data, Digest(record)); err != nil {
		anchors.WithLabelValues("mismatch").Inc()
		log.Logger().
			WithError(err).
			WithField(core.LogFieldAnchorRef, anchorRef).
			Warn("Record doesn't match its ledger anchor")
		return result, err
	}
	anchors.WithLabelValues("matched").Inc()
	result.Matched = true
	return result, nil
}

// compare checks the anchored payload against the recomputed digest.
// An anchor that isn't a digest payload of this application can't prove the record either, so it is a mismatch.
func (s *sqlStore) compare(tag string, data []byte, recomputed hash.SHA256Hash) error {
	if tag != s.tag {
		return fmt.Errorf("%w: anchor is tagged %q", ErrDigestMismatch, tag)
	}
	var anchored payload
	if err := json.Unmarshal(data, &anchored); err != nil {
		return fmt.Errorf("%w: invalid anchor payload: %w", ErrDigestMismatch, err)
	}
	if anchored.Algorithm != hash.Algorithm {
		return fmt.Errorf("%w: unsupported digest algorithm %q", ErrDigestMismatch, anchored.Algorithm)
	}
	if !anchored.Digest.Equals(recomputed) {
		return fmt.Errorf("%w: anchored %s, recomputed %s", ErrDigestMismatch, anchored.Digest, recomputed)
	}
	return nil
}

func (s *sqlStore) List(ctx context.Context, issuer did.DID) ([]Record, error) {
	var records []Record
	err := s.db.WithContext(ctx).
		Where("issuer_did = ?", issuer.String()).
		Order("created_at ASC, anchor_ref ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
