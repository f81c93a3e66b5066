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

package audit

import (
	"bytes"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// SystemActor is logged as actor for operations that were not started by an API call.
const SystemActor = "system"

const (
	// CryptoNewKeyEvent occurs when a new key pair is generated.
	CryptoNewKeyEvent = "CreateNewKey"
	// CryptoSignJWTEvent occurs when a JWT is signed.
	CryptoSignJWTEvent = "SignJWT"
	// DIDCreatedEvent occurs when a DID document is published.
	DIDCreatedEvent = "CreateDID"
	// CredentialIssuedEvent occurs when a credential is issued.
	CredentialIssuedEvent = "IssueCredential"
	// PresentationVerifiedEvent occurs when a presentation was verified, successfully or not.
	PresentationVerifiedEvent = "VerifyPresentation"
	// RecordAnchoredEvent occurs when a transaction record is anchored on the ledger.
	RecordAnchoredEvent = "AnchorRecord"
)

// Info contains the information about the actor and operation that caused an audited event.
type Info struct {
	Actor     string
	Operation string
}

type auditContextKey struct{}

// Context returns a child context of the given context, carrying the audit information.
func Context(ctx context.Context, actor, moduleName, operationID string) context.Context {
	return context.WithValue(ctx, auditContextKey{}, Info{
		Actor:     actor,
		Operation: moduleName + "." + operationID,
	})
}

// InfoFromContext returns the audit information from the context, or nil if it isn't there.
func InfoFromContext(ctx context.Context) *Info {
	info, ok := ctx.Value(auditContextKey{}).(Info)
	if !ok {
		return nil
	}
	return &info
}

// Log returns an entry of the audit logger with the actor, operation and event set.
// The fields of the given logger (e.g. module) are copied.
// It panics if the event name is empty.
func Log(ctx context.Context, logger *logrus.Entry, eventName string) *logrus.Entry {
	if eventName == "" {
		panic("audit: eventName must be set")
	}
	info := InfoFromContext(ctx)
	if info == nil {
		info = &Info{Actor: SystemActor}
	}
	return auditLogger().
		WithContext(ctx).
		WithFields(logger.Data).
		WithField("actor", info.Actor).
		WithField("operation", info.Operation).
		WithField("event", eventName)
}

var auditLoggerInstance *logrus.Logger
var initAuditLoggerOnce = &sync.Once{}

// auditLogger returns the logger for audit entries. It writes to the same output with the same formatter as the
// standard logger, but entries are always written regardless of the configured verbosity and get level "audit".
func auditLogger() *logrus.Logger {
	initAuditLoggerOnce.Do(func() {
		auditLoggerInstance = logrus.New()
		auditLoggerInstance.Out = logrus.StandardLogger().Out
		auditLoggerInstance.Formatter = &auditFormatter{}
		auditLoggerInstance.Level = logrus.InfoLevel
	})
	return auditLoggerInstance
}

var levelReplacements = [][2][]byte{
	{[]byte("level=info"), []byte("level=audit")},
	{[]byte(`"level":"info"`), []byte(`"level":"audit"`)},
	{[]byte("INFO["), []byte("AUDIT[")},
}

// auditFormatter formats with the standard logger's formatter and then renames the level.
type auditFormatter struct{}

func (a auditFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data, err := logrus.StandardLogger().Formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	for _, replacement := range levelReplacements {
		if bytes.Contains(data, replacement[0]) {
			return bytes.Replace(data, replacement[0], replacement[1], 1), nil
		}
	}
	return data, nil
}
