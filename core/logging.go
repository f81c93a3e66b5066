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

package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldDID is the log field key for a DID.
	LogFieldDID = "did"
	// LogFieldKeyID is the log field key for the ID of a key (verification method).
	LogFieldKeyID = "keyID"
	// LogFieldActor is the log field key for the logical actor (issuer, holder) an identity belongs to.
	LogFieldActor = "actor"
	// LogFieldAddress is the log field key for a ledger address.
	LogFieldAddress = "address"

	// LogFieldCredentialID is the log field key for the ID of a Verifiable Credential.
	LogFieldCredentialID = "credentialID"
	// LogFieldCredentialType is the log field key for the type of a Verifiable Credential.
	LogFieldCredentialType = "credentialType"
	// LogFieldCredentialIssuer is the log field key for the issuer of a Verifiable Credential.
	LogFieldCredentialIssuer = "credentialIssuer"

	// LogFieldSessionID is the log field key for the ID of a verification session.
	LogFieldSessionID = "sessionID"
	// LogFieldVerificationState is the log field key for the state a presentation verification ended in.
	LogFieldVerificationState = "verificationState"

	// LogFieldAnchorRef is the log field key for the ledger reference of anchored data.
	LogFieldAnchorRef = "anchorRef"

	// LogFieldStore is the log field key for the name of a store managed by the storage module.
	LogFieldStore = "store"
)
