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

package cmd

import (
	"github.com/spf13/pflag"
	"github.com/tdlaas/tdlaas-node/vcr"
)

// FlagSet contains flags relevant for the VCR engine
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("vcr", pflag.ContinueOnError)
	defs := vcr.DefaultConfig()
	flagSet.String("vcr.baseurl", defs.BaseURL, "Base URL of generated credential IDs (<baseurl>/vc/<uuid>). Must be HTTPS in strict mode.")
	flagSet.String("vcr.credentialtype", defs.CredentialType, "Type of credentials issued through the API, next to VerifiableCredential.")
	flagSet.Duration("vcr.credentialvalidity", defs.CredentialValidity, "Validity of issued credentials. 0 means credentials don't expire.")
	flagSet.Duration("vcr.presentationvalidity", defs.PresentationValidity, "Validity of presentations created by the holder.")
	flagSet.Duration("vcr.clockskew", defs.ClockSkew, "Accepted clock skew when validating the validity period of credentials and presentations.")
	flagSet.Duration("vcr.challenge.ttl", defs.Challenge.TTL, "Time a verification nonce can be used after it was issued.")
	flagSet.Bool("vcr.challenge.consumeonsuccess", defs.Challenge.ConsumeOnSuccess, "Consume the nonce when a presentation is verified successfully. "+
		"Disabling this allows presentations to be replayed until the nonce expires.")
	flagSet.Bool("vcr.challenge.consumeonfailure", defs.Challenge.ConsumeOnFailure, "Consume the nonce when presentation verification fails, so every attempt needs a new nonce.")
	return flagSet
}
