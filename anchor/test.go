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
	"testing"

	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/events"
	"github.com/tdlaas/tdlaas-node/vcr"
	"github.com/tdlaas/tdlaas-node/vdr"
	"go.uber.org/mock/gomock"
)

// NewTestModule creates an anchor engine on the in-memory ledger and SQLite database of a VCR test context.
func NewTestModule(t testing.TB) (*Module, vcr.TestContext) {
	testContext := vcr.NewTestContext(t)
	publisher := events.NewMockPublisher(gomock.NewController(t))
	publisher.EXPECT().Publish(gomock.Any(), events.RecordAnchoredSubject, gomock.Any()).AnyTimes()
	instance := New(testContext.Storage, vdr.TestLedger{Ledger: testContext.Ledger}, testContext.VDR, testContext.VCR, publisher)
	if err := instance.Configure(core.TestServerConfig(core.ServerConfig{})); err != nil {
		t.Fatal(err)
	}
	return instance, testContext
}

// TestTransaction returns a valid transaction.
func TestTransaction() Transaction {
	return Transaction{
		Timestamp:         "2024-05-01T10:15:00Z",
		FromBank:          "BRI",
		FromAccount:       "0012-3456",
		ToBank:            "BCA",
		ToAccount:         "9876-5432",
		AmountReceived:    "1500000.00",
		ReceivingCurrency: "IDR",
		AmountPaid:        "100.50",
		PaymentCurrency:   "USD",
		PaymentFormat:     "Wire",
	}
}
