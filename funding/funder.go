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

package funding

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding/log"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
)

var _ Funder = (*Loop)(nil)

var errNoBalance = errors.New("address has no balance")

var fundingDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: core.MetricsNamespace,
	Name:      "funding_duration_seconds",
	Help:      "Time it took to ensure an address holds balance, by result.",
	Buckets:   []float64{0.1, 1, 5, 10, 20, 30, 45, 60},
}, []string{"result"})

// BalanceReader reads the balance of ledger addresses.
type BalanceReader interface {
	Balance(ctx context.Context, address string) (*big.Int, error)
}

// Loop is the Funder that requests funds once and then polls the balance on a fixed interval.
type Loop struct {
	ledger   BalanceReader
	faucet   chain.Faucet
	interval time.Duration
	attempts uint
}

// NewLoop creates a funding Loop.
func NewLoop(ledger BalanceReader, faucet chain.Faucet, interval time.Duration, attempts uint) (*Loop, error) {
	if err := core.RegisterCollector(fundingDuration); err != nil {
		return nil, err
	}
	if attempts == 0 {
		return nil, errors.New("funding attempts must be at least 1")
	}
	return &Loop{
		ledger:   ledger,
		faucet:   faucet,
		interval: interval,
		attempts: attempts,
	}, nil
}

func (l *Loop) EnsureFunds(ctx context.Context, address string) error {
	start := time.Now()
	result, err := l.ensureFunds(ctx, address)
	fundingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	return err
}

func (l *Loop) ensureFunds(ctx context.Context, address string) (string, error) {
	logger := log.Logger().WithField(core.LogFieldAddress, address)
	if funded, err := l.hasBalance(ctx, address); err != nil {
		return "error", err
	} else if funded {
		return "funded", nil
	}

	logger.Info("Address has no balance, requesting funds from faucet")
	if l.faucet == nil {
		return "error", core.WrapError(ErrFaucetUnavailable, errors.New("no faucet configured"))
	}
	if err := l.faucet.RequestFunds(ctx, address); err != nil {
		return "faucet_error", err
	}

	// The faucet transfer needs at least one interval to land on the ledger.
	select {
	case <-ctx.Done():
		return "cancelled", ctx.Err()
	case <-time.After(l.interval):
	}
	err := retry.Do(func() error {
		funded, err := l.hasBalance(ctx, address)
		if err == nil && !funded {
			err = errNoBalance
		}
		return err
	},
		retry.Attempts(l.attempts),
		retry.Delay(l.interval),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WithError(err).Debugf("Balance poll %d/%d", n+1, l.attempts)
		}),
	)
	switch {
	case err == nil:
		logger.Info("Address funded")
		return "requested", nil
	case ctx.Err() != nil:
		return "cancelled", ctx.Err()
	case errors.Is(err, errNoBalance):
		return "timeout", fmt.Errorf("%w: address %s has no balance after %d attempts", ErrFundingTimeout, address, l.attempts)
	default:
		return "timeout", core.WrapError(ErrFundingTimeout, err)
	}
}

func (l *Loop) hasBalance(ctx context.Context, address string) (bool, error) {
	balance, err := l.ledger.Balance(ctx, address)
	if err != nil {
		return false, err
	}
	return balance.Sign() > 0, nil
}
