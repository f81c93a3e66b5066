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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/funding/log"
	"github.com/tdlaas/tdlaas-node/ledger/chain"
)

var _ chain.Faucet = (*HTTPFaucet)(nil)

// HTTPFaucet requests funds from a faucet service over HTTP.
type HTTPFaucet struct {
	url    string
	client core.HTTPRequestDoer
}

// NewHTTPFaucet creates a faucet client for the given URL. In strict mode, only HTTPS URLs can be used.
func NewHTTPFaucet(url string, strictmode bool, timeout time.Duration) *HTTPFaucet {
	return &HTTPFaucet{
		url:    url,
		client: core.NewStrictHTTPClient(strictmode, timeout, nil),
	}
}

type faucetRequest struct {
	Address string `json:"address"`
}

// RequestFunds posts a funding request for the address. The faucet accepts it with a 2xx status (typically 202 Accepted);
// 429 maps to ErrFaucetRateLimited, anything else to ErrFaucetUnavailable.
func (h HTTPFaucet) RequestFunds(ctx context.Context, address string) error {
	body, _ := json.Marshal(faucetRequest{Address: address})
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return core.WrapError(ErrFaucetUnavailable, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", core.UserAgent())
	response, err := h.client.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return core.WrapError(ErrFaucetUnavailable, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		log.Logger().WithField(core.LogFieldAddress, address).Debugf("Faucet accepted funding request (status=%d)", response.StatusCode)
		return nil
	case response.StatusCode == http.StatusTooManyRequests:
		return ErrFaucetRateLimited
	default:
		err = core.TestResponseCode(http.StatusAccepted, response, log.Logger())
		var httpErr core.HttpError
		if errors.As(err, &httpErr) {
			return core.WrapError(ErrFaucetUnavailable, fmt.Errorf("faucet returned HTTP %d", httpErr.StatusCode))
		}
		return core.WrapError(ErrFaucetUnavailable, err)
	}
}
