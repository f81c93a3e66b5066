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

package events

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Conn defines the methods required in the NATS connection structure
type Conn interface {
	JetStream(opts ...nats.JSOpt) (nats.JetStreamContext, error)
	Close()
}

// JetStreamContext defines the part of the JetStream API used by the event engine
type JetStreamContext interface {
	StreamInfo(stream string, opts ...nats.JSOpt) (*nats.StreamInfo, error)
	AddStream(cfg *nats.StreamConfig, opts ...nats.JSOpt) (*nats.StreamInfo, error)
	PublishMsg(m *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// Connect connects to the NATS server at the given URL
func Connect(url string, timeout time.Duration) (Conn, error) {
	conn, err := nats.Connect(
		url,
		nats.Name("tdlaas-node"),
		nats.RetryOnFailedConnect(true),
		nats.Timeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS server at %s: %w", url, err)
	}
	return conn, nil
}
