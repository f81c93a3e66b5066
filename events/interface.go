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
	"context"
	"errors"
)

// ErrNotStarted is returned when publishing before the event engine is started.
var ErrNotStarted = errors.New("event engine is not started")

// Publisher publishes events on the event stream.
type Publisher interface {
	// Publish marshals the payload as JSON and publishes it on the given subject.
	Publish(ctx context.Context, subject string, payload interface{}) error
}

// Event is the event engine: an embedded NATS server with a JetStream stream for the node's events.
type Event interface {
	Publisher
	// ClientURL returns the URL other processes use to connect to the NATS server.
	ClientURL() string
}
