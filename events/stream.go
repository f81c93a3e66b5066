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
	"errors"

	"github.com/nats-io/nats.go"
)

// EventStream is the stream all events of the node are published on.
// It keeps a bounded history, so subscribers that connect later can replay recent events.
var EventStream = &stream{
	config: &nats.StreamConfig{
		Name: StreamName,
		Subjects: []string{
			"tdlaas.anchor.*",
		},
		Retention: nats.LimitsPolicy,
		Storage:   nats.FileStorage,
		MaxMsgs:   10000,
		Discard:   nats.DiscardOld,
	},
}

type stream struct {
	config *nats.StreamConfig
}

// Config returns the stream configuration.
func (stream *stream) Config() *nats.StreamConfig {
	return stream.config
}

// create adds the stream to the server if it doesn't exist yet.
func (stream *stream) create(js JetStreamContext) error {
	_, err := js.StreamInfo(stream.config.Name)
	if errors.Is(err, nats.ErrStreamNotFound) {
		_, err = js.AddStream(stream.config)
	}
	return err
}
