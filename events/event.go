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
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	natsServer "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/events/log"
)

const moduleName = "Events"

var _ Event = (*manager)(nil)
var _ core.Runnable = (*manager)(nil)

type manager struct {
	config Config
	server *natsServer.Server
	conn   Conn
	mux    sync.RWMutex
	js     JetStreamContext
}

// NewManager returns a new event manager
func NewManager() Event {
	return &manager{
		config: DefaultConfig(),
	}
}

func (m *manager) Name() string {
	return moduleName
}

func (m *manager) Config() interface{} {
	return &m.config
}

func (m *manager) Configure(config core.ServerConfig) error {
	if m.config.Nats.Timeout <= 0 {
		return errors.New("events.nats.timeout must be greater than 0")
	}
	if m.config.Nats.StorageDir == "" {
		m.config.Nats.StorageDir = path.Join(config.Datadir, "events")
	}
	return nil
}

func (m *manager) timeout() time.Duration {
	return time.Duration(m.config.Nats.Timeout) * time.Second
}

func (m *manager) Start() error {
	server, err := natsServer.NewServer(&natsServer.Options{
		JetStream: true,
		Port:      m.config.Nats.Port,
		Host:      m.config.Nats.Hostname,
		StoreDir:  m.config.Nats.StorageDir,
		NoSigs:    true, // the node handles signals and shuts down the server with this engine
		NoLog:     true,
	})
	if err != nil {
		return fmt.Errorf("unable to create NATS server: %w", err)
	}
	m.server = server
	server.Start()
	if !server.ReadyForConnections(m.timeout()) {
		return errors.New("NATS server did not start in time")
	}

	conn, err := Connect(server.ClientURL(), m.timeout())
	if err != nil {
		return err
	}
	m.conn = conn
	js, err := conn.JetStream()
	if err != nil {
		return err
	}
	if err = EventStream.create(js); err != nil {
		return fmt.Errorf("unable to create stream %s: %w", StreamName, err)
	}
	m.mux.Lock()
	m.js = js
	m.mux.Unlock()
	log.Logger().Infof("NATS server listening on %s", server.ClientURL())
	return nil
}

func (m *manager) Shutdown() error {
	m.mux.Lock()
	m.js = nil
	m.mux.Unlock()
	if m.conn != nil {
		m.conn.Close()
	}
	if m.server == nil {
		return nil
	}
	m.server.Shutdown()
	m.server.WaitForShutdown()
	return nil
}

func (m *manager) ClientURL() string {
	if m.server == nil {
		return ""
	}
	return m.server.ClientURL()
}

func (m *manager) Publish(ctx context.Context, subject string, payload interface{}) error {
	m.mux.RLock()
	js := m.js
	m.mux.RUnlock()
	if js == nil {
		return ErrNotStarted
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	ctx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()
	if _, err = js.PublishMsg(msg, nats.Context(ctx)); err != nil {
		return fmt.Errorf("unable to publish event on %s: %w", subject, err)
	}
	return nil
}
