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
	"path"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlaas/tdlaas-node/core"
)

func startTestManager(t *testing.T) *manager {
	m := NewManager().(*manager)
	m.config.Nats.Port = -1
	require.NoError(t, m.Configure(core.TestServerConfig(core.ServerConfig{Datadir: t.TempDir()})))
	require.NoError(t, m.Start())
	t.Cleanup(func() {
		_ = m.Shutdown()
	})
	return m
}

func TestManager_Configure(t *testing.T) {
	t.Run("storage dir defaults to datadir", func(t *testing.T) {
		m := NewManager().(*manager)
		datadir := t.TempDir()

		err := m.Configure(core.TestServerConfig(core.ServerConfig{Datadir: datadir}))

		require.NoError(t, err)
		assert.Equal(t, path.Join(datadir, "events"), m.config.Nats.StorageDir)
	})
	t.Run("explicit storage dir", func(t *testing.T) {
		m := NewManager().(*manager)
		m.config.Nats.StorageDir = "/tmp/streams"

		err := m.Configure(core.TestServerConfig(core.ServerConfig{}))

		require.NoError(t, err)
		assert.Equal(t, "/tmp/streams", m.config.Nats.StorageDir)
	})
	t.Run("invalid timeout", func(t *testing.T) {
		m := NewManager().(*manager)
		m.config.Nats.Timeout = 0

		err := m.Configure(core.TestServerConfig(core.ServerConfig{}))

		assert.EqualError(t, err, "events.nats.timeout must be greater than 0")
	})
}

func TestManager_Publish(t *testing.T) {
	m := startTestManager(t)
	conn, err := nats.Connect(m.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)
	js, err := conn.JetStream()
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		subscription, err := js.SubscribeSync(RecordAnchoredSubject, nats.DeliverAll())
		require.NoError(t, err)

		err = m.Publish(context.Background(), RecordAnchoredSubject, map[string]string{"anchorRef": "ref-1"})

		require.NoError(t, err)
		msg, err := subscription.NextMsg(5 * time.Second)
		require.NoError(t, err)
		assert.JSONEq(t, `{"anchorRef":"ref-1"}`, string(msg.Data))
	})
	t.Run("subject outside the stream", func(t *testing.T) {
		err := m.Publish(context.Background(), "other.subject", "data")

		assert.ErrorContains(t, err, "unable to publish event on other.subject")
	})
	t.Run("payload can't be marshalled", func(t *testing.T) {
		err := m.Publish(context.Background(), RecordAnchoredSubject, make(chan int))

		assert.Error(t, err)
	})
}

func TestManager_Start(t *testing.T) {
	t.Run("stream is created", func(t *testing.T) {
		m := startTestManager(t)

		info, err := m.js.StreamInfo(StreamName)

		require.NoError(t, err)
		assert.Equal(t, EventStream.Config().Subjects, info.Config.Subjects)
	})
	t.Run("stream survives restart", func(t *testing.T) {
		datadir := t.TempDir()
		m := NewManager().(*manager)
		m.config.Nats.Port = -1
		require.NoError(t, m.Configure(core.TestServerConfig(core.ServerConfig{Datadir: datadir})))
		require.NoError(t, m.Start())
		require.NoError(t, m.Publish(context.Background(), RecordAnchoredSubject, "first"))
		require.NoError(t, m.Shutdown())

		require.NoError(t, m.Start())
		defer m.Shutdown()

		info, err := m.js.StreamInfo(StreamName)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), info.State.Msgs)
	})
}

func TestManager_Shutdown(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		assert.NoError(t, NewManager().(*manager).Shutdown())
	})
	t.Run("publish after shutdown", func(t *testing.T) {
		m := startTestManager(t)
		require.NoError(t, m.Shutdown())

		err := m.Publish(context.Background(), RecordAnchoredSubject, "data")

		assert.ErrorIs(t, err, ErrNotStarted)
	})
}

func TestStream_create(t *testing.T) {
	t.Run("stream info fails", func(t *testing.T) {
		err := EventStream.create(&stubJetStream{infoErr: errors.New("b00m")})

		assert.EqualError(t, err, "b00m")
	})
	t.Run("stream is added when not found", func(t *testing.T) {
		js := &stubJetStream{infoErr: nats.ErrStreamNotFound}

		err := EventStream.create(js)

		assert.NoError(t, err)
		assert.Same(t, EventStream.Config(), js.added)
	})
}

type stubJetStream struct {
	infoErr error
	added   *nats.StreamConfig
}

func (s *stubJetStream) StreamInfo(_ string, _ ...nats.JSOpt) (*nats.StreamInfo, error) {
	return nil, s.infoErr
}

func (s *stubJetStream) AddStream(cfg *nats.StreamConfig, _ ...nats.JSOpt) (*nats.StreamInfo, error) {
	s.added = cfg
	return &nats.StreamInfo{Config: *cfg}, nil
}

func (s *stubJetStream) PublishMsg(_ *nats.Msg, _ ...nats.PubOpt) (*nats.PubAck, error) {
	return &nats.PubAck{}, nil
}
