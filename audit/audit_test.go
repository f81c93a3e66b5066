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

package audit

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	logger := logrus.StandardLogger().WithField("module", "TestModule")

	t.Run("it logs", func(t *testing.T) {
		capturedLogs := CaptureLogs(t)

		Log(TestContext(), logger, "test").Info("test message")

		capturedLogs.AssertContains(t, "TestModule", "test", TestActor, "test message")
		entry := capturedLogs.hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "TestModule.TestOperation", entry.Data["operation"])
	})
	t.Run("it logs the system actor without audit info", func(t *testing.T) {
		capturedLogs := CaptureLogs(t)

		Log(context.Background(), logger, "test").Info("test message")

		capturedLogs.AssertContains(t, "TestModule", "test", SystemActor, "test message")
	})
	t.Run("it logs regardless of verbosity", func(t *testing.T) {
		level := logrus.GetLevel()
		logrus.SetLevel(logrus.ErrorLevel)
		t.Cleanup(func() {
			logrus.SetLevel(level)
		})
		capturedLogs := CaptureLogs(t)

		Log(TestContext(), logger, "test").Info("test message")

		assert.True(t, capturedLogs.Contains(t, "test"))
	})
	t.Run("it panics when no event name is set", func(t *testing.T) {
		assert.Panics(t, func() {
			Log(TestContext(), logger, "")
		})
	})
}

func TestAuditFormatter_Format(t *testing.T) {
	formatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetFormatter(formatter)
	})
	entry := &logrus.Entry{Logger: logrus.New(), Level: logrus.InfoLevel, Message: "hello", Data: logrus.Fields{}}

	t.Run("text", func(t *testing.T) {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})

		data, err := auditFormatter{}.Format(entry)

		require.NoError(t, err)
		assert.True(t, bytes.Contains(data, []byte("level=audit")), string(data))
	})
	t.Run("json", func(t *testing.T) {
		logrus.SetFormatter(&logrus.JSONFormatter{})

		data, err := auditFormatter{}.Format(entry)

		require.NoError(t, err)
		assert.True(t, bytes.Contains(data, []byte(`"level":"audit"`)), string(data))
	})
}

func TestInfoFromContext(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		info := InfoFromContext(Context(context.Background(), "actor", "Module", "Op"))

		require.NotNil(t, info)
		assert.Equal(t, "actor", info.Actor)
		assert.Equal(t, "Module.Op", info.Operation)
	})
	t.Run("not set", func(t *testing.T) {
		assert.Nil(t, InfoFromContext(context.Background()))
	})
}
