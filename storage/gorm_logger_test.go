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

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func Test_gormLogrusLogger_Trace(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()
	query := func() (string, int64) { return "SELECT * FROM transaction_record", 2 }

	newLogger := func() (gormLogrusLogger, *test.Hook) {
		underlying, hook := test.NewNullLogger()
		underlying.SetLevel(logrus.DebugLevel)
		return gormLogrusLogger{underlying: logrus.NewEntry(underlying), slowThreshold: time.Second}, hook
	}

	t.Run("fast query", func(t *testing.T) {
		logger, hook := newLogger()

		logger.Trace(context.Background(), now.Add(-time.Millisecond), query, nil)

		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
		assert.Equal(t, int64(2), hook.LastEntry().Data["rows"])
	})
	t.Run("slow query", func(t *testing.T) {
		logger, hook := newLogger()

		logger.Trace(context.Background(), now.Add(-2*time.Second), query, nil)

		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "Slow query (took 2s)")
	})
	t.Run("failed query", func(t *testing.T) {
		logger, hook := newLogger()

		logger.Trace(context.Background(), now, query, errors.New("disk I/O error"))

		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "Query failed")
	})
	t.Run("record not found is not a failure", func(t *testing.T) {
		logger, hook := newLogger()

		logger.Trace(context.Background(), now, query, gorm.ErrRecordNotFound)

		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	})
}
