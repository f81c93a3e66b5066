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

package core

import (
	"errors"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEngineConfig struct {
	Key  string        `koanf:"key"`
	Sub  testSubConfig `koanf:"sub"`
	List []string      `koanf:"list"`
}

type testSubConfig struct {
	Test string `koanf:"test"`
}

type testEngine struct {
	config testEngineConfig
}

func (t *testEngine) Name() string {
	return "TestEngine"
}

func (t *testEngine) Config() interface{} {
	return &t.config
}

func TestNewSystem(t *testing.T) {
	system := NewSystem()
	assert.NotNil(t, system)
	assert.Empty(t, system.engines)
}

func TestSystem_Start(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("ok", func(t *testing.T) {
		r := NewMockRunnable(ctrl)
		r.EXPECT().Start()

		system := NewSystem()
		system.RegisterEngine(&testEngine{})
		system.RegisterEngine(r)

		assert.NoError(t, system.Start())
	})
	t.Run("error stops remaining engines from starting", func(t *testing.T) {
		r1 := NewMockRunnable(ctrl)
		r1.EXPECT().Start().Return(errors.New("failure"))
		r2 := NewMockRunnable(ctrl)

		system := NewSystem()
		system.RegisterEngine(r1)
		system.RegisterEngine(r2)

		assert.EqualError(t, system.Start(), "failed to start *core.MockRunnable: failure")
	})
}

func TestSystem_Shutdown(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("reverse order", func(t *testing.T) {
		r1 := NewMockRunnable(ctrl)
		r2 := NewMockRunnable(ctrl)
		gomock.InOrder(
			r2.EXPECT().Shutdown(),
			r1.EXPECT().Shutdown(),
		)
		system := NewSystem()
		system.RegisterEngine(r1)
		system.RegisterEngine(r2)

		assert.NoError(t, system.Shutdown())
	})
	t.Run("all engines are shut down, even on error", func(t *testing.T) {
		r1 := NewMockRunnable(ctrl)
		r1.EXPECT().Shutdown()
		r2 := NewMockRunnable(ctrl)
		r2.EXPECT().Shutdown().Return(errors.New("failure"))
		system := NewSystem()
		system.RegisterEngine(r1)
		system.RegisterEngine(r2)

		err := system.Shutdown()

		assert.ErrorContains(t, err, "failure")
	})
}

func TestSystem_Configure(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("ok", func(t *testing.T) {
		r := NewMockConfigurable(ctrl)
		r.EXPECT().Configure(gomock.Any())

		system := NewSystem()
		system.Config = NewServerConfig()
		system.Config.Datadir = t.TempDir()
		system.RegisterEngine(&testEngine{})
		system.RegisterEngine(r)

		assert.NoError(t, system.Configure())
	})
	t.Run("creates datadir", func(t *testing.T) {
		system := NewSystem()
		system.Config.Datadir = path.Join(t.TempDir(), "sub", "dir")

		require.NoError(t, system.Configure())

		assert.DirExists(t, system.Config.Datadir)
	})
	t.Run("error", func(t *testing.T) {
		r := NewMockConfigurable(ctrl)
		r.EXPECT().Configure(gomock.Any()).Return(errors.New("failure"))

		system := NewSystem()
		system.Config.Datadir = t.TempDir()
		system.RegisterEngine(r)

		assert.ErrorContains(t, system.Configure(), "failure")
	})
}

func TestSystem_Load(t *testing.T) {
	t.Setenv("TDLAAS_TESTENGINE_KEY", "from-env")
	t.Setenv("TDLAAS_TESTENGINE_SUB_TEST", "nested")
	t.Setenv("TDLAAS_TESTENGINE_LIST", "a, b")
	engine := &testEngine{}
	system := NewSystem()
	system.RegisterEngine(engine)

	err := system.Load(FlagSet())

	require.NoError(t, err)
	assert.Equal(t, "from-env", engine.config.Key)
	assert.Equal(t, "nested", engine.config.Sub.Test)
	assert.Equal(t, []string{"a", "b"}, engine.config.List)
}

func TestSystem_VisitEnginesE(t *testing.T) {
	system := NewSystem()
	system.RegisterEngine(&testEngine{})
	system.RegisterEngine(&testEngine{})
	var count int

	err := system.VisitEnginesE(func(engine Engine) error {
		count++
		return errors.New("stop")
	})

	assert.EqualError(t, err, "stop")
	assert.Equal(t, 1, count)
}
