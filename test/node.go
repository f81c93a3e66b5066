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

package test

import (
	"net"
	"os"
	"path"
	"testing"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type nodeConfig struct {
	Datadir    string `koanf:"datadir"`
	Strictmode bool   `koanf:"strictmode"`
	HTTP       struct {
		Address string `koanf:"address"`
	} `koanf:"http"`
	Events struct {
		Nats struct {
			Port int `koanf:"port"`
		} `koanf:"nats"`
	} `koanf:"events"`
	VDR struct {
		Funding struct {
			Interval string `koanf:"interval"`
		} `koanf:"funding"`
		Identities struct {
			Issuer identityConfig `koanf:"issuer"`
			Holder identityConfig `koanf:"holder"`
		} `koanf:"identities"`
	} `koanf:"vdr"`
}

type identityConfig struct {
	Secret string `koanf:"secret"`
}

// FreeTCPAddress returns a localhost address on a port that was free when it was called.
func FreeTCPAddress(t testing.TB) string {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()
	return listener.Addr().String()
}

// IntegrationTestConfig writes the config of a node that runs on the in-memory ledger in the given directory,
// and returns the path of the config file. The issuer and holder identities are configured.
func IntegrationTestConfig(t testing.TB, testDirectory string, httpAddress string) string {
	config := nodeConfig{Datadir: testDirectory}
	config.HTTP.Address = httpAddress
	config.Events.Nats.Port = -1
	config.VDR.Funding.Interval = "10ms"
	config.VDR.Identities.Issuer.Secret = "issuer-secret"
	config.VDR.Identities.Holder.Secret = "holder-secret"

	k := koanf.New(".")
	if err := k.Load(structs.ProviderWithDelim(config, "koanf", "."), nil); err != nil {
		t.Fatal(err)
	}
	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		t.Fatal(err)
	}
	configFile := path.Join(testDirectory, "tdlaas.yaml")
	if err = os.WriteFile(configFile, data, 0600); err != nil {
		t.Fatal(err)
	}
	return configFile
}
