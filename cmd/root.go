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

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tdlaas/tdlaas-node/anchor"
	anchorAPI "github.com/tdlaas/tdlaas-node/anchor/api/v1"
	anchorCmd "github.com/tdlaas/tdlaas-node/anchor/cmd"
	"github.com/tdlaas/tdlaas-node/core"
	"github.com/tdlaas/tdlaas-node/crypto"
	"github.com/tdlaas/tdlaas-node/events"
	eventsCmd "github.com/tdlaas/tdlaas-node/events/cmd"
	httpEngine "github.com/tdlaas/tdlaas-node/http"
	"github.com/tdlaas/tdlaas-node/ledger"
	ledgerCmd "github.com/tdlaas/tdlaas-node/ledger/cmd"
	"github.com/tdlaas/tdlaas-node/storage"
	storageCmd "github.com/tdlaas/tdlaas-node/storage/cmd"
	"github.com/tdlaas/tdlaas-node/tracing"
	tracingCmd "github.com/tdlaas/tdlaas-node/tracing/cmd"
	"github.com/tdlaas/tdlaas-node/vcr"
	vcrAPI "github.com/tdlaas/tdlaas-node/vcr/api/v1"
	vcrCmd "github.com/tdlaas/tdlaas-node/vcr/cmd"
	"github.com/tdlaas/tdlaas-node/vdr"
	vdrAPI "github.com/tdlaas/tdlaas-node/vdr/api/v1"
	vdrCmd "github.com/tdlaas/tdlaas-node/vdr/cmd"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tdlaas",
		Short: "tdlaas node: issues and verifies DID based credentials and anchors transaction records on a ledger.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
			return nil
		},
	}
	command.Flags().AddFlagSet(serverFlagSet())
	return command
}

func createServerCommand(system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "server",
		Short: "Starts the tdlaas node",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return startServer(cmd.Context(), system, cmd.Flags())
		},
	}
	command.Flags().AddFlagSet(serverFlagSet())
	return command
}

// startServer configures and starts all engines, and shuts them down when the context is cancelled.
func startServer(ctx context.Context, system *core.System, flags *pflag.FlagSet) error {
	if err := system.Load(flags); err != nil {
		return err
	}
	// The config holds identity secrets.
	logrus.Trace("Starting server with config:")
	logrus.Trace(system.Config.PrintConfig())

	if err := system.Configure(); err != nil {
		return err
	}
	router, err := findRouter(system)
	if err != nil {
		return err
	}
	system.VisitEngines(func(engine core.Engine) {
		if routable, ok := engine.(core.Routable); ok {
			routable.Routes(router)
		}
	})
	for _, routable := range system.Routers {
		routable.Routes(router)
	}
	if err = system.Start(); err != nil {
		return err
	}
	logrus.Info("tdlaas node started")

	<-ctx.Done()
	logrus.Info("Shutting down")
	return system.Shutdown()
}

func findRouter(system *core.System) (core.EchoRouter, error) {
	var router core.EchoRouter
	system.VisitEngines(func(engine core.Engine) {
		if server, ok := engine.(*httpEngine.Engine); ok {
			router = server.Router()
		}
	})
	if router == nil {
		return nil, errors.New("no HTTP engine registered")
	}
	return router, nil
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand()
	command.SetOut(stdOutWriter)
	command.AddCommand(createServerCommand(system))
	command.AddCommand(createPrintConfigCommand(system))
	return command
}

// CreateSystem creates the system and registers all engines and APIs.
// The callback is called when the HTTP server stops unexpectedly.
func CreateSystem(shutdownCallback func()) *core.System {
	system := core.NewSystem()
	keyStore := crypto.NewMemoryKeyStore()
	tracingInstance := tracing.New()
	storageInstance := storage.New()
	ledgerInstance := ledger.New()
	eventManager := events.NewManager()
	vdrInstance := vdr.New(ledgerInstance, keyStore)
	vcrInstance := vcr.New(storageInstance, vdrInstance, keyStore)
	anchorInstance := anchor.New(storageInstance, ledgerInstance, vdrInstance, vcrInstance, eventManager)
	httpServerInstance := httpEngine.New(shutdownCallback)

	system.RegisterRoutes(&vdrAPI.Wrapper{VDR: vdrInstance})
	system.RegisterRoutes(&vcrAPI.Wrapper{VCR: vcrInstance, VDR: vdrInstance})
	system.RegisterRoutes(&anchorAPI.Wrapper{Anchor: anchorInstance})

	// Order matters: engines are configured and started in this order, and shut down in reverse.
	system.RegisterEngine(tracingInstance)
	system.RegisterEngine(storageInstance)
	system.RegisterEngine(ledgerInstance)
	system.RegisterEngine(eventManager)
	system.RegisterEngine(vdrInstance)
	system.RegisterEngine(vcrInstance)
	system.RegisterEngine(anchorInstance)
	system.RegisterEngine(core.NewMetricsEngine())
	system.RegisterEngine(core.NewStatusEngine(system))
	system.RegisterEngine(httpServerInstance)
	return system
}

// Execute runs the root command until the context is cancelled or the command finishes.
func Execute(ctx context.Context, system *core.System) error {
	return CreateCommand(system).ExecuteContext(ctx)
}

func serverFlagSet() *pflag.FlagSet {
	flagSet := core.FlagSet()
	flagSet.AddFlagSet(tracingCmd.FlagSet())
	flagSet.AddFlagSet(storageCmd.FlagSet())
	flagSet.AddFlagSet(ledgerCmd.FlagSet())
	flagSet.AddFlagSet(eventsCmd.FlagSet())
	flagSet.AddFlagSet(vdrCmd.FlagSet())
	flagSet.AddFlagSet(vcrCmd.FlagSet())
	flagSet.AddFlagSet(anchorCmd.FlagSet())
	return flagSet
}
