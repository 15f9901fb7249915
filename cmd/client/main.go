// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/termplay/internal/client"
	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/termination"
	"github.com/MKhiriev/termplay/internal/tui"
	"github.com/MKhiriev/termplay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "termplay: %v\n", err)
		return 2
	}

	log, closeLog := logger.NewClientLogger("termplay-client", cfg.Connection.LogFile)
	defer closeLog()

	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting")

	connector, err := client.NewConnector(cfg.Connection, log)
	if err != nil {
		log.Error().Err(err).Msg("create connector")
		fmt.Fprintf(os.Stderr, "termplay: %v\n", err)
		return 1
	}

	app := client.NewApp(connector, tui.New(log), log)

	reason, err := app.Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "termplay: %v\n", err)
		return 1
	}

	fmt.Println(goodbye(reason))
	return 0
}

func goodbye(reason termination.Interrupted) string {
	switch reason {
	case termination.UserInterrupt:
		return "Bye!"
	case termination.OSInterrupt:
		return "Interrupted, bye."
	default:
		return "Goodbye."
	}
}
