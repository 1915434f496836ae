// SPDX-License-Identifier: MIT

// Command roadnet loads road networks and answers shortest-path queries,
// either once from the command line or over HTTP.
//
// Usage:
//
//	roadnet -load towns.txt -from Harbor -to Cliffs
//	roadnet -config roadnet.yaml -serve
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/logging"
	"github.com/katalvlaran/roadnet/manager"
	"github.com/katalvlaran/roadnet/metrics"
	"github.com/katalvlaran/roadnet/server"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "roadnet:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("roadnet", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	load := fs.String("load", "", "comma-separated road files to load")
	from := fs.String("from", "", "start town for a path query")
	to := fs.String("to", "", "destination town for a path query")
	serve := fs.Bool("serve", false, "serve the HTTP API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	for _, f := range strings.Split(*load, ",") {
		if f = strings.TrimSpace(f); f != "" {
			cfg.Data.Files = append(cfg.Data.Files, f)
		}
	}

	logger, err := logging.New(cfg.Log, zap.String("service", "roadnet"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := metrics.NewRegistry()
	m := manager.New(
		manager.WithLogger(logger),
		manager.WithMetrics(reg),
		manager.WithPathOptions(cfg.PathOptions()...),
	)
	for _, f := range cfg.Data.Files {
		if _, err = m.PopulateTownGraph(f); err != nil {
			return err
		}
	}

	if *from != "" || *to != "" {
		if *from == "" || *to == "" {
			return fmt.Errorf("both -from and -to are required")
		}
		steps := m.GetPath(*from, *to)
		if len(steps) == 0 {
			fmt.Fprintf(stdout, "no route from %s to %s\n", *from, *to)
		}
		for _, step := range steps {
			fmt.Fprintln(stdout, step)
		}
	}

	if !*serve {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(m, reg, logger).ListenAndServe(ctx, cfg.Server.Addr)
}
