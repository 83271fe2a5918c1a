package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mxshs/vbcrawler/src/config"
	"mxshs/vbcrawler/src/core"
	"mxshs/vbcrawler/src/export"
	"mxshs/vbcrawler/src/logging"
	"mxshs/vbcrawler/src/parser"
)

func main() {
	configPath := flag.String("config", os.Getenv("VBET_CONFIG"), "optional config file (yaml, toml or json)")
	fixture := flag.String("fixture", "", "read a saved rendered page instead of launching Chrome")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <sport>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || strings.TrimSpace(flag.Arg(0)) == "" {
		flag.Usage()
		os.Exit(2)
	}
	sport := strings.TrimSpace(flag.Arg(0))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", err.Error())
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	var renderer core.PageRenderer
	if *fixture != "" {
		renderer = &core.FileRenderer{Path: *fixture}
	} else {
		renderer = core.NewChromeRenderer(core.ChromeOptions{
			BaseURL:      cfg.BaseURL,
			WaitTimeout:  cfg.WaitTimeout,
			Settle:       cfg.Settle,
			Headless:     cfg.Headless,
			UserAgent:    cfg.UserAgent,
			WindowWidth:  cfg.WindowWidth,
			WindowHeight: cfg.WindowHeight,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := parser.Parse(ctx, renderer, sport, log)
	if err != nil {
		log.WithError(err).Error("Error while scraping")
		stop()
		os.Exit(1)
	}

	if err := export.WriteJSON(os.Stdout, report.Records); err != nil {
		log.WithError(err).Error("Failed to write output")
		stop()
		os.Exit(1)
	}
}
