// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Command sentinel is the single binary described by spec.md §6
// ("Operational surface"): no subcommands, no configuration file, run with
// sufficient privilege and it begins monitoring immediately.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/juriSacchetta/sentinel/pkg/security/log"
	"github.com/juriSacchetta/sentinel/pkg/security/probe"
)

var (
	bpfDir      string
	metricsAddr string
)

func main() {
	root := &cobra.Command{
		Use:           "sentinel",
		Short:         "Runtime threat sensor for fileless execution, reflective loading and reverse shells",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&bpfDir, "bpf-dir", "bpf", "directory containing the compiled probe object")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")

	if err := root.Execute(); err != nil {
		log.Errorf("sentinel: %v", err)
		os.Exit(1)
	}
}

func run(*cobra.Command, []string) error {
	defer log.Sync() //nolint:errcheck

	promReg := prometheus.NewRegistry()
	p, err := probe.NewProbe(promReg, probe.WithBPFDir(bpfDir))
	if err != nil {
		return fmt.Errorf("building probe: %w", err)
	}

	if err := p.Init(); err != nil {
		return fmt.Errorf("initializing probe: %w", err)
	}
	if err := p.Start(); err != nil {
		return fmt.Errorf("starting probe: %w", err)
	}
	log.Infof("sentinel started, monitoring for fileless execution, reflective loading and reverse shells")

	if metricsAddr != "" {
		go serveMetrics(metricsAddr, promReg)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Infof("shutting down")
	return p.Close()
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil { //nolint:gosec
		log.Warnf("metrics server stopped: %v", err)
	}
}
