// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/handler"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/server"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("remote-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if v := buildInfo.BuildVersion(); v != "N/A" {
		cfg.App.Version = v
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	host := service.NewHost(cfg.Service, cfg.App.Version, m, log)
	services := service.NewServices(host)

	handlers, err := handler.NewHandlers(services, cfg, m, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, host.Shutdown)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
