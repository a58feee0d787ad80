// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// This binary serves the genomics API over a prepared_cds table.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/gatfieldlab/genomics-tools/api"
	"github.com/gatfieldlab/genomics-tools/cds"
	"github.com/gatfieldlab/genomics-tools/internal/config"
	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
	"github.com/gatfieldlab/genomics-tools/internal/source"
	"github.com/gatfieldlab/genomics-tools/internal/usage"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath = flag.String("config", "genomics-server.yaml", "YAML configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		base := gtlog.Base()
		base.Fatal().Err(err).Str("config", *configPath).Msg("Failed to load configuration")
	}
	gtlog.Configure(gtlog.Config{Level: cfg.Log.Level, Console: cfg.Log.Console, Service: "genomics-server"})
	logger := gtlog.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := cds.NewDatabase(source.NewOpener(newStorageClient(cfg.GCS)), cfg.CDS.Location, cds.Options{UseFlag: cfg.CDS.UseFlag})
	if err := db.Load(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load the CDS database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(db, api.Options{
		Enforce:           cfg.Enforce,
		MaxSequenceLength: cfg.Limits.MaxSequenceLength,
		MaxTranscripts:    cfg.Limits.MaxTranscripts,
		CacheSize:         cfg.Limits.CacheSize,
	})
	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewRouter(server, usage.NewRecorder(reg), reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("listen", cfg.Listen).Int("transcripts", db.Len()).Msg("Serving genomics API")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if cfg.CDS.Watch {
		g.Go(func() error {
			if err := db.Watch(ctx); err != nil {
				logger.Warn().Err(err).Msg("CDS database will not be reloaded")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server returned an error")
	}
}

func newStorageClient(cfg config.GCS) source.NewClientFunc {
	switch {
	case cfg.Token != "":
		return source.NewClientFromToken(cfg.Token)
	case cfg.Public:
		return source.NewPublicClient
	default:
		return source.NewDefaultClient
	}
}
