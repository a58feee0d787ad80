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

// This binary serves the genomics API on App Engine.  The CDS table is read
// from CDS_LOCATION when the first request arrives.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/appengine"

	"github.com/gatfieldlab/genomics-tools/api"
	"github.com/gatfieldlab/genomics-tools/cds"
	"github.com/gatfieldlab/genomics-tools/internal/config"
	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
	"github.com/gatfieldlab/genomics-tools/internal/source"
	"github.com/gatfieldlab/genomics-tools/internal/usage"
)

func main() {
	cfg := config.Default()
	cfg.CDS.Location = os.Getenv("CDS_LOCATION")
	cfg.CDS.UseFlag, _ = strconv.ParseBool(os.Getenv("CDS_USE_FLAG"))
	if err := config.Validate(cfg); err != nil {
		base := gtlog.Base()
		base.Fatal().Err(err).Msg("Invalid App Engine environment")
	}
	gtlog.Configure(gtlog.Config{Level: cfg.Log.Level, Service: "genomics-appengine"})

	db := cds.NewDatabase(source.NewOpener(source.NewDefaultClient), cfg.CDS.Location, cds.Options{UseFlag: cfg.CDS.UseFlag})
	server := api.NewServer(db, api.Options{
		Enforce:           cfg.Enforce,
		MaxSequenceLength: cfg.Limits.MaxSequenceLength,
		MaxTranscripts:    cfg.Limits.MaxTranscripts,
		CacheSize:         cfg.Limits.CacheSize,
	})

	gin.SetMode(gin.ReleaseMode)
	reg := prometheus.NewRegistry()
	router := api.NewRouter(server, usage.NewRecorder(reg), reg)

	http.Handle("/", loadOnce(db, router))
	appengine.Main()
}

// loadOnce loads db with the context of the first request before serving.
// A failed load is retried by the next request.
func loadOnce(db *cds.Database, next http.Handler) http.Handler {
	var (
		mu     sync.Mutex
		loaded bool
	)
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		if !loaded {
			if err := db.Load(appengine.NewContext(req)); err != nil {
				mu.Unlock()
				http.Error(w, fmt.Sprintf("%s: %v", http.StatusText(http.StatusServiceUnavailable), err), http.StatusServiceUnavailable)
				return
			}
			loaded = true
		}
		mu.Unlock()
		next.ServeHTTP(w, req)
	})
}
