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

// Package api implements the genomics HTTP API: region limits over known
// transcripts, feature sets and sequence translation.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gatfieldlab/genomics-tools/features"
	"github.com/gatfieldlab/genomics-tools/genomics"
	"github.com/gatfieldlab/genomics-tools/internal/cache"
	"github.com/gatfieldlab/genomics-tools/internal/usage"
	"github.com/gatfieldlab/genomics-tools/region"
	"github.com/gatfieldlab/genomics-tools/structure"
)

const (
	regionsPath   = "/regions/:region"
	featuresPath  = "/features/:name"
	translatePath = "/translate"
	structurePath = "/structure"
	metricsPath   = "/metrics"

	defaultStep = 3
)

var (
	errNoTranscript      = errors.New("no transcript specified")
	errTooManyTranscript = errors.New("too many transcripts")
	errSequenceTooLong   = errors.New("sequence too long")
)

// Transcripts looks up transcripts by ID.
type Transcripts interface {
	Lookup(id string) (genomics.Transcript, bool)
}

// Options configures a Server.  Zero limits are unbounded.
type Options struct {
	// Enforce is the default for clamping region limits into transcripts.
	Enforce           bool
	MaxSequenceLength int
	MaxTranscripts    int
	// CacheSize bounds the number of parsed regions kept in memory.
	CacheSize int
}

// Server provides the genomics API.  Must be created with NewServer.
type Server struct {
	transcripts Transcripts
	opts        Options
	sets        *cache.Producer[string, *features.Set]
	regions     *cache.Producer[string, *region.Region]
}

// NewServer returns a new Server answering region queries from transcripts.
func NewServer(transcripts Transcripts, opts Options) *Server {
	size := opts.CacheSize
	if size <= 0 {
		size = 1000
	}
	return &Server{
		transcripts: transcripts,
		opts:        opts,
		sets:        cache.NewProducer(features.Setup, len(features.Names())),
		regions:     cache.NewProducer(region.Parse, size),
	}
}

// Export registers the API endpoints with router.
func (server *Server) Export(router gin.IRoutes) {
	router.GET(regionsPath, server.serveRegions)
	router.GET(featuresPath, server.serveFeatures)
	router.POST(translatePath, server.serveTranslate)
	router.GET(structurePath, server.serveStructure)
}

// NewRouter returns a gin engine serving server with request IDs, access
// logs, usage tracking into recorder and the metrics of gatherer.
func NewRouter(server *Server, recorder *usage.Recorder, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(), forwardOrigin(), usage.Middleware(recorder.Send))
	server.Export(router)
	router.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return router
}

type limitsResponse struct {
	Transcript string `json:"transcript"`
	genomics.Interval
}

func (server *Server) serveRegions(c *gin.Context) {
	track := usage.TrackerFromContext(c.Request.Context())
	track(usage.Event("Regions", "Regions Request Received", "", nil))

	expr, err := server.regions.Get(c.Param("region"))
	if err != nil {
		writeError(c, newInvalidInputError("parsing region", err))
		return
	}

	ids := c.QueryArray("transcript")
	if len(ids) == 0 {
		writeError(c, newInvalidInputError("parsing transcripts", errNoTranscript))
		return
	}
	if limit := server.opts.MaxTranscripts; limit > 0 && len(ids) > limit {
		writeError(c, newInvalidInputError("parsing transcripts",
			fmt.Errorf("%w: got %d, at most %d allowed", errTooManyTranscript, len(ids), limit)))
		return
	}

	enforce, err := parseBool(c.Query("enforce"), server.opts.Enforce)
	if err != nil {
		writeError(c, newInvalidInputError("parsing enforce", err))
		return
	}

	limits := make([]limitsResponse, 0, len(ids))
	for _, id := range ids {
		tr, ok := server.transcripts.Lookup(id)
		if !ok {
			writeError(c, newNotFoundError("looking up transcript", fmt.Errorf("unknown transcript %q", id)))
			return
		}
		interval, err := expr.Limits(tr, enforce)
		if err != nil {
			writeError(c, newInvalidInputError("evaluating region for "+id, err))
			return
		}
		limits = append(limits, limitsResponse{id, interval})
	}

	c.JSON(http.StatusOK, gin.H{
		"region":  expr.String(),
		"enforce": enforce,
		"limits":  limits,
	})

	count := int64(len(limits))
	track(usage.Event("Regions", "Regions Transcript Count", "", &count))
}

func (server *Server) serveFeatures(c *gin.Context) {
	track := usage.TrackerFromContext(c.Request.Context())
	name := c.Param("name")

	set, err := server.featureSet(name)
	if err != nil {
		writeError(c, err)
		return
	}

	filter, err := parseBool(c.Query("filter"), false)
	if err != nil {
		writeError(c, newInvalidInputError("parsing filter", err))
		return
	}

	words := set.Words
	if filter {
		words = features.Filter(words)
	}
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"name":      name,
		"word_size": set.WordSize,
		"words":     words,
	})
	track(usage.Event("Features", "Features Listed", name, nil))
}

type translateRequest struct {
	Feature  string `json:"feature" binding:"required"`
	Sequence string `json:"sequence" binding:"required"`
	Step     int    `json:"step" binding:"gte=0"`
}

func (server *Server) serveTranslate(c *gin.Context) {
	track := usage.TrackerFromContext(c.Request.Context())

	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, newInvalidInputError("parsing request", err))
		return
	}
	if limit := server.opts.MaxSequenceLength; limit > 0 && len(req.Sequence) > limit {
		writeError(c, newInvalidInputError("parsing request",
			fmt.Errorf("%w: %d letters, at most %d allowed", errSequenceTooLong, len(req.Sequence), limit)))
		return
	}
	if req.Step == 0 {
		req.Step = defaultStep
	}

	set, err := server.featureSet(req.Feature)
	if err != nil {
		writeError(c, err)
		return
	}

	translated, err := set.Translate(req.Sequence, req.Step)
	if err != nil {
		track(usage.Event("Translate", "Translate Failed", req.Feature, nil))
		writeError(c, newInvalidInputError("translating sequence", err))
		return
	}
	if translated == nil {
		translated = [][]int{}
	}

	c.JSON(http.StatusOK, gin.H{
		"feature":   req.Feature,
		"word_size": set.WordSize,
		"step":      req.Step,
		"words":     translated,
	})

	count := int64(len(req.Sequence))
	track(usage.Event("Translate", "Translate Letters", req.Feature, &count))
}

func (server *Server) serveStructure(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"secondary_structure": structure.SecondaryStructure(),
		"topology":            structure.Topology(),
	})
}

func (server *Server) featureSet(name string) (*features.Set, error) {
	set, err := server.sets.Get(name)
	if errors.Is(err, features.ErrUnknownFeature) {
		return nil, newNotFoundError("setting up feature", err)
	}
	if err != nil {
		return nil, fmt.Errorf("setting up feature %q: %w", name, err)
	}
	return set, nil
}

func parseBool(value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}
