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

// Package usage records what the service is used for as Prometheus metrics.
package usage

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "genomics"

// Hit represents a single usage event.
type Hit struct {
	Category string
	Action   string
	Label    string
	Value    *int64
}

// Event generates a new hit.  The label may be empty and the value may be nil
// but category and action are required.
func Event(category, action, label string, value *int64) Hit {
	return Hit{Category: category, Action: action, Label: label, Value: value}
}

// Recorder turns hits into counters.  To create a properly initialized
// Recorder instance, use NewRecorder.
type Recorder struct {
	events *prometheus.CounterVec
	values *prometheus.CounterVec
}

// NewRecorder returns a Recorder whose metrics are registered with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Number of usage events by category, action and label.",
		}, []string{"category", "action", "label"}),
		values: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_values_total",
			Help:      "Sum of the values attached to usage events.",
		}, []string{"category", "action"}),
	}
}

// Send records the provided hits.  Hits without a category or action are
// ignored.
func (r *Recorder) Send(hits []Hit) {
	for _, hit := range hits {
		if hit.Category == "" || hit.Action == "" {
			continue
		}
		r.events.WithLabelValues(hit.Category, hit.Action, hit.Label).Inc()
		if hit.Value != nil && *hit.Value > 0 {
			r.values.WithLabelValues(hit.Category, hit.Action).Add(float64(*hit.Value))
		}
	}
}

type contextKey int

var (
	hitsKey = contextKey(1)
)

// Middleware returns a gin handler which prepares the incoming request's
// context for use with the TrackerFromContext function.  When the remaining
// handlers complete, the track function is invoked with any hits accumulated
// during the request.
func Middleware(track func([]Hit)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hits []Hit
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), hitsKey, &hits))
		c.Next()
		track(hits)
	}
}

// TrackerFromContext is intended to be used with contexts that are prepared
// by Middleware.  It returns a function that buffers hits to be delivered to
// the track function provided to Middleware.
func TrackerFromContext(ctx context.Context) func(Hit) {
	if hits, ok := ctx.Value(hitsKey).(*[]Hit); ok {
		return func(hit Hit) { *hits = append(*hits, hit) }
	}
	return func(Hit) {}
}
