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

package usage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Send(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := NewRecorder(reg)

	var hits []Hit
	for i := int64(0); i < 10; i++ {
		v := i
		hits = append(hits, Event("tests", "test", "", &v))
	}
	hits = append(hits, Event("tests", "other", "label", nil))
	hits = append(hits, Event("", "ignored", "", nil))
	r.Send(hits)

	if got, want := testutil.ToFloat64(r.events.WithLabelValues("tests", "test", "")), 10.0; got != want {
		t.Errorf("Wrong number of events: got %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(r.values.WithLabelValues("tests", "test")), 45.0; got != want {
		t.Errorf("Wrong sum of values: got %v, want %v", got, want)
	}

	const expected = `
# HELP genomics_events_total Number of usage events by category, action and label.
# TYPE genomics_events_total counter
genomics_events_total{action="other",category="tests",label="label"} 1
genomics_events_total{action="test",category="tests",label=""} 10
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "genomics_events_total"); err != nil {
		t.Errorf("Unexpected metrics: %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var tracked []Hit
	router := gin.New()
	router.Use(Middleware(func(hits []Hit) { tracked = hits }))
	router.GET("/", func(c *gin.Context) {
		track := TrackerFromContext(c.Request.Context())
		track(Event("tests", "first", "", nil))
		track(Event("tests", "second", "", nil))
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got, want := len(tracked), 2; got != want {
		t.Fatalf("Wrong number of hits: got %d, want %d", got, want)
	}
	if got, want := tracked[1].Action, "second"; got != want {
		t.Errorf("Wrong action: got %q, want %q", got, want)
	}
}

func TestTrackerFromContext_NoMiddleware(t *testing.T) {
	// Must not panic.
	TrackerFromContext(context.Background())(Event("tests", "test", "", nil))
}
