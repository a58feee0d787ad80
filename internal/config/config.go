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

// Package config loads the genomics-server configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file configuration.
const (
	ListenEnv   = "GENOMICS_LISTEN"
	LogLevelEnv = "LOG_LEVEL"
)

// ErrInvalid is returned when the configuration cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the server configuration.
type Config struct {
	Listen string `yaml:"listen" validate:"required,hostname_port"`
	Log    Log    `yaml:"log"`
	CDS    CDS    `yaml:"cds"`
	GCS    GCS    `yaml:"gcs"`
	Limits Limits `yaml:"limits"`
	// Enforce clamps region limits into the transcript unless a request says
	// otherwise.
	Enforce bool `yaml:"enforce"`
}

// Log configures the logger.
type Log struct {
	Level   string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Console bool   `yaml:"console"`
}

// CDS configures the transcript database.
type CDS struct {
	Location string `yaml:"location" validate:"required"`
	UseFlag  bool   `yaml:"use_flag"`
	Watch    bool   `yaml:"watch"`
}

// GCS configures access to Google Cloud Storage locations.
type GCS struct {
	Token  string `yaml:"token"`
	Public bool   `yaml:"public" validate:"excluded_with=Token"`
}

// Limits bounds the work done per request.
type Limits struct {
	MaxSequenceLength int `yaml:"max_sequence_length" validate:"gte=0"`
	MaxTranscripts    int `yaml:"max_transcripts" validate:"gte=0"`
	CacheSize         int `yaml:"cache_size" validate:"gte=0"`
}

// Default returns the configuration used for missing settings.
func Default() Config {
	return Config{
		Listen:  ":8080",
		Log:     Log{Level: "info"},
		Enforce: true,
		Limits: Limits{
			MaxSequenceLength: 1 << 20,
			MaxTranscripts:    1000,
			CacheSize:         1000,
		},
	}
}

// Load reads the configuration from path, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg, os.LookupEnv)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults.  Unknown fields and
// trailing documents are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Config{}, fmt.Errorf("%w: multiple documents or trailing content", ErrInvalid)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(ListenEnv); ok && v != "" {
		cfg.Listen = v
	}
	if v, ok := lookup(LogLevelEnv); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks cfg and reports every invalid field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, validationMessage(e))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func validationMessage(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "hostname_port":
		return fmt.Sprintf("%s must be a host:port address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
