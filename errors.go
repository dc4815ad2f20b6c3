// Copyright 2025 The pvsim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"strings"
)

// UnknownTechnologyError is returned when a technology name falls outside
// the closed enumeration. The selection layer and the engine share the same
// catalog, so hitting this is a programming error, not bad user input.
type UnknownTechnologyError struct {
	Name  string
	Known []string
}

func (e *UnknownTechnologyError) Error() string {
	return fmt.Sprintf("unknown panel technology %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// UnknownWeatherError is returned when a weather condition name falls
// outside the closed enumeration
type UnknownWeatherError struct {
	Name  string
	Known []string
}

func (e *UnknownWeatherError) Error() string {
	return fmt.Sprintf("unknown weather condition %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// ValidationError represents a configuration or input validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for %s (%s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error for %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ReportError represents a report or chart generation error
type ReportError struct {
	Stage string
	Err   error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report error during %s: %v", e.Stage, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
