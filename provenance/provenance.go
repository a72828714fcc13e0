// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package provenance implements the shared result envelope (C9): every
// public value produced by the corrosion core is carried alongside a
// Metadata record describing how it was obtained, how much to trust it,
// and what it cites. Errors are tagged variants (errors.go); no
// exception is used for ordinary request flow.
package provenance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Method names how a value was produced.
type Method string

const (
	MethodTableLookup    Method = "table_lookup"
	MethodCalculated     Method = "calculated"
	MethodSemanticSearch Method = "semantic_search"
	MethodNone           Method = "none"
)

// Confidence is a coarse trust level attached to a Result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// WarningCode lets callers branch on warning identity instead of
// matching free text; the text itself is retained for readability.
type WarningCode string

const (
	WarnAnaerobicClamp        WarningCode = "anaerobic_clamp"
	WarnTier1Fallback         WarningCode = "tier1_fallback"
	WarnGalvanicShortCircuit  WarningCode = "galvanic_short_circuit"
	WarnPassiveOrNoble        WarningCode = "passive_or_noble"
	WarnSolverNonConvergence  WarningCode = "solver_non_convergence"
	WarnChargeImbalance       WarningCode = "charge_imbalance"
	WarnTierDisagreement      WarningCode = "tier_disagreement"
	WarnDiffusionLimitFallback WarningCode = "diffusion_limit_fallback"
	WarnTier2Unavailable      WarningCode = "tier2_unavailable"
)

// Warning is a structured, machine-matchable warning entry.
type Warning struct {
	Code    WarningCode
	Message string
}

// Source is a structured citation. ParseSource conservatively upgrades
// a bare "Organization Year" trailer into the structured form; any
// string that does not match that shape is kept as a bare Citation.
type Source struct {
	Citation     string
	Organization string
	Year         int
}

// ParseSource recognizes a raw source string whose last
// whitespace-separated token is a year in [1900, 2100]: everything
// before that token becomes the Organization. A parenthesized
// "(<Org> <Year>)" trailer is not recognized. It never fails: on no
// match it returns Source{Citation: raw}.
func ParseSource(raw string) Source {
	raw = strings.TrimSpace(raw)
	fields := strings.Fields(raw)
	if len(fields) >= 2 {
		last := fields[len(fields)-1]
		if y, err := strconv.Atoi(last); err == nil && y >= 1900 && y <= 2100 {
			org := strings.Join(fields[:len(fields)-1], " ")
			return Source{Citation: raw, Organization: org, Year: y}
		}
	}
	return Source{Citation: raw}
}

// Metadata documents how a value was obtained.
type Metadata struct {
	ModelName          string
	ModelVersion       string
	Method             Method
	Confidence         Confidence
	ValidationDatasets []string
	Sources            []Source
	Assumptions        []string
	Warnings           []Warning
	CorrelationID      string
}

// NewMetadata builds a Metadata with a fresh correlation id and the
// given model identity; callers append sources/warnings/assumptions.
func NewMetadata(modelName, modelVersion string, method Method, confidence Confidence) Metadata {
	return Metadata{
		ModelName:     modelName,
		ModelVersion:  modelVersion,
		Method:        method,
		Confidence:    confidence,
		CorrelationID: uuid.NewString(),
	}
}

// AddWarning appends a structured warning in place.
func (m *Metadata) AddWarning(code WarningCode, format string, args ...interface{}) {
	m.Warnings = append(m.Warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// HasWarning reports whether a warning with the given code is present.
func (m Metadata) HasWarning(code WarningCode) bool {
	for _, w := range m.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Result is the generic envelope: a value plus its provenance. A
// Result with Meta.Method == MethodNone and Meta.Confidence ==
// ConfidenceNone is the canonical "no data" signal and must never be
// synthesized from defaults.
type Result[T any] struct {
	Value T
	Meta  Metadata
	Err   error
}

// Ok wraps a successfully computed value with its provenance.
func Ok[T any](value T, meta Metadata) Result[T] {
	return Result[T]{Value: value, Meta: meta}
}

// None builds the canonical "no data available" result for a fatal
// error, per spec: method=none, confidence=none, error carried in the
// warnings list as well as in Err.
func None[T any](modelName string, err error) Result[T] {
	var zero T
	meta := Metadata{
		ModelName:  modelName,
		Method:     MethodNone,
		Confidence: ConfidenceNone,
	}
	meta.AddWarning("", "%v", err)
	return Result[T]{Value: zero, Meta: meta, Err: err}
}

// IsNoData reports whether r is the canonical "no data available"
// signal (method=none, confidence=none).
func (r Result[T]) IsNoData() bool {
	return r.Meta.Method == MethodNone && r.Meta.Confidence == ConfidenceNone
}
