// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provenance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourceStructured(t *testing.T) {
	s := ParseSource("ASTM G3 2019")
	assert.Equal(t, "ASTM G3", s.Organization)
	assert.Equal(t, 2019, s.Year)
	assert.Equal(t, "ASTM G3 2019", s.Citation)
}

func TestParseSourceBare(t *testing.T) {
	s := ParseSource("internal handbook")
	assert.Equal(t, "internal handbook", s.Citation)
	assert.Equal(t, 0, s.Year)
}

func TestResultNoneIsCanonical(t *testing.T) {
	r := None[float64]("kinetics", provenanceTestErr)
	assert.True(t, r.IsNoData())
	assert.Equal(t, MethodNone, r.Meta.Method)
	assert.Equal(t, ConfidenceNone, r.Meta.Confidence)
	assert.Equal(t, 0.0, r.Value)
	assert.Error(t, r.Err)
}

func TestResultOkIsNotNoData(t *testing.T) {
	meta := NewMetadata("kinetics", "v1", MethodCalculated, ConfidenceHigh)
	r := Ok(1.23, meta)
	assert.False(t, r.IsNoData())
	assert.Equal(t, 1.23, r.Value)
}

func TestMetadataWarningLookup(t *testing.T) {
	meta := NewMetadata("solver", "v1", MethodCalculated, ConfidenceMedium)
	meta.AddWarning(WarnGalvanicShortCircuit, "no galvanic coupling — reporting isolated rate")
	assert.True(t, meta.HasWarning(WarnGalvanicShortCircuit))
	assert.False(t, meta.HasWarning(WarnAnaerobicClamp))
}

var provenanceTestErr = errors.New("boom")
