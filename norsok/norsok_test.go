// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norsok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictPipelineScenarioS2(t *testing.T) {
	rate, mechanism, err := Predict(60, 50, 0.05, 5.0, 3, 1, 0.15)
	require.NoError(t, err)
	assert.Greater(t, rate, 0.0)
	assert.Contains(t, mechanism, "CO₂")
}

func TestPredictRejectsOutOfEnvelopeInputs(t *testing.T) {
	_, _, err := Predict(60, 0, 0.05, 5, 3, 1, 0.15)
	assert.Error(t, err)
}

func TestPredictHigherPHLowersRate(t *testing.T) {
	low, _, err := Predict(60, 50, 0.05, 4.0, 3, 1, 0.15)
	require.NoError(t, err)
	high, _, err := Predict(60, 50, 0.05, 7.0, 3, 1, 0.15)
	require.NoError(t, err)
	assert.Less(t, high, low)
}
