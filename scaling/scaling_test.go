// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/speciation"
)

func TestAssessCoolingTowerWaterS1(t *testing.T) {
	resp := speciation.Response{
		PH:              7.8,
		AlkalinityMgL:   205,
		SaturationIndex: map[string]float64{"Calcite": -0.1},
	}
	ions := map[string]float64{"CA": 120, "HCO3": 250}
	result := Assess(resp, "Calcite", 150.0/35.45*1, 80.0/48.03*2, 250.0/61.02*1, ions)
	require.NoError(t, result.Err)
	assert.GreaterOrEqual(t, result.Value.LSI, -0.2)
	assert.LessOrEqual(t, result.Value.LSI, 0.8)
}

func TestAssessMissingCalciumIsFatal(t *testing.T) {
	resp := speciation.Response{PH: 7.8, SaturationIndex: map[string]float64{"Calcite": -0.1}}
	ions := map[string]float64{"HCO3": 250}
	result := Assess(resp, "Calcite", 0, 0, 0, ions)
	assert.True(t, result.IsNoData())
}

func TestAssessMissingSaturationIndexIsFatal(t *testing.T) {
	resp := speciation.Response{PH: 7.8, SaturationIndex: map[string]float64{}}
	ions := map[string]float64{"CA": 120, "HCO3": 250}
	result := Assess(resp, "Calcite", 0, 0, 0, ions)
	assert.True(t, result.IsNoData())
}

func TestLarsonInterpretationThreshold(t *testing.T) {
	assert.Contains(t, LarsonInterpretation(1.5), "high corrosivity")
	assert.Contains(t, LarsonInterpretation(0.5), "non-aggressive")
}
