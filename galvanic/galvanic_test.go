// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galvanic

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/kinetics"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/reaction"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

func buildCurve(t *testing.T, id string) (*kinetics.Material, reaction.PolarizationCurve) {
	t.Helper()
	refdata.ClearCache()
	dir, err := filepath.Abs("../testdata")
	require.NoError(t, err)
	store := refdata.NewStore(refdata.DefaultPaths(dir), nil)
	// 0.1 M chloride: at 0.54 M the HY80 ORR activation energy is
	// negative and kinetics.New refuses to build the material.
	m, err := kinetics.New(store, id, 0.1, 25, 8, 0)
	require.NoError(t, err)
	low, high, n := reaction.DefaultGrid()
	curve := reaction.Build(m, reaction.BuildOptions{
		GridLowSCE: low, GridHighSCE: high, NPoints: n,
		Equilibrium: reaction.EquilibriumPotentials{
			refdata.ReactionORR:            0.8,
			refdata.ReactionHER:             -0.2,
			refdata.ReactionMetalOxidation:  -0.5,
			refdata.ReactionPassivation:     0.2,
			refdata.ReactionPitting:         0.9,
		},
		DissolvedOxygenGCm3: 8e-6,
		DiffusivityCm2S:     2e-5,
	})
	return m, curve
}

func TestFaradayConversionIronInDocumentedRange(t *testing.T) {
	const ironM, ironN, ironRhoGCm3 = 55.845, 2, 7.85
	currentACm2 := 1e-6 // 1 uA/cm^2
	rate := PenetrationRateMmPerYear(currentACm2, ironM, ironN, ironRhoGCm3)
	assert.GreaterOrEqual(t, rate, 0.010)
	assert.LessOrEqual(t, rate, 0.013)
}

func TestFaradayKIsCorrectedConstant(t *testing.T) {
	assert.InDelta(t, 3.15576e8, FaradayK, 1)
	assert.NotEqual(t, 3.27e6, FaradayK)
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 39.37, MmPerYearToMilsPerYear(1.0), 1e-9)
	assert.InDelta(t, 25.4, InchesPerYearToMmPerYear(1.0), 1e-9)
}

func TestSolveIdenticalMaterialsShortCircuits(t *testing.T) {
	_, curve := buildCurve(t, "SS316")
	meta := provenance.NewMetadata("galvanic.Solve", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, err := Solve(curve, curve, 1.0, true, &meta)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.CurrentRatio)
	assert.True(t, meta.HasWarning(provenance.WarnGalvanicShortCircuit))
}

func TestSolveDissimilarMaterialsProducesMixedPotential(t *testing.T) {
	_, anodeCurve := buildCurve(t, "HY80")
	_, cathodeCurve := buildCurve(t, "SS316")
	meta := provenance.NewMetadata("galvanic.Solve", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, err := Solve(anodeCurve, cathodeCurve, 0.5, false, &meta)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.PotentialSCE, -1.5)
	assert.LessOrEqual(t, result.PotentialSCE, 0.5)
}
