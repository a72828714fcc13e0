// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/kinetics"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

func testMaterial(t *testing.T, id string) *kinetics.Material {
	t.Helper()
	refdata.ClearCache()
	dir, err := filepath.Abs("../testdata")
	require.NoError(t, err)
	store := refdata.NewStore(refdata.DefaultPaths(dir), nil)
	m, err := kinetics.New(store, id, 0.1, 25, 8, 0)
	require.NoError(t, err)
	return m
}

func TestBuildProducesFullGrid(t *testing.T) {
	m := testMaterial(t, "SS316")
	low, high, n := DefaultGrid()
	curve := Build(m, BuildOptions{
		GridLowSCE: low, GridHighSCE: high, NPoints: n,
		Equilibrium:         EquilibriumPotentials{refdata.ReactionORR: 0.8, refdata.ReactionHER: -0.2, refdata.ReactionPassivation: 0.2, refdata.ReactionPitting: 0.9},
		DissolvedOxygenGCm3: 8e-6,
		DiffusivityCm2S:     2e-5,
	})
	assert.Len(t, curve.PotentialsSCE, n)
	assert.Equal(t, low, curve.PotentialsSCE[0])
	assert.InDelta(t, high, curve.PotentialsSCE[n-1], 1e-9)
}

func TestCathodicCurrentIsDiffusionCapped(t *testing.T) {
	m := testMaterial(t, "HY80")
	curve := Build(m, BuildOptions{
		GridLowSCE: -1.5, GridHighSCE: 0.5, NPoints: 50,
		Equilibrium:         EquilibriumPotentials{refdata.ReactionORR: 0.8, refdata.ReactionHER: -0.2, refdata.ReactionMetalOxidation: -0.5, refdata.ReactionPitting: 0.9},
		DissolvedOxygenGCm3: 8e-6,
		DiffusivityCm2S:     2e-5,
	})
	// ORR and HER are each capped at the same i_lim for HY80.
	iLim := diffusionLimitedCap(m.NElectrons, 2e-5, 8e-6, m.Reactions[refdata.ReactionORR].DiffusionLayerCmC, m.MolarMassGMol)
	for _, c := range curve.CathodicACm2 {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 2*iLim*(1+1e-12))
	}
}

func TestPassiveFilmCorrectionConvergesForModestOverpotential(t *testing.T) {
	_, converged := passiveFilmCorrectedCurrent(0.3, 1e-6, 0.5, 3, 298.15, 1e3)
	assert.True(t, converged)
}

func TestKouteckyLevichSaturatesAtDiffusionLimit(t *testing.T) {
	iLim := 1e-4
	for _, iAct := range []float64{1e-8, 1e-6, 1e-3, 1.0} {
		total := kouteckyLevich(iAct, iLim)
		assert.LessOrEqual(t, total, iLim*1.0000001)
	}
}

func TestDiffusionLimitedCapInfiniteWhenNoLayer(t *testing.T) {
	cap := diffusionLimitedCap(2, 2e-5, 8e-6, 0, 55.845)
	assert.True(t, cap > 1e300)
}
