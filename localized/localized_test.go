// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package localized

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

func testStore(t *testing.T) *refdata.Store {
	t.Helper()
	refdata.ClearCache()
	dir, err := filepath.Abs("../testdata")
	require.NoError(t, err)
	return refdata.NewStore(refdata.DefaultPaths(dir), nil)
}

func TestPRENDuplex2205MatchesFixtureExpectation(t *testing.T) {
	// Fixture 2205 (testdata/materials.csv): Cr=22, Mo=3, N=0.10, duplex.
	comp := refdata.MaterialComposition{CrWtPct: 22, MoWtPct: 3, NWtPct: 0.10, Grade: refdata.GradeDuplex}
	pren := PREN(comp)
	assert.InDelta(t, 34.9, pren, 0.5)
}

func TestPRENNonDuplexUsesBaseMultiplier(t *testing.T) {
	comp := refdata.MaterialComposition{CrWtPct: 17, MoWtPct: 2.5, NWtPct: 0, Grade: refdata.GradeAustenitic}
	assert.InDelta(t, 22.25, PREN(comp), 1e-9)
}

func TestAssessTier1SS316(t *testing.T) {
	store := testStore(t)
	meta := provenance.NewMetadata("localized.AssessTier1", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, err := AssessTier1(store, "SS316", 25, 19000, 8, &meta)
	require.NoError(t, err)
	assert.Greater(t, result.PREN, 0.0)
	assert.NotEmpty(t, result.Susceptibility)
}

func TestAssessTier1UnknownMaterial(t *testing.T) {
	store := testStore(t)
	meta := provenance.NewMetadata("localized.AssessTier1", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	_, err := AssessTier1(store, "unobtainium", 25, 1000, 8, &meta)
	assert.Error(t, err)
}

func TestAssessTier2UnavailableWithoutDO(t *testing.T) {
	meta := provenance.NewMetadata("localized.AssessTier2", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, explanation := AssessTier2("2205", false, 1e-6, 0.98, 2, 0.3, 0.1, 25, &meta)
	assert.Nil(t, result)
	assert.Contains(t, explanation, "unavailable")
}

func TestAssessTier2UnavailableOutsideNRLSubset(t *testing.T) {
	meta := provenance.NewMetadata("localized.AssessTier2", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, explanation := AssessTier2("2205", true, 1e-6, 0.98, 2, 0.3, 0.1, 25, &meta)
	assert.Nil(t, result)
	assert.Contains(t, explanation, "unavailable")
}

func TestAssessTier2PopulatedForNRLMaterial(t *testing.T) {
	meta := provenance.NewMetadata("localized.AssessTier2", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)
	result, explanation := AssessTier2("SS316", true, 1e-6, 0.98, 2, 0.3, 0.6, 25, &meta)
	require.NotNil(t, result)
	assert.Empty(t, explanation)
}

func TestDetectTierDisagreementFlagsLargeGap(t *testing.T) {
	tier2 := &Tier2Result{Risk: SusceptibilityLow}
	disagreement := DetectTierDisagreement(SusceptibilityCritical, tier2)
	assert.True(t, disagreement.Detected)
	assert.Contains(t, disagreement.Recommendation, "mechanistic ground truth")
}

func TestDetectTierDisagreementNoneWhenClose(t *testing.T) {
	tier2 := &Tier2Result{Risk: SusceptibilityHigh}
	disagreement := DetectTierDisagreement(SusceptibilityCritical, tier2)
	assert.False(t, disagreement.Detected)
}

func TestDetectTierDisagreementNoneWithoutTier2(t *testing.T) {
	disagreement := DetectTierDisagreement(SusceptibilityCritical, nil)
	assert.False(t, disagreement.Detected)
}

func TestAssessCreviceAcidificationGrowsWithIRDrop(t *testing.T) {
	low := AssessCrevice(1.0, 0.0001, 8, 19000)
	high := AssessCrevice(100.0, 0.01, 8, 19000)
	assert.Greater(t, high.IRDropV, low.IRDropV)
	assert.GreaterOrEqual(t, high.AcidificationFactor, low.AcidificationFactor)
}
