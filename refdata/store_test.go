// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	ClearCache()
	dir, err := filepath.Abs("../testdata")
	require.NoError(t, err)
	return NewStore(DefaultPaths(dir), nil)
}

func TestLoadMaterialsByCommonNameAndUNS(t *testing.T) {
	s := testStore(t)
	mats, err := s.LoadMaterials()
	require.NoError(t, err)

	byName, ok := lookupExactThenSubstring(mats, "HY80", NormalizeMaterialID)
	require.True(t, ok)
	assert.Equal(t, GradeCarbonSteel, byName.Grade)

	byUNS, ok := mats[NormalizeMaterialID(byName.UNS)]
	require.True(t, ok)
	assert.Equal(t, byName.UNS, byUNS.UNS)
}

func TestLoadMaterialsRejectsInvalidRows(t *testing.T) {
	s := testStore(t)
	mats, err := s.LoadMaterials()
	require.NoError(t, err)
	for _, m := range mats {
		assert.NoError(t, m.Validate())
	}
}

func TestGetChlorideThresholdFloorsAtMinimum(t *testing.T) {
	s := testStore(t)
	v, err := s.GetChlorideThreshold("SS316", 90, 8)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, minChlorideThresholdMgL)
}

func TestGetChlorideThresholdUnknownMaterial(t *testing.T) {
	s := testStore(t)
	_, err := s.GetChlorideThreshold("unobtainium", 25, 7)
	assert.Error(t, err)
}

func TestGetORRDiffusionLimitBucketsTemperature(t *testing.T) {
	s := testStore(t)
	at25 := s.GetORRDiffusionLimit(Freshwater, 20)
	at60 := s.GetORRDiffusionLimit(Freshwater, 70)
	assert.NotEqual(t, at25, at60)
}

func TestGetORRDiffusionLimitDefaultsWhenMissing(t *testing.T) {
	s := testStore(t)
	v := s.GetORRDiffusionLimit(Electrolyte("brine"), 25)
	assert.Equal(t, defaultORRLimitAm2, v)
}

func TestLookupGalvanicPotentialPrefersXMLSeries(t *testing.T) {
	s := testStore(t)
	pot, ok := s.LookupGalvanicPotential("HY80", SCE)
	require.True(t, ok)
	assert.Equal(t, -0.60, pot)
}

func TestLookupGalvanicPotentialAlias(t *testing.T) {
	s := testStore(t)
	_, ok := s.LookupGalvanicPotential("aluminum", SCE)
	assert.True(t, ok)
}

func TestLookupGalvanicPotentialSHEConversionUsesSourceOffset(t *testing.T) {
	s := testStore(t)
	sce, ok := s.LookupGalvanicPotential("HY80", SCE)
	require.True(t, ok)
	she, ok := s.LookupGalvanicPotential("HY80", SHE)
	require.True(t, ok)
	assert.InDelta(t, sce+SHEOffsetNRL, she, 1e-9)
}

func TestGetReactionCoeffsUnknownMaterial(t *testing.T) {
	s := testStore(t)
	_, err := s.GetReactionCoeffs("unobtainium", ReactionORR)
	assert.Error(t, err)
}

func TestGetReactionCoeffsUnsupportedReactionPair(t *testing.T) {
	s := testStore(t)
	_, err := s.GetReactionCoeffs("HY80", ReactionPassivation)
	assert.Error(t, err)
}

func TestGetReactionCoeffsLoadsSixFields(t *testing.T) {
	s := testStore(t)
	c, err := s.GetReactionCoeffs("SS316", ReactionORR)
	require.NoError(t, err)
	assert.Equal(t, 68000.0, c.P00)
	assert.Equal(t, 900.0, c.P10)
}

func TestGetReactionCoeffsHY80ORRNegativeAtRefusalConditions(t *testing.T) {
	s := testStore(t)
	c, err := s.GetReactionCoeffs("HY80", ReactionORR)
	require.NoError(t, err)
	dg := c.Evaluate(0.54, 298.15)
	assert.Less(t, dg, 0.0)
}
