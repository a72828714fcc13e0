// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

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

func TestNewSS316HasExpectedReactionSet(t *testing.T) {
	store := testStore(t)
	m, err := New(store, "SS316", 0.54, 25, 8, 0)
	require.NoError(t, err)
	for _, r := range []refdata.ReactionType{refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionPassivation, refdata.ReactionPitting} {
		_, ok := m.Reactions[r]
		assert.True(t, ok, "expected reaction %s", r)
	}
}

func TestNewUnknownMaterial(t *testing.T) {
	store := testStore(t)
	_, err := New(store, "unobtainium", 0.5, 25, 7, 0)
	assert.ErrorAs(t, err, &provenance.UnknownMaterial{})
}

func TestNewHY80ORRRefusesAtSpecConditions(t *testing.T) {
	store := testStore(t)
	_, err := New(store, "HY80", 0.54, 25, 8, 0)
	require.Error(t, err)
	var invalid provenance.InvalidActivationEnergy
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "HY80", invalid.Material)
	assert.Less(t, invalid.DeltaGCathodic, 0.0)
}

func TestNewAllActivationEnergiesNonNegativeOnSuccess(t *testing.T) {
	store := testStore(t)
	m, err := New(store, "SS316", 0.1, 25, 8, 0)
	require.NoError(t, err)
	for reaction, params := range m.Reactions {
		assert.GreaterOrEqual(t, params.DeltaG.Cathodic, 0.0, "reaction %s", reaction)
		assert.GreaterOrEqual(t, params.DeltaG.Anodic, 0.0, "reaction %s", reaction)
	}
}

func TestVelocityDependentDiffusionLayerShrinksWithVelocity(t *testing.T) {
	store := testStore(t)
	slow, err := New(store, "I625", 0.1, 25, 8, 0)
	require.NoError(t, err)
	fast, err := New(store, "I625", 0.1, 25, 8, 25)
	require.NoError(t, err)
	assert.Greater(t, slow.Reactions[refdata.ReactionORR].DiffusionLayerCmC, fast.Reactions[refdata.ReactionORR].DiffusionLayerCmC)
}

func TestPittingTransferCoefficientNearUnity(t *testing.T) {
	store := testStore(t)
	m, err := New(store, "SS316", 0.1, 25, 8, 0)
	require.NoError(t, err)
	assert.Greater(t, m.Reactions[refdata.ReactionPitting].TransferCoeff, 0.9)
}
