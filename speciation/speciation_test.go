// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speciation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	mu       *sync.Mutex
	released bool
}

func (f *fakeEngine) RunSpeciation(elements map[string]float64, temperatureC float64, ph, pe *float64) (EngineResult, error) {
	return EngineResult{
		PH:            7.8,
		PE:            4.0,
		IonicStrength: 0.01,
		AlkalinityMgL: 200,
		Species:       map[string]float64{"Ca+2": elements["Ca"]},
		SaturationIdx: map[string]float64{"Calcite": 0.1},
	}, nil
}

func (f *fakeEngine) Release() { f.released = true }

func newFakeEngine() Engine { return &fakeEngine{mu: &sync.Mutex{}} }

func TestLookupIonResolvesAliases(t *testing.T) {
	ion, ok := LookupIon("calcium")
	require.True(t, ok)
	assert.Equal(t, 2, ion.Charge)
}

func TestLookupIonUnknown(t *testing.T) {
	_, ok := LookupIon("unobtainium")
	assert.False(t, ok)
}

func TestRunSpeciationBalancedInput(t *testing.T) {
	a := NewAdapter(newFakeEngine, 2)
	result := a.RunSpeciation(Request{
		IonsMgL: map[string]float64{
			"Ca": 120, "HCO3": 366, // ~5.99 meq/L each side
		},
		TemperatureC: 25,
	})
	require.NoError(t, result.Err)
	assert.False(t, result.Meta.HasWarning("charge_imbalance"))
	assert.Equal(t, 7.8, result.Value.PH)
}

func TestRunSpeciationUnknownIonIsFatal(t *testing.T) {
	a := NewAdapter(newFakeEngine, 2)
	result := a.RunSpeciation(Request{
		IonsMgL:      map[string]float64{"unobtainium": 10},
		TemperatureC: 25,
	})
	assert.True(t, result.IsNoData())
	assert.Error(t, result.Err)
}

func TestRunSpeciationImbalanceWarns(t *testing.T) {
	a := NewAdapter(newFakeEngine, 2)
	result := a.RunSpeciation(Request{
		IonsMgL: map[string]float64{
			"Na": 1000, // large cation excess, no matching anion
		},
		TemperatureC: 25,
	})
	require.NoError(t, result.Err)
	assert.True(t, result.Meta.HasWarning("charge_imbalance"))
}

func TestAdapterReusesPooledEngines(t *testing.T) {
	a := NewAdapter(newFakeEngine, 1)
	for i := 0; i < 5; i++ {
		result := a.RunSpeciation(Request{
			IonsMgL:      map[string]float64{"Ca": 100},
			TemperatureC: 25,
		})
		require.NoError(t, result.Err)
	}
}
