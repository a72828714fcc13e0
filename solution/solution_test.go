// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDissolvedOxygenSaturationPositiveBothEquations(t *testing.T) {
	for _, eq := range []DOEquation{Weiss1970, GarciaBenson1992} {
		v := DissolvedOxygenSaturationMgL(eq, 25, 35, 0, 0)
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 20.0)
	}
}

func TestDissolvedOxygenSaturationDecreasesWithAltitude(t *testing.T) {
	sea := DissolvedOxygenSaturationMgL(GarciaBenson1992, 25, 0, 0, 0)
	mountain := DissolvedOxygenSaturationMgL(GarciaBenson1992, 25, 0, 0, 3000)
	assert.Less(t, mountain, sea)
}

func TestNaClOxygenConcentrationDecreasesWithChloride(t *testing.T) {
	fresh := NaClOxygenConcentrationGCm3(25, 0)
	brine := NaClOxygenConcentrationGCm3(25, 3.0)
	assert.Greater(t, fresh, brine)
}

func TestNaClOxygenDiffusivityPositive(t *testing.T) {
	d := NaClOxygenDiffusivityCm2S(25, 0.5)
	assert.Greater(t, d, 0.0)
}

func TestWaterActivityBoundedByUnity(t *testing.T) {
	a := WaterActivity(0.5)
	assert.Greater(t, a, 0.0)
	assert.LessOrEqual(t, a, 1.0)
}

func TestResistivityIsReciprocalOfConductivity(t *testing.T) {
	sigma := ConductivitySCm(25, 0.5)
	rho := ResistivityOhmCm(25, 0.5)
	assert.InDelta(t, 1.0, sigma*rho, 1e-9)
}

func TestRedoxDORoundTrip(t *testing.T) {
	const temperatureC, ph = 25.0, 8.0
	do := 8.0e-6 // g/cm^3, well above the epsilon floor
	eh, clamped := DissolvedOxygenToRedox(do, temperatureC, ph)
	assert.False(t, clamped)
	back := RedoxToDissolvedOxygen(eh, temperatureC, ph)
	assert.InDelta(t, do, back, do*1e-6)
}

func TestDissolvedOxygenToRedoxClampsAtEpsilon(t *testing.T) {
	_, clamped := DissolvedOxygenToRedox(1e-10, 25, 8)
	assert.True(t, clamped)
}
