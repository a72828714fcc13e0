// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norsok defines the call boundary for the vendored CO2
// pipeline corrosion model (NORSOK M-506 style empirical correlation).
// Per spec.md §1, the core treats this model as an external black box
// with a fixed numeric signature; this package provides that boundary
// and a documented placeholder implementation, not a faithful
// reimplementation of the vendored internals.
package norsok

import "math"

// fugacityCoefficient approximates the CO2 fugacity coefficient at
// moderate pipeline pressures, per the de Waard-Milliams family of
// correlations NORSOK M-506 descends from.
func fugacityCoefficient(pressureBar float64) float64 {
	return math.Pow(10, 0.0031*pressureBar)
}

// wallShearPa approximates pipe-wall shear stress from superficial gas
// and liquid velocities and pipe diameter, used to scale the mass-
// transfer-limited branch of the correlation.
func wallShearPa(vSG, vSL, diameterM float64) float64 {
	mixtureVelocity := vSG + vSL
	const fluidDensityKgM3 = 1000.0
	frictionFactor := 0.316 / math.Pow(mixtureVelocity*diameterM/1e-6, 0.25)
	return frictionFactor / 8 * fluidDensityKgM3 * mixtureVelocity * mixtureVelocity
}

// Predict is the vendored CO2 corrosion-rate black box's call
// boundary: temperature (C), total pressure (bar), CO2 mole fraction,
// bulk pH, superficial gas/liquid velocities (m/s), pipe internal
// diameter (m). Returns the predicted wall-loss rate (mm/year), a
// mechanism label, and an error only for out-of-envelope inputs.
func Predict(tempC, pressureBar, yCO2, ph, vSG, vSL, diameterM float64) (rateMMPerYear float64, mechanism string, err error) {
	if pressureBar <= 0 || yCO2 <= 0 || diameterM <= 0 {
		return 0, "", errOutOfEnvelope
	}
	pCO2 := pressureBar * yCO2 * fugacityCoefficient(pressureBar)
	tK := tempC + 273.15

	// Activation-controlled branch: log-linear in temperature and
	// log(pCO2), de Waard-Milliams form.
	logRCorr := 5.8 - 1710/tK + 0.67*math.Log10(pCO2)
	rCorr := math.Pow(10, logRCorr)

	// pH correction: corrosion rate decreases as pH rises above the
	// natural CO2-saturated equilibrium.
	phFactor := math.Pow(10, -0.3*(ph-4.0))
	if phFactor > 1 {
		phFactor = 1
	}

	// Mass-transfer-limited branch, scaled by wall shear.
	shear := wallShearPa(vSG, vSL, diameterM)
	rMassTransfer := 0.0075 * math.Sqrt(shear) * pCO2

	rate := 1 / (1/(rCorr*phFactor) + 1/rMassTransfer)
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, "", errOutOfEnvelope
	}
	return rate, "CO₂ (carbonic-acid) corrosion, NORSOK M-506 style empirical correlation", nil
}

type envelopeErr struct{}

func (envelopeErr) Error() string { return "norsok: inputs outside the supported pressure/CO2/diameter envelope" }

var errOutOfEnvelope = envelopeErr{}
