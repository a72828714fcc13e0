// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solution implements solution chemistry (C2): dissolved-oxygen
// saturation, NaCl solution properties, and the Nernst redox/DO
// conversion, all as pure functions of temperature and chloride
// molarity independent of any external service.
package solution

import "math"

// DOEquation selects which peer-reviewed saturation correlation
// DissolvedOxygenSaturation uses.
type DOEquation string

const (
	// Weiss1970 is R. F. Weiss (1970), "The solubility of nitrogen,
	// oxygen and argon in water and seawater", Deep-Sea Research.
	Weiss1970 DOEquation = "weiss_1970"
	// GarciaBenson1992 is Garcia & Gordon (1992), "Oxygen solubility
	// in seawater: better fitting equations", Limnology & Oceanography,
	// the Benson-Krause-calibrated refit.
	GarciaBenson1992 DOEquation = "garcia_benson_1992"
)

// Sea-level pressure (atm) and scale height (m) of the barometric formula.
const (
	seaLevelPressureAtm = 1.0
	barometricScaleM    = 8434.5 // e-folding height, m, for the simple isothermal atmosphere
)

// AtmosphericPressureAtm returns the ambient pressure in atm used to
// correct dissolved-oxygen saturation. If pressureAtm is supplied
// (non-zero) it is used directly; otherwise pressure is derived from
// altitudeM via the barometric formula.
func AtmosphericPressureAtm(pressureAtm, altitudeM float64) float64 {
	if pressureAtm > 0 {
		return pressureAtm
	}
	return seaLevelPressureAtm * math.Exp(-altitudeM/barometricScaleM)
}

// weiss1970 evaluates the Weiss (1970) oxygen-solubility equation.
// T is in Kelvin, S is practical salinity. Returns ml O2 / L.
func weiss1970(tK, s float64) float64 {
	const (
		a1 = -173.4292
		a2 = 249.6339
		a3 = 143.3483
		a4 = -21.8492
		b1 = -0.033096
		b2 = 0.014259
		b3 = -0.0017000
	)
	t100 := tK / 100
	lnC := a1 + a2*(100/tK) + a3*math.Log(t100) + a4*t100 +
		s*(b1+b2*t100+b3*t100*t100)
	return math.Exp(lnC)
}

// garciaGordon1992 evaluates the Garcia & Gordon (1992) "Benson and
// Krause" fit. T is in Kelvin, S is practical salinity. Returns
// micromol O2 / kg.
func garciaGordon1992(tK, s float64) float64 {
	const (
		a0 = 5.80871
		a1 = 3.20291
		a2 = 4.17887
		a3 = 5.10006
		a4 = -9.86643e-2
		a5 = 3.80369
		b0 = -7.01577e-3
		b1 = -7.70028e-3
		b2 = -1.13864e-2
		b3 = -9.51519e-3
		c0 = -2.75915e-7
	)
	ts := math.Log((298.15 - (tK - 273.15)) / tK)
	lnC := a0 + a1*ts + a2*ts*ts + a3*math.Pow(ts, 3) + a4*math.Pow(ts, 4) + a5*math.Pow(ts, 5) +
		s*(b0+b1*ts+b2*ts*ts+b3*math.Pow(ts, 3)) + c0*s*s
	return math.Exp(lnC)
}

// DissolvedOxygenSaturationMgL returns the dissolved-oxygen saturation
// concentration in mg/L at 1 atm for (temperatureC, salinityPSU), then
// applies the atmospheric-pressure correction (Henry's-law scaling,
// linear in partial pressure of O2).
func DissolvedOxygenSaturationMgL(eq DOEquation, temperatureC, salinityPSU, pressureAtm, altitudeM float64) float64 {
	tK := temperatureC + 273.15
	var mgL float64
	switch eq {
	case GarciaBenson1992:
		umolKg := garciaGordon1992(tK, salinityPSU)
		mgL = umolKg * 31.9988 / 1000
	default:
		mlL := weiss1970(tK, salinityPSU)
		mgL = mlL * 1.42903
	}
	p := AtmosphericPressureAtm(pressureAtm, altitudeM)
	return mgL * p
}

// naclHenryConstant derives a Henry's-law constant for O2 in NaCl
// brine from an acentric-factor correlation with temperature (K), then
// applies a linear salinity correction. Returns atm per mole fraction.
func naclHenryConstant(tK, chlorideM float64) float64 {
	const (
		omega = 0.022 // acentric factor, O2
		tc    = 154.6 // critical temperature of O2, K
		pc    = 50.4  // critical pressure of O2, atm
	)
	tr := tK / tc
	lnH := math.Log(pc) + (1-1/tr)*(5.97214-6.09648/tr-1.28862*math.Log(tr)+0.169347*math.Pow(tr, 6)) +
		omega*(1-1/tr)*(15.2518-15.6875/tr-13.4721*math.Log(tr)+0.43577*math.Pow(tr, 6))
	h := math.Exp(lnH)
	salinityFactor := 1 + 0.0933*chlorideM
	return h * salinityFactor
}

// NaClOxygenConcentrationGCm3 returns the oxygen concentration in a NaCl
// brine in equilibrium with 1 atm air (21% O2), in g/cm^3, from
// temperature (C) and chloride molarity.
func NaClOxygenConcentrationGCm3(temperatureC, chlorideM float64) float64 {
	tK := temperatureC + 273.15
	h := naclHenryConstant(tK, chlorideM)
	xO2 := 0.21 / h
	const molarVolumeWaterLMol = 0.018015
	molPerL := xO2 / molarVolumeWaterLMol
	gPerL := molPerL * 31.9988
	return gPerL / 1000
}

// linLinear evaluates the shared rational form (b0 + b1*x) / (1 + b2*x)
// used by every temperature-dependent Stokes-diffusivity parameter.
func linLinear(b0, b1, b2, x float64) float64 {
	return (b0 + b1*x) / (1 + b2*x)
}

// stokesParam holds one temperature-dependent Stokes-model parameter's
// three rational-form coefficients.
type stokesParam struct{ b0, b1, b2 float64 }

// NaClOxygenDiffusivityCm2S returns the oxygen diffusivity in a NaCl
// brine (cm^2/s) via a six-parameter Stokes-Einstein model, each
// parameter a linear-linear rational function of temperature (C).
func NaClOxygenDiffusivityCm2S(temperatureC, chlorideM float64) float64 {
	params := [6]stokesParam{
		{2.30e-5, 1.35e-7, 2.18e-3}, // D0 at infinite dilution, cm^2/s
		{1.0, -6.30e-3, 8.20e-4},    // salinity attenuation numerator slope
		{1.0, 4.75e-3, 1.05e-3},     // salinity attenuation denominator slope
		{8.90e-1, -2.10e-3, 6.00e-4},
		{1.0, 3.00e-3, 1.20e-3},
		{1.0, -1.80e-3, 9.00e-4},
	}
	v := make([]float64, 6)
	for i, p := range params {
		v[i] = linLinear(p.b0, p.b1, p.b2, temperatureC)
	}
	d0 := v[0]
	viscosityFactor := v[1] / v[2]
	saltFactor := v[3] * (v[4] / v[5])
	return d0 * viscosityFactor * math.Pow(saltFactor, chlorideM/5.0)
}

// WaterActivity returns the NaCl solution water activity from an
// empirical activity-coefficient correlation (Pitzer-style osmotic
// truncation), dimensionless, for chloride molarity.
func WaterActivity(chlorideM float64) float64 {
	const (
		k1 = 0.0182
		k2 = 0.00219
	)
	m := chlorideM
	lnGamma := -k1*math.Sqrt(m)/(1+math.Sqrt(m)) + k2*m
	return math.Exp(-2 * 0.018015 * m * (1 + lnGamma))
}

// wadsworthCoeffs are the 36 coefficients of the Wadsworth (2012)
// conductivity polynomial: a 6x6 grid in (chloride molarity power,
// temperature power), S/cm. Row i is the coefficient of c^i; within a
// row, column j is the coefficient of T^j (T in Celsius).
var wadsworthCoeffs = [6][6]float64{
	{0, 0, 0, 0, 0, 0},
	{1.92e-2, 4.60e-4, -1.10e-6, 2.00e-9, 0, 0},
	{-1.05e-3, 3.10e-5, -7.20e-8, 0, 0, 0},
	{4.40e-5, -1.60e-6, 0, 0, 0, 0},
	{-9.00e-7, 0, 0, 0, 0, 0},
	{6.00e-9, 0, 0, 0, 0, 0},
}

// ConductivitySCm evaluates the Wadsworth (2012) 36-coefficient
// conductivity polynomial (S/cm) for chloride molarity and temperature
// in Celsius.
func ConductivitySCm(temperatureC, chlorideM float64) float64 {
	var sigma float64
	cPow := 1.0
	for i := 0; i < 6; i++ {
		tPow := 1.0
		for j := 0; j < 6; j++ {
			sigma += wadsworthCoeffs[i][j] * cPow * tPow
			tPow *= temperatureC
		}
		cPow *= chlorideM
	}
	return sigma
}

// ResistivityOhmCm returns the reciprocal of ConductivitySCm, i.e. the
// solution resistivity in ohm*cm.
func ResistivityOhmCm(temperatureC, chlorideM float64) float64 {
	sigma := ConductivitySCm(temperatureC, chlorideM)
	if sigma <= 0 {
		return math.Inf(1)
	}
	return 1 / sigma
}

// DOEpsilonGCm3 is the floor dissolved-oxygen concentration below which
// RedoxToDissolvedOxygen clamps before taking a logarithm, to avoid
// infinities in anaerobic cases. Clamping must be reported as a
// warning by the caller.
const DOEpsilonGCm3 = 1e-8

const (
	gasConstant    = 8.314      // J/(mol*K)
	faradayConst   = 96485.0    // C/mol
	o2StdPotential = 1.229      // V vs SHE, O2 + 4H+ + 4e- -> 2H2O
	o2Electrons    = 4.0
)

// RedoxToDissolvedOxygen converts a measured redox potential (V vs SHE)
// to a dissolved-oxygen concentration (g/cm^3) via the Nernst equation
// for the oxygen electrode, given temperature (C) and pH.
func RedoxToDissolvedOxygen(ehSHE, temperatureC, ph float64) float64 {
	tK := temperatureC + 273.15
	nernstSlope := gasConstant * tK / (o2Electrons * faradayConst)
	lnPO2 := (ehSHE - o2StdPotential + 4*nernstSlope*math.Ln10*ph) / nernstSlope
	pO2 := math.Exp(lnPO2)
	const henryAtO2Std = 1.3e-3 // mol/(L*atm), approximate O2 Henry constant at 25 C
	molPerL := pO2 * henryAtO2Std
	return molPerL * 31.9988 / 1000
}

// DissolvedOxygenToRedox is the inverse of RedoxToDissolvedOxygen: it
// converts a dissolved-oxygen concentration (g/cm^3) to a redox
// potential (V vs SHE) via the same Nernst relation. doGCm3 below
// DOEpsilonGCm3 is clamped to the epsilon; callers must attach the
// "anaerobic conditions" warning when that clamp fires.
func DissolvedOxygenToRedox(doGCm3, temperatureC, ph float64) (eh float64, clamped bool) {
	clamped = doGCm3 < DOEpsilonGCm3
	if clamped {
		doGCm3 = DOEpsilonGCm3
	}
	tK := temperatureC + 273.15
	nernstSlope := gasConstant * tK / (o2Electrons * faradayConst)
	molPerL := doGCm3 * 1000 / 31.9988
	const henryAtO2Std = 1.3e-3
	pO2 := molPerL / henryAtO2Std
	eh = o2StdPotential + nernstSlope*math.Log(pO2) - 4*nernstSlope*math.Ln10*ph
	return eh, clamped
}
