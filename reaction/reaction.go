// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reaction implements reaction kinetics (C5): per-potential
// current densities on a fixed grid, combining a shared Butler-Volmer
// kernel with a Koutecky-Levich diffusion cap for cathodic branches and
// a Newton-Raphson passive-film resistance correction for anodic
// passivation.
package reaction

import (
	"math"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/kinetics"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

const (
	gasConstant  = 8.314   // J/(mol*K)
	faradayConst = 96485.0 // C/mol
	boltzmann    = 1.380649e-23
	planck       = 6.62607015e-34

	// sheOffsetForKinetics is the SCE->SHE conversion used inside the
	// reaction kernel (§4.5 uses the ASTM G3 value for this boundary).
	sheOffsetForKinetics = refdata.SHEOffsetASTM

	// scanRateVPerS is the assumed linear potential-scan rate used to
	// derive simulated elapsed time from applied potential (§4.5).
	scanRateVPerS = 0.167e-3
)

// EquilibriumPotentials carries the Nernst equilibrium potential (V vs
// SHE) for each reaction a polarization curve needs. Callers compute
// these from solution chemistry/material composition; reaction itself
// does not know how to derive them.
type EquilibriumPotentials map[refdata.ReactionType]float64

// exchangeCurrentDensity evaluates i0 = z*F*lambda0*exp(-dG/(R*T)),
// lambda0 = kB*T/h, A/cm^2.
func exchangeCurrentDensity(electrons int, deltaG, tempK float64) float64 {
	lambda0 := boltzmann * tempK / planck
	return float64(electrons) * faradayConst * lambda0 * math.Exp(-deltaG/(gasConstant*tempK))
}

// butlerVolmer returns (anodicBranch, cathodicBranch) current densities
// for one reaction at one applied potential, both always positive
// magnitudes (signed combination is the caller's job).
func butlerVolmer(eApplied, eNernst float64, i0Cathodic, i0Anodic, beta float64, electrons int, tempK float64) (anodic, cathodic float64) {
	eta := eApplied - eNernst
	zF_RT := float64(electrons) * faradayConst / (gasConstant * tempK)
	anodic = i0Anodic * math.Exp(beta*zF_RT*eta)
	cathodic = i0Cathodic * math.Exp(-(1-beta)*zF_RT*eta)
	return anodic, cathodic
}

// diffusionLimitedCap computes i_lim = z*F*D*C_ox/(delta*M) in A/cm^2,
// given C_ox in g/cm^3, D in cm^2/s, delta in cm, M in g/mol.
func diffusionLimitedCap(electrons int, diffusivityCm2S, concentrationGCm3, deltaCm, molarMassGMol float64) float64 {
	if deltaCm <= 0 || molarMassGMol <= 0 {
		return math.Inf(1)
	}
	return float64(electrons) * faradayConst * diffusivityCm2S * concentrationGCm3 / (deltaCm * molarMassGMol)
}

// kouteckyLevich combines an activation-controlled current with a
// diffusion-limited cap: i_total = i_lim*i_act/(i_act+i_lim).
func kouteckyLevich(iAct, iLim float64) float64 {
	if math.IsInf(iLim, 1) {
		return iAct
	}
	if iAct+iLim == 0 {
		return 0
	}
	return iLim * iAct / (iAct + iLim)
}

// PassiveFilmNewtonMaxIter and PassiveFilmNewtonTol bound the
// Newton-Raphson passive-film resistance correction (§4.5).
const (
	PassiveFilmNewtonMaxIter = 50
	PassiveFilmNewtonTol     = 1e-6
)

// passiveFilmCorrectedCurrent solves i = i0*exp(beta*zF*(eta -
// i*Rfilm)/(R*T)) for i by Newton-Raphson, starting from the
// uncorrected Butler-Volmer current. Returns the converged current and
// whether it converged within PassiveFilmNewtonMaxIter iterations at
// PassiveFilmNewtonTol relative tolerance. On non-convergence it
// applies a relaxation fallback itself: it returns half of the last
// iterate with converged=false.
func passiveFilmCorrectedCurrent(eta, i0, beta float64, electrons int, tempK, rFilm float64) (current float64, converged bool) {
	zF_RT := float64(electrons) * faradayConst / (gasConstant * tempK)
	i := i0 * math.Exp(beta*zF_RT*eta) // initial guess: uncorrected
	for iter := 0; iter < PassiveFilmNewtonMaxIter; iter++ {
		f := i - i0*math.Exp(beta*zF_RT*(eta-i*rFilm))
		df := 1 + i0*beta*zF_RT*rFilm*math.Exp(beta*zF_RT*(eta-i*rFilm))
		if df == 0 {
			break
		}
		delta := f / df
		iNext := i - delta
		if iNext == 0 {
			iNext = i / 2 // relaxation step to avoid a zero/negative runaway
		}
		relChange := math.Abs(iNext-i) / math.Max(math.Abs(i), 1e-300)
		i = iNext
		if relChange < PassiveFilmNewtonTol {
			return i, true
		}
	}
	return i * 0.5, false // relaxation fallback per §7
}

// filmThicknessCm grows linearly with simulated scan time: eta swept at
// scanRateVPerS from the grid's low bound gives elapsed time =
// (eApplied - eLow) / scanRateVPerS.
func filmThicknessCm(baselineCm, growthRateCmPerS, elapsedS float64) float64 {
	return baselineCm + growthRateCmPerS*elapsedS
}

// PolarizationCurve is a grid of applied potentials (V vs SCE) with
// three per-point current arrays: net anodic, net cathodic, net total
// (A/cm^2). Immutable after construction.
type PolarizationCurve struct {
	PotentialsSCE []float64
	AnodicACm2    []float64
	CathodicACm2  []float64
	TotalACm2     []float64
}

// BuildOptions configures PolarizationCurve construction for one
// material.
type BuildOptions struct {
	GridLowSCE, GridHighSCE float64
	NPoints                 int
	Equilibrium             EquilibriumPotentials
	// DissolvedOxygenGCm3, DiffusivityCm2S feed the ORR diffusion cap.
	DissolvedOxygenGCm3 float64
	DiffusivityCm2S     float64
	// GrowthRateCmPerS is the passive-film growth rate for the
	// material's oxide (cm/s); zero disables the film correction.
	GrowthRateCmPerS float64
}

// DefaultGrid matches §3's documented default: 500 points over
// [-1.5, +0.5] V vs SCE.
func DefaultGrid() (low, high float64, n int) {
	return -1.5, 0.5, 500
}

// Build constructs the polarization curve for a Material: for each grid
// potential, sums the signed contribution of every reaction the
// material owns (cathodic reactions negative, anodic positive, by
// convention of this package).
func Build(m *kinetics.Material, opts BuildOptions) PolarizationCurve {
	n := opts.NPoints
	if n <= 0 {
		n = 500
	}
	curve := PolarizationCurve{
		PotentialsSCE: make([]float64, n),
		AnodicACm2:    make([]float64, n),
		CathodicACm2:  make([]float64, n),
		TotalACm2:     make([]float64, n),
	}
	tempK := m.TemperatureC + 273.15
	step := (opts.GridHighSCE - opts.GridLowSCE) / float64(n-1)

	for i := 0; i < n; i++ {
		eSCE := opts.GridLowSCE + step*float64(i)
		eSHE := eSCE + sheOffsetForKinetics
		var anodicTotal, cathodicTotal float64

		for reactionType, params := range m.Reactions {
			eNernst := opts.Equilibrium[reactionType]
			i0Cathodic := exchangeCurrentDensity(m.NElectrons, params.DeltaG.Cathodic, tempK)
			i0Anodic := exchangeCurrentDensity(m.NElectrons, params.DeltaG.Anodic, tempK)
			anodicBranch, cathodicBranch := butlerVolmer(eSHE, eNernst, i0Cathodic, i0Anodic, params.TransferCoeff, m.NElectrons, tempK)

			switch reactionType {
			case refdata.ReactionORR, refdata.ReactionHER:
				iLim := diffusionLimitedCap(m.NElectrons, opts.DiffusivityCm2S, opts.DissolvedOxygenGCm3, params.DiffusionLayerCmC, m.MolarMassGMol)
				cathodicTotal += kouteckyLevich(cathodicBranch, iLim)
			case refdata.ReactionPassivation:
				if opts.GrowthRateCmPerS > 0 && m.OxideFilm.ResistivityOhmCm > 0 {
					elapsedS := (eSCE - opts.GridLowSCE) / scanRateVPerS
					thickness := filmThicknessCm(m.OxideFilm.BaselineThicknessCm, opts.GrowthRateCmPerS, elapsedS)
					rFilm := m.OxideFilm.ResistivityOhmCm * thickness
					eta := eSHE - eNernst
					corrected, _ := passiveFilmCorrectedCurrent(eta, i0Anodic, params.TransferCoeff, m.NElectrons, tempK, rFilm)
					anodicTotal += corrected
				} else {
					anodicTotal += anodicBranch
				}
			default: // metal oxidation, pitting: plain Butler-Volmer anodic branch
				anodicTotal += anodicBranch
			}
		}

		curve.PotentialsSCE[i] = eSCE
		curve.AnodicACm2[i] = anodicTotal
		curve.CathodicACm2[i] = cathodicTotal
		curve.TotalACm2[i] = anodicTotal - cathodicTotal
	}
	return curve
}
