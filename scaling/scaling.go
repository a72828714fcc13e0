// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling implements the Langelier/scaling assessor (C8): a
// thin contract over the equilibrium-speciation adapter reporting LSI,
// RSI, Puckorius, and Larson ratios with standard recommendations. It
// shares the aqueous-equilibrium contracts exercised by C3, which is
// why it lives alongside the corrosion core rather than as a separate
// module.
package scaling

import (
	"math"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/speciation"
)

// Indices is the Langelier/Ryznar family of saturation indices.
type Indices struct {
	PH          float64
	PHs         float64
	LSI         float64
	RSI         float64
	Puckorius   float64
	LarsonRatio float64
	Interpretation string
}

// requiredIons are the species the Langelier family needs present in
// the input; their absence is fatal (MissingSpecies), per §4.8.
var requiredIons = []string{"CA", "HCO3"}

// Assess computes the Langelier/Ryznar/Puckorius/Larson indices from a
// speciation response. saturationIndexKey names the calcite
// saturation-index entry in resp.SaturationIndex (the equilibrium
// engine's own calcite SI, used to derive pHs per §4.8: LSI = SI_calcite
// expressed as pH, i.e. pHs = pH - SI_calcite).
func Assess(resp speciation.Response, saturationIndexKey string, clMeqL, so4MeqL, hco3MeqL float64, ions map[string]float64) provenance.Result[Indices] {
	meta := provenance.NewMetadata("scaling.Assess", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)

	for _, ion := range requiredIons {
		if _, ok := ions[ion]; !ok {
			return provenance.None[Indices]("scaling.Assess", provenance.MissingSpecies{Ion: ion})
		}
	}

	siCalcite, ok := resp.SaturationIndex[saturationIndexKey]
	if !ok {
		return provenance.None[Indices]("scaling.Assess", provenance.MissingSpecies{Ion: saturationIndexKey})
	}

	phs := resp.PH - siCalcite
	lsi := resp.PH - phs
	rsi := 2*phs - resp.PH
	puckorius := 2*phs - equilibriumPH(resp.AlkalinityMgL, resp.PH)

	var larson float64
	if hco3MeqL > 0 {
		larson = (clMeqL + so4MeqL) / hco3MeqL
	}

	interp := interpretLSI(lsi)

	return provenance.Ok(Indices{
		PH:             resp.PH,
		PHs:            phs,
		LSI:            lsi,
		RSI:            rsi,
		Puckorius:       puckorius,
		LarsonRatio:     larson,
		Interpretation: interp,
	}, meta)
}

// equilibriumPH approximates the equilibrium pH the Puckorius index
// substitutes for measured pH, from total alkalinity.
func equilibriumPH(alkalinityMgL, measuredPH float64) float64 {
	if alkalinityMgL <= 0 {
		return measuredPH
	}
	return 4.54 + math.Log10(alkalinityMgL)
}

func interpretLSI(lsi float64) string {
	switch {
	case lsi > 0.5:
		return "scaling tendency: positive LSI indicates calcium-carbonate scaling risk"
	case lsi < -0.5:
		return "corrosive: negative LSI indicates the water is under-saturated and aggressive"
	default:
		return "near equilibrium: LSI close to zero indicates balanced water"
	}
}

// LarsonThreshold is the standard threshold above which the Larson
// ratio indicates high corrosivity to copper/steel piping (§4.8).
const LarsonThreshold = 1.0

// LarsonInterpretation classifies a Larson ratio against the
// documented threshold.
func LarsonInterpretation(ratio float64) string {
	if ratio > LarsonThreshold {
		return "high corrosivity to copper/steel indicated (Larson ratio > 1.0)"
	}
	return "Larson ratio within the non-aggressive range"
}
