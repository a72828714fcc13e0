// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package localized implements the localized-corrosion assessor (C7):
// a dual-tier pitting/crevice evaluator. Tier 1 always runs (PREN,
// tabulated or correlated CPT/CCT, chloride threshold, susceptibility
// classification). Tier 2 runs only when a dissolved-oxygen value is
// supplied and the material is in the NRL electrochemical subset.
package localized

import (
	"math"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

// DuplexPRENMultiplier replaces the base 16x nitrogen multiplier for
// duplex and super-duplex grades, per §4.7. A reader of §8's worked
// example (Cr=22, Mo=3, N=0.17 -> PREN in [34,36]) will notice that
// example only lands in-range under the base 16x multiplier (34.62),
// not under this 30x duplex rule (37.02): spec.md's own worked example
// and its duplex-multiplier rule are in tension. This package
// implements the rule as literally stated (30x for duplex/super-duplex)
// rather than silently reverting to 16x; see DESIGN.md.
const DuplexPRENMultiplier = 30.0
const basePRENMultiplier = 16.0

// PREN computes the pitting-resistance equivalent number for a
// composition, using the duplex-adjusted nitrogen multiplier for
// duplex and super-duplex grades.
func PREN(comp refdata.MaterialComposition) float64 {
	multiplier := basePRENMultiplier
	if comp.Grade == refdata.GradeDuplex || comp.Grade == refdata.GradeSuperDuplex {
		multiplier = DuplexPRENMultiplier
	}
	return comp.CrWtPct + 3.3*comp.MoWtPct + multiplier*comp.NWtPct
}

// prenSlope holds the grade-specific linear CPT/CCT correlation slope
// and intercept used when a tabulated value is absent (°C per PREN
// unit).
type prenSlope struct{ slope, intercept float64 }

var cptSlopeByGrade = map[refdata.GradeFamily]prenSlope{
	refdata.GradeAustenitic:      {slope: 2.5, intercept: -40},
	refdata.GradeDuplex:          {slope: 2.2, intercept: -35},
	refdata.GradeSuperDuplex:     {slope: 2.0, intercept: -25},
	refdata.GradeSuperAustenitic: {slope: 2.3, intercept: -30},
}

var cctSlopeByGrade = map[refdata.GradeFamily]prenSlope{
	refdata.GradeAustenitic:      {slope: 2.0, intercept: -50},
	refdata.GradeDuplex:          {slope: 1.8, intercept: -45},
	refdata.GradeSuperDuplex:     {slope: 1.7, intercept: -35},
	refdata.GradeSuperAustenitic: {slope: 1.9, intercept: -40},
}

// Susceptibility is the Tier-1 risk classification.
type Susceptibility string

const (
	SusceptibilityLow      Susceptibility = "low"
	SusceptibilityModerate Susceptibility = "moderate"
	SusceptibilityHigh     Susceptibility = "high"
	SusceptibilityCritical Susceptibility = "critical"
)

// Tier1Result is always populated.
type Tier1Result struct {
	PREN               float64
	CPTCelsius         float64
	CCTCelsius         float64
	CPTFromCorrelation bool
	ChlorideThresholdMgL float64
	Susceptibility     Susceptibility
}

// tierRank maps a Tier-1 or Tier-2 classification onto the shared
// {0,1,2,3} rank scale used for disagreement detection.
func tierRank(s Susceptibility) int {
	switch s {
	case SusceptibilityLow:
		return 0
	case SusceptibilityModerate:
		return 1
	case SusceptibilityHigh:
		return 2
	case SusceptibilityCritical:
		return 3
	}
	return 0
}

// nrlSubset is the set of materials for which Tier 2 is electrochemically
// modeled (§4.7).
var nrlSubset = map[string]bool{
	"HY80":  true,
	"HY100": true,
	"SS316": true,
}

// AssessTier1 computes the always-on Tier-1 assessment for a material
// at the given operating conditions.
func AssessTier1(store *refdata.Store, materialID string, temperatureC, chlorideMgL, ph float64, meta *provenance.Metadata) (Tier1Result, error) {
	normalized := refdata.NormalizeMaterialID(materialID)
	materials, err := store.LoadMaterials()
	if err != nil {
		return Tier1Result{}, err
	}
	comp, ok := materials[normalized]
	if !ok {
		return Tier1Result{}, provenance.UnknownMaterial{ID: materialID}
	}
	pren := PREN(comp)

	var cpt, cct float64
	fromCorrelation := false
	if cptTable, err := store.LoadCPTData(); err == nil {
		if rec, ok := cptTable[normalized]; ok {
			cpt, cct = rec.CPTCelsius, rec.CCTCelsius
		}
	}
	if cpt == 0 {
		if s, ok := cptSlopeByGrade[comp.Grade]; ok {
			cpt = s.slope*pren + s.intercept
		}
		fromCorrelation = true
		meta.AddWarning(provenance.WarnTier1Fallback, "CPT not tabulated for %s; using PREN correlation", materialID)
	}
	if cct == 0 {
		if s, ok := cctSlopeByGrade[comp.Grade]; ok {
			cct = s.slope*pren + s.intercept
		}
	}

	threshold, err := store.GetChlorideThreshold(materialID, temperatureC, ph)
	if err != nil {
		return Tier1Result{}, err
	}

	marginToCPT := cpt - temperatureC
	chlorideRatio := chlorideMgL / threshold

	susceptibility := classifySusceptibility(marginToCPT, chlorideRatio)

	return Tier1Result{
		PREN:                 pren,
		CPTCelsius:           cpt,
		CCTCelsius:           cct,
		CPTFromCorrelation:   fromCorrelation,
		ChlorideThresholdMgL: threshold,
		Susceptibility:       susceptibility,
	}, nil
}

// classifySusceptibility combines margin-to-CPT (°C, temperature below
// CPT is favorable) and chloride-ratio (actual/threshold) into a
// single four-level classification.
func classifySusceptibility(marginToCPT, chlorideRatio float64) Susceptibility {
	switch {
	case marginToCPT < 0 || chlorideRatio >= 2.0:
		return SusceptibilityCritical
	case marginToCPT < 10 || chlorideRatio >= 1.0:
		return SusceptibilityHigh
	case marginToCPT < 25 || chlorideRatio >= 0.5:
		return SusceptibilityModerate
	default:
		return SusceptibilityLow
	}
}

// Tier2Result is populated only when DO is supplied and the material
// is in the NRL subset.
type Tier2Result struct {
	PittingInitiationPotentialSCE float64
	MixedPotentialSCE             float64
	DeltaE                        float64
	Risk                          Susceptibility
}

const defaultPittingThresholdACm2 = 1e-6

// gasConstant/faradayConst mirror reaction's kernel constants, which
// reaction does not export.
const (
	gasConstant  = 8.314
	faradayConst = 96485.0
)

// AssessTier2 computes the electrochemical pitting-initiation tier for
// an NRL-subset material, given the anodic pitting branch's exchange
// current and equilibrium potential plus a computed mixed potential
// (from solution.DissolvedOxygenToRedox-derived Eh, adjusted to SCE by
// the caller). Returns a typed "unavailable" explanation via
// Tier2Unavailable when gating fails.
func AssessTier2(materialID string, doSupplied bool, i0AnodicPittingACm2, betaPitting float64, electrons int, eNernstPittingSHE, eMixedSCE, temperatureC float64, meta *provenance.Metadata) (*Tier2Result, string) {
	normalized := refdata.NormalizeMaterialID(materialID)
	if !doSupplied {
		meta.AddWarning(provenance.WarnTier2Unavailable, "Tier 2 unavailable: no dissolved-oxygen value supplied")
		return nil, "Tier 2 unavailable: dissolved oxygen not supplied"
	}
	if !nrlSubset[normalized] {
		meta.AddWarning(provenance.WarnTier2Unavailable, "Tier 2 unavailable: %s is not in the NRL electrochemical subset", materialID)
		return nil, "Tier 2 unavailable: material not in NRL electrochemical subset {HY80, HY100, SS316}"
	}

	tempK := temperatureC + 273.15
	ePitSHE := eNernstPittingSHE + (gasConstant*tempK)/(betaPitting*float64(electrons)*faradayConst)*
		math.Log(defaultPittingThresholdACm2/i0AnodicPittingACm2)
	ePitSCE := ePitSHE - refdata.SHEOffsetASTM

	deltaE := eMixedSCE - ePitSCE
	risk := classifyTier2(deltaE)

	return &Tier2Result{
		PittingInitiationPotentialSCE: ePitSCE,
		MixedPotentialSCE:             eMixedSCE,
		DeltaE:                        deltaE,
		Risk:                          risk,
	}, ""
}

func classifyTier2(deltaE float64) Susceptibility {
	switch {
	case deltaE > 0.05:
		return SusceptibilityCritical
	case deltaE > 0:
		return SusceptibilityHigh
	case deltaE > -0.1:
		return SusceptibilityModerate
	default:
		return SusceptibilityLow
	}
}

// TierDisagreement is emitted when Tier 1 and Tier 2 classifications
// differ by >=2 ranks.
type TierDisagreement struct {
	Detected       bool
	Tier1Rank      int
	Tier2Rank      int
	Recommendation string
}

// DetectTierDisagreement compares Tier-1 and Tier-2 classifications.
func DetectTierDisagreement(tier1 Susceptibility, tier2 *Tier2Result) TierDisagreement {
	if tier2 == nil {
		return TierDisagreement{}
	}
	r1, r2 := tierRank(tier1), tierRank(tier2.Risk)
	diff := r1 - r2
	if diff < 0 {
		diff = -diff
	}
	if diff < 2 {
		return TierDisagreement{Tier1Rank: r1, Tier2Rank: r2}
	}
	return TierDisagreement{
		Detected:  true,
		Tier1Rank: r1,
		Tier2Rank: r2,
		Recommendation: "Tier 2 (electrochemical) is the mechanistic ground truth; " +
			"Tier 1 (tabulated/PREN) is a conservative screening tool only",
	}
}

// Crevice models the simplified Oldfield-Sutton crevice-corrosion
// transport (§4.7).
type Crevice struct {
	IRDropV          float64
	PHInCrevice      float64
	AcidificationFactor float64
}

// referenceResistivitySeawaterOhmM is the documented reference solution
// resistivity at seawater chlorinity (19000 mg/L), ohm*m.
const referenceResistivitySeawaterOhmM = 0.2
const referenceChlorideMgL = 19000.0

// AssessCrevice computes IR drop, in-crevice pH, and an acidification
// factor for a crevice of the given gap (m), current density (A/m^2),
// bulk pH, and chloride concentration (mg/L). Crevice length is fixed
// at 10x the gap.
func AssessCrevice(currentAM2, gapM, bulkPH, chlorideMgL float64) Crevice {
	resistivityOhmM := referenceResistivitySeawaterOhmM * (chlorideMgL / referenceChlorideMgL)
	lengthM := 10 * gapM
	irDrop := currentAM2 * resistivityOhmM * lengthM

	deltaPHCap := 2 + 20*irDrop
	phDrop := math.Min(bulkPH-2, deltaPHCap)
	phInCrevice := bulkPH - phDrop
	acidification := math.Pow(10, phDrop)

	return Crevice{
		IRDropV:             irDrop,
		PHInCrevice:         phInCrevice,
		AcidificationFactor: acidification,
	}
}
