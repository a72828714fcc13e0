// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refdata implements the reference-data store (C1): loading of
// tabulated thermodynamic, kinetic, and compositional data from
// versioned tabular files and an XML galvanic series, with deterministic
// lookup, normalized material identifiers, and per-row provenance.
package refdata

import (
	"fmt"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
)

// GradeFamily classifies an alloy for PREN-slope and chloride-decay
// purposes.
type GradeFamily string

const (
	GradeAustenitic      GradeFamily = "austenitic"
	GradeDuplex          GradeFamily = "duplex"
	GradeSuperDuplex     GradeFamily = "super_duplex"
	GradeSuperAustenitic GradeFamily = "super_austenitic"
	GradeCarbonSteel     GradeFamily = "carbon_steel"
	GradeNickelAlloy     GradeFamily = "nickel_alloy"
	GradeTitanium        GradeFamily = "titanium"
	GradeAluminum        GradeFamily = "aluminum"
	GradeCopper          GradeFamily = "copper"
	GradeCopperAlloy     GradeFamily = "copper_alloy"
	GradeZinc            GradeFamily = "zinc"
)

// MaterialComposition is one row of the materials-compositions table.
type MaterialComposition struct {
	UNS         string
	CommonName  string
	CrWtPct     float64
	NiWtPct     float64
	MoWtPct     float64
	NWtPct      float64
	DensityKgM3 float64
	Grade       GradeFamily
	NElectrons  int
	FeBalance   bool
	Source      provenance.Source
}

// Validate enforces the invariants of §3: Σ(major wt-%) ≤ 100,
// density > 0, electrons ∈ {1,2,3,4}.
func (m MaterialComposition) Validate() error {
	major := m.CrWtPct + m.NiWtPct + m.MoWtPct + m.NWtPct
	if major > 100.0001 {
		return fmt.Errorf("material %s: sum of major wt-%% (%.4g) exceeds 100", m.UNS, major)
	}
	if m.DensityKgM3 <= 0 {
		return fmt.Errorf("material %s: density must be > 0, got %.6g", m.UNS, m.DensityKgM3)
	}
	switch m.NElectrons {
	case 1, 2, 3, 4:
	default:
		return fmt.Errorf("material %s: n_electrons must be in {1,2,3,4}, got %d", m.UNS, m.NElectrons)
	}
	return nil
}

// CPTRecord is one row of the critical pitting/crevice temperature
// table.
type CPTRecord struct {
	Material     string
	CPTCelsius   float64
	CCTCelsius   float64
	TestSolution string
	Source       provenance.Source
}

// Validate enforces CCT ≤ CPT when both fields are present (non-zero).
func (c CPTRecord) Validate() error {
	if c.CPTCelsius != 0 && c.CCTCelsius != 0 && c.CCTCelsius > c.CPTCelsius {
		return fmt.Errorf("material %s: CCT (%.2f) must be <= CPT (%.2f)", c.Material, c.CCTCelsius, c.CPTCelsius)
	}
	return nil
}

// ChlorideThreshold is one row of the chloride-threshold table: the
// base threshold at 25 C, pH 7, plus an optional per-material decay
// coefficient override (0 means "use the grade-family default").
type ChlorideThreshold struct {
	Material      string
	Threshold25C  float64
	DecayKOverride float64
}

// ReferenceElectrode names the reference electrode a potential is
// expressed against.
type ReferenceElectrode string

const (
	SHE ReferenceElectrode = "SHE"
	SCE ReferenceElectrode = "SCE"
)

// Named, cited SHE<->SCE offset constants. Two different constants
// appear for different data sources (§9 Open Questions) and are kept
// distinct rather than unified silently.
const (
	// SHEOffsetASTM is the ASTM G3 conversion used for the tabular
	// galvanic-series source.
	SHEOffsetASTM = 0.241
	// SHEOffsetNRL is the conversion used for the NRL-sourced XML
	// galvanic series.
	SHEOffsetNRL = 0.244
)

// GalvanicSeriesEntry is one row of a galvanic series, tabular or XML.
type GalvanicSeriesEntry struct {
	Material         string
	PotentialSCE     float64
	SHEOffset        float64
	ActivityCategory string
	Source           provenance.Source
}

// PotentialSHE returns the potential vs standard hydrogen electrode
// using this entry's documented offset.
func (g GalvanicSeriesEntry) PotentialSHE() float64 {
	return g.PotentialSCE + g.SHEOffset
}

// Electrolyte names the aqueous environment bucket for ORR diffusion
// limits.
type Electrolyte string

const (
	Freshwater Electrolyte = "freshwater"
	Seawater   Electrolyte = "seawater"
)

// ReactionType names one of the five kinetic reaction families.
type ReactionType string

const (
	ReactionORR            ReactionType = "ORR"
	ReactionHER            ReactionType = "HER"
	ReactionPassivation    ReactionType = "Passivation"
	ReactionMetalOxidation ReactionType = "MetalOxidation"
	ReactionPitting        ReactionType = "Pitting"
)

// ReactionCoefficientSet holds the six response-surface coefficients
// for one (material, reaction) pair: a quadratic in (chloride molarity,
// temperature).
type ReactionCoefficientSet struct {
	Material string
	Reaction ReactionType
	P00      float64
	P10      float64
	P01      float64
	P20      float64
	P11      float64
	P02      float64
}

// Evaluate computes ΔG_no_pH = p00 + p10*c + p01*T + p20*c^2 + p11*c*T +
// p02*T^2 (J/mol) for the given chloride molarity and temperature in
// Celsius-fit-in-Kelvin units as documented by the caller (refdata
// itself performs no unit conversion; see kinetics for the Celsius vs
// Kelvin boundary enforcement).
func (c ReactionCoefficientSet) Evaluate(chlorideM, temperature float64) float64 {
	return c.P00 +
		c.P10*chlorideM +
		c.P01*temperature +
		c.P20*chlorideM*chlorideM +
		c.P11*chlorideM*temperature +
		c.P02*temperature*temperature
}
