// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinetics implements material kinetics (C4): a sealed set of
// material variants, each assembling its per-request electrochemical
// parameters (activation energies, transfer coefficients, diffusion-
// layer thicknesses, oxide-film properties) from the reference-data
// store. One small dispatch function (New) selects the variant by
// normalized identifier, mirroring the teacher's mdl/<domain> registry
// pattern: a Model interface, a New(name) (Model, error) factory keyed
// by a string, and typed construction failures instead of panics.
package kinetics

import (
	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"github.com/puran-water/corrosion-engineering-mcp-sub000/refdata"
)

// pHMin and pHMax bound the linear pH correction (§4.4).
const (
	pHMin = 1.0
	pHMax = 13.0
)

// ActivationEnergies is the prebaked (cathodic, anodic) pair for one
// reaction, computed once at material construction and never
// recomputed by a reaction (§9: "reactions read prebaked ΔG... and
// never re-read the polynomial").
type ActivationEnergies struct {
	Cathodic float64 // J/mol
	Anodic   float64 // J/mol
}

// ReactionParams bundles the per-reaction kinetic quantities a
// Material owns: activation energies, the transfer coefficient, and
// the two diffusion-layer thicknesses (cathodic branches use the
// cathodic thickness; anodic cathodic-limited branches are not
// diffusion-capped per §4.5).
type ReactionParams struct {
	DeltaG            ActivationEnergies
	TransferCoeff     float64 // beta, dimensionless
	DiffusionLayerCmC float64 // delta, cathodic, cm
	DiffusionLayerCmA float64 // delta, anodic, cm (0 if not applicable)
}

// OxideFilm holds the passive-film properties used by the passivation
// reaction's Newton-Raphson resistance correction (§4.5). Zero value
// means "material has no passive film" (active dissolution only).
type OxideFilm struct {
	MolarMassGMol     float64
	DensityGCm3       float64
	ResistivityOhmCm  float64
	PassiveCurrentACm2 float64
	BaselineThicknessCm float64
}

// Material is the sealed polymorphic variant (§3, §9): one concrete
// record per known alloy, holding prebaked kinetic parameters plus the
// effective molar mass and electron count used by Faraday's law.
// Constructed per request so activation energies are locked to the
// request's (chloride, T, pH).
type Material struct {
	ID          string
	Grade       refdata.GradeFamily
	MolarMassGMol float64
	NElectrons    int
	DensityGCm3   float64

	Reactions map[refdata.ReactionType]ReactionParams
	OxideFilm OxideFilm

	ChlorideM    float64
	TemperatureC float64
	PH           float64
	VelocityMS   float64
}

// velocityReference holds the material-specific reference velocity for
// the velocity-dependent ORR diffusion layer (§4.4).
var velocityReference = map[string]float64{
	"I625": 50.0,
	"CUNI": 7.5,
}

// baseDiffusionLayerCm is the static ORR/HER cathodic diffusion-layer
// thickness before any velocity adjustment.
const baseDiffusionLayerCm = 0.085

// materialReactions enumerates the required reaction set per variant
// (§4.4 "Variants and their reactions").
var materialReactions = map[string][]refdata.ReactionType{
	"HY80":  {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionMetalOxidation, refdata.ReactionPitting},
	"HY100": {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionMetalOxidation, refdata.ReactionPitting},
	"SS316": {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionPassivation, refdata.ReactionPitting},
	"TI":    {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionPassivation},
	"I625":  {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionPassivation},
	"CUNI":  {refdata.ReactionORR, refdata.ReactionHER, refdata.ReactionMetalOxidation},
}

// transferCoefficient returns beta for a reaction; the value does not
// depend on the material. Pitting
// uses beta ~ 1, making it highly irreversible, per §4.5.
func transferCoefficient(reaction refdata.ReactionType) float64 {
	if reaction == refdata.ReactionPitting {
		return 0.98
	}
	return 0.5
}

// oxideFilmFor returns the passive-film properties for variants that
// grow one; the zero value for variants that do not passivate.
func oxideFilmFor(normalized string) OxideFilm {
	switch normalized {
	case "SS316":
		return OxideFilm{MolarMassGMol: 76.0, DensityGCm3: 5.2, ResistivityOhmCm: 1e10, PassiveCurrentACm2: 1e-6, BaselineThicknessCm: 2e-7}
	case "TI":
		return OxideFilm{MolarMassGMol: 79.87, DensityGCm3: 4.23, ResistivityOhmCm: 1e12, PassiveCurrentACm2: 1e-7, BaselineThicknessCm: 5e-7}
	case "I625":
		return OxideFilm{MolarMassGMol: 101.96, DensityGCm3: 5.2, ResistivityOhmCm: 1e11, PassiveCurrentACm2: 5e-7, BaselineThicknessCm: 3e-7}
	default:
		return OxideFilm{}
	}
}

// effectiveMolarMassAndElectrons returns the (M, n) pair Faraday's law
// uses for each variant: the dominant-oxidation molar mass and
// electron count, not the whole-alloy average.
func effectiveMolarMassAndElectrons(normalized string) (molarMassGMol float64, electrons int) {
	switch normalized {
	case "HY80", "HY100":
		return 55.845, 2 // Fe -> Fe2+
	case "SS316":
		return 51.996, 3 // Cr -> Cr3+ dominates passive dissolution chemistry
	case "TI":
		return 47.867, 4
	case "I625":
		return 58.693, 2 // Ni-dominated alloy
	case "CUNI":
		return 63.546, 2 // Cu -> Cu2+
	}
	return 0, 0
}

func densityGCm3(normalized string) float64 {
	switch normalized {
	case "HY80", "HY100":
		return 7.85
	case "SS316":
		return 8.00
	case "TI":
		return 4.50
	case "I625":
		return 8.44
	case "CUNI":
		return 8.90
	}
	return 0
}

// pHCorrectionFactor applies the linear pH correction of §4.4: for
// cathodic/anodic-oxidation reactions, the factor runs from 1.10 at
// pH_min to 0.90 at pH_max; for pitting the slope is reversed.
func pHCorrectionFactor(reaction refdata.ReactionType, ph float64) float64 {
	clamped := ph
	if clamped < pHMin {
		clamped = pHMin
	}
	if clamped > pHMax {
		clamped = pHMax
	}
	frac := (clamped - pHMin) / (pHMax - pHMin)
	if reaction == refdata.ReactionPitting {
		return 0.90 + frac*0.20
	}
	return 1.10 - frac*0.20
}

// New constructs a Material for the given identifier at the requested
// conditions. It evaluates every reaction the variant owns, applying
// the pH correction, and refuses (InvalidActivationEnergy) if either
// the cathodic or anodic activation energy for any reaction comes out
// negative: the design forbids clamping to a positive value.
func New(store *refdata.Store, id string, chlorideM, temperatureC, ph, velocityMS float64) (*Material, error) {
	normalized := refdata.NormalizeMaterialID(id)
	reactions, ok := materialReactions[normalized]
	if !ok {
		return nil, provenance.UnknownMaterial{ID: id}
	}

	molarMass, electrons := effectiveMolarMassAndElectrons(normalized)
	m := &Material{
		ID:            normalized,
		MolarMassGMol: molarMass,
		NElectrons:    electrons,
		DensityGCm3:   densityGCm3(normalized),
		Reactions:     make(map[refdata.ReactionType]ReactionParams, len(reactions)),
		OxideFilm:     oxideFilmFor(normalized),
		ChlorideM:     chlorideM,
		TemperatureC:  temperatureC,
		PH:            ph,
		VelocityMS:    velocityMS,
	}
	if mats, err := store.LoadMaterials(); err == nil {
		if comp, ok := mats[normalized]; ok {
			m.Grade = comp.Grade
		}
	}

	tempK := temperatureC + 273.15
	for _, reaction := range reactions {
		coeffs, err := store.GetReactionCoeffs(normalized, reaction)
		if err != nil {
			return nil, err
		}
		dgNoPH := coeffs.Evaluate(chlorideM, tempK)
		factor := pHCorrectionFactor(reaction, ph)
		dgCathodic := dgNoPH * factor
		dgAnodic := dgNoPH * factor
		if dgCathodic < 0 || dgAnodic < 0 {
			return nil, provenance.InvalidActivationEnergy{
				Material:       normalized,
				Reaction:       string(reaction),
				ChlorideM:      chlorideM,
				TemperatureC:   temperatureC,
				PH:             ph,
				DeltaGCathodic: dgCathodic,
				DeltaGAnodic:   dgAnodic,
			}
		}

		cathodicDelta := baseDiffusionLayerCm
		if ref, ok := velocityReference[normalized]; ok && isCathodicDiffusionReaction(reaction) {
			cathodicDelta = baseDiffusionLayerCm * (1 - velocityMS/ref)
			if cathodicDelta < 0 {
				cathodicDelta = 0
			}
		}

		m.Reactions[reaction] = ReactionParams{
			DeltaG:            ActivationEnergies{Cathodic: dgCathodic, Anodic: dgAnodic},
			TransferCoeff:     transferCoefficient(reaction),
			DiffusionLayerCmC: cathodicDelta,
		}
	}
	return m, nil
}

func isCathodicDiffusionReaction(reaction refdata.ReactionType) bool {
	return reaction == refdata.ReactionORR
}
