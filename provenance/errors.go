// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provenance

import "fmt"

// DataFileMissing is returned when a required reference-data table file
// cannot be found on disk. It is fatal for the calling request.
type DataFileMissing struct {
	Path string
}

func (e DataFileMissing) Error() string {
	return fmt.Sprintf("data file missing: %s", e.Path)
}

// UnknownMaterial is returned when a material identifier does not
// resolve in the reference-data store. No default substitution occurs.
type UnknownMaterial struct {
	ID string
}

func (e UnknownMaterial) Error() string {
	return fmt.Sprintf("unknown material identifier: %q", e.ID)
}

// InvalidActivationEnergy is returned when a reaction's response-surface
// polynomial extrapolates outside its valid domain and yields a
// negative activation energy. Fatal for that reaction; the design
// forbids clamping to a positive value.
type InvalidActivationEnergy struct {
	Material       string
	Reaction       string
	ChlorideM      float64
	TemperatureC   float64
	PH             float64
	DeltaGCathodic float64
	DeltaGAnodic   float64
}

func (e InvalidActivationEnergy) Error() string {
	return fmt.Sprintf(
		"invalid activation energy for %s/%s at Cl=%.4g M, T=%.2f C, pH=%.2f: "+
			"dG_cathodic=%.4g J/mol, dG_anodic=%.4g J/mol (refusing to fabricate kinetics)",
		e.Material, e.Reaction, e.ChlorideM, e.TemperatureC, e.PH, e.DeltaGCathodic, e.DeltaGAnodic,
	)
}

// SolverNonConvergence is returned when the mixed-potential root finder
// could not bracket a root within the supplied grid. Non-fatal: the
// caller receives a result with convergence=false and a warning.
type SolverNonConvergence struct {
	Residual float64
	BoundLow float64
	BoundHi  float64
}

func (e SolverNonConvergence) Error() string {
	return fmt.Sprintf(
		"mixed-potential solver did not converge: residual=%.4g over bounds [%.4g, %.4g] V",
		e.Residual, e.BoundLow, e.BoundHi,
	)
}

// MissingSpecies is returned when an ion required for an assessment
// (e.g. Ca for LSI) is absent from the supplied water chemistry. Fatal
// for that assessment only.
type MissingSpecies struct {
	Ion string
}

func (e MissingSpecies) Error() string {
	return fmt.Sprintf("missing required species: %s", e.Ion)
}

// OutOfRange is returned when an input parameter falls outside the
// supported envelope. Non-fatal unless the bound is declared hard by
// the caller.
type OutOfRange struct {
	Parameter string
	Value     float64
	Min       float64
	Max       float64
	Hard      bool
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf(
		"parameter %s = %.6g outside supported range [%.6g, %.6g]",
		e.Parameter, e.Value, e.Min, e.Max,
	)
}

// BackendFailure wraps an error raised by an external collaborator: the
// equilibrium-speciation engine or the vendored CO2/NORSOK model.
type BackendFailure struct {
	Wrapped error
}

func (e BackendFailure) Error() string {
	return fmt.Sprintf("backend failure: %v", e.Wrapped)
}

func (e BackendFailure) Unwrap() error {
	return e.Wrapped
}
