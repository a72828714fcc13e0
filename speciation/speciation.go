// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package speciation implements the equilibrium-speciation adapter
// (C3): a narrow, thread-safe wrapper around an external aqueous-
// equilibrium engine (modeled on PHREEQC). Go has no thread-local
// storage, so "one engine per worker" is modeled as a small bounded
// pool with explicit handle checkout and return (§9 of the design
// notes), rather than a shared engine guarded by a lock.
package speciation

import (
	"sync"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
)

// Engine is the external collaborator contract this package wraps. A
// real deployment backs this with a PHREEQC (or similar) binding; tests
// substitute a fake. Implementations must not retain state across
// RunSpeciation calls on the same handle beyond what Release cleans up.
type Engine interface {
	// RunSpeciation solves the aqueous equilibrium for the given
	// elemental inputs (engine keyword -> moles/L) at temperature (C),
	// with optional pH and redox (pe) fixed points.
	RunSpeciation(elements map[string]float64, temperatureC float64, ph, pe *float64) (EngineResult, error)
	// Release disposes of any solution object held by the engine after
	// a call; it must always be invoked, success or failure, so no
	// engine state leaks across calls.
	Release()
}

// EngineResult is the raw output of one Engine.RunSpeciation call.
type EngineResult struct {
	PH             float64
	PE             float64
	IonicStrength  float64
	AlkalinityMgL  float64
	Species        map[string]float64
	SaturationIdx  map[string]float64
}

// Ion describes one entry of the fixed ion-normalization table: a
// recognized input key's canonical charge, molecular weight (g/mol),
// and the conversion to the engine's elemental keyword and factor.
type Ion struct {
	Charge         int
	MolecularWtGMol float64
	EngineElement  string
	EngineFactor   float64
}

// ionTable is the fixed ion-name normalization table (§4.3). Keys are
// canonical uppercase ion names; callers may use common aliases via
// NormalizeIonName.
var ionTable = map[string]Ion{
	"CA":  {Charge: 2, MolecularWtGMol: 40.078, EngineElement: "Ca", EngineFactor: 1},
	"MG":  {Charge: 2, MolecularWtGMol: 24.305, EngineElement: "Mg", EngineFactor: 1},
	"NA":  {Charge: 1, MolecularWtGMol: 22.990, EngineElement: "Na", EngineFactor: 1},
	"K":   {Charge: 1, MolecularWtGMol: 39.098, EngineElement: "K", EngineFactor: 1},
	"CL":  {Charge: -1, MolecularWtGMol: 35.453, EngineElement: "Cl", EngineFactor: 1},
	"SO4": {Charge: -2, MolecularWtGMol: 96.06, EngineElement: "S", EngineFactor: 1.0 / 3.0},
	"HCO3": {Charge: -1, MolecularWtGMol: 61.017, EngineElement: "C", EngineFactor: 1.0 / 1.0},
	"CO3": {Charge: -2, MolecularWtGMol: 60.009, EngineElement: "C", EngineFactor: 1.0 / 1.0},
}

var ionAliases = map[string]string{
	"CALCIUM":     "CA",
	"MAGNESIUM":   "MG",
	"SODIUM":      "NA",
	"POTASSIUM":   "K",
	"CHLORIDE":    "CL",
	"SULFATE":     "SO4",
	"BICARBONATE": "HCO3",
	"CARBONATE":   "CO3",
}

// NormalizeIonName uppercases and resolves a common alias to its
// canonical ion-table key.
func NormalizeIonName(name string) string {
	key := upper(name)
	if canon, ok := ionAliases[key]; ok {
		return canon
	}
	return key
}

func upper(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// LookupIon returns the ion-table entry for a normalized ion name.
func LookupIon(name string) (Ion, bool) {
	ion, ok := ionTable[NormalizeIonName(name)]
	return ion, ok
}

// DefaultChargeBalanceThresholdPct is the default warn threshold on
// |imbalance| as a percent of total ionic charge.
const DefaultChargeBalanceThresholdPct = 5.0

// Request is one speciation call's inputs.
type Request struct {
	// IonsMgL maps ion name (any alias) to concentration in mg/L.
	IonsMgL map[string]float64
	TemperatureC float64
	PH           *float64
	Pe           *float64
	// ChargeBalanceThresholdPct overrides DefaultChargeBalanceThresholdPct
	// when non-zero.
	ChargeBalanceThresholdPct float64
}

// Response is the adapter's public result, consumed by C8 (scaling)
// and the localized-corrosion assessor.
type Response struct {
	PH                float64
	Pe                float64
	IonicStrength     float64
	AlkalinityMgL     float64
	Species           map[string]float64
	SaturationIndex   map[string]float64
	ChargeBalancePct  float64
}

// Adapter is the C3 entry point: RunSpeciation(ions, T, pH?, pe?) ->
// {pH, pe, ionic strength, alkalinity, species, saturation indices,
// charge-balance percent}.
type Adapter struct {
	pool *enginePool
}

// NewAdapter builds an Adapter backed by a bounded pool of engine
// instances created by newEngine. poolSize bounds concurrent engine
// instances; each pooled instance is exclusively owned for the
// duration of one RunSpeciation call, so concurrent callers on
// distinct instances do not serialize, while reuse of the same
// instance is inherently serial.
func NewAdapter(newEngine func() Engine, poolSize int) *Adapter {
	return &Adapter{pool: newEnginePool(newEngine, poolSize)}
}

// RunSpeciation normalizes ion names, converts to the engine's
// elemental keywords, checks out a pooled engine, runs the
// equilibrium, releases the engine, and computes the charge-balance
// diagnostic.
func (a *Adapter) RunSpeciation(req Request) provenance.Result[Response] {
	meta := provenance.NewMetadata("speciation.Adapter", "1.0", provenance.MethodCalculated, provenance.ConfidenceHigh)

	elements := map[string]float64{}
	chargeSum := 0.0
	absChargeSum := 0.0
	for name, mgL := range req.IonsMgL {
		ion, ok := LookupIon(name)
		if !ok {
			return provenance.None[Response]("speciation.Adapter", provenance.MissingSpecies{Ion: name})
		}
		molPerL := mgL / 1000 / ion.MolecularWtGMol
		elements[ion.EngineElement] += molPerL * ion.EngineFactor
		chargeMeq := molPerL * float64(ion.Charge) * 1000
		chargeSum += chargeMeq
		absChargeSum += abs(chargeMeq)
	}

	engine, release := a.pool.checkout()
	defer release()
	raw, err := engine.RunSpeciation(elements, req.TemperatureC, req.PH, req.Pe)
	engine.Release()
	if err != nil {
		return provenance.None[Response]("speciation.Adapter", provenance.BackendFailure{Wrapped: err})
	}

	threshold := req.ChargeBalanceThresholdPct
	if threshold == 0 {
		threshold = DefaultChargeBalanceThresholdPct
	}
	var balancePct float64
	if absChargeSum > 0 {
		balancePct = 100 * abs(chargeSum) / absChargeSum
	}
	if balancePct > threshold {
		meta.AddWarning(provenance.WarnChargeImbalance, "charge imbalance %.2f%% exceeds threshold %.2f%%", balancePct, threshold)
	}

	resp := Response{
		PH:               raw.PH,
		Pe:               raw.PE,
		IonicStrength:    raw.IonicStrength,
		AlkalinityMgL:    raw.AlkalinityMgL,
		Species:          raw.Species,
		SaturationIndex:  raw.SaturationIdx,
		ChargeBalancePct: balancePct,
	}
	return provenance.Ok(resp, meta)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// enginePool is a small bounded pool of Engine instances, checked out
// exclusively for the duration of one call and returned afterward.
type enginePool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	idle    []Engine
	newFunc func() Engine
	created int
	max     int
}

func newEnginePool(newFunc func() Engine, max int) *enginePool {
	if max <= 0 {
		max = 1
	}
	p := &enginePool{newFunc: newFunc, max: max}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// checkout hands out an idle engine, creates one while fewer than max
// exist, and otherwise blocks until another caller checks one back in.
func (p *enginePool) checkout() (Engine, func()) {
	p.mu.Lock()
	for len(p.idle) == 0 && p.created >= p.max {
		p.cond.Wait()
	}
	if n := len(p.idle); n > 0 {
		e := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return e, func() { p.checkin(e) }
	}
	p.created++
	p.mu.Unlock()
	e := p.newFunc()
	return e, func() { p.checkin(e) }
}

func (p *enginePool) checkin(e Engine) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.idle) >= p.max {
		return
	}
	p.idle = append(p.idle, e)
	p.cond.Signal()
}
