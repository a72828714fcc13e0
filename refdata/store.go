// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"math"
	"path/filepath"

	"go.uber.org/zap"
)

// Paths groups the default relative locations of the tabular files and
// the XML galvanic series. The external configuration layer owns
// overriding these; the core only consumes the paths it is given.
type Paths struct {
	MaterialsCSV string
	CPTCSV       string
	ChlorideCSV  string
	TempCoeffCSV string
	ORRLimitsCSV string
	GalvanicCSV  string
	GalvanicXML  string
	CoeffDir     string
}

// DefaultPaths returns the conventional file layout rooted at baseDir
// (normally a "testdata" or installed-data directory).
func DefaultPaths(baseDir string) Paths {
	return Paths{
		MaterialsCSV: filepath.Join(baseDir, "materials.csv"),
		CPTCSV:       filepath.Join(baseDir, "cpt.csv"),
		ChlorideCSV:  filepath.Join(baseDir, "chloride.csv"),
		TempCoeffCSV: filepath.Join(baseDir, "temp_coefficients.csv"),
		ORRLimitsCSV: filepath.Join(baseDir, "orr_limits.csv"),
		GalvanicCSV:  filepath.Join(baseDir, "galvanic.csv"),
		GalvanicXML:  filepath.Join(baseDir, "galvanic_series.xml"),
		CoeffDir:     baseDir,
	}
}

// Store is the reference-data store (C1): deterministic, cached,
// provenance-tagged access to all static corrosion data. All loads are
// lazy on first access and memoized process-wide, keyed by absolute
// path (see cache.go), so two Stores pointed at the same Paths share
// the underlying tables.
type Store struct {
	paths  Paths
	logger *zap.SugaredLogger
}

var (
	materialsCache    = newPathCache[map[string]MaterialComposition]()
	cptCache          = newPathCache[map[string]CPTRecord]()
	chlorideCache     = newPathCache[map[string]ChlorideThreshold]()
	tempCoeffCache    = newPathCache[map[GradeFamily]float64]()
	orrCache          = newPathCache[map[string]float64]()
	galvanicTabCache  = newPathCache[map[string]GalvanicSeriesEntry]()
	galvanicXMLCache  = newPathCache[map[string]GalvanicSeriesEntry]()
	reactionCoefCache = newPathCache[ReactionCoefficientSet]()
)

// ClearCache drops every process-wide table cache. Exposed for tests
// only; production code never needs to call this.
func ClearCache() {
	materialsCache.clear()
	cptCache.clear()
	chlorideCache.clear()
	tempCoeffCache.clear()
	orrCache.clear()
	galvanicTabCache.clear()
	galvanicXMLCache.clear()
	reactionCoefCache.clear()
}

// NewStore builds a Store over the given paths. logger may be nil, in
// which case a no-op logger is used.
func NewStore(paths Paths, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{paths: paths, logger: logger}
}

// LoadMaterials returns the mapping from normalized common-name/UNS
// identifier to MaterialComposition.
func (s *Store) LoadMaterials() (map[string]MaterialComposition, error) {
	return materialsCache.getOrLoad(s.paths.MaterialsCSV, func(p string) (map[string]MaterialComposition, error) {
		return loadMaterialsFile(p, s.logger)
	})
}

// LoadCPTData returns the mapping from material identifier to
// CPTRecord.
func (s *Store) LoadCPTData() (map[string]CPTRecord, error) {
	return cptCache.getOrLoad(s.paths.CPTCSV, func(p string) (map[string]CPTRecord, error) {
		return loadCPTFile(p, s.logger)
	})
}

// LoadGalvanicSeries returns the tabular galvanic-series mapping
// (lowercase, hyphens turned to spaces, ASTM G3 offset).
func (s *Store) LoadGalvanicSeries() (map[string]GalvanicSeriesEntry, error) {
	return galvanicTabCache.getOrLoad(s.paths.GalvanicCSV, func(p string) (map[string]GalvanicSeriesEntry, error) {
		return loadGalvanicTabularFile(p, s.logger)
	})
}

// LoadGalvanicSeriesXML returns the authoritative XML galvanic-series
// mapping (NRL SHE offset).
func (s *Store) LoadGalvanicSeriesXML() (map[string]GalvanicSeriesEntry, error) {
	return galvanicXMLCache.getOrLoad(s.paths.GalvanicXML, func(p string) (map[string]GalvanicSeriesEntry, error) {
		return loadGalvanicXMLFile(p, s.logger)
	})
}

// LookupGalvanicPotential resolves a material name against the
// authoritative XML series first, falling back to the tabular series,
// trying exact match, then fuzzy contains, then domain aliases. It
// returns (potential, false) with ok=false on a miss — never a guess.
func (s *Store) LookupGalvanicPotential(material string, reference ReferenceElectrode) (float64, bool) {
	xmlTable, err := s.LoadGalvanicSeriesXML()
	if err == nil {
		if entry, ok := lookupGalvanicFuzzy(xmlTable, material); ok {
			return potentialFor(entry, reference), true
		}
	}
	tabTable, err := s.LoadGalvanicSeries()
	if err == nil {
		if entry, ok := lookupGalvanicFuzzy(tabTable, material); ok {
			return potentialFor(entry, reference), true
		}
	}
	return 0, false
}

func potentialFor(entry GalvanicSeriesEntry, reference ReferenceElectrode) float64 {
	if reference == SHE {
		return entry.PotentialSHE()
	}
	return entry.PotentialSCE
}

// GetChlorideThreshold computes the chloride threshold (mg/L) for a
// material at the given temperature and pH: base threshold at 25 C
// decayed by exp(-k*(T-25)), scaled by a pH factor clamped to
// [0.5, 1.5], floored at 10 mg/L.
func (s *Store) GetChlorideThreshold(material string, temperatureC, pH float64) (float64, error) {
	thresholds, err := chlorideCache.getOrLoad(s.paths.ChlorideCSV, func(p string) (map[string]ChlorideThreshold, error) {
		return loadChlorideFile(p, s.logger)
	})
	if err != nil {
		return 0, err
	}
	rec, ok := lookupExactThenSubstring(thresholds, material, NormalizeMaterialID)
	if !ok {
		return 0, unknownMaterialErr(material)
	}

	k := defaultDecayK
	if rec.DecayKOverride != 0 {
		k = rec.DecayKOverride
	} else if materials, merr := s.LoadMaterials(); merr == nil {
		if mat, ok := lookupExactThenSubstring(materials, material, NormalizeMaterialID); ok {
			if coeffs, terr := tempCoeffCache.getOrLoad(s.paths.TempCoeffCSV, func(p string) (map[GradeFamily]float64, error) {
				return loadTempCoeffFile(p, s.logger)
			}); terr == nil {
				if gk, ok := coeffs[mat.Grade]; ok {
					k = gk
				}
			}
		}
	}

	tempAdjusted := rec.Threshold25C * math.Exp(-k*(temperatureC-25))
	phFactor := clamp(0.5, (pH-4)/6+0.5, 1.5)
	result := tempAdjusted * phFactor
	if result < minChlorideThresholdMgL {
		result = minChlorideThresholdMgL
	}
	return result, nil
}

// GetORRDiffusionLimit maps temperature to the nearest bucket
// (<=30->25C, <=50->40C, else 60C) and returns the tabulated limiting
// current density (A/m^2), defaulting to 5 A/m^2 when absent.
func (s *Store) GetORRDiffusionLimit(electrolyte Electrolyte, temperatureC float64) float64 {
	limits, err := orrCache.getOrLoad(s.paths.ORRLimitsCSV, func(p string) (map[string]float64, error) {
		return loadORRFile(p, s.logger)
	})
	if err != nil {
		return defaultORRLimitAm2
	}
	bucket := orrBucket(temperatureC)
	if v, ok := limits[orrConditionKey(electrolyte, bucket)]; ok {
		return v
	}
	return defaultORRLimitAm2
}

// GetReactionCoeffs returns the six polynomial coefficients for
// (material, reaction), loaded from the per-material coefficient file
// and cached process-wide by path. Unsupported (material, reaction)
// pairs return a clear DataFileMissing error; coefficients are never
// fabricated.
func (s *Store) GetReactionCoeffs(material string, reaction ReactionType) (ReactionCoefficientSet, error) {
	path, err := coeffFilePath(s.paths.CoeffDir, material, reaction)
	if err != nil {
		return ReactionCoefficientSet{}, err
	}
	return reactionCoefCache.getOrLoad(path, func(p string) (ReactionCoefficientSet, error) {
		return loadCoeffsFile(p, material, reaction)
	})
}
