// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"io"
	"os"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"go.uber.org/zap"
)

// loadMaterialsFile parses the materials-compositions table: columns
// UNS, common_name, Cr_wt_pct, Ni_wt_pct, Mo_wt_pct, N_wt_pct,
// density_kg_m3, grade_type, n_electrons, Fe_bal, source.
func loadMaterialsFile(path string, logger *zap.SugaredLogger) (map[string]MaterialComposition, error) {
	r, header, f, err := openCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, provenance.DataFileMissing{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	cols := struct{ uns, name, cr, ni, mo, n, density, grade, electrons, febal, source int }{}
	for _, c := range []struct {
		name string
		dest *int
	}{
		{"UNS", &cols.uns},
		{"common_name", &cols.name},
		{"Cr_wt_pct", &cols.cr},
		{"Ni_wt_pct", &cols.ni},
		{"Mo_wt_pct", &cols.mo},
		{"N_wt_pct", &cols.n},
		{"density_kg_m3", &cols.density},
		{"grade_type", &cols.grade},
		{"n_electrons", &cols.electrons},
		{"Fe_bal", &cols.febal},
		{"source", &cols.source},
	} {
		idx, err := colIndex(c.name, header)
		if err != nil {
			return nil, err
		}
		*c.dest = idx
	}

	out := make(map[string]MaterialComposition)
	rowNum := 1
	for {
		row, err := r.Read()
		rowNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		mat, perr := parseMaterialRow(row, cols)
		if perr != nil {
			logRowSkip(logger, path, rowNum, perr)
			continue
		}
		if verr := mat.Validate(); verr != nil {
			logRowSkip(logger, path, rowNum, verr)
			continue
		}
		out[NormalizeMaterialID(mat.CommonName)] = mat
		if mat.UNS != "" {
			out[NormalizeMaterialID(mat.UNS)] = mat
		}
	}
	return out, nil
}

func parseMaterialRow(row []string, cols struct {
	uns, name, cr, ni, mo, n, density, grade, electrons, febal, source int
}) (MaterialComposition, error) {
	var m MaterialComposition
	m.UNS = row[cols.uns]
	m.CommonName = row[cols.name]
	var err error
	if m.CrWtPct, err = parseFloat(row[cols.cr]); err != nil {
		return m, err
	}
	if m.NiWtPct, err = parseFloat(row[cols.ni]); err != nil {
		return m, err
	}
	if m.MoWtPct, err = parseFloat(row[cols.mo]); err != nil {
		return m, err
	}
	if m.NWtPct, err = parseFloat(row[cols.n]); err != nil {
		return m, err
	}
	if m.DensityKgM3, err = parseFloat(row[cols.density]); err != nil {
		return m, err
	}
	m.Grade = GradeFamily(row[cols.grade])
	nElec, err := parseFloat(row[cols.electrons])
	if err != nil {
		return m, err
	}
	m.NElectrons = int(nElec)
	m.FeBalance = parseBoolFlag(row[cols.febal])
	m.Source = provenance.ParseSource(row[cols.source])
	return m, nil
}
