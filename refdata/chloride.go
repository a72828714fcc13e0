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

// defaultDecayK is the grade-family chloride-decay coefficient used
// when the temperature-coefficients table has no entry for a grade.
const defaultDecayK = 0.05

// minChlorideThresholdMgL is the floor applied after temperature and
// pH corrections.
const minChlorideThresholdMgL = 10.0

// loadChlorideFile parses the chloride-thresholds table: columns
// material, threshold_25C_mg_L.
func loadChlorideFile(path string, logger *zap.SugaredLogger) (map[string]ChlorideThreshold, error) {
	r, header, f, err := openCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, provenance.DataFileMissing{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	iMat, err := colIndex("material", header)
	if err != nil {
		return nil, err
	}
	iThr, err := colIndex("threshold_25C_mg_L", header)
	if err != nil {
		return nil, err
	}

	out := make(map[string]ChlorideThreshold)
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
		ct := ChlorideThreshold{Material: row[iMat]}
		if ct.Threshold25C, err = parseFloat(row[iThr]); err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		if ct.Threshold25C < 0 {
			logRowSkip(logger, path, rowNum, errNegativeThreshold(row[iMat], ct.Threshold25C))
			continue
		}
		out[NormalizeMaterialID(ct.Material)] = ct
	}
	return out, nil
}

// loadTempCoeffFile parses the temperature-coefficients table: columns
// grade_type, temp_coefficient_per_C.
func loadTempCoeffFile(path string, logger *zap.SugaredLogger) (map[GradeFamily]float64, error) {
	r, header, f, err := openCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, provenance.DataFileMissing{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	iGrade, err := colIndex("grade_type", header)
	if err != nil {
		return nil, err
	}
	iK, err := colIndex("temp_coefficient_per_C", header)
	if err != nil {
		return nil, err
	}

	out := make(map[GradeFamily]float64)
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
		k, err := parseFloat(row[iK])
		if err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		out[GradeFamily(row[iGrade])] = k
	}
	return out, nil
}

func errNegativeThreshold(material string, value float64) error {
	return provenance.OutOfRange{Parameter: "threshold_25C_mg_L(" + material + ")", Value: value, Min: 0, Max: 1e9, Hard: true}
}
