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

// loadCPTFile parses the critical pitting/crevice temperature table:
// columns material, CPT_C, CCT_C, test_solution, source.
func loadCPTFile(path string, logger *zap.SugaredLogger) (map[string]CPTRecord, error) {
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
	iCPT, err := colIndex("CPT_C", header)
	if err != nil {
		return nil, err
	}
	iCCT, err := colIndex("CCT_C", header)
	if err != nil {
		return nil, err
	}
	iSol, err := colIndex("test_solution", header)
	if err != nil {
		return nil, err
	}
	iSrc, err := colIndex("source", header)
	if err != nil {
		return nil, err
	}

	out := make(map[string]CPTRecord)
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
		rec := CPTRecord{Material: row[iMat], TestSolution: row[iSol], Source: provenance.ParseSource(row[iSrc])}
		if rec.CPTCelsius, err = parseFloat(row[iCPT]); err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		if rec.CCTCelsius, err = parseFloat(row[iCCT]); err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		if verr := rec.Validate(); verr != nil {
			logRowSkip(logger, path, rowNum, verr)
			continue
		}
		out[NormalizeMaterialID(rec.Material)] = rec
	}
	return out, nil
}
