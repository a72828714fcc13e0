// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"go.uber.org/zap"
)

// defaultORRLimitAm2 is returned when a (electrolyte, bucket) condition
// is absent from the table.
const defaultORRLimitAm2 = 5.0

// loadORRFile parses the ORR-diffusion-limits table: columns condition,
// i_lim_A_m2, where condition keys look like "freshwater_25C".
func loadORRFile(path string, logger *zap.SugaredLogger) (map[string]float64, error) {
	r, header, f, err := openCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, provenance.DataFileMissing{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	iCond, err := colIndex("condition", header)
	if err != nil {
		return nil, err
	}
	iLim, err := colIndex("i_lim_A_m2", header)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
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
		lim, err := parseFloat(row[iLim])
		if err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		out[strings.ToLower(strings.TrimSpace(row[iCond]))] = lim
	}
	return out, nil
}

// orrBucket maps an arbitrary temperature to the nearest documented
// bucket: <=30 -> 25, <=50 -> 40, else 60.
func orrBucket(temperatureC float64) int {
	switch {
	case temperatureC <= 30:
		return 25
	case temperatureC <= 50:
		return 40
	default:
		return 60
	}
}

func orrConditionKey(electrolyte Electrolyte, bucket int) string {
	return fmt.Sprintf("%s_%dc", electrolyte, bucket)
}
