// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// colIndex returns the index of name within header, case-insensitively.
func colIndex(name string, header []string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in header %v", name, header)
}

// openCSV opens path and returns its header row and a csv.Reader
// positioned after it. Fails with a wrapped *os.PathError-carrying
// error the caller turns into DataFileMissing.
func openCSV(path string) (*csv.Reader, []string, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, nil, nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return r, header, f, nil
}

// parseFloat parses a CSV field as a float64, defaulting to 0 on an
// empty field (used for optional numeric columns).
func parseFloat(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, nil
	}
	return strconv.ParseFloat(field, 64)
}

// parseBoolFlag interprets common truthy spellings used across the
// tabular data files ("1", "true", "yes", "y").
func parseBoolFlag(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// logRowSkip is the shared "logged and skipped" behavior for malformed
// rows: a row parse failure never aborts the load (§4.1).
func logRowSkip(logger *zap.SugaredLogger, path string, rowNum int, err error) {
	logger.Warnw("skipping malformed row", "file", path, "row", rowNum, "error", err)
}
