// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
)

// materialFileCodes maps a normalized material identifier to the
// exact casing used in coefficient file names.
var materialFileCodes = map[string]string{
	"HY80":  "HY80",
	"HY100": "HY100",
	"SS316": "SS316",
	"TI":    "Ti",
	"I625":  "I625",
	"CUNI":  "cuni",
}

// reactionFileSuffix returns the coefficient-file reaction suffix for
// (material, reaction), and whether that pair is a known combination.
func reactionFileSuffix(normalizedMaterial string, reaction ReactionType) (string, bool) {
	switch reaction {
	case ReactionORR:
		return "ORR", true
	case ReactionHER:
		return "HER", true
	case ReactionPassivation:
		switch normalizedMaterial {
		case "SS316", "TI", "I625":
			return "Pass", true
		}
	case ReactionPitting:
		switch normalizedMaterial {
		case "HY80", "HY100", "SS316":
			return "Pit", true
		}
	case ReactionMetalOxidation:
		switch normalizedMaterial {
		case "HY80", "HY100":
			return "FeOx", true
		case "CUNI":
			return "CuOx", true
		}
	}
	return "", false
}

// coeffFilePath builds the <MATERIAL><REACTION>Coeffs.csv path for a
// (material, reaction) pair, or an error if the pair is not a known
// combination (never fabricated).
func coeffFilePath(coeffDir, material string, reaction ReactionType) (string, error) {
	normalized := NormalizeMaterialID(material)
	code, ok := materialFileCodes[normalized]
	if !ok {
		return "", provenance.UnknownMaterial{ID: material}
	}
	suffix, ok := reactionFileSuffix(normalized, reaction)
	if !ok {
		return "", provenance.DataFileMissing{
			Path: filepath.Join(coeffDir, fmt.Sprintf("%s%sCoeffs.csv (unsupported pair)", code, reaction)),
		}
	}
	return filepath.Join(coeffDir, fmt.Sprintf("%s%sCoeffs.csv", code, suffix)), nil
}

// loadCoeffsFile reads one row of six comma-separated floats: p00, p10,
// p01, p20, p11, p02.
func loadCoeffsFile(path string, material string, reaction ReactionType) (ReactionCoefficientSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ReactionCoefficientSet{}, provenance.DataFileMissing{Path: path}
		}
		return ReactionCoefficientSet{}, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ReactionCoefficientSet{}, fmt.Errorf("coefficient file %s is empty", path)
	}
	fields := strings.Split(scanner.Text(), ",")
	if len(fields) != 6 {
		return ReactionCoefficientSet{}, fmt.Errorf("coefficient file %s: expected 6 fields, got %d", path, len(fields))
	}
	vals := make([]float64, 6)
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return ReactionCoefficientSet{}, fmt.Errorf("coefficient file %s: field %d: %w", path, i, err)
		}
		vals[i] = v
	}
	return ReactionCoefficientSet{
		Material: material,
		Reaction: reaction,
		P00:      vals[0],
		P10:      vals[1],
		P01:      vals[2],
		P20:      vals[3],
		P11:      vals[4],
		P02:      vals[5],
	}, nil
}
