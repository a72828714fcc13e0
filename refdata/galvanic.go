// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"
	"go.uber.org/zap"
)

// loadGalvanicTabularFile parses the tabular galvanic-series table:
// columns material, potential_sce_V. Keys are normalized lowercase with
// hyphens turned into spaces, and use the ASTM G3 SHE offset.
func loadGalvanicTabularFile(path string, logger *zap.SugaredLogger) (map[string]GalvanicSeriesEntry, error) {
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
	iPot, err := colIndex("potential_sce_V", header)
	if err != nil {
		return nil, err
	}

	out := make(map[string]GalvanicSeriesEntry)
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
		pot, err := parseFloat(row[iPot])
		if err != nil {
			logRowSkip(logger, path, rowNum, err)
			continue
		}
		entry := GalvanicSeriesEntry{
			Material:     row[iMat],
			PotentialSCE: pot,
			SHEOffset:    SHEOffsetASTM,
			Source:       provenance.Source{Citation: "tabular galvanic series"},
		}
		out[NormalizeGalvanicName(entry.Material)] = entry
	}
	return out, nil
}

// galvanicXMLDoc matches <Root><Data><Name/><PotentialValue/>
// <ActivityCategory/></Data>...</Root> for any root element name.
type galvanicXMLDoc struct {
	XMLName xml.Name
	Data    []galvanicXMLEntry `xml:"Data"`
}

type galvanicXMLEntry struct {
	Name             string  `xml:"Name"`
	PotentialValue   float64 `xml:"PotentialValue"`
	ActivityCategory string  `xml:"ActivityCategory"`
}

// loadGalvanicXMLFile parses the authoritative XML galvanic series,
// storing SCE potentials with the NRL SHE offset (+0.244 V).
func loadGalvanicXMLFile(path string, logger *zap.SugaredLogger) (map[string]GalvanicSeriesEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, provenance.DataFileMissing{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	var doc galvanicXMLDoc
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, err
	}

	out := make(map[string]GalvanicSeriesEntry)
	for i, e := range doc.Data {
		if e.Name == "" {
			logRowSkip(logger, path, i, errEmptyXMLName)
			continue
		}
		entry := GalvanicSeriesEntry{
			Material:         e.Name,
			PotentialSCE:     e.PotentialValue,
			SHEOffset:        SHEOffsetNRL,
			ActivityCategory: e.ActivityCategory,
			Source:           provenance.Source{Citation: "NRL galvanic series (XML)"},
		}
		out[NormalizeGalvanicName(entry.Material)] = entry
	}
	return out, nil
}

var errEmptyXMLName = xmlEmptyNameErr{}

type xmlEmptyNameErr struct{}

func (xmlEmptyNameErr) Error() string { return "Data entry missing Name" }
