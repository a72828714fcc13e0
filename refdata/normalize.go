// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import (
	"sort"
	"strings"
)

// NormalizeMaterialID uppercases, collapses spaces and hyphens to a
// single underscore, for use as a map key in the materials/CPT/
// chloride tables.
func NormalizeMaterialID(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// NormalizeGalvanicName lowercases and turns hyphens into spaces, as
// used by the tabular galvanic-series source.
func NormalizeGalvanicName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// lookupExact looks up an exact normalized key.
func lookupExact[T any](table map[string]T, query string, normalize func(string) string) (T, bool) {
	v, ok := table[normalize(query)]
	return v, ok
}

// lookupExactThenSubstring tries an exact match first (so "316" never
// loses to a substring hit against "316L") and only then falls back to
// a substring match in either direction over the table's keys, visited
// in sorted order so that the result is deterministic.
func lookupExactThenSubstring[T any](table map[string]T, query string, normalize func(string) string) (T, bool) {
	key := normalize(query)
	if v, ok := table[key]; ok {
		return v, true
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return table[k], true
		}
	}
	var zero T
	return zero, false
}

// galvanicAliases maps common colloquial names to the canonical
// galvanic-series naming used in the tabular/XML sources.
var galvanicAliases = map[string]string{
	"carbon":   "carbon steel",
	"aluminum": "aa 6061 t",
	"aluminium": "aa 6061 t",
}

// lookupGalvanicFuzzy tries exact, then substring, then a fixed set of
// domain aliases. It never guesses beyond these three steps.
func lookupGalvanicFuzzy(table map[string]GalvanicSeriesEntry, query string) (GalvanicSeriesEntry, bool) {
	if v, ok := lookupExactThenSubstring(table, query, NormalizeGalvanicName); ok {
		return v, true
	}
	key := NormalizeGalvanicName(query)
	if alias, ok := galvanicAliases[key]; ok {
		if v, ok := lookupExactThenSubstring(table, alias, NormalizeGalvanicName); ok {
			return v, true
		}
	}
	var zero GalvanicSeriesEntry
	return zero, false
}

// clamp restricts v to [lo, hi].
func clamp(lo, v, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
