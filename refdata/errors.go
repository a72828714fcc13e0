// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refdata

import "github.com/puran-water/corrosion-engineering-mcp-sub000/provenance"

func unknownMaterialErr(material string) error {
	return provenance.UnknownMaterial{ID: material}
}
