// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import "github.com/goldstar111/FullFIX/internal/diag"

// BuildComponentTable reads every <components>/<component> body into
// an unexpanded Block, keyed by component name (spec.md §2 step 4).
// "Unexpanded" here means its own ComponentRef and GroupRef entries
// are left exactly as ReadBlock produced them; Expand resolves those,
// recursively, each time something references this component.
func BuildComponentTable(doc *rawDoc, table TagTable) (map[string]Block, error) {
	components := make(map[string]Block, len(doc.Components.Component))

	for _, c := range doc.Components.Component {
		if _, dup := components[c.Name]; dup {
			return nil, diag.New(diag.DuplicateTag, c.Name, "duplicate component definition")
		}

		body, err := ReadBlock(c.Children, []string{c.Name}, table)
		if err != nil {
			return nil, err
		}
		components[c.Name] = body
	}

	return components, nil
}
