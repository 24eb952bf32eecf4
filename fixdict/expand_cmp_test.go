// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestExpand_ComponentSplicePreservesEntryOrder diffs the expanded
// block against the expected splice using go-cmp rather than a
// hand-rolled field-by-field comparison, the way a larger resolved
// block is easiest to check by diffing instead of asserting each
// entry in isolation.
func TestExpand_ComponentSplicePreservesEntryOrder(t *testing.T) {
	account := regularTag("Account", 1)
	symbol := regularTag("Symbol", 55)

	components := map[string]Block{
		"Instrument": {&RegularEntry{Name: "Symbol", Tag: symbol}},
	}
	block := Block{
		&RegularEntry{Name: "Account", Tag: account},
		&ComponentRef{Name: "Instrument"},
	}

	got, err := Expand(components, make(map[string]*GroupRef), block)
	if err != nil {
		t.Fatalf("Expand: %s", err)
	}

	want := Block{
		&RegularEntry{Name: "Account", Tag: account},
		&RegularEntry{Name: "Symbol", Tag: symbol},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Expand() mismatch (-want +got):\n%s", diff)
	}
}
