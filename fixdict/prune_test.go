// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import "testing"

func TestPrune_TopologicalGroupOrderAndStandardTagInclusion(t *testing.T) {
	begin := &Tag{Name: beginStringTag, Value: 8, Kind: TagRegular, DataType: "STRING"}
	table := tagTableFor(regularTag("Account", 1))
	table[beginStringTag] = begin

	inner := Block{&RegularEntry{Name: "LegSymbol", Tag: regularTag("LegSymbol", 2)}}
	innerGroup := &GroupRef{SizeTagName: "NoLegsInner", Canonical: "Outer_NoLegsInner", Body: inner}
	table["NoLegsInner"] = &Tag{Name: "NoLegsInner", Value: 3, DataType: numInGroupType}
	table["NoLegsOuter"] = &Tag{Name: "NoLegsOuter", Value: 4, DataType: numInGroupType}

	outerBody := Block{innerGroup}
	outerGroup := &GroupRef{SizeTagName: "NoLegsOuter", Canonical: "Msg_NoLegsOuter", Body: outerBody}

	messages := []*Message{{Name: "NewOrder", MsgType: "D", Body: Block{outerGroup}}}

	tags, groups, err := Prune(table, nil, messages)
	if err != nil {
		t.Fatalf("Prune: %s", err)
	}

	if len(groups) != 2 || groups[0].Canonical != "Outer_NoLegsInner" || groups[1].Canonical != "Msg_NoLegsOuter" {
		t.Fatalf("groups = %+v, want inner before outer", groups)
	}

	names := tagNamesFromSlice(tags)
	for _, want := range []string{beginStringTag, "NoLegsInner", "NoLegsOuter", "LegSymbol"} {
		if !names[want] {
			t.Errorf("tags missing %s: %+v", want, tags)
		}
	}
}

func tagNamesFromSlice(tags []*Tag) map[string]bool {
	out := make(map[string]bool, len(tags))
	for _, t := range tags {
		out[t.Name] = true
	}
	return out
}
