// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"testing"

	"github.com/goldstar111/FullFIX/internal/diag"
)

func regularTag(name string, value int) *Tag {
	return &Tag{Name: name, Value: value, Kind: TagRegular, DataType: "STRING"}
}

func TestExpand_PendingLengthCannotCrossComponentBoundary(t *testing.T) {
	lenTag := &Tag{Name: "RawDataLength", Value: 95, Kind: TagDataLength, DataTagName: "RawData"}
	block := Block{
		&DataLengthEntry{Name: "RawDataLength", Tag: lenTag},
		&ComponentRef{Name: "Empty"},
	}
	components := map[string]Block{
		"Empty": {&RegularEntry{Name: "Account", Tag: regularTag("Account", 1)}},
	}

	_, err := Expand(components, make(map[string]*GroupRef), block)
	if !diag.As(err, diag.LengthDataMismatch) {
		t.Fatalf("err = %v, want LengthDataMismatch", err)
	}
}

func TestExpand_StrayLengthAtEndOfBlockSurvives(t *testing.T) {
	lenTag := &Tag{Name: "RawDataLength", Value: 95, Kind: TagDataLength, DataTagName: "RawData"}
	block := Block{
		&RegularEntry{Name: "Account", Tag: regularTag("Account", 1)},
		&DataLengthEntry{Name: "RawDataLength", Tag: lenTag},
	}

	out, err := Expand(nil, make(map[string]*GroupRef), block)
	if err != nil {
		t.Fatalf("Expand: %s", err)
	}
	if len(out) != 2 {
		t.Fatalf("out = %+v, want 2 entries (stray length preserved)", out)
	}
	if _, ok := out[1].(*DataLengthEntry); !ok {
		t.Fatalf("out[1] = %T, want *DataLengthEntry", out[1])
	}
}

func TestExpand_DataWithoutPendingLength(t *testing.T) {
	dataTag := &Tag{Name: "RawData", Value: 96, Kind: TagData, LengthTagValue: 95}
	block := Block{&DataEntry{Name: "RawData", Tag: dataTag, LengthTagValue: 95}}

	_, err := Expand(nil, make(map[string]*GroupRef), block)
	if !diag.As(err, diag.UnexpectedDataTag) {
		t.Fatalf("err = %v, want UnexpectedDataTag", err)
	}
}

func TestExpand_GroupMemoizedAcrossReferences(t *testing.T) {
	sizeTag := regularTag("NoLegs", 555)
	sizeTag.DataType = numInGroupType
	inner := Block{&RegularEntry{Name: "LegSymbol", Tag: regularTag("LegSymbol", 600)}}
	group := &GroupRef{SizeTagName: "NoLegs", Canonical: "Msg_NoLegs", Body: inner}

	groups := make(map[string]*GroupRef)
	block := Block{group, group}

	out, err := Expand(nil, groups, block)
	if err != nil {
		t.Fatalf("Expand: %s", err)
	}
	first, ok1 := out[0].(*GroupRef)
	second, ok2 := out[1].(*GroupRef)
	if !ok1 || !ok2 || first != second {
		t.Fatalf("expected both references to resolve to the same memoized *GroupRef, got %+v and %+v", out[0], out[1])
	}
}
