// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"testing"

	"github.com/goldstar111/FullFIX/internal/diag"
)

func minimalDoc() *rawDoc {
	return &rawDoc{
		Fields: struct {
			Field []rawField `xml:"field"`
		}{
			Field: []rawField{
				{Name: "Account", Number: "1", Type: "STRING"},
			},
		},
	}
}

func TestBuildTagTable_Minimal(t *testing.T) {
	table, err := BuildTagTable(minimalDoc())
	if err != nil {
		t.Fatalf("BuildTagTable: %s", err)
	}
	tag, ok := table["Account"]
	if !ok {
		t.Fatalf("Account missing from table")
	}
	if tag.Value != 1 || tag.Kind != TagRegular {
		t.Fatalf("Account = %+v, want value 1 kind Regular", tag)
	}
}

func TestBuildTagTable_NoFields(t *testing.T) {
	_, err := BuildTagTable(&rawDoc{})
	if !diag.As(err, diag.NoFields) {
		t.Fatalf("err = %v, want NoFields", err)
	}
}

func TestBuildTagTable_InvalidTagNumber(t *testing.T) {
	doc := &rawDoc{Fields: struct {
		Field []rawField `xml:"field"`
	}{Field: []rawField{{Name: "Bad", Number: "not-a-number", Type: "STRING"}}}}

	_, err := BuildTagTable(doc)
	if !diag.As(err, diag.InvalidTagNumber) {
		t.Fatalf("err = %v, want InvalidTagNumber", err)
	}
}

func TestBuildTagTable_DataLengthPromotion(t *testing.T) {
	doc := &rawDoc{Fields: struct {
		Field []rawField `xml:"field"`
	}{Field: []rawField{
		{Name: "RawDataLength", Number: "95", Type: "LENGTH"},
		{Name: "RawData", Number: "96", Type: "DATA"},
	}}}

	table, err := BuildTagTable(doc)
	if err != nil {
		t.Fatalf("BuildTagTable: %s", err)
	}

	data := table["RawData"]
	if data.Kind != TagData || data.LengthTagValue != 95 {
		t.Fatalf("RawData = %+v, want Kind=Data LengthTagValue=95", data)
	}
	length := table["RawDataLength"]
	if length.Kind != TagDataLength || length.DataTagName != "RawData" {
		t.Fatalf("RawDataLength = %+v, want Kind=DataLength DataTagName=RawData", length)
	}
}

func TestBuildTagTable_MissingLengthTag(t *testing.T) {
	doc := &rawDoc{Fields: struct {
		Field []rawField `xml:"field"`
	}{Field: []rawField{{Name: "RawData", Number: "96", Type: "DATA"}}}}

	_, err := BuildTagTable(doc)
	if !diag.As(err, diag.MissingLengthTag) {
		t.Fatalf("err = %v, want MissingLengthTag", err)
	}
}

func TestFindLengthCompanion_PrefersLenOverLength(t *testing.T) {
	table := TagTable{
		"FooLen":    {Name: "FooLen", Value: 2, DataType: lengthType},
		"FooLength": {Name: "FooLength", Value: 3, DataType: lengthType},
	}
	got := findLengthCompanion(table, "Foo")
	if got == nil || got.Name != "FooLen" {
		t.Fatalf("findLengthCompanion = %+v, want FooLen", got)
	}
}
