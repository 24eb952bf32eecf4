// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import "github.com/goldstar111/FullFIX/internal/diag"

const (
	dataType       = "DATA"
	lengthType     = "LENGTH"
	numInGroupType = "NUMINGROUP"
)

// BuildTagTable reads fix/fields/field into a name-keyed TagTable and
// promotes DATA/LENGTH pairs in place (spec.md §4.1). The returned
// table is frozen by convention: nothing after this call mutates a
// *Tag in place again.
func BuildTagTable(doc *rawDoc) (TagTable, error) {
	table := make(TagTable, len(doc.Fields.Field))

	for _, f := range doc.Fields.Field {
		value, err := parseTagNumber(f.Name, f.Number)
		if err != nil {
			return nil, err
		}
		table[f.Name] = &Tag{
			Name:     f.Name,
			Value:    value,
			Kind:     TagRegular,
			DataType: f.Type,
		}
	}

	if len(table) == 0 {
		return nil, diag.New(diag.NoFields, "", "dictionary declares no fields")
	}

	if err := promoteDataLengthPairs(table); err != nil {
		return nil, err
	}

	return table, nil
}

// promoteDataLengthPairs finds, for every DATA-typed field, its
// companion LENGTH field (named <Name>Len, then <Name>Length) and
// rewrites both entries to TagData/TagDataLength in place.
func promoteDataLengthPairs(table TagTable) error {
	for name, t := range table {
		if t.DataType != dataType {
			continue
		}

		length := findLengthCompanion(table, name)
		if length == nil {
			return diag.New(diag.MissingLengthTag, name, "no <name>Len or <name>Length field typed LENGTH")
		}

		table[name] = &Tag{
			Name:           t.Name,
			Value:          t.Value,
			Kind:           TagData,
			DataType:       t.DataType,
			LengthTagValue: length.Value,
		}
		table[length.Name] = &Tag{
			Name:        length.Name,
			Value:       length.Value,
			Kind:        TagDataLength,
			DataType:    length.DataType,
			DataTagName: name,
		}
	}
	return nil
}

func findLengthCompanion(table TagTable, dataName string) *Tag {
	for _, suffix := range [...]string{"Len", "Length"} {
		if cand, ok := table[dataName+suffix]; ok && cand.DataType == lengthType {
			return cand
		}
	}
	return nil
}
