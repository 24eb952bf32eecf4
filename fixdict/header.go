// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"strconv"

	"github.com/goldstar111/FullFIX/internal/diag"
)

// The standard header and trailer are fixed by the FIX protocol
// itself, not by the dictionary: every message starts with
// BeginString, BodyLength, MsgType (in that order) and every message
// ends with CheckSum. ValidateHeader and ValidateTrailer check for
// exactly this and then strip it, since the fix.h runtime's framing
// layer handles those tags itself (spec.md §4.4); codegen emits no
// table entries for them.
const (
	beginStringTag = "BeginString"
	bodyLengthTag  = "BodyLength"
	msgTypeTag     = "MsgType"
	checkSumTag    = "CheckSum"
)

// stdHeaderPrefix is the fixed prefix ValidateHeader checks for, by
// name AND by tag-record equality (spec.md §4.4:
// "BeginString = Regular(8, \"STRING\")" and so on) — a dictionary
// that mistypes one of these tags' number or dataType must fail
// InvalidHeader rather than pass silently.
var stdHeaderPrefix = [3]struct {
	name     string
	value    int
	dataType string
}{
	{beginStringTag, 8, "STRING"},
	{bodyLengthTag, 9, "LENGTH"},
	{msgTypeTag, 35, "STRING"},
}

// ValidateHeader checks that header begins with exactly the three
// standard entries, in order, and returns whatever follows them (a
// dictionary is free to add custom header fields after MsgType).
func ValidateHeader(header Block) (Block, error) {
	if len(header) < 3 {
		return nil, diag.New(diag.HeaderTooShort, "", "header must declare at least BeginString, BodyLength, MsgType")
	}

	for i, want := range stdHeaderPrefix {
		r, ok := header[i].(*RegularEntry)
		if !ok || r.Name != want.name || r.Tag.Value != want.value || r.Tag.DataType != want.dataType {
			return nil, diag.New(diag.InvalidHeader, header[i].LocalName(), "expected "+want.name+" at position "+strconv.Itoa(i+1))
		}
	}

	return header[3:], nil
}

// ValidateTrailer checks that trailer is non-empty and ends with
// CheckSum = Regular(10, "STRING") (spec.md §4.4), by name AND by
// tag-record equality, and returns whatever precedes it.
func ValidateTrailer(trailer Block) (Block, error) {
	if len(trailer) == 0 {
		return nil, diag.New(diag.InvalidTrailer, "", "trailer must not be empty")
	}

	last := trailer[len(trailer)-1]
	r, ok := last.(*RegularEntry)
	if !ok || r.Name != checkSumTag || r.Tag.Value != 10 || r.Tag.DataType != "STRING" {
		return nil, diag.New(diag.InvalidTrailer, last.LocalName(), "trailer must end with CheckSum")
	}

	return trailer[:len(trailer)-1], nil
}
