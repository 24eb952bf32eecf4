// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goldstar111/FullFIX/fixdict"
)

// tagInfoLine renders one entry's macro invocation (spec.md §4.6): a
// Regular tag becomes REG_TAG_INFO, a Data tag becomes BIN_TAG_INFO
// carrying its paired length tag's value, and a Group reference
// becomes GRP_TAG_INFO naming its NumInGroup size tag.
func tagInfoLine(e fixdict.Entry, index int) string {
	switch v := e.(type) {
	case *fixdict.DataEntry:
		return fmt.Sprintf("BIN_TAG_INFO(%s, %d, %d)", v.Name, v.LengthTagValue, index)
	case *fixdict.GroupRef:
		return fmt.Sprintf("GRP_TAG_INFO(%s, %d)", v.SizeTagName, index)
	default:
		return fmt.Sprintf("REG_TAG_INFO(%s, %d)", e.LocalName(), index)
	}
}

// tagInfoBlock renders the full tag-info macro block for one block of
// entries, offsetting each entry's index by offset (0 for groups and
// the common block, len(common) for message bodies).
func tagInfoBlock(name string, body fixdict.Block, offset int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TAG_INFO_BEGIN(%s)\n", name)
	for i, e := range body {
		fmt.Fprintf(&b, "\t%s\n", tagInfoLine(e, offset+i))
	}
	b.WriteString("TAG_INFO_END\n")
	return b.String()
}

// nestedGroups returns the GroupRef entries directly present in body
// (not transitively), in block order — exactly the set the group-info
// block for this block must list (spec.md §4.6: "lists only the
// nested groups referenced by the current block").
func nestedGroups(body fixdict.Block) []*fixdict.GroupRef {
	var out []*fixdict.GroupRef
	for _, e := range body {
		if g, ok := e.(*fixdict.GroupRef); ok {
			out = append(out, g)
		}
	}
	return out
}

// firstTagIdent derives a block's stable anchor identifier: for a Data
// entry, its paired length tag's value; for a Group entry, its size
// tag's name; otherwise the entry's own local name (spec.md §4.6).
func firstTagIdent(body fixdict.Block) string {
	if len(body) == 0 {
		return "0"
	}
	switch v := body[0].(type) {
	case *fixdict.DataEntry:
		return strconv.Itoa(v.LengthTagValue)
	case *fixdict.GroupRef:
		return v.SizeTagName
	default:
		return body[0].LocalName()
	}
}

// groupInfoBlock renders the group-info macro block for one block of
// entries: a listing of its directly nested groups, or the
// EMPTY_GROUP_INFO form parameterized by block length and the block's
// first tag identifier when it has none.
func groupInfoBlock(name string, body fixdict.Block) string {
	nested := nestedGroups(body)
	if len(nested) == 0 {
		return fmt.Sprintf("EMPTY_GROUP_INFO(%s, %d, %s)\n", name, len(body), firstTagIdent(body))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GROUP_INFO_BEGIN(%s)\n", name)
	for _, g := range nested {
		fmt.Fprintf(&b, "\tGROUP_INFO_ENTRY(%s)\n", g.Canonical)
	}
	b.WriteString("GROUP_INFO_END\n")
	return b.String()
}

// blockTables renders the tag-info block followed by the group-info
// block for one named block, the shape shared by groups, the common
// block, and messages alike.
func blockTables(name string, body fixdict.Block, offset int) string {
	return tagInfoBlock(name, body, offset) + groupInfoBlock(name, body)
}
