// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegen renders a pruned fixdict.Spec into the two C
// artifacts the runtime library expects: a header declaring the tag
// and message-type enums plus the parser constructor, and a source
// file declaring the tag-info/group-info tables and the message-type
// dispatch trie.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goldstar111/FullFIX/fixdict"
)

// tagEnum renders the sorted tag enum body: one "Tag = value," line
// per tag in T_out, lexicographic by name (spec.md §4.6).
func tagEnum(tags []*fixdict.Tag) string {
	sorted := append([]*fixdict.Tag(nil), tags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString("typedef enum {\n")
	for _, t := range sorted {
		fmt.Fprintf(&b, "\t%s = %d,\n", t.Name, t.Value)
	}
	b.WriteString("} fix_tag;\n")
	return b.String()
}

// msgTypeEnum renders the sorted message-type enum body, one entry
// per message, lexicographic by message name, with the wire msgtype
// string carried in a trailing comment.
func msgTypeEnum(messages []*fixdict.Message) string {
	sorted := append([]*fixdict.Message(nil), messages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString("typedef enum {\n")
	for i, m := range sorted {
		fmt.Fprintf(&b, "\t%s = %d, /* %q */\n", m.Name, i, m.MsgType)
	}
	b.WriteString("} fix_msg_type;\n")
	return b.String()
}
