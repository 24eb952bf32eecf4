// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"github.com/goldstar111/FullFIX/fixdict"
)

// renderHeader produces the header artifact: an auto-generated
// banner, the fix.h include, a C-linkage guard, the sorted tag enum,
// the sorted message-type enum, and the parser constructor
// declaration (spec.md §6, Output header shape).
func renderHeader(spec *fixdict.Spec, baseName, prefix string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "/*\n * Generated by fixgen from %s. Do not edit by hand.\n * FIX version: %s\n */\n\n", baseName, spec.Version.String())
	b.WriteString("#ifndef ")
	guard := strings.ToUpper(prefix) + "_H"
	b.WriteString(guard)
	b.WriteString("\n#define ")
	b.WriteString(guard)
	b.WriteString("\n\n#include \"fix.h\"\n\n")
	b.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")

	b.WriteString(tagEnum(spec.Tags))
	b.WriteString("\n")
	b.WriteString(msgTypeEnum(spec.Messages))
	b.WriteString("\n")

	fmt.Fprintf(&b, "fix_parser* create_%s_parser();\n\n", prefix)

	b.WriteString("#ifdef __cplusplus\n}\n#endif\n\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", guard)

	return b.String()
}
