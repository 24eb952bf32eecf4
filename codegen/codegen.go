// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"

	"github.com/goldstar111/FullFIX/fixdict"
)

// Options controls the two optional knobs Generate exposes beyond the
// Spec itself: the output file's base name and C symbol prefix
// (derived by the caller from the input path, spec.md §6), and an
// optional override of the source template text.
type Options struct {
	BaseName string
	Prefix   string

	// Template, if non-empty, replaces the embedded default source
	// template. cmd/fixgen does not set it and reads no template file,
	// so the CLI always renders the embedded default.
	Template string
}

// Generate renders the header and source artifacts for spec. It does
// not touch the filesystem; cmd/fixgen writes the returned strings to
// <header-dir>/<base>.h and <source-dir>/<base>.c.
func Generate(spec *fixdict.Spec, opts Options) (header, source string, err error) {
	groups := renderGroupTables(spec)
	common := blockTables("common", spec.Common, 0)
	messages := renderMessageTables(spec)

	dispatch, err := emitDispatchTrie(spec.Messages)
	if err != nil {
		return "", "", err
	}

	tmplText := opts.Template
	if tmplText == "" {
		tmplText = defaultSourceTemplate
	}

	source, err = renderSource(tmplText, sourceSlots{
		BaseName:    opts.BaseName,
		Prefix:      opts.Prefix,
		FixVersion:  spec.Version.String(),
		Groups:      groups,
		Common:      common,
		Messages:    messages,
		ParserTable: dispatch,
	})
	if err != nil {
		return "", "", err
	}

	header = renderHeader(spec, opts.BaseName, opts.Prefix)
	return header, source, nil
}

func renderGroupTables(spec *fixdict.Spec) string {
	var b strings.Builder
	for _, g := range spec.Groups {
		b.WriteString(blockTables(g.Canonical, g.Body, 0))
	}
	return b.String()
}

func renderMessageTables(spec *fixdict.Spec) string {
	offset := len(spec.Common)
	var b strings.Builder
	for _, m := range spec.Messages {
		b.WriteString(blockTables(m.Name, m.Body, offset))
	}
	return b.String()
}
