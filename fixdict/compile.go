// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/goldstar111/FullFIX/internal/diag"
)

// Compile runs the full pipeline from an input FIX XML dictionary to
// a pruned, ordered Spec ready for codegen: Load, BuildTagTable,
// BuildComponentTable, read and Expand the header/trailer/message
// blocks, validate and strip the standard header/trailer, then Prune.
//
// log receives debug-level progress notes at each stage, the same
// way the teacher's cmd/xmileconv logs conversion steps; a nil log
// is replaced with a discarding logger so Compile is safely callable
// from tests without any logging setup.
//
// Compile does not set Spec.Groups ordering beyond what Prune derives;
// the output's base name and C symbol prefix are derived separately
// by the caller (cmd/fixgen) and passed straight to codegen.Generate.
func Compile(r io.Reader, log *logrus.Logger) (*Spec, error) {
	if log == nil {
		log = diag.NopLogger()
	}

	doc, version, err := Load(r)
	if err != nil {
		return nil, err
	}
	log.WithField("version", version.String()).Debug("loaded dictionary")

	table, err := BuildTagTable(doc)
	if err != nil {
		return nil, err
	}
	log.WithField("fields", len(table)).Debug("built tag table")

	components, err := BuildComponentTable(doc, table)
	if err != nil {
		return nil, err
	}
	log.WithField("components", len(components)).Debug("built component table")

	groups := make(map[string]*GroupRef)

	common, err := compileCommon(doc, table, components, groups)
	if err != nil {
		return nil, err
	}

	messages := make([]*Message, 0, len(doc.Messages.Message))
	for _, m := range doc.Messages.Message {
		raw, err := ReadBlock(m.Children, []string{m.Name}, table)
		if err != nil {
			return nil, err
		}
		expanded, err := Expand(components, groups, raw)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &Message{Name: m.Name, MsgType: m.MsgType, Body: expanded})
	}
	log.WithField("messages", len(messages)).Debug("expanded messages")

	tags, orderedGroups, err := Prune(table, common, messages)
	if err != nil {
		return nil, err
	}
	log.WithField("tags", len(tags)).WithField("groups", len(orderedGroups)).Debug("pruned reachable tags and groups")

	return &Spec{
		Version:  version,
		Tags:     tags,
		Groups:   orderedGroups,
		Common:   common,
		Messages: messages,
	}, nil
}

// compileCommon reads, expands, validates, and strips the header and
// trailer, returning their concatenation (spec.md §3, Common Block).
func compileCommon(doc *rawDoc, table TagTable, components map[string]Block, groups map[string]*GroupRef) (Block, error) {
	rawHeader, err := ReadBlock(doc.Header.Children, []string{"Header"}, table)
	if err != nil {
		return nil, err
	}
	rawTrailer, err := ReadBlock(doc.Trailer.Children, []string{"Trailer"}, table)
	if err != nil {
		return nil, err
	}

	header, err := Expand(components, groups, rawHeader)
	if err != nil {
		return nil, err
	}
	trailer, err := Expand(components, groups, rawTrailer)
	if err != nil {
		return nil, err
	}

	header, err = ValidateHeader(header)
	if err != nil {
		return nil, err
	}
	trailer, err = ValidateTrailer(trailer)
	if err != nil {
		return nil, err
	}

	common := make(Block, 0, len(header)+len(trailer))
	common = append(common, header...)
	common = append(common, trailer...)
	return common, nil
}
