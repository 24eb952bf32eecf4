// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"strings"

	"github.com/goldstar111/FullFIX/internal/diag"
)

// groupName computes a group's canonical emission-time identifier:
// the slash-free path of enclosing group/message names joined by
// "_", followed by the NumInGroup tag's name (spec.md §3, Canonical
// names). path does not include sizeTagName itself.
func groupName(path []string, sizeTagName string) string {
	parts := append(append([]string{}, path...), sizeTagName)
	return strings.Join(parts, "_")
}

// ReadBlock converts an XML block's field/component/group children
// into an ordered Block. path is the enclosing group/message name
// chain, used both for canonical group naming and for error messages.
// Components are left unresolved (ComponentRef); Expand resolves
// them. Groups are read recursively right away, since a group's body
// is syntactically nested in this same element.
func ReadBlock(children []rawChild, path []string, table TagTable) (Block, error) {
	if len(children) == 0 {
		return nil, diag.New(diag.EmptyBlock, strings.Join(path, "/"), "block has no entries")
	}

	seen := make(map[string]bool, len(children))
	block := make(Block, 0, len(children))

	for _, c := range children {
		if c.Name == "" {
			return nil, diag.New(diag.UnknownNode, c.XMLName.Local, "child is missing a name attribute")
		}
		if seen[c.Name] {
			return nil, diag.New(diag.DuplicateTag, strings.Join(path, "/"), c.Name)
		}
		seen[c.Name] = true

		var entry Entry
		switch c.XMLName.Local {
		case "field":
			t, ok := table[c.Name]
			if !ok {
				return nil, diag.New(diag.UnknownNode, c.Name, "field does not exist in the tag table")
			}
			entry = tagEntry(t)
		case "component":
			entry = &ComponentRef{Name: c.Name}
		case "group":
			sizeTag, ok := table[c.Name]
			if !ok || sizeTag.DataType != numInGroupType {
				return nil, diag.New(diag.UnknownNode, c.Name, "group size tag must exist and be typed NUMINGROUP")
			}
			nested := append(append([]string{}, path...), c.Name)
			body, err := ReadBlock(c.Children, nested, table)
			if err != nil {
				return nil, err
			}
			entry = &GroupRef{
				SizeTagName: c.Name,
				Canonical:   groupName(path, c.Name),
				Body:        body,
			}
		default:
			return nil, diag.New(diag.UnknownNode, c.XMLName.Local, "expected field, component, or group")
		}

		block = append(block, entry)
	}

	return block, nil
}

// tagEntry wraps a resolved *Tag in the Entry shape matching its
// current TagKind. DataLength tags surface as DataLengthEntry even
// though Expand usually folds them away before a caller sees them;
// ReadBlock itself doesn't run the pairing state machine.
func tagEntry(t *Tag) Entry {
	switch t.Kind {
	case TagData:
		return &DataEntry{Name: t.Name, Tag: t, LengthTagValue: t.LengthTagValue}
	case TagDataLength:
		return &DataLengthEntry{Name: t.Name, Tag: t}
	default:
		return &RegularEntry{Name: t.Name, Tag: t}
	}
}
