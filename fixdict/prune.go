// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

// stdHeaderTrailerTags are stripped from every common block by
// ValidateHeader/ValidateTrailer but must still surface in the tag
// enum (spec.md §9 Open Questions: consumers of the generated header
// may expect those symbols to exist even though the runtime framing
// layer owns them on the wire).
var stdHeaderTrailerTags = [...]string{beginStringTag, bodyLengthTag, msgTypeTag, checkSumTag}

// pruner accumulates the two append-only ordered collections spec.md
// §4.5 describes: every tag reachable from the common block or any
// message (T_out), and every group in dependency order, nested before
// enclosing (G_out).
type pruner struct {
	table   TagTable
	byValue map[int]*Tag

	tagSeen map[string]bool
	tags    []*Tag

	groupSeen map[string]bool
	groups    []*GroupRef
}

// Prune walks the expanded common block and every expanded message
// body, producing the tag and group collections codegen emits from.
// table is the frozen tag table Expand's input blocks were built
// against; it resolves a Data tag's paired DataLength tag (by numeric
// value) and a group's NumInGroup size tag (by name) back into *Tag
// values.
func Prune(table TagTable, common Block, messages []*Message) ([]*Tag, []*GroupRef, error) {
	p := &pruner{
		table:     table,
		byValue:   make(map[int]*Tag, len(table)),
		tagSeen:   make(map[string]bool, len(table)),
		groupSeen: make(map[string]bool),
	}
	for _, t := range table {
		p.byValue[t.Value] = t
	}

	for _, name := range stdHeaderTrailerTags {
		if t, ok := table[name]; ok {
			p.addTag(t)
		}
	}

	if err := p.walk(common); err != nil {
		return nil, nil, err
	}
	for _, m := range messages {
		if err := p.walk(m.Body); err != nil {
			return nil, nil, err
		}
	}

	return p.tags, p.groups, nil
}

func (p *pruner) walk(b Block) error {
	for _, e := range b {
		switch v := e.(type) {
		case *RegularEntry:
			p.addTag(v.Tag)

		case *DataEntry:
			p.addTag(v.Tag)
			if length, ok := p.byValue[v.LengthTagValue]; ok {
				p.addTag(length)
			}

		case *DataLengthEntry:
			p.addTag(v.Tag)

		case *GroupRef:
			if sizeTag, ok := p.table[v.SizeTagName]; ok {
				p.addTag(sizeTag)
			}
			if !p.groupSeen[v.Canonical] {
				p.groupSeen[v.Canonical] = true
				if err := p.walk(v.Body); err != nil {
					return err
				}
				p.groups = append(p.groups, v)
			}
		}
	}
	return nil
}

func (p *pruner) addTag(t *Tag) {
	if t == nil || p.tagSeen[t.Name] {
		return
	}
	p.tagSeen[t.Name] = true
	p.tags = append(p.tags, t)
}
