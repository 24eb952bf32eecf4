// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import "github.com/goldstar111/FullFIX/internal/diag"

const maxExpansionDepth = 10

// expander carries the two ambient structures spec.md §4.3 describes:
// the read-only component table and the read-write group memoization
// map, plus the stricter cycle guard DESIGN NOTES §9 recommends (a
// visited set along the current expansion path) alongside the
// depth-10 secondary guard the original behavior specifies.
type expander struct {
	components map[string]Block
	groups     map[string]*GroupRef
	visited    map[string]bool
}

// Expand walks a raw block (straight from ReadBlock, still containing
// ComponentRef placeholders and unexpanded GroupRef bodies) and
// produces a fully resolved Block: components spliced in place,
// groups expanded once and memoized by canonical name, and the
// Data/Length pairing state machine enforced throughout.
//
// components is the Component Table (name -> raw block, built once).
// groups accumulates every distinct group expanded so far, keyed by
// canonical name, and is shared across the header, trailer, and every
// message's call to Expand so a group referenced from two messages is
// only expanded once.
func Expand(components map[string]Block, groups map[string]*GroupRef, block Block) (Block, error) {
	ex := &expander{components: components, groups: groups, visited: make(map[string]bool)}
	return ex.block(block, 0)
}

func (ex *expander) block(block Block, depth int) (Block, error) {
	if depth > maxExpansionDepth {
		return nil, diag.New(diag.CycleSuspected, "", "expansion exceeded maximum depth")
	}

	var pending *DataLengthEntry
	out := make(Block, 0, len(block))

	for _, e := range block {
		switch v := e.(type) {
		case *RegularEntry:
			if pending != nil {
				return nil, diag.New(diag.LengthDataMismatch, pending.Name, "expected a following Data tag")
			}
			out = append(out, v)

		case *DataEntry:
			if pending == nil {
				return nil, diag.New(diag.UnexpectedDataTag, v.Name, "Data tag with no preceding Length tag")
			}
			if pending.Tag.DataTagName != v.Name {
				return nil, diag.New(diag.LengthDataMismatch, v.Name, "does not match the pending Length tag's declared Data tag")
			}
			out = append(out, v)
			pending = nil

		case *DataLengthEntry:
			if pending != nil {
				return nil, diag.New(diag.LengthDataMismatch, pending.Name, "two Length tags in a row with no Data tag between them")
			}
			pending = v // not emitted yet

		case *ComponentRef:
			if pending != nil {
				return nil, diag.New(diag.LengthDataMismatch, pending.Name, "a pending Length tag cannot cross a component boundary")
			}
			spliced, err := ex.component(v.Name, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)

		case *GroupRef:
			if pending != nil {
				return nil, diag.New(diag.LengthDataMismatch, pending.Name, "a pending Length tag cannot cross a group boundary")
			}
			g, err := ex.group(v, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, g)

		default:
			return nil, diag.New(diag.UnknownNode, "", "unrecognized block entry")
		}
	}

	// Terminal: a still-pending Length tag is emitted as an ordinary
	// entry rather than rejected. This preserves the original
	// generator's documented-but-unexplained behavior (spec.md §9 Open
	// Questions): intent is unclear, but round-tripping depends on it.
	if pending != nil {
		out = append(out, pending)
	}

	return out, nil
}

func (ex *expander) component(name string, depth int) (Block, error) {
	if ex.visited[name] {
		return nil, diag.New(diag.CycleSuspected, name, "component expansion cycle")
	}
	body, ok := ex.components[name]
	if !ok {
		return nil, diag.New(diag.UnknownComponent, name, "")
	}

	ex.visited[name] = true
	spliced, err := ex.block(body, depth+1)
	delete(ex.visited, name)
	if err != nil {
		return nil, err
	}
	return spliced, nil
}

func (ex *expander) group(g *GroupRef, depth int) (*GroupRef, error) {
	if existing, ok := ex.groups[g.Canonical]; ok {
		return existing, nil
	}
	if ex.visited[g.Canonical] {
		return nil, diag.New(diag.CycleSuspected, g.Canonical, "group expansion cycle")
	}

	ex.visited[g.Canonical] = true
	body, err := ex.block(g.Body, depth+1)
	delete(ex.visited, g.Canonical)
	if err != nil {
		return nil, err
	}

	expanded := &GroupRef{SizeTagName: g.SizeTagName, Canonical: g.Canonical, Body: body}
	ex.groups[g.Canonical] = expanded
	return expanded, nil
}
