// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goldstar111/FullFIX/fixdict"
	"github.com/goldstar111/FullFIX/internal/diag"
)

// soh is the FIX field terminator (0x01), reused here as the trie's
// end-of-string sentinel edge (spec.md §4.6, §GLOSSARY).
const soh = 0x01

// trieNode is one state in the message-type dispatch trie: a plain
// nested byte -> child mapping with a sentinel edge (soh) standing in
// for end-of-string, per DESIGN NOTES §9's "plain nested mapping with
// a sentinel entry" recommendation. msgName is set only on a node
// reached via a soh edge.
type trieNode struct {
	children map[byte]*trieNode
	msgName  string
}

func newTrieNode() *trieNode { return &trieNode{children: make(map[byte]*trieNode)} }

// buildTrie inserts every message's msgtype string, failing
// DuplicateMsgType the instant two messages claim the same string
// (spec.md invariant 5, detected during trie construction).
func buildTrie(messages []*fixdict.Message) (*trieNode, error) {
	root := newTrieNode()
	for _, m := range messages {
		cur := root
		for i := 0; i < len(m.MsgType); i++ {
			c := m.MsgType[i]
			child, ok := cur.children[c]
			if !ok {
				child = newTrieNode()
				cur.children[c] = child
			}
			cur = child
		}
		if existing, ok := cur.children[soh]; ok {
			return nil, diag.New(diag.DuplicateMsgType, m.Name, fmt.Sprintf("msgtype %q already claimed by %s", m.MsgType, existing.msgName))
		}
		cur.children[soh] = &trieNode{children: make(map[byte]*trieNode), msgName: m.Name}
	}
	return root, nil
}

// pureLeaf reports whether n's only transition is end-of-string, so a
// caller one level up can emit it as an inline
// RETURN_MESSAGE_OR_NULL(name) case instead of queuing a switch for it.
func (n *trieNode) pureLeaf() (name string, ok bool) {
	if len(n.children) != 1 {
		return "", false
	}
	child, has := n.children[soh]
	if !has {
		return "", false
	}
	return child.msgName, true
}

// pendingSwitch is a queued subtrie awaiting emission, labeled by the
// byte prefix that reaches it from the root.
type pendingSwitch struct {
	label string
	node  *trieNode
}

// emitDispatchTrie renders the full cascaded-switch dispatch routine
// body (spec.md §4.6, Message-type dispatch). The root switch is
// emitted unlabeled; every subsequent switch is emitted under a
// "_label:" line as its queued subtrie is popped, LIFO, from the back
// of the queue — a depth-first listing that keeps related labels
// clustered, per DESIGN NOTES §9's queue-discipline note.
func emitDispatchTrie(messages []*fixdict.Message) (string, error) {
	root, err := buildTrie(messages)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	queue := []pendingSwitch{{label: "", node: root}}

	for len(queue) > 0 {
		last := len(queue) - 1
		cur := queue[last]
		queue = queue[:last]

		if cur.label != "" {
			fmt.Fprintf(&b, "_%s:\n", cur.label)
		}
		b.WriteString("switch (*p++) {\n")

		for _, c := range sortedKeys(cur.node.children) {
			child := cur.node.children[c]
			switch {
			case c == soh:
				fmt.Fprintf(&b, "case %s: RETURN_MESSAGE(%s);\n", "SOH", child.msgName)
			default:
				if name, ok := child.pureLeaf(); ok {
					fmt.Fprintf(&b, "case '%c': RETURN_MESSAGE_OR_NULL(%s);\n", c, name)
					continue
				}
				label := cur.label + string(c)
				fmt.Fprintf(&b, "case '%c': goto _%s;\n", c, label)
				queue = append(queue, pendingSwitch{label: label, node: child})
			}
		}

		b.WriteString("default: return NULL;\n")
		b.WriteString("}\n")
	}

	return b.String(), nil
}

func sortedKeys(m map[byte]*trieNode) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
