// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"strings"
	"testing"

	"github.com/goldstar111/FullFIX/fixdict"
)

func TestTagEnum_SortedLexicographically(t *testing.T) {
	tags := []*fixdict.Tag{
		{Name: "MsgType", Value: 35},
		{Name: "Account", Value: 1},
		{Name: "BeginString", Value: 8},
	}

	got := tagEnum(tags)
	ai := strings.Index(got, "Account")
	bi := strings.Index(got, "BeginString")
	mi := strings.Index(got, "MsgType")
	if !(ai < bi && bi < mi) {
		t.Fatalf("tag enum not lexicographically sorted:\n%s", got)
	}
}

func TestMsgTypeEnum_CarriesMsgTypeComment(t *testing.T) {
	messages := []*fixdict.Message{{Name: "Heartbeat", MsgType: "0"}}
	got := msgTypeEnum(messages)
	if !strings.Contains(got, "Heartbeat") || !strings.Contains(got, `"0"`) {
		t.Fatalf("msgTypeEnum = %s, want Heartbeat entry annotated with msgtype 0", got)
	}
}
