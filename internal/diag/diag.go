// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag holds the error taxonomy and logging plumbing shared by
// fixdict and codegen. It does not know about FIX or C; it only knows
// how to label and wrap a fatal condition so cmd/fixgen can render it
// as a single diagnostic line.
package diag

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Kind enumerates the fatal error taxonomy from the FIX dictionary
// compiler's error handling design. Every Kind is fatal and single-shot;
// none are recovered internally.
type Kind int

const (
	IO Kind = iota
	XMLParse
	BadRoot
	MissingRootAttr
	InvalidTagNumber
	NoFields
	MissingLengthTag
	UnknownNode
	DuplicateTag
	EmptyBlock
	UnknownComponent
	CycleSuspected
	LengthDataMismatch
	UnexpectedDataTag
	InvalidHeader
	HeaderTooShort
	InvalidTrailer
	DuplicateMsgType
	BadOutputDir
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "IO"
	case XMLParse:
		return "XmlParse"
	case BadRoot:
		return "BadRoot"
	case MissingRootAttr:
		return "MissingRootAttr"
	case InvalidTagNumber:
		return "InvalidTagNumber"
	case NoFields:
		return "NoFields"
	case MissingLengthTag:
		return "MissingLengthTag"
	case UnknownNode:
		return "UnknownNode"
	case DuplicateTag:
		return "DuplicateTag"
	case EmptyBlock:
		return "EmptyBlock"
	case UnknownComponent:
		return "UnknownComponent"
	case CycleSuspected:
		return "CycleSuspected"
	case LengthDataMismatch:
		return "LengthDataMismatch"
	case UnexpectedDataTag:
		return "UnexpectedDataTag"
	case InvalidHeader:
		return "InvalidHeader"
	case HeaderTooShort:
		return "HeaderTooShort"
	case InvalidTrailer:
		return "InvalidTrailer"
	case DuplicateMsgType:
		return "DuplicateMsgType"
	case BadOutputDir:
		return "BadOutputDir"
	default:
		return "Unknown"
	}
}

// Fault is a fatal, single-shot compiler error tagged with its Kind and
// the name of the offending entity (a tag, component, group, or path).
type Fault struct {
	Kind   Kind
	Name   string
	cause  error
	detail string
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s", f.Kind)
	if f.Name != "" {
		msg = fmt.Sprintf("%s(%s)", msg, f.Name)
	}
	if f.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, f.detail)
	}
	if f.cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, f.cause)
	}
	return msg
}

func (f *Fault) Unwrap() error { return f.cause }

// New creates a Fault of the given Kind naming the offending entity,
// with an optional human-readable detail.
func New(kind Kind, name, detail string) error {
	return &Fault{Kind: kind, Name: name, detail: detail}
}

// Wrap attaches a Kind and name to an underlying error (typically from
// encoding/xml or the filesystem), preserving it as the Fault's cause
// with a stack recorded by github.com/pkg/errors. Fault.Error prints
// only the cause's message; the stack is printed by formatting the
// unwrapped cause with %+v.
func Wrap(cause error, kind Kind, name string) error {
	if cause == nil {
		return nil
	}
	return &Fault{Kind: kind, Name: name, cause: errors.WithStack(cause)}
}

// As reports whether err is a *Fault of the given Kind.
func As(err error, kind Kind) bool {
	var f *Fault
	if !errors.As(err, &f) {
		return false
	}
	return f.Kind == kind
}

// NopLogger returns a logrus.Logger with output fully discarded, for
// callers that don't want progress tracing; fixdict.Compile uses it in
// place of a nil logger.
func NopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discard{})
	return l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
