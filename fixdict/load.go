// Copyright 2013 Bobby Powers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixdict

import (
	"encoding/xml"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"

	"github.com/goldstar111/FullFIX/internal/diag"
)

// rawField, rawChild, rawComponent, rawMessage, rawBlockHolder, and
// rawDoc mirror
// the teacher's xmile.File/Header/Variable approach of decoding XML
// straight into tag-annotated structs, rather than walking a generic
// element tree by hand. The shapes below are the same
// <fields>/<field>, <messages>/<message>, <component>, <group> layout
// the pack's stephenlclarke-fixdecoder/decoder/fixtaglookup.go decodes
// for the same family of FIX dictionaries.
type rawField struct {
	XMLName xml.Name `xml:"field"`
	Name    string   `xml:"name,attr"`
	Number  string   `xml:"number,attr"`
	Type    string   `xml:"type,attr"`
}

// rawChild is any one of the three block-child shapes (field,
// component, group) recognized inside a component, group, message,
// header, or trailer body. XMLName.Local disambiguates which.
type rawChild struct {
	XMLName  xml.Name
	Name     string     `xml:"name,attr"`
	Children []rawChild `xml:",any"`
}

type rawComponent struct {
	XMLName  xml.Name   `xml:"component"`
	Name     string     `xml:"name,attr"`
	Children []rawChild `xml:",any"`
}

type rawMessage struct {
	XMLName  xml.Name   `xml:"message"`
	Name     string     `xml:"name,attr"`
	MsgType  string     `xml:"msgtype,attr"`
	Children []rawChild `xml:",any"`
}

type rawBlockHolder struct {
	Children []rawChild `xml:",any"`
}

type rawDoc struct {
	// XMLName carries no fixed tag value (unlike rawField/rawComponent/
	// rawMessage) so Decode succeeds regardless of the root element's
	// name; Load itself checks doc.XMLName.Local against "fix" and
	// raises the distinct BadRoot fault, rather than letting
	// encoding/xml reject a wrong root as an opaque XmlParse error.
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Major   string `xml:"major,attr"`
	Minor   string `xml:"minor,attr"`

	Fields struct {
		Field []rawField `xml:"field"`
	} `xml:"fields"`

	Components struct {
		Component []rawComponent `xml:"component"`
	} `xml:"components"`

	Messages struct {
		Message []rawMessage `xml:"message"`
	} `xml:"messages"`

	Header  rawBlockHolder `xml:"header"`
	Trailer rawBlockHolder `xml:"trailer"`
}

// Load parses the input XML document into its raw tree and the FIX
// version triple. It does not resolve or validate anything beyond
// well-formedness, the root element's name, and the presence of its
// required attributes; BuildTagTable, ReadBlock, and Expand do the rest.
func Load(r io.Reader) (*rawDoc, Version, error) {
	dec := xml.NewDecoder(r)
	// FIX dictionaries in the wild are not guaranteed to be UTF-8;
	// sniff and transcode the declared charset the same way
	// fixtaglookup.go's parseDictionary does for this XML family.
	dec.CharsetReader = charset.NewReaderLabel

	var doc rawDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, Version{}, diag.Wrap(err, diag.XMLParse, "")
	}

	if doc.XMLName.Local != "fix" {
		return nil, Version{}, diag.New(diag.BadRoot, doc.XMLName.Local, "root element must be <fix>")
	}
	if doc.Type == "" || doc.Major == "" || doc.Minor == "" {
		return nil, Version{}, diag.New(diag.MissingRootAttr, "fix", "type/major/minor attributes are all required")
	}

	return &doc, Version{Type: doc.Type, Major: doc.Major, Minor: doc.Minor}, nil
}

// parseTagNumber converts a field's number attribute, failing
// InvalidTagNumber (not a generic parse error) so the diagnostic
// names the offending field.
func parseTagNumber(name, number string) (int, error) {
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, diag.New(diag.InvalidTagNumber, name, number)
	}
	return n, nil
}
