/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package instance

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

const dateLayout = "2006-01-02"

// Filing is the parsed, filing-scoped output of reading one instance
// document: its contexts, its facts indexed by dimensional signature, the
// reporting entity id, and counters for conditions that are logged but
// not fatal.
type Filing struct {
	FilingName      string
	PublicationTime time.Time
	EntityID        string

	Contexts ContextIndex
	Facts    FactIndex

	SkippedConcepts int
}

// Read streams r once with a standard xml.Decoder token loop — the
// "opaque streaming XML reader producing typed events" external
// collaborator boundary — and builds the ContextIndex and FactIndex for
// one filing. known resolves a qualified concept name to its declared
// type and period, used to recognize fact elements and to tag them;
// elements whose name doesn't resolve are not an error, just counted.
func Read(r io.Reader, filingName string, publicationTime time.Time, known func(name string) (taxonomy.Concept, bool)) (*Filing, error) {
	dec := xml.NewDecoder(r)

	f := &Filing{
		FilingName:      filingName,
		PublicationTime: publicationTime,
		Contexts:        make(ContextIndex),
		Facts:           make(FactIndex),
	}

	docOrder := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading instance document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "context":
			ctx, err := decodeContext(dec, start)
			if err != nil {
				return nil, err
			}
			f.Contexts[ctx.ID] = ctx
			if f.EntityID == "" {
				f.EntityID = ctx.EntityID
			}
			continue
		case "xbrl", "schemaRef", "unit":
			continue
		}

		qname := qualifiedName(start.Name)
		contextRef := attr(start, "contextRef")
		if contextRef == "" {
			// Not a fact element (e.g. a unit's <measure>, a footnote link).
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("skipping element %q: %w", qname, err)
			}
			continue
		}

		concept, ok := known(qname)
		if !ok {
			f.SkippedConcepts++
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("skipping unknown element %q: %w", qname, err)
			}
			continue
		}

		var raw string
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("reading fact %q: %w", qname, err)
		}

		docOrder++
		fact := Fact{
			ConceptName: qname,
			ContextID:   contextRef,
			RawValue:    strings.TrimSpace(raw),
			ConceptType: concept.Type,
			DocOrder:    docOrder,
		}

		ctx, ok := f.Contexts[contextRef]
		if !ok {
			return nil, &MalformedError{ContextID: contextRef, Reason: "fact references unknown context"}
		}
		sig := ctx.Signature()
		f.Facts[sig] = append(f.Facts[sig], fact)
	}

	return f, nil
}

func qualifiedName(n xml.Name) string {
	prefix := prefixForNamespace(n.Space)
	if prefix == "" {
		return n.Local
	}
	return prefix + ":" + n.Local
}

// prefixForNamespace maps a namespace back to the conventional prefix used
// in fact concept names. XBRL-standard namespaces (those containing
// "xbrl.org") and the empty namespace get no prefix; any other namespace
// gets the alias localNamespaceAlias derives from it.
func prefixForNamespace(ns string) string {
	switch {
	case strings.Contains(ns, "xbrl.org"):
		return ""
	case ns == "":
		return ""
	default:
		return localNamespaceAlias(ns)
	}
}

// localNamespaceAlias derives a short alias from a namespace URI's host
// (e.g. "http://ferc.gov/form1" -> "ferc"), the common pattern for
// regulator-specific taxonomy namespaces identified by their registering
// domain.
func localNamespaceAlias(ns string) string {
	u, err := url.Parse(ns)
	if err != nil || u.Host == "" {
		ns = strings.TrimRight(ns, "/")
		if idx := strings.LastIndexByte(ns, '/'); idx >= 0 {
			return ns[idx+1:]
		}
		return ns
	}
	host := strings.TrimPrefix(u.Host, "www.")
	if idx := strings.IndexByte(host, '.'); idx >= 0 {
		return host[:idx]
	}
	return host
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func decodeContext(dec *xml.Decoder, start xml.StartElement) (Context, error) {
	id := attr(start, "id")
	ctx := Context{ID: id}

	var sawEntity, sawPeriod bool

	for {
		tok, err := dec.Token()
		if err != nil {
			return Context{}, fmt.Errorf("reading context %q: %w", id, err)
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "context" {
			break
		}
		inner, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch inner.Name.Local {
		case "entity":
			entityID, err := decodeEntity(dec, inner)
			if err != nil {
				return Context{}, &MalformedError{ContextID: id, Reason: err.Error()}
			}
			ctx.EntityID = entityID
			sawEntity = true
		case "period":
			period, err := decodePeriod(dec, inner)
			if err != nil {
				return Context{}, &MalformedError{ContextID: id, Reason: err.Error()}
			}
			ctx.Period = period
			sawPeriod = true
		case "segment", "scenario":
			dims, err := decodeDimensions(dec, inner)
			if err != nil {
				return Context{}, &MalformedError{ContextID: id, Reason: err.Error()}
			}
			ctx.Dims = append(ctx.Dims, dims...)
		default:
			if err := dec.Skip(); err != nil {
				return Context{}, fmt.Errorf("skipping %q in context %q: %w", inner.Name.Local, id, err)
			}
		}
	}

	if !sawEntity {
		return Context{}, &MalformedError{ContextID: id, Reason: "missing entity"}
	}
	if !sawPeriod {
		return Context{}, &MalformedError{ContextID: id, Reason: "missing period"}
	}
	return ctx, nil
}

func decodeEntity(dec *xml.Decoder, start xml.StartElement) (string, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("reading entity: %w", err)
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "entity" {
			return "", fmt.Errorf("missing identifier")
		}
		inner, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if inner.Name.Local == "identifier" {
			var id string
			if err := dec.DecodeElement(&id, &inner); err != nil {
				return "", fmt.Errorf("reading identifier: %w", err)
			}
			// Drain the rest of <entity> (e.g. <segment>).
			if err := drainUntil(dec, "entity"); err != nil {
				return "", err
			}
			return strings.TrimSpace(id), nil
		}
		if err := dec.Skip(); err != nil {
			return "", err
		}
	}
}

func decodePeriod(dec *xml.Decoder, start xml.StartElement) (Period, error) {
	var instant, startDate, endDate string

	for {
		tok, err := dec.Token()
		if err != nil {
			return Period{}, fmt.Errorf("reading period: %w", err)
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "period" {
			break
		}
		inner, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch inner.Name.Local {
		case "instant":
			if err := dec.DecodeElement(&instant, &inner); err != nil {
				return Period{}, err
			}
		case "startDate":
			if err := dec.DecodeElement(&startDate, &inner); err != nil {
				return Period{}, err
			}
		case "endDate":
			if err := dec.DecodeElement(&endDate, &inner); err != nil {
				return Period{}, err
			}
		default:
			if err := dec.Skip(); err != nil {
				return Period{}, err
			}
		}
	}

	switch {
	case instant != "":
		d, err := time.Parse(dateLayout, strings.TrimSpace(instant))
		if err != nil {
			return Period{}, fmt.Errorf("unparseable instant date %q: %w", instant, err)
		}
		return Period{Type: PeriodInstant, Date: d}, nil
	case startDate != "" && endDate != "":
		s, err := time.Parse(dateLayout, strings.TrimSpace(startDate))
		if err != nil {
			return Period{}, fmt.Errorf("unparseable start date %q: %w", startDate, err)
		}
		e, err := time.Parse(dateLayout, strings.TrimSpace(endDate))
		if err != nil {
			return Period{}, fmt.Errorf("unparseable end date %q: %w", endDate, err)
		}
		if e.Before(s) {
			return Period{}, fmt.Errorf("end date %q before start date %q", endDate, startDate)
		}
		return Period{Type: PeriodDuration, Start: s, End: e}, nil
	default:
		return Period{}, fmt.Errorf("period has neither instant nor start/end dates")
	}
}

func decodeDimensions(dec *xml.Decoder, start xml.StartElement) ([]Dimension, error) {
	var dims []Dimension
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", start.Name.Local, err)
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == start.Name.Local {
			break
		}
		inner, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		axis := attr(inner, "dimension")
		switch inner.Name.Local {
		case "explicitMember":
			var member string
			if err := dec.DecodeElement(&member, &inner); err != nil {
				return nil, err
			}
			dims = append(dims, Dimension{Axis: axis, Value: strings.TrimSpace(member)})
		case "typedMember":
			value, err := decodeTypedMember(dec, inner)
			if err != nil {
				return nil, err
			}
			dims = append(dims, Dimension{Axis: axis, Value: value})
		default:
			if err := dec.Skip(); err != nil {
				return nil, err
			}
		}
	}
	return dims, nil
}

// decodeTypedMember reads the single child element of a typedMember and
// returns its text content; an empty or multi-element body is rejected as
// an unrecognized typed-axis element.
func decodeTypedMember(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var value string
	sawChild := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("reading typedMember: %w", err)
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "typedMember" {
			break
		}
		inner, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if sawChild {
			return "", fmt.Errorf("unrecognized typed-axis element: multiple children in typedMember")
		}
		sawChild = true
		if err := dec.DecodeElement(&value, &inner); err != nil {
			return "", err
		}
	}
	if !sawChild {
		return "", fmt.Errorf("unrecognized typed-axis element: typedMember has no value element")
	}
	return strings.TrimSpace(value), nil
}

func drainUntil(dec *xml.Decoder, name string) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			_ = t
		case xml.EndElement:
			if t.Name.Local == name && depth == 0 {
				return nil
			}
			if depth > 0 {
				depth--
			}
		}
	}
}
