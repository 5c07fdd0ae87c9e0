package schema

import (
	x12 "github.com/edikit/x12"
)

// CustomizationKind is the operation a trading-partner customization
// performs on its target.
type CustomizationKind int

const (
	MakeMandatory CustomizationKind = iota
	MakeOptional
	RestrictCodes
	ExtendCodes
	ChangeLengthBounds
)

// Customization is one named patch in a trading-partner agreement. Element
// 0 targets the segment itself (requirement changes only); a positive
// Element targets that 1-based position.
type Customization struct {
	SegmentID   string
	Element     int
	Kind        CustomizationKind
	Codes       []string
	MinLength   *int
	MaxLength   *int
	Description string
}

// Agreement is an ordered list of customizations for one trading partner.
// Customizations apply in list order; a later one may further narrow an
// earlier one's effect on the same target.
type Agreement struct {
	PartnerID      string
	Name           string
	Customizations []Customization
}

// applyAgreement materializes a derived schema: a deep copy of the base
// with every customization applied in order. The base is never touched, so
// concurrent lookups of the base and of other partners stay safe. Code-set
// operations resolve the current effective set against the registry's base
// definition so that restrict yields a subset and extend a superset.
func applyAgreement(base TransactionSetSchema, ag Agreement, reg *x12.Registry) TransactionSetSchema {
	out := base.clone()
	for _, c := range ag.Customizations {
		for i := range out.Segments {
			ss := &out.Segments[i]
			if ss.ID != c.SegmentID {
				continue
			}
			applyCustomization(ss, c, out.Version, reg)
		}
	}
	return out
}

func applyCustomization(ss *SegmentSchema, c Customization, v x12.Version, reg *x12.Registry) {
	if c.Element == 0 {
		switch c.Kind {
		case MakeMandatory:
			ss.Requirement = x12.Mandatory
		case MakeOptional:
			ss.Requirement = x12.Optional
		}
		return
	}

	if ss.Elements == nil {
		ss.Elements = map[int]ElementPatch{}
	}
	patch := ss.Elements[c.Element]

	switch c.Kind {
	case MakeMandatory:
		req := x12.Mandatory
		patch.Requirement = &req
	case MakeOptional:
		req := x12.Optional
		patch.Requirement = &req
	case RestrictCodes:
		effective := effectiveCodes(ss.ID, c.Element, patch, v, reg)
		if effective == nil {
			// Base is unrestricted; the customization's list becomes the set.
			patch.Codes = append([]string(nil), c.Codes...)
		} else {
			patch.Codes = intersect(effective, c.Codes)
		}
		patch.CodesSet = true
	case ExtendCodes:
		effective := effectiveCodes(ss.ID, c.Element, patch, v, reg)
		if effective != nil {
			patch.Codes = union(effective, c.Codes)
			patch.CodesSet = true
		}
		// An unrestricted base already allows everything; nothing to extend.
	case ChangeLengthBounds:
		if c.MinLength != nil {
			m := *c.MinLength
			patch.MinLength = &m
		}
		if c.MaxLength != nil {
			m := *c.MaxLength
			patch.MaxLength = &m
		}
	}
	ss.Elements[c.Element] = patch
}

// effectiveCodes is the code set in force before this customization: a
// prior patch in the same agreement, else the registry's base definition.
func effectiveCodes(segID string, pos int, patch ElementPatch, v x12.Version, reg *x12.Registry) []string {
	if patch.CodesSet {
		return patch.Codes
	}
	def, ok := reg.Lookup(v, segID)
	if !ok || pos > len(def.Elements) {
		return nil
	}
	return def.Elements[pos-1].ValidCodes
}

// patchedDefinition applies a segment schema's element patches to a copy of
// the registry definition.
func patchedDefinition(def x12.SegmentDefinition, ss *SegmentSchema) x12.SegmentDefinition {
	if ss == nil || len(ss.Elements) == 0 {
		return def
	}
	out := def
	out.Elements = make([]x12.ElementDefinition, len(def.Elements))
	copy(out.Elements, def.Elements)
	for pos, patch := range ss.Elements {
		if pos < 1 || pos > len(out.Elements) {
			continue
		}
		ed := &out.Elements[pos-1]
		if patch.Requirement != nil {
			ed.Requirement = *patch.Requirement
		}
		if patch.CodesSet {
			ed.ValidCodes = patch.Codes
		}
		if patch.MinLength != nil {
			ed.MinLength = *patch.MinLength
		}
		if patch.MaxLength != nil {
			ed.MaxLength = *patch.MaxLength
		}
	}
	return out
}

func intersect(a, b []string) []string {
	out := []string{}
	for _, v := range a {
		for _, w := range b {
			if v == w {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, w := range b {
		found := false
		for _, v := range a {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			out = append(out, w)
		}
	}
	return out
}
