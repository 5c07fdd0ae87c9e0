// Package segments provides typed views over the most common purchase
// order and invoice segments. A structured value is built from a raw
// segment after validation, carries optional elements as pointers so that
// "not provided" stays distinct from an empty default, and renders back to
// a raw segment without trailing empty elements.
package segments

import (
	x12 "github.com/edikit/x12"
)

// Structured is a typed segment view. ToSegment and the matching
// constructor form a round trip for any value that validates cleanly.
type Structured interface {
	SegmentID() string
	ToSegment() x12.Segment
	Validate(v x12.Version) x12.ValidationResult
}

var registry = x12.StandardRegistry()

var constructors = map[string]func(x12.Segment, x12.Version) (Structured, error){
	"BEG": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseBEG(seg, v) },
	"CUR": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseCUR(seg, v) },
	"REF": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseREF(seg, v) },
	"DTM": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseDTM(seg, v) },
	"N1":  func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseN1(seg, v) },
	"PO1": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParsePO1(seg, v) },
	"CTT": func(seg x12.Segment, v x12.Version) (Structured, error) { return ParseCTT(seg, v) },
}

// New builds the typed view for a raw segment. Unsupported ids return a
// single invalid_segment_format issue.
func New(seg x12.Segment, v x12.Version) (Structured, error) {
	ctor, ok := constructors[seg.ID]
	if !ok {
		return nil, x12.Issues{{
			Code:         x12.CodeInvalidSegmentFormat,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "no structured type for segment",
		}}
	}
	return ctor(seg, v)
}

// Supported reports whether a structured type exists for the segment id.
func Supported(id string) bool {
	_, ok := constructors[id]
	return ok
}

// checkSegment validates a raw segment before construction. A wrong id or
// element-level errors abort the build; warnings do not.
func checkSegment(seg x12.Segment, wantID string, v x12.Version) error {
	if seg.ID != wantID {
		return x12.Issues{{
			Code:         x12.CodeInvalidSegmentFormat,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "segment id is not " + wantID,
		}}
	}
	def, ok := registry.Lookup(v, wantID)
	if !ok {
		return x12.Issues{{
			Code:         x12.CodeUnsupportedVersion,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "no definition for segment in version " + v.String(),
		}}
	}
	res := x12.ValidateAgainst(seg, def)
	if len(res.Errors) > 0 {
		iss := x12.Issues{{
			Code:         x12.CodeInvalidSegmentFormat,
			Segment:      seg.ID,
			SegmentIndex: -1,
			Message:      "segment does not satisfy its definition",
		}}
		return append(iss, res.Errors...)
	}
	return nil
}

func validate(s Structured, v x12.Version) x12.ValidationResult {
	def, ok := registry.Lookup(v, s.SegmentID())
	if !ok {
		res := x12.ValidationResult{}
		res.Errors = x12.Issues{{
			Code:         x12.CodeUnsupportedVersion,
			Segment:      s.SegmentID(),
			SegmentIndex: -1,
			Message:      "no definition for segment in version " + v.String(),
		}}
		return res
	}
	return x12.ValidateAgainst(s.ToSegment(), def)
}

// optional returns nil for an empty value so that absence survives a round
// trip.
func optional(val string) *string {
	if val == "" {
		return nil
	}
	v := val
	return &v
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// trimTail drops trailing empty elements down to, but never below, the min
// position.
func trimTail(elements []string, min int) []string {
	n := len(elements)
	for n > min && elements[n-1] == "" {
		n--
	}
	return elements[:n]
}
