package segments

import (
	x12 "github.com/edikit/x12"
)

// N1 identifies a party. The id code qualifier and id code travel together
// in practice but the standard keeps both optional at the element level.
type N1 struct {
	EntityIdentifierCode string  `json:"entityIdentifierCode"`
	Name                 *string `json:"name,omitempty"`
	IDCodeQualifier      *string `json:"idCodeQualifier,omitempty"`
	IDCode               *string `json:"idCode,omitempty"`
}

// ParseN1 builds an N1 view from a validated raw segment.
func ParseN1(seg x12.Segment, v x12.Version) (*N1, error) {
	if err := checkSegment(seg, "N1", v); err != nil {
		return nil, err
	}
	return &N1{
		EntityIdentifierCode: seg.Element(1),
		Name:                 optional(seg.Element(2)),
		IDCodeQualifier:      optional(seg.Element(3)),
		IDCode:               optional(seg.Element(4)),
	}, nil
}

func (n *N1) SegmentID() string { return "N1" }

func (n *N1) ToSegment() x12.Segment {
	return x12.NewSegment("N1", trimTail([]string{
		n.EntityIdentifierCode,
		str(n.Name),
		str(n.IDCodeQualifier),
		str(n.IDCode),
	}, 1)...)
}

func (n *N1) Validate(v x12.Version) x12.ValidationResult {
	return validate(n, v)
}
