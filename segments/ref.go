package segments

import (
	x12 "github.com/edikit/x12"
)

// REF carries one piece of identifying information under a qualifier.
type REF struct {
	Qualifier   string  `json:"qualifier"`
	ReferenceID *string `json:"referenceId,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ParseREF builds a REF view from a validated raw segment.
func ParseREF(seg x12.Segment, v x12.Version) (*REF, error) {
	if err := checkSegment(seg, "REF", v); err != nil {
		return nil, err
	}
	return &REF{
		Qualifier:   seg.Element(1),
		ReferenceID: optional(seg.Element(2)),
		Description: optional(seg.Element(3)),
	}, nil
}

func (r *REF) SegmentID() string { return "REF" }

func (r *REF) ToSegment() x12.Segment {
	return x12.NewSegment("REF", trimTail([]string{
		r.Qualifier,
		str(r.ReferenceID),
		str(r.Description),
	}, 1)...)
}

func (r *REF) Validate(v x12.Version) x12.ValidationResult {
	return validate(r, v)
}
