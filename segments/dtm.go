package segments

import (
	x12 "github.com/edikit/x12"
)

// DTM is a qualified date and/or time reference.
type DTM struct {
	Qualifier string  `json:"qualifier"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
}

// ParseDTM builds a DTM view from a validated raw segment.
func ParseDTM(seg x12.Segment, v x12.Version) (*DTM, error) {
	if err := checkSegment(seg, "DTM", v); err != nil {
		return nil, err
	}
	return &DTM{
		Qualifier: seg.Element(1),
		Date:      optional(seg.Element(2)),
		Time:      optional(seg.Element(3)),
	}, nil
}

func (d *DTM) SegmentID() string { return "DTM" }

func (d *DTM) ToSegment() x12.Segment {
	return x12.NewSegment("DTM", trimTail([]string{
		d.Qualifier,
		str(d.Date),
		str(d.Time),
	}, 1)...)
}

func (d *DTM) Validate(v x12.Version) x12.ValidationResult {
	return validate(d, v)
}
