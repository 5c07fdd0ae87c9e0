package segments

import (
	"strconv"

	x12 "github.com/edikit/x12"
)

// CTT carries the transaction totals: a mandatory line item count and an
// optional hash total.
type CTT struct {
	NumberOfLineItems int      `json:"numberOfLineItems"`
	HashTotal         *float64 `json:"hashTotal,omitempty"`
}

// ParseCTT builds a CTT view from a validated raw segment.
func ParseCTT(seg x12.Segment, v x12.Version) (*CTT, error) {
	if err := checkSegment(seg, "CTT", v); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(seg.Element(1))
	if err != nil {
		return nil, x12.Issues{{
			Code:         x12.CodeInvalidSegmentFormat,
			Segment:      "CTT",
			SegmentIndex: -1,
			Element:      1,
			Message:      "line item count is not an integer",
		}}
	}
	return &CTT{
		NumberOfLineItems: n,
		HashTotal:         optionalFloat(seg.Element(2)),
	}, nil
}

func (c *CTT) SegmentID() string { return "CTT" }

func (c *CTT) ToSegment() x12.Segment {
	return x12.NewSegment("CTT", trimTail([]string{
		strconv.Itoa(c.NumberOfLineItems),
		floatStr(c.HashTotal),
	}, 1)...)
}

func (c *CTT) Validate(v x12.Version) x12.ValidationResult {
	return validate(c, v)
}
