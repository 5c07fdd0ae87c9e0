package segments

import (
	x12 "github.com/edikit/x12"
)

// CUR names the currency of the transaction. Both elements are mandatory;
// the allowed entity codes vary by version.
type CUR struct {
	EntityIdentifierCode string `json:"entityIdentifierCode"`
	CurrencyCode         string `json:"currencyCode"`
}

// ParseCUR builds a CUR view from a validated raw segment.
func ParseCUR(seg x12.Segment, v x12.Version) (*CUR, error) {
	if err := checkSegment(seg, "CUR", v); err != nil {
		return nil, err
	}
	return &CUR{
		EntityIdentifierCode: seg.Element(1),
		CurrencyCode:         seg.Element(2),
	}, nil
}

func (c *CUR) SegmentID() string { return "CUR" }

func (c *CUR) ToSegment() x12.Segment {
	return x12.NewSegment("CUR", c.EntityIdentifierCode, c.CurrencyCode)
}

func (c *CUR) Validate(v x12.Version) x12.ValidationResult {
	return validate(c, v)
}
