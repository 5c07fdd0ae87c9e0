package segments

import (
	x12 "github.com/edikit/x12"
)

// BEG is the beginning segment of a purchase order. ReleaseNumber is the
// only optional element; the date is CCYYMMDD.
type BEG struct {
	TransactionSetPurposeCode string  `json:"transactionSetPurposeCode"`
	PurchaseOrderTypeCode     string  `json:"purchaseOrderTypeCode"`
	PurchaseOrderNumber       string  `json:"purchaseOrderNumber"`
	ReleaseNumber             *string `json:"releaseNumber,omitempty"`
	Date                      string  `json:"date"`
}

// ParseBEG builds a BEG view from a validated raw segment.
func ParseBEG(seg x12.Segment, v x12.Version) (*BEG, error) {
	if err := checkSegment(seg, "BEG", v); err != nil {
		return nil, err
	}
	return &BEG{
		TransactionSetPurposeCode: seg.Element(1),
		PurchaseOrderTypeCode:     seg.Element(2),
		PurchaseOrderNumber:       seg.Element(3),
		ReleaseNumber:             optional(seg.Element(4)),
		Date:                      seg.Element(5),
	}, nil
}

func (b *BEG) SegmentID() string { return "BEG" }

// ToSegment renders the raw segment. The date at position 5 is mandatory,
// so a nil release number stays as an embedded empty element.
func (b *BEG) ToSegment() x12.Segment {
	return x12.NewSegment("BEG", trimTail([]string{
		b.TransactionSetPurposeCode,
		b.PurchaseOrderTypeCode,
		b.PurchaseOrderNumber,
		str(b.ReleaseNumber),
		b.Date,
	}, 5)...)
}

func (b *BEG) Validate(v x12.Version) x12.ValidationResult {
	return validate(b, v)
}
