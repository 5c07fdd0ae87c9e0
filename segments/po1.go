package segments

import (
	"strconv"

	x12 "github.com/edikit/x12"
)

// ProductID is one qualifier/id pair from the repeating tail of a PO1.
type ProductID struct {
	Qualifier string `json:"qualifier"`
	ID        string `json:"id"`
}

// PO1 is a purchase order line item. Quantity and unit price are decimal
// strings on the wire; they parse to *float64 so absence stays observable.
type PO1 struct {
	AssignedID       *string     `json:"assignedId,omitempty"`
	Quantity         *float64    `json:"quantity,omitempty"`
	UnitOfMeasure    *string     `json:"unitOfMeasure,omitempty"`
	UnitPrice        *float64    `json:"unitPrice,omitempty"`
	BasisOfUnitPrice *string     `json:"basisOfUnitPrice,omitempty"`
	ProductIDs       []ProductID `json:"productIds,omitempty"`
}

// ParsePO1 builds a PO1 view from a validated raw segment. Qualifier/id
// pairs start at position 6 and are collected while both halves are
// present.
func ParsePO1(seg x12.Segment, v x12.Version) (*PO1, error) {
	if err := checkSegment(seg, "PO1", v); err != nil {
		return nil, err
	}
	p := &PO1{
		AssignedID:       optional(seg.Element(1)),
		Quantity:         optionalFloat(seg.Element(2)),
		UnitOfMeasure:    optional(seg.Element(3)),
		UnitPrice:        optionalFloat(seg.Element(4)),
		BasisOfUnitPrice: optional(seg.Element(5)),
	}
	for pos := 6; seg.Has(pos) && seg.Has(pos+1); pos += 2 {
		p.ProductIDs = append(p.ProductIDs, ProductID{
			Qualifier: seg.Element(pos),
			ID:        seg.Element(pos + 1),
		})
	}
	return p, nil
}

func (p *PO1) SegmentID() string { return "PO1" }

func (p *PO1) ToSegment() x12.Segment {
	elements := []string{
		str(p.AssignedID),
		floatStr(p.Quantity),
		str(p.UnitOfMeasure),
		floatStr(p.UnitPrice),
		str(p.BasisOfUnitPrice),
	}
	for _, pid := range p.ProductIDs {
		elements = append(elements, pid.Qualifier, pid.ID)
	}
	return x12.NewSegment("PO1", trimTail(elements, 0)...)
}

func (p *PO1) Validate(v x12.Version) x12.ValidationResult {
	return validate(p, v)
}

func optionalFloat(val string) *float64 {
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &f
}

func floatStr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
