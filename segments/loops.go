package segments

import (
	x12 "github.com/edikit/x12"
)

// PartyLoop is one N1 group: the party itself plus the name, address,
// geographic and contact segments that belong to it. Segment kinds without
// a structured type stay raw.
type PartyLoop struct {
	Party           *N1           `json:"party"`
	AdditionalNames []x12.Segment `json:"additionalNames,omitempty"` // N2
	AddressLines    []x12.Segment `json:"addressLines,omitempty"`    // N3
	Geographic      *x12.Segment  `json:"geographic,omitempty"`      // N4
	Contacts        []x12.Segment `json:"contacts,omitempty"`        // PER
}

// EntityIdentifierCode returns the loop's N1 entity code.
func (p PartyLoop) EntityIdentifierCode() string {
	return p.Party.EntityIdentifierCode
}

// LineItemLoop is one PO1 group: the line item plus its descriptions,
// allowance/charge and date segments.
type LineItemLoop struct {
	Item         *PO1          `json:"item"`
	Descriptions []x12.Segment `json:"descriptions,omitempty"` // PID
	Charges      []x12.Segment `json:"charges,omitempty"`      // SAC, TD5
	Dates        []*DTM        `json:"dates,omitempty"`
}

// PurchaseOrder850 is the loop-aware view of an 850 transaction: header
// segments, repeating party and line item loops, and the summary tail.
// Built from an assembled transaction; the input is never mutated.
type PurchaseOrder850 struct {
	ControlNumber string        `json:"controlNumber"`
	Beginning     *BEG          `json:"beginning"`
	Currency      *CUR          `json:"currency,omitempty"`
	References    []*REF        `json:"references,omitempty"`
	Header        []x12.Segment `json:"header,omitempty"` // untyped header segments (DTM, PER, ...)
	Parties       []PartyLoop   `json:"parties,omitempty"`
	LineItems     []LineItemLoop `json:"lineItems,omitempty"`
	Totals        *CTT          `json:"totals,omitempty"`
	Summary       []x12.Segment `json:"summary,omitempty"` // SE and anything after the loops
}

// ParsePurchaseOrder850 groups an 850 transaction into its loops. The
// header region runs until the first N1 or PO1; N1 loops collect their
// N2/N3/N4/PER members until the next N1 or the detail section; PO1 loops
// collect PID/SAC/TD5/DTM until the next PO1 or the summary. Segments the
// grouping does not recognize are skipped inside loops and kept raw
// elsewhere. A defective typed segment aborts with its findings.
func ParsePurchaseOrder850(tx x12.Transaction, v x12.Version) (*PurchaseOrder850, error) {
	if tx.SetID != "850" {
		return nil, x12.Issues{{
			Code:         x12.CodeUnknownTransactionSet,
			SegmentIndex: -1,
			Message:      "transaction set " + tx.SetID + " is not an 850",
		}}
	}

	po := &PurchaseOrder850{ControlNumber: tx.ControlNumber}
	segs := tx.Segments
	i := 0

	for ; i < len(segs); i++ {
		seg := segs[i]
		if seg.ID == "N1" || seg.ID == "PO1" {
			break
		}
		switch seg.ID {
		case "BEG":
			beg, err := ParseBEG(seg, v)
			if err != nil {
				return nil, err
			}
			po.Beginning = beg
		case "CUR":
			cur, err := ParseCUR(seg, v)
			if err != nil {
				return nil, err
			}
			po.Currency = cur
		case "REF":
			ref, err := ParseREF(seg, v)
			if err != nil {
				return nil, err
			}
			po.References = append(po.References, ref)
		case "CTT", "SE":
			// A summary segment ahead of the loops still belongs to the tail.
			if err := po.takeSummary(seg, v); err != nil {
				return nil, err
			}
		default:
			po.Header = append(po.Header, seg)
		}
	}

	for i < len(segs) && segs[i].ID == "N1" {
		n1, err := ParseN1(segs[i], v)
		if err != nil {
			return nil, err
		}
		loop := PartyLoop{Party: n1}
		i++
	party:
		for ; i < len(segs); i++ {
			seg := segs[i]
			switch seg.ID {
			case "N2":
				loop.AdditionalNames = append(loop.AdditionalNames, seg)
			case "N3":
				loop.AddressLines = append(loop.AddressLines, seg)
			case "N4":
				g := seg
				loop.Geographic = &g
			case "PER":
				loop.Contacts = append(loop.Contacts, seg)
			case "N1", "PO1", "CTT", "SE":
				break party
			}
		}
		po.Parties = append(po.Parties, loop)
	}

	for i < len(segs) && segs[i].ID == "PO1" {
		item, err := ParsePO1(segs[i], v)
		if err != nil {
			return nil, err
		}
		loop := LineItemLoop{Item: item}
		i++
	line:
		for ; i < len(segs); i++ {
			seg := segs[i]
			switch seg.ID {
			case "PID":
				loop.Descriptions = append(loop.Descriptions, seg)
			case "SAC", "TD5":
				loop.Charges = append(loop.Charges, seg)
			case "DTM":
				dtm, err := ParseDTM(seg, v)
				if err != nil {
					return nil, err
				}
				loop.Dates = append(loop.Dates, dtm)
			case "PO1", "CTT", "SE":
				break line
			}
		}
		po.LineItems = append(po.LineItems, loop)
	}

	for ; i < len(segs); i++ {
		if err := po.takeSummary(segs[i], v); err != nil {
			return nil, err
		}
	}

	if po.Beginning == nil {
		return nil, x12.Issues{{
			Code:         x12.CodeMissingRequiredSegment,
			Segment:      "BEG",
			SegmentIndex: -1,
			Message:      "850 transaction has no beginning segment",
		}}
	}
	return po, nil
}

func (po *PurchaseOrder850) takeSummary(seg x12.Segment, v x12.Version) error {
	if seg.ID == "CTT" {
		ctt, err := ParseCTT(seg, v)
		if err != nil {
			return err
		}
		po.Totals = ctt
		return nil
	}
	po.Summary = append(po.Summary, seg)
	return nil
}

// PurchaseOrderNumber returns BEG03.
func (po *PurchaseOrder850) PurchaseOrderNumber() string {
	return po.Beginning.PurchaseOrderNumber
}

// LineItemCount returns the number of PO1 loops.
func (po *PurchaseOrder850) LineItemCount() int {
	return len(po.LineItems)
}

// TotalQuantity sums the quantities of the line items that carry one.
func (po *PurchaseOrder850) TotalQuantity() float64 {
	var sum float64
	for _, li := range po.LineItems {
		if li.Item.Quantity != nil {
			sum += *li.Item.Quantity
		}
	}
	return sum
}

// TotalValue returns the quantity-weighted order value. The second return
// is false when any line item lacks a quantity or a unit price, since a
// partial total would be misleading.
func (po *PurchaseOrder850) TotalValue() (float64, bool) {
	var total float64
	for _, li := range po.LineItems {
		if li.Item.Quantity == nil || li.Item.UnitPrice == nil {
			return 0, false
		}
		total += *li.Item.Quantity * *li.Item.UnitPrice
	}
	return total, true
}

// PartiesByType returns every party loop whose N1 carries the entity code.
func (po *PurchaseOrder850) PartiesByType(entityCode string) []PartyLoop {
	var out []PartyLoop
	for _, p := range po.Parties {
		if p.EntityIdentifierCode() == entityCode {
			out = append(out, p)
		}
	}
	return out
}

func (po *PurchaseOrder850) partyByType(entityCode string) *PartyLoop {
	for i := range po.Parties {
		if po.Parties[i].EntityIdentifierCode() == entityCode {
			return &po.Parties[i]
		}
	}
	return nil
}

// Buyer returns the BY party loop, or nil.
func (po *PurchaseOrder850) Buyer() *PartyLoop { return po.partyByType("BY") }

// ShipTo returns the ST party loop, or nil.
func (po *PurchaseOrder850) ShipTo() *PartyLoop { return po.partyByType("ST") }

// Vendor returns the VN party loop, or nil.
func (po *PurchaseOrder850) Vendor() *PartyLoop { return po.partyByType("VN") }
