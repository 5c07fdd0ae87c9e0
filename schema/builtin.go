package schema

import (
	x12 "github.com/edikit/x12"
)

var builtinVersions = []x12.Version{x12.Version4010, x12.Version5010, x12.Version8010}

func registerBuiltinSchemas(e *Engine) {
	for _, v := range builtinVersions {
		e.RegisterSchema(purchaseOrderSchema(v))
		e.RegisterSchema(invoiceSchema(v))
		e.RegisterSchema(acknowledgmentSchema(v))
	}
}

// purchaseOrderSchema is the 850 purchase order layout. The segment list is
// ordered header, detail, summary; BEG must follow ST, the N2/N3/N4 address
// block only makes sense under an N1, and CTT01 must match the PO1 count.
func purchaseOrderSchema(v x12.Version) TransactionSetSchema {
	return TransactionSetSchema{
		SetID:       "850",
		Version:     v,
		Name:        "Purchase Order",
		Description: "Buyer-issued purchase order",
		Segments: []SegmentSchema{
			{ID: "ST", Name: "Transaction Set Header", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader},
			{ID: "BEG", Name: "Beginning Segment for Purchase Order", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader,
				Dependencies: []Dependency{{On: "ST", Kind: MustFollow}}},
			{ID: "CUR", Name: "Currency", Requirement: x12.Optional, MaxUse: 1, Level: LevelHeader},
			{ID: "REF", Name: "Reference Identification", Requirement: x12.Optional, Level: LevelHeader},
			{ID: "PER", Name: "Administrative Communications Contact", Requirement: x12.Optional, MaxUse: 3, Level: LevelHeader},
			{ID: "DTM", Name: "Date/Time Reference", Requirement: x12.Optional, MaxUse: 10, Level: LevelHeader},
			{ID: "N1", Name: "Party Identification", Requirement: x12.Optional, Level: LevelDetail},
			{ID: "N2", Name: "Additional Name Information", Requirement: x12.Optional, MaxUse: 2, Level: LevelDetail,
				Dependencies: []Dependency{{On: "N1", Kind: MustFollow, Condition: "address block belongs to a party"}}},
			{ID: "N3", Name: "Party Location", Requirement: x12.Optional, MaxUse: 2, Level: LevelDetail,
				Dependencies: []Dependency{{On: "N1", Kind: MustFollow, Condition: "address block belongs to a party"}}},
			{ID: "N4", Name: "Geographic Location", Requirement: x12.Optional, MaxUse: 1, Level: LevelDetail,
				Dependencies: []Dependency{{On: "N1", Kind: MustFollow, Condition: "address block belongs to a party"}}},
			{ID: "PO1", Name: "Baseline Item Data", Requirement: x12.Mandatory, Level: LevelDetail,
				Rules: []ContextRule{{
					ID:          "po1-quantity-or-price",
					Description: "a line item carries a quantity or a unit price",
					Elements:    []int{2, 4},
					Check:       CheckAnyPresent,
					Severity:    x12.Error,
				}}},
			{ID: "PID", Name: "Product/Item Description", Requirement: x12.Optional, Level: LevelDetail},
			{ID: "SAC", Name: "Service, Promotion, Allowance, or Charge", Requirement: x12.Optional, Level: LevelDetail},
			{ID: "TD5", Name: "Carrier Details", Requirement: x12.Optional, Level: LevelDetail},
			{ID: "CTT", Name: "Transaction Totals", Requirement: x12.Optional, MaxUse: 1, Level: LevelSummary,
				Rules: []ContextRule{{
					ID:          "ctt-line-count",
					Description: "CTT01 equals the number of PO1 segments",
					Element:     1,
					Check:       CheckLineCount,
					CountOf:     "PO1",
					Severity:    x12.Error,
				}}},
			{ID: "SE", Name: "Transaction Set Trailer", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelSummary},
		},
	}
}

// invoiceSchema is the 810 invoice layout.
func invoiceSchema(v x12.Version) TransactionSetSchema {
	return TransactionSetSchema{
		SetID:       "810",
		Version:     v,
		Name:        "Invoice",
		Description: "Seller-issued invoice",
		Segments: []SegmentSchema{
			{ID: "ST", Name: "Transaction Set Header", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader},
			{ID: "BIG", Name: "Beginning Segment for Invoice", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader,
				Dependencies: []Dependency{{On: "ST", Kind: MustFollow}}},
			{ID: "CUR", Name: "Currency", Requirement: x12.Optional, MaxUse: 1, Level: LevelHeader},
			{ID: "REF", Name: "Reference Identification", Requirement: x12.Optional, Level: LevelHeader},
			{ID: "N1", Name: "Party Identification", Requirement: x12.Optional, Level: LevelDetail},
			{ID: "IT1", Name: "Baseline Item Data (Invoice)", Requirement: x12.Mandatory, Level: LevelDetail},
			{ID: "TDS", Name: "Total Monetary Value Summary", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelSummary,
				Rules: []ContextRule{{
					ID:          "tds-positive-total",
					Description: "invoice total is a positive amount",
					Element:     1,
					Check:       CheckPositive,
					Severity:    x12.Error,
				}}},
			{ID: "CTT", Name: "Transaction Totals", Requirement: x12.Optional, MaxUse: 1, Level: LevelSummary,
				Rules: []ContextRule{{
					ID:          "ctt-line-count",
					Description: "CTT01 equals the number of IT1 segments",
					Element:     1,
					Check:       CheckLineCount,
					CountOf:     "IT1",
					Severity:    x12.Error,
				}}},
			{ID: "SE", Name: "Transaction Set Trailer", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelSummary},
		},
	}
}

// acknowledgmentSchema is the 997 functional acknowledgment layout.
func acknowledgmentSchema(v x12.Version) TransactionSetSchema {
	return TransactionSetSchema{
		SetID:       "997",
		Version:     v,
		Name:        "Functional Acknowledgment",
		Description: "Acknowledgment of a received functional group",
		Segments: []SegmentSchema{
			{ID: "ST", Name: "Transaction Set Header", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader},
			{ID: "AK1", Name: "Functional Group Response Header", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelHeader,
				Dependencies: []Dependency{{On: "ST", Kind: MustFollow}}},
			{ID: "AK2", Name: "Transaction Set Response Header", Requirement: x12.Optional, Level: LevelDetail,
				Dependencies: []Dependency{{On: "AK1", Kind: MustFollow}}},
			{ID: "AK5", Name: "Transaction Set Response Trailer", Requirement: x12.Optional, Level: LevelDetail,
				Dependencies: []Dependency{
					{On: "AK2", Kind: MustFollow},
					{On: "AK2", Kind: RequiredIf, Condition: "every acknowledged set carries a disposition"},
				}},
			{ID: "AK9", Name: "Functional Group Response Trailer", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelSummary,
				Dependencies: []Dependency{{On: "AK1", Kind: MustFollow}}},
			{ID: "SE", Name: "Transaction Set Trailer", Requirement: x12.Mandatory, MaxUse: 1, Level: LevelSummary},
		},
	}
}
