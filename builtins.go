package x12

// Standard segment definitions for the supported versions. Definitions that
// do not vary between generations are registered for 4010 and 5010 only;
// 8010 picks them up through the registry's fallback rule. CUR is the
// exception: its entity-identifier code list grew in each generation.

func registerStandardSegments(r *Registry) {
	registerBEG(r)
	registerCUR(r)
	registerREF(r)
	registerDTM(r)
	registerN1(r)
	registerPO1(r)
	registerCTT(r)
	registerBIG(r)
	registerIT1(r)
	registerTDS(r)
	registerAK1(r)
	registerAK2(r)
	registerAK5(r)
	registerAK9(r)
}

var sharedVersions = []Version{Version4010, Version5010}

func registerShared(r *Registry, def SegmentDefinition) {
	for _, v := range sharedVersions {
		r.Register(v, def)
	}
}

func registerBEG(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "BEG",
		Name: "Beginning Segment for Purchase Order",
		Elements: []ElementDefinition{
			{ID: 353, Name: "Transaction Set Purpose Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Mandatory,
				ValidCodes: []string{"00", "01", "04", "05"}},
			{ID: 92, Name: "Purchase Order Type Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Mandatory,
				ValidCodes: []string{"NE", "RL", "SA"}},
			{ID: 324, Name: "Purchase Order Number", Type: TypeAN, MinLength: 1, MaxLength: 22, Requirement: Mandatory},
			{ID: 328, Name: "Release Number", Type: TypeAN, MinLength: 1, MaxLength: 30, Requirement: Optional},
			{ID: 373, Name: "Date", Type: TypeDT, MinLength: 8, MaxLength: 8, Requirement: Mandatory},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To indicate the beginning of the Purchase Order Transaction Set",
	})
}

func registerCUR(r *Registry) {
	base := SegmentDefinition{
		ID:   "CUR",
		Name: "Currency",
		Elements: []ElementDefinition{
			{ID: 98, Name: "Entity Identifier Code", Type: TypeID, MinLength: 2, MaxLength: 3, Requirement: Mandatory},
			{ID: 100, Name: "Currency Code", Type: TypeID, MinLength: 3, MaxLength: 3, Requirement: Mandatory},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To specify the currency being used in the transaction",
	}

	v4010 := base
	v4010.Elements = cloneElements(base.Elements)
	v4010.Elements[0].ValidCodes = []string{"BY", "SE", "BT", "ST", "SU"}
	v4010.Elements[1].ValidCodes = []string{"USD", "CAD", "EUR", "GBP", "JPY"}
	r.Register(Version4010, v4010)

	v5010 := base
	v5010.Elements = cloneElements(base.Elements)
	v5010.Elements[0].ValidCodes = []string{"BY", "SE", "BT", "ST", "SU", "VN"}
	r.Register(Version5010, v5010)

	v8010 := base
	v8010.Elements = cloneElements(base.Elements)
	v8010.Elements[0].ValidCodes = []string{"BY", "SE", "BT", "ST", "SU", "VN", "3P"}
	r.Register(Version8010, v8010)
}

func registerREF(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "REF",
		Name: "Reference Information",
		Elements: []ElementDefinition{
			{ID: 128, Name: "Reference Identification Qualifier", Type: TypeID, MinLength: 2, MaxLength: 3, Requirement: Mandatory},
			{ID: 127, Name: "Reference Identification", Type: TypeAN, MinLength: 1, MaxLength: 50, Requirement: Optional},
			{ID: 352, Name: "Description", Type: TypeAN, MinLength: 1, MaxLength: 80, Requirement: Optional},
		},
		MaxUsage:    12,
		Description: "To specify identifying information",
	})
}

func registerDTM(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "DTM",
		Name: "Date/Time Reference",
		Elements: []ElementDefinition{
			{ID: 374, Name: "Date/Time Qualifier", Type: TypeID, MinLength: 3, MaxLength: 3, Requirement: Mandatory},
			{ID: 373, Name: "Date", Type: TypeDT, MinLength: 8, MaxLength: 8, Requirement: Optional},
			{ID: 337, Name: "Time", Type: TypeTM, MinLength: 4, MaxLength: 8, Requirement: Optional},
		},
		MaxUsage:    10,
		Description: "To specify pertinent dates and times",
	})
}

func registerN1(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "N1",
		Name: "Party Identification",
		Elements: []ElementDefinition{
			{ID: 98, Name: "Entity Identifier Code", Type: TypeID, MinLength: 2, MaxLength: 3, Requirement: Mandatory},
			{ID: 93, Name: "Name", Type: TypeAN, MinLength: 1, MaxLength: 60, Requirement: Optional},
			{ID: 66, Name: "Identification Code Qualifier", Type: TypeID, MinLength: 1, MaxLength: 2, Requirement: Optional},
			{ID: 67, Name: "Identification Code", Type: TypeAN, MinLength: 2, MaxLength: 80, Requirement: Optional},
		},
		MaxUsage:    200,
		Description: "To identify a party by type of organization, name, and code",
	})
}

func registerPO1(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "PO1",
		Name: "Baseline Item Data",
		Elements: []ElementDefinition{
			{ID: 350, Name: "Assigned Identification", Type: TypeAN, MinLength: 1, MaxLength: 20, Requirement: Optional},
			{ID: 330, Name: "Quantity Ordered", Type: TypeR, MinLength: 1, MaxLength: 15, Requirement: Optional},
			{ID: 355, Name: "Unit or Basis for Measurement Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 212, Name: "Unit Price", Type: TypeR, MinLength: 1, MaxLength: 17, Requirement: Optional},
			{ID: 639, Name: "Basis of Unit Price Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 235, Name: "Product/Service ID Qualifier", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 234, Name: "Product/Service ID", Type: TypeAN, MinLength: 1, MaxLength: 48, Requirement: Optional},
			{ID: 235, Name: "Product/Service ID Qualifier", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 234, Name: "Product/Service ID", Type: TypeAN, MinLength: 1, MaxLength: 48, Requirement: Optional},
			{ID: 235, Name: "Product/Service ID Qualifier", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 234, Name: "Product/Service ID", Type: TypeAN, MinLength: 1, MaxLength: 48, Requirement: Optional},
		},
		MinUsage:    1,
		MaxUsage:    100000,
		Description: "To specify basic and most frequently used line item data",
	})
}

func registerCTT(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "CTT",
		Name: "Transaction Totals",
		Elements: []ElementDefinition{
			{ID: 354, Name: "Number of Line Items", Type: TypeN0, MinLength: 1, MaxLength: 6, Requirement: Mandatory},
			{ID: 347, Name: "Hash Total", Type: TypeR, MinLength: 1, MaxLength: 10, Requirement: Optional, SignAllowed: true},
		},
		MaxUsage:    1,
		Description: "To transmit a hash total for a specific element in the transaction set",
	})
}

func registerBIG(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "BIG",
		Name: "Beginning Segment for Invoice",
		Elements: []ElementDefinition{
			{ID: 373, Name: "Date", Type: TypeDT, MinLength: 8, MaxLength: 8, Requirement: Mandatory},
			{ID: 76, Name: "Invoice Number", Type: TypeAN, MinLength: 1, MaxLength: 22, Requirement: Mandatory},
			{ID: 373, Name: "Date", Type: TypeDT, MinLength: 8, MaxLength: 8, Requirement: Optional},
			{ID: 324, Name: "Purchase Order Number", Type: TypeAN, MinLength: 1, MaxLength: 22, Requirement: Optional},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To indicate the beginning of an Invoice Transaction Set",
	})
}

func registerIT1(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "IT1",
		Name: "Baseline Item Data (Invoice)",
		Elements: []ElementDefinition{
			{ID: 350, Name: "Assigned Identification", Type: TypeAN, MinLength: 1, MaxLength: 20, Requirement: Optional},
			{ID: 358, Name: "Quantity Invoiced", Type: TypeR, MinLength: 1, MaxLength: 10, Requirement: Optional},
			{ID: 355, Name: "Unit or Basis for Measurement Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 212, Name: "Unit Price", Type: TypeR, MinLength: 1, MaxLength: 17, Requirement: Optional},
			{ID: 639, Name: "Basis of Unit Price Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 235, Name: "Product/Service ID Qualifier", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Optional},
			{ID: 234, Name: "Product/Service ID", Type: TypeAN, MinLength: 1, MaxLength: 48, Requirement: Optional},
		},
		MinUsage:    1,
		MaxUsage:    200000,
		Description: "To specify basic and most frequently used line item data for the invoice",
	})
}

func registerTDS(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "TDS",
		Name: "Total Monetary Value Summary",
		Elements: []ElementDefinition{
			{ID: 610, Name: "Amount", Type: TypeN0, MinLength: 1, MaxLength: 15, Requirement: Mandatory, SignAllowed: true},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To specify the total invoice discounts and amounts",
	})
}

func registerAK1(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "AK1",
		Name: "Functional Group Response Header",
		Elements: []ElementDefinition{
			{ID: 479, Name: "Functional Identifier Code", Type: TypeID, MinLength: 2, MaxLength: 2, Requirement: Mandatory},
			{ID: 28, Name: "Group Control Number", Type: TypeN0, MinLength: 1, MaxLength: 9, Requirement: Mandatory},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To start acknowledgment of a functional group",
	})
}

func registerAK2(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "AK2",
		Name: "Transaction Set Response Header",
		Elements: []ElementDefinition{
			{ID: 143, Name: "Transaction Set Identifier Code", Type: TypeID, MinLength: 3, MaxLength: 3, Requirement: Mandatory},
			{ID: 329, Name: "Transaction Set Control Number", Type: TypeAN, MinLength: 4, MaxLength: 9, Requirement: Mandatory},
		},
		Description: "To start acknowledgment of a single transaction set",
	})
}

func registerAK5(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "AK5",
		Name: "Transaction Set Response Trailer",
		Elements: []ElementDefinition{
			{ID: 717, Name: "Transaction Set Acknowledgment Code", Type: TypeID, MinLength: 1, MaxLength: 1, Requirement: Mandatory,
				ValidCodes: []string{"A", "E", "M", "R", "W", "X"}},
		},
		Description: "To acknowledge acceptance or rejection of a transaction set",
	})
}

func registerAK9(r *Registry) {
	registerShared(r, SegmentDefinition{
		ID:   "AK9",
		Name: "Functional Group Response Trailer",
		Elements: []ElementDefinition{
			{ID: 715, Name: "Functional Group Acknowledge Code", Type: TypeID, MinLength: 1, MaxLength: 1, Requirement: Mandatory,
				ValidCodes: []string{"A", "E", "M", "P", "R"}},
			{ID: 97, Name: "Number of Transaction Sets Included", Type: TypeN0, MinLength: 1, MaxLength: 6, Requirement: Mandatory},
			{ID: 123, Name: "Number of Received Transaction Sets", Type: TypeN0, MinLength: 1, MaxLength: 6, Requirement: Mandatory},
			{ID: 2, Name: "Number of Accepted Transaction Sets", Type: TypeN0, MinLength: 1, MaxLength: 6, Requirement: Mandatory},
		},
		MinUsage:    1,
		MaxUsage:    1,
		Description: "To acknowledge acceptance or rejection of a functional group",
	})
}

func cloneElements(els []ElementDefinition) []ElementDefinition {
	out := make([]ElementDefinition, len(els))
	copy(out, els)
	return out
}
