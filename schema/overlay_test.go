package schema_test

import (
	"testing"

	x12 "github.com/edikit/x12"
	"github.com/edikit/x12/schema"
)

func refPO() x12.Transaction {
	return po850(
		x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"),
		x12.NewSegment("REF", "PO"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
		x12.NewSegment("CTT", "1"),
	)
}

func TestPartnerMakeMandatory(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Name:      "Acme Corp requirements",
		Customizations: []schema.Customization{
			{SegmentID: "REF", Element: 2, Kind: schema.MakeMandatory, Description: "reference id always required"},
		},
	})

	// REF02 is optional in the base standard.
	res := e.ValidateTransaction(refPO(), x12.Version4010)
	if !res.Valid {
		t.Fatalf("base schema rejected bare REF: %+v", res.Errors)
	}

	res = e.ValidateTransaction(refPO(), x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if res.Valid {
		t.Fatal("partner overlay did not apply")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %+v", res.Errors)
	}
	it := res.Errors[0]
	if it.Code != x12.CodeMissingRequiredElement || it.Segment != "REF" || it.Element != 2 {
		t.Errorf("issue = %+v", it)
	}
}

func TestPartnerRestrictCodes(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			{SegmentID: "BEG", Element: 1, Kind: schema.RestrictCodes, Codes: []string{"00"}},
		},
	})

	tx := po850(
		x12.NewSegment("BEG", "04", "NE", "PO123", "", "20240101"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
		x12.NewSegment("CTT", "1"),
	)

	if res := e.ValidateTransaction(tx, x12.Version4010); !res.Valid {
		t.Fatalf("04 is a standard purpose code: %+v", res.Errors)
	}
	res := e.ValidateTransaction(tx, x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidCode) {
		t.Errorf("restricted code accepted: %+v", res)
	}
}

func TestPartnerExtendCodes(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			{SegmentID: "BEG", Element: 2, Kind: schema.ExtendCodes, Codes: []string{"KN"}},
		},
	})

	tx := po850(
		x12.NewSegment("BEG", "00", "KN", "PO123", "", "20240101"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
		x12.NewSegment("CTT", "1"),
	)

	if res := e.ValidateTransaction(tx, x12.Version4010); res.Valid {
		t.Fatal("KN is not a standard order type code")
	}
	res := e.ValidateTransaction(tx, x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if !res.Valid {
		t.Errorf("extended code rejected: %+v", res.Errors)
	}

	// The standard codes stay valid alongside the extension.
	res = e.ValidateTransaction(validPO(), x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if !res.Valid {
		t.Errorf("standard code rejected under overlay: %+v", res.Errors)
	}
}

func TestPartnerLengthBounds(t *testing.T) {
	e := schema.NewEngine()
	min, max := 5, 10
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			{SegmentID: "BEG", Element: 3, Kind: schema.ChangeLengthBounds, MinLength: &min, MaxLength: &max},
		},
	})

	tx := po850(
		x12.NewSegment("BEG", "00", "NE", "PO1", "", "20240101"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
		x12.NewSegment("CTT", "1"),
	)

	if res := e.ValidateTransaction(tx, x12.Version4010); !res.Valid {
		t.Fatalf("base bounds rejected PO1: %+v", res.Errors)
	}
	res := e.ValidateTransaction(tx, x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidLength) {
		t.Errorf("tightened bounds not applied: %+v", res)
	}
}

func TestPartnerSegmentRequirement(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			// Element 0 targets the segment itself.
			{SegmentID: "CUR", Element: 0, Kind: schema.MakeMandatory},
		},
	})

	res := e.ValidateTransaction(validPO(), x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if res.Valid {
		t.Fatal("missing CUR accepted under overlay")
	}
	found := false
	for _, it := range res.Errors {
		if it.Code == x12.CodeMissingRequiredSegment && it.Segment == "CUR" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %+v", res.Errors)
	}
}

func TestEmptyAgreementIsIdentity(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{PartnerID: "NOOP"})

	base := e.ValidateTransaction(validPO(), x12.Version4010)
	overlaid := e.ValidateTransaction(validPO(), x12.Version4010, x12.ValidateOpt{PartnerID: "NOOP"})
	if base.Valid != overlaid.Valid || len(base.Errors) != len(overlaid.Errors) {
		t.Errorf("base = %+v, overlaid = %+v", base, overlaid)
	}
}

func TestUnknownPartnerFallsBackToBase(t *testing.T) {
	e := schema.NewEngine()
	res := e.ValidateTransaction(validPO(), x12.Version4010, x12.ValidateOpt{PartnerID: "NOBODY"})
	if !res.Valid {
		t.Errorf("unknown partner should use the base schema: %+v", res.Errors)
	}
}

func TestOverlayDoesNotMutateBase(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			{SegmentID: "REF", Element: 2, Kind: schema.MakeMandatory},
		},
	})

	// Materialize the derived schema, twice to exercise the memo.
	for i := 0; i < 2; i++ {
		if _, ok := e.SchemaForPartner("850", x12.Version4010, "ACME"); !ok {
			t.Fatal("derived schema missing")
		}
	}

	// The base must still accept a bare REF.
	res := e.ValidateTransaction(refPO(), x12.Version4010)
	if !res.Valid {
		t.Errorf("base schema mutated by overlay: %+v", res.Errors)
	}

	s, _ := e.Schema("850", x12.Version4010)
	for _, ss := range s.Segments {
		if ss.ID == "REF" && ss.Elements != nil {
			t.Errorf("base REF carries patches: %+v", ss.Elements)
		}
	}
}

func TestCustomizationsApplyInOrder(t *testing.T) {
	e := schema.NewEngine()
	e.RegisterAgreement("850", x12.Version4010, schema.Agreement{
		PartnerID: "ACME",
		Customizations: []schema.Customization{
			{SegmentID: "BEG", Element: 1, Kind: schema.RestrictCodes, Codes: []string{"00", "04"}},
			{SegmentID: "BEG", Element: 1, Kind: schema.RestrictCodes, Codes: []string{"04"}},
		},
	})

	tx := po850(
		x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
		x12.NewSegment("CTT", "1"),
	)
	res := e.ValidateTransaction(tx, x12.Version4010, x12.ValidateOpt{PartnerID: "ACME"})
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidCode) {
		t.Errorf("second restriction did not narrow the first: %+v", res)
	}
}
