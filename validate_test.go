package x12_test

import (
	"testing"

	x12 "github.com/edikit/x12"
)

func TestValidateBEG(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)

	res := v.ValidateSegment(x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"))
	if !res.Valid || len(res.Errors) != 0 {
		t.Errorf("valid BEG rejected: %+v", res.Errors)
	}

	res = v.ValidateSegment(x12.NewSegment("BEG", "00", "NE", "PO123", ""))
	if res.Valid {
		t.Fatal("BEG without date accepted")
	}
	if len(res.Errors) != 1 || res.Errors[0].Code != x12.CodeMissingRequiredElement || res.Errors[0].Element != 5 {
		t.Errorf("errors = %+v", res.Errors)
	}
}

func TestValidateLengthBounds(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	long := "PO12345678901234567890123" // 25 > max 22
	res := v.ValidateSegment(x12.NewSegment("BEG", "00", "NE", long, "", "20240101"))
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidLength) {
		t.Errorf("oversized PO number accepted: %+v", res)
	}
}

func TestValidateCodeMembership(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	res := v.ValidateSegment(x12.NewSegment("BEG", "ZZ", "NE", "PO123", "", "20240101"))
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidCode) {
		t.Errorf("unknown purpose code accepted: %+v", res)
	}
}

func TestValidateDateFormat(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	for _, bad := range []string{"20241301", "20240230", "2024011", "abcdefgh"} {
		res := v.ValidateSegment(x12.NewSegment("BEG", "00", "NE", "PO123", "", bad))
		if res.Valid {
			t.Errorf("date %q accepted", bad)
		}
	}
	// Leap day is a real date.
	res := v.ValidateSegment(x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240229"))
	if !res.Valid {
		t.Errorf("leap day rejected: %+v", res.Errors)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	good := []string{"0000", "1230", "235959", "12305999"}
	for _, tm := range good {
		res := v.ValidateSegment(x12.NewSegment("DTM", "002", "20240101", tm))
		if !res.Valid {
			t.Errorf("time %q rejected: %+v", tm, res.Errors)
		}
	}
	bad := []string{"2400", "1260", "123060", "123", "12345"}
	for _, tm := range bad {
		res := v.ValidateSegment(x12.NewSegment("DTM", "002", "20240101", tm))
		if res.Valid {
			t.Errorf("time %q accepted", tm)
		}
	}
}

func TestValidateNumericTypes(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)

	res := v.ValidateSegment(x12.NewSegment("CTT", "abc"))
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidDataType) {
		t.Errorf("non-integer line count accepted: %+v", res)
	}

	// Hash total is signed decimal.
	res = v.ValidateSegment(x12.NewSegment("CTT", "3", "-12.5"))
	if !res.Valid {
		t.Errorf("signed hash total rejected: %+v", res.Errors)
	}

	// Quantity is unsigned decimal.
	res = v.ValidateSegment(x12.NewSegment("PO1", "1", "-10", "EA"))
	if res.Valid || !res.Errors.HasCode(x12.CodeInvalidDataType) {
		t.Errorf("signed quantity accepted: %+v", res)
	}
}

func TestValidateTooManyElements(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	res := v.ValidateSegment(x12.NewSegment("CTT", "3", "10", "extra"))
	if !res.Valid {
		t.Fatalf("excess element should be a warning by default: %+v", res.Errors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != x12.CodeTooManyElements {
		t.Errorf("warnings = %+v", res.Warnings)
	}
}

func TestValidateAccumulatesFindings(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	// Bad purpose code, bad type code, missing PO number and date.
	res := v.ValidateSegment(x12.NewSegment("BEG", "XX", "QQ"))
	if res.Valid {
		t.Fatal("defective BEG accepted")
	}
	if len(res.Errors) < 3 {
		t.Errorf("expected accumulated findings, got %+v", res.Errors)
	}
}

func TestValidateUnknownSegment(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	res := v.ValidateSegment(x12.NewSegment("XXX", "1"))
	if res.Valid || len(res.Errors) != 1 || res.Errors[0].Code != x12.CodeUnknownSegment {
		t.Errorf("result = %+v", res)
	}
}

func TestValidateElements(t *testing.T) {
	v := x12.NewValidator(x12.Version4010)
	els := v.ValidateElements(x12.NewSegment("BEG", "00", "NE", "PO123"))
	if len(els) != 5 {
		t.Fatalf("element count = %d", len(els))
	}
	if !els[0].Present || els[0].Value != "00" || els[0].Position != 1 {
		t.Errorf("els[0] = %+v", els[0])
	}
	// Positions beyond the raw segment report as absent, not as defaults.
	if els[4].Present || els[4].Value != "" {
		t.Errorf("els[4] = %+v", els[4])
	}
}

func TestRegistryVersionFallback(t *testing.T) {
	r := x12.StandardRegistry()

	// BEG has no 8010-specific registration; the 5010 definition serves.
	if _, ok := r.Lookup(x12.Version8010, "BEG"); !ok {
		t.Error("8010 BEG lookup failed")
	}

	// CUR is registered per version; the 8010 entity list includes 3P.
	def, ok := r.Lookup(x12.Version8010, "CUR")
	if !ok {
		t.Fatal("8010 CUR lookup failed")
	}
	found := false
	for _, c := range def.Elements[0].ValidCodes {
		if c == "3P" {
			found = true
		}
	}
	if !found {
		t.Errorf("8010 CUR entity codes = %v", def.Elements[0].ValidCodes)
	}

	// 4010 restricts currency codes; 5010 does not.
	def4, _ := r.Lookup(x12.Version4010, "CUR")
	if len(def4.Elements[1].ValidCodes) == 0 {
		t.Error("4010 CUR currency codes missing")
	}
	def5, _ := r.Lookup(x12.Version5010, "CUR")
	if def5.Elements[1].ValidCodes != nil {
		t.Errorf("5010 CUR currency codes = %v, want unrestricted", def5.Elements[1].ValidCodes)
	}
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := x12.NewRegistry()
	r.Register(x12.Version4010, x12.SegmentDefinition{ID: "ZZ", Name: "first"})
	r.Register(x12.Version4010, x12.SegmentDefinition{ID: "ZZ", Name: "second"})
	def, ok := r.Lookup(x12.Version4010, "ZZ")
	if !ok || def.Name != "second" {
		t.Errorf("def = %+v", def)
	}
}
