package x12_test

import (
	"testing"

	x12 "github.com/edikit/x12"
)

func TestDictionaryLookup(t *testing.T) {
	d := x12.StandardDictionary()

	m, ok := d.Lookup(98)
	if !ok {
		t.Fatal("element 98 not registered")
	}
	if m.Name != "Entity Identifier Code" || m.Type != x12.TypeID {
		t.Errorf("master = %+v", m)
	}

	if _, ok := d.Lookup(99999); ok {
		t.Error("unregistered id resolved")
	}
}

func TestDictionaryVersionCodes(t *testing.T) {
	d := x12.StandardDictionary()

	// Entity codes grow across generations: VN arrives in 5010, 3P in 8010.
	info4, _ := d.LookupVersion(98, x12.Version4010)
	info5, _ := d.LookupVersion(98, x12.Version5010)
	info8, _ := d.LookupVersion(98, x12.Version8010)
	if contains(info4.ValidCodes, "VN") {
		t.Errorf("4010 codes = %v", info4.ValidCodes)
	}
	if !contains(info5.ValidCodes, "VN") || contains(info5.ValidCodes, "3P") {
		t.Errorf("5010 codes = %v", info5.ValidCodes)
	}
	if !contains(info8.ValidCodes, "3P") {
		t.Errorf("8010 codes = %v", info8.ValidCodes)
	}

	// 4010 restricts currency; later generations defer to ISO 4217.
	cur4, _ := d.LookupVersion(100, x12.Version4010)
	cur5, _ := d.LookupVersion(100, x12.Version5010)
	if !contains(cur4.ValidCodes, "USD") {
		t.Errorf("4010 currency codes = %v", cur4.ValidCodes)
	}
	if cur5.ValidCodes != nil {
		t.Errorf("5010 currency codes = %v, want unrestricted", cur5.ValidCodes)
	}
}

func TestCurrencyValidationPerVersion(t *testing.T) {
	seg := x12.NewSegment("CUR", "BY", "USD")

	for _, v := range []x12.Version{x12.Version4010, x12.Version5010, x12.Version8010} {
		res := x12.NewValidator(v).ValidateSegment(seg)
		if !res.Valid {
			t.Errorf("%v: CUR*BY*USD rejected: %+v", v, res.Errors)
		}
	}

	// VN is a 5010 addition.
	vn := x12.NewSegment("CUR", "VN", "USD")
	if res := x12.NewValidator(x12.Version4010).ValidateSegment(vn); res.Valid {
		t.Error("4010 accepted VN")
	}
	if res := x12.NewValidator(x12.Version5010).ValidateSegment(vn); !res.Valid {
		t.Errorf("5010 rejected VN: %+v", res.Errors)
	}
}

func TestFindByElementID(t *testing.T) {
	ic := mustParse(t, isa4010+purchaseOrderBody)
	reg := x12.StandardRegistry()

	// 324 is the purchase order number, carried at BEG03.
	occ := x12.FindByElementID(ic, 324, reg)
	if len(occ) != 1 {
		t.Fatalf("occurrences = %+v", occ)
	}
	if occ[0].SegmentID != "BEG" || occ[0].Element != 3 || occ[0].Value != "PO123" {
		t.Errorf("occurrence = %+v", occ[0])
	}

	// 373 appears in BEG only here; DTM would add more.
	occ = x12.FindByElementID(ic, 373, reg)
	if len(occ) != 1 || occ[0].Value != "20240101" {
		t.Errorf("date occurrences = %+v", occ)
	}

	if got := x12.FindByElementID(ic, 99999, reg); got != nil {
		t.Errorf("unregistered id matched: %+v", got)
	}
}

func TestFindByElementIDWithCurrency(t *testing.T) {
	body := "GS*PO*SENDER*RECEIVER*20240101*1200*1*X*004010~" +
		"ST*850*0001~" +
		"BEG*00*NE*PO123**20240101~" +
		"CUR*BY*USD~" +
		"PO1*1*10*EA*9.99~" +
		"CTT*1~" +
		"SE*7*0001~" +
		"GE*1*1~" +
		"IEA*1*000000001~"
	ic := mustParse(t, isa4010+body)
	reg := x12.StandardRegistry()

	// The CUR segment itself validates under the document's version.
	res := x12.NewValidatorWithRegistry(reg, ic.Version).ValidateSegment(ic.Transactions()[0].Segments[2])
	if !res.Valid {
		t.Fatalf("CUR*BY*USD rejected: %+v", res.Errors)
	}

	// Entity identifier (98) resolves to CUR01.
	occ := x12.FindByElementID(ic, 98, reg)
	if len(occ) != 1 {
		t.Fatalf("occurrences of 98 = %+v", occ)
	}
	if occ[0].SegmentID != "CUR" || occ[0].Element != 1 || occ[0].Value != "BY" {
		t.Errorf("occurrence = %+v", occ[0])
	}

	// Currency code (100) resolves to CUR02.
	occ = x12.FindByElementID(ic, 100, reg)
	if len(occ) != 1 || occ[0].Element != 2 || occ[0].Value != "USD" {
		t.Errorf("occurrences of 100 = %+v", occ)
	}
}

func TestFindInTransaction(t *testing.T) {
	tx := x12.Transaction{
		SetID: "850",
		Segments: []x12.Segment{
			x12.NewSegment("ST", "850", "0001"),
			x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"),
			x12.NewSegment("DTM", "002", "20240215"),
		},
	}
	occ := x12.FindInTransaction(tx, 373, x12.Version4010, x12.StandardRegistry())
	if len(occ) != 2 {
		t.Fatalf("occurrences = %+v", occ)
	}
	if occ[0].Value != "20240101" || occ[1].Value != "20240215" {
		t.Errorf("values = %q, %q", occ[0].Value, occ[1].Value)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
