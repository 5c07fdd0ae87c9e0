package segments_test

import (
	"math"
	"testing"

	x12 "github.com/edikit/x12"
	"github.com/edikit/x12/segments"
)

func order850() x12.Transaction {
	return x12.Transaction{
		SetID:         "850",
		ControlNumber: "0001",
		Segments: []x12.Segment{
			x12.NewSegment("ST", "850", "0001"),
			x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"),
			x12.NewSegment("CUR", "BY", "USD"),
			x12.NewSegment("REF", "DP", "038"),
			x12.NewSegment("DTM", "002", "20240115"),
			x12.NewSegment("N1", "BY", "Acme Corp", "92", "001"),
			x12.NewSegment("N3", "100 Main St"),
			x12.NewSegment("N4", "Springfield", "IL", "62701"),
			x12.NewSegment("PER", "BD", "J Smith"),
			x12.NewSegment("N1", "ST", "Acme Warehouse"),
			x12.NewSegment("N3", "200 Dock Rd"),
			x12.NewSegment("PO1", "1", "10", "EA", "9.99", "", "VP", "WIDGET-1"),
			x12.NewSegment("PID", "F", "", "", "", "Blue widget"),
			x12.NewSegment("DTM", "002", "20240201"),
			x12.NewSegment("PO1", "2", "5", "EA", "2.50"),
			x12.NewSegment("SAC", "C", "D240"),
			x12.NewSegment("CTT", "2"),
			x12.NewSegment("SE", "17", "0001"),
		},
	}
}

func TestParsePurchaseOrder850(t *testing.T) {
	po, err := segments.ParsePurchaseOrder850(order850(), x12.Version4010)
	if err != nil {
		t.Fatalf("ParsePurchaseOrder850: %v", err)
	}

	if po.PurchaseOrderNumber() != "PO123" || po.ControlNumber != "0001" {
		t.Errorf("header = %+v", po.Beginning)
	}
	if po.Currency == nil || po.Currency.CurrencyCode != "USD" {
		t.Errorf("Currency = %+v", po.Currency)
	}
	if len(po.References) != 1 || po.References[0].Qualifier != "DP" {
		t.Errorf("References = %+v", po.References)
	}
	// ST and DTM stay raw in the header region.
	if len(po.Header) != 2 || po.Header[0].ID != "ST" || po.Header[1].ID != "DTM" {
		t.Errorf("Header = %+v", po.Header)
	}
	if po.Totals == nil || po.Totals.NumberOfLineItems != 2 {
		t.Errorf("Totals = %+v", po.Totals)
	}
	if len(po.Summary) != 1 || po.Summary[0].ID != "SE" {
		t.Errorf("Summary = %+v", po.Summary)
	}
}

func TestPartyLoops(t *testing.T) {
	po, err := segments.ParsePurchaseOrder850(order850(), x12.Version4010)
	if err != nil {
		t.Fatalf("ParsePurchaseOrder850: %v", err)
	}
	if len(po.Parties) != 2 {
		t.Fatalf("party loops = %+v", po.Parties)
	}

	buyer := po.Buyer()
	if buyer == nil || *buyer.Party.Name != "Acme Corp" {
		t.Fatalf("Buyer = %+v", buyer)
	}
	if len(buyer.AddressLines) != 1 || buyer.Geographic == nil || len(buyer.Contacts) != 1 {
		t.Errorf("buyer loop = %+v", buyer)
	}

	shipTo := po.ShipTo()
	if shipTo == nil || *shipTo.Party.Name != "Acme Warehouse" {
		t.Fatalf("ShipTo = %+v", shipTo)
	}
	// The second loop's members did not leak into the first.
	if shipTo.Geographic != nil || len(shipTo.AddressLines) != 1 {
		t.Errorf("ship-to loop = %+v", shipTo)
	}

	if po.Vendor() != nil {
		t.Error("no VN party in this order")
	}
	if got := po.PartiesByType("BY"); len(got) != 1 {
		t.Errorf("PartiesByType(BY) = %+v", got)
	}
}

func TestLineItemLoops(t *testing.T) {
	po, err := segments.ParsePurchaseOrder850(order850(), x12.Version4010)
	if err != nil {
		t.Fatalf("ParsePurchaseOrder850: %v", err)
	}
	if po.LineItemCount() != 2 {
		t.Fatalf("line item loops = %+v", po.LineItems)
	}

	first := po.LineItems[0]
	if len(first.Descriptions) != 1 || len(first.Dates) != 1 || *first.Dates[0].Date != "20240201" {
		t.Errorf("first loop = %+v", first)
	}
	second := po.LineItems[1]
	if len(second.Charges) != 1 || len(second.Descriptions) != 0 {
		t.Errorf("second loop = %+v", second)
	}

	if got := po.TotalQuantity(); got != 15 {
		t.Errorf("TotalQuantity = %v", got)
	}
	total, ok := po.TotalValue()
	if !ok || math.Abs(total-112.40) > 1e-9 {
		t.Errorf("TotalValue = %v, %v", total, ok)
	}
}

func TestTotalValueNeedsCompletePricing(t *testing.T) {
	tx := x12.Transaction{SetID: "850", Segments: []x12.Segment{
		x12.NewSegment("BEG", "00", "NE", "PO123", "", "20240101"),
		x12.NewSegment("PO1", "1", "10", "EA"),
	}}
	po, err := segments.ParsePurchaseOrder850(tx, x12.Version4010)
	if err != nil {
		t.Fatalf("ParsePurchaseOrder850: %v", err)
	}
	if _, ok := po.TotalValue(); ok {
		t.Error("partial pricing must not produce a total")
	}
	if got := po.TotalQuantity(); got != 10 {
		t.Errorf("TotalQuantity = %v", got)
	}
}

func TestParsePurchaseOrder850Rejects(t *testing.T) {
	_, err := segments.ParsePurchaseOrder850(x12.Transaction{SetID: "810"}, x12.Version4010)
	iss, ok := x12.AsIssues(err)
	if !ok || !iss.HasCode(x12.CodeUnknownTransactionSet) {
		t.Fatalf("expected unknown_transaction_set, got %v", err)
	}

	// No BEG anywhere.
	tx := x12.Transaction{SetID: "850", Segments: []x12.Segment{
		x12.NewSegment("ST", "850", "0001"),
		x12.NewSegment("PO1", "1", "10", "EA", "9.99"),
	}}
	_, err = segments.ParsePurchaseOrder850(tx, x12.Version4010)
	iss, ok = x12.AsIssues(err)
	if !ok || !iss.HasCode(x12.CodeMissingRequiredSegment) {
		t.Fatalf("expected missing_required_segment, got %v", err)
	}

	// A defective typed segment surfaces its findings.
	tx = x12.Transaction{SetID: "850", Segments: []x12.Segment{
		x12.NewSegment("BEG", "ZZ", "NE", "PO123", "", "20240101"),
	}}
	_, err = segments.ParsePurchaseOrder850(tx, x12.Version4010)
	iss, ok = x12.AsIssues(err)
	if !ok || !iss.HasCode(x12.CodeInvalidCode) {
		t.Fatalf("expected invalid_code, got %v", err)
	}
}
