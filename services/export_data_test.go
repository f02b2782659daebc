package services

import (
	"testing"

	"ramstone/testhelpers"
)

func TestLoadDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestDocument(t, app, "quotation", "QT-000042")
	rec.Set("customer_phone", "+260 977 123 456")
	rec.Set("vehicle_make", "Toyota")
	rec.Set("paints_and_material", 650.0)
	if err := app.Save(rec); err != nil {
		t.Fatalf("failed to update test document: %v", err)
	}

	testhelpers.CreateTestLineItem(t, app, rec.Id, 2, "Fender", "spare", 1, 2400)
	testhelpers.CreateTestLineItem(t, app, rec.Id, 1, "Panel beating", "repair", 2, 100)

	doc, err := LoadDocument(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.Kind != KindQuotation {
		t.Errorf("Kind = %q, want quotation", doc.Kind)
	}
	if doc.Number != "QT-000042" {
		t.Errorf("Number = %q", doc.Number)
	}
	if doc.CustomerPhone != "+260 977 123 456" {
		t.Errorf("CustomerPhone = %q", doc.CustomerPhone)
	}

	// items come back in sort order
	if len(doc.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(doc.Items))
	}
	if doc.Items[0].Description != "Panel beating" || doc.Items[1].Description != "Fender" {
		t.Errorf("items out of order: %q, %q", doc.Items[0].Description, doc.Items[1].Description)
	}

	// totals are recomputed on load
	wantSubtotal := 200.0 + 2400 + 650
	if doc.Subtotal != wantSubtotal {
		t.Errorf("Subtotal = %v, want %v", doc.Subtotal, wantSubtotal)
	}
}

func TestLoadDocument_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := LoadDocument(app, "missing"); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

func TestLoadDocument_InvoiceKind(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestDocument(t, app, "invoice", "INV-000001")
	testhelpers.CreateTestLineItem(t, app, rec.Id, 1, "Service", "repair", 1, 500)

	doc, err := LoadDocument(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc.Kind != KindInvoice {
		t.Errorf("Kind = %q, want invoice", doc.Kind)
	}
}

func TestApplyDocumentToRecord_RoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestDocument(t, app, "quotation", "QT-1")

	doc, err := LoadDocument(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	doc.CustomerName = "Jane Banda"
	doc.Labour = 250
	Recompute(doc)

	ApplyDocumentToRecord(rec, doc)
	if err := app.Save(rec); err != nil {
		t.Fatalf("failed to save document: %v", err)
	}

	reloaded, err := LoadDocument(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if reloaded.CustomerName != "Jane Banda" {
		t.Errorf("CustomerName = %q", reloaded.CustomerName)
	}
	if reloaded.Labour != 250 {
		t.Errorf("Labour = %v, want 250", reloaded.Labour)
	}
	if reloaded.Subtotal != doc.Subtotal {
		t.Errorf("Subtotal = %v, want %v", reloaded.Subtotal, doc.Subtotal)
	}
}

func TestApplyItemToRecord_RoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	docRec := testhelpers.CreateTestDocument(t, app, "quotation", "QT-2")
	itemRec := testhelpers.CreateTestLineItem(t, app, docRec.Id, 1, "before", "repair", 1, 100)

	item := LineItem{SNo: 3, Description: "after", Category: CategorySpare, Quantity: 2, UnitPrice: 75, Amount: 150}
	ApplyItemToRecord(itemRec, docRec.Id, &item)
	if err := app.Save(itemRec); err != nil {
		t.Fatalf("failed to save line item: %v", err)
	}

	doc, err := LoadDocument(app, docRec.Id)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(doc.Items))
	}
	got := doc.Items[0]
	if got.Description != "after" || got.Category != CategorySpare || got.Quantity != 2 || got.Amount != 150 {
		t.Errorf("unexpected item after round trip: %+v", got)
	}
}
