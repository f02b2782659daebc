package collections_test

import (
	"testing"

	"ramstone/collections"
	"ramstone/testhelpers"
)

func TestSeed_CreatesDemoQuotation(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	docsCol, _ := app.FindCollectionByNameOrId("documents")
	docs, err := app.FindAllRecords(docsCol)
	if err != nil {
		t.Fatalf("query documents error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc.GetString("kind") != "quotation" {
		t.Errorf("kind = %q, want quotation", doc.GetString("kind"))
	}
	if doc.GetString("number") != "QT-000001" {
		t.Errorf("number = %q, want QT-000001", doc.GetString("number"))
	}
	if doc.GetString("customer_name") != "John Mwansa" {
		t.Errorf("customer_name = %q, want John Mwansa", doc.GetString("customer_name"))
	}

	// 4 items + 650 paints + 200 consumables, then 16% VAT on top
	if got := doc.GetFloat("subtotal"); got != 7050 {
		t.Errorf("subtotal = %v, want 7050", got)
	}
	if got := doc.GetFloat("vat_amount"); got != 1128 {
		t.Errorf("vat_amount = %v, want 1128", got)
	}
	if got := doc.GetFloat("total"); got != 8178 {
		t.Errorf("total = %v, want 8178", got)
	}

	itemsCol, _ := app.FindCollectionByNameOrId("line_items")
	items, _ := app.FindAllRecords(itemsCol)
	if len(items) != 4 {
		t.Fatalf("expected 4 line items, got %d", len(items))
	}
	for _, item := range items {
		if item.GetString("document") != doc.Id {
			t.Errorf("line item %s not linked to the demo quotation", item.Id)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	docsCol, _ := app.FindCollectionByNameOrId("documents")
	docs, err := app.FindAllRecords(docsCol)
	if err != nil {
		t.Fatalf("query documents error: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 document after second run, got %d", len(docs))
	}

	itemsCol, _ := app.FindCollectionByNameOrId("line_items")
	items, _ := app.FindAllRecords(itemsCol)
	if len(items) != 4 {
		t.Errorf("expected 4 line items after second run, got %d", len(items))
	}
}
