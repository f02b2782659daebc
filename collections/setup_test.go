package collections_test

import (
	"testing"

	"ramstone/collections"
	"ramstone/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"documents",
	"line_items",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %q != %q", name, col.Id, ids[name])
		}
	}
}

func TestSetup_LineItemsCascadeFromDocuments(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		t.Fatalf("line_items collection not found: %v", err)
	}

	field, ok := col.Fields.GetByName("document").(*core.RelationField)
	if !ok {
		t.Fatal("expected line_items.document to be a relation field")
	}

	docsCol, _ := app.FindCollectionByNameOrId("documents")
	if field.CollectionId != docsCol.Id {
		t.Errorf("relation points at collection %q, want %q", field.CollectionId, docsCol.Id)
	}
	if !field.CascadeDelete {
		t.Error("expected line items to cascade delete with their document")
	}
	if field.MaxSelect != 1 {
		t.Errorf("expected MaxSelect 1, got %d", field.MaxSelect)
	}
}

func TestSetup_DocumentKindValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		t.Fatalf("documents collection not found: %v", err)
	}

	field, ok := col.Fields.GetByName("kind").(*core.SelectField)
	if !ok {
		t.Fatal("expected documents.kind to be a select field")
	}
	want := []string{"quotation", "invoice"}
	if len(field.Values) != len(want) {
		t.Fatalf("expected %d kind values, got %d", len(want), len(field.Values))
	}
	for i, v := range want {
		if field.Values[i] != v {
			t.Errorf("kind value %d = %q, want %q", i, field.Values[i], v)
		}
	}
}
