package templates

import (
	"strings"
	"testing"
	"time"

	"ramstone/services"
)

func editorTestDocument() *services.Document {
	doc := services.NewDocument(services.KindQuotation, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	doc.ID = "doc123"
	doc.Number = "QT-000042"
	doc.Items = []services.LineItem{
		{ID: "item1", SNo: 1, Description: "Panel beating", Category: services.CategoryRepair, Quantity: 1, UnitPrice: 850},
	}
	services.Recompute(doc)
	return doc
}

func TestEditor(t *testing.T) {
	doc := editorTestDocument()
	site := NewSite("Editor", "", "/admin")

	got := renderComponent(t, Editor(site, EditorData{Doc: doc}))

	for _, want := range []string{
		`action="/admin/documents/doc123/save"`,
		`name="customer_name"`,
		`name="vehicle_make"`,
		`name="valid_until"`,
		`name="received_by"`,
		`id="items-section"`,
		`hx-post="/admin/documents/doc123/items"`,
		`hx-patch="/admin/documents/doc123/items/item1"`,
		`hx-delete="/admin/documents/doc123/items/item1"`,
		"Panel beating",
		"K 850.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("editor missing %q", want)
		}
	}
}

func TestItemsSection_Totals(t *testing.T) {
	doc := editorTestDocument()
	doc.PaintsAndMaterial = 650
	services.Recompute(doc)

	got := renderComponent(t, ItemsSection(doc))

	for _, want := range []string{
		`id="items-section"`,
		"K 1500.00", // subtotal 850 + 650
		"K 240.00",  // 16% VAT
		"K 1740.00", // grand total
		`name="paints_and_material"`,
		`hx-patch="/admin/documents/doc123/field"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("items section missing %q", want)
		}
	}
}

func TestItemsSection_CategoryOptions(t *testing.T) {
	doc := editorTestDocument()
	doc.Items[0].Category = services.CategorySpare

	got := renderComponent(t, ItemsSection(doc))

	if !strings.Contains(got, `value="spare" selected`) {
		t.Error("current category not selected")
	}
	for _, cat := range []string{"repair", "spare", "paint", "labour", "consumable"} {
		if !strings.Contains(got, `value="`+cat+`"`) {
			t.Errorf("category option %q missing", cat)
		}
	}
}
