package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type seedItemDef struct {
	description string
	category    string
	quantity    int
	unitPrice   float64
}

// Seed inserts one demo quotation so a fresh install opens on a
// populated dashboard. Running it again is a no-op.
func Seed(app *pocketbase.PocketBase) error {
	docsCol, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		return fmt.Errorf("seed: could not find documents collection: %w", err)
	}
	existing, err := app.FindAllRecords(docsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query documents: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: documents collection is empty – inserting demo quotation …")

	itemsCol, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		return fmt.Errorf("seed: could not find line_items collection: %w", err)
	}

	items := []seedItemDef{
		{description: "Panel beating - front left fender", category: "repair", quantity: 1, unitPrice: 850},
		{description: "Spray painting - full fender respray", category: "repair", quantity: 1, unitPrice: 1200},
		{description: "Front left fender (genuine)", category: "spare", quantity: 1, unitPrice: 2400},
		{description: "Headlamp assembly", category: "spare", quantity: 1, unitPrice: 1750},
	}

	const (
		paintsAndMaterial = 650.0
		consumables       = 200.0
		vatRate           = 16.0
	)
	itemsTotal := 0.0
	for _, def := range items {
		itemsTotal += float64(def.quantity) * def.unitPrice
	}
	subtotal := itemsTotal + paintsAndMaterial + consumables
	vatAmount := subtotal * vatRate / 100

	now := time.Now()
	rec := core.NewRecord(docsCol)
	rec.Set("kind", "quotation")
	rec.Set("number", "QT-000001")
	rec.Set("issue_date", now.Format("2006-01-02"))
	rec.Set("valid_until", now.AddDate(0, 0, 30).Format("2006-01-02"))
	rec.Set("customer_name", "John Mwansa")
	rec.Set("customer_address", "Plot 45, Kabulonga, Lusaka")
	rec.Set("customer_phone", "+260 977 123 456")
	rec.Set("vehicle_make", "Toyota")
	rec.Set("vehicle_model", "Corolla")
	rec.Set("reg_no", "ALD 4521")
	rec.Set("colour", "Silver")
	rec.Set("paints_and_material", paintsAndMaterial)
	rec.Set("consumables", consumables)
	rec.Set("vat_rate", vatRate)
	rec.Set("subtotal", subtotal)
	rec.Set("vat_amount", vatAmount)
	rec.Set("total", subtotal+vatAmount)
	rec.Set("notes", "Payment due on completion of work. All spare parts are subject to availability.")
	rec.Set("prepared_by", "Ramstone Workshop")
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: could not save demo quotation: %w", err)
	}

	for i, def := range items {
		itemRec := core.NewRecord(itemsCol)
		itemRec.Set("document", rec.Id)
		itemRec.Set("sort_order", i+1)
		itemRec.Set("description", def.description)
		itemRec.Set("category", def.category)
		itemRec.Set("quantity", def.quantity)
		itemRec.Set("unit_price", def.unitPrice)
		itemRec.Set("amount", float64(def.quantity)*def.unitPrice)
		if err := app.Save(itemRec); err != nil {
			return fmt.Errorf("seed: could not save demo line item: %w", err)
		}
	}

	log.Println("seed: inserted demo quotation QT-000001")
	return nil
}
