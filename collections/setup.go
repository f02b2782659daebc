package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically ensures the documents and line_items
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	documents := ensureCollection(app, "documents", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{"quotation", "invoice"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "issue_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "valid_until", Required: false})

		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_email", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_tpin", Required: false})

		c.Fields.Add(&core.TextField{Name: "vehicle_make", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_model", Required: false})
		c.Fields.Add(&core.TextField{Name: "reg_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "chassis_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "colour", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_number", Required: false})

		c.Fields.Add(&core.NumberField{Name: "paints_and_material", Required: false})
		c.Fields.Add(&core.NumberField{Name: "spares", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labour", Required: false})
		c.Fields.Add(&core.NumberField{Name: "consumables", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})

		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "prepared_by", Required: false})
		c.Fields.Add(&core.TextField{Name: "signature", Required: false})
		c.Fields.Add(&core.TextField{Name: "received_by", Required: false})
		c.Fields.Add(&core.TextField{Name: "received_signature", Required: false})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "document",
			Required:      true,
			CollectionId:  documents.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"repair", "spare", "paint", "labour", "consumable"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If
// it does, the existing collection is returned. Otherwise a new base
// collection is created, populated via addFields and saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
