package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// LoadDocument reads a document record and its line items into the
// calculator model. Items come back in sequence order. The loaded
// snapshot is recomputed so renders and exports never see stale
// totals.
func LoadDocument(app *pocketbase.PocketBase, id string) (*Document, error) {
	rec, err := app.FindRecordById("documents", id)
	if err != nil {
		return nil, fmt.Errorf("document %s not found: %w", id, err)
	}

	itemRecords, err := app.FindRecordsByFilter(
		"line_items",
		"document = {:documentId}",
		"sort_order",
		0,
		0,
		map[string]any{"documentId": id},
	)
	if err != nil {
		return nil, fmt.Errorf("could not load line items for document %s: %w", id, err)
	}

	doc := DocumentFromRecords(rec, itemRecords)
	return doc, nil
}

// DocumentFromRecords maps stored records into the document model.
func DocumentFromRecords(rec *core.Record, itemRecords []*core.Record) *Document {
	doc := &Document{
		ID:   rec.Id,
		Kind: KindQuotation,

		Number:     rec.GetString("number"),
		IssueDate:  rec.GetString("issue_date"),
		ValidUntil: rec.GetString("valid_until"),

		CustomerName:    rec.GetString("customer_name"),
		CustomerAddress: rec.GetString("customer_address"),
		CustomerPhone:   rec.GetString("customer_phone"),
		CustomerEmail:   rec.GetString("customer_email"),
		CustomerTPIN:    rec.GetString("customer_tpin"),

		VehicleMake:   rec.GetString("vehicle_make"),
		VehicleModel:  rec.GetString("vehicle_model"),
		RegNo:         rec.GetString("reg_no"),
		ChassisNo:     rec.GetString("chassis_no"),
		Colour:        rec.GetString("colour"),
		VehicleNumber: rec.GetString("vehicle_number"),

		PaintsAndMaterial: rec.GetFloat("paints_and_material"),
		Spares:            rec.GetFloat("spares"),
		Labour:            rec.GetFloat("labour"),
		Consumables:       rec.GetFloat("consumables"),
		VATRate:           rec.GetFloat("vat_rate"),

		Notes: rec.GetString("notes"),

		PreparedBy:        rec.GetString("prepared_by"),
		Signature:         rec.GetString("signature"),
		ReceivedBy:        rec.GetString("received_by"),
		ReceivedSignature: rec.GetString("received_signature"),
	}
	if rec.GetString("kind") == string(KindInvoice) {
		doc.Kind = KindInvoice
	}

	for _, ir := range itemRecords {
		doc.Items = append(doc.Items, LineItem{
			ID:          ir.Id,
			SNo:         ir.GetInt("sort_order"),
			Description: ir.GetString("description"),
			Category:    ir.GetString("category"),
			Quantity:    ir.GetInt("quantity"),
			UnitPrice:   ir.GetFloat("unit_price"),
			Amount:      ir.GetFloat("amount"),
		})
	}

	Recompute(doc)
	return doc
}

// ApplyDocumentToRecord writes the document-level fields, including
// the derived totals, back onto a record. Line items are saved
// separately via ApplyItemToRecord.
func ApplyDocumentToRecord(rec *core.Record, doc *Document) {
	rec.Set("kind", string(doc.Kind))
	rec.Set("number", doc.Number)
	rec.Set("issue_date", doc.IssueDate)
	rec.Set("valid_until", doc.ValidUntil)

	rec.Set("customer_name", doc.CustomerName)
	rec.Set("customer_address", doc.CustomerAddress)
	rec.Set("customer_phone", doc.CustomerPhone)
	rec.Set("customer_email", doc.CustomerEmail)
	rec.Set("customer_tpin", doc.CustomerTPIN)

	rec.Set("vehicle_make", doc.VehicleMake)
	rec.Set("vehicle_model", doc.VehicleModel)
	rec.Set("reg_no", doc.RegNo)
	rec.Set("chassis_no", doc.ChassisNo)
	rec.Set("colour", doc.Colour)
	rec.Set("vehicle_number", doc.VehicleNumber)

	rec.Set("paints_and_material", doc.PaintsAndMaterial)
	rec.Set("spares", doc.Spares)
	rec.Set("labour", doc.Labour)
	rec.Set("consumables", doc.Consumables)
	rec.Set("vat_rate", doc.VATRate)
	rec.Set("subtotal", doc.Subtotal)
	rec.Set("vat_amount", doc.VATAmount)
	rec.Set("total", doc.Total)

	rec.Set("notes", doc.Notes)
	rec.Set("prepared_by", doc.PreparedBy)
	rec.Set("signature", doc.Signature)
	rec.Set("received_by", doc.ReceivedBy)
	rec.Set("received_signature", doc.ReceivedSignature)
}

// ApplyItemToRecord writes one line item onto its record.
func ApplyItemToRecord(rec *core.Record, documentID string, item *LineItem) {
	rec.Set("document", documentID)
	rec.Set("sort_order", item.SNo)
	rec.Set("description", item.Description)
	rec.Set("category", item.Category)
	rec.Set("quantity", item.Quantity)
	rec.Set("unit_price", item.UnitPrice)
	rec.Set("amount", item.Amount)
}
