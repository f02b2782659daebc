package services

import (
	"fmt"
	"time"
)

// DocumentKind distinguishes the two document types. The kind decides
// the rendered layout and which optional fields appear, but every
// field stays present on the model regardless of kind.
type DocumentKind string

const (
	KindQuotation DocumentKind = "quotation"
	KindInvoice   DocumentKind = "invoice"
)

// Title returns the display heading for the kind.
func (k DocumentKind) Title() string {
	if k == KindInvoice {
		return "Invoice"
	}
	return "Quotation"
}

// Line item categories. Repairs and spares drive the two-column
// quotation layout; the rest only label the row.
const (
	CategoryRepair     = "repair"
	CategorySpare      = "spare"
	CategoryPaint      = "paint"
	CategoryLabour     = "labour"
	CategoryConsumable = "consumable"
)

// DefaultVATRate is the Zambian VAT percentage applied to new
// documents.
const DefaultVATRate = 16.0

// DefaultTerms seeds the notes field of a new document.
const DefaultTerms = "Payment due on completion of work. All spare parts are subject to availability."

// LineItem is one priced row of a document. Amount is always derived
// from Quantity and UnitPrice by Recompute, never entered directly.
type LineItem struct {
	ID          string
	SNo         int
	Description string
	Category    string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

// Document is the full quotation/invoice model. Subtotal, VATAmount
// and Total are derived; everything else is user input.
type Document struct {
	ID   string
	Kind DocumentKind

	Number     string
	IssueDate  string
	ValidUntil string

	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerEmail   string
	CustomerTPIN    string

	VehicleMake   string
	VehicleModel  string
	RegNo         string
	ChassisNo     string
	Colour        string
	VehicleNumber string

	Items []LineItem

	PaintsAndMaterial float64
	Spares            float64
	Labour            float64
	Consumables       float64
	VATRate           float64

	Subtotal  float64
	VATAmount float64
	Total     float64

	Notes string

	PreparedBy        string
	Signature         string
	ReceivedBy        string
	ReceivedSignature string
}

// NewDocument seeds a fresh document: a timestamp-derived number,
// today's date, a 30 day validity window, the default VAT rate and
// terms, and one empty line item so the editor never opens on an
// empty table.
func NewDocument(kind DocumentKind, now time.Time) *Document {
	doc := &Document{
		Kind:       kind,
		Number:     NewDocumentNumber(kind, now),
		IssueDate:  now.Format("2006-01-02"),
		ValidUntil: now.AddDate(0, 0, 30).Format("2006-01-02"),
		VATRate:    DefaultVATRate,
		Notes:      DefaultTerms,
		Items: []LineItem{
			{
				ID:       fmt.Sprintf("%d", now.UnixMilli()),
				SNo:      1,
				Category: CategoryRepair,
				Quantity: 1,
			},
		},
	}
	Recompute(doc)
	return doc
}

// AddItem appends an empty line item and returns it.
func AddItem(doc *Document) *LineItem {
	item := LineItem{
		ID:       fmt.Sprintf("%d", time.Now().UnixNano()),
		Category: CategoryRepair,
		Quantity: 1,
	}
	doc.Items = append(doc.Items, item)
	renumberItems(doc)
	Recompute(doc)
	return &doc.Items[len(doc.Items)-1]
}

// RemoveItem deletes one line item. A document always keeps at least
// one line item, so removing the last one is refused and the survivor
// keeps its values.
func RemoveItem(doc *Document, itemID string) bool {
	if len(doc.Items) <= 1 {
		return false
	}
	for i := range doc.Items {
		if doc.Items[i].ID == itemID {
			doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
			renumberItems(doc)
			Recompute(doc)
			return true
		}
	}
	return false
}

// UpdateItem sets one field of one line item from raw form input.
// Quantity and unit price go through the safe numeric parsers; the
// amount is re-derived afterwards. Unknown fields and unknown item
// ids are ignored.
func UpdateItem(doc *Document, itemID, field, raw string) {
	item := ItemByID(doc, itemID)
	if item == nil {
		return
	}
	switch field {
	case "description":
		item.Description = raw
	case "category":
		item.Category = normalizeCategory(raw)
	case "quantity":
		item.Quantity = ParseQuantity(raw)
	case "unit_price":
		item.UnitPrice = ParsePrice(raw)
	}
	Recompute(doc)
}

// DocumentFieldNames is the enumerated set of document-level form
// field names ApplyField accepts.
var DocumentFieldNames = []string{
	"kind",
	"number",
	"issue_date",
	"valid_until",
	"customer_name",
	"customer_address",
	"customer_phone",
	"customer_email",
	"customer_tpin",
	"vehicle_make",
	"vehicle_model",
	"reg_no",
	"chassis_no",
	"colour",
	"vehicle_number",
	"paints_and_material",
	"spares",
	"labour",
	"consumables",
	"vat_rate",
	"notes",
	"prepared_by",
	"signature",
	"received_by",
	"received_signature",
}

// ApplyField sets one document-level field from raw form input. The
// numeric fields go through the safe parsers and trigger a recompute;
// an invalid value is coerced, never rejected. Names outside the
// enumerated set are ignored.
func ApplyField(doc *Document, name, raw string) {
	switch name {
	case "kind":
		if raw == string(KindInvoice) {
			doc.Kind = KindInvoice
		} else {
			doc.Kind = KindQuotation
		}
	case "number":
		doc.Number = raw
	case "issue_date":
		doc.IssueDate = raw
	case "valid_until":
		doc.ValidUntil = raw
	case "customer_name":
		doc.CustomerName = raw
	case "customer_address":
		doc.CustomerAddress = raw
	case "customer_phone":
		doc.CustomerPhone = raw
	case "customer_email":
		doc.CustomerEmail = raw
	case "customer_tpin":
		doc.CustomerTPIN = raw
	case "vehicle_make":
		doc.VehicleMake = raw
	case "vehicle_model":
		doc.VehicleModel = raw
	case "reg_no":
		doc.RegNo = raw
	case "chassis_no":
		doc.ChassisNo = raw
	case "colour":
		doc.Colour = raw
	case "vehicle_number":
		doc.VehicleNumber = raw
	case "paints_and_material":
		doc.PaintsAndMaterial = ParsePrice(raw)
		Recompute(doc)
	case "spares":
		doc.Spares = ParsePrice(raw)
		Recompute(doc)
	case "labour":
		doc.Labour = ParsePrice(raw)
		Recompute(doc)
	case "consumables":
		doc.Consumables = ParsePrice(raw)
		Recompute(doc)
	case "vat_rate":
		doc.VATRate = ParsePrice(raw)
		Recompute(doc)
	case "notes":
		doc.Notes = raw
	case "prepared_by":
		doc.PreparedBy = raw
	case "signature":
		doc.Signature = raw
	case "received_by":
		doc.ReceivedBy = raw
	case "received_signature":
		doc.ReceivedSignature = raw
	}
}

// ItemByID returns a pointer into the item slice, or nil.
func ItemByID(doc *Document, itemID string) *LineItem {
	for i := range doc.Items {
		if doc.Items[i].ID == itemID {
			return &doc.Items[i]
		}
	}
	return nil
}

func normalizeCategory(raw string) string {
	switch raw {
	case CategoryRepair, CategorySpare, CategoryPaint, CategoryLabour, CategoryConsumable:
		return raw
	}
	return CategoryRepair
}

func renumberItems(doc *Document) {
	for i := range doc.Items {
		doc.Items[i].SNo = i + 1
	}
}
