// Package services holds the document model, calculator and export
// logic for quotations and invoices.
package services

// CalcLineAmount computes a line item amount from its two factors.
func CalcLineAmount(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// DocumentTotals holds the three derived figures of a document.
type DocumentTotals struct {
	Subtotal  float64
	VATAmount float64
	Total     float64
}

// CalcTotals computes the derived totals for a document: the subtotal
// is the sum of all line item amounts plus the four manually entered
// category subtotals, VAT is applied to the subtotal, and the grand
// total is their sum.
func CalcTotals(doc *Document) DocumentTotals {
	var subtotal float64
	for _, item := range doc.Items {
		subtotal += item.Amount
	}
	subtotal += doc.PaintsAndMaterial + doc.Spares + doc.Labour + doc.Consumables

	vatAmount := subtotal * doc.VATRate / 100

	return DocumentTotals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		Total:     subtotal + vatAmount,
	}
}

// Recompute re-derives every line item amount and the document totals.
// It is idempotent and is called by every mutating operation, so a
// document is always consistent before it is rendered or exported.
func Recompute(doc *Document) {
	for i := range doc.Items {
		doc.Items[i].Amount = CalcLineAmount(doc.Items[i].Quantity, doc.Items[i].UnitPrice)
	}
	totals := CalcTotals(doc)
	doc.Subtotal = totals.Subtotal
	doc.VATAmount = totals.VATAmount
	doc.Total = totals.Total
}
