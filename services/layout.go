package services

// LayoutCell is one filled cell of a quotation row. A nil cell renders
// blank.
type LayoutCell struct {
	Description string
	Amount      float64
}

// QuotationRow pairs one repair-category item with one spare-category
// item. The pairing is purely positional: the nth repair sits beside
// the nth spare, whatever either side contains.
type QuotationRow struct {
	Repair *LayoutCell
	Spare  *LayoutCell
}

// InvoiceRow is one row of the single invoice table. Item is nil for
// the blank padding rows.
type InvoiceRow struct {
	Item *LineItem
}

// BuildQuotationRows projects the line items into the two-column
// quotation table. Repairs and spares are paired by filtered index,
// and the table is padded to at least 12 rows, or half the total item
// count if that is larger.
func BuildQuotationRows(items []LineItem) []QuotationRow {
	var repairs, spares []LineItem
	for _, item := range items {
		switch item.Category {
		case CategoryRepair:
			repairs = append(repairs, item)
		case CategorySpare:
			spares = append(spares, item)
		}
	}

	rowCount := (len(items) + 1) / 2
	if rowCount < 12 {
		rowCount = 12
	}

	rows := make([]QuotationRow, rowCount)
	for i := 0; i < rowCount; i++ {
		if i < len(repairs) {
			rows[i].Repair = &LayoutCell{Description: repairs[i].Description, Amount: repairs[i].Amount}
		}
		if i < len(spares) {
			rows[i].Spare = &LayoutCell{Description: spares[i].Description, Amount: spares[i].Amount}
		}
	}
	return rows
}

// BuildInvoiceRows lists all line items in original order, padded with
// blank rows to at least 15.
func BuildInvoiceRows(items []LineItem) []InvoiceRow {
	rowCount := len(items)
	if rowCount < 15 {
		rowCount = 15
	}

	rows := make([]InvoiceRow, rowCount)
	for i := range items {
		item := items[i]
		rows[i].Item = &item
	}
	return rows
}
