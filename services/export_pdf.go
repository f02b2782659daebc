package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateDocumentPDF renders a document snapshot into a paginated A4
// portrait PDF and returns the raw bytes. This is the one export path
// allowed to fail visibly; callers surface the error with a suggestion
// to use the print view instead.
func GenerateDocumentPDF(doc *Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addDocumentHeader(m)
	addDocumentTitle(m, doc)
	addCustomerVehicleBlocks(m, doc)
	if doc.Kind == KindQuotation {
		addQuotationTable(m, doc)
		addQuotationTotals(m, doc)
	} else {
		addInvoiceTable(m, doc)
		addInvoiceTotals(m, doc)
	}
	addDocumentNotes(m, doc)
	addDocumentSignatures(m, doc)

	result, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s PDF: %w", doc.Kind, err)
	}

	return result.GetBytes(), nil
}

// addDocumentHeader adds the business identity block: name and tagline
// on the left, the specialization list and TPIN on the right.
func addDocumentHeader(m core.Maroto) {
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(Ramstone.FullName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 220, Green: 38, Blue: 38},
				}),
			),
			col.New(6).Add(
				text.New("Specialized in:", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(
				text.New(Ramstone.Tagline, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(Ramstone.Services[0]+" "+Ramstone.Services[1], props.Text{
					Size:  7,
					Align: align.Right,
					Color: &props.Color{Red: 60, Green: 60, Blue: 60},
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(
				text.New(Ramstone.Address, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(Ramstone.Services[2], props.Text{
					Size:  7,
					Align: align.Right,
					Color: &props.Color{Red: 60, Green: 60, Blue: 60},
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(
				text.New("Cell: "+Ramstone.PhoneFormatted+" / "+Ramstone.Phone2, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New("TPIN: "+Ramstone.TPIN, props.Text{
					Size:  7,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addDocumentTitle adds the centered QUOTATION / INVOICE banner with
// the number and dates underneath.
func addDocumentTitle(m core.Maroto, doc *Document) {
	title := "QUOTATION"
	if doc.Kind == KindInvoice {
		title = "INVOICE"
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 220, Green: 38, Blue: 38},
				}),
			),
		),
	)

	meta := fmt.Sprintf("No: %s    Date: %s", doc.Number, FormatDate(doc.IssueDate))
	if doc.Kind == KindQuotation && doc.ValidUntil != "" {
		meta += fmt.Sprintf("    Valid Until: %s", FormatDate(doc.ValidUntil))
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(meta, props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addCustomerVehicleBlocks adds the customer details on the left and
// the vehicle details on the right, mirroring the form's two columns.
func addCustomerVehicleBlocks(m core.Maroto, doc *Document) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	fields := []struct {
		leftLabel, leftValue   string
		rightLabel, rightValue string
	}{
		{"Name:", doc.CustomerName, "Vehicle Make:", doc.VehicleMake},
		{"Address:", doc.CustomerAddress, "Model:", doc.VehicleModel},
		{"Cell No.:", doc.CustomerPhone, "Reg No.:", doc.RegNo},
		{"Email:", doc.CustomerEmail, "Chassis No.:", doc.ChassisNo},
		{"TPIN No.:", doc.CustomerTPIN, "Colour:", doc.Colour},
		{"", "", "Vehicle Number:", doc.VehicleNumber},
	}

	for _, f := range fields {
		if f.leftValue == "" && f.rightValue == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(f.leftLabel, labelStyle)),
				col.New(4).Add(text.New(f.leftValue, valueStyle)),
				col.New(2).Add(text.New(f.rightLabel, labelStyle)),
				col.New(4).Add(text.New(f.rightValue, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationTable adds the two-column REPAIRS / SPARES table.
func addQuotationTable(m core.Maroto, doc *Document) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("REPAIRS", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("AMOUNT", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("SPARES", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("AMOUNT", headerText)).WithStyle(&headerCell),
		),
	)

	bodyText := props.Text{Size: 7, Align: align.Left}
	amountText := props.Text{Size: 7, Align: align.Right}
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, r := range BuildQuotationRows(doc.Items) {
		var repairDesc, repairAmount, spareDesc, spareAmount string
		if r.Repair != nil {
			repairDesc = r.Repair.Description
			repairAmount = FormatKwacha(r.Repair.Amount)
		}
		if r.Spare != nil {
			spareDesc = r.Spare.Description
			spareAmount = FormatKwacha(r.Spare.Amount)
		}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(4).Add(text.New(repairDesc, bodyText)),
			col.New(2).Add(text.New(repairAmount, amountText)),
			col.New(4).Add(text.New(spareDesc, bodyText)),
			col.New(2).Add(text.New(spareAmount, amountText)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addQuotationTotals lists the four manual subtotals, VAT and the
// grand total, right-aligned like the printed form.
func addQuotationTotals(m core.Maroto, doc *Document) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	lines := []struct {
		label  string
		amount float64
	}{
		{"PAINTS AND MATERIAL", doc.PaintsAndMaterial},
		{"SPARES", doc.Spares},
		{"LABOUR", doc.Labour},
		{"CONSUMABLES", doc.Consumables},
		{fmt.Sprintf("VAT (%.0f%%)", doc.VATRate), doc.VATAmount},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(line.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatKwacha(line.amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addGrandTotalRow(m, doc.Total)
}

// addInvoiceTable adds the single five-column line item table.
func addInvoiceTable(m core.Maroto, doc *Document) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("S/No", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("DESCRIPTION", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("QTY", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("UNIT PRICE", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("AMOUNT", headerText)).WithStyle(&headerCell),
		),
	)

	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}
	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, r := range BuildInvoiceRows(doc.Items) {
		var sNo, desc, qty, unitPrice, amount string
		if r.Item != nil {
			sNo = fmt.Sprintf("%d", r.Item.SNo)
			desc = r.Item.Description
			qty = fmt.Sprintf("%d", r.Item.Quantity)
			unitPrice = FormatKwacha(r.Item.UnitPrice)
			amount = FormatKwacha(r.Item.Amount)
		}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(sNo, bodyText)),
			col.New(5).Add(text.New(desc, bodyTextLeft)),
			col.New(1).Add(text.New(qty, bodyText)),
			col.New(2).Add(text.New(unitPrice, bodyTextRight)),
			col.New(3).Add(text.New(amount, bodyTextRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addInvoiceTotals shows only the grand total.
func addInvoiceTotals(m core.Maroto, doc *Document) {
	addGrandTotalRow(m, doc.Total)
}

func addGrandTotalRow(m core.Maroto, total float64) {
	grandCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("GRAND TOTAL", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatKwacha(total), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addDocumentNotes adds the notes / terms block if present.
func addDocumentNotes(m core.Maroto, doc *Document) {
	if doc.Notes == "" {
		return
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("NOTES / TERMS", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(text.New(doc.Notes, props.Text{
				Size:  7,
				Align: align.Left,
			})),
		),
	)

	m.AddRows(row.New(3))
}

// addDocumentSignatures adds the prepared-by block and, for invoices,
// the received-by block beside it.
func addDocumentSignatures(m core.Maroto, doc *Document) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(row.New(6))

	if doc.Kind == KindInvoice {
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New("Prepared By:", labelStyle)),
				col.New(4).Add(text.New(doc.PreparedBy, valueStyle)),
				col.New(2).Add(text.New("Received By:", labelStyle)),
				col.New(4).Add(text.New(doc.ReceivedBy, valueStyle)),
			),
			row.New(6).Add(
				col.New(2).Add(text.New("Signature:", labelStyle)),
				col.New(4).Add(text.New(doc.Signature, valueStyle)),
				col.New(2).Add(text.New("Signature:", labelStyle)),
				col.New(4).Add(text.New(doc.ReceivedSignature, valueStyle)),
			),
		)
		return
	}

	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Prepared By:", labelStyle)),
			col.New(4).Add(text.New(doc.PreparedBy, valueStyle)),
			col.New(6).Add(text.New("This Quotation is Valid for 14 Days.", props.Text{
				Size:  7,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Signature:", labelStyle)),
			col.New(4).Add(text.New(doc.Signature, valueStyle)),
		),
	)
}
