package templates

import (
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"ramstone/services"
)

// documentData is the input to the document markup. The business
// block is injected rather than read globally so renders stay
// deterministic for a given input.
type documentData struct {
	Doc      *services.Document
	Business services.BusinessInfo
}

var documentFuncs = map[string]any{
	"quotationRows": services.BuildQuotationRows,
	"invoiceRows":   services.BuildInvoiceRows,
	"isInvoice": func(k services.DocumentKind) bool {
		return k == services.KindInvoice
	},
}

// documentHTML is the printable document body: company header,
// centered title, customer and vehicle blocks, then the kind-specific
// item table and totals.
const documentHTML = `<div class="document">
	<header class="doc-header">
		<div class="doc-brand">
			<span class="doc-logo">R</span>
			<div>
				<h1>Ramstone</h1>
				<p>Creative Solutions</p>
			</div>
		</div>
		<div class="doc-services">
			<p class="doc-services-title">Specialized in:</p>
			{{range .Business.Services}}<p>{{.}}</p>
			{{end}}<p class="doc-tpin">TPIN: {{.Business.TPIN}}</p>
		</div>
	</header>

	<div class="doc-title">
		<h2>{{.Doc.Kind.Title}}</h2>
	</div>

	<div class="doc-info">
		<div class="doc-info-col">
			<p><span>No.:</span> <em>{{.Doc.Number}}</em></p>
			<p><span>Date:</span> <em>{{date .Doc.IssueDate}}</em></p>
			<p><span>Name:</span> <em>{{.Doc.CustomerName}}</em></p>
			<p><span>Address:</span> <em>{{.Doc.CustomerAddress}}</em></p>
			<p><span>Cell No.:</span> <em>{{.Doc.CustomerPhone}}</em></p>
			{{if .Doc.CustomerTPIN}}<p><span>TPIN No.:</span> <em>{{.Doc.CustomerTPIN}}</em></p>{{end}}
		</div>
		<div class="doc-info-col">
			<p><span>Vehicle Make:</span> <em>{{.Doc.VehicleMake}}</em></p>
			<p><span>Reg No.:</span> <em>{{.Doc.RegNo}}</em></p>
			<p><span>Chassis No.:</span> <em>{{.Doc.ChassisNo}}</em></p>
			<p><span>Colour:</span> <em>{{.Doc.Colour}}</em></p>
			<p><span>Vehicle Number:</span> <em>{{.Doc.VehicleNumber}}</em></p>
		</div>
	</div>

	{{if isInvoice .Doc.Kind}}
	<table class="doc-table">
		<thead>
			<tr><th class="col-sno">S/No</th><th>DESCRIPTION</th><th class="col-qty">QTY</th><th class="col-amount">UNIT PRICE</th><th class="col-amount">AMOUNT</th></tr>
		</thead>
		<tbody>
			{{range invoiceRows .Doc.Items}}
			<tr>
				{{if .Item}}
				<td class="center">{{.Item.SNo}}</td>
				<td>{{.Item.Description}}</td>
				<td class="center">{{.Item.Quantity}}</td>
				<td class="center">{{kwacha .Item.UnitPrice}}</td>
				<td class="center">{{kwacha .Item.Amount}}</td>
				{{else}}
				<td></td><td></td><td></td><td></td><td></td>
				{{end}}
			</tr>
			{{end}}
		</tbody>
	</table>
	<div class="doc-totals invoice-totals">
		<p class="grand"><span>Total:</span> <strong>{{kwacha .Doc.Total}}</strong></p>
	</div>
	{{else}}
	<table class="doc-table">
		<thead>
			<tr><th>REPAIRS</th><th class="col-amount">AMOUNT</th><th>SPARES</th><th class="col-amount">AMOUNT</th></tr>
		</thead>
		<tbody>
			{{range quotationRows .Doc.Items}}
			<tr>
				{{if .Repair}}<td>{{.Repair.Description}}</td><td class="center">{{kwacha .Repair.Amount}}</td>{{else}}<td></td><td></td>{{end}}
				{{if .Spare}}<td>{{.Spare.Description}}</td><td class="center">{{kwacha .Spare.Amount}}</td>{{else}}<td></td><td></td>{{end}}
			</tr>
			{{end}}
		</tbody>
	</table>
	<div class="doc-totals">
		<p><span>PAINTS AND MATERIAL:</span> {{kwacha .Doc.PaintsAndMaterial}}</p>
		<p><span>SPARES:</span> {{kwacha .Doc.Spares}}</p>
		<p><span>LABOUR:</span> {{kwacha .Doc.Labour}}</p>
		<p><span>CONSUMABLES:</span> {{kwacha .Doc.Consumables}}</p>
		<p><span>VAT:</span> {{kwacha .Doc.VATAmount}}</p>
		<p class="grand"><span>GRAND TOTAL:</span> <strong>{{kwacha .Doc.Total}}</strong></p>
	</div>
	{{end}}

	{{if .Doc.Notes}}
	<div class="doc-notes"><p>{{.Doc.Notes}}</p></div>
	{{end}}

	<div class="doc-signatures">
		<div>
			<p><span>Prepared By:</span> <em>{{.Doc.PreparedBy}}</em></p>
			<p><span>Signature:</span> <em>{{.Doc.Signature}}</em></p>
		</div>
		{{if isInvoice .Doc.Kind}}
		<div>
			<p><span>Received By:</span> <em>{{.Doc.ReceivedBy}}</em></p>
			<p><span>Signature:</span> <em>{{.Doc.ReceivedSignature}}</em></p>
		</div>
		{{else}}
		<div class="doc-validity">
			<p>This Quotation is Valid for 14 Days.</p>
		</div>
		{{end}}
	</div>
</div>`

var documentTpl = mustPartialWith("document", documentHTML, documentFuncs)

// RenderDocument produces the document markup as a string. It is pure:
// the same document always yields byte-identical output, and rendering
// never mutates the document.
func RenderDocument(doc *services.Document) (string, error) {
	var b strings.Builder
	err := documentTpl.Execute(&b, documentData{Doc: doc, Business: services.Ramstone})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// printCSS is the standalone stylesheet for the print view, sized for
// A4 portrait output.
const printCSS = `@page { size: A4 portrait; margin: 10mm; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Arial, Helvetica, sans-serif; color: #111; background: #fff; }
.document { max-width: 190mm; margin: 0 auto; padding: 8px; font-size: 12px; }
.doc-header { display: flex; justify-content: space-between; margin-bottom: 16px; }
.doc-brand { display: flex; align-items: center; gap: 10px; }
.doc-logo { display: inline-flex; align-items: center; justify-content: center; width: 44px; height: 44px; background: #dc2626; color: #fff; font-size: 22px; font-weight: bold; border-radius: 6px; }
.doc-brand h1 { font-size: 18px; line-height: 1.1; }
.doc-brand p { font-size: 12px; color: #555; }
.doc-services { text-align: right; font-size: 10px; }
.doc-services-title, .doc-tpin { font-weight: bold; }
.doc-tpin { margin-top: 6px; }
.doc-title { text-align: center; margin-bottom: 20px; }
.doc-title h2 { font-size: 26px; text-transform: uppercase; letter-spacing: 2px; border-bottom: 3px solid #dc2626; display: inline-block; padding-bottom: 4px; }
.doc-info { display: flex; gap: 32px; margin-bottom: 16px; }
.doc-info-col { flex: 1; }
.doc-info-col p { display: flex; margin-bottom: 3px; }
.doc-info-col span { font-weight: 600; min-width: 90px; }
.doc-info-col em { font-style: normal; flex: 1; border-bottom: 1px dotted #999; margin-left: 6px; }
.doc-table { width: 100%; border-collapse: collapse; border: 2px solid #000; margin-bottom: 16px; }
.doc-table th, .doc-table td { border: 1px solid #000; padding: 4px 6px; height: 24px; }
.doc-table th { background: #f3f3f3; text-align: center; }
.doc-table td.center { text-align: center; }
.col-sno { width: 40px; } .col-qty { width: 50px; } .col-amount { width: 90px; }
.doc-totals { margin-left: auto; max-width: 280px; margin-bottom: 16px; }
.doc-totals p { display: flex; justify-content: space-between; border-bottom: 1px dotted #999; padding: 2px 0; }
.doc-totals p span { font-weight: 600; }
.doc-totals p.grand { border: 2px solid #000; padding: 6px; font-size: 14px; font-weight: bold; margin-top: 4px; }
.invoice-totals p.grand { border-bottom: 2px solid #000; }
.doc-notes { margin-bottom: 20px; font-size: 11px; white-space: pre-wrap; }
.doc-signatures { display: flex; justify-content: space-between; gap: 32px; margin-top: 28px; }
.doc-signatures > div { flex: 1; }
.doc-signatures p { display: flex; margin-bottom: 12px; }
.doc-signatures span { font-weight: 600; min-width: 90px; }
.doc-signatures em { font-style: normal; flex: 1; border-bottom: 1px dotted #999; margin-left: 6px; }
.doc-validity { text-align: right; font-size: 10px; align-self: flex-end; }
@media print { .no-print { display: none; } }`

// RenderPrintDocument wraps the document markup in a standalone page
// with an embedded stylesheet and an automatic print trigger. It is
// the fallback path when PDF generation fails, so it depends on
// nothing but the markup itself.
func RenderPrintDocument(doc *services.Document) (string, error) {
	markup, err := RenderDocument(doc)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\"/>\n<title>")
	b.WriteString(template.HTMLEscapeString(doc.Kind.Title() + " " + doc.Number))
	b.WriteString("</title>\n<style>")
	b.WriteString(printCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(markup)
	b.WriteString("\n<script>window.onload = function () { window.print(); };</script>\n</body>\n</html>\n")
	return b.String(), nil
}

// PreviewData feeds the admin preview page. Markup is the already
// rendered document body; the share URLs are precomputed by the
// handler.
type PreviewData struct {
	Doc          *services.Document
	Markup       template.HTML
	WhatsAppURL  string
	EmailURL     string
	EmailSubject string
	EmailBody    string
}

var previewTpl = mustPage("preview", `{{define "content"}}
<section class="page admin preview">
	<div class="admin-header no-print">
		<h1>{{.Content.Doc.Kind.Title}} {{.Content.Doc.Number}}</h1>
		<div class="preview-actions">
			<a class="btn" href="/admin/documents/{{.Content.Doc.ID}}/edit">Back to Editor</a>
			<a class="btn" href="/admin/documents/{{.Content.Doc.ID}}/print" target="_blank">Print</a>
			<a class="btn btn-primary" href="/admin/documents/{{.Content.Doc.ID}}/pdf">Download PDF</a>
			<a class="btn" href="/admin/documents/{{.Content.Doc.ID}}/excel">Download Excel</a>
			<a class="btn btn-whatsapp" href="{{.Content.WhatsAppURL}}" target="_blank" rel="noopener">Share via WhatsApp</a>
			<a class="btn" href="{{.Content.EmailURL}}">Share via Email</a>
		</div>
	</div>
	<div class="preview-sheet">{{.Content.Markup}}</div>
	<aside class="email-panel no-print">
		<h2>Email message</h2>
		<p class="email-subject">{{.Content.EmailSubject}}</p>
		<pre>{{.Content.EmailBody}}</pre>
	</aside>
</section>
{{end}}`)

// Preview renders the document preview page with its share and export
// actions.
func Preview(site Site, data PreviewData) templ.Component {
	return component(previewTpl, newShellData(site, data))
}
