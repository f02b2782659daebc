package templates

import (
	"github.com/a-h/templ"

	"ramstone/services"
)

// EditorData carries the draft into the editor page.
type EditorData struct {
	Doc *services.Document
}

// itemsSectionHTML is the editable line item table plus the totals
// block. It is swapped as one fragment after every line item or
// subtotal mutation so the totals on screen are never stale.
const itemsSectionHTML = `<section id="items-section">
	<div class="section-header">
		<h2>Services / Items</h2>
		<button class="btn btn-small"
			hx-post="/admin/documents/{{.Doc.ID}}/items"
			hx-target="#items-section"
			hx-swap="outerHTML">Add Item</button>
	</div>
	<table class="item-table">
		<thead>
			<tr><th>S/No</th><th>Description</th><th>Category</th><th>Qty</th><th>Unit Price (K)</th><th>Amount (K)</th><th></th></tr>
		</thead>
		<tbody>
			{{$docID := .Doc.ID}}
			{{range .Doc.Items}}
			<tr>
				<td>{{.SNo}}</td>
				<td><input name="description" value="{{.Description}}"
					hx-patch="/admin/documents/{{$docID}}/items/{{.ID}}"
					hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></td>
				<td>
					<select name="category"
						hx-patch="/admin/documents/{{$docID}}/items/{{.ID}}"
						hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change">
						{{$cat := .Category}}
						{{range $option := categories}}
						<option value="{{$option}}"{{if eq $option $cat}} selected{{end}}>{{$option}}</option>
						{{end}}
					</select>
				</td>
				<td><input name="quantity" type="number" min="1" step="1" value="{{.Quantity}}"
					hx-patch="/admin/documents/{{$docID}}/items/{{.ID}}"
					hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></td>
				<td><input name="unit_price" type="number" min="0" step="0.01" value="{{printf "%.2f" .UnitPrice}}"
					hx-patch="/admin/documents/{{$docID}}/items/{{.ID}}"
					hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></td>
				<td class="amount">{{kwacha .Amount}}</td>
				<td>
					<button class="btn btn-small btn-danger"
						hx-delete="/admin/documents/{{$docID}}/items/{{.ID}}"
						hx-target="#items-section" hx-swap="outerHTML">Remove</button>
				</td>
			</tr>
			{{end}}
		</tbody>
	</table>
	<div class="totals-grid">
		<div class="manual-subtotals">
			<label>Paints and Material (K)
				<input name="paints_and_material" type="number" min="0" step="0.01" value="{{printf "%.2f" .Doc.PaintsAndMaterial}}"
					hx-patch="/admin/documents/{{.Doc.ID}}/field" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></label>
			<label>Spares (K)
				<input name="spares" type="number" min="0" step="0.01" value="{{printf "%.2f" .Doc.Spares}}"
					hx-patch="/admin/documents/{{.Doc.ID}}/field" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></label>
			<label>Labour (K)
				<input name="labour" type="number" min="0" step="0.01" value="{{printf "%.2f" .Doc.Labour}}"
					hx-patch="/admin/documents/{{.Doc.ID}}/field" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></label>
			<label>Consumables (K)
				<input name="consumables" type="number" min="0" step="0.01" value="{{printf "%.2f" .Doc.Consumables}}"
					hx-patch="/admin/documents/{{.Doc.ID}}/field" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></label>
			<label>VAT Rate (%)
				<input name="vat_rate" type="number" min="0" step="0.01" value="{{printf "%.2f" .Doc.VATRate}}"
					hx-patch="/admin/documents/{{.Doc.ID}}/field" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"/></label>
		</div>
		<div class="totals">
			<p><span>Subtotal:</span> <strong>{{kwacha .Doc.Subtotal}}</strong></p>
			<p><span>VAT ({{printf "%.0f" .Doc.VATRate}}%):</span> <strong>{{kwacha .Doc.VATAmount}}</strong></p>
			<p class="grand"><span>Total:</span> <strong>{{kwacha .Doc.Total}}</strong></p>
		</div>
	</div>
</section>`

var editorFuncs = map[string]any{
	"categories": func() []string {
		return []string{
			services.CategoryRepair,
			services.CategorySpare,
			services.CategoryPaint,
			services.CategoryLabour,
			services.CategoryConsumable,
		}
	},
}

var itemsSectionTpl = mustPartialWith("items-section", itemsSectionHTML, editorFuncs)

// ItemsSection renders the line item + totals fragment for HTMX swaps.
func ItemsSection(doc *services.Document) templ.Component {
	return component(itemsSectionTpl, EditorData{Doc: doc})
}

var editorTpl = mustPageWith("editor", `{{define "content"}}
<section class="page admin editor">
	<div class="admin-header">
		<h1>{{if eq (printf "%s" .Content.Doc.Kind) "invoice"}}Invoice{{else}}Quotation{{end}} {{.Content.Doc.Number}}</h1>
		<div>
			<a class="btn" href="/admin">Back</a>
			<a class="btn btn-primary" href="/admin/documents/{{.Content.Doc.ID}}/preview">Preview</a>
		</div>
	</div>
	<form method="post" action="/admin/documents/{{.Content.Doc.ID}}/save" class="doc-form">
		<fieldset>
			<legend>Document</legend>
			<label>Type
				<select name="kind">
					<option value="quotation"{{if eq (printf "%s" .Content.Doc.Kind) "quotation"}} selected{{end}}>Quotation</option>
					<option value="invoice"{{if eq (printf "%s" .Content.Doc.Kind) "invoice"}} selected{{end}}>Invoice</option>
				</select>
			</label>
			<label>Number <input name="number" value="{{.Content.Doc.Number}}" required/></label>
			<label>Date <input name="issue_date" type="date" value="{{.Content.Doc.IssueDate}}" required/></label>
			<label>Valid Until <input name="valid_until" type="date" value="{{.Content.Doc.ValidUntil}}"/></label>
		</fieldset>
		<fieldset>
			<legend>Customer</legend>
			<label>Name <input name="customer_name" value="{{.Content.Doc.CustomerName}}" required/></label>
			<label>Address <input name="customer_address" value="{{.Content.Doc.CustomerAddress}}"/></label>
			<label>Phone <input name="customer_phone" value="{{.Content.Doc.CustomerPhone}}" placeholder="+260 XXX XXX XXX"/></label>
			<label>Email <input name="customer_email" type="email" value="{{.Content.Doc.CustomerEmail}}"/></label>
			<label>TPIN <input name="customer_tpin" value="{{.Content.Doc.CustomerTPIN}}"/></label>
		</fieldset>
		<fieldset>
			<legend>Vehicle</legend>
			<label>Make <input name="vehicle_make" value="{{.Content.Doc.VehicleMake}}" placeholder="Toyota"/></label>
			<label>Model <input name="vehicle_model" value="{{.Content.Doc.VehicleModel}}" placeholder="Corolla"/></label>
			<label>Reg No. <input name="reg_no" value="{{.Content.Doc.RegNo}}"/></label>
			<label>Chassis No. <input name="chassis_no" value="{{.Content.Doc.ChassisNo}}"/></label>
			<label>Colour <input name="colour" value="{{.Content.Doc.Colour}}"/></label>
			<label>Vehicle Number <input name="vehicle_number" value="{{.Content.Doc.VehicleNumber}}"/></label>
		</fieldset>
		<fieldset>
			<legend>Notes &amp; Signatures</legend>
			<label>Notes / Terms <textarea name="notes" rows="4">{{.Content.Doc.Notes}}</textarea></label>
			<label>Prepared By <input name="prepared_by" value="{{.Content.Doc.PreparedBy}}"/></label>
			<label>Signature <input name="signature" value="{{.Content.Doc.Signature}}"/></label>
			<label>Received By <input name="received_by" value="{{.Content.Doc.ReceivedBy}}"/></label>
			<label>Received Signature <input name="received_signature" value="{{.Content.Doc.ReceivedSignature}}"/></label>
		</fieldset>
		<button type="submit" class="btn btn-primary">Save Document</button>
	</form>
	{{template "items-section" .Content}}
</section>
{{end}}`, "items-section", itemsSectionHTML, editorFuncs)

// Editor renders the document editor page.
func Editor(site Site, data EditorData) templ.Component {
	return component(editorTpl, newShellData(site, data))
}
