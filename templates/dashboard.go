package templates

import "github.com/a-h/templ"

// DocumentListItem is one row of the dashboard table.
type DocumentListItem struct {
	ID           string
	Kind         string
	Number       string
	CustomerName string
	Total        float64
	Updated      string
}

// DashboardData carries the document list.
type DashboardData struct {
	Documents []DocumentListItem
}

var dashboardTpl = mustPage("dashboard", `{{define "content"}}
<section class="page admin">
	<div class="admin-header">
		<h1>Documents</h1>
		<div>
			<form method="post" action="/admin/documents" class="inline">
				<input type="hidden" name="kind" value="quotation"/>
				<button type="submit" class="btn btn-primary">New Quotation</button>
			</form>
			<form method="post" action="/admin/documents" class="inline">
				<input type="hidden" name="kind" value="invoice"/>
				<button type="submit" class="btn">New Invoice</button>
			</form>
			<form method="post" action="/logout" class="inline">
				<button type="submit" class="btn btn-link">Log out</button>
			</form>
		</div>
	</div>
	{{if .Content.Documents}}
	<table class="doc-list">
		<thead>
			<tr><th>Type</th><th>Number</th><th>Customer</th><th>Total</th><th>Updated</th><th></th></tr>
		</thead>
		<tbody>
			{{range .Content.Documents}}
			<tr>
				<td>{{.Kind}}</td>
				<td><a href="/admin/documents/{{.ID}}/edit">{{.Number}}</a></td>
				<td>{{.CustomerName}}</td>
				<td>{{kwacha .Total}}</td>
				<td>{{.Updated}}</td>
				<td>
					<a class="btn btn-small" href="/admin/documents/{{.ID}}/preview">Preview</a>
					<button class="btn btn-small btn-danger"
						hx-delete="/admin/documents/{{.ID}}"
						hx-confirm="Delete this document?"
						hx-target="closest tr"
						hx-swap="outerHTML">Delete</button>
				</td>
			</tr>
			{{end}}
		</tbody>
	</table>
	{{else}}
	<p class="empty-state">No documents yet. Create your first quotation above.</p>
	{{end}}
</section>
{{end}}`)

// Dashboard renders the admin document list.
func Dashboard(site Site, data DashboardData) templ.Component {
	return component(dashboardTpl, newShellData(site, data))
}
