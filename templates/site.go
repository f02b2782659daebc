package templates

import (
	"html/template"

	"ramstone/services"
)

// Site carries the data every page shell needs: SEO meta, the business
// identity block and the session state for the nav.
type Site struct {
	Title       string
	Description string
	Path        string
	LoggedIn    bool
	Business    services.BusinessInfo
}

// NewSite returns the shell data for a public page.
func NewSite(title, description, path string) Site {
	return Site{
		Title:       title,
		Description: description,
		Path:        path,
		Business:    services.Ramstone,
	}
}

// NavItem is one entry of the main navigation.
type NavItem struct {
	Name string
	Href string
}

// NavItems lists the public pages in menu order.
var NavItems = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "About", Href: "/about"},
	{Name: "Auto Repair", Href: "/auto-repair"},
	{Name: "General Supply", Href: "/general-supply"},
	{Name: "Contact", Href: "/contact"},
}

// shellData is what the shell template executes against.
type shellData struct {
	Site        Site
	Nav         []NavItem
	WhatsAppURL string
	// tel: is not in html/template's safe-scheme list, so the dialer
	// link must be pre-approved or it renders as #ZgotmplZ.
	PhoneURL template.URL
	Content  any
}

func newShellData(site Site, content any) shellData {
	return shellData{
		Site:        site,
		Nav:         NavItems,
		WhatsAppURL: services.WhatsAppContactURL(""),
		PhoneURL:    template.URL(services.PhoneDialerURL()),
		Content:     content,
	}
}

const shellHTML = `<!doctype html>
<html lang="en">
<head>
	<meta charset="utf-8"/>
	<meta name="viewport" content="width=device-width, initial-scale=1"/>
	<title>{{.Site.Title}}</title>
	<meta name="description" content="{{.Site.Description}}"/>
	<meta name="author" content="{{.Site.Business.FullName}}"/>
	<meta property="og:title" content="{{.Site.Title}}"/>
	<meta property="og:description" content="{{.Site.Description}}"/>
	<link rel="stylesheet" href="/static/styles.css"/>
	<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
	<header class="site-header">
		<a class="brand" href="/">
			<span class="brand-mark">R</span>
			<span class="brand-name">{{.Site.Business.Name}}</span>
		</a>
		<nav>
			{{$path := .Site.Path}}
			{{range .Nav}}
			<a href="{{.Href}}"{{if eq .Href $path}} class="active"{{end}}>{{.Name}}</a>
			{{end}}
			{{if .Site.LoggedIn}}
			<a href="/admin" class="admin-link">Dashboard</a>
			{{else}}
			<a href="/login" class="admin-link">Admin</a>
			{{end}}
		</nav>
	</header>
	<main>
{{template "content" .}}
	</main>
	<footer class="site-footer">
		<p>{{.Site.Business.FullName}} — {{.Site.Business.Tagline}}</p>
		<p>{{.Site.Business.Address}} · {{.Site.Business.BusinessHours}}</p>
		<p>
			<a href="{{.WhatsAppURL}}" target="_blank" rel="noopener noreferrer">WhatsApp</a> ·
			<a href="{{.PhoneURL}}">{{.Site.Business.PhoneFormatted}}</a> ·
			<a href="mailto:{{.Site.Business.Email}}">{{.Site.Business.Email}}</a>
		</p>
	</footer>
	<div id="toast" hidden></div>
	<script>
	document.body.addEventListener("showToast", function (evt) {
		var el = document.getElementById("toast");
		el.textContent = evt.detail.message;
		el.className = "toast toast-" + evt.detail.type;
		el.hidden = false;
		setTimeout(function () { el.hidden = true; }, 4000);
	});
	</script>
</body>
</html>`
