package templates

import "github.com/a-h/templ"

var homeTpl = mustPage("home", `{{define "content"}}
<section class="hero">
	<h1>{{.Site.Business.FullName}}</h1>
	<p class="tagline">{{.Site.Business.Tagline}}</p>
	<p>Professional car repair services and general supply items in Lusaka, Zambia.</p>
	<div class="hero-actions">
		<a class="btn btn-primary" href="{{.WhatsAppURL}}" target="_blank" rel="noopener noreferrer">Chat on WhatsApp</a>
		<a class="btn" href="/contact">Get a Quote</a>
	</div>
</section>
<section class="services-grid">
	<article>
		<h2>Auto Repair</h2>
		<p>Panel beating, spray painting, denting &amp; painting, welding, auto electrical and car polishing.</p>
		<a href="/auto-repair">Learn more</a>
	</article>
	<article>
		<h2>General Supply</h2>
		<p>Construction tools, hardware and general supply items for homes and businesses.</p>
		<a href="/general-supply">Learn more</a>
	</article>
</section>
{{end}}`)

// Home renders the landing page.
func Home(site Site) templ.Component {
	return component(homeTpl, newShellData(site, nil))
}

var aboutTpl = mustPage("about", `{{define "content"}}
<section class="page">
	<h1>About {{.Site.Business.Name}}</h1>
	<p>{{.Site.Business.FullName}} is a Lusaka workshop built on one promise: {{.Site.Business.Tagline}}</p>
	<p>From our premises at {{.Site.Business.Address}} we handle everything from minor dents to full resprays,
	alongside a general supply arm serving builders and businesses across Zambia.</p>
	<ul>
		<li>TPIN: {{.Site.Business.TPIN}}</li>
		<li>Business hours: {{.Site.Business.BusinessHours}}</li>
	</ul>
</section>
{{end}}`)

// About renders the about page.
func About(site Site) templ.Component {
	return component(aboutTpl, newShellData(site, nil))
}

var autoRepairTpl = mustPage("auto-repair", `{{define "content"}}
<section class="page">
	<h1>Auto Repair Services</h1>
	<ul class="service-list">
		<li>Panel beating</li>
		<li>Spray painting</li>
		<li>Denting &amp; painting</li>
		<li>Welding</li>
		<li>Auto electrical</li>
		<li>Car polishing</li>
	</ul>
	<a class="btn btn-primary" href="{{.WhatsAppURL}}" target="_blank" rel="noopener noreferrer">Book a repair</a>
</section>
{{end}}`)

// AutoRepair renders the auto repair services page.
func AutoRepair(site Site) templ.Component {
	return component(autoRepairTpl, newShellData(site, nil))
}

var generalSupplyTpl = mustPage("general-supply", `{{define "content"}}
<section class="page">
	<h1>General Supply</h1>
	<p>We source and supply construction tools, hardware and consumables at competitive prices.</p>
	<a class="btn btn-primary" href="{{.WhatsAppURL}}" target="_blank" rel="noopener noreferrer">Request a supply quote</a>
</section>
{{end}}`)

// GeneralSupply renders the general supply page.
func GeneralSupply(site Site) templ.Component {
	return component(generalSupplyTpl, newShellData(site, nil))
}

var contactTpl = mustPage("contact", `{{define "content"}}
<section class="page">
	<h1>Contact Us</h1>
	<p>{{.Site.Business.Address}}</p>
	<p>{{.Site.Business.BusinessHours}}</p>
	<div class="contact-actions">
		<a class="btn btn-primary" href="{{.WhatsAppURL}}" target="_blank" rel="noopener noreferrer">WhatsApp us</a>
		<a class="btn" href="{{.PhoneURL}}">Call {{.Site.Business.PhoneFormatted}}</a>
		<a class="btn" href="mailto:{{.Site.Business.Email}}">Email us</a>
	</div>
</section>
{{end}}`)

// Contact renders the contact page.
func Contact(site Site) templ.Component {
	return component(contactTpl, newShellData(site, nil))
}

// LoginData carries the login form state back to the page.
type LoginData struct {
	Username string
	Error    string
}

var loginTpl = mustPage("login", `{{define "content"}}
<section class="page login">
	<h1>Admin Login</h1>
	{{with .Content.Error}}<p class="form-error">{{.}}</p>{{end}}
	<form method="post" action="/login">
		<label for="username">Username</label>
		<input id="username" name="username" value="{{.Content.Username}}" required/>
		<label for="password">Password</label>
		<input id="password" name="password" type="password" required/>
		<button type="submit" class="btn btn-primary">Sign in</button>
	</form>
</section>
{{end}}`)

// Login renders the admin login page.
func Login(site Site, data LoginData) templ.Component {
	return component(loginTpl, newShellData(site, data))
}
