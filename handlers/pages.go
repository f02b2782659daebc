package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"ramstone/templates"
)

// siteFor builds the page shell data, marking the nav when an admin
// session is present.
func siteFor(e *core.RequestEvent, title, description, path string) templates.Site {
	site := templates.NewSite(title, description, path)
	_, site.LoggedIn = GetSession(e.Request)
	return site
}

func HandleHome(e *core.RequestEvent) error {
	site := siteFor(e, "Ramstone Creative Solutions — Auto Repair & General Supply in Lusaka",
		"Panel beating, spray painting, denting and auto electrical services in Lusaka, Zambia.", "/")
	return templates.Home(site).Render(e.Request.Context(), e.Response)
}

func HandleAbout(e *core.RequestEvent) error {
	site := siteFor(e, "About Us — Ramstone Creative Solutions",
		"Who we are and why Lusaka trusts us with their vehicles.", "/about")
	return templates.About(site).Render(e.Request.Context(), e.Response)
}

func HandleAutoRepair(e *core.RequestEvent) error {
	site := siteFor(e, "Auto Repair Services — Ramstone Creative Solutions",
		"Panel beating, spray painting, denting, welding, auto electrical and car polishing.", "/auto-repair")
	return templates.AutoRepair(site).Render(e.Request.Context(), e.Response)
}

func HandleGeneralSupply(e *core.RequestEvent) error {
	site := siteFor(e, "General Supply — Ramstone Creative Solutions",
		"Spare parts sourcing and general supply for businesses and individuals.", "/general-supply")
	return templates.GeneralSupply(site).Render(e.Request.Context(), e.Response)
}

func HandleContact(e *core.RequestEvent) error {
	site := siteFor(e, "Contact Us — Ramstone Creative Solutions",
		"Call, WhatsApp or visit us at 23A Great East Road, Avondale, Lusaka.", "/contact")
	return templates.Contact(site).Render(e.Request.Context(), e.Response)
}
